package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/noxel/ticketing-api/internal/core/domain"
)

// DefaultTokenTTL applies when no TTL is configured or passed at issuance.
const DefaultTokenTTL = 24 * time.Hour

// SessionClaims is the decoded token payload: the public user snapshot plus
// the registered time bounds. Never persisted; validity is decided purely by
// the signature and the expiry timestamp.
type SessionClaims struct {
	User domain.User `json:"user"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed session tokens. The signing
// secret is threaded in at construction from process configuration; it is
// never read from ambient state.
type TokenService struct {
	secret     []byte
	defaultTTL time.Duration
	logger     zerolog.Logger
}

func NewTokenService(secret string, defaultTTL time.Duration, logger zerolog.Logger) *TokenService {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), defaultTTL: defaultTTL, logger: logger}
}

// Issue mints a token embedding the user snapshot, valid from now until
// now+ttl. A non-positive ttl applies the configured default. An empty
// signing secret is a deployment error and fails with ErrMissingSigningSecret.
func (s *TokenService) Issue(user *domain.User, ttl time.Duration) (string, error) {
	if len(s.secret) == 0 {
		return "", domain.ErrMissingSigningSecret
	}
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	now := time.Now()
	claims := &SessionClaims{
		User: *user,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify validates signature and expiry and returns the embedded user.
// All failures collapse to domain.ErrUnauthorized toward the caller; the
// underlying cause is logged here and nowhere else.
func (s *TokenService) Verify(tokenString string) (*domain.User, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		if err == nil {
			err = errors.New("token not valid")
		}
		s.logger.Debug().Err(err).Msg("token rejected")
		return nil, domain.ErrUnauthorized
	}
	if !claims.User.Role.Valid() {
		s.logger.Debug().Str("role", string(claims.User.Role)).Msg("token carries unknown role")
		return nil, domain.ErrUnauthorized
	}
	return &claims.User, nil
}
