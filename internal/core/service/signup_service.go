package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/noxel/ticketing-api/internal/core/domain"
	"github.com/noxel/ticketing-api/internal/core/ports"
)

// SignupService coordinates signup: credential hashing, atomic persistence of
// the user and its role profile, and session-token issuance.
type SignupService struct {
	repo     ports.UserRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenService
	cache    ports.ProfileCache
	tokenTTL time.Duration
	logger   zerolog.Logger
}

func NewSignupService(
	repo ports.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
	cache ports.ProfileCache,
	tokenTTL time.Duration,
	logger zerolog.Logger,
) *SignupService {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &SignupService{
		repo:     repo,
		hasher:   hasher,
		tokens:   tokens,
		cache:    cache,
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

// Signup hashes the credential, writes the user row and its role profile in
// one transaction, and issues a session token for the new user. On any
// post-begin failure the store rolls back; no partial rows survive. Unique
// collisions on email or gov_identification come back as *domain.ConflictError.
func (s *SignupService) Signup(ctx context.Context, input ports.SignupInput) (*ports.SignupResult, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		FullName:          input.FullName,
		Role:              input.Role,
		Email:             input.Email,
		GovIdentification: input.GovIdentification,
		BirthDate:         input.BirthDate,
		PasswordHash:      hash,
	}

	var related *domain.RelatedData
	switch input.Role {
	case domain.RoleOrganizer:
		created, profile, err := s.repo.CreateOrganizer(ctx, user)
		if err != nil {
			return nil, err
		}
		user = created
		related = &domain.RelatedData{Organizer: profile}
	case domain.RoleAttendee:
		if input.BirthDate == nil {
			return nil, fmt.Errorf("attendee signup requires a birth date")
		}
		created, profile, err := s.repo.CreateAttendee(ctx, user, input.Phone, *input.BirthDate)
		if err != nil {
			return nil, err
		}
		user = created
		related = &domain.RelatedData{Attendee: profile}
	case domain.RoleAdmin, domain.RolePromoter, domain.RoleCollaborator:
		// Closed enumeration: these roles have no public signup flow.
		return nil, fmt.Errorf("role %q does not support self-signup", input.Role)
	default:
		return nil, fmt.Errorf("unknown role %q", input.Role)
	}

	token, err := s.tokens.Issue(user, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("user_id", user.ID.String()).
		Str("role", string(user.Role)).
		Str("email", user.Email).
		Msg("user signed up")

	return &ports.SignupResult{Token: token, User: user, RelatedData: related}, nil
}

// RelatedData returns the role-specific profile for an authenticated user,
// read through the cache when one is configured. Roles without a profile
// yield nil. Cache failures degrade to a repository read.
func (s *SignupService) RelatedData(ctx context.Context, user *domain.User) (*domain.RelatedData, error) {
	if !user.Role.HasProfile() {
		return nil, nil
	}

	if s.cache != nil {
		if data, ok, err := s.cache.Get(ctx, user.Role, user.ID); err != nil {
			s.logger.Warn().Err(err).Str("user_id", user.ID.String()).Msg("profile cache read failed")
		} else if ok {
			return data, nil
		}
	}

	var related *domain.RelatedData
	switch user.Role {
	case domain.RoleOrganizer:
		profile, err := s.repo.OrganizerProfileByUserID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		related = &domain.RelatedData{Organizer: profile}
	case domain.RoleAttendee:
		profile, err := s.repo.AttendeeProfileByUserID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		related = &domain.RelatedData{Attendee: profile}
	case domain.RoleAdmin, domain.RolePromoter, domain.RoleCollaborator:
		return nil, nil
	default:
		return nil, nil
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, user.Role, user.ID, related); err != nil {
			s.logger.Warn().Err(err).Str("user_id", user.ID.String()).Msg("profile cache write failed")
		}
	}
	return related, nil
}
