package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/noxel/ticketing-api/internal/core/domain"
	"github.com/noxel/ticketing-api/internal/core/ports"
)

// DB is the subset of pgxpool.Pool the repository needs. pgxmock satisfies it.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// UserRepository persists users and role profiles in PostgreSQL. The two-row
// signup writes run inside one transaction; uniqueness is enforced by the
// users_email_key and users_gov_identification_key constraints, which makes
// concurrent duplicate signups resolve to exactly one winner without any
// in-process locking.
type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

var _ ports.UserRepository = (*UserRepository)(nil)

const insertUserQuery = `
	INSERT INTO users (full_name, role, email, gov_identification, birth_date, password_hash)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, full_name, role, email, gov_identification, birth_date`

func (r *UserRepository) CreateOrganizer(ctx context.Context, user *domain.User) (*domain.User, *domain.OrganizerProfile, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("begin signup transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	created, err := insertUser(ctx, tx, user)
	if err != nil {
		return nil, nil, err
	}

	var profile domain.OrganizerProfile
	err = tx.QueryRow(ctx, `
		INSERT INTO organizer_profiles (user_id)
		VALUES ($1)
		RETURNING id, user_id, created_at`,
		created.ID,
	).Scan(&profile.ID, &profile.UserID, &profile.CreatedAt)
	if err != nil {
		return nil, nil, translateInsertError(err, "insert organizer profile")
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("commit signup transaction: %w", err)
	}
	return created, &profile, nil
}

func (r *UserRepository) CreateAttendee(ctx context.Context, user *domain.User, phone string, birthDate time.Time) (*domain.User, *domain.AttendeeProfile, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("begin signup transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	created, err := insertUser(ctx, tx, user)
	if err != nil {
		return nil, nil, err
	}

	var profile domain.AttendeeProfile
	err = tx.QueryRow(ctx, `
		INSERT INTO attendee_profiles (user_id, phone, birth_date)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, phone, birth_date, created_at`,
		created.ID, phone, birthDate,
	).Scan(&profile.ID, &profile.UserID, &profile.Phone, &profile.BirthDate, &profile.CreatedAt)
	if err != nil {
		return nil, nil, translateInsertError(err, "insert attendee profile")
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("commit signup transaction: %w", err)
	}
	return created, &profile, nil
}

func (r *UserRepository) OrganizerProfileByUserID(ctx context.Context, userID uuid.UUID) (*domain.OrganizerProfile, error) {
	var profile domain.OrganizerProfile
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, created_at
		FROM organizer_profiles
		WHERE user_id = $1`,
		userID,
	).Scan(&profile.ID, &profile.UserID, &profile.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("organizer profile missing for user %s: %w", userID, err)
		}
		return nil, fmt.Errorf("get organizer profile: %w", err)
	}
	return &profile, nil
}

func (r *UserRepository) AttendeeProfileByUserID(ctx context.Context, userID uuid.UUID) (*domain.AttendeeProfile, error) {
	var profile domain.AttendeeProfile
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, phone, birth_date, created_at
		FROM attendee_profiles
		WHERE user_id = $1`,
		userID,
	).Scan(&profile.ID, &profile.UserID, &profile.Phone, &profile.BirthDate, &profile.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("attendee profile missing for user %s: %w", userID, err)
		}
		return nil, fmt.Errorf("get attendee profile: %w", err)
	}
	return &profile, nil
}

func insertUser(ctx context.Context, tx pgx.Tx, user *domain.User) (*domain.User, error) {
	var (
		created domain.User
		role    string
	)
	err := tx.QueryRow(ctx, insertUserQuery,
		user.FullName,
		string(user.Role),
		user.Email,
		user.GovIdentification,
		user.BirthDate,
		user.PasswordHash,
	).Scan(
		&created.ID,
		&created.FullName,
		&role,
		&created.Email,
		&created.GovIdentification,
		&created.BirthDate,
	)
	if err != nil {
		return nil, translateInsertError(err, "insert user")
	}

	parsed, ok := domain.ParseRole(role)
	if !ok {
		return nil, fmt.Errorf("stored user %s has unknown role %q", created.ID, role)
	}
	created.Role = parsed
	return &created, nil
}

// translateInsertError maps unique-constraint violations to the domain-level
// conflict carrying the violated field; everything else stays a storage error.
func translateInsertError(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		switch pgErr.ConstraintName {
		case "users_email_key":
			return &domain.ConflictError{Field: "email"}
		case "users_gov_identification_key":
			return &domain.ConflictError{Field: "gov_identification"}
		default:
			return &domain.ConflictError{}
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
