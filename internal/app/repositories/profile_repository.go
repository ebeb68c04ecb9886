package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ilokeshmewari/college-project/internal/app/models"
	"github.com/ilokeshmewari/college-project/internal/pkg/dberrors"
	"github.com/ilokeshmewari/college-project/internal/pkg/logger"
)

// Profile error types
var (
	ErrProfileNotFound      = ErrNotFound
	ErrProfileAlreadyExists = errors.New("profile already exists")
)

// ProfileRepository handles profile database operations
type ProfileRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetByUserID retrieves the profile row for a user
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	sql, args, err := r.sb.Select("user_id", "email", "name", "username", "phone", "created_at", "updated_at").
		From("profiles").
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get profile query: %w", err)
	}

	profile := &models.Profile{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&profile.UserID, &profile.Email, &profile.Name, &profile.Username, &profile.Phone,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error scanning profile row")
		return nil, fmt.Errorf("error getting profile: %w", err)
	}

	return profile, nil
}

// CreateEmpty inserts a bare profile row carrying only the user id and email.
// Used for the create-if-missing path on first dashboard visit; it is not an
// upsert, a concurrent duplicate insert surfaces as ErrProfileAlreadyExists.
func (r *ProfileRepository) CreateEmpty(ctx context.Context, userID int64, email string) (*models.Profile, error) {
	sql, args, err := r.sb.Insert("profiles").
		Columns("user_id", "email").
		Values(userID, email).
		Suffix("RETURNING user_id, email, name, username, phone, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create profile query: %w", err)
	}

	profile := &models.Profile{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&profile.UserID, &profile.Email, &profile.Name, &profile.Username, &profile.Phone,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, ErrProfileAlreadyExists
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error creating empty profile")
		return nil, fmt.Errorf("error creating profile: %w", err)
	}

	return profile, nil
}

// Upsert writes the full profile form keyed by user id. This single path
// both completes an incomplete profile and edits a complete one.
func (r *ProfileRepository) Upsert(ctx context.Context, profile *models.Profile) error {
	sql, args, err := r.sb.Insert("profiles").
		Columns("user_id", "email", "name", "username", "phone").
		Values(profile.UserID, profile.Email, profile.Name, profile.Username, profile.Phone).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET name = EXCLUDED.name, username = EXCLUDED.username, phone = EXCLUDED.phone, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert profile query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("userID", profile.UserID).Msg("Error upserting profile")
		return fmt.Errorf("error saving profile: %w", err)
	}

	return nil
}
