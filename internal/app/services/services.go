package services

import (
	"context"
	"time"

	"github.com/ilokeshmewari/college-project/internal/app/models"
)

// Store interfaces consumed by the services. The pgx-backed repositories
// satisfy them; tests substitute in-memory fakes.

// UserStore provides user persistence
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// TokenStore provides refresh token persistence
type TokenStore interface {
	CreateToken(ctx context.Context, token string, userID int64, expiresAt time.Time) error
	GetTokenByValue(ctx context.Context, token string) (userID int64, expiresAt time.Time, revoked bool, err error)
	RevokeToken(ctx context.Context, token string) error
}

// ProfileStore provides profile persistence
type ProfileStore interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Profile, error)
	CreateEmpty(ctx context.Context, userID int64, email string) (*models.Profile, error)
	Upsert(ctx context.Context, profile *models.Profile) error
}

// FacultyStore provides faculty persistence
type FacultyStore interface {
	CreateFaculty(ctx context.Context, faculty *models.Faculty) (int64, error)
	GetFacultyByID(ctx context.Context, id int64) (*models.Faculty, error)
	GetFaculty(ctx context.Context, offset uint64, limit int) ([]*models.Faculty, error)
	CountFaculty(ctx context.Context) (int64, error)
	DeleteFaculty(ctx context.Context, id int64) error
}

// FeedbackStore provides feedback persistence
type FeedbackStore interface {
	CreateFeedback(ctx context.Context, feedback *models.Feedback) (*models.Feedback, error)
	GetByFacultyID(ctx context.Context, facultyID int64, offset uint64, limit int) ([]*models.Feedback, error)
	CountByFacultyID(ctx context.Context, facultyID int64) (int64, error)
}
