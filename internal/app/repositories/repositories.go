package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is the shared sentinel for missing rows.
var ErrNotFound = errors.New("resource not found")

// Repositories holds all repository instances
type Repositories struct {
	UserRepository     *UserRepository
	TokenRepository    *TokenRepository
	ProfileRepository  *ProfileRepository
	FacultyRepository  *FacultyRepository
	FeedbackRepository *FeedbackRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db),
		TokenRepository:    NewTokenRepository(db),
		ProfileRepository:  NewProfileRepository(db),
		FacultyRepository:  NewFacultyRepository(db),
		FeedbackRepository: NewFeedbackRepository(db),
	}
}
