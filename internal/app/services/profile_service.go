package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ilokeshmewari/college-project/internal/app/models"
	"github.com/ilokeshmewari/college-project/internal/app/models/dto"
	"github.com/ilokeshmewari/college-project/internal/app/repositories"
	"github.com/ilokeshmewari/college-project/internal/pkg/apperrors"
)

// ProfileService defines the interface for profile operations
type ProfileService interface {
	// GetOrCreate returns the user's profile, creating a bare row with only
	// id and email on first sight. The caller classifies completeness via
	// Profile.IsComplete.
	GetOrCreate(ctx context.Context, userID int64, email string) (*models.Profile, error)
	// Save upserts the profile form keyed by user id.
	Save(ctx context.Context, userID int64, email string, req *dto.SaveProfileRequest) (*models.Profile, error)
}

type profileServiceImpl struct {
	profileStore ProfileStore
}

// NewProfileService creates a new profile service instance
func NewProfileService(profileStore ProfileStore) ProfileService {
	return &profileServiceImpl{
		profileStore: profileStore,
	}
}

// GetOrCreate fetches the profile row for a user, inserting an email-only
// row when none exists yet. Create-if-missing, not upsert: an existing row
// is never touched by this path, so a completed profile cannot be wiped by
// a concurrent first visit.
func (s *profileServiceImpl) GetOrCreate(ctx context.Context, userID int64, email string) (*models.Profile, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: invalid user ID", apperrors.ErrValidationFailed)
	}

	profile, err := s.profileStore.GetByUserID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repositories.ErrProfileNotFound) {
		return nil, fmt.Errorf("error retrieving profile: %w", err)
	}

	profile, err = s.profileStore.CreateEmpty(ctx, userID, email)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileAlreadyExists) {
			// Lost a create race; the winner's row is the profile
			return s.profileStore.GetByUserID(ctx, userID)
		}
		return nil, fmt.Errorf("error creating profile: %w", err)
	}

	return profile, nil
}

// Save writes the full profile form as an upsert keyed by user id. The same
// path completes an incomplete profile and edits a complete one.
func (s *profileServiceImpl) Save(ctx context.Context, userID int64, email string, req *dto.SaveProfileRequest) (*models.Profile, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: invalid user ID", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.Username) == "" {
		return nil, fmt.Errorf("%w: username cannot be empty", apperrors.ErrValidationFailed)
	}

	profile := &models.Profile{
		UserID:   userID,
		Email:    email,
		Name:     strings.TrimSpace(req.Name),
		Username: strings.TrimSpace(req.Username),
		Phone:    strings.TrimSpace(req.Phone),
	}

	if err := s.profileStore.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("error saving profile: %w", err)
	}

	return profile, nil
}
