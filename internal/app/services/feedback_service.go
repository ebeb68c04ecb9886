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
	"github.com/ilokeshmewari/college-project/internal/pkg/helpers"
)

// FeedbackService defines the interface for feedback operations
type FeedbackService interface {
	// SubmitFeedback writes exactly one feedback row for the selected
	// faculty. The submitter's email comes from the session and is stored
	// verbatim. Preconditions (a selected, existing faculty and a known
	// email) are checked before any write.
	SubmitFeedback(ctx context.Context, userEmail string, req *dto.SubmitFeedbackRequest) (*models.Feedback, error)
	// ListByFaculty returns one page of a faculty's feedback, newest first.
	// It does not require the faculty row to still exist.
	ListByFaculty(ctx context.Context, facultyID int64, page, size int) ([]*models.Feedback, dto.PaginationInfo, error)
}

type feedbackServiceImpl struct {
	feedbackStore FeedbackStore
	facultyStore  FacultyStore
}

// NewFeedbackService creates a new feedback service instance
func NewFeedbackService(feedbackStore FeedbackStore, facultyStore FacultyStore) FeedbackService {
	return &feedbackServiceImpl{
		feedbackStore: feedbackStore,
		facultyStore:  facultyStore,
	}
}

// clampRating snaps a rating into [MinRating, MaxRating]. Out-of-range input
// silently takes the nearest bound instead of failing the submission.
func clampRating(rating int) int {
	if rating < models.MinRating {
		return models.MinRating
	}
	if rating > models.MaxRating {
		return models.MaxRating
	}
	return rating
}

// SubmitFeedback validates the preconditions and writes one feedback row
func (s *feedbackServiceImpl) SubmitFeedback(ctx context.Context, userEmail string, req *dto.SubmitFeedbackRequest) (*models.Feedback, error) {
	if req.FacultyID <= 0 {
		return nil, apperrors.ErrNoFacultySelected
	}
	if strings.TrimSpace(userEmail) == "" {
		return nil, fmt.Errorf("%w: submitter email is unknown", apperrors.ErrValidationFailed)
	}

	// The selection must resolve to an existing faculty before any write
	faculty, err := s.facultyStore.GetFacultyByID(ctx, req.FacultyID)
	if err != nil {
		if errors.Is(err, repositories.ErrFacultyNotFound) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, fmt.Errorf("error resolving faculty: %w", err)
	}

	feedback := &models.Feedback{
		FacultyID:       faculty.ID,
		FacultyName:     faculty.Name,
		UserEmail:       userEmail,
		ClassManagement: req.ClassManagement,
		Discipline:      req.Discipline,
		Punctuality:     req.Punctuality,
		Rating:          clampRating(req.Rating),
		FeedbackMessage: req.FeedbackMessage,
	}

	stored, err := s.feedbackStore.CreateFeedback(ctx, feedback)
	if err != nil {
		return nil, fmt.Errorf("error creating feedback: %w", err)
	}

	return stored, nil
}

// ListByFaculty retrieves one page of feedback for a faculty
func (s *feedbackServiceImpl) ListByFaculty(ctx context.Context, facultyID int64, page, size int) ([]*models.Feedback, dto.PaginationInfo, error) {
	if facultyID <= 0 {
		return nil, dto.PaginationInfo{}, fmt.Errorf("%w: invalid faculty ID", apperrors.ErrValidationFailed)
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)

	total, err := s.feedbackStore.CountByFacultyID(ctx, facultyID)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error counting feedback: %w", err)
	}

	feedback, err := s.feedbackStore.GetByFacultyID(ctx, facultyID, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error retrieving feedback: %w", err)
	}

	return feedback, helpers.NewPaginationInfo(total, page, limit), nil
}
