package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ilokeshmewari/college-project/internal/app/models"
	"github.com/ilokeshmewari/college-project/internal/app/models/dto"
	"github.com/ilokeshmewari/college-project/internal/app/repositories"
	"github.com/ilokeshmewari/college-project/internal/pkg/apperrors"
	"github.com/ilokeshmewari/college-project/internal/pkg/filestorage"
	"github.com/ilokeshmewari/college-project/internal/pkg/helpers"
)

// FacultyService defines the interface for faculty directory operations
type FacultyService interface {
	// CreateFaculty stores the optional image first and then inserts the
	// row. Upload success is a precondition for record creation when an
	// image is attached; a failed insert after a successful upload deletes
	// the stored object again.
	CreateFaculty(ctx context.Context, req *dto.CreateFacultyRequest, image *multipart.FileHeader) (*models.Faculty, error)
	GetFacultyByID(ctx context.Context, id int64) (*models.Faculty, error)
	ListFaculty(ctx context.Context, page, size int) ([]*models.Faculty, dto.PaginationInfo, error)
	// DeleteFaculty removes the directory row only. The uploaded image
	// object and feedback rows referencing the id stay in place.
	DeleteFaculty(ctx context.Context, id int64) error
}

type facultyServiceImpl struct {
	facultyStore FacultyStore
	storage      filestorage.Storage
	logger       zerolog.Logger
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(facultyStore FacultyStore, storage filestorage.Storage, logger zerolog.Logger) FacultyService {
	return &facultyServiceImpl{
		facultyStore: facultyStore,
		storage:      storage,
		logger:       logger,
	}
}

// CreateFaculty creates a new faculty entry with an optional image
func (s *facultyServiceImpl) CreateFaculty(ctx context.Context, req *dto.CreateFacultyRequest, image *multipart.FileHeader) (*models.Faculty, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidationFailed)
	}

	var imageURL string
	if image != nil {
		url, err := s.storage.Save(image)
		if err != nil {
			// No row is written when the upload fails
			return nil, fmt.Errorf("%w: %v", apperrors.ErrImageUploadFailed, err)
		}
		imageURL = url
	}

	faculty := &models.Faculty{
		Name:       strings.TrimSpace(req.Name),
		Department: helpers.StringOrNil(strings.TrimSpace(req.Department)),
		Email:      helpers.StringOrNil(strings.TrimSpace(req.Email)),
		Phone:      helpers.StringOrNil(strings.TrimSpace(req.Phone)),
		ImageURL:   helpers.StringOrNil(imageURL),
	}

	id, err := s.facultyStore.CreateFaculty(ctx, faculty)
	if err != nil {
		if imageURL != "" {
			// Compensate for the already-stored object so the insert
			// failure does not leave an orphan behind
			if delErr := s.storage.Delete(imageURL); delErr != nil {
				s.logger.Warn().Err(delErr).Str("imageUrl", imageURL).Msg("Failed to clean up uploaded image after insert failure")
			}
		}
		return nil, fmt.Errorf("error creating faculty: %w", err)
	}

	faculty.ID = id
	return faculty, nil
}

// GetFacultyByID retrieves a faculty by id
func (s *facultyServiceImpl) GetFacultyByID(ctx context.Context, id int64) (*models.Faculty, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid faculty ID", apperrors.ErrValidationFailed)
	}

	faculty, err := s.facultyStore.GetFacultyByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrFacultyNotFound) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, fmt.Errorf("error retrieving faculty: %w", err)
	}
	return faculty, nil
}

// ListFaculty retrieves one page of the directory with pagination metadata
func (s *facultyServiceImpl) ListFaculty(ctx context.Context, page, size int) ([]*models.Faculty, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	total, err := s.facultyStore.CountFaculty(ctx)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error counting faculty: %w", err)
	}

	faculty, err := s.facultyStore.GetFaculty(ctx, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error retrieving faculty: %w", err)
	}

	return faculty, helpers.NewPaginationInfo(total, page, limit), nil
}

// DeleteFaculty deletes a faculty by id
func (s *facultyServiceImpl) DeleteFaculty(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid faculty ID", apperrors.ErrValidationFailed)
	}

	err := s.facultyStore.DeleteFaculty(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrFacultyNotFound) {
			return apperrors.ErrFacultyNotFound
		}
		return fmt.Errorf("error deleting faculty: %w", err)
	}
	return nil
}
