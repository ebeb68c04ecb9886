package dto

import (
	"time"

	"github.com/ilokeshmewari/college-project/internal/app/models"
)

// CreateFacultyRequest represents the admin "add faculty" form. It is bound
// from multipart form fields; the optional image file is read separately.
type CreateFacultyRequest struct {
	Name       string `form:"name" binding:"required"`
	Department string `form:"department"`
	Email      string `form:"email" binding:"omitempty,email"`
	Phone      string `form:"phone"`
}

// FacultyResponse represents one directory entry
type FacultyResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Department *string   `json:"department,omitempty"`
	Email      *string   `json:"email,omitempty"`
	Phone      *string   `json:"phone,omitempty"`
	ImageURL   *string   `json:"imageUrl,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// FromFaculty maps a faculty model to its response representation
func FromFaculty(f *models.Faculty) *FacultyResponse {
	return &FacultyResponse{
		ID:         f.ID,
		Name:       f.Name,
		Department: f.Department,
		Email:      f.Email,
		Phone:      f.Phone,
		ImageURL:   f.ImageURL,
		CreatedAt:  f.CreatedAt,
	}
}

// FromFacultyList maps a page of faculty models
func FromFacultyList(faculty []*models.Faculty) []*FacultyResponse {
	responses := make([]*FacultyResponse, 0, len(faculty))
	for _, f := range faculty {
		responses = append(responses, FromFaculty(f))
	}
	return responses
}
