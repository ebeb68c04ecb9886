package dto

import "github.com/ilokeshmewari/college-project/internal/app/models"

// SaveProfileRequest represents the profile completion/edit form. The same
// payload fixes an incomplete profile and edits a complete one.
type SaveProfileRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Phone    string `json:"phone"`
}

// ProfileResponse carries a profile row plus its completeness classification
type ProfileResponse struct {
	UserID   int64  `json:"userId"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Phone    string `json:"phone"`
	Complete bool   `json:"complete"`
}

// FromProfile converts a profile model to its response DTO
func FromProfile(p *models.Profile) ProfileResponse {
	if p == nil {
		return ProfileResponse{}
	}
	return ProfileResponse{
		UserID:   p.UserID,
		Email:    p.Email,
		Name:     p.Name,
		Username: p.Username,
		Phone:    p.Phone,
		Complete: p.IsComplete(),
	}
}
