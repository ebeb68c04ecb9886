package dto

import (
	"time"

	"github.com/ilokeshmewari/college-project/internal/app/models"
)

// SubmitFeedbackRequest represents one feedback submission bound to a
// selected faculty. The submitter's email is taken from the session, never
// from the request body. Rating is clamped into [1,5] server-side, so no
// binding constraint rejects out-of-range values.
type SubmitFeedbackRequest struct {
	FacultyID       int64  `json:"facultyId" binding:"required,min=1"`
	ClassManagement string `json:"classManagement"`
	Discipline      string `json:"discipline"`
	Punctuality     string `json:"punctuality"`
	Rating          int    `json:"rating"`
	FeedbackMessage string `json:"feedbackMessage"`
}

// FeedbackResponse represents one stored feedback row. FacultyName is the
// name captured at submission time, so it survives faculty deletion.
type FeedbackResponse struct {
	ID              int64     `json:"id"`
	FacultyID       int64     `json:"facultyId"`
	FacultyName     string    `json:"facultyName"`
	UserEmail       string    `json:"userEmail"`
	ClassManagement string    `json:"classManagement,omitempty"`
	Discipline      string    `json:"discipline,omitempty"`
	Punctuality     string    `json:"punctuality,omitempty"`
	Rating          int       `json:"rating"`
	FeedbackMessage string    `json:"feedbackMessage,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// FromFeedback maps a feedback model to its response representation
func FromFeedback(f *models.Feedback) *FeedbackResponse {
	return &FeedbackResponse{
		ID:              f.ID,
		FacultyID:       f.FacultyID,
		FacultyName:     f.FacultyName,
		UserEmail:       f.UserEmail,
		ClassManagement: f.ClassManagement,
		Discipline:      f.Discipline,
		Punctuality:     f.Punctuality,
		Rating:          f.Rating,
		FeedbackMessage: f.FeedbackMessage,
		CreatedAt:       f.CreatedAt,
	}
}

// FromFeedbackList maps a page of feedback models
func FromFeedbackList(feedback []*models.Feedback) []*FeedbackResponse {
	responses := make([]*FeedbackResponse, 0, len(feedback))
	for _, f := range feedback {
		responses = append(responses, FromFeedback(f))
	}
	return responses
}
