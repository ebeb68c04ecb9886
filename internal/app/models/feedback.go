package models

import "time"

// Rating bounds for feedback submissions. Out-of-range input is clamped to
// the nearest bound rather than rejected.
const (
	MinRating = 1
	MaxRating = 5
)

// Feedback is a single student's rated assessment of one faculty entry.
// Rows are written once per submission and never mutated or deleted by the
// application. FacultyName is a snapshot taken at submission time so the
// record stays meaningful after the faculty entry is removed; deleting a
// faculty does not cascade here. UserEmail is copied verbatim from the
// session and is not a foreign key.
type Feedback struct {
	ID              int64     `json:"id" db:"id"`
	FacultyID       int64     `json:"facultyId" db:"faculty_id"`
	FacultyName     string    `json:"facultyName" db:"faculty_name"`
	UserEmail       string    `json:"userEmail" db:"user_email"`
	ClassManagement string    `json:"classManagement" db:"class_management"`
	Discipline      string    `json:"discipline" db:"discipline"`
	Punctuality     string    `json:"punctuality" db:"punctuality"`
	Rating          int       `json:"rating" db:"rating"`
	FeedbackMessage string    `json:"feedbackMessage,omitempty" db:"feedback_message"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}
