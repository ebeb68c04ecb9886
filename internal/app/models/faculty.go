package models

import "time"

// Faculty is an admin-managed directory entry and the subject of feedback.
// Name is the only required field.
type Faculty struct {
	ID         int64     `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Department *string   `json:"department,omitempty" db:"department"`
	Email      *string   `json:"email,omitempty" db:"email"`
	Phone      *string   `json:"phone,omitempty" db:"phone"`
	ImageURL   *string   `json:"imageUrl,omitempty" db:"image_url"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
