package models

import "time"

// Profile is the student-side extended identity record layered atop the bare
// authentication identity. It is created lazily with only user id and email
// the first time a user is seen; name/username/phone are filled in through
// the profile save flow.
type Profile struct {
	UserID    int64     `json:"userId" db:"user_id"`
	Email     string    `json:"email" db:"email"`
	Name      string    `json:"name" db:"name"`
	Username  string    `json:"username" db:"username"`
	Phone     string    `json:"phone" db:"phone"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// IsComplete reports whether the mandatory profile fields are populated.
// Phone is optional and does not affect completeness.
func (p *Profile) IsComplete() bool {
	return p.Name != "" && p.Username != ""
}
