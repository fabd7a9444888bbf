package models

import "time"

// User is an account of the remote task service.
type User struct {
	// UserID is the internal identifier, used only at the persistence layer.
	UserID int64 `json:"-"`

	Login string `json:"login"`

	// PasswordHash is the bcrypt hash of the password. Never plaintext.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table of the User model.
func (u User) TableName() string {
	return "users"
}
