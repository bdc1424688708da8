package users

import (
	"time"
)

// User represents a registered account.
// The password is stored only as a bcrypt hash; the plaintext never leaves
// the signup/authenticate call path and is never serialized.
type User struct {
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	ID           int64     `json:"id" db:"id"`
}

// SignupRequest represents the input for creating a new account
type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
