package domain

import (
	"errors"
	"time"
)

// Role is a closed enum on the single User type. The officer variant is
// declared but never granted by registration and never authorized; it
// stands in for the abandoned parallel Officer entity of the legacy system.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleOfficer Role = "officer"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("username already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrNotAdmin = errors.New("admin privileges required")
var ErrAccountDisabled = errors.New("account is deactivated")
var ErrBadRegistrationSecret = errors.New("invalid registration secret")
var ErrWeakPassword = errors.New("password must be at least 8 characters long")

// User models an authenticated actor. Username is unique and stored
// lowercase; the password exists only as a bcrypt hash.
type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email,omitempty"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	IsActive     bool       `json:"is_active"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// CanAuthenticate reports whether the account may log in. Only active
// admin accounts pass.
func (u *User) CanAuthenticate() bool {
	return u.Role == RoleAdmin && u.IsActive
}
