package auth

import (
	"errors"
	"regexp"
	"time"
)

// usernamePattern defines the valid format for usernames:
// alphanumeric, dots, hyphens, underscores, 1-64 characters.
var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]{1,64}$`)

// maxUsernameLength is the maximum allowed username length.
const maxUsernameLength = 64

// IsValidUsername checks if a username meets format requirements.
// Usernames must be 1-64 characters, alphanumeric with dots, hyphens, underscores.
func IsValidUsername(username string) bool {
	return len(username) <= maxUsernameLength && usernamePattern.MatchString(username)
}

// Role represents an authorisation tier in the system.
type Role string

const (
	// RoleGuest can arm and disarm the system but cannot unlock the door.
	RoleGuest Role = "guest"

	// RoleAdmin has full panel control including unlock. Bypasses nothing:
	// every admin command is still token-verified per request.
	RoleAdmin Role = "admin"
)

// ValidRoles is the set of valid operator roles.
var ValidRoles = []Role{RoleGuest, RoleAdmin}

// IsValidRole returns true if the role is a valid operator role.
func IsValidRole(r Role) bool {
	for _, v := range ValidRoles {
		if r == v {
			return true
		}
	}
	return false
}

// Operator represents a human user of the panel.
//
// Operators are provisioned out-of-band (seeding or an operator CLI);
// the gateway itself only reads them. The role recorded here is copied
// into tokens at issuance time — a later role change does not affect
// already-issued tokens.
type Operator struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	PINHash   string    `json:"-"` // never serialised
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Sentinel errors for auth operations.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrOperatorNotFound   = errors.New("operator not found")
	ErrUsernameExists     = errors.New("username already exists")
	ErrTokenExpired       = errors.New("token has expired")
	ErrTokenInvalid       = errors.New("invalid token")
)
