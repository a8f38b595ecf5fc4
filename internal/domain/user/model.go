package user

import "time"

// Role grants access to portal areas.
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleStaff   Role = "STAFF"
	RoleAdmin   Role = "ADMIN"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

// User is a portal account.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// RegisterParams holds a self-service registration.
type RegisterParams struct {
	Email    string
	Password string
	Role     Role
}

// Session is returned by a successful login.
type Session struct {
	Token string
	User  *User
}
