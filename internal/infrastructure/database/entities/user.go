package entities

import (
	"time"

	"github.com/matsols/matsols-api/internal/domain/user"
)

// User represents a portal account row.
type User struct {
	ID           uint      `gorm:"primaryKey"`
	PublicID     string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(16);not null;default:'STUDENT'"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for User.
func (User) TableName() string {
	return "users"
}

// NewSchemaUser converts a domain user to its schema row.
func NewSchemaUser(u *user.User) *User {
	return &User{
		PublicID:     u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		CreatedAt:    u.CreatedAt,
	}
}

// EtoD converts the row to a domain user.
func (e *User) EtoD() *user.User {
	return &user.User{
		ID:           e.PublicID,
		Email:        e.Email,
		PasswordHash: e.PasswordHash,
		Role:         user.Role(e.Role),
		CreatedAt:    e.CreatedAt,
	}
}
