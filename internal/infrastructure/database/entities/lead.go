package entities

import (
	"time"

	"github.com/matsols/matsols-api/internal/domain/lead"
)

// Lead represents a consultation request row.
type Lead struct {
	ID            uint      `gorm:"primaryKey"`
	PublicID      string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	FullName      string    `gorm:"type:varchar(255);not null"`
	Email         string    `gorm:"type:varchar(255);index;not null"`
	Phone         string    `gorm:"type:varchar(64)"`
	Citizenship   string    `gorm:"type:varchar(128)"`
	TargetCountry string    `gorm:"type:varchar(128)"`
	CreatedAt     time.Time `gorm:"index"`
}

// TableName specifies the table name for Lead.
func (Lead) TableName() string {
	return "leads"
}

// NewSchemaLead converts a domain lead to its schema row.
func NewSchemaLead(l *lead.Lead) *Lead {
	return &Lead{
		PublicID:      l.ID,
		FullName:      l.FullName,
		Email:         l.Email,
		Phone:         l.Phone,
		Citizenship:   l.Citizenship,
		TargetCountry: l.TargetCountry,
		CreatedAt:     l.CreatedAt,
	}
}

// EtoD converts the row to a domain lead.
func (e *Lead) EtoD() *lead.Lead {
	return &lead.Lead{
		ID:            e.PublicID,
		FullName:      e.FullName,
		Email:         e.Email,
		Phone:         e.Phone,
		Citizenship:   e.Citizenship,
		TargetCountry: e.TargetCountry,
		CreatedAt:     e.CreatedAt,
	}
}
