package entities

import (
	"time"

	"github.com/matsols/matsols-api/internal/domain/update"
)

// Update represents a landing page news card.
type Update struct {
	ID        uint      `gorm:"primaryKey"`
	PublicID  string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Category  string    `gorm:"type:varchar(16);index;not null;default:'grid'"`
	Date      string    `gorm:"type:varchar(64)"`
	Excerpt   string    `gorm:"type:text"`
	Image     *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName specifies the table name for Update.
func (Update) TableName() string {
	return "updates"
}

// NewSchemaUpdate converts a domain update to its schema row.
func NewSchemaUpdate(u *update.Update) *Update {
	return &Update{
		PublicID:  u.ID,
		Title:     u.Title,
		Category:  string(u.Category),
		Date:      u.Date,
		Excerpt:   u.Excerpt,
		Image:     u.Image,
		CreatedAt: u.CreatedAt,
	}
}

// EtoD converts the row to a domain update.
func (e *Update) EtoD() *update.Update {
	return &update.Update{
		ID:        e.PublicID,
		Title:     e.Title,
		Category:  update.Category(e.Category),
		Date:      e.Date,
		Excerpt:   e.Excerpt,
		Image:     e.Image,
		CreatedAt: e.CreatedAt,
	}
}
