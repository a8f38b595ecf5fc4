package update

import "time"

// Category places an update on the landing page.
type Category string

const (
	CategoryHero Category = "hero"
	CategoryGrid Category = "grid"
)

// Update is a news or insight card.
type Update struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Category  Category  `json:"category"`
	Date      string    `json:"date"`
	Excerpt   string    `json:"excerpt"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateParams holds the fields of a new update.
type CreateParams struct {
	Title    string
	Category Category
	Date     string
	Excerpt  string
	Image    *string
}
