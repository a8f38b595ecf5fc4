package lead

import "time"

// Lead is a prospective student's contact request from the consultation form.
type Lead struct {
	ID            string    `json:"id"`
	FullName      string    `json:"full_name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Citizenship   string    `json:"citizenship"`
	TargetCountry string    `json:"target_country"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateParams holds the submitted form fields.
type CreateParams struct {
	FullName      string
	Email         string
	Phone         string
	Citizenship   string
	TargetCountry string
}
