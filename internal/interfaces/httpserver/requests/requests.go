package requests

// ChatRequest is one inbound chat message.
type ChatRequest struct {
	SessionID string `json:"session_id" binding:"max=191"`
	Content   string `json:"content" binding:"required,max=4000"`
}

// RegisterRequest creates a portal account.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Role     string `json:"role" binding:"omitempty,oneof=STUDENT STAFF"`
}

// LoginRequest exchanges credentials for a token.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateLeadRequest is the consultation form.
type CreateLeadRequest struct {
	FullName      string `json:"full_name" binding:"required,max=255"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"max=64"`
	Citizenship   string `json:"citizenship" binding:"max=128"`
	TargetCountry string `json:"target_country" binding:"max=128"`
}

// CreateUpdateRequest adds a landing page card.
type CreateUpdateRequest struct {
	Title    string  `json:"title" binding:"required,max=255"`
	Category string  `json:"category" binding:"omitempty,oneof=hero grid"`
	Date     string  `json:"date" binding:"max=64"`
	Excerpt  string  `json:"excerpt"`
	Image    *string `json:"image" binding:"omitempty,url"`
}
