package chat

import "time"

// Role identifies who authored a conversation turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAgent
}

// Turn is one stored message of a conversation. Turns are append-only.
type Turn struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"session_id"`
	Role           Role      `json:"role"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}
