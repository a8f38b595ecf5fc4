package responses

import (
	"time"

	"github.com/matsols/matsols-api/internal/domain/advisor"
	"github.com/matsols/matsols-api/internal/domain/chat"
	"github.com/matsols/matsols-api/internal/domain/user"
)

// ChatReplyResponse is the stored agent turn plus the reply details.
type ChatReplyResponse struct {
	ID        string          `json:"id"`
	SessionID string          `json:"session_id"`
	Role      chat.Role       `json:"role"`
	Content   string          `json:"content"`
	CreatedAt time.Time       `json:"created_at"`
	Reply     string          `json:"reply"`
	Matched   []MatchedRecord `json:"matched"`
}

// MatchedRecord is a catalog entry referenced by a reply.
type MatchedRecord struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// NewChatReplyResponse maps a responder result.
func NewChatReplyResponse(result *advisor.Result) ChatReplyResponse {
	matched := make([]MatchedRecord, len(result.Matched))
	for i, record := range result.Matched {
		matched[i] = MatchedRecord{Slug: record.Slug, Name: record.Name}
	}
	return ChatReplyResponse{
		ID:        result.AgentTurn.ID,
		SessionID: result.AgentTurn.ConversationID,
		Role:      result.AgentTurn.Role,
		Content:   result.AgentTurn.Content,
		CreatedAt: result.AgentTurn.CreatedAt,
		Reply:     result.Reply,
		Matched:   matched,
	}
}

// TranscriptResponse lists the turns of one session.
type TranscriptResponse struct {
	SessionID string      `json:"session_id"`
	Messages  []chat.Turn `json:"messages"`
}

// RegisterResponse acknowledges a new account.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID    string    `json:"id"`
	Email string    `json:"email"`
	Role  user.Role `json:"role"`
}

// LoginResponse carries the access token.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// NewLoginResponse maps a login session.
func NewLoginResponse(session *user.Session) LoginResponse {
	return LoginResponse{
		Token: session.Token,
		User: UserResponse{
			ID:    session.User.ID,
			Email: session.User.Email,
			Role:  session.User.Role,
		},
	}
}

// SuccessResponse acknowledges a delete.
type SuccessResponse struct {
	Success bool `json:"success"`
}
