package entities

import (
	"time"

	"github.com/matsols/matsols-api/internal/domain/chat"
)

// ChatMessage represents one stored conversation turn.
type ChatMessage struct {
	ID        uint      `gorm:"primaryKey"`
	PublicID  string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	SessionID string    `gorm:"type:varchar(191);index:idx_chat_message_session_created;not null"`
	Role      string    `gorm:"type:varchar(16);not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index:idx_chat_message_session_created;index"`
}

// TableName specifies the table name for ChatMessage.
func (ChatMessage) TableName() string {
	return "chat_messages"
}

// NewSchemaChatMessage converts a domain turn to its schema row.
func NewSchemaChatMessage(t *chat.Turn) *ChatMessage {
	return &ChatMessage{
		PublicID:  t.ID,
		SessionID: t.ConversationID,
		Role:      string(t.Role),
		Content:   t.Content,
		CreatedAt: t.CreatedAt,
	}
}

// EtoD converts the row to a domain turn.
func (e *ChatMessage) EtoD() chat.Turn {
	return chat.Turn{
		ID:             e.PublicID,
		ConversationID: e.SessionID,
		Role:           chat.Role(e.Role),
		Content:        e.Content,
		CreatedAt:      e.CreatedAt,
	}
}
