package advisor

import (
	"context"
	"errors"

	"github.com/matsols/matsols-api/internal/domain/chat"
)

// MaxMatches caps the number of records a reply may reference.
const MaxMatches = 3

var (
	// ErrCorpusUnavailable is returned when the catalog could not be searched.
	ErrCorpusUnavailable = errors.New("corpus unavailable")
	// ErrLogWriteFailed is returned when a conversation turn could not be stored.
	ErrLogWriteFailed = errors.New("conversation log write failed")
)

// CorpusRecord is a catalog entry the responder can reference.
type CorpusRecord struct {
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	Description *string `json:"-"`
}

// RespondInput is one inbound chat request.
type RespondInput struct {
	ConversationID string
	Utterance      string
}

// Result is the outcome of a successful Respond call.
type Result struct {
	Reply     string
	Matched   []CorpusRecord
	Rule      ReplyRule
	UserTurn  chat.Turn
	AgentTurn chat.Turn
}

// CorpusReader searches the catalog. Records are returned in storage order,
// at most limit of them, matching any keyword in name or description.
type CorpusReader interface {
	FindMatching(ctx context.Context, keywords []string, limit int) ([]CorpusRecord, error)
}

// ConversationStore appends turns to the conversation log.
type ConversationStore interface {
	Append(ctx context.Context, conversationID string, role chat.Role, text string) (chat.Turn, error)
}
