package advisor

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/matsols/matsols-api/internal/domain/chat"
	"github.com/matsols/matsols-api/internal/utils/platformerrors"
)

// Service defines the chat responder.
type Service interface {
	// Respond stores the user turn, answers it and stores the agent turn.
	// The caller rejects empty utterances before calling.
	Respond(ctx context.Context, input RespondInput) (*Result, error)
}

// DefaultService implements Service on top of a corpus reader and a
// conversation store.
type DefaultService struct {
	corpus CorpusReader
	store  ConversationStore
	log    zerolog.Logger
}

// NewService creates a new responder.
func NewService(corpus CorpusReader, store ConversationStore, log zerolog.Logger) Service {
	return &DefaultService{
		corpus: corpus,
		store:  store,
		log:    log.With().Str("component", "advisor").Logger(),
	}
}

// Respond handles one utterance. The user turn is written first, so a corpus
// failure leaves the user turn stored and no agent turn. The two writes are
// independent; a failed agent write leaves the user turn without a reply.
func (s *DefaultService) Respond(ctx context.Context, input RespondInput) (*Result, error) {
	userTurn, err := s.store.Append(ctx, input.ConversationID, chat.RoleUser, input.Utterance)
	if err != nil {
		return nil, logWriteError(ctx, chat.RoleUser, err)
	}

	matched, err := s.match(ctx, input.Utterance)
	if err != nil {
		s.log.Error().Err(err).Str("session_id", input.ConversationID).Msg("search corpus")
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeDatabaseError,
			"failed to search degree catalog", fmt.Errorf("%w: %w", ErrCorpusUnavailable, err))
	}

	reply, rule := SelectReply(matched, input.Utterance)

	agentTurn, err := s.store.Append(ctx, input.ConversationID, chat.RoleAgent, reply)
	if err != nil {
		return nil, logWriteError(ctx, chat.RoleAgent, err)
	}

	s.log.Debug().
		Str("session_id", input.ConversationID).
		Str("rule", string(rule)).
		Int("matched", len(matched)).
		Msg("chat reply selected")

	return &Result{
		Reply:     reply,
		Matched:   matched,
		Rule:      rule,
		UserTurn:  userTurn,
		AgentTurn: agentTurn,
	}, nil
}

func (s *DefaultService) match(ctx context.Context, utterance string) ([]CorpusRecord, error) {
	keywords := ExtractKeywords(utterance)
	if len(keywords) == 0 {
		return nil, nil
	}

	records, err := s.corpus.FindMatching(ctx, keywords, MaxMatches)
	if err != nil {
		return nil, err
	}
	if len(records) > MaxMatches {
		records = records[:MaxMatches]
	}
	return records, nil
}

func logWriteError(ctx context.Context, role chat.Role, err error) error {
	return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeDatabaseError,
		fmt.Sprintf("failed to store %s message", role), fmt.Errorf("%w: %w", ErrLogWriteFailed, err))
}
