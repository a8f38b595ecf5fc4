package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/matsols/matsols-api/internal/utils/idgen"
	"github.com/matsols/matsols-api/internal/utils/platformerrors"
)

// Service is the conversation log. It appends turns and serves transcripts
// to staff; it never edits a stored turn.
type Service struct {
	repo Repository
	log  zerolog.Logger
	now  func() time.Time
}

// NewService wires the conversation log with its repository.
func NewService(repo Repository, log zerolog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With().Str("component", "chat-service").Logger(),
		now:  time.Now,
	}
}

// Append records one turn for conversationID.
func (s *Service) Append(ctx context.Context, conversationID string, role Role, text string) (Turn, error) {
	if !role.Valid() {
		return Turn{}, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			fmt.Sprintf("unknown chat role %q", role), nil)
	}

	id, err := idgen.New(idgen.PrefixMessage)
	if err != nil {
		return Turn{}, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "generate message id")
	}

	turn := Turn{
		ID:             id,
		ConversationID: conversationID,
		Role:           role,
		Content:        text,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.repo.Create(ctx, &turn); err != nil {
		s.log.Error().Err(err).Str("session_id", conversationID).Str("role", string(role)).Msg("append chat turn")
		return Turn{}, err
	}
	return turn, nil
}

// Transcript returns every stored turn of a conversation in creation order.
func (s *Service) Transcript(ctx context.Context, conversationID string) ([]Turn, error) {
	turns, err := s.repo.ListByConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	return turns, nil
}

// Prune deletes turns older than retention. A non-positive retention keeps
// everything.
func (s *Service) Prune(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, nil
	}

	cutoff := s.now().UTC().Add(-retention)
	removed, err := s.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	s.log.Info().Int64("removed", removed).Time("cutoff", cutoff).Msg("pruned chat turns")
	return removed, nil
}
