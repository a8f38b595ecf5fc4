package chat

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/matsols/matsols-api/internal/domain/chat"
	"github.com/matsols/matsols-api/internal/infrastructure/database/entities"
	"github.com/matsols/matsols-api/internal/utils/platformerrors"
)

// ChatRepository persists conversation turns.
type ChatRepository struct {
	db *gorm.DB
}

// NewChatRepository constructs the chat repository.
func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// Create inserts one turn.
func (r *ChatRepository) Create(ctx context.Context, turn *domain.Turn) error {
	row := entities.NewSchemaChatMessage(turn)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to store chat message", err)
	}
	turn.CreatedAt = row.CreatedAt
	return nil
}

// ListByConversation returns the turns of a session in creation order.
func (r *ChatRepository) ListByConversation(ctx context.Context, conversationID string) ([]domain.Turn, error) {
	var rows []entities.ChatMessage
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", conversationID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to fetch chat messages", err)
	}

	turns := make([]domain.Turn, len(rows))
	for i := range rows {
		turns[i] = rows[i].EtoD()
	}
	return turns, nil
}

// DeleteOlderThan removes turns created before cutoff.
func (r *ChatRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&entities.ChatMessage{})
	if result.Error != nil {
		return 0, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to prune chat messages", result.Error)
	}
	return result.RowsAffected, nil
}
