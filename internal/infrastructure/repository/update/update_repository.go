package update

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/matsols/matsols-api/internal/domain/update"
	"github.com/matsols/matsols-api/internal/infrastructure/database/entities"
	"github.com/matsols/matsols-api/internal/utils/platformerrors"
)

// UpdateRepository persists landing page updates.
type UpdateRepository struct {
	db *gorm.DB
}

// NewUpdateRepository constructs the update repository.
func NewUpdateRepository(db *gorm.DB) *UpdateRepository {
	return &UpdateRepository{db: db}
}

// Create inserts one update.
func (r *UpdateRepository) Create(ctx context.Context, u *domain.Update) error {
	row := entities.NewSchemaUpdate(u)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to create update", err)
	}
	u.CreatedAt = row.CreatedAt
	return nil
}

// List returns updates newest first.
func (r *UpdateRepository) List(ctx context.Context) ([]*domain.Update, error) {
	var rows []entities.Update
	if err := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&rows).Error; err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to fetch updates", err)
	}

	updates := make([]*domain.Update, len(rows))
	for i := range rows {
		updates[i] = rows[i].EtoD()
	}
	return updates, nil
}

// Delete removes the update with the given public id.
func (r *UpdateRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("public_id = ?", id).Delete(&entities.Update{})
	if result.Error != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to delete update", result.Error)
	}
	if result.RowsAffected == 0 {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound,
			fmt.Sprintf("update not found: %s", id), nil)
	}
	return nil
}
