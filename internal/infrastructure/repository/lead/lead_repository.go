package lead

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/matsols/matsols-api/internal/domain/lead"
	"github.com/matsols/matsols-api/internal/infrastructure/database/entities"
	"github.com/matsols/matsols-api/internal/utils/platformerrors"
)

// LeadRepository persists consultation requests.
type LeadRepository struct {
	db *gorm.DB
}

// NewLeadRepository constructs the lead repository.
func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// Create inserts one lead.
func (r *LeadRepository) Create(ctx context.Context, l *domain.Lead) error {
	row := entities.NewSchemaLead(l)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to submit lead", err)
	}
	l.CreatedAt = row.CreatedAt
	return nil
}

// List returns leads newest first.
func (r *LeadRepository) List(ctx context.Context) ([]*domain.Lead, error) {
	var rows []entities.Lead
	if err := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&rows).Error; err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to fetch leads", err)
	}

	leads := make([]*domain.Lead, len(rows))
	for i := range rows {
		leads[i] = rows[i].EtoD()
	}
	return leads, nil
}
