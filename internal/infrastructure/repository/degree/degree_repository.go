package degree

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/matsols/matsols-api/internal/domain/degree"
	"github.com/matsols/matsols-api/internal/infrastructure/database/entities"
	"github.com/matsols/matsols-api/internal/utils/platformerrors"
)

// DegreeRepository persists the degree catalog.
type DegreeRepository struct {
	db *gorm.DB
}

// NewDegreeRepository constructs the degree repository.
func NewDegreeRepository(db *gorm.DB) *DegreeRepository {
	return &DegreeRepository{db: db}
}

// List returns every degree ordered by name.
func (r *DegreeRepository) List(ctx context.Context) ([]*domain.Degree, error) {
	var rows []entities.Degree
	if err := r.db.WithContext(ctx).Order("name ASC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to fetch degrees", err)
	}
	return toDomain(rows), nil
}

// FindBySlug retrieves one degree.
func (r *DegreeRepository) FindBySlug(ctx context.Context, slug string) (*domain.Degree, error) {
	var row entities.Degree
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound,
				"Degree not found", nil)
		}
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to fetch degree details", err)
	}
	return row.EtoD(), nil
}

// SearchByKeywords returns degrees whose name or about text contains any
// keyword, case-insensitively, in insertion order.
func (r *DegreeRepository) SearchByKeywords(ctx context.Context, keywords []string, limit int) ([]*domain.Degree, error) {
	if len(keywords) == 0 || limit <= 0 {
		return nil, nil
	}

	conditions := make([]string, 0, len(keywords)*2)
	args := make([]any, 0, len(keywords)*2)
	for _, kw := range keywords {
		pattern := "%" + escapeLike(strings.ToLower(kw)) + "%"
		conditions = append(conditions, `LOWER(name) LIKE ? ESCAPE '\'`, `LOWER(about) LIKE ? ESCAPE '\'`)
		args = append(args, pattern, pattern)
	}

	var rows []entities.Degree
	if err := r.db.WithContext(ctx).
		Where(strings.Join(conditions, " OR "), args...).
		Order("id ASC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to search degrees", err)
	}
	return toDomain(rows), nil
}

// Upsert inserts d or overwrites the row with the same slug.
func (r *DegreeRepository) Upsert(ctx context.Context, d *domain.Degree) error {
	row := entities.NewSchemaDegree(d)
	row.ID = 0
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns(entities.DegreeUpsertColumns),
	}).Create(row).Error
	if err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to upsert degree", err)
	}

	stored, err := r.FindBySlug(ctx, d.Slug)
	if err != nil {
		return err
	}
	*d = *stored
	return nil
}

func toDomain(rows []entities.Degree) []*domain.Degree {
	degrees := make([]*domain.Degree, len(rows))
	for i := range rows {
		degrees[i] = rows[i].EtoD()
	}
	return degrees
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
