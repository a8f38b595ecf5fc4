package update

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/matsols/matsols-api/internal/utils/idgen"
	"github.com/matsols/matsols-api/internal/utils/platformerrors"
)

// defaultDate is shown when an update carries no display date.
const defaultDate = "Today"

// Service manages landing page updates.
type Service interface {
	Create(ctx context.Context, params CreateParams) (*Update, error)
	List(ctx context.Context) ([]*Update, error)
	Delete(ctx context.Context, id string) error
}

// DefaultService implements Service.
type DefaultService struct {
	repo Repository
	log  zerolog.Logger
}

// NewService creates an update service.
func NewService(repo Repository, log zerolog.Logger) Service {
	return &DefaultService{
		repo: repo,
		log:  log.With().Str("component", "update-service").Logger(),
	}
}

// Create stores a new update.
func (s *DefaultService) Create(ctx context.Context, params CreateParams) (*Update, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"title is required", nil)
	}

	category := params.Category
	if category == "" {
		category = CategoryGrid
	}
	if category != CategoryHero && category != CategoryGrid {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"category must be hero or grid", nil)
	}

	date := strings.TrimSpace(params.Date)
	if date == "" {
		date = defaultDate
	}

	id, err := idgen.New(idgen.PrefixUpdate)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "generate update id")
	}

	u := &Update{
		ID:        id,
		Title:     title,
		Category:  category,
		Date:      date,
		Excerpt:   strings.TrimSpace(params.Excerpt),
		Image:     params.Image,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// List returns updates newest first.
func (s *DefaultService) List(ctx context.Context) ([]*Update, error) {
	return s.repo.List(ctx)
}

// Delete removes one update.
func (s *DefaultService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"update id is required", nil)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("update_id", id).Msg("update deleted")
	return nil
}
