package degree

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/matsols/matsols-api/internal/utils/platformerrors"
)

// Service exposes the degree catalog.
type Service interface {
	List(ctx context.Context) ([]*Degree, error)
	GetBySlug(ctx context.Context, slug string) (*Degree, error)
	Search(ctx context.Context, keywords []string, limit int) ([]*Degree, error)
	Upsert(ctx context.Context, d *Degree) error
}

// DefaultService implements Service with an optional read cache.
type DefaultService struct {
	repo  Repository
	cache Cache
	log   zerolog.Logger
}

// NewService creates the catalog service. cache may be nil.
func NewService(repo Repository, cache Cache, log zerolog.Logger) Service {
	return &DefaultService{
		repo:  repo,
		cache: cache,
		log:   log.With().Str("component", "degree-service").Logger(),
	}
}

// List returns all degrees ordered by name.
func (s *DefaultService) List(ctx context.Context) ([]*Degree, error) {
	if s.cache != nil {
		if degrees, ok := s.cache.GetList(ctx); ok {
			return degrees, nil
		}
	}

	degrees, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetList(ctx, degrees)
	}
	return degrees, nil
}

// GetBySlug returns one degree.
func (s *DefaultService) GetBySlug(ctx context.Context, slug string) (*Degree, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"slug is required", nil)
	}

	if s.cache != nil {
		if d, ok := s.cache.GetBySlug(ctx, slug); ok {
			return d, nil
		}
	}

	d, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetBySlug(ctx, d)
	}
	return d, nil
}

// Search runs the keyword search against storage. Results are never cached
// so a storage fault always surfaces.
func (s *DefaultService) Search(ctx context.Context, keywords []string, limit int) ([]*Degree, error) {
	if len(keywords) == 0 || limit <= 0 {
		return nil, nil
	}
	return s.repo.SearchByKeywords(ctx, keywords, limit)
}

// Upsert validates and stores d, then drops cached reads.
func (s *DefaultService) Upsert(ctx context.Context, d *Degree) error {
	if d == nil {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"degree is required", nil)
	}
	d.Slug = strings.TrimSpace(d.Slug)
	d.Name = strings.TrimSpace(d.Name)
	if d.Slug == "" || d.Name == "" {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"degree slug and name are required", nil)
	}

	if err := s.repo.Upsert(ctx, d); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	s.log.Debug().Str("slug", d.Slug).Msg("degree upserted")
	return nil
}
