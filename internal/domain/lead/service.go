package lead

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/matsols/matsols-api/internal/utils/idgen"
	"github.com/matsols/matsols-api/internal/utils/platformerrors"
)

// Service handles consultation requests.
type Service interface {
	Submit(ctx context.Context, params CreateParams) (*Lead, error)
	List(ctx context.Context) ([]*Lead, error)
}

// DefaultService implements Service.
type DefaultService struct {
	repo Repository
	log  zerolog.Logger
}

// NewService creates a lead service.
func NewService(repo Repository, log zerolog.Logger) Service {
	return &DefaultService{
		repo: repo,
		log:  log.With().Str("component", "lead-service").Logger(),
	}
}

// Submit stores a new lead.
func (s *DefaultService) Submit(ctx context.Context, params CreateParams) (*Lead, error) {
	id, err := idgen.New(idgen.PrefixLead)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "generate lead id")
	}

	l := &Lead{
		ID:            id,
		FullName:      strings.TrimSpace(params.FullName),
		Email:         strings.ToLower(strings.TrimSpace(params.Email)),
		Phone:         strings.TrimSpace(params.Phone),
		Citizenship:   strings.TrimSpace(params.Citizenship),
		TargetCountry: strings.TrimSpace(params.TargetCountry),
		CreatedAt:     time.Now().UTC(),
	}
	if l.FullName == "" || l.Email == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"full name and email are required", nil)
	}

	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// List returns all leads newest first.
func (s *DefaultService) List(ctx context.Context) ([]*Lead, error) {
	return s.repo.List(ctx)
}
