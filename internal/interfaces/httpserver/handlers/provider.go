package handlers

import (
	"github.com/rs/zerolog"

	"github.com/matsols/matsols-api/internal/domain/advisor"
	"github.com/matsols/matsols-api/internal/domain/degree"
	"github.com/matsols/matsols-api/internal/domain/lead"
	"github.com/matsols/matsols-api/internal/domain/update"
	"github.com/matsols/matsols-api/internal/domain/user"
	"github.com/matsols/matsols-api/internal/infrastructure/telemetry"
)

// Provider wires all HTTP handlers for dependency injection.
type Provider struct {
	Chat   *ChatHandler
	Degree *DegreeHandler
	Lead   *LeadHandler
	Update *UpdateHandler
	Auth   *AuthHandler
}

// NewProvider constructs the handler provider with domain services.
func NewProvider(
	advisorService advisor.Service,
	transcripts TranscriptReader,
	degreeService degree.Service,
	leadService lead.Service,
	updateService update.Service,
	userService user.Service,
	redactor *telemetry.Redactor,
	log zerolog.Logger,
) *Provider {
	return &Provider{
		Chat:   NewChatHandler(advisorService, transcripts, redactor, log),
		Degree: NewDegreeHandler(degreeService, log),
		Lead:   NewLeadHandler(leadService, redactor, log),
		Update: NewUpdateHandler(updateService, log),
		Auth:   NewAuthHandler(userService, log),
	}
}
