package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/matsols/matsols-api/internal/domain/lead"
	"github.com/matsols/matsols-api/internal/infrastructure/telemetry"
	"github.com/matsols/matsols-api/internal/interfaces/httpserver/requests"
	"github.com/matsols/matsols-api/internal/utils/platformerrors"
)

// LeadHandler accepts consultation requests.
type LeadHandler struct {
	service lead.Service
	redact  *telemetry.Redactor
	log     zerolog.Logger
}

// NewLeadHandler constructs the handler.
func NewLeadHandler(service lead.Service, redactor *telemetry.Redactor, log zerolog.Logger) *LeadHandler {
	return &LeadHandler{
		service: service,
		redact:  redactor,
		log:     log.With().Str("handler", "lead").Logger(),
	}
}

// Create handles POST /v1/leads
// @Summary Submit a consultation request
// @Tags Leads
// @Accept json
// @Produce json
// @Param request body requests.CreateLeadRequest true "Lead"
// @Success 201 {object} lead.Lead
// @Failure 400 {object} platformerrors.HTTPErrorResponse
// @Failure 500 {object} platformerrors.HTTPErrorResponse
// @Router /v1/leads [post]
func (h *LeadHandler) Create(c *gin.Context) {
	var req requests.CreateLeadRequest
	if !bindJSON(c, &req) {
		return
	}

	l, err := h.service.Submit(c.Request.Context(), lead.CreateParams{
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		Citizenship:   req.Citizenship,
		TargetCountry: req.TargetCountry,
	})
	if err != nil {
		platformerrors.WriteError(c, err, h.log)
		return
	}
	h.log.Info().
		Str("lead_id", l.ID).
		Str("email", h.redact.Identifier(l.Email)).
		Str("target_country", l.TargetCountry).
		Msg("lead submitted")
	c.JSON(http.StatusCreated, l)
}

// List handles GET /v1/leads
// @Summary List consultation requests
// @Tags Leads
// @Produce json
// @Security BearerAuth
// @Success 200 {array} lead.Lead
// @Failure 401 {object} platformerrors.HTTPErrorResponse
// @Failure 403 {object} platformerrors.HTTPErrorResponse
// @Router /v1/leads [get]
func (h *LeadHandler) List(c *gin.Context) {
	leads, err := h.service.List(c.Request.Context())
	if err != nil {
		platformerrors.WriteError(c, err, h.log)
		return
	}
	if leads == nil {
		leads = []*lead.Lead{}
	}
	c.JSON(http.StatusOK, leads)
}
