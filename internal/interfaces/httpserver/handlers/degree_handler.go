package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/matsols/matsols-api/internal/domain/degree"
	"github.com/matsols/matsols-api/internal/utils/platformerrors"
)

// DegreeHandler serves the public degree catalog.
type DegreeHandler struct {
	service degree.Service
	log     zerolog.Logger
}

// NewDegreeHandler constructs the handler.
func NewDegreeHandler(service degree.Service, log zerolog.Logger) *DegreeHandler {
	return &DegreeHandler{
		service: service,
		log:     log.With().Str("handler", "degree").Logger(),
	}
}

// List handles GET /v1/degrees
// @Summary List degrees
// @Tags Degrees
// @Produce json
// @Success 200 {array} degree.Degree
// @Failure 500 {object} platformerrors.HTTPErrorResponse
// @Router /v1/degrees [get]
func (h *DegreeHandler) List(c *gin.Context) {
	degrees, err := h.service.List(c.Request.Context())
	if err != nil {
		platformerrors.WriteError(c, err, h.log)
		return
	}
	if degrees == nil {
		degrees = []*degree.Degree{}
	}
	c.JSON(http.StatusOK, degrees)
}

// Get handles GET /v1/degrees/:slug
// @Summary Get a degree
// @Tags Degrees
// @Produce json
// @Param slug path string true "Degree slug"
// @Success 200 {object} degree.Degree
// @Failure 404 {object} platformerrors.HTTPErrorResponse
// @Failure 500 {object} platformerrors.HTTPErrorResponse
// @Router /v1/degrees/{slug} [get]
func (h *DegreeHandler) Get(c *gin.Context) {
	d, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		platformerrors.WriteError(c, err, h.log)
		return
	}
	c.JSON(http.StatusOK, d)
}
