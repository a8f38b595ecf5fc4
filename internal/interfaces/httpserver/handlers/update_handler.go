package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/matsols/matsols-api/internal/domain/update"
	"github.com/matsols/matsols-api/internal/interfaces/httpserver/requests"
	"github.com/matsols/matsols-api/internal/interfaces/httpserver/responses"
	"github.com/matsols/matsols-api/internal/utils/platformerrors"
)

// UpdateHandler serves landing page updates.
type UpdateHandler struct {
	service update.Service
	log     zerolog.Logger
}

// NewUpdateHandler constructs the handler.
func NewUpdateHandler(service update.Service, log zerolog.Logger) *UpdateHandler {
	return &UpdateHandler{
		service: service,
		log:     log.With().Str("handler", "update").Logger(),
	}
}

// List handles GET /v1/updates
// @Summary List updates
// @Tags Updates
// @Produce json
// @Success 200 {array} update.Update
// @Router /v1/updates [get]
func (h *UpdateHandler) List(c *gin.Context) {
	updates, err := h.service.List(c.Request.Context())
	if err != nil {
		platformerrors.WriteError(c, err, h.log)
		return
	}
	if updates == nil {
		updates = []*update.Update{}
	}
	c.JSON(http.StatusOK, updates)
}

// Create handles POST /v1/updates
// @Summary Create an update
// @Tags Updates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body requests.CreateUpdateRequest true "Update"
// @Success 201 {object} update.Update
// @Failure 400 {object} platformerrors.HTTPErrorResponse
// @Failure 403 {object} platformerrors.HTTPErrorResponse
// @Router /v1/updates [post]
func (h *UpdateHandler) Create(c *gin.Context) {
	var req requests.CreateUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.service.Create(c.Request.Context(), update.CreateParams{
		Title:    req.Title,
		Category: update.Category(req.Category),
		Date:     req.Date,
		Excerpt:  req.Excerpt,
		Image:    req.Image,
	})
	if err != nil {
		platformerrors.WriteError(c, err, h.log)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// Delete handles DELETE /v1/updates/:id
// @Summary Delete an update
// @Tags Updates
// @Produce json
// @Security BearerAuth
// @Param id path string true "Update ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 403 {object} platformerrors.HTTPErrorResponse
// @Failure 404 {object} platformerrors.HTTPErrorResponse
// @Router /v1/updates/{id} [delete]
func (h *UpdateHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		platformerrors.WriteError(c, err, h.log)
		return
	}
	c.JSON(http.StatusOK, responses.SuccessResponse{Success: true})
}
