package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/matsols/matsols-api/internal/domain/user"
	"github.com/matsols/matsols-api/internal/interfaces/httpserver/requests"
	"github.com/matsols/matsols-api/internal/interfaces/httpserver/responses"
	"github.com/matsols/matsols-api/internal/utils/platformerrors"
)

// AuthHandler registers accounts and issues tokens.
type AuthHandler struct {
	service user.Service
	log     zerolog.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(service user.Service, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With().Str("handler", "auth").Logger(),
	}
}

// Register handles POST /v1/auth/register
// @Summary Register an account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body requests.RegisterRequest true "Account"
// @Success 201 {object} responses.RegisterResponse
// @Failure 400 {object} platformerrors.HTTPErrorResponse
// @Failure 409 {object} platformerrors.HTTPErrorResponse
// @Router /v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req requests.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.service.Register(c.Request.Context(), user.RegisterParams{
		Email:    req.Email,
		Password: req.Password,
		Role:     user.Role(req.Role),
	})
	if err != nil {
		platformerrors.WriteError(c, err, h.log)
		return
	}
	c.JSON(http.StatusCreated, responses.RegisterResponse{Message: "User registered successfully", UserID: u.ID})
}

// Login handles POST /v1/auth/login
// @Summary Log in
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body requests.LoginRequest true "Credentials"
// @Success 200 {object} responses.LoginResponse
// @Failure 401 {object} platformerrors.HTTPErrorResponse
// @Router /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req requests.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	session, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		platformerrors.WriteError(c, err, h.log)
		return
	}
	c.JSON(http.StatusOK, responses.NewLoginResponse(session))
}
