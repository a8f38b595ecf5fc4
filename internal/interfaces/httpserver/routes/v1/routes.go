package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/matsols/matsols-api/internal/infrastructure/auth"
	"github.com/matsols/matsols-api/internal/interfaces/httpserver/handlers"
	"github.com/matsols/matsols-api/internal/interfaces/httpserver/middlewares"
)

// Routes encapsulates versioned route registration.
type Routes struct {
	handlers        *handlers.Provider
	auth            *auth.Validator
	publicRateLimit float64
}

// NewRoutes builds the v1 route registrar.
func NewRoutes(handlerProvider *handlers.Provider, authValidator *auth.Validator, publicRateLimit float64) *Routes {
	return &Routes{
		handlers:        handlerProvider,
		auth:            authValidator,
		publicRateLimit: publicRateLimit,
	}
}

// Register attaches all v1 routes under /v1 prefix.
func (r *Routes) Register(engine *gin.Engine) {
	group := engine.Group("/v1")

	// One bucket per client shared by the anonymous write endpoints.
	limited := group.Group("", middlewares.RateLimitMiddleware(r.publicRateLimit))
	admin := group.Group("", r.auth.Middleware(), auth.RequireAdmin())

	registerChatRoutes(limited, admin, r.handlers.Chat)
	registerDegreeRoutes(group, r.handlers.Degree)
	registerLeadRoutes(limited, admin, r.handlers.Lead)
	registerUpdateRoutes(group, admin, r.handlers.Update)
	registerAuthRoutes(limited, r.handlers.Auth)
}
