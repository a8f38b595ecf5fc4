package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/matsols/matsols-api/internal/interfaces/httpserver/handlers"
)

func registerDegreeRoutes(router gin.IRoutes, handler *handlers.DegreeHandler) {
	router.GET("/degrees", handler.List)
	router.GET("/degrees/:slug", handler.Get)
}

func registerLeadRoutes(public, admin gin.IRoutes, handler *handlers.LeadHandler) {
	public.POST("/leads", handler.Create)
	admin.GET("/leads", handler.List)
}

func registerUpdateRoutes(public, admin gin.IRoutes, handler *handlers.UpdateHandler) {
	public.GET("/updates", handler.List)
	admin.POST("/updates", handler.Create)
	admin.DELETE("/updates/:id", handler.Delete)
}

func registerAuthRoutes(router gin.IRoutes, handler *handlers.AuthHandler) {
	router.POST("/auth/register", handler.Register)
	router.POST("/auth/login", handler.Login)
}
