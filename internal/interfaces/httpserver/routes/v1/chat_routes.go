package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/matsols/matsols-api/internal/interfaces/httpserver/handlers"
)

func registerChatRoutes(public, admin gin.IRoutes, handler *handlers.ChatHandler) {
	public.POST("/chat", handler.Create)
	admin.GET("/chat/:session_id/messages", handler.Transcript)
}
