package routes

import (
	"giglink_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every handler group under /api/v1.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers) {
	api := router.Group("/api/v1")

	h.Health.RegisterRoutes(api)
	h.Auth.RegisterRoutes(api)
	h.User.RegisterRoutes(api)
	h.Job.RegisterRoutes(api)
	h.Application.RegisterRoutes(api)
	h.Connection.RegisterRoutes(api)
	h.Feed.RegisterRoutes(api)
	h.Message.RegisterRoutes(api)
}
