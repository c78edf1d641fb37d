package routes

import (
	"cornerstone_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the HTTP API.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.NotificationHandler.RegisterRoutes(api)
		appHandlers.PreferenceHandler.RegisterRoutes(api)
	}
}
