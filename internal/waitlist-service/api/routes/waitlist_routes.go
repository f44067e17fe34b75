package routes

import (
	"waitlist-backend/internal/waitlist-service/api/handler"

	"github.com/gin-gonic/gin"
)

// SetUpWaitlistRoutes registers every endpoint under the /api prefix.
func SetUpWaitlistRoutes(r *gin.Engine, healthHandler handler.HealthHandler, statusHandler handler.StatusHandler, subscriptionHandler handler.SubscriptionHandler) {
	api := r.Group("/api")
	api.GET("/", healthHandler.Root())
	api.POST("/status", statusHandler.CreateStatusCheck())
	api.GET("/status", statusHandler.GetStatusChecks())
	api.POST("/subscribe", subscriptionHandler.Subscribe())
	api.GET("/subscribers", subscriptionHandler.GetSubscribers())
}
