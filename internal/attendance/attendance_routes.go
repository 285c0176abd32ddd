package attendance

import (
	"chequebook/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	attendance := r.Group("/attendance")
	{
		attendance.GET("", handler.GetForPeriod)
		attendance.GET("/week", handler.GetWeekGrid)
		attendance.POST("/multiplier", middleware.RateLimitByIP(10, 20), handler.SetMultiplier)
		attendance.DELETE("/:id", middleware.RateLimitByIP(1, 3), handler.Delete)
	}
}
