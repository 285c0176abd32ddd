package backup

import (
	"chequebook/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	group := r.Group("/backup")
	{
		group.GET("/export", handler.Export)
		group.POST("/import", middleware.RateLimitByIP(1, 2), handler.Import)
	}
}
