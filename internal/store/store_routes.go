package store

import (
	"chequebook/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	stores := r.Group("/stores")
	{
		stores.GET("", handler.GetAll)
		stores.GET("/:id", handler.GetById)
		stores.POST("", middleware.RateLimitByIP(5, 10), handler.Create)
		stores.PUT("", middleware.RateLimitByIP(2, 5), handler.ReplaceAll)
		stores.PUT("/:id", middleware.RateLimitByIP(5, 10), handler.Update)
		stores.DELETE("/:id", middleware.RateLimitByIP(1, 3), handler.Delete)
	}
}
