package storesale

import (
	"chequebook/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	sales := r.Group("/sales")
	{
		sales.GET("", handler.GetAll)
		sales.GET("/:id", handler.GetById)
		sales.POST("", middleware.RateLimitByIP(5, 10), handler.Create)
		sales.PUT("/:id", middleware.RateLimitByIP(5, 10), handler.Update)
		sales.DELETE("/:id", middleware.RateLimitByIP(1, 3), handler.Delete)
	}
}
