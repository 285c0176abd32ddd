package employee

import (
	"chequebook/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	{
		employees.GET("", handler.GetAll)
		employees.GET("/options", handler.GetOptions)
		employees.GET("/:id", handler.GetById)
		employees.POST("", middleware.RateLimitByIP(5, 10), handler.Create)
		employees.PUT("/:id", middleware.RateLimitByIP(5, 10), handler.Update)
		employees.POST("/:id/toggle-active", middleware.RateLimitByIP(5, 10), handler.ToggleActive)
		employees.PUT("", middleware.RateLimitByIP(2, 5), handler.ReplaceAll)
		employees.DELETE("/:id", middleware.RateLimitByIP(1, 3), handler.Delete)
	}
}
