package customer

import (
	"chequebook/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	customers := r.Group("/customers")
	{
		customers.GET("", handler.GetAll)
		customers.GET("/:id", handler.GetById)
		customers.POST("", middleware.RateLimitByIP(5, 10), handler.Create)
		customers.PUT("/:id", middleware.RateLimitByIP(5, 10), handler.Update)
		customers.DELETE("/:id", middleware.RateLimitByIP(1, 3), handler.Delete)
	}
}
