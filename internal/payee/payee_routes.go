package payee

import (
	"chequebook/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	payees := r.Group("/payees")
	{
		payees.GET("", handler.GetAll)
		payees.GET("/:id", handler.GetById)
		payees.POST("", middleware.RateLimitByIP(5, 10), handler.Create)
		payees.POST("/import", middleware.RateLimitByIP(0.5, 2), handler.BulkImport)
		payees.PUT("/:id", middleware.RateLimitByIP(5, 10), handler.Update)
		payees.DELETE("/:id", middleware.RateLimitByIP(1, 3), handler.Delete)
	}
}
