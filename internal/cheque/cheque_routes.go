package cheque

import (
	"chequebook/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	cheques := r.Group("/cheques")
	{
		cheques.GET("", handler.GetAll)
		cheques.GET("/next-number", handler.GetNextNumber)
		cheques.GET("/:id", handler.GetById)
		cheques.POST("", middleware.RateLimitByIP(5, 10), handler.Create)
		cheques.PUT("/:id", middleware.RateLimitByIP(5, 10), handler.Update)
		cheques.DELETE("/:id", middleware.RateLimitByIP(1, 3), handler.Delete)
	}
}
