package payroll

import (
	"chequebook/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	payrolls := r.Group("/payrolls")
	{
		payrolls.GET("", handler.GetHistory)
		payrolls.GET("/:id", handler.GetById)
		payrolls.POST("/generate", middleware.RateLimitByIP(2, 5), handler.Generate)
		payrolls.POST("/:id/mark-paid", middleware.RateLimitByIP(5, 10), handler.MarkPaid)
		payrolls.DELETE("/:id", middleware.RateLimitByIP(1, 3), handler.Delete)
	}
}
