package debt

import (
	"chequebook/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	debts := r.Group("/debts")
	{
		debts.GET("/balances", handler.GetBalances)
		debts.GET("/:entityType/:entityId/history", handler.GetHistory)
		debts.GET("/:entityType/:entityId/balance", handler.GetBalance)
		debts.POST("", middleware.RateLimitByIP(5, 10), handler.Create)
		debts.PUT("/:id", middleware.RateLimitByIP(5, 10), handler.Update)
		debts.DELETE("/:id", middleware.RateLimitByIP(1, 3), handler.Delete)
	}
}
