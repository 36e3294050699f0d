package app

import (
	"github.com/gin-gonic/gin"
	handlers "github.com/jeffleon2/draftea-settlement-service/internal/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *App) RegisterRoutes(h *handlers.SettlementHandler) {
	a.Router.POST("/debit", h.Debit)
	a.Router.GET("/health", h.Health)
	a.Router.GET("/settlements/:transaction_id", h.GetSettlement)
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
