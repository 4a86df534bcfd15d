package routes

import (
	"wardrobe_pricing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathLayouts  = "/layouts"
	PathQuotes   = "/quotes"
	PathOrders   = "/orders"
	PathPayments = "/payments"
	PathRules    = "/rules"
)

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	Pricing *handlers.PricingHandler
	Orders  *handlers.OrderHandler
	Payment *handlers.PaymentHandler
	Rules   *handlers.RuleHandler
}

func addWardrobeRoutes(rg *gin.RouterGroup, h Handlers) {
	rg.POST(PathLayouts, h.Pricing.Layout)
	rg.POST(PathQuotes, h.Pricing.Quote)

	orders := rg.Group(PathOrders)
	{
		orders.POST("", h.Orders.CreateOrder)
		orders.GET("", h.Orders.ListOrders)
		orders.GET("/:id", h.Orders.GetOrder)
		orders.GET("/:id/cutlist.xlsx", h.Orders.ExportCutList)
		orders.POST("/:id/payments", h.Payment.CreatePayment)
		orders.GET("/:id/payments", h.Payment.ListPayments)
	}

	rg.GET(PathPayments+"/:id", h.Payment.GetPayment)

	rules := rg.Group(PathRules)
	{
		rules.GET("", h.Rules.ListRules)
		rules.POST("", h.Rules.CreateRule)
		rules.GET("/:id", h.Rules.GetRule)
		rules.PUT("/:id", h.Rules.UpdateRule)
	}
}
