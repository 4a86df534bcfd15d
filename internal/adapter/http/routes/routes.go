package routes

import (
	"context"
	"os"
	_ "wardrobe_pricing/docs"
	"wardrobe_pricing/internal/adapter/export/xlsx"
	"wardrobe_pricing/internal/adapter/http/handlers"
	"wardrobe_pricing/internal/adapter/persistence/postgres"
	"wardrobe_pricing/internal/adapter/persistence/repository"
	"wardrobe_pricing/internal/infrastructure/database"
	"wardrobe_pricing/internal/infrastructure/logging"
	"wardrobe_pricing/internal/infrastructure/payments"
	"wardrobe_pricing/internal/usecase"
	"wardrobe_pricing/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const defaultPort = "8080"

// Run wires storage, use cases and handlers, then serves the API.
func Run(logger zerolog.Logger) {
	ctx := context.Background()

	db, err := database.ConnectPostgres()
	if err != nil {
		log.Fatal().Err(err).Msg("[app][routes] failed to connect to postgres")
	}
	if err := postgres.MigrateAndSeed(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("[app][routes] failed to migrate catalog")
	}
	ddb := database.ConnectDynamoDB(ctx)

	catalogRepo := postgres.NewCatalogRepo(db)
	ruleRepo := postgres.NewRuleRepo(db)
	orderRepo := repository.NewOrderDynamoRepository(ddb)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Warn().Err(err).Msg("[app][routes] Mercado Pago gateway not configured")
	} else {
		paymentGateway = mpGateway
	}

	pricingUseCase := usecase.NewPricingUseCase(catalogRepo, ruleRepo, orderRepo, logging.Component(logger, "pricing.usecase"))
	orderUseCase := usecase.NewOrderUseCase(orderRepo, pricingUseCase, xlsx.NewCutListExporter(), logging.Component(logger, "orders.usecase"))
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, orderRepo, paymentGateway, orderUseCase, logging.Component(logger, "payments.usecase"))
	ruleUseCase := usecase.NewRuleUseCase(ruleRepo, logging.Component(logger, "rules.usecase"))

	router := NewRouter(Handlers{
		Pricing: handlers.NewPricingHandler(pricingUseCase),
		Orders:  handlers.NewOrderHandler(orderUseCase),
		Payment: handlers.NewPaymentHandler(paymentUseCase),
		Rules:   handlers.NewRuleHandler(ruleUseCase),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	log.Info().Str("port", port).Msg("[app][routes] listening")
	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("[app][routes] failed to start the application")
	}
}

// NewRouter builds the gin engine with middlewares, swagger and the /v1 routes.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWardrobeRoutes(v1, h)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(requestLogger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("[app][routes] recovered from panic")
		c.AbortWithStatus(500)
	}))
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", c.Writer.Status()).
			Msg("[app][http] request")
	}
}
