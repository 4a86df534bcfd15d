package main

import (
	"wardrobe_pricing/internal/adapter/http/routes"
	"wardrobe_pricing/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Wardrobe Pricing API
// @version         1.0
// @description     Wardrobe configurator layouts, cut lists, rule-based quotes, orders and payments.

// @host localhost:8080

// @BasePath  /v1

func main() {
	logger := logging.Setup()
	routes.Run(logger)
}
