package main

import (
	"finsim/config"
	"finsim/database"
	"finsim/quotes"
	authRoutes "finsim/routers/authRoutes"
	portfolioRoutes "finsim/routers/portfolioRoutes"
	tradeRoutes "finsim/routers/tradeRoutes"
	"finsim/utils"

	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	quotes.Init(config.AppConfig.QuoteApiURL, config.AppConfig.QuoteApiKey)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	tradeRoutes.SetupTradeRoutes(app)
	portfolioRoutes.SetupPortfolioRoutes(app)

	utils.InitializeLedgerAudit()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
