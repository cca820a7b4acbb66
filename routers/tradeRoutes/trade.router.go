package tradeRoutes

import (
	cashController "finsim/controllers/cash"
	quoteController "finsim/controllers/quote"
	tradeController "finsim/controllers/trade"
	"finsim/middleware"
	cashValidator "finsim/validators/cash"
	tradeValidator "finsim/validators/trade"

	"github.com/gofiber/fiber/v2"
)

func SetupTradeRoutes(app *fiber.App) {
	app.Post("/buy", tradeValidator.Buy(), middleware.JWTMiddleware, tradeController.Buy)
	app.Post("/sell", tradeValidator.Sell(), middleware.JWTMiddleware, tradeController.Sell)
	app.Get("/sell/symbols", middleware.JWTMiddleware, tradeController.OwnedSymbols)
	app.Post("/quote", tradeValidator.Quote(), middleware.JWTMiddleware, quoteController.Lookup)

	app.Get("/cash", middleware.JWTMiddleware, cashController.GetBalance)
	app.Post("/add_cash", cashValidator.AddCash(), middleware.JWTMiddleware, cashController.AddCash)
}
