package portfolioRoutes

import (
	historyController "finsim/controllers/history"
	portfolioController "finsim/controllers/portfolio"
	"finsim/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupPortfolioRoutes(app *fiber.App) {
	app.Get("/", middleware.JWTMiddleware, portfolioController.Index)
	app.Get("/history", middleware.JWTMiddleware, historyController.List)
}
