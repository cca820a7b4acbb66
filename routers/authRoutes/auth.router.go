package authRoutes

import (
	authControllers "finsim/controllers/auth"
	"finsim/middleware"
	authValidators "finsim/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", authValidators.Register(), authControllers.Register)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Get("/logout", middleware.JWTMiddleware, authControllers.Logout)
	authGroup.Put("/change_password", authValidators.ChangePassword(), middleware.JWTMiddleware, authControllers.ChangePassword)
}
