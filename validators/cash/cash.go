package cashValidator

import (
	"finsim/middleware"

	"github.com/gofiber/fiber/v2"
)

// AddCash validates a cash deposit request
func AddCash() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Amount float64 `json:"amount"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "invalid amount", nil)
		}

		if reqData.Amount <= 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"amount": "amount must be positive",
			})
		}

		c.Locals("validatedAddCash", reqData)
		return c.Next()
	}
}
