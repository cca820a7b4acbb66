package tradeValidator

import (
	"finsim/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// TradeRequest is the validated buy/sell payload handed to the controllers.
type TradeRequest struct {
	Symbol string `json:"symbol"`
	Shares int64  `json:"shares"`
}

func validateTrade(localsKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(TradeRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Symbol) == "" {
			errors["symbol"] = "must provide symbol"
		}
		if reqData.Shares <= 0 {
			errors["shares"] = "shares must be a positive integer"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData.Symbol = strings.ToUpper(strings.TrimSpace(reqData.Symbol))

		c.Locals(localsKey, reqData)
		return c.Next()
	}
}

// Buy validates a buy request
func Buy() fiber.Handler {
	return validateTrade("validatedBuy")
}

// Sell validates a sell request
func Sell() fiber.Handler {
	return validateTrade("validatedSell")
}

// Quote validates a quote lookup request
func Quote() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Symbol string `json:"symbol"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Symbol) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"symbol": "must provide symbol",
			})
		}

		c.Locals("validatedQuote", reqData)
		return c.Next()
	}
}
