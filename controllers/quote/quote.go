package quoteController

import (
	"errors"

	"finsim/middleware"
	"finsim/quotes"

	"github.com/gofiber/fiber/v2"
)

// Lookup returns the current quote for a symbol.
func Lookup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedQuote").(*struct {
		Symbol string `json:"symbol"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	quote, err := quotes.Default.Lookup(reqData.Symbol)
	if err != nil {
		if errors.Is(err, quotes.ErrQuoteUnavailable) {
			return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, quotes.ErrQuoteUnavailable.Error(), nil)
		}
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, quotes.ErrQuoteNotFound.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quote fetched!", quote)
}
