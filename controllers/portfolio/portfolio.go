package portfolioController

import (
	"errors"

	"finsim/database"
	"finsim/ledger"
	"finsim/middleware"
	"finsim/quotes"

	"github.com/gofiber/fiber/v2"
)

// Index prices every held symbol at the current quote and returns the
// portfolio with cash and grand total.
func Index(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	db := database.Database.Db

	cash, err := ledger.GetCash(db, userId)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch balance!", nil)
	}

	holdings, err := ledger.Holdings(db, userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch holdings!", nil)
	}

	positions := make([]fiber.Map, 0, len(holdings))
	holdingsTotal := 0.0

	for _, h := range holdings {
		quote, err := quotes.Default.Lookup(h.Symbol)
		if err != nil {
			if errors.Is(err, quotes.ErrQuoteUnavailable) {
				return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, quotes.ErrQuoteUnavailable.Error(), nil)
			}
			// A symbol that was tradable when bought but is unknown
			// now still has to show up; it just cannot be priced.
			positions = append(positions, fiber.Map{
				"symbol": h.Symbol,
				"name":   "",
				"shares": h.Shares,
				"price":  0.0,
				"total":  0.0,
			})
			continue
		}

		total := quote.Price * float64(h.Shares)
		holdingsTotal += total
		positions = append(positions, fiber.Map{
			"symbol": h.Symbol,
			"name":   quote.Name,
			"shares": h.Shares,
			"price":  quote.Price,
			"total":  total,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Portfolio fetched!", fiber.Map{
		"holdings":   positions,
		"cash":       cash,
		"grandTotal": cash + holdingsTotal,
	})
}
