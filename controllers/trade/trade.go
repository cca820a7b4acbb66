package tradeController

import (
	"errors"

	"finsim/database"
	"finsim/ledger"
	"finsim/middleware"
	"finsim/quotes"
	tradeValidator "finsim/validators/trade"

	"github.com/gofiber/fiber/v2"
)

// Buy purchases shares at the current quoted price.
func Buy(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedBuy").(*tradeValidator.TradeRequest)
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

	txn, err := ledger.Buy(database.Database.Db, userId, quote.Symbol, reqData.Shares, quote.Price)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInsufficientFunds):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, ledger.ErrInsufficientFunds.Error(), nil)
		case errors.Is(err, ledger.ErrValidation):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "shares must be a positive integer", nil)
		case errors.Is(err, ledger.ErrNotFound):
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to execute buy!", nil)
		}
	}

	cash, err := ledger.GetCash(database.Database.Db, userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch balance!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Purchase complete.", fiber.Map{
		"transactionId": txn.ID,
		"symbol":        quote.Symbol,
		"name":          quote.Name,
		"shares":        reqData.Shares,
		"price":         quote.Price,
		"cost":          quote.Price * float64(reqData.Shares),
		"cash":          cash,
	})
}

// Sell sells shares of a held symbol at the current quoted price.
func Sell(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedSell").(*tradeValidator.TradeRequest)
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

	txn, err := ledger.Sell(database.Database.Db, userId, quote.Symbol, reqData.Shares, quote.Price)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrNoPosition):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, ledger.ErrNoPosition.Error(), nil)
		case errors.Is(err, ledger.ErrInsufficientShares):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, ledger.ErrInsufficientShares.Error(), nil)
		case errors.Is(err, ledger.ErrValidation):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "shares must be a positive integer", nil)
		case errors.Is(err, ledger.ErrNotFound):
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to execute sell!", nil)
		}
	}

	cash, err := ledger.GetCash(database.Database.Db, userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch balance!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sale complete.", fiber.Map{
		"transactionId": txn.ID,
		"symbol":        quote.Symbol,
		"shares":        reqData.Shares,
		"price":         quote.Price,
		"proceeds":      quote.Price * float64(reqData.Shares),
		"cash":          cash,
	})
}

// OwnedSymbols lists the symbols the user currently holds, for populating a
// sell form.
func OwnedSymbols(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	holdings, err := ledger.Holdings(database.Database.Db, userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch holdings!", nil)
	}

	symbols := make([]string, 0, len(holdings))
	for _, h := range holdings {
		symbols = append(symbols, h.Symbol)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Owned symbols fetched!", fiber.Map{
		"symbols": symbols,
	})
}
