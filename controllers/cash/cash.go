package cashController

import (
	"errors"

	"finsim/database"
	"finsim/ledger"
	"finsim/middleware"

	"github.com/gofiber/fiber/v2"
)

// GetBalance returns the user's current cash balance.
func GetBalance(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	cash, err := ledger.GetCash(database.Database.Db, userId)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch balance!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Balance fetched!", fiber.Map{
		"cash": cash,
	})
}

// AddCash credits a validated positive amount to the balance.
func AddCash(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedAddCash").(*struct {
		Amount float64 `json:"amount"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	balance, err := ledger.AddCash(database.Database.Db, userId, reqData.Amount)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrValidation):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "amount must be positive", nil)
		case errors.Is(err, ledger.ErrNotFound):
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add cash!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cash added.", fiber.Map{
		"amount": reqData.Amount,
		"cash":   balance,
	})
}
