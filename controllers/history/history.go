package historyController

import (
	"finsim/database"
	"finsim/ledger"
	"finsim/middleware"

	"github.com/gofiber/fiber/v2"
)

// List returns the user's transaction history, most recent first.
func List(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	period := c.Query("period") // today, week, month

	txns, total, err := ledger.History(database.Database.Db, userId, page, limit, period)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch history!", nil)
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "History fetched!", fiber.Map{
		"transactions": txns,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
