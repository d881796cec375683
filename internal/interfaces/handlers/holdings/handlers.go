package holdings

import (
	"errors"
	"strconv"

	holdsvc "locker-backend/internal/application/holdings"
	"locker-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *holdsvc.Service
}

// ViewHoldings GET /api/v1/holdings/view-holdings?location_id=&include_zero=
func (h *Handlers) ViewHoldings(c *fiber.Ctx) error {
	locationID, err := strconv.Atoi(c.Query("location_id"))
	if err != nil || locationID == 0 {
		return response.Error(c, "location_id is required", 400, nil)
	}
	includeZero := c.Query("include_zero") == "true"

	rows, err := h.Service.ViewByLocation(c.Context(), locationID, includeZero)
	if err != nil {
		if errors.Is(err, holdsvc.ErrLocationNotFound) {
			return response.Error(c, err.Error(), 404, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Holdings retrieved", rows, fiber.Map{"count": len(rows)})
}

// ViewItem GET /api/v1/holdings/view-item/:item_id
func (h *Handlers) ViewItem(c *fiber.Ctx) error {
	item, rows, err := h.Service.ViewByItem(c.Context(), c.Params("item_id"))
	if err != nil {
		switch {
		case errors.Is(err, holdsvc.ErrItemCodeRequired):
			return response.Error(c, err.Error(), 400, nil)
		case errors.Is(err, holdsvc.ErrItemNotFound):
			return response.Error(c, err.Error(), 404, nil)
		default:
			return response.Error(c, "Internal Server Error", 500, nil)
		}
	}
	return response.Success(c, "Item holdings retrieved", fiber.Map{
		"item":     item,
		"holdings": rows,
	}, fiber.Map{"count": len(rows)})
}
