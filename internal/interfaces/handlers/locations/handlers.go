package locations

import (
	"errors"
	"strconv"

	locsvc "locker-backend/internal/application/locations"
	"locker-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *locsvc.Service
}

// GetLocations GET /api/v1/locations/get-locations?include_finished=
func (h *Handlers) GetLocations(c *fiber.Ctx) error {
	includeFinished := c.Query("include_finished") == "true"
	rows, err := h.Service.ListLocations(c.Context(), includeFinished)
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Locations retrieved", rows, fiber.Map{"count": len(rows)})
}

// GetLocation GET /api/v1/locations/get-location/:id
func (h *Handlers) GetLocation(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid location id", 400, nil)
	}
	payload, err := h.Service.GetLocation(c.Context(), id)
	if err != nil {
		if errors.Is(err, locsvc.ErrLocationNotFound) {
			return response.Error(c, err.Error(), 404, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Location retrieved", payload, nil)
}

// GetBerths GET /api/v1/locations/get-berths
func (h *Handlers) GetBerths(c *fiber.Ctx) error {
	rows, err := h.Service.ListBerths(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Berths retrieved", rows, fiber.Map{"count": len(rows)})
}
