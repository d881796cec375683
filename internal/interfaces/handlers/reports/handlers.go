package reports

import (
	"errors"
	"strconv"
	"strings"
	"time"

	repsvc "locker-backend/internal/application/reports"
	"locker-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *repsvc.Service
}

// GearList GET /api/v1/reports/gear-list?location_id=
func (h *Handlers) GearList(c *fiber.Ctx) error {
	locationID, err := strconv.Atoi(c.Query("location_id"))
	if err != nil || locationID == 0 {
		return response.Error(c, "location_id is required", 400, nil)
	}
	data, err := h.Service.GearList(c.Context(), locationID)
	if err != nil {
		if errors.Is(err, repsvc.ErrLocationNotFound) {
			return response.Error(c, err.Error(), 404, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Gear list generated", data, fiber.Map{"count": len(data.Rows)})
}

// Recap GET /api/v1/reports/recap?start=&end=&inspected_by=
func (h *Handlers) Recap(c *fiber.Ctx) error {
	start, end, err := parseRange(c)
	if err != nil {
		return response.Error(c, err.Error(), 400, nil)
	}
	rows, err := h.Service.Recap(c.Context(), start, end, c.Query("inspected_by"))
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Recap generated", rows, fiber.Map{"count": len(rows)})
}

// MaterialList GET /api/v1/reports/material-list?start=&end=&inv_type=
func (h *Handlers) MaterialList(c *fiber.Ctx) error {
	start, end, err := parseRange(c)
	if err != nil {
		return response.Error(c, err.Error(), 400, nil)
	}
	rows, err := h.Service.MaterialList(c.Context(), start, end, c.Query("inv_type"))
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Material list generated", rows, fiber.Map{"count": len(rows)})
}

// parseRange reads start/end date query params. The end date is pushed to the
// last instant of its day so a same-day range still matches.
func parseRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	startRaw := strings.TrimSpace(c.Query("start"))
	endRaw := strings.TrimSpace(c.Query("end"))
	if startRaw == "" || endRaw == "" {
		return time.Time{}, time.Time{}, errors.New("start and end dates are required")
	}
	start, err := time.Parse("2006-01-02", startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("Invalid start date")
	}
	end, err := time.Parse("2006-01-02", endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("Invalid end date")
	}
	end = end.Add(24*time.Hour - time.Nanosecond)
	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.New("end date precedes start date")
	}
	return start, end, nil
}
