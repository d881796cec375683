package reference

import (
	refsvc "locker-backend/internal/application/reference"
	"locker-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *refsvc.Service
}

// GetInspectors GET /api/v1/reference/get-inspectors
func (h *Handlers) GetInspectors(c *fiber.Ctx) error {
	rows, err := h.Service.ListInspectors(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Inspectors retrieved", rows, fiber.Map{"count": len(rows)})
}

// GetCompanies GET /api/v1/reference/get-companies
func (h *Handlers) GetCompanies(c *fiber.Ctx) error {
	rows, err := h.Service.ListCompanies(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Companies retrieved", rows, fiber.Map{"count": len(rows)})
}
