package transfers

import (
	"strconv"
	"strings"
	"time"

	transfersvc "locker-backend/internal/application/transfer"
	"locker-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *transfersvc.Service
}

// TransferItem POST /api/v1/transfers/transfer-item
func (h *Handlers) TransferItem(c *fiber.Ctx) error {
	var body struct {
		FromHoldingID int     `json:"from_holding_id"`
		ToHoldingID   int     `json:"to_holding_id"`
		Quantity      float64 `json:"quantity"`
		Description   string  `json:"description"`
		Company       string  `json:"company"`
		Job           string  `json:"job"`
		TakenFrom     string  `json:"taken_from"`
		TransferDate  string  `json:"transfer_date"`
		PONumber      string  `json:"ponum"`
		CostPer       float64 `json:"costper"`
		InspectedBy   string  `json:"inspected_by"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Missing required fields", 400, nil)
	}
	if body.FromHoldingID == 0 || body.ToHoldingID == 0 || body.Quantity == 0 {
		return response.Error(c, "Missing required fields", 400, nil)
	}

	in := transfersvc.TransferInput{
		Quantity:     body.Quantity,
		Description:  body.Description,
		Company:      body.Company,
		Job:          body.Job,
		TakenFrom:    body.TakenFrom,
		TransferDate: parseDate(body.TransferDate),
		PONumber:     body.PONumber,
		CostPer:      body.CostPer,
		InspectedBy:  body.InspectedBy,
	}

	from, to, err := h.Service.TransferBetweenHoldings(c.Context(), body.FromHoldingID, body.ToHoldingID, in)
	if err != nil {
		return transferError(c, err)
	}
	return response.Success(c, "Transfer successful", fiber.Map{
		"from": from,
		"to":   to,
	}, nil)
}

// MoveLocation POST /api/v1/transfers/move-location
func (h *Handlers) MoveLocation(c *fiber.Ctx) error {
	var body struct {
		FromLocationID int    `json:"from_location_id"`
		ToLocationID   int    `json:"to_location_id"`
		TakenFrom      string `json:"taken_from"`
		TransferDate   string `json:"transfer_date"`
		InspectedBy    string `json:"inspected_by"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Missing required fields", 400, nil)
	}
	if body.FromLocationID == 0 || body.ToLocationID == 0 {
		return response.Error(c, "Missing required fields", 400, nil)
	}
	if body.FromLocationID == body.ToLocationID {
		return response.Error(c, "Source and destination locations must differ", 400, nil)
	}

	result, err := h.Service.MoveLocation(c.Context(),
		body.FromLocationID, body.ToLocationID,
		body.TakenFrom, parseDate(body.TransferDate), body.InspectedBy)
	if err != nil {
		return transferError(c, err)
	}
	return response.Success(c, "Relocation finished", result, nil)
}

// GetTransfers GET /api/v1/transfers/get-transfers?location_id=&item=&limit=
func (h *Handlers) GetTransfers(c *fiber.Ctx) error {
	var f transfersvc.TransferFilter
	if raw := strings.TrimSpace(c.Query("location_id")); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return response.Error(c, "Invalid location_id", 400, nil)
		}
		f.LocationID = &id
	}
	f.ItemID = c.Query("item")
	f.Limit, _ = strconv.Atoi(c.Query("limit"))

	records, err := h.Service.ListTransfers(c.Context(), f)
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Transfers retrieved", records, fiber.Map{"count": len(records)})
}

// GetRuns GET /api/v1/transfers/get-runs?limit=
func (h *Handlers) GetRuns(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))
	runs, err := h.Service.ListRuns(c.Context(), limit)
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Relocation runs retrieved", runs, fiber.Map{"count": len(runs)})
}

// transferError maps engine error kinds onto HTTP statuses.
func transferError(c *fiber.Ctx, err error) error {
	switch transfersvc.KindOf(err) {
	case transfersvc.KindValidation:
		return response.Error(c, err.Error(), 400, nil)
	case transfersvc.KindNotFound:
		return response.Error(c, err.Error(), 404, nil)
	default:
		return response.Error(c, "Internal Server Error", 500, nil)
	}
}

// parseDate accepts the date formats the clients send; a blank or unparseable
// value falls back to now.
func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Now()
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Now()
}
