package reports

import (
	"context"
	"errors"
	"strings"
	"time"

	"locker-backend/internal/domain"

	"gorm.io/gorm"
)

var ErrLocationNotFound = errors.New("Location not found")

// Service assembles the view data behind the printable paperwork. Rendering
// (layout, typography, PDF bytes) happens in the document layer, not here.
type Service struct {
	DB *gorm.DB
}

// GearListData is the header plus rows of a gear list for one location.
type GearListData struct {
	LocationID   int           `json:"location_id"`
	LocationName string        `json:"location_name"`
	Berth        string        `json:"berth"`
	VoyageNo     string        `json:"voy_no"`
	Rows         []GearListRow `json:"rows"`
}

type GearListRow struct {
	ItemID      string  `json:"item"`
	ItemName    string  `json:"item_name"`
	Description string  `json:"description"`
	OnHand      float64 `json:"onhand"`
	Billable    bool    `json:"billable"`
}

// GearList returns the gear on hand at a location.
func (s *Service) GearList(ctx context.Context, locationID int) (*GearListData, error) {
	var loc domain.Location
	if err := s.DB.WithContext(ctx).First(&loc, locationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}

	var holdings []domain.Holding
	if err := s.DB.WithContext(ctx).
		Where("location = ? AND onhand <> 0", locationID).
		Order("item").
		Find(&holdings).Error; err != nil {
		return nil, err
	}

	data := &GearListData{
		LocationID:   locationID,
		LocationName: deref(loc.Name),
		Berth:        deref(loc.Berth),
		VoyageNo:     deref(loc.VoyageNo),
		Rows:         make([]GearListRow, 0, len(holdings)),
	}
	for _, h := range holdings {
		data.Rows = append(data.Rows, GearListRow{
			ItemID:      strings.TrimSpace(h.ItemID),
			ItemName:    strings.TrimSpace(deref(h.ItemName)),
			Description: deref(h.Description),
			OnHand:      h.OnHand,
			Billable:    h.Billable != nil && *h.Billable == 1,
		})
	}
	return data, nil
}

// RecapRow is one ledger movement with both location names resolved.
type RecapRow struct {
	ID           int        `json:"id"`
	ItemID       *string    `gorm:"column:item" json:"item"`
	ItemName     *string    `gorm:"column:item_name" json:"item_name"`
	Quantity     *float64   `json:"quantity"`
	TransferDate *time.Time `gorm:"column:transfer_date" json:"transfer_date"`
	InspectedBy  *string    `gorm:"column:inspected_by" json:"inspected_by"`
	FromName     *string    `gorm:"column:from_name" json:"from_name"`
	ToName       *string    `gorm:"column:to_name" json:"to_name"`
}

// Recap returns the movements in a date range, oldest first, optionally for
// one inspector.
func (s *Service) Recap(ctx context.Context, start, end time.Time, inspectedBy string) ([]RecapRow, error) {
	q := s.DB.WithContext(ctx).
		Table("inventory_transfers AS t").
		Select("t.id, t.item, t.item_name, t.quantity, t.transfer_date, t.inspected_by, f.name AS from_name, l.name AS to_name").
		Joins("LEFT JOIN locations f ON f.loc_id = t.from_location").
		Joins("LEFT JOIN locations l ON l.loc_id = t.to_location").
		Where("t.transfer_date >= ? AND t.transfer_date <= ?", start, end)
	if inspectedBy = strings.TrimSpace(inspectedBy); inspectedBy != "" {
		q = q.Where("t.inspected_by = ?", inspectedBy)
	}

	var rows []RecapRow
	if err := q.Order("t.transfer_date, t.id").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// MaterialRow is one material movement with catalog classification.
type MaterialRow struct {
	ID           int        `json:"id"`
	ItemID       *string    `gorm:"column:item" json:"item"`
	ItemName     *string    `gorm:"column:item_name" json:"item_name"`
	Quantity     *float64   `json:"quantity"`
	TransferDate *time.Time `gorm:"column:transfer_date" json:"transfer_date"`
	FromName     *string    `gorm:"column:from_name" json:"from_name"`
	ToName       *string    `gorm:"column:to_name" json:"to_name"`
	InvType      *string    `gorm:"column:inv_type" json:"inv_type"`
}

// MaterialList returns material-class movements in a date range.
func (s *Service) MaterialList(ctx context.Context, start, end time.Time, invType string) ([]MaterialRow, error) {
	if invType = strings.TrimSpace(invType); invType == "" {
		invType = "MAT"
	}
	var rows []MaterialRow
	if err := s.DB.WithContext(ctx).
		Table("inventory_transfers AS t").
		Select("t.id, t.item, t.item_name, t.quantity, t.transfer_date, f.name AS from_name, l.name AS to_name, i.inv_type").
		Joins("JOIN inventory i ON TRIM(i.id) = TRIM(t.item)").
		Joins("LEFT JOIN locations f ON f.loc_id = t.from_location").
		Joins("LEFT JOIN locations l ON l.loc_id = t.to_location").
		Where("t.transfer_date >= ? AND t.transfer_date <= ? AND i.inv_type = ?", start, end, invType).
		Order("t.transfer_date, t.id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
