package holdings

import (
	"context"
	"errors"
	"strings"

	"locker-backend/internal/domain"

	"gorm.io/gorm"
)

var (
	ErrLocationNotFound = errors.New("Location not found")
	ErrItemNotFound     = errors.New("Item not found")
	ErrItemCodeRequired = errors.New("item code is required")
)

// Service encapsulates holdings read operations.
type Service struct {
	DB *gorm.DB
}

// ViewByLocation returns the holdings at one location. With includeZero set,
// rows that have reached zero on hand come back too (they stay in the table
// so the item/location association survives).
func (s *Service) ViewByLocation(ctx context.Context, locationID int, includeZero bool) ([]domain.Holding, error) {
	var loc domain.Location
	if err := s.DB.WithContext(ctx).First(&loc, locationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}

	q := s.DB.WithContext(ctx).Where("location = ?", locationID)
	if !includeZero {
		q = q.Where("onhand <> 0")
	}
	var holdings []domain.Holding
	if err := q.Order("item").Find(&holdings).Error; err != nil {
		return nil, err
	}
	return holdings, nil
}

// ViewByItem returns the catalog item and every holding of it, anywhere.
func (s *Service) ViewByItem(ctx context.Context, itemID string) (*domain.Item, []domain.Holding, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return nil, nil, ErrItemCodeRequired
	}

	var item domain.Item
	if err := s.DB.WithContext(ctx).Where("TRIM(id) = ?", itemID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrItemNotFound
		}
		return nil, nil, err
	}

	var holdings []domain.Holding
	if err := s.DB.WithContext(ctx).
		Where("TRIM(item) = ?", itemID).
		Order("location").
		Find(&holdings).Error; err != nil {
		return nil, nil, err
	}
	return &item, holdings, nil
}
