package locations

import (
	"context"
	"errors"

	"locker-backend/internal/domain"

	"gorm.io/gorm"
)

var ErrLocationNotFound = errors.New("Location not found")

// Service encapsulates location and berth lookups.
type Service struct {
	DB *gorm.DB
}

// ListLocations returns locations, active (unfinished) ones by default.
func (s *Service) ListLocations(ctx context.Context, includeFinished bool) ([]domain.Location, error) {
	q := s.DB.WithContext(ctx).Model(&domain.Location{})
	if !includeFinished {
		q = q.Where("finished IS NULL OR finished = 0")
	}
	var locations []domain.Location
	if err := q.Order("loc_id").Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

// GetLocation returns one location with its berth detail merged in.
func (s *Service) GetLocation(ctx context.Context, id int) (map[string]interface{}, error) {
	var loc domain.Location
	if err := s.DB.WithContext(ctx).First(&loc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}

	payload := map[string]interface{}{
		"location": loc,
	}
	if loc.Berth != nil && *loc.Berth != "" {
		var berth domain.Berth
		if err := s.DB.WithContext(ctx).Where("id = ?", *loc.Berth).First(&berth).Error; err == nil {
			payload["berth"] = berth
		}
	}
	return payload, nil
}

// ListBerths returns the non-archived berth master rows.
func (s *Service) ListBerths(ctx context.Context) ([]domain.Berth, error) {
	var berths []domain.Berth
	if err := s.DB.WithContext(ctx).
		Where("is_archived = ?", false).
		Order("id").
		Find(&berths).Error; err != nil {
		return nil, err
	}
	return berths, nil
}
