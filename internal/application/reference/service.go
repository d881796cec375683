package reference

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"locker-backend/internal/domain"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Cache keys and TTL for the mirrored pick lists. The mirrors are externally
// owned and change rarely; half an hour of staleness is acceptable.
const (
	inspectorsCacheKey = "reference:inspectors"
	companiesCacheKey  = "reference:companies"
	cacheTTL           = 30 * time.Minute
)

// Service serves read-only lookups from the mirrored reference databases
// through an optional Redis read-through cache. Rdb may be nil (or down);
// lookups then fall through to the mirror directly.
type Service struct {
	DB  *gorm.DB
	Rdb *redis.Client
}

// Inspector is the pick-list shape for "inspected by" fields.
type Inspector struct {
	EmployeeID string `json:"id"`
	Name       string `json:"name"`
	HomePort   string `json:"homeport,omitempty"`
}

// ListInspectors returns the employee pick list, last name first.
func (s *Service) ListInspectors(ctx context.Context) ([]Inspector, error) {
	var out []Inspector
	if s.cacheGet(ctx, inspectorsCacheKey, &out) {
		return out, nil
	}

	var employees []domain.Employee
	if err := s.DB.WithContext(ctx).
		Order("lastname, firstname").
		Find(&employees).Error; err != nil {
		return nil, err
	}

	out = make([]Inspector, 0, len(employees))
	for _, e := range employees {
		name := strings.TrimSpace(deref(e.LastName))
		if first := strings.TrimSpace(deref(e.FirstName)); first != "" {
			if name != "" {
				name += ", "
			}
			name += first
		}
		if name == "" {
			continue
		}
		out = append(out, Inspector{
			EmployeeID: strings.TrimSpace(deref(e.EmployeeID)),
			Name:       name,
			HomePort:   strings.TrimSpace(deref(e.HomePort)),
		})
	}

	s.cacheSet(ctx, inspectorsCacheKey, out)
	return out, nil
}

// ListCompanies returns the corporate-master company groups.
func (s *Service) ListCompanies(ctx context.Context) ([]domain.ComGroup, error) {
	var out []domain.ComGroup
	if s.cacheGet(ctx, companiesCacheKey, &out) {
		return out, nil
	}

	if err := s.DB.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}

	s.cacheSet(ctx, companiesCacheKey, out)
	return out, nil
}

func (s *Service) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if s.Rdb == nil {
		return false
	}
	b, err := s.Rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(b, dest) == nil
}

func (s *Service) cacheSet(ctx context.Context, key string, v interface{}) {
	if s.Rdb == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.Rdb.Set(ctx, key, b, cacheTTL).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Reference cache write failed")
	}
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
