package holdings

import (
	"context"
	"testing"

	"locker-backend/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupHoldingsTest(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Item{}, &domain.Location{}, &domain.Holding{}))

	require.NoError(t, db.Create(&domain.Location{ID: 10}).Error)
	require.NoError(t, db.Create(&domain.Item{ID: "SHACKLE", InvType: "GEAR", Class: "RIG"}).Error)
	require.NoError(t, db.Create(&domain.Holding{ItemID: "SHACKLE", LocationID: 10, OnHand: 4}).Error)
	require.NoError(t, db.Create(&domain.Holding{ItemID: "SHACKLE", LocationID: 10, OnHand: 0}).Error)

	return &Service{DB: db}
}

func TestViewByLocation_ExcludesZeroRowsByDefault(t *testing.T) {
	svc := setupHoldingsTest(t)

	rows, err := svc.ViewByLocation(context.Background(), 10, false)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, 4.0, rows[0].OnHand)

	rows, err = svc.ViewByLocation(context.Background(), 10, true)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestViewByLocation_UnknownLocation(t *testing.T) {
	svc := setupHoldingsTest(t)

	_, err := svc.ViewByLocation(context.Background(), 999, false)
	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestViewByItem_TrimsAndFindsEverywhere(t *testing.T) {
	svc := setupHoldingsTest(t)

	item, rows, err := svc.ViewByItem(context.Background(), "  SHACKLE  ")
	require.NoError(t, err)
	assert.Equal(t, "SHACKLE", item.ID)
	assert.Len(t, rows, 2)
}

func TestViewByItem_Validation(t *testing.T) {
	svc := setupHoldingsTest(t)

	_, _, err := svc.ViewByItem(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrItemCodeRequired)

	_, _, err = svc.ViewByItem(context.Background(), "NOPE")
	assert.ErrorIs(t, err, ErrItemNotFound)
}
