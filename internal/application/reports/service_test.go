package reports

import (
	"context"
	"testing"
	"time"

	"locker-backend/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func ptrStr(s string) *string        { return &s }
func ptrF(v float64) *float64        { return &v }
func ptrInt(v int) *int              { return &v }
func ptrTime(v time.Time) *time.Time { return &v }

func setupReportsTest(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Item{}, &domain.Location{}, &domain.Holding{}, &domain.TransferRecord{}))

	require.NoError(t, db.Create(&domain.Location{ID: 1, Name: ptrStr("Main Yard"), Berth: ptrStr("B7"), VoyageNo: ptrStr("V12")}).Error)
	require.NoError(t, db.Create(&domain.Location{ID: 2, Name: ptrStr("MV Oriana")}).Error)
	require.NoError(t, db.Create(&domain.Item{ID: "SLING", InvType: "GEAR", Class: "RIG"}).Error)
	require.NoError(t, db.Create(&domain.Item{ID: "DUNNAGE", InvType: "MAT", Class: "CON"}).Error)

	require.NoError(t, db.Create(&domain.Holding{ItemID: "SLING", ItemName: ptrStr("Wire sling"), LocationID: 1, OnHand: 6}).Error)
	require.NoError(t, db.Create(&domain.Holding{ItemID: "DUNNAGE", LocationID: 1, OnHand: 0}).Error)

	day := func(d int) *time.Time {
		return ptrTime(time.Date(2026, 3, d, 9, 0, 0, 0, time.UTC))
	}
	require.NoError(t, db.Create(&domain.TransferRecord{
		ItemID: ptrStr("SLING"), FromLocation: ptrInt(1), ToLocation: ptrInt(2),
		Quantity: ptrF(2), TransferDate: day(3), InspectedBy: ptrStr("Mercer, Dale"),
	}).Error)
	require.NoError(t, db.Create(&domain.TransferRecord{
		ItemID: ptrStr("DUNNAGE"), FromLocation: ptrInt(1), ToLocation: ptrInt(2),
		Quantity: ptrF(40), TransferDate: day(5), InspectedBy: ptrStr("Abbott, Rae"),
	}).Error)
	require.NoError(t, db.Create(&domain.TransferRecord{
		ItemID: ptrStr("SLING"), FromLocation: ptrInt(2), ToLocation: ptrInt(1),
		Quantity: ptrF(1), TransferDate: day(20), InspectedBy: ptrStr("Mercer, Dale"),
	}).Error)

	return &Service{DB: db}
}

func TestGearList_HeaderAndNonZeroRows(t *testing.T) {
	svc := setupReportsTest(t)

	data, err := svc.GearList(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Main Yard", data.LocationName)
	assert.Equal(t, "B7", data.Berth)
	assert.Equal(t, "V12", data.VoyageNo)
	require.Len(t, data.Rows, 1)
	assert.Equal(t, "SLING", data.Rows[0].ItemID)
	assert.Equal(t, 6.0, data.Rows[0].OnHand)
}

func TestGearList_UnknownLocation(t *testing.T) {
	svc := setupReportsTest(t)

	_, err := svc.GearList(context.Background(), 404)
	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestRecap_DateRangeAndInspectorFilter(t *testing.T) {
	svc := setupReportsTest(t)
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 10, 23, 59, 59, 0, time.UTC)

	rows, err := svc.Recap(context.Background(), start, end, "")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Main Yard", *rows[0].FromName)
	assert.Equal(t, "MV Oriana", *rows[0].ToName)

	rows, err = svc.Recap(context.Background(), start, end, "Mercer, Dale")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "SLING", *rows[0].ItemID)
}

func TestMaterialList_FiltersByCatalogType(t *testing.T) {
	svc := setupReportsTest(t)
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)

	rows, err := svc.MaterialList(context.Background(), start, end, "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "DUNNAGE", *rows[0].ItemID)
	assert.Equal(t, "MAT", *rows[0].InvType)
}
