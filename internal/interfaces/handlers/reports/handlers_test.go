package reports

import (
	"net/http/httptest"
	"testing"

	repsvc "locker-backend/internal/application/reports"
	"locker-backend/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupReportsTest(t *testing.T) (*fiber.App, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Item{}, &domain.Location{}, &domain.Holding{}, &domain.TransferRecord{}))

	h := &Handlers{Service: &repsvc.Service{DB: db}}
	app := fiber.New()
	app.Get("/gear-list", h.GearList)
	app.Get("/recap", h.Recap)
	app.Get("/material-list", h.MaterialList)
	return app, db
}

func TestGearList_RequiresLocationID(t *testing.T) {
	app, _ := setupReportsTest(t)

	req := httptest.NewRequest("GET", "/gear-list", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestRecap_RequiresDateRange(t *testing.T) {
	app, _ := setupReportsTest(t)

	req := httptest.NewRequest("GET", "/recap?start=2026-03-01", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestRecap_RejectsInvertedRange(t *testing.T) {
	app, _ := setupReportsTest(t)

	req := httptest.NewRequest("GET", "/recap?start=2026-03-10&end=2026-03-01", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestMaterialList_OK(t *testing.T) {
	app, _ := setupReportsTest(t)

	req := httptest.NewRequest("GET", "/material-list?start=2026-03-01&end=2026-03-31", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
