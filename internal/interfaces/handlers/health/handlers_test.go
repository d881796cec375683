package health

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"locker-backend/internal/middleware"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHealthTest(t *testing.T) (*fiber.App, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	h := &Handlers{Rdb: rdb, HealthAdminKey: "sekrit"}
	app := fiber.New()
	app.Get("/health/json", h.JSON)
	app.Post("/health/reset", h.Reset)
	return app, mr
}

func TestReset_RequiresAdminKey(t *testing.T) {
	app, _ := setupHealthTest(t)

	req := httptest.NewRequest("POST", "/health/reset", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)

	req = httptest.NewRequest("POST", "/health/reset?key=wrong", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestReset_ClearsCounters(t *testing.T) {
	app, mr := setupHealthTest(t)
	mr.Set(middleware.KeyReqTotal, "42")
	mr.Set(middleware.KeyReqErrors, "3")

	req := httptest.NewRequest("POST", "/health/reset?key=sekrit", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.False(t, mr.Exists(middleware.KeyReqTotal))
	assert.True(t, mr.Exists(middleware.KeyStartTime))
}

func TestJSON_ReportsDependencies(t *testing.T) {
	app, _ := setupHealthTest(t)

	req := httptest.NewRequest("GET", "/health/json", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Service      string                            `json:"service"`
		Status       string                            `json:"status"`
		Dependencies map[string]map[string]interface{} `json:"dependencies"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "locker-api", body.Service)
	assert.Equal(t, "connected", body.Dependencies["redis"]["status"])
	// No database pinger wired in this test, so overall status degrades.
	assert.Equal(t, "issue", body.Status)
	assert.Equal(t, "disconnected", body.Dependencies["database"]["status"])
}
