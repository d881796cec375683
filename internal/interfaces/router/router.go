package router

import (
	"net/http"

	holdsvc "locker-backend/internal/application/holdings"
	locsvc "locker-backend/internal/application/locations"
	refsvc "locker-backend/internal/application/reference"
	repsvc "locker-backend/internal/application/reports"
	transfersvc "locker-backend/internal/application/transfer"
	"locker-backend/internal/config"
	"locker-backend/internal/infrastructure/database"
	healthhandler "locker-backend/internal/interfaces/handlers/health"
	holdhandler "locker-backend/internal/interfaces/handlers/holdings"
	lochandler "locker-backend/internal/interfaces/handlers/locations"
	refhandler "locker-backend/internal/interfaces/handlers/reference"
	rephandler "locker-backend/internal/interfaces/handlers/reports"
	transferhandler "locker-backend/internal/interfaces/handlers/transfers"
	"locker-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type gormDBPinger struct {
	db *gorm.DB
}

func (g *gormDBPinger) Ping() error {
	if g == nil || g.db == nil {
		return nil
	}
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLEndsWith,
	}))

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, nil, err
		}
		rdb = redis.NewClient(opts)
		app.Use(middleware.HealthMarker(rdb))
	}
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	hh := &healthhandler.Handlers{
		Rdb:            rdb,
		HealthAdminKey: cfg.HealthAdminKey,
	}
	app.Get("/health/json", hh.JSON)
	app.Post("/health/reset", hh.Reset)

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		var errDB error
		db, errDB = database.Open(cfg.DatabaseURL)
		if errDB != nil {
			return nil, nil, nil, errDB
		}
		hh.DB = &gormDBPinger{db: db}
	}

	// The reference mirror is a separate read-only database; without its own
	// DSN the pick lists read from the primary.
	refDB := db
	if cfg.ReferenceDatabaseURL != "" {
		var errDB error
		refDB, errDB = database.OpenReference(cfg.ReferenceDatabaseURL)
		if errDB != nil {
			return nil, nil, nil, errDB
		}
		hh.RefDB = &gormDBPinger{db: refDB}
	}

	if db != nil {
		ts := &transfersvc.Service{DB: db}
		th := &transferhandler.Handlers{Service: ts}
		tg := app.Group("/api/v1/transfers")
		tg.Post("/transfer-item", th.TransferItem)
		tg.Post("/move-location", th.MoveLocation)
		tg.Get("/get-transfers", th.GetTransfers)
		tg.Get("/get-runs", th.GetRuns)

		hs := &holdsvc.Service{DB: db}
		holdh := &holdhandler.Handlers{Service: hs}
		hg := app.Group("/api/v1/holdings")
		hg.Get("/view-holdings", holdh.ViewHoldings)
		hg.Get("/view-item/:item_id", holdh.ViewItem)

		ls := &locsvc.Service{DB: db}
		lh := &lochandler.Handlers{Service: ls}
		lg := app.Group("/api/v1/locations")
		lg.Get("/get-locations", lh.GetLocations)
		lg.Get("/get-location/:id", lh.GetLocation)
		lg.Get("/get-berths", lh.GetBerths)

		rs := &refsvc.Service{DB: refDB, Rdb: rdb}
		rh := &refhandler.Handlers{Service: rs}
		rg := app.Group("/api/v1/reference")
		rg.Get("/get-inspectors", rh.GetInspectors)
		rg.Get("/get-companies", rh.GetCompanies)

		reps := &repsvc.Service{DB: db}
		reph := &rephandler.Handlers{Service: reps}
		repg := app.Group("/api/v1/reports")
		repg.Get("/gear-list", reph.GearList)
		repg.Get("/recap", reph.Recap)
		repg.Get("/material-list", reph.MaterialList)
	}

	return app, db, rdb, nil
}

func Handler(app *fiber.App) http.Handler {
	return adaptor.FiberApp(app)
}
