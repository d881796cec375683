package database

import (
	"locker-backend/internal/domain"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open opens a GORM DB from a Postgres DSN.
// PreferSimpleProtocol disables prepared statement caching to avoid 42P05
// ("prepared statement already exists") when connecting through a pooler
// (e.g. PgBouncer).
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
}

// OpenReference opens the read-only mirror of the corporate reference
// databases (employees, company groups).
func OpenReference(dsn string) (*gorm.DB, error) {
	return Open(dsn)
}

// AutoMigrate runs migrations for the tables this service owns. The legacy
// inventory tables predate the service and are managed outside of it;
// relocation_runs is the only table created here.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.RelocationRun{})
}
