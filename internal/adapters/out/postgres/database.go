package postgres

import (
	"fmt"
	"time"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/settingsrepo"

	_ "github.com/lib/pq" // registers the "postgres" database/sql driver for DriverLibPQ
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Supported DB_DRIVER values.
const (
	DriverPGX    = "pgx"
	DriverLibPQ  = "libpq"
	DriverSQLite = "sqlite"
)

// DatabaseConfig selects the dialector and pool settings.
type DatabaseConfig struct {
	Driver       string
	DSN          string
	MaxOpenConns int
	LogSQL       bool
}

// Open connects to the configured store. SQLite is limited to a single
// connection so transactions serialize.
func Open(cfg DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case DriverPGX, "":
		dialector = gormpostgres.Open(cfg.DSN)
	case DriverLibPQ:
		dialector = gormpostgres.New(gormpostgres.Config{DriverName: "postgres", DSN: cfg.DSN})
	case DriverSQLite:
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	logLevel := logger.Warn
	if cfg.LogSQL {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:  logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.Driver == DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
	} else if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	return db, nil
}

// Migrate creates or updates the orders and system_settings tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&orderrepo.OrderDTO{}, &settingsrepo.SettingsDTO{})
}
