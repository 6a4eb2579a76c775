// Package dbtest opens migrated databases for tests: an in-memory SQLite
// database per test, or a throwaway PostgreSQL container via testcontainers.
package dbtest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres"

	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// NewSQLite returns a migrated in-memory database private to t.
func NewSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", uuid.NewString())
	db, err := postgres.Open(postgres.DatabaseConfig{Driver: postgres.DriverSQLite, DSN: dsn})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err = postgres.Migrate(db); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// Container is a running PostgreSQL test container with a migrated schema.
type Container struct {
	container *tcpostgres.PostgresContainer
	DB        *gorm.DB
}

// StartPostgres starts postgres:15-alpine and migrates it. Driver selects the
// gorm dialector flavour (postgres.DriverPGX or postgres.DriverLibPQ).
func StartPostgres(ctx context.Context, driver string) (*Container, error) {
	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := postgres.Open(postgres.DatabaseConfig{Driver: driver, DSN: dsn, MaxOpenConns: 10})
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}
	if err = postgres.Migrate(db); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Container{container: container, DB: db}, nil
}

// Truncate empties every table and resets the order id sequence.
func (c *Container) Truncate() error {
	return c.DB.Exec("TRUNCATE TABLE orders, system_settings RESTART IDENTITY").Error
}

func (c *Container) Terminate(ctx context.Context) error {
	return c.container.Terminate(ctx)
}
