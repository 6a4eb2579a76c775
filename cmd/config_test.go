package cmd_test

import (
	"testing"

	"fulfillment/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_DSN(t *testing.T) {
	t.Run("postgres", func(t *testing.T) {
		c := cmd.Config{
			DBDriver: "postgres", DBHost: "db", DBPort: "5432",
			DBUser: "app", DBPassword: "p@ss word", DBName: "fulfillment", DBSslMode: "disable",
		}

		assert.Equal(t, "postgres://app:p%40ss%20word@db:5432/fulfillment?sslmode=disable", c.DSN())
	})

	t.Run("sqlite default path", func(t *testing.T) {
		assert.Equal(t, "file:fulfillment.db?_foreign_keys=on", cmd.Config{DBDriver: "sqlite"}.DSN())
	})

	t.Run("sqlite path", func(t *testing.T) {
		assert.Equal(t, "/tmp/orders.db", cmd.Config{DBDriver: "sqlite", DBSQLitePath: "/tmp/orders.db"}.DSN())
	})
}

func TestConfig_Location(t *testing.T) {
	loc, err := cmd.Config{}.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	loc, err = cmd.Config{RestaurantTimezone: "Europe/Berlin"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", loc.String())

	_, err = cmd.Config{RestaurantTimezone: "Mars/Olympus"}.Location()
	require.Error(t, err)
}
