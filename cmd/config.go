package cmd

import (
	"fmt"
	"net/url"
	"time"
)

type Config struct {
	HTTPPort string

	DBDriver     string
	DBSQLDriver  string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSslMode    string
	DBSQLitePath string

	RestaurantTimezone string
	AdmissionFailOpen  bool
	SettingsCacheTTL   time.Duration

	JWTSecret        string
	InternalAPIToken string

	RabbitMQURL              string
	NotificationExchange     string
	NotificationTimeout      time.Duration
	NotificationMaxInFlight  int
	PaymentGatewayURL        string
	PaymentGatewayAPIKey     string
	PaymentGatewayTimeout    time.Duration
	PaymentCurrency          string
	AlertKitchenWaitMinutes  int
	AlertCourierWaitMinutes  int
	ClosureExpirySchedule    string
	StuckOrderAlertsSchedule string
}

// DSN builds the postgres connection string, or returns the sqlite path.
func (c Config) DSN() string {
	if c.DBDriver == "sqlite" {
		if c.DBSQLitePath == "" {
			return "file:fulfillment.db?_foreign_keys=on"
		}
		return c.DBSQLitePath
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     fmt.Sprintf("%s:%s", c.DBHost, c.DBPort),
		Path:     c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.DBSslMode}}.Encode(),
	}
	return u.String()
}

// Location resolves RESTAURANT_TIMEZONE; empty means UTC.
func (c Config) Location() (*time.Location, error) {
	if c.RestaurantTimezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.RestaurantTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid RESTAURANT_TIMEZONE %q: %w", c.RestaurantTimezone, err)
	}
	return loc, nil
}
