package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"fulfillment/cmd"
	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	db, err := postgres.Open(postgres.DatabaseConfig{
		Driver: databaseDriver(configs),
		DSN:    configs.DSN(),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err = postgres.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, db, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, app, configs.HTTPPort, logger); err != nil {
		logger.Error("Server stopped with error", "error", err)
	}

	jobManager.StopAll()

	closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = app.Close(closeCtx); err != nil {
		logger.Error("Shutdown incomplete", "error", err)
	}
}

func run(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) error {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return err
	}

	e, err := httpin.NewRouter(httpin.NewServer(app.HTTPHandlers()), httpin.RouterConfig{
		Auth:    app.AuthConfig(),
		Swagger: swagger,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("HTTP server starting", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func databaseDriver(c cmd.Config) string {
	if c.DBDriver == postgres.DriverSQLite {
		return postgres.DriverSQLite
	}
	if c.DBSQLDriver == "postgres" {
		return postgres.DriverLibPQ
	}
	return postgres.DriverPGX
}

func getConfigs() cmd.Config {
	loadDotEnv()

	config := cmd.Config{
		HTTPPort:     envOr("HTTP_PORT", "8080"),
		DBDriver:     envOr("DB_DRIVER", "postgres"),
		DBSQLDriver:  envOr("DB_SQL_DRIVER", "pgx"),
		DBHost:       envOr("DB_HOST", "localhost"),
		DBPort:       envOr("DB_PORT", "5432"),
		DBUser:       goDotEnvVariable("DB_USER"),
		DBPassword:   goDotEnvVariable("DB_PASSWORD"),
		DBName:       envOr("DB_NAME", "fulfillment"),
		DBSslMode:    envOr("DB_SSLMODE", "disable"),
		DBSQLitePath: goDotEnvVariable("DB_SQLITE_PATH"),

		RestaurantTimezone: goDotEnvVariable("RESTAURANT_TIMEZONE"),
		AdmissionFailOpen:  envBool("ADMISSION_FAIL_OPEN", true),
		SettingsCacheTTL:   envDuration("SETTINGS_CACHE_TTL", 5*time.Second),

		JWTSecret:        goDotEnvVariable("JWT_SECRET"),
		InternalAPIToken: goDotEnvVariable("INTERNAL_API_TOKEN"),

		RabbitMQURL:              goDotEnvVariable("RABBITMQ_URL"),
		NotificationExchange:     envOr("NOTIFICATION_EXCHANGE", "order_status"),
		NotificationTimeout:      envDuration("NOTIFICATION_TIMEOUT", 5*time.Second),
		NotificationMaxInFlight:  envInt("NOTIFICATION_MAX_IN_FLIGHT", 64),
		PaymentGatewayURL:        goDotEnvVariable("PAYMENT_GATEWAY_URL"),
		PaymentGatewayAPIKey:     goDotEnvVariable("PAYMENT_GATEWAY_API_KEY"),
		PaymentGatewayTimeout:    envDuration("PAYMENT_GATEWAY_TIMEOUT", 10*time.Second),
		PaymentCurrency:          envOr("PAYMENT_CURRENCY", "EUR"),
		AlertKitchenWaitMinutes:  envInt("ALERT_KITCHEN_WAIT_MINUTES", 10),
		AlertCourierWaitMinutes:  envInt("ALERT_COURIER_WAIT_MINUTES", 15),
		ClosureExpirySchedule:    goDotEnvVariable("CLOSURE_EXPIRY_SCHEDULE"),
		StuckOrderAlertsSchedule: goDotEnvVariable("STUCK_ORDER_ALERTS_SCHEDULE"),
	}
	return config
}

// loadDotEnv reads .env when present. Deployments configure through the
// environment directly, so a missing file is not an error.
func loadDotEnv() {
	err := godotenv.Load(".env")
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
}

func goDotEnvVariable(key string) string {
	return os.Getenv(key)
}

func envOr(key, fallback string) string {
	if v := goDotEnvVariable(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := goDotEnvVariable(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("Invalid %s %q: %v", key, v, err)
	}
	return n
}

func envBool(key string, fallback bool) bool {
	v := goDotEnvVariable(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Fatalf("Invalid %s %q: %v", key, v, err)
	}
	return b
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := goDotEnvVariable(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("Invalid %s %q: %v", key, v, err)
	}
	return d
}
