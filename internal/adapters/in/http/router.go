package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"fulfillment/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig configures the echo instance built by NewRouter.
type RouterConfig struct {
	Auth    AuthConfig
	Swagger *openapi3.T
	Logger  *slog.Logger
}

// NewRouter registers the API, the health check, the OpenAPI document and the
// Swagger UI on a new echo instance.
func NewRouter(server servers.ServerInterface, cfg RouterConfig) (*echo.Echo, error) {
	swagger := cfg.Swagger
	if swagger == nil {
		var err error
		if swagger, err = servers.GetSwagger(); err != nil {
			return nil, err
		}
	}
	document, err := json.Marshal(swagger)
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "http")

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = errorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(ctx echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method, "uri", v.URI, "status", v.Status,
				"latency", v.Latency, "remote_ip", v.RemoteIP,
			}
			if v.Error != nil {
				logger.WarnContext(ctx.Request().Context(), "request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.InfoContext(ctx.Request().Context(), "request", attrs...)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, document)
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/openapi.json")))

	api := e.Group("", ActorMiddleware(cfg.Auth), RequestValidator(swagger))
	servers.RegisterHandlers(api, server)

	return e, nil
}
