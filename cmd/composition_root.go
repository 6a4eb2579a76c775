package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/notification"
	"fulfillment/internal/adapters/out/payment"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/rabbitmq"
	"fulfillment/internal/adapters/out/settingscache"
	"fulfillment/internal/core/application/admission"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      ports.Clock
	logger     *slog.Logger

	settings   *settingscache.Provider
	admission  *admission.Controller
	dispatcher *notification.Dispatcher
	broker     rabbitmq.Connection
	gateway    ports.PaymentGateway
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	c := &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      SystemClock{},
		logger:     logger,
	}

	c.settings = settingscache.NewProvider(FuncSettingsRepositoryFactory(func() ports.SettingsRepository {
		return c.uowFactory.Create().SettingsRepository()
	}), c.clock, cfg.SettingsCacheTTL)

	c.admission = admission.NewController(
		c.settings,
		orderrepo.NewGormOrderStatistics(gormDB),
		c.clock,
		admission.Config{Location: loc, FailOpen: cfg.AdmissionFailOpen},
		logger,
	)

	var sink ports.Notifier = notification.NewLogNotifier(logger)
	if cfg.RabbitMQURL != "" {
		c.broker, err = rabbitmq.Dial(cfg.RabbitMQURL)
		if err != nil {
			return nil, err
		}
		sink = rabbitmq.NewStatusPublisher(c.broker, cfg.NotificationExchange)
	}
	c.dispatcher = notification.NewDispatcher(sink, cfg.NotificationMaxInFlight, cfg.NotificationTimeout, logger)

	c.gateway = payment.NewHTTPGateway(payment.Config{
		BaseURL:  cfg.PaymentGatewayURL,
		APIKey:   cfg.PaymentGatewayAPIKey,
		Currency: cfg.PaymentCurrency,
		Timeout:  cfg.PaymentGatewayTimeout,
	}, nil)

	return c, nil
}

// Close drains pending notifications and releases the broker and the database.
func (c *CompositionRoot) Close(ctx context.Context) error {
	var err error
	if dErr := c.dispatcher.Close(ctx); dErr != nil {
		err = errors.Join(err, fmt.Errorf("notification dispatcher: %w", dErr))
	}
	if c.broker != nil {
		err = errors.Join(err, c.broker.Close())
	}
	if sqlDB, dbErr := c.gormDB.DB(); dbErr == nil {
		err = errors.Join(err, sqlDB.Close())
	}
	return err
}

func (c *CompositionRoot) transitionDeps() commands.TransitionDeps {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.TransitionDeps{
		UoWFactory: f,
		Notifier:   c.dispatcher,
		Clock:      c.clock,
		Logger:     c.logger,
	}
}

func (c *CompositionRoot) settingsDeps() commands.SettingsDeps {
	var f commands.SettingsUoWFactory = FuncSettingsUoWFactory(func() commands.SettingsUoW {
		return c.uowFactory.Create()
	})
	return commands.SettingsDeps{
		UoWFactory: f,
		Provider:   c.settings,
		Clock:      c.clock,
		Logger:     c.logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.transitionDeps(), c.admission)
}

func (c *CompositionRoot) CreateRefundOrderCommandHandler() commands.RefundOrderCommandHandler {
	return commands.NewRefundOrderCommandHandler(c.transitionDeps(), c.gateway)
}

func (c *CompositionRoot) CreateLiftExpiredClosureCommandHandler() commands.LiftExpiredClosureCommandHandler {
	return commands.NewLiftExpiredClosureCommandHandler(c.settingsDeps())
}

func (c *CompositionRoot) CreateGetWaitingOrdersQueryHandler() queries.GetWaitingOrdersQueryHandler {
	return queries.NewGetWaitingOrdersQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateGetOverdueOrdersQueryHandler() queries.GetOverdueOrdersQueryHandler {
	return queries.NewGetOverdueOrdersQueryHandler(c.gormDB, c.clock)
}

// HTTPHandlers wires every use case exposed by the HTTP adapter.
func (c *CompositionRoot) HTTPHandlers() httpin.Handlers {
	deps := c.transitionDeps()
	settingsDeps := c.settingsDeps()

	return httpin.Handlers{
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		ConfirmOrder:       commands.NewConfirmOrderCommandHandler(deps),
		StartPreparing:     commands.NewStartPreparingCommandHandler(deps),
		MarkReady:          commands.NewMarkReadyCommandHandler(deps),
		RemakeOrder:        commands.NewRemakeOrderCommandHandler(deps),
		UpdatePrepTime:     commands.NewUpdatePrepTimeCommandHandler(deps),
		AcceptDelivery:     commands.NewAcceptDeliveryCommandHandler(deps),
		MarkDelivered:      commands.NewMarkDeliveredCommandHandler(deps),
		UpdateDeliveryTime: commands.NewUpdateDeliveryTimeCommandHandler(deps),
		CancelOrder:        commands.NewCancelOrderCommandHandler(deps),
		RefundOrder:        c.CreateRefundOrderCommandHandler(),

		UpdateLimits:         commands.NewUpdateLimitsCommandHandler(settingsDeps),
		UpdateOperatingHours: commands.NewUpdateOperatingHoursCommandHandler(settingsDeps),
		ActivateClosure:      commands.NewActivateClosureCommandHandler(settingsDeps),
		DeactivateClosure:    commands.NewDeactivateClosureCommandHandler(settingsDeps),

		GetOrder:         queries.NewGetOrderQueryHandler(c.gormDB),
		GetWaitingOrders: c.CreateGetWaitingOrdersQueryHandler(),
		GetOverdueOrders: c.CreateGetOverdueOrdersQueryHandler(),
		GetSettings:      queries.NewGetSettingsQueryHandler(c.settings, c.clock),
	}
}

func (c *CompositionRoot) AuthConfig() httpin.AuthConfig {
	return httpin.AuthConfig{
		JWTSecret:     []byte(c.cfg.JWTSecret),
		InternalToken: c.cfg.InternalAPIToken,
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetWaitingOrdersQueryHandler(),
		c.CreateGetOverdueOrdersQueryHandler(),
		c.CreateLiftExpiredClosureCommandHandler(),
		jobs.Config{
			Alerts: jobs.AlertConfig{
				Schedule:           c.cfg.StuckOrderAlertsSchedule,
				KitchenWaitMinutes: c.cfg.AlertKitchenWaitMinutes,
				CourierWaitMinutes: c.cfg.AlertCourierWaitMinutes,
			},
			ClosureExpirySchedule: c.cfg.ClosureExpirySchedule,
		},
		c.logger,
	)
}

// SystemClock is the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncSettingsUoWFactory func() commands.SettingsUoW

func (f FuncSettingsUoWFactory) Create() commands.SettingsUoW {
	return f()
}

type FuncSettingsRepositoryFactory func() ports.SettingsRepository

func (f FuncSettingsRepositoryFactory) SettingsRepository() ports.SettingsRepository {
	return f()
}
