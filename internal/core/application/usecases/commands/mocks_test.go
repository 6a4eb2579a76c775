package commands_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/admission"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/settings"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id uint64) (*order.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id uint64) (*order.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockSettingsRepository struct{ mock.Mock }

func (m *MockSettingsRepository) GetOrCreate(ctx context.Context, now time.Time) (*settings.SystemSettings, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(*settings.SystemSettings), args.Error(1)
}

func (m *MockSettingsRepository) GetOrCreateForUpdate(ctx context.Context, now time.Time) (*settings.SystemSettings, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(*settings.SystemSettings), args.Error(1)
}

func (m *MockSettingsRepository) Save(ctx context.Context, s *settings.SystemSettings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type MockSettingsUoW struct{ mock.Mock }

func (m *MockSettingsUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockSettingsUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockSettingsUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSettingsUoW) SettingsRepository() ports.SettingsRepository {
	args := m.Called()
	return args.Get(0).(ports.SettingsRepository)
}

type MockSettingsUoWFactory struct{ mock.Mock }

func (m *MockSettingsUoWFactory) Create() commands.SettingsUoW {
	args := m.Called()
	return args.Get(0).(commands.SettingsUoW)
}

type MockSettingsProvider struct{ mock.Mock }

func (m *MockSettingsProvider) Current(ctx context.Context) (*settings.SystemSettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(*settings.SystemSettings), args.Error(1)
}

func (m *MockSettingsProvider) Invalidate() {
	m.Called()
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyStatusChanged(ctx context.Context, change ports.StatusChange) error {
	args := m.Called(ctx, change)
	return args.Error(0)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) Refund(ctx context.Context, req ports.RefundRequest) (ports.RefundResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(ports.RefundResult), args.Error(1)
}

type MockAdmitter struct{ mock.Mock }

func (m *MockAdmitter) Admit(ctx context.Context, req admission.Request) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
