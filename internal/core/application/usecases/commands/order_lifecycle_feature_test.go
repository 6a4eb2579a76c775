package commands_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/dbtest"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/cucumber/godog"
	"github.com/stretchr/testify/mock"
)

type countingGateway struct {
	calls atomic.Int64
}

func (g *countingGateway) Refund(_ context.Context, _ ports.RefundRequest) (ports.RefundResult, error) {
	n := g.calls.Add(1)
	return ports.RefundResult{RefundID: fmt.Sprintf("re_%d", n)}, nil
}

type lifecycleTestContext struct {
	t       *testing.T
	factory *postgres.GormUnitOfWorkFactory
	deps    commands.TransitionDeps
	gateway *countingGateway
	orderID uint64
	lastErr error
}

func (c *lifecycleTestContext) reset() {
	db := dbtest.NewSQLite(c.t)
	c.factory = postgres.NewGormUnitOfWorkFactory(db)
	notifier := new(MockNotifier)
	notifier.On("NotifyStatusChanged", mock.Anything, mock.Anything).Return(nil).Maybe()
	c.deps = transitionDeps(gormOrderUoWFactory{f: c.factory}, notifier)
	c.gateway = &countingGateway{}
	c.orderID = 0
	c.lastErr = nil
}

func (c *lifecycleTestContext) load(ctx context.Context) (*order.Order, error) {
	return c.factory.Create().OrderRepository().Get(ctx, c.orderID)
}

func (c *lifecycleTestContext) aConfirmedOrderTotalling(ctx context.Context, total string) error {
	amount, err := kernel.ParseMoney(total)
	if err != nil {
		return err
	}
	item, err := order.NewItem("Chef's choice", 1, amount)
	if err != nil {
		return err
	}
	customer, err := kernel.NewActor(100, kernel.RoleCustomer)
	if err != nil {
		return err
	}
	o, err := order.NewOrder(order.Draft{
		Items:       []order.Item{item},
		TotalAmount: amount,
		PaymentID:   "pay_feature",
	}, customer, baseTime)
	if err != nil {
		return err
	}
	if err = o.Confirm(kernel.SystemActor(), "", baseTime); err != nil {
		return err
	}
	if err = c.factory.Create().OrderRepository().Add(ctx, o); err != nil {
		return err
	}
	c.orderID = o.ID()
	return nil
}

func (c *lifecycleTestContext) startsPreparing(ctx context.Context, role string, id, minutes int) error {
	a, err := c.actor(role, id)
	if err != nil {
		return err
	}
	cmd, err := commands.NewStartPreparingCommand(c.orderID, a, minutes)
	if err != nil {
		return err
	}
	c.lastErr = commands.NewStartPreparingCommandHandler(c.deps).Handle(ctx, cmd)
	return nil
}

func (c *lifecycleTestContext) marksReady(ctx context.Context, role string, id int) error {
	a, err := c.actor(role, id)
	if err != nil {
		return err
	}
	cmd, err := commands.NewMarkReadyCommand(c.orderID, a)
	if err != nil {
		return err
	}
	c.lastErr = commands.NewMarkReadyCommandHandler(c.deps).Handle(ctx, cmd)
	return nil
}

func (c *lifecycleTestContext) remakes(ctx context.Context, role string, id int, reason string) error {
	a, err := c.actor(role, id)
	if err != nil {
		return err
	}
	cmd, err := commands.NewRemakeOrderCommand(c.orderID, a, reason)
	if err != nil {
		return err
	}
	c.lastErr = commands.NewRemakeOrderCommandHandler(c.deps).Handle(ctx, cmd)
	return nil
}

func (c *lifecycleTestContext) acceptsDelivery(ctx context.Context, role string, id, minutes int) error {
	a, err := c.actor(role, id)
	if err != nil {
		return err
	}
	cmd, err := commands.NewAcceptDeliveryCommand(c.orderID, a, minutes)
	if err != nil {
		return err
	}
	c.lastErr = commands.NewAcceptDeliveryCommandHandler(c.deps).Handle(ctx, cmd)
	return nil
}

func (c *lifecycleTestContext) marksDelivered(ctx context.Context, role string, id int) error {
	a, err := c.actor(role, id)
	if err != nil {
		return err
	}
	cmd, err := commands.NewMarkDeliveredCommand(c.orderID, a)
	if err != nil {
		return err
	}
	c.lastErr = commands.NewMarkDeliveredCommandHandler(c.deps).Handle(ctx, cmd)
	return nil
}

func (c *lifecycleTestContext) adminCancels(ctx context.Context, reason string) error {
	cmd, err := commands.NewCancelOrderCommand(c.orderID, c.admin(), reason)
	if err != nil {
		return err
	}
	c.lastErr = commands.NewCancelOrderCommandHandler(c.deps).Handle(ctx, cmd)
	return nil
}

func (c *lifecycleTestContext) adminRefunds(ctx context.Context, amount string) error {
	m, err := kernel.ParseMoney(amount)
	if err != nil {
		return err
	}
	return c.refund(ctx, &m)
}

func (c *lifecycleTestContext) adminRefundsRemaining(ctx context.Context) error {
	return c.refund(ctx, nil)
}

func (c *lifecycleTestContext) refund(ctx context.Context, amount *kernel.Money) error {
	cmd, err := commands.NewRefundOrderCommand(c.orderID, c.admin(), amount, "feature")
	if err != nil {
		return err
	}
	c.lastErr = commands.NewRefundOrderCommandHandler(c.deps, c.gateway).Handle(ctx, cmd)
	return nil
}

func (c *lifecycleTestContext) theOrderStatusIs(ctx context.Context, status string) error {
	o, err := c.load(ctx)
	if err != nil {
		return err
	}
	if o.Status().String() != status {
		return fmt.Errorf("expected status %s, got %s", status, o.Status())
	}
	return nil
}

func (c *lifecycleTestContext) theHistoryReads(ctx context.Context, expected string) error {
	o, err := c.load(ctx)
	if err != nil {
		return err
	}
	got := make([]string, 0, o.History().Len())
	for _, e := range o.History().Entries() {
		got = append(got, e.Status.String())
	}
	if strings.Join(got, ", ") != expected {
		return fmt.Errorf("expected history %q, got %q", expected, strings.Join(got, ", "))
	}
	return nil
}

func (c *lifecycleTestContext) theLastStepFailsWith(substring string) error {
	if c.lastErr == nil {
		return errors.New("expected the last step to fail but it succeeded")
	}
	if !strings.Contains(c.lastErr.Error(), substring) {
		return fmt.Errorf("expected error to contain %q, got %q", substring, c.lastErr.Error())
	}
	return nil
}

func (c *lifecycleTestContext) theOrderIsAssignedToCourier(ctx context.Context, id int) error {
	o, err := c.load(ctx)
	if err != nil {
		return err
	}
	if o.CourierID() == nil || *o.CourierID() != uint64(id) {
		return fmt.Errorf("expected courier %d, got %v", id, o.CourierID())
	}
	return nil
}

func (c *lifecycleTestContext) theRefundedAmountIs(ctx context.Context, amount string) error {
	o, err := c.load(ctx)
	if err != nil {
		return err
	}
	if o.RefundedAmount().String() != amount {
		return fmt.Errorf("expected refunded amount %s, got %s", amount, o.RefundedAmount())
	}
	return nil
}

func (c *lifecycleTestContext) actor(role string, id int) (kernel.Actor, error) {
	r, err := kernel.ParseRole(role)
	if err != nil {
		return kernel.Actor{}, err
	}
	return kernel.NewActor(uint64(id), r)
}

func (c *lifecycleTestContext) admin() kernel.Actor {
	a, _ := kernel.NewActor(1, kernel.RoleAdmin)
	return a
}

func initializeLifecycleScenario(t *testing.T) func(*godog.ScenarioContext) {
	return func(ctx *godog.ScenarioContext) {
		tc := &lifecycleTestContext{t: t}

		ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
			tc.reset()
			return ctx, nil
		})

		// Given steps
		ctx.Step(`^a confirmed order totalling "([^"]*)"$`, tc.aConfirmedOrderTotalling)

		// When steps
		ctx.Step(`^(kitchen|courier) (\d+) starts preparing with an estimate of (\d+) minutes$`, tc.startsPreparing)
		ctx.Step(`^(kitchen|courier) (\d+) marks the order ready$`, tc.marksReady)
		ctx.Step(`^(kitchen|courier) (\d+) remakes the order because "([^"]*)"$`, tc.remakes)
		ctx.Step(`^(kitchen|courier) (\d+) accepts the delivery with an estimate of (\d+) minutes$`, tc.acceptsDelivery)
		ctx.Step(`^(kitchen|courier) (\d+) marks the order delivered$`, tc.marksDelivered)
		ctx.Step(`^the administrator cancels the order because "([^"]*)"$`, tc.adminCancels)
		ctx.Step(`^the administrator refunds "([^"]*)"$`, tc.adminRefunds)
		ctx.Step(`^the administrator refunds the remaining amount$`, tc.adminRefundsRemaining)

		// Then steps
		ctx.Step(`^the order status is "([^"]*)"$`, tc.theOrderStatusIs)
		ctx.Step(`^the history reads "([^"]*)"$`, tc.theHistoryReads)
		ctx.Step(`^the last step fails with "([^"]*)"$`, tc.theLastStepFailsWith)
		ctx.Step(`^the order is assigned to courier (\d+)$`, tc.theOrderIsAssignedToCourier)
		ctx.Step(`^the refunded amount is "([^"]*)"$`, tc.theRefundedAmountIs)
	}
}

func TestOrderLifecycleFeature(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: initializeLifecycleScenario(t),
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../../../../../features/order_lifecycle.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
