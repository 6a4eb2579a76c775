package commands

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/admission"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// Admitter gates order creation.
type Admitter interface {
	Admit(ctx context.Context, req admission.Request) error
}

// CreateOrderCommandHandler admits and persists a new Pending order.
//
// Admission runs before the insert transaction is opened; its counts are a
// point-in-time read, so concurrent checkouts may slightly over-admit.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	admitter   Admitter
	notifier   ports.Notifier
	clock      ports.Clock
	logger     *slog.Logger
}

func NewCreateOrderCommandHandler(deps TransitionDeps, admitter Admitter) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: deps.UoWFactory,
		admitter:   admitter,
		notifier:   deps.Notifier,
		clock:      deps.Clock,
		logger:     deps.Logger.With("component", "commands", "action", "create order"),
	}
}

// Handle returns the id of the created order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (uint64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	draft := cmd.Draft()
	allowed := createOrderRoles
	if draft.IsDemo {
		allowed = createDemoOrderRoles
	}
	if err := authorize("create order", allowed, cmd.Actor()); err != nil {
		return 0, err
	}

	if err := h.admitter.Admit(ctx, admission.Request{
		ActorID:   cmd.Actor().ID(),
		ClientIP:  draft.ClientIP,
		ItemCount: order.TotalQuantity(draft.Items),
		IsDemo:    draft.IsDemo,
	}); err != nil {
		return 0, err
	}

	o, err := order.NewOrder(draft, cmd.Actor(), h.clock.Now())
	if err != nil {
		return 0, err
	}

	if err = h.persist(ctx, o); err != nil {
		return 0, classify("create order", err)
	}

	notifyStatusChange(ctx, h.notifier, h.logger, o, order.Unknown)
	return o.ID(), nil
}

func (h CreateOrderCommandHandler) persist(ctx context.Context, o *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
