package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// RefundOrderCommandHandler runs the refund ledger:
// authorize, lock the order, plan, call the gateway, book, commit, notify.
//
// The gateway is called while only the one order row is held, so refunds of
// unrelated orders do not wait on it. Nothing is booked unless the gateway
// returned a refund id.
type RefundOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.PaymentGateway
	notifier   ports.Notifier
	clock      ports.Clock
	logger     *slog.Logger
}

func NewRefundOrderCommandHandler(deps TransitionDeps, gateway ports.PaymentGateway) RefundOrderCommandHandler {
	return RefundOrderCommandHandler{
		uowFactory: deps.UoWFactory,
		gateway:    gateway,
		notifier:   deps.Notifier,
		clock:      deps.Clock,
		logger:     deps.Logger.With("component", "commands", "action", "refund order"),
	}
}

func (h RefundOrderCommandHandler) Handle(ctx context.Context, cmd RefundOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := authorize("refund order", adminRoles, cmd.Actor()); err != nil {
		return err
	}

	o, previous, err := h.refund(ctx, cmd)
	if err != nil {
		return classify("refund order", err)
	}

	notifyStatusChange(ctx, h.notifier, h.logger, o, previous)
	return nil
}

func (h RefundOrderCommandHandler) refund(ctx context.Context, cmd RefundOrderCommand) (*order.Order, order.Status, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, order.Unknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, order.Unknown, err
	}
	previous := o.Status()

	amount, err := o.PlanRefund(cmd.Amount())
	if err != nil {
		return nil, previous, err
	}

	result, err := h.gateway.Refund(ctx, ports.RefundRequest{
		PaymentID:      o.PaymentID(),
		Amount:         amount,
		IdempotencyKey: refundIdempotencyKey(o, amount),
		Reason:         cmd.Reason(),
	})
	if err != nil {
		var gatewayErr *errs.GatewayFailureError
		if errors.As(err, &gatewayErr) {
			return nil, previous, err
		}
		return nil, previous, errs.NewGatewayFailureError(o.PaymentID(), err)
	}
	if result.RefundID == "" {
		return nil, previous, errs.NewGatewayFailureError(o.PaymentID(), errors.New("gateway returned an empty refund id"))
	}

	if err = o.ApplyRefund(cmd.Actor(), amount, result.RefundID, h.clock.Now()); err != nil {
		return nil, previous, err
	}

	if err = repo.Update(ctx, o); err == nil {
		err = uow.Commit(ctx)
	}
	if err != nil {
		// The money has moved but the ledger was not written. Retrying with
		// the same amount reuses the idempotency key.
		h.logger.ErrorContext(ctx, "refund succeeded at gateway but was not recorded",
			"order_id", o.ID(),
			"payment_id", o.PaymentID(),
			"refund_id", result.RefundID,
			"amount", amount.String(),
			"error", err,
		)
		return nil, previous, errs.NewUnexpectedErrorWithCause("record refund", err)
	}

	return o, previous, nil
}

// refundIdempotencyKey derives a stable key from the order and the ledger
// position the refund is booked at.
func refundIdempotencyKey(o *order.Order, amount kernel.Money) string {
	name := fmt.Sprintf("%d:%s:%s", o.ID(), o.RefundedAmount(), amount)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}
