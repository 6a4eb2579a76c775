package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery reads one order with its items and audit trail. Customers
// only see their own orders; staff see every order.
type GetOrderQuery struct {
	actor   kernel.Actor
	orderID uint64

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(actor kernel.Actor, orderID uint64) (GetOrderQuery, error) {
	if orderID == 0 {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("order id")
	}
	return GetOrderQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Actor() kernel.Actor { return q.actor }
func (q GetOrderQuery) OrderID() uint64 { return q.orderID }

type OrderItemView struct {
	Name      string
	Quantity  int
	UnitPrice kernel.Money
}

type HistoryEntryView struct {
	Status    string
	Timestamp time.Time
	ActorID   *uint64
	Note      string
}

// GetOrderQueryResponse is the full read model of an order.
type GetOrderQueryResponse struct {
	ID                       uint64
	Status                   string
	CustomerID               *uint64
	Items                    []OrderItemView
	KitchenID                *uint64
	CourierID                *uint64
	PrepStartedAt            *time.Time
	PrepEstimatedMinutes     *int
	DeliveryStartedAt        *time.Time
	DeliveryEstimatedMinutes *int
	TotalAmount              kernel.Money
	RefundedAmount           kernel.Money
	RefundID                 string
	PaymentID                string
	History                  []HistoryEntryView
	IsDemo                   bool
	StatusChangedAt          time.Time
	CreatedAt                time.Time
	UpdatedAt                time.Time
	Version                  uint64
}
