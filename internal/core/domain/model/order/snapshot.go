package order

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// Snapshot is the full persisted state of an order. Repositories convert
// between their row format and Snapshot; nothing else should build one.
type Snapshot struct {
	ID                       uint64
	Status                   Status
	CustomerID               *uint64
	ClientIP                 string
	Items                    []Item
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
	History                  History
	IsDemo                   bool
	DemoScenario             string
	StatusChangedAt          time.Time
	CreatedAt                time.Time
	UpdatedAt                time.Time
	Version                  uint64
}

// RestoreOrder rebuilds an aggregate from persisted state without re-running
// creation rules.
func RestoreOrder(s Snapshot) *Order {
	return &Order{
		id:                       s.ID,
		status:                   s.Status,
		customerID:               copyID(s.CustomerID),
		clientIP:                 s.ClientIP,
		items:                    append([]Item(nil), s.Items...),
		kitchenID:                copyID(s.KitchenID),
		courierID:                copyID(s.CourierID),
		prepStartedAt:            copyTime(s.PrepStartedAt),
		prepEstimatedMinutes:     copyInt(s.PrepEstimatedMinutes),
		deliveryStartedAt:        copyTime(s.DeliveryStartedAt),
		deliveryEstimatedMinutes: copyInt(s.DeliveryEstimatedMinutes),
		totalAmount:              s.TotalAmount,
		refundedAmount:           s.RefundedAmount,
		refundID:                 s.RefundID,
		paymentID:                s.PaymentID,
		history:                  s.History,
		isDemo:                   s.IsDemo,
		demoScenario:             s.DemoScenario,
		statusChangedAt:          s.StatusChangedAt,
		createdAt:                s.CreatedAt,
		updatedAt:                s.UpdatedAt,
		version:                  s.Version,
		isConstructed:            true,
	}
}

// Snapshot exports the aggregate state.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:                       o.id,
		Status:                   o.status,
		CustomerID:               o.CustomerID(),
		ClientIP:                 o.clientIP,
		Items:                    o.Items(),
		KitchenID:                o.KitchenID(),
		CourierID:                o.CourierID(),
		PrepStartedAt:            o.PrepStartedAt(),
		PrepEstimatedMinutes:     o.PrepEstimatedMinutes(),
		DeliveryStartedAt:        o.DeliveryStartedAt(),
		DeliveryEstimatedMinutes: o.DeliveryEstimatedMinutes(),
		TotalAmount:              o.totalAmount,
		RefundedAmount:           o.refundedAmount,
		RefundID:                 o.refundID,
		PaymentID:                o.paymentID,
		History:                  o.history,
		IsDemo:                   o.isDemo,
		DemoScenario:             o.demoScenario,
		StatusChangedAt:          o.statusChangedAt,
		CreatedAt:                o.createdAt,
		UpdatedAt:                o.updatedAt,
		Version:                  o.version,
	}
}
