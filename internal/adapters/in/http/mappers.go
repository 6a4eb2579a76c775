package http

import (
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

func orderResponse(o queries.GetOrderQueryResponse) servers.Order {
	items := make([]servers.OrderItem, len(o.Items))
	for i, it := range o.Items {
		items[i] = servers.OrderItem{Name: it.Name, Quantity: it.Quantity, UnitPrice: it.UnitPrice.String()}
	}

	history := make([]servers.HistoryEntry, len(o.History))
	for i, e := range o.History {
		history[i] = servers.HistoryEntry{
			Status:    e.Status,
			Timestamp: e.Timestamp,
			ActorId:   toInt64(e.ActorID),
			Note:      optional(e.Note),
		}
	}

	return servers.Order{
		Id:                       int64(o.ID),
		Status:                   o.Status,
		CustomerId:               toInt64(o.CustomerID),
		Items:                    items,
		KitchenId:                toInt64(o.KitchenID),
		CourierId:                toInt64(o.CourierID),
		PrepStartedAt:            o.PrepStartedAt,
		PrepEstimatedMinutes:     o.PrepEstimatedMinutes,
		DeliveryStartedAt:        o.DeliveryStartedAt,
		DeliveryEstimatedMinutes: o.DeliveryEstimatedMinutes,
		TotalAmount:              o.TotalAmount.String(),
		RefundedAmount:           o.RefundedAmount.String(),
		RefundId:                 optional(o.RefundID),
		PaymentId:                optional(o.PaymentID),
		History:                  history,
		IsDemo:                   o.IsDemo,
		StatusChangedAt:          o.StatusChangedAt,
		CreatedAt:                o.CreatedAt,
		UpdatedAt:                o.UpdatedAt,
	}
}

func settingsResponse(s queries.GetSettingsQueryResponse) servers.Settings {
	return servers.Settings{
		OpenTime:      s.OpenTime,
		LastOrderTime: s.LastOrderTime,
		EmergencyClosure: servers.ClosureState{
			Active:      s.Closure.Active,
			InForce:     s.Closure.InForce,
			Reason:      optional(s.Closure.Reason),
			Message:     optional(s.Closure.Message),
			Until:       s.Closure.Until,
			ActivatedBy: toInt64(s.Closure.ActivatedBy),
			ActivatedAt: s.Closure.ActivatedAt,
		},
		Limits: servers.Limits{
			MaxCartItems:     s.MaxCartItems,
			MaxOrdersPerHour: s.MaxOrdersPerHour,
			MaxActiveOrders:  s.MaxActiveOrders,
		},
		UpdatedAt: s.UpdatedAt,
		UpdatedBy: toInt64(s.UpdatedBy),
	}
}

func toInt64(id *uint64) *int64 {
	if id == nil {
		return nil
	}
	v := int64(*id)
	return &v
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// refundAmount parses an optional refund amount. Amounts that are not
// positive break the refund rules rather than the money format.
func refundAmount(raw *servers.RefundAmount) (*kernel.Money, error) {
	if raw == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*raw)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	if !d.IsPositive() {
		return nil, errs.NewRefundInvalidError("refund amount must be greater than 0")
	}
	m, err := kernel.NewMoney(d)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
