package queries

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type orderRow struct {
	ID                       uint64
	Status                   int
	CustomerID               *uint64
	Items                    datatypes.JSON
	KitchenID                *uint64
	CourierID                *uint64
	PrepStartedAt            *time.Time
	PrepEstimatedMinutes     *int
	DeliveryStartedAt        *time.Time
	DeliveryEstimatedMinutes *int
	TotalAmount              decimal.Decimal
	RefundedAmount           decimal.Decimal
	RefundID                 string
	PaymentID                string
	StatusHistory            datatypes.JSON
	IsDemo                   bool
	StatusChangedAt          time.Time
	CreatedAt                time.Time
	UpdatedAt                time.Time
	Version                  uint64
}

type itemRow struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
}

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order. An order owned by another customer is reported
// as not found.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}
	actor := query.Actor()
	if err := authorize("read order", orderViewRoles, actor); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if actor.Role() == kernel.RoleCustomer && actor.ID() == nil {
		return GetOrderQueryResponse{}, errs.NewUnauthorizedError("read order", "guests cannot read orders")
	}

	var row orderRow
	err := h.db.WithContext(ctx).Table("orders").Where("id = ?", query.OrderID()).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, errs.NewUnexpectedErrorWithCause("read order", err)
	}

	if actor.Role() == kernel.RoleCustomer && !actor.Is(row.CustomerID) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	resp, err := row.toResponse()
	if err != nil {
		return GetOrderQueryResponse{}, errs.NewUnexpectedErrorWithCause("read order", err)
	}
	return resp, nil
}

func (r orderRow) toResponse() (GetOrderQueryResponse, error) {
	var raw []itemRow
	if len(r.Items) > 0 {
		if err := json.Unmarshal(r.Items, &raw); err != nil {
			return GetOrderQueryResponse{}, err
		}
	}
	items := make([]OrderItemView, 0, len(raw))
	for _, i := range raw {
		price, err := kernel.ParseMoney(i.UnitPrice)
		if err != nil {
			return GetOrderQueryResponse{}, err
		}
		items = append(items, OrderItemView{Name: i.Name, Quantity: i.Quantity, UnitPrice: price})
	}

	total, err := kernel.NewMoney(r.TotalAmount)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	refunded, err := kernel.NewMoney(r.RefundedAmount)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	entries := order.DecodeHistory(r.StatusHistory).Entries()
	history := make([]HistoryEntryView, 0, len(entries))
	for _, e := range entries {
		history = append(history, HistoryEntryView{
			Status:    e.Status.String(),
			Timestamp: e.Timestamp.UTC(),
			ActorID:   e.ActorID,
			Note:      e.Note,
		})
	}

	return GetOrderQueryResponse{
		ID:                       r.ID,
		Status:                   order.Status(r.Status).String(),
		CustomerID:               r.CustomerID,
		Items:                    items,
		KitchenID:                r.KitchenID,
		CourierID:                r.CourierID,
		PrepStartedAt:            r.PrepStartedAt,
		PrepEstimatedMinutes:     r.PrepEstimatedMinutes,
		DeliveryStartedAt:        r.DeliveryStartedAt,
		DeliveryEstimatedMinutes: r.DeliveryEstimatedMinutes,
		TotalAmount:              total,
		RefundedAmount:           refunded,
		RefundID:                 r.RefundID,
		PaymentID:                r.PaymentID,
		History:                  history,
		IsDemo:                   r.IsDemo,
		StatusChangedAt:          r.StatusChangedAt.UTC(),
		CreatedAt:                r.CreatedAt.UTC(),
		UpdatedAt:                r.UpdatedAt.UTC(),
		Version:                  r.Version,
	}, nil
}
