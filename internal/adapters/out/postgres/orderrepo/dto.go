// Package orderrepo persists the order aggregate in the orders table. It maps
// between the domain Snapshot and the relational row; items and the status
// history are JSON columns.
package orderrepo

import (
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderDTO is the orders row. Timestamps come from the domain clock, so gorm's
// automatic time tracking is disabled.
type OrderDTO struct {
	ID                       uint64                       `gorm:"primaryKey;autoIncrement"`
	Status                   int                          `gorm:"not null;index"`
	CustomerID               *uint64                      `gorm:"index"`
	ClientIP                 string                       `gorm:"size:64;index"`
	Items                    datatypes.JSONSlice[ItemDTO] `gorm:"not null"`
	KitchenID                *uint64                      `gorm:"index"`
	CourierID                *uint64                      `gorm:"index"`
	PrepStartedAt            *time.Time
	PrepEstimatedMinutes     *int
	DeliveryStartedAt        *time.Time
	DeliveryEstimatedMinutes *int
	TotalAmount              decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	RefundedAmount           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	RefundID                 string          `gorm:"size:128"`
	PaymentID                string          `gorm:"size:128;index"`
	StatusHistory            datatypes.JSON  `gorm:"not null"`
	IsDemo                   bool            `gorm:"not null;default:false;index"`
	DemoScenario             string          `gorm:"size:64"`
	StatusChangedAt          time.Time       `gorm:"not null;index"`
	CreatedAt                time.Time       `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt                time.Time       `gorm:"not null;autoUpdateTime:false"`
	Version                  uint64          `gorm:"not null;default:1"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one element of the items JSON column.
type ItemDTO struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
}

func fromDomain(o *order.Order) (OrderDTO, error) {
	s := o.Snapshot()

	items := make([]ItemDTO, 0, len(s.Items))
	for _, i := range s.Items {
		items = append(items, ItemDTO{Name: i.Name, Quantity: i.Quantity, UnitPrice: i.UnitPrice.String()})
	}

	history, err := s.History.MarshalJSON()
	if err != nil {
		return OrderDTO{}, fmt.Errorf("encode status history: %w", err)
	}

	return OrderDTO{
		ID:                       s.ID,
		Status:                   int(s.Status),
		CustomerID:               s.CustomerID,
		ClientIP:                 s.ClientIP,
		Items:                    items,
		KitchenID:                s.KitchenID,
		CourierID:                s.CourierID,
		PrepStartedAt:            s.PrepStartedAt,
		PrepEstimatedMinutes:     s.PrepEstimatedMinutes,
		DeliveryStartedAt:        s.DeliveryStartedAt,
		DeliveryEstimatedMinutes: s.DeliveryEstimatedMinutes,
		TotalAmount:              s.TotalAmount.Decimal(),
		RefundedAmount:           s.RefundedAmount.Decimal(),
		RefundID:                 s.RefundID,
		PaymentID:                s.PaymentID,
		StatusHistory:            datatypes.JSON(history),
		IsDemo:                   s.IsDemo,
		DemoScenario:             s.DemoScenario,
		StatusChangedAt:          s.StatusChangedAt,
		CreatedAt:                s.CreatedAt,
		UpdatedAt:                s.UpdatedAt,
		Version:                  s.Version,
	}, nil
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	total, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("order %d total amount: %w", dto.ID, err)
	}
	refunded, err := kernel.NewMoney(dto.RefundedAmount)
	if err != nil {
		return nil, fmt.Errorf("order %d refunded amount: %w", dto.ID, err)
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, i := range dto.Items {
		price, priceErr := kernel.ParseMoney(i.UnitPrice)
		if priceErr != nil {
			return nil, fmt.Errorf("order %d item %q: %w", dto.ID, i.Name, priceErr)
		}
		items = append(items, order.Item{Name: i.Name, Quantity: i.Quantity, UnitPrice: price})
	}

	return order.RestoreOrder(order.Snapshot{
		ID:                       dto.ID,
		Status:                   order.Status(dto.Status),
		CustomerID:               dto.CustomerID,
		ClientIP:                 dto.ClientIP,
		Items:                    items,
		KitchenID:                dto.KitchenID,
		CourierID:                dto.CourierID,
		PrepStartedAt:            dto.PrepStartedAt,
		PrepEstimatedMinutes:     dto.PrepEstimatedMinutes,
		DeliveryStartedAt:        dto.DeliveryStartedAt,
		DeliveryEstimatedMinutes: dto.DeliveryEstimatedMinutes,
		TotalAmount:              total,
		RefundedAmount:           refunded,
		RefundID:                 dto.RefundID,
		PaymentID:                dto.PaymentID,
		History:                  order.DecodeHistory(dto.StatusHistory),
		IsDemo:                   dto.IsDemo,
		DemoScenario:             dto.DemoScenario,
		StatusChangedAt:          dto.StatusChangedAt,
		CreatedAt:                dto.CreatedAt,
		UpdatedAt:                dto.UpdatedAt,
		Version:                  dto.Version,
	}), nil
}

// ToDomain exposes the row mapping to read models that load OrderDTO directly.
func ToDomain(dto OrderDTO) (*order.Order, error) {
	return toDomain(dto)
}
