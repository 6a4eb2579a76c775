package queries

import (
	"context"
	"slices"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// overdueRow holds the timing columns of a claimed order.
type overdueRow struct {
	ID                       uint64
	Status                   int
	KitchenID                *uint64
	CourierID                *uint64
	PrepStartedAt            *time.Time
	PrepEstimatedMinutes     *int
	DeliveryStartedAt        *time.Time
	DeliveryEstimatedMinutes *int
}

type GetOverdueOrdersQueryHandler struct {
	db    *gorm.DB
	clock ports.Clock
}

func NewGetOverdueOrdersQueryHandler(db *gorm.DB, clock ports.Clock) GetOverdueOrdersQueryHandler {
	return GetOverdueOrdersQueryHandler{db: db, clock: clock}
}

// Handle returns overdue orders, most overdue first. Orders without a
// recorded start or estimate are never overdue.
func (h GetOverdueOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueOrdersQuery,
) ([]GetOverdueOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := authorize("read overdue orders", dashboardRoles, query.Actor()); err != nil {
		return nil, err
	}

	var rows []overdueRow
	err := h.db.WithContext(ctx).
		Table("orders").
		Select("id, status, kitchen_id, courier_id, prep_started_at, prep_estimated_minutes, " +
			"delivery_started_at, delivery_estimated_minutes").
		Where("is_demo = ?", false).
		Where("status IN ?", []int{int(order.Preparing), int(order.Delivering)}).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, errs.NewUnexpectedErrorWithCause("read overdue orders", err)
	}

	now := h.clock.Now()
	overdue := make([]GetOverdueOrdersQueryResponse, 0)
	for _, r := range rows {
		item, ok := r.overdueAt(now)
		if ok {
			overdue = append(overdue, item)
		}
	}

	slices.SortStableFunc(overdue, func(a, b GetOverdueOrdersQueryResponse) int {
		return a.DueAt.Compare(b.DueAt)
	})
	return overdue, nil
}

func (r overdueRow) overdueAt(now time.Time) (GetOverdueOrdersQueryResponse, bool) {
	status := order.Status(r.Status)
	startedAt, estimate, assignee := r.PrepStartedAt, r.PrepEstimatedMinutes, r.KitchenID
	if status == order.Delivering {
		startedAt, estimate, assignee = r.DeliveryStartedAt, r.DeliveryEstimatedMinutes, r.CourierID
	}
	if startedAt == nil || estimate == nil {
		return GetOverdueOrdersQueryResponse{}, false
	}

	dueAt := startedAt.Add(time.Duration(*estimate) * time.Minute)
	if !now.After(dueAt) {
		return GetOverdueOrdersQueryResponse{}, false
	}

	return GetOverdueOrdersQueryResponse{
		OrderID:          r.ID,
		Status:           status.String(),
		AssigneeID:       assignee,
		StartedAt:        startedAt.UTC(),
		EstimatedMinutes: *estimate,
		DueAt:            dueAt.UTC(),
		OverdueMinutes:   int(now.Sub(dueAt) / time.Minute),
	}, true
}
