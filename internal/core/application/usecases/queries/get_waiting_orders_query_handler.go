package queries

import (
	"context"
	"slices"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	waitingForKitchenSQL = `
		SELECT
			id,
			status_changed_at,
			total_amount
		FROM orders
		WHERE status = ? AND is_demo = ? AND kitchen_id IS NULL
		ORDER BY id`

	waitingForCourierSQL = `
		SELECT
			id,
			status_changed_at,
			total_amount
		FROM orders
		WHERE status = ? AND is_demo = ? AND courier_id IS NULL
		ORDER BY id`
)

// GetWaitingOrdersQueryHandler reads the unclaimed-work queues straight from
// the orders table.
type GetWaitingOrdersQueryHandler struct {
	db    *gorm.DB
	clock ports.Clock
}

func NewGetWaitingOrdersQueryHandler(db *gorm.DB, clock ports.Clock) GetWaitingOrdersQueryHandler {
	return GetWaitingOrdersQueryHandler{db: db, clock: clock}
}

// Handle returns the queue sorted by longest wait first. Orders that waited
// less than the query's minimum are left out.
func (h GetWaitingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetWaitingOrdersQuery,
) ([]GetWaitingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := authorize("read waiting orders", dashboardRoles, query.Actor()); err != nil {
		return nil, err
	}

	status, _ := waitingStatus(query.Role())
	stmt := waitingForKitchenSQL
	if query.Role() == kernel.RoleCourier {
		stmt = waitingForCourierSQL
	}

	rows, err := h.db.WithContext(ctx).Raw(stmt, int(status), false).Rows()
	if err != nil {
		return nil, errs.NewUnexpectedErrorWithCause("read waiting orders", err)
	}
	defer rows.Close()

	now := h.clock.Now()
	minWait := time.Duration(query.MinWaitMinutes()) * time.Minute
	waiting := make([]GetWaitingOrdersQueryResponse, 0)

	for rows.Next() {
		var (
			id        uint64
			changedAt time.Time
			total     decimal.Decimal
		)
		if err = rows.Scan(&id, &changedAt, &total); err != nil {
			return nil, errs.NewUnexpectedErrorWithCause("read waiting orders", err)
		}

		waited := now.Sub(changedAt)
		if waited < minWait {
			continue
		}

		amount, moneyErr := kernel.NewMoney(total)
		if moneyErr != nil {
			return nil, errs.NewUnexpectedErrorWithCause("read waiting orders", moneyErr)
		}

		waiting = append(waiting, GetWaitingOrdersQueryResponse{
			OrderID:       id,
			Status:        status.String(),
			WaitingSince:  changedAt.UTC(),
			WaitedMinutes: int(waited / time.Minute),
			TotalAmount:   amount,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewUnexpectedErrorWithCause("read waiting orders", err)
	}

	slices.SortStableFunc(waiting, func(a, b GetWaitingOrdersQueryResponse) int {
		return a.WaitingSince.Compare(b.WaitingSince)
	})
	return waiting, nil
}
