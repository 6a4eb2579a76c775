package orderrepo

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormOrderStatistics answers admission counts straight from the orders table.
type GormOrderStatistics struct {
	db *gorm.DB
}

func NewGormOrderStatistics(db *gorm.DB) *GormOrderStatistics {
	return &GormOrderStatistics{db: db}
}

// CountCreatedSince counts non-demo orders created at or after since whose
// customer is actorID or whose client IP is clientIP.
func (s *GormOrderStatistics) CountCreatedSince(ctx context.Context, actorID *uint64, clientIP string, since time.Time) (int64, error) {
	if actorID == nil && clientIP == "" {
		return 0, nil
	}

	q := s.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("is_demo = ?", false).
		Where("created_at >= ?", since)

	switch {
	case actorID != nil && clientIP != "":
		q = q.Where("customer_id = ? OR client_ip = ?", *actorID, clientIP)
	case actorID != nil:
		q = q.Where("customer_id = ?", *actorID)
	default:
		q = q.Where("client_ip = ?", clientIP)
	}

	var count int64
	err := q.Count(&count).Error
	return count, err
}

// CountActive counts non-demo orders that have not reached a terminal status.
func (s *GormOrderStatistics) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("is_demo = ?", false).
		Where("status IN ?", statusCodes(order.ActiveStatuses())).
		Count(&count).Error
	return count, err
}

func statusCodes(statuses []order.Status) []int {
	codes := make([]int, 0, len(statuses))
	for _, s := range statuses {
		codes = append(codes, int(s))
	}
	return codes
}
