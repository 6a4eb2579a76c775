package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/adapters/out/postgres/dberrs"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id uint64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new order and stamps the aggregate with its id and version 1.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	dto.ID = 0
	dto.Version = 1

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberrs.Classify(err)
	}

	aggregate.MarkPersisted(dto.ID, dto.Version)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes every column if the stored version still equals the
// aggregate's, then advances the version on both sides.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	expected := dto.Version
	dto.Version = expected + 1

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, expected).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return dberrs.Classify(result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err = r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return dberrs.Classify(err)
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", dto.ID)
		}
		return fmt.Errorf("%w: order %d is no longer at version %d", errs.ErrConcurrentModification, dto.ID, expected)
	}

	aggregate.MarkPersisted(dto.ID, dto.Version)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id uint64) (*order.Order, error) {
	return r.get(ctx, r.db.WithContext(ctx), id)
}

// GetForUpdate retrieves an order and locks its row until the transaction
// ends. SQLite has no row locks; its single connection serializes writers.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id uint64) (*order.Order, error) {
	q := r.db.WithContext(ctx)
	if r.db.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}
	return r.get(ctx, q, id)
}

func (r *GormOrderRepository) get(_ context.Context, q *gorm.DB, id uint64) (*order.Order, error) {
	if id == 0 {
		return nil, errs.NewValueIsRequiredError("order id")
	}

	var dto OrderDTO
	if err := q.First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, dberrs.Classify(err)
	}

	return toDomain(dto)
}
