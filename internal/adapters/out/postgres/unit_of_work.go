// Package postgres provides the GORM-based store: connection setup, schema
// migration and the Unit of Work that binds the order and settings
// repositories to one transaction.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	o, err := uow.OrderRepository().GetForUpdate(ctx, id)
//	if err != nil {
//	    return err
//	}
//	// mutate o
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit returns gorm.ErrInvalidTransaction and
// is otherwise harmless, which is what makes the deferred rollback safe.
//
// Concurrency:
//   - Each UnitOfWork instance holds its own transaction; never share one
//     between goroutines.
//   - On postgres GetForUpdate takes a row lock. Updates are additionally
//     guarded by the version column, so a lost race surfaces as
//     errs.ErrConcurrentModification rather than a silent overwrite.
//   - On sqlite the pool has one connection and transactions run one at a time.
package postgres

import (
	"context"

	"fulfillment/internal/adapters/out/postgres/dberrs"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/settingsrepo"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        uint64
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.CreateGorm()
}

// CreateGorm is Create returning the concrete type.
func (f *GormUnitOfWorkFactory) CreateGorm() *GormUnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and records the
// aggregates written through it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling Begin again while a transaction is
// open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return dberrs.Classify(tx.Error)
	}

	uow.tx = tx
	return nil
}

// Commit finalizes the transaction. Returns gorm.ErrInvalidTransaction when
// no transaction is open. Serialization failures reported at commit are
// classified as errs.ErrConcurrentModification.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return dberrs.Classify(err)
}

// Rollback discards the transaction. Returns gorm.ErrInvalidTransaction when
// no transaction is open.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// OrderRepository returns an order repository bound to the open transaction,
// or to the plain connection when none is open.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// SettingsRepository returns a settings repository bound like OrderRepository.
func (uow *GormUnitOfWork) SettingsRepository() ports.SettingsRepository {
	return settingsrepo.NewGormSettingsRepository(uow.conn())
}

// TrackAggregate registers an aggregate written within this unit of work.
// It is called by repository implementations after Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id uint64, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedAggregateIDs returns the ids of the aggregates written so far, in
// write order.
func (uow *GormUnitOfWork) TrackedAggregateIDs() []uint64 {
	ids := make([]uint64, 0, len(uow.trackedAggregates))
	for _, t := range uow.trackedAggregates {
		ids = append(ids, t.ID)
	}
	return ids
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
