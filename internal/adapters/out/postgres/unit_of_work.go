// Package postgres provides the GORM-based Unit of Work over the order and actor tables.
// A unit of work maintains a list of aggregates affected by a business transaction and
// coordinates writing out changes.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().UpdateStatus(ctx, o, from); err != nil {
//	    return err
//	}
//	if err := uow.OrderRepository().AddTransition(ctx, record); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency: each UnitOfWork instance owns one transaction, so goroutines must use
// separate instances. Conditional status writes rely on row locking under READ COMMITTED:
// a second writer blocks on the row, then re-evaluates its WHERE clause and matches
// nothing once the first commits.
package postgres

import (
	"context"
	"slices"

	"laundry/internal/adapters/out/postgres/actorrepo"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackedAggregate is an aggregate written during the unit of work. Repositories report
// every Add and Update here, so a caller can collect what a transaction touched before it
// commits.
type TrackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
// Each business operation gets a fresh unit of work, isolated from concurrent ones.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
//	if err != nil {
//	    return err
//	}
//	if err = Migrate(db); err != nil {
//	    return err
//	}
//	factory := NewGormUnitOfWorkFactory(db)
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// The provided connection is used by every unit of work the factory creates. Open it
// with TranslateError so duplicate tickets surface as gorm.ErrDuplicatedKey.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance with its own transaction state and
// aggregate tracking.
//
// Example:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.ActorRepository().Add(ctx, driver); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]TrackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the repositories.
// It is not safe for concurrent use; goroutines must each Create their own.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []TrackedAggregate
}

// Begin opens the transaction. Calling it again while a transaction is open is a no-op,
// which lets a command handler begin a unit of work its caller may already have begun.
// A failure to reach the database is reported as errs.TransportError.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errs.NewTransportError("begin transaction", tx.Error)
	}
	uow.tx = tx

	return nil
}

// Commit finalizes the transaction. The instance can Begin again afterwards.
//
// Returns:
//   - gorm.ErrInvalidTransaction if Begin was not called
//   - errs.TransportError if the database rejected the commit
//   - nil otherwise
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return errs.NewTransportError("commit transaction", err)
	}
	return nil
}

// Rollback discards the transaction and forgets the tracked aggregates. It returns
// gorm.ErrInvalidTransaction when nothing is open, which makes it safe to defer after
// Commit:
//
//	defer func() { _ = uow.Rollback(ctx) }()
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// OrderRepository is bound to the open transaction, or to the pool when none is open.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// ActorRepository is bound to the open transaction, or to the pool when none is open.
func (uow *GormUnitOfWork) ActorRepository() ports.ActorRepository {
	return actorrepo.NewGormActorRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate written by a repository of this unit of work.
// Repositories call it after a successful write; callers normally do not.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, TrackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedAggregates lists the aggregates written since the last rollback.
func (uow *GormUnitOfWork) TrackedAggregates() []TrackedAggregate {
	return slices.Clone(uow.trackedAggregates)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// Migrate creates or updates the schema of every table the adapters use.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.TransitionDTO{},
		&actorrepo.ActorDTO{},
	)
}
