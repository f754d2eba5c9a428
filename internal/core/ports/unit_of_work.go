package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork for each command, so concurrent commands
// never share transaction state.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary spanning the order and actor
// repositories. Client code manages the lifecycle explicitly:
//
//	uow := factory.Create()
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
//	return uow.Commit(ctx)
//
// Either both writes become visible or neither does.
type UnitOfWork interface {
	// Begin starts a new transaction. Calling it while one is open is a no-op.
	Begin(ctx context.Context) error

	// Commit makes every write since Begin durable.
	// Returns an error if no transaction is open or the commit fails.
	Commit(ctx context.Context) error

	// Rollback discards every write since Begin. Deferring it after Commit is safe;
	// the result is then ignored by callers.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	// Repository will use the transaction started by Begin().
	OrderRepository() OrderRepository

	// ActorRepository returns an ActorRepository bound to the current transaction.
	// Repository will use the transaction started by Begin().
	ActorRepository() ActorRepository
}
