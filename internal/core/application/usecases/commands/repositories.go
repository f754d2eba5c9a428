package commands

import (
	"context"

	"laundry/internal/core/ports"
)

type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	ActorRepoFactory interface {
		ActorRepository() ports.ActorRepository
	}

	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	ActorUoW interface {
		TxManager
		ActorRepoFactory
	}

	ActorUoWFactory interface {
		Create() ActorUoW
	}

	UoW interface {
		TxManager
		OrderRepoFactory
		ActorRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
