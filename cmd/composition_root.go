package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"

	laundryhttp "laundry/internal/adapters/in/http"
	"laundry/internal/adapters/out/memory"
	"laundry/internal/adapters/out/postgres"
	"laundry/internal/adapters/out/push"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
	"laundry/internal/notifier"
	"laundry/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg           Config
	logger        *slog.Logger
	clock         kernel.Clock
	uowFactory    ports.UnitOfWorkFactory
	reader        ports.UnitOfWork
	router        services.StageRouter
	registry      *prometheus.Registry
	metrics       *metrics.Metrics
	notifications *notifier.Manager
	observer      ports.TransitionObserver
	closers       []io.Closer
}

// NewCompositionRoot wires the application. A nil gormDB selects the in-memory store.
func NewCompositionRoot(cfg Config, logger *slog.Logger, gormDB *gorm.DB) (*CompositionRoot, error) {
	var uowFactory ports.UnitOfWorkFactory = memory.NewStore()
	if gormDB != nil {
		uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	c := &CompositionRoot{
		cfg:        cfg,
		logger:     logger,
		clock:      kernel.SystemClock(),
		uowFactory: uowFactory,
		// Reads run outside any transaction on a unit of work that is never begun.
		reader:   uowFactory.Create(),
		router:   services.NewStageRouter(),
		registry: registry,
		metrics:  metrics.New(registry),
	}

	effects, err := c.pushEffects()
	if err != nil {
		return nil, err
	}

	c.notifications = notifier.NewManager(c.CreateListStageOrdersQueryHandler(), c.router, notifier.Options{
		Interval: cfg.NotifierInterval,
		Clock:    c.clock,
		Logger:   logger,
		Metrics:  c.metrics,
		Effects:  effects,
	})
	c.observer = transitionObservers{metrics.NewTransitionObserver(c.metrics), c.notifications}

	return c, nil
}

func (c *CompositionRoot) pushEffects() ([]notifier.Effect, error) {
	effects := []notifier.Effect{
		push.Counted("log", c.metrics, push.NewLogPublisher(c.logger)),
	}

	if c.cfg.AMQPURL != "" {
		p, err := push.DialAMQP(c.cfg.AMQPURL, c.cfg.AMQPExchange)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, p)
		effects = append(effects, push.Counted("amqp", c.metrics, p))
	}

	if len(c.cfg.KafkaBrokers) > 0 {
		p := push.NewKafkaPublisher(push.NewKafkaWriter(c.cfg.KafkaBrokers, c.cfg.KafkaTopic))
		c.closers = append(c.closers, p)
		effects = append(effects, push.Counted("kafka", c.metrics, p))
	}

	return effects, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateUpdateOrderFieldsCommandHandler() commands.UpdateOrderFieldsCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderFieldsCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateAttemptTransitionCommandHandler() commands.AttemptTransitionCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAttemptTransitionCommandHandler(f, c.clock, c.observer)
}

func (c *CompositionRoot) CreateOverrideStatusCommandHandler() commands.OverrideStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewOverrideStatusCommandHandler(f, c.clock, c.observer)
}

func (c *CompositionRoot) CreateCreateActorCommandHandler() commands.CreateActorCommandHandler {
	var f commands.ActorUoWFactory = FuncActorUoWFactory(func() commands.ActorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateActorCommandHandler(f)
}

func (c *CompositionRoot) CreateListStageOrdersQueryHandler() queries.ListStageOrdersQueryHandler {
	return queries.NewListStageOrdersQueryHandler(c.reader.OrderRepository(), c.router)
}

func (c *CompositionRoot) CreateGetStageCountsQueryHandler() queries.GetStageCountsQueryHandler {
	return queries.NewGetStageCountsQueryHandler(c.reader.OrderRepository(), c.router)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.reader.OrderRepository())
}

func (c *CompositionRoot) CreateListDeliveryActorsQueryHandler() queries.ListDeliveryActorsQueryHandler {
	return queries.NewListDeliveryActorsQueryHandler(c.reader.ActorRepository())
}

func (c *CompositionRoot) CreateResolveScanQueryHandler() queries.ResolveScanQueryHandler {
	return queries.NewResolveScanQueryHandler(c.reader.OrderRepository())
}

// NewHTTPServer builds the HTTP adapter over every use case.
func (c *CompositionRoot) NewHTTPServer(ctx context.Context) (*laundryhttp.Server, error) {
	handlers := laundryhttp.Handlers{
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		UpdateOrderFields:  c.CreateUpdateOrderFieldsCommandHandler(),
		AttemptTransition:  c.CreateAttemptTransitionCommandHandler(),
		OverrideStatus:     c.CreateOverrideStatusCommandHandler(),
		CreateActor:        c.CreateCreateActorCommandHandler(),
		ListStageOrders:    c.CreateListStageOrdersQueryHandler(),
		GetStageCounts:     c.CreateGetStageCountsQueryHandler(),
		GetOrder:           c.CreateGetOrderQueryHandler(),
		ListDeliveryActors: c.CreateListDeliveryActorsQueryHandler(),
		ResolveScan:        c.CreateResolveScanQueryHandler(),
	}
	return laundryhttp.NewServer(ctx, handlers, c.router, c.notifications, laundryhttp.Options{
		Logger:   c.logger,
		Metrics:  c.metrics,
		Gatherer: c.registry,
	})
}

// SeedActors creates the configured actors that do not exist yet.
func (c *CompositionRoot) SeedActors(ctx context.Context) error {
	create := c.CreateCreateActorCommandHandler()
	actors := c.reader.ActorRepository()

	for _, seed := range c.cfg.Actors {
		role, err := actor.ParseRole(seed.Role)
		if err != nil {
			return err
		}
		existing, err := actors.ListByRole(ctx, role, false)
		if err != nil {
			return err
		}
		if containsActor(existing, seed.Name) {
			continue
		}

		cmd, err := commands.NewCreateActorCommand(kernel.NewUUID(), seed.Name, role)
		if err != nil {
			return err
		}
		if _, err = create.Handle(ctx, cmd); err != nil {
			return err
		}
		c.logger.InfoContext(ctx, "Actor seeded", "name", seed.Name, "role", role.String())
	}
	return nil
}

// Close stops the notifiers and the push publishers.
func (c *CompositionRoot) Close() error {
	c.notifications.StopAll()

	var errList []error
	for _, closer := range c.closers {
		errList = append(errList, closer.Close())
	}
	return errors.Join(errList...)
}

func containsActor(actors []*actor.Actor, name string) bool {
	for _, a := range actors {
		if a.Name() == name {
			return true
		}
	}
	return false
}

// transitionObservers fans every outcome out to each observer in order.
type transitionObservers []ports.TransitionObserver

func (o transitionObservers) TransitionApplied(rec order.TransitionRecord) {
	for _, observer := range o {
		observer.TransitionApplied(rec)
	}
}

func (o transitionObservers) TransitionRejected(from, to order.Status, reason string) {
	for _, observer := range o {
		observer.TransitionRejected(from, to, reason)
	}
}

type FuncActorUoWFactory func() commands.ActorUoW

func (f FuncActorUoWFactory) Create() commands.ActorUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
