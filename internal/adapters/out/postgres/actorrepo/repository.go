package actorrepo

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormActorRepository implements ports.ActorRepository using GORM. Actors are never
// deleted; deactivation only hides them from dispatch pickers.
type GormActorRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormActorRepository creates a new GORM actor repository bound to db, which is
// either the pool or an open transaction.
//
// Example:
//
//	repo := NewGormActorRepository(db, uow)
//	drivers, err := repo.ListByRole(ctx, actor.Delivery, true)
func NewGormActorRepository(db *gorm.DB, tracker aggregateTracker) *GormActorRepository {
	return &GormActorRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormActorRepository) Add(ctx context.Context, aggregate *actor.Actor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsInvalidErrorWithCause("actor", err)
		}
		return errs.NewTransportError("add actor", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormActorRepository) Get(ctx context.Context, id kernel.UUID) (*actor.Actor, error) {
	if err := id.Validate(); err != nil {
		return nil, errs.NewObjectNotFoundErrorWithCause("actor", id.String(), err)
	}

	var dto ActorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("actor", id.String())
		}
		return nil, errs.NewTransportError("get actor", err)
	}

	return toDomain(dto)
}

// ListByRole returns actors of role ordered by name.
func (r *GormActorRepository) ListByRole(ctx context.Context, role actor.Role, activeOnly bool) ([]*actor.Actor, error) {
	if err := role.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Where("role = ?", int(role))
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var dtos []ActorDTO
	if err := query.Order("name").Find(&dtos).Error; err != nil {
		return nil, errs.NewTransportError("list actors", err)
	}

	actors := make([]*actor.Actor, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		actors = append(actors, a)
	}
	return actors, nil
}
