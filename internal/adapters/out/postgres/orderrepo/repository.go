package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM. Orders live in the
// orders table with items and audit stamps in jsonb columns; the history lives in
// order_transitions.
//
// Errors follow the port contract: connectivity failures are errs.TransportError, a
// missing row is errs.ObjectNotFoundError and a lost status race is errs.StaleStateError.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository. db is either the pool or
// an open transaction; tracker receives every written aggregate.
//
// Example:
//
//	repo := NewGormOrderRepository(tx, uow)
//	if err := repo.UpdateStatus(ctx, o, order.Received); err != nil {
//	    return err
//	}
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsInvalidErrorWithCause("order", err)
		}
		return errs.NewTransportError("add order", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, errs.NewTransportError("get order", err)
	}

	return toDomain(dto)
}

// List translates filter into SQL predicates. It must select exactly the orders for which
// filter.Matches reports true.
func (r *GormOrderRepository) List(ctx context.Context, filter order.Filter) ([]*order.Order, error) {
	query := r.db.WithContext(ctx).Model(&OrderDTO{})

	if len(filter.Statuses) > 0 {
		codes := make([]int64, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			codes = append(codes, int64(s))
		}
		query = query.Where("status = ANY(?)", pq.Array(codes))
	}

	switch filter.Assignment {
	case order.Unassigned:
		query = query.Where("assignee_id IS NULL")
	case order.Assigned:
		query = query.Where("assignee_id IS NOT NULL")
	case order.AssignedToActor:
		if err := filter.AssignedTo.Validate(); err != nil {
			return nil, errs.NewValueIsRequiredErrorWithCause("assignedTo", err)
		}
		query = query.Where("assignee_id = ?", filter.AssignedTo.Bytes())
	case order.AnyAssignment:
	}

	switch filter.Rack {
	case order.WithoutRack:
		query = query.Where("rack_number = ''")
	case order.WithRack:
		query = query.Where("rack_number <> ''")
	case order.AnyRack:
	}

	if filter.TicketNumber != "" {
		query = query.Where("ticket_number = ?", filter.TicketNumber)
	}
	if filter.TagNumber != "" {
		query = query.Where("tag_number = ?", filter.TagNumber)
	}

	var dtos []OrderDTO
	if err := query.Order("seq").Find(&dtos).Error; err != nil {
		return nil, errs.NewTransportError("list orders", err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// UpdateStatus writes the workflow columns with a single conditional UPDATE keyed on the
// expected status. Notes and the customer snapshot are left untouched.
//
// When no row matches, a follow-up read tells the two causes apart:
//   - the order does not exist: errs.ObjectNotFoundError
//   - another writer moved it first: errs.StaleStateError naming the stored status
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expected)).
		Updates(map[string]any{
			"status":         dto.Status,
			"tag_number":     dto.TagNumber,
			"assignee_id":    dto.AssigneeID,
			"assignee_name":  dto.AssigneeName,
			"assigned_at":    dto.AssignedAt,
			"rack_number":    dto.RackNumber,
			"payment_status": dto.PaymentStatus,
			"audit":          dto.Audit,
			"rework_reason":  dto.ReworkReason,
			"rework_count":   dto.ReworkCount,
			"updated_at":     dto.UpdatedAt,
		})
	if result.Error != nil {
		return errs.NewTransportError("update order status", result.Error)
	}

	if result.RowsAffected == 0 {
		return r.explainMissedUpdate(ctx, aggregate.ID(), expected)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateFields writes notes and the customer snapshot.
func (r *GormOrderRepository) UpdateFields(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"notes":            dto.Notes,
			"customer_name":    dto.Customer.Name,
			"customer_phone":   dto.Customer.Phone,
			"customer_address": dto.Customer.Address,
			"updated_at":       dto.UpdatedAt,
		})
	if result.Error != nil {
		return errs.NewTransportError("update order fields", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// AddTransition appends a history row.
func (r *GormOrderRepository) AddTransition(ctx context.Context, record order.TransitionRecord) error {
	if err := errors.Join(record.ID.Validate(), record.OrderID.Validate()); err != nil {
		return err
	}

	dto := transitionFromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewTransportError("add transition", err)
	}
	return nil
}

// ListTransitions returns the history of an order, oldest first.
func (r *GormOrderRepository) ListTransitions(ctx context.Context, orderID kernel.UUID) ([]order.TransitionRecord, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TransitionDTO
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID.Bytes()).Order("seq").Find(&dtos).Error; err != nil {
		return nil, errs.NewTransportError("list transitions", err)
	}

	out := make([]order.TransitionRecord, 0, len(dtos))
	for _, dto := range dtos {
		rec, err := transitionToDomain(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *GormOrderRepository) explainMissedUpdate(ctx context.Context, id kernel.UUID, expected order.Status) error {
	var current OrderDTO
	err := r.db.WithContext(ctx).Select("status").First(&current, "id = ?", id.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	if err != nil {
		return errs.NewTransportError("update order status", fmt.Errorf("re-read after missed update: %w", err))
	}
	return errs.NewStaleStateError(id.String(), expected.String(), order.Status(current.Status).String())
}
