// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Items and audit stamps are stored as JSONB; the assignment is flattened into
// nullable columns so stage filters can use plain predicates.
type OrderDTO struct {
	ID            uuid.UUID                    `gorm:"type:uuid;primaryKey"`
	Seq           int64                        `gorm:"autoIncrement;uniqueIndex"`
	TicketNumber  string                       `gorm:"uniqueIndex;not null"`
	TagNumber     string                       `gorm:"index"`
	Status        int                          `gorm:"index;not null"`
	Items         datatypes.JSONSlice[ItemDTO] `gorm:"type:jsonb;not null"`
	Customer      CustomerDTO                  `gorm:"embedded;embeddedPrefix:customer_"`
	AssigneeID    *uuid.UUID                   `gorm:"type:uuid;index"`
	AssigneeName  string
	AssignedAt    *time.Time
	RackNumber    string                                       `gorm:"not null;default:''"`
	PaymentStatus int                                          `gorm:"not null"`
	Audit         datatypes.JSONType[map[string]AuditStampDTO] `gorm:"type:jsonb"`
	ReworkReason  string
	ReworkCount   int
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

type CustomerDTO struct {
	Name    string
	Phone   string
	Address string
}

type ItemDTO struct {
	Description string            `json:"description"`
	Quantity    int               `json:"quantity"`
	UnitPrice   int64             `json:"unitPrice"`
	ProductRef  string            `json:"productRef,omitempty"`
	Options     map[string]string `json:"options,omitempty"`
}

type AuditStampDTO struct {
	At     time.Time `json:"at"`
	ByID   string    `json:"byId,omitempty"`
	ByName string    `json:"byName"`
	Role   string    `json:"role"`
}

// TransitionDTO is one row of the append-only transition history.
type TransitionDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Seq       int64      `gorm:"autoIncrement;uniqueIndex"`
	OrderID   uuid.UUID  `gorm:"type:uuid;index;not null"`
	FromState int        `gorm:"not null"`
	ToState   int        `gorm:"not null"`
	Kind      string     `gorm:"not null"`
	ActorID   *uuid.UUID `gorm:"type:uuid"`
	ActorName string
	Role      string
	At        time.Time `gorm:"not null"`
	Note      string
}

func (TransitionDTO) TableName() string {
	return "order_transitions"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	snap := aggregate.Snapshot()

	items := make([]ItemDTO, 0, len(snap.Items))
	for _, it := range snap.Items {
		items = append(items, ItemDTO{
			Description: it.Description(),
			Quantity:    it.Quantity(),
			UnitPrice:   it.UnitPrice(),
			ProductRef:  it.ProductRef(),
			Options:     it.Options(),
		})
	}

	audit := make(map[string]AuditStampDTO, len(snap.Audit))
	for key, stamp := range snap.Audit {
		dto := AuditStampDTO{At: stamp.At, ByName: stamp.ByName, Role: stamp.Role.String()}
		if !stamp.ByID.IsZero() {
			dto.ByID = stamp.ByID.String()
		}
		audit[key] = dto
	}

	dto := OrderDTO{
		ID:            snap.ID.Bytes(),
		TicketNumber:  snap.TicketNumber,
		TagNumber:     snap.TagNumber,
		Status:        int(snap.Status),
		Items:         datatypes.NewJSONSlice(items),
		Customer:      CustomerDTO(snap.Customer),
		RackNumber:    snap.RackNumber,
		PaymentStatus: int(snap.PaymentStatus),
		Audit:         datatypes.NewJSONType(audit),
		ReworkReason:  snap.ReworkReason,
		ReworkCount:   snap.ReworkCount,
		Notes:         snap.Notes,
		CreatedAt:     snap.CreatedAt,
		UpdatedAt:     snap.UpdatedAt,
	}
	if a := snap.Assignment; a != nil {
		id := a.ActorID.Bytes()
		at := a.At
		dto.AssigneeID = &id
		dto.AssigneeName = a.ActorName
		dto.AssignedAt = &at
	}
	return dto
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, it := range dto.Items {
		item, itemErr := order.NewItem(it.Description, it.Quantity, it.UnitPrice, it.ProductRef, it.Options)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	stored := dto.Audit.Data()
	audit := make(map[string]order.AuditStamp, len(stored))
	for key, s := range stored {
		stamp, stampErr := stampToDomain(s)
		if stampErr != nil {
			return nil, stampErr
		}
		audit[key] = stamp
	}

	var assignment *order.Assignment
	if dto.AssigneeID != nil {
		actorID, idErr := kernel.UUIDFromBytes(dto.AssigneeID[:])
		if idErr != nil {
			return nil, idErr
		}
		var at time.Time
		if dto.AssignedAt != nil {
			at = dto.AssignedAt.UTC()
		}
		a, assignErr := order.NewAssignment(actorID, dto.AssigneeName, at)
		if assignErr != nil {
			return nil, assignErr
		}
		assignment = &a
	}

	return order.RestoreOrder(order.Snapshot{
		ID:            id,
		TicketNumber:  dto.TicketNumber,
		TagNumber:     dto.TagNumber,
		Status:        order.Status(dto.Status),
		Items:         items,
		Customer:      order.Customer(dto.Customer),
		Assignment:    assignment,
		RackNumber:    dto.RackNumber,
		PaymentStatus: order.PaymentStatus(dto.PaymentStatus),
		Audit:         audit,
		ReworkReason:  dto.ReworkReason,
		ReworkCount:   dto.ReworkCount,
		Notes:         dto.Notes,
		CreatedAt:     dto.CreatedAt.UTC(),
		UpdatedAt:     dto.UpdatedAt.UTC(),
	})
}

func stampToDomain(s AuditStampDTO) (order.AuditStamp, error) {
	stamp := order.AuditStamp{At: s.At.UTC(), ByName: s.ByName}
	if s.ByID != "" {
		id, err := kernel.UUIDFromString(s.ByID)
		if err != nil {
			return order.AuditStamp{}, err
		}
		stamp.ByID = id
	}
	role, err := actor.ParseRole(s.Role)
	if err != nil {
		return order.AuditStamp{}, err
	}
	stamp.Role = role
	return stamp, nil
}

func transitionFromDomain(rec order.TransitionRecord) TransitionDTO {
	dto := TransitionDTO{
		ID:        rec.ID.Bytes(),
		OrderID:   rec.OrderID.Bytes(),
		FromState: int(rec.From),
		ToState:   int(rec.To),
		Kind:      rec.Kind.String(),
		ActorName: rec.ActorName,
		Role:      rec.Role.String(),
		At:        rec.At,
		Note:      rec.Note,
	}
	if !rec.ActorID.IsZero() {
		id := rec.ActorID.Bytes()
		dto.ActorID = &id
	}
	return dto
}

func transitionToDomain(dto TransitionDTO) (order.TransitionRecord, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.TransitionRecord{}, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.TransitionRecord{}, err
	}
	role, err := actor.ParseRole(dto.Role)
	if err != nil {
		return order.TransitionRecord{}, err
	}

	rec := order.TransitionRecord{
		ID:        id,
		OrderID:   orderID,
		From:      order.Status(dto.FromState),
		To:        order.Status(dto.ToState),
		Kind:      order.ParseTransitionKind(dto.Kind),
		ActorName: dto.ActorName,
		Role:      role,
		At:        dto.At.UTC(),
		Note:      dto.Note,
	}
	if dto.ActorID != nil {
		actorID, idErr := kernel.UUIDFromBytes(dto.ActorID[:])
		if idErr != nil {
			return order.TransitionRecord{}, idErr
		}
		rec.ActorID = actorID
	}
	return rec, nil
}
