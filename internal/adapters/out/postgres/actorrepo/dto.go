// Package actorrepo persists the operators that orders can be assigned to.
package actorrepo

import (
	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ActorDTO represents the database structure for persisting actors.
type ActorDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"not null"`
	Role   int       `gorm:"index;not null"`
	Active bool      `gorm:"not null"`
}

// TableName specifies the database table name for actor entities.
func (ActorDTO) TableName() string {
	return "actors"
}

func fromDomain(aggregate *actor.Actor) ActorDTO {
	return ActorDTO{
		ID:     aggregate.ID().Bytes(),
		Name:   aggregate.Name(),
		Role:   int(aggregate.Role()),
		Active: aggregate.IsActive(),
	}
}

func toDomain(dto ActorDTO) (*actor.Actor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return actor.RestoreActor(id, dto.Name, actor.Role(dto.Role), dto.Active)
}
