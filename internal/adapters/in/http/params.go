package http

import (
	"strings"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/services"
	"laundry/internal/generated/servers"
	"laundry/internal/notifier"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// optionalID converts a bound uuid. Absent yields the zero UUID.
func optionalID(id *openapi_types.UUID) (kernel.UUID, error) {
	if id == nil {
		return kernel.UUID{}, nil
	}
	return kernel.UUIDFromBytes(id[:])
}

func toStage(stage servers.Stage) services.Stage {
	return services.Stage(strings.ToLower(string(stage)))
}

// toKey addresses the stage view of one viewer.
func toKey(role servers.RolePath, stage servers.StagePath, actorID *servers.ActorIDQuery) (notifier.Key, error) {
	r, err := actor.ParseRole(string(role))
	if err != nil {
		return notifier.Key{}, err
	}
	id, err := optionalID(actorID)
	if err != nil {
		return notifier.Key{}, err
	}
	return notifier.Key{Role: r, ActorID: id, Stage: toStage(stage)}, nil
}

func toPerformer(role servers.Role, actorID *openapi_types.UUID, actorName *string) (commands.Performer, error) {
	r, err := actor.ParseRole(string(role))
	if err != nil {
		return commands.Performer{}, err
	}
	id, err := optionalID(actorID)
	if err != nil {
		return commands.Performer{}, err
	}
	return commands.Performer{Role: r, ActorID: id, ActorName: deref(actorName)}, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func ptr[T any](v T) *T {
	return &v
}

// optional leaves empty strings out of responses.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
