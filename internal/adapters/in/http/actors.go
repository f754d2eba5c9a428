package http

import (
	"net/http"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/generated/servers"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateActor handles POST /api/v1/actors - registers an operator.
func (s *Server) CreateActor(c echo.Context) error {
	var req servers.CreateActorJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return s.respondError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}
	role, err := actor.ParseRole(string(req.Role))
	if err != nil {
		return s.respondError(c, err)
	}

	cmd, err := commands.NewCreateActorCommand(kernel.NewUUID(), req.Name, role)
	if err != nil {
		return s.respondError(c, err)
	}
	created, err := s.handlers.CreateActor.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, servers.Actor{
		Id:     ptr(created.ID().Bytes()),
		Name:   ptr(created.Name()),
		Role:   ptr(servers.Role(created.Role().String())),
		Active: ptr(created.IsActive()),
	})
}

// ListDeliveryActors handles GET /api/v1/actors/delivery - drivers for dispatch pickers.
func (s *Server) ListDeliveryActors(c echo.Context, params servers.ListDeliveryActorsParams) error {
	views, err := s.handlers.ListDeliveryActors.Handle(
		c.Request().Context(), queries.NewListDeliveryActorsQuery(deref(params.IncludeInactive)),
	)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusOK, toActors(views))
}
