package http

import (
	"net/http"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/actor"
	"laundry/internal/generated/servers"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ListStageOrders handles GET /api/v1/roles/{role}/stages/{stage}/orders.
func (s *Server) ListStageOrders(
	c echo.Context, role servers.RolePath, stage servers.StagePath, params servers.ListStageOrdersParams,
) error {
	key, err := toKey(role, stage, params.ActorId)
	if err != nil {
		return s.respondError(c, err)
	}

	query, err := queries.NewListStageOrdersQuery(key.Role, key.ActorID, key.Stage)
	if err != nil {
		return s.respondError(c, err)
	}
	views, err := s.handlers.ListStageOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusOK, toOrders(views))
}

// GetStageCounts handles GET /api/v1/roles/{role}/stats.
func (s *Server) GetStageCounts(c echo.Context, role servers.RolePath, params servers.GetStageCountsParams) error {
	r, err := actor.ParseRole(string(role))
	if err != nil {
		return s.respondError(c, err)
	}
	actorID, err := optionalID(params.ActorId)
	if err != nil {
		return s.respondError(c, err)
	}

	query, err := queries.NewGetStageCountsQuery(r, actorID)
	if err != nil {
		return s.respondError(c, err)
	}
	counts, err := s.handlers.GetStageCounts.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	resp := make([]servers.StageCount, 0, len(counts))
	for _, sc := range counts {
		resp = append(resp, servers.StageCount{
			Stage: ptr(servers.Stage(sc.Stage)),
			Count: ptr(sc.Count),
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// GetInbox handles GET /api/v1/roles/{role}/stages/{stage}/inbox.
func (s *Server) GetInbox(
	c echo.Context, role servers.RolePath, stage servers.StagePath, params servers.GetInboxParams,
) error {
	key, err := toKey(role, stage, params.ActorId)
	if err != nil {
		return s.respondError(c, err)
	}
	inbox, err := s.notifications.Inbox(key)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusOK, toInbox(inbox))
}

// MarkInboxRead handles POST /api/v1/roles/{role}/stages/{stage}/inbox/read. Without an
// id every entry is marked.
func (s *Server) MarkInboxRead(
	c echo.Context, role servers.RolePath, stage servers.StagePath, params servers.MarkInboxReadParams,
) error {
	key, err := toKey(role, stage, params.ActorId)
	if err != nil {
		return s.respondError(c, err)
	}
	var req servers.MarkInboxReadJSONRequestBody
	if err = c.Bind(&req); err != nil {
		return s.respondError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}
	entryID, err := optionalID(req.Id)
	if err != nil {
		return s.respondError(c, err)
	}

	inbox, err := s.notifications.Inbox(key)
	if err != nil {
		return s.respondError(c, err)
	}
	if entryID.IsZero() {
		inbox.MarkAllRead()
	} else if err = inbox.MarkRead(entryID); err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusOK, toInbox(inbox))
}

// ClearInbox handles DELETE /api/v1/roles/{role}/stages/{stage}/inbox.
func (s *Server) ClearInbox(
	c echo.Context, role servers.RolePath, stage servers.StagePath, params servers.ClearInboxParams,
) error {
	key, err := toKey(role, stage, params.ActorId)
	if err != nil {
		return s.respondError(c, err)
	}
	inbox, err := s.notifications.Inbox(key)
	if err != nil {
		return s.respondError(c, err)
	}
	inbox.Clear()
	return c.NoContent(http.StatusNoContent)
}
