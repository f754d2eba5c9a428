package http

import (
	"net/http"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/generated/servers"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders - takes in a new order at the front desk.
func (s *Server) CreateOrder(c echo.Context) error {
	var req servers.CreateOrderJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return s.respondError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	items := make([]commands.ItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, commands.ItemInput{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			ProductRef:  deref(it.ProductRef),
			Options:     deref(it.Options),
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		req.TicketNumber,
		fromCustomer(req.Customer),
		items,
		deref(req.Notes),
	)
	if err != nil {
		return s.respondError(c, err)
	}

	created, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusCreated, toDomainOrder(created))
}

// GetOrder handles GET /api/v1/orders/{id} - an order with its history.
func (s *Server) GetOrder(c echo.Context, id servers.OrderID, params servers.GetOrderParams) error {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return s.respondError(c, err)
	}
	role, err := actor.ParseRole(string(params.Role))
	if err != nil {
		return s.respondError(c, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, role)
	if err != nil {
		return s.respondError(c, err)
	}
	details, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusOK, toDetails(details))
}

// UpdateOrder handles PATCH /api/v1/orders/{id} - edits notes and the customer snapshot.
func (s *Server) UpdateOrder(c echo.Context, id servers.OrderID) error {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return s.respondError(c, err)
	}
	var req servers.UpdateOrderJSONRequestBody
	if err = c.Bind(&req); err != nil {
		return s.respondError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	patch := order.FieldsPatch{Notes: req.Notes}
	if req.Customer != nil {
		patch.Customer = ptr(fromCustomer(*req.Customer))
	}

	cmd, err := commands.NewUpdateOrderFieldsCommand(orderID, patch)
	if err != nil {
		return s.respondError(c, err)
	}
	updated, err := s.handlers.UpdateOrderFields.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusOK, toDomainOrder(updated))
}

// AttemptTransition handles POST /api/v1/orders/{id}/transitions - moves an order along
// the workflow graph.
func (s *Server) AttemptTransition(c echo.Context, id servers.OrderID) error {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return s.respondError(c, err)
	}
	var req servers.AttemptTransitionJSONRequestBody
	if err = c.Bind(&req); err != nil {
		return s.respondError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	performer, err := toPerformer(req.Role, req.ActorId, req.ActorName)
	if err != nil {
		return s.respondError(c, err)
	}
	to, err := s.destination(performer.Role, req)
	if err != nil {
		return s.respondError(c, err)
	}
	deliveryActorID, err := optionalID(req.DeliveryActorId)
	if err != nil {
		return s.respondError(c, err)
	}

	qc := order.ParseQCOutcome(string(deref(req.QcOutcome)))
	if qc == order.NoOutcome && req.Stage != nil && toStage(*req.Stage) == services.StageQualityCheck {
		qc = order.ParseQCOutcome(deref(req.Outcome))
	}

	gc := services.GuardContext{
		Verification:     services.NewVerificationSet(deref(req.VerifiedItems)...),
		RackNumber:       deref(req.RackNumber),
		DeliveryActorID:  deliveryActorID,
		QCOutcome:        qc,
		PaymentCollected: deref(req.PaymentCollected),
	}

	cmd, err := commands.NewAttemptTransitionCommand(
		orderID, performer, to, gc, deref(req.AcknowledgeWarnings), deref(req.Note),
	)
	if err != nil {
		return s.respondError(c, err)
	}
	moved, err := s.handlers.AttemptTransition.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusOK, toDomainOrder(moved))
}

// OverrideStatus handles POST /api/v1/orders/{id}/override - admin sets any status.
func (s *Server) OverrideStatus(c echo.Context, id servers.OrderID) error {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return s.respondError(c, err)
	}
	var req servers.OverrideStatusJSONRequestBody
	if err = c.Bind(&req); err != nil {
		return s.respondError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	performer, err := toPerformer(req.Role, req.ActorId, req.ActorName)
	if err != nil {
		return s.respondError(c, err)
	}
	to, err := order.ParseStatus(string(req.To))
	if err != nil {
		return s.respondError(c, err)
	}

	cmd, err := commands.NewOverrideStatusCommand(orderID, performer, to, deref(req.Note))
	if err != nil {
		return s.respondError(c, err)
	}
	moved, err := s.handlers.OverrideStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusOK, toDomainOrder(moved))
}

// ResolveScan handles GET /api/v1/scan?code= - finds the order behind a scanned code.
func (s *Server) ResolveScan(c echo.Context, params servers.ResolveScanParams) error {
	query, err := queries.NewResolveScanQuery(params.Code)
	if err != nil {
		return s.respondError(c, err)
	}
	view, err := s.handlers.ResolveScan.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusOK, toOrder(view))
}

// destination resolves the requested status. An explicit "to" wins; otherwise the
// performer's stage and outcome select it through the router.
func (s *Server) destination(role actor.Role, req servers.TransitionRequest) (order.Status, error) {
	if req.To != nil && *req.To != "" {
		return order.ParseStatus(string(*req.To))
	}
	if req.Stage == nil || *req.Stage == "" {
		return order.Unknown, errs.NewValueIsRequiredError("to or stage")
	}
	return s.router.NextStatus(role, toStage(*req.Stage), deref(req.Outcome))
}
