// Package http exposes the order API over echo. Handlers translate requests
// into commands and queries; every business rule stays behind them.
package http

import (
	"net/http"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles the use case handlers the server dispatches to.
type Handlers struct {
	CreateOrder            commands.CreateOrderCommandHandler
	AdvanceStatus          commands.AdvanceStatusCommandHandler
	UpdateConsultation     commands.UpdateConsultationCommandHandler
	UpdateDelivery         commands.UpdateDeliveryCommandHandler
	UpdateEmergencyContact commands.UpdateEmergencyContactCommandHandler
	OpenRevision           commands.OpenRevisionCommandHandler
	ReviewRevision         commands.ReviewRevisionCommandHandler
	AddMilestone           commands.AddMilestoneCommandHandler
	MarkMilestonePaid      commands.MarkMilestonePaidCommandHandler
	OpenDispute            commands.OpenDisputeCommandHandler
	ResolveDispute         commands.ResolveDisputeCommandHandler
	RequestAlteration      commands.RequestAlterationCommandHandler
	ReviewAlteration       commands.ReviewAlterationCommandHandler
	RequestRefund          commands.RequestRefundCommandHandler
	ProcessRefund          commands.ProcessRefundCommandHandler

	GetOrder queries.GetOrderQueryHandler
}

// Server handles HTTP requests for the order API.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server over the given use case handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes wires the API onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1", ActorMiddleware)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/status", s.AdvanceStatus)
	api.PUT("/orders/:id/consultation", s.UpdateConsultation)
	api.PUT("/orders/:id/delivery", s.UpdateDelivery)
	api.PUT("/orders/:id/emergency-contact", s.UpdateEmergencyContact)
	api.POST("/orders/:id/revisions", s.OpenRevision)
	api.POST("/orders/:id/revisions/:revisionId/review", s.ReviewRevision)
	api.POST("/orders/:id/milestones", s.AddMilestone)
	api.POST("/orders/:id/milestones/:milestoneId/pay", s.PayMilestone)
	api.POST("/orders/:id/disputes", s.OpenDispute)
	api.POST("/orders/:id/disputes/:disputeId/resolve", s.ResolveDispute)
	api.POST("/orders/:id/alterations", s.RequestAlteration)
	api.POST("/orders/:id/alterations/:alterationId/review", s.ReviewAlteration)
	api.POST("/orders/:id/refunds", s.RequestRefund)
	api.POST("/orders/:id/refunds/:refundId/process", s.ProcessRefund)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) actor(ctx echo.Context) (kernel.Actor, error) {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return kernel.Actor{}, echo.NewHTTPError(http.StatusUnauthorized)
	}
	return actor, nil
}

func parseUUIDParam(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusNotFound)
	}
	return id, nil
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	const operation = "create_order"

	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, operation, echo.NewHTTPError(http.StatusBadRequest))
	}
	if err := ctx.Validate(&req); err != nil {
		return respondError(ctx, operation, err)
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return respondError(ctx, operation, err)
	}
	fulfillerID, err := kernel.UUIDFromString(req.FulfillerID)
	if err != nil {
		return respondError(ctx, operation, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, req.OrderNumber,
		customerID, fulfillerID,
		req.Garment, req.ServiceType, req.Quantity,
		kernel.NewMoney(req.BasePriceCents),
		kernel.NewMoney(req.FabricCostCents),
		kernel.NewMoney(req.AdditionalChargesCents),
		kernel.NewMoney(req.DiscountCents),
	)
	if err != nil {
		return respondError(ctx, operation, err)
	}

	if err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, operation, err)
	}

	metrics.OperationsAcceptedTotal.WithLabelValues(operation).Inc()
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	const operation = "get_order"

	actor, err := s.actor(ctx)
	if err != nil {
		return respondError(ctx, operation, err)
	}
	orderID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return respondError(ctx, operation, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, actor)
	if err != nil {
		return respondError(ctx, operation, err)
	}

	resp, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, operation, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// AdvanceStatus handles POST /api/v1/orders/:id/status.
func (s *Server) AdvanceStatus(ctx echo.Context) error {
	const operation = "advance_status"

	actor, err := s.actor(ctx)
	if err != nil {
		return respondError(ctx, operation, err)
	}
	orderID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return respondError(ctx, operation, err)
	}

	var req AdvanceStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, operation, echo.NewHTTPError(http.StatusBadRequest))
	}
	if err := ctx.Validate(&req); err != nil {
		return respondError(ctx, operation, err)
	}

	target, err := order.StatusFromString(req.Target)
	if err != nil {
		return respondError(ctx, operation, err)
	}

	cmd, err := commands.NewAdvanceStatusCommand(orderID, actor, target, req.Reason)
	if err != nil {
		return respondError(ctx, operation, err)
	}

	if err := s.handlers.AdvanceStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, operation, err)
	}

	metrics.OperationsAcceptedTotal.WithLabelValues(operation).Inc()
	return ctx.NoContent(http.StatusNoContent)
}

// UpdateConsultation handles PUT /api/v1/orders/:id/consultation.
func (s *Server) UpdateConsultation(ctx echo.Context) error {
	const operation = "update_consultation"

	actor, err := s.actor(ctx)
	if err != nil {
		return respondError(ctx, operation, err)
	}
	orderID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return respondError(ctx, operation, err)
	}

	var req UpdateConsultationRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, operation, echo.NewHTTPError(http.StatusBadRequest))
	}

	cmd, err := commands.NewUpdateConsultationCommand(orderID, actor, order.Consultation{
		ScheduledAt: req.ScheduledAt,
		Location:    req.Location,
		Notes:       req.Notes,
	})
	if err != nil {
		return respondError(ctx, operation, err)
	}

	if err := s.handlers.UpdateConsultation.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, operation, err)
	}

	metrics.OperationsAcceptedTotal.WithLabelValues(operation).Inc()
	return ctx.NoContent(http.StatusNoContent)
}

// UpdateDelivery handles PUT /api/v1/orders/:id/delivery.
func (s *Server) UpdateDelivery(ctx echo.Context) error {
	const operation = "update_delivery"

	actor, err := s.actor(ctx)
	if err != nil {
		return respondError(ctx, operation, err)
	}
	orderID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return respondError(ctx, operation, err)
	}

	var req UpdateDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, operation, echo.NewHTTPError(http.StatusBadRequest))
	}

	cmd, err := commands.NewUpdateDeliveryCommand(orderID, actor, order.DeliveryDetails{
		Address:      req.Address,
		City:         req.City,
		PostalCode:   req.PostalCode,
		Phone:        req.Phone,
		Instructions: req.Instructions,
	})
	if err != nil {
		return respondError(ctx, operation, err)
	}

	if err := s.handlers.UpdateDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, operation, err)
	}

	metrics.OperationsAcceptedTotal.WithLabelValues(operation).Inc()
	return ctx.NoContent(http.StatusNoContent)
}

// UpdateEmergencyContact handles PUT /api/v1/orders/:id/emergency-contact.
func (s *Server) UpdateEmergencyContact(ctx echo.Context) error {
	const operation = "update_emergency_contact"

	actor, err := s.actor(ctx)
	if err != nil {
		return respondError(ctx, operation, err)
	}
	orderID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return respondError(ctx, operation, err)
	}

	var req UpdateEmergencyContactRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, operation, echo.NewHTTPError(http.StatusBadRequest))
	}

	cmd, err := commands.NewUpdateEmergencyContactCommand(orderID, actor, order.EmergencyContact{
		Name:     req.Name,
		Phone:    req.Phone,
		Relation: req.Relation,
	})
	if err != nil {
		return respondError(ctx, operation, err)
	}

	if err := s.handlers.UpdateEmergencyContact.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, operation, err)
	}

	metrics.OperationsAcceptedTotal.WithLabelValues(operation).Inc()
	return ctx.NoContent(http.StatusNoContent)
}

// OpenRevision handles POST /api/v1/orders/:id/revisions.
func (s *Server) OpenRevision(ctx echo.Context) error {
	const operation = "open_revision"

	actor, err := s.actor(ctx)
	if err != nil {
		return respondError(ctx, operation, err)
	}
	orderID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return respondError(ctx, operation, err)
	}

	var req OpenRevisionRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, operation, echo.NewHTTPError(http.StatusBadRequest))
	}
	if err := ctx.Validate(&req); err != nil {
		return respondError(ctx, operation, err)
	}

	revisionID := kernel.NewUUID()
	cmd, err := commands.NewOpenRevisionCommand(orderID, actor, revisionID, req.Description, req.Images)
	if err != nil {
		return respondError(ctx, operation, err)
	}

	if err := s.handlers.OpenRevision.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, operation, err)
	}

	metrics.OperationsAcceptedTotal.WithLabelValues(operation).Inc()
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: revisionID.String()})
}

// ReviewRevision handles POST /api/v1/orders/:id/revisions/:revisionId/review.
func (s *Server) ReviewRevision(ctx echo.Context) error {
	const operation = "review_revision"

	actor, err := s.actor(ctx)
	if err != nil {
		return respondError(ctx, operation, err)
	}
	orderID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return respondError(ctx, operation, err)
	}
	revisionID, err := parseUUIDParam(ctx, "revisionId")
	if err != nil {
		return respondError(ctx, operation, err)
	}

	var req ReviewRevisionRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, operation, echo.NewHTTPError(http.StatusBadRequest))
	}
	if err := ctx.Validate(&req); err != nil {
		return respondError(ctx, operation, err)
	}

	action, err := commands.RevisionActionFromString(req.Action)
	if err != nil {
		return respondError(ctx, operation, err)
	}

	cmd, err := commands.NewReviewRevisionCommand(orderID, actor, revisionID, action, req.Note)
	if err != nil {
		return respondError(ctx, operation, err)
	}

	if err := s.handlers.ReviewRevision.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, operation, err)
	}

	metrics.OperationsAcceptedTotal.WithLabelValues(operation).Inc()
	return ctx.NoContent(http.StatusNoContent)
}

// AddMilestone handles POST /api/v1/orders/:id/milestones.
func (s *Server) AddMilestone(ctx echo.Context) error {
	const operation = "add_milestone"

	actor, err := s.actor(ctx)
	if err != nil {
		return respondError(ctx, operation, err)
	}
	orderID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return respondError(ctx, operation, err)
	}

	var req AddMilestoneRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, operation, echo.NewHTTPError(http.StatusBadRequest))
	}
	if err := ctx.Validate(&req); err != nil {
		return respondError(ctx, operation, err)
	}

	kind, err := order.MilestoneKindFromString(req.Kind)
	if err != nil {
		return respondError(ctx, operation, err)
	}

	milestoneID := kernel.NewUUID()
	cmd, err := commands.NewAddMilestoneCommand(
		orderID, actor, milestoneID, kind,
		kernel.NewMoney(req.AmountCents), req.DueDate, req.PaymentMethod,
	)
	if err != nil {
		return respondError(ctx, operation, err)
	}

	if err := s.handlers.AddMilestone.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, operation, err)
	}

	metrics.OperationsAcceptedTotal.WithLabelValues(operation).Inc()
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: milestoneID.String()})
}

// PayMilestone handles POST /api/v1/orders/:id/milestones/:milestoneId/pay.
func (s *Server) PayMilestone(ctx echo.Context) error {
	const operation = "pay_milestone"

	actor, err := s.actor(ctx)
	if err != nil {
		return respondError(ctx, operation, err)
	}
	orderID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return respondError(ctx, operation, err)
	}
	milestoneID, err := parseUUIDParam(ctx, "milestoneId")
	if err != nil {
		return respondError(ctx, operation, err)
	}

	var req PayMilestoneRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, operation, echo.NewHTTPError(http.StatusBadRequest))
	}
	if err := ctx.Validate(&req); err != nil {
		return respondError(ctx, operation, err)
	}

	cmd, err := commands.NewMarkMilestonePaidCommand(orderID, actor, milestoneID, req.TransactionID)
	if err != nil {
		return respondError(ctx, operation, err)
	}

	if err := s.handlers.MarkMilestonePaid.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, operation, err)
	}

	metrics.OperationsAcceptedTotal.WithLabelValues(operation).Inc()
	return ctx.NoContent(http.StatusNoContent)
}

// OpenDispute handles POST /api/v1/orders/:id/disputes.
func (s *Server) OpenDispute(ctx echo.Context) error {
	const operation = "open_dispute"

	actor, err := s.actor(ctx)
	if err != nil {
		return respondError(ctx, operation, err)
	}
	orderID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return respondError(ctx, operation, err)
	}

	var req OpenDisputeRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, operation, echo.NewHTTPError(http.StatusBadRequest))
	}
	if err := ctx.Validate(&req); err != nil {
		return respondError(ctx, operation, err)
	}

	disputeID := kernel.NewUUID()
	cmd, err := commands.NewOpenDisputeCommand(orderID, actor, disputeID, req.Reason, req.Description, req.Attachments)
	if err != nil {
		return respondError(ctx, operation, err)
	}

	if err := s.handlers.OpenDispute.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, operation, err)
	}

	metrics.OperationsAcceptedTotal.WithLabelValues(operation).Inc()
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: disputeID.String()})
}

// ResolveDispute handles POST /api/v1/orders/:id/disputes/:disputeId/resolve.
func (s *Server) ResolveDispute(ctx echo.Context) error {
	const operation = "resolve_dispute"

	actor, err := s.actor(ctx)
	if err != nil {
		return respondError(ctx, operation, err)
	}
	orderID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return respondError(ctx, operation, err)
	}
	disputeID, err := parseUUIDParam(ctx, "disputeId")
	if err != nil {
		return respondError(ctx, operation, err)
	}

	var req ResolveDisputeRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, operation, echo.NewHTTPError(http.StatusBadRequest))
	}
	if err := ctx.Validate(&req); err != nil {
		return respondError(ctx, operation, err)
	}

	target, err := order.DisputeStatusFromString(req.Target)
	if err != nil {
		return respondError(ctx, operation, err)
	}

	cmd, err := commands.NewResolveDisputeCommand(orderID, actor, disputeID, target, req.Resolution)
	if err != nil {
		return respondError(ctx, operation, err)
	}

	if err := s.handlers.ResolveDispute.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, operation, err)
	}

	metrics.OperationsAcceptedTotal.WithLabelValues(operation).Inc()
	return ctx.NoContent(http.StatusNoContent)
}

// RequestAlteration handles POST /api/v1/orders/:id/alterations.
func (s *Server) RequestAlteration(ctx echo.Context) error {
	const operation = "request_alteration"

	actor, err := s.actor(ctx)
	if err != nil {
		return respondError(ctx, operation, err)
	}
	orderID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return respondError(ctx, operation, err)
	}

	var req RequestAlterationRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, operation, echo.NewHTTPError(http.StatusBadRequest))
	}
	if err := ctx.Validate(&req); err != nil {
		return respondError(ctx, operation, err)
	}

	urgency, err := order.UrgencyFromString(req.Urgency)
	if err != nil {
		return respondError(ctx, operation, err)
	}

	alterationID := kernel.NewUUID()
	cmd, err := commands.NewRequestAlterationCommand(orderID, actor, alterationID, req.Description, urgency)
	if err != nil {
		return respondError(ctx, operation, err)
	}

	if err := s.handlers.RequestAlteration.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, operation, err)
	}

	metrics.OperationsAcceptedTotal.WithLabelValues(operation).Inc()
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: alterationID.String()})
}

// ReviewAlteration handles POST /api/v1/orders/:id/alterations/:alterationId/review.
func (s *Server) ReviewAlteration(ctx echo.Context) error {
	const operation = "review_alteration"

	actor, err := s.actor(ctx)
	if err != nil {
		return respondError(ctx, operation, err)
	}
	orderID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return respondError(ctx, operation, err)
	}
	alterationID, err := parseUUIDParam(ctx, "alterationId")
	if err != nil {
		return respondError(ctx, operation, err)
	}

	var req ReviewAlterationRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, operation, echo.NewHTTPError(http.StatusBadRequest))
	}
	if err := ctx.Validate(&req); err != nil {
		return respondError(ctx, operation, err)
	}

	target, err := order.AlterationStatusFromString(req.Target)
	if err != nil {
		return respondError(ctx, operation, err)
	}

	cmd, err := commands.NewReviewAlterationCommand(
		orderID, actor, alterationID, target,
		kernel.NewMoney(req.EstimatedCostCents), req.EstimatedTime,
	)
	if err != nil {
		return respondError(ctx, operation, err)
	}

	if err := s.handlers.ReviewAlteration.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, operation, err)
	}

	metrics.OperationsAcceptedTotal.WithLabelValues(operation).Inc()
	return ctx.NoContent(http.StatusNoContent)
}

// RequestRefund handles POST /api/v1/orders/:id/refunds.
func (s *Server) RequestRefund(ctx echo.Context) error {
	const operation = "request_refund"

	actor, err := s.actor(ctx)
	if err != nil {
		return respondError(ctx, operation, err)
	}
	orderID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return respondError(ctx, operation, err)
	}

	var req RequestRefundRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, operation, echo.NewHTTPError(http.StatusBadRequest))
	}
	if err := ctx.Validate(&req); err != nil {
		return respondError(ctx, operation, err)
	}

	refundID := kernel.NewUUID()
	cmd, err := commands.NewRequestRefundCommand(
		orderID, actor, refundID, req.Reason, req.Description, kernel.NewMoney(req.AmountCents),
	)
	if err != nil {
		return respondError(ctx, operation, err)
	}

	if err := s.handlers.RequestRefund.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, operation, err)
	}

	metrics.OperationsAcceptedTotal.WithLabelValues(operation).Inc()
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: refundID.String()})
}

// ProcessRefund handles POST /api/v1/orders/:id/refunds/:refundId/process.
func (s *Server) ProcessRefund(ctx echo.Context) error {
	const operation = "process_refund"

	actor, err := s.actor(ctx)
	if err != nil {
		return respondError(ctx, operation, err)
	}
	orderID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return respondError(ctx, operation, err)
	}
	refundID, err := parseUUIDParam(ctx, "refundId")
	if err != nil {
		return respondError(ctx, operation, err)
	}

	var req ProcessRefundRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, operation, echo.NewHTTPError(http.StatusBadRequest))
	}
	if err := ctx.Validate(&req); err != nil {
		return respondError(ctx, operation, err)
	}

	target, err := order.RefundStatusFromString(req.Target)
	if err != nil {
		return respondError(ctx, operation, err)
	}

	cmd, err := commands.NewProcessRefundCommand(orderID, actor, refundID, target, req.TransactionID)
	if err != nil {
		return respondError(ctx, operation, err)
	}

	if err := s.handlers.ProcessRefund.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, operation, err)
	}

	metrics.OperationsAcceptedTotal.WithLabelValues(operation).Inc()
	return ctx.NoContent(http.StatusNoContent)
}
