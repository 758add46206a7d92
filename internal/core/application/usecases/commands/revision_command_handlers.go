package commands

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/ports"
)

// OpenRevisionCommandHandler handles customer revision requests.
type OpenRevisionCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewOpenRevisionCommandHandler creates a handler for opening revisions.
func NewOpenRevisionCommandHandler(uowFactory OrderUoWFactory, publisher ports.OrderEventPublisher) OpenRevisionCommandHandler {
	return OpenRevisionCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the open revision command.
func (h *OpenRevisionCommandHandler) Handle(ctx context.Context, cmd OpenRevisionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.OpenRevision(cmd.Actor(), cmd.RevisionID(), cmd.Description(), cmd.Images())
	})
	if err != nil {
		return err
	}

	publishOrderChanged(ctx, h.publisher, aggregate, cmd.Actor())
	return nil
}

// ReviewRevisionCommandHandler moves a revision through its lifecycle.
// A customer rejection opens a replacement revision, so the handler generates
// the follow-up identifier here rather than in the aggregate.
type ReviewRevisionCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewReviewRevisionCommandHandler creates a handler for revision reviews.
func NewReviewRevisionCommandHandler(uowFactory OrderUoWFactory, publisher ports.OrderEventPublisher) ReviewRevisionCommandHandler {
	return ReviewRevisionCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the revision review command.
func (h *ReviewRevisionCommandHandler) Handle(ctx context.Context, cmd ReviewRevisionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		switch cmd.Action() {
		case RevisionActionApprove:
			return o.ApproveRevision(cmd.Actor(), cmd.RevisionID())
		case RevisionActionReject:
			return o.RejectRevision(cmd.Actor(), cmd.RevisionID(), cmd.Note())
		case RevisionActionStart:
			return o.StartRevision(cmd.Actor(), cmd.RevisionID())
		case RevisionActionComplete:
			return o.CompleteRevision(cmd.Actor(), cmd.RevisionID(), cmd.Note())
		case RevisionActionCustomerApprove:
			return o.CustomerApproveRevision(cmd.Actor(), cmd.RevisionID())
		case RevisionActionCustomerReject:
			return o.CustomerRejectRevision(cmd.Actor(), cmd.RevisionID(), kernel.NewUUID(), cmd.Note())
		default:
			_, err := RevisionActionFromString(string(cmd.Action()))
			return err
		}
	})
	if err != nil {
		return err
	}

	publishOrderChanged(ctx, h.publisher, aggregate, cmd.Actor())
	return nil
}
