package queries

import (
	"context"
	"fmt"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"
)

// GetOrderQueryHandler reads a single order through the repository and shapes
// the response for the caller. Reads go through the aggregate rather than raw
// SQL because visibility rules live on the domain model.
type GetOrderQueryHandler struct {
	repo ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for single order reads.
func NewGetOrderQueryHandler(repo ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{repo: repo}
}

// Handle executes the read. Only the order's parties and admins may read an
// order; the fulfiller's view omits the customer's emergency contact.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	aggregate, err := h.repo.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	actor := query.Actor()
	includeEmergencyContact := true
	switch actor.Role() {
	case kernel.RoleAdmin:
	case kernel.RoleCustomer:
		if !actor.ID().IsEqual(aggregate.CustomerID()) {
			return GetOrderQueryResponse{}, errs.NewUnauthorizedError("read the order",
				fmt.Sprintf("%s %s", actor.Role(), actor.ID()))
		}
	case kernel.RoleFulfiller:
		if !actor.ID().IsEqual(aggregate.FulfillerID()) {
			return GetOrderQueryResponse{}, errs.NewUnauthorizedError("read the order",
				fmt.Sprintf("%s %s", actor.Role(), actor.ID()))
		}
		includeEmergencyContact = false
	default:
		return GetOrderQueryResponse{}, errs.NewUnauthorizedError("read the order",
			fmt.Sprintf("%s %s", actor.Role(), actor.ID()))
	}

	return mapOrderResponse(aggregate, includeEmergencyContact), nil
}

func mapOrderResponse(o *order.Order, includeEmergencyContact bool) GetOrderQueryResponse {
	resp := GetOrderQueryResponse{
		ID:          o.ID().String(),
		OrderNumber: o.OrderNumber(),
		CustomerID:  o.CustomerID().String(),
		FulfillerID: o.FulfillerID().String(),

		Garment:     o.Garment(),
		ServiceType: o.ServiceType(),
		Quantity:    o.Quantity(),

		BasePriceCents:         o.BasePrice().Cents(),
		FabricCostCents:        o.FabricCost().Cents(),
		AdditionalChargesCents: o.AdditionalCharges().Cents(),
		DiscountCents:          o.Discount().Cents(),
		TotalPriceCents:        o.TotalPrice().Cents(),
		TotalPaidCents:         o.TotalPaid().Cents(),

		Status:             o.Status().String(),
		CancellationReason: o.CancellationReason(),

		Consultation: ConsultationResponse{
			ScheduledAt: o.Consultation().ScheduledAt,
			Location:    o.Consultation().Location,
			Notes:       o.Consultation().Notes,
		},
		Delivery: DeliveryResponse{
			Address:      o.Delivery().Address,
			City:         o.Delivery().City,
			PostalCode:   o.Delivery().PostalCode,
			Phone:        o.Delivery().Phone,
			Instructions: o.Delivery().Instructions,
		},

		Timeline:    make([]TimelineEntryResponse, 0, len(o.Timeline())),
		Revisions:   make([]RevisionResponse, 0, len(o.Revisions())),
		Milestones:  make([]MilestoneResponse, 0, len(o.Milestones())),
		Disputes:    make([]DisputeResponse, 0, len(o.Disputes())),
		Alterations: make([]AlterationResponse, 0, len(o.Alterations())),
		Refunds:     make([]RefundResponse, 0, len(o.Refunds())),

		Version:   o.Version(),
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	}

	if includeEmergencyContact {
		resp.EmergencyContact = &EmergencyContactResponse{
			Name:     o.EmergencyContact().Name,
			Phone:    o.EmergencyContact().Phone,
			Relation: o.EmergencyContact().Relation,
		}
	}

	for _, e := range o.Timeline() {
		resp.Timeline = append(resp.Timeline, TimelineEntryResponse{Step: e.Step(), At: e.At()})
	}

	for _, r := range o.Revisions() {
		resp.Revisions = append(resp.Revisions, RevisionResponse{
			ID:              r.ID().String(),
			Sequence:        r.Sequence(),
			Description:     r.Description(),
			Images:          r.Images(),
			Status:          r.Status().String(),
			RequestedAt:     r.RequestedAt(),
			RejectionReason: r.RejectionReason(),
			CompletionNotes: r.CompletionNotes(),
		})
	}

	now := time.Now().UTC()
	for _, m := range o.Milestones() {
		resp.Milestones = append(resp.Milestones, MilestoneResponse{
			ID:            m.ID().String(),
			Kind:          m.Kind().String(),
			AmountCents:   m.Amount().Cents(),
			DueDate:       m.DueDate(),
			Paid:          m.Paid(),
			PaidAt:        m.PaidAt(),
			PaymentMethod: m.PaymentMethod(),
			TransactionID: m.TransactionID(),
			Overdue:       m.IsOverdue(now),
		})
	}

	for _, d := range o.Disputes() {
		resp.Disputes = append(resp.Disputes, DisputeResponse{
			ID:          d.ID().String(),
			Reason:      d.Reason(),
			Description: d.Description(),
			Attachments: d.Attachments(),
			RaisedBy:    d.RaisedBy().String(),
			Status:      d.Status().String(),
			Resolution:  d.Resolution(),
			ResolvedAt:  d.ResolvedAt(),
		})
	}

	for _, a := range o.Alterations() {
		resp.Alterations = append(resp.Alterations, AlterationResponse{
			ID:                 a.ID().String(),
			Description:        a.Description(),
			Urgency:            a.Urgency().String(),
			Status:             a.Status().String(),
			EstimatedCostCents: a.EstimatedCost().Cents(),
			EstimatedTime:      a.EstimatedTime(),
			CompletedAt:        a.CompletedAt(),
		})
	}

	for _, r := range o.Refunds() {
		resp.Refunds = append(resp.Refunds, RefundResponse{
			ID:                   r.ID().String(),
			Reason:               r.Reason(),
			Description:          r.Description(),
			RequestedAmountCents: r.RequestedAmount().Cents(),
			Status:               r.Status().String(),
			TransactionID:        r.TransactionID(),
			ProcessedAt:          r.ProcessedAt(),
		})
	}

	return resp
}
