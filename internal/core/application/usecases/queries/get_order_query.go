// Package queries contains read operations in the CQRS architecture.
// Queries never mutate state and shape their responses per caller role.
package queries

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with all of its sub-workflows.
// The actor determines visibility: only the order's parties and admins may
// read it, and the emergency contact is redacted from the fulfiller.
type GetOrderQuery struct {
	orderID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to read one order as the given actor.
func NewGetOrderQuery(orderID kernel.UUID, actor kernel.Actor) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order to read.
func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

// Actor returns the authenticated caller.
func (q GetOrderQuery) Actor() kernel.Actor { return q.actor }

// ConsultationResponse is the consultation block of an order response.
type ConsultationResponse struct {
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	Location    string     `json:"location,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

// DeliveryResponse is the delivery block of an order response.
type DeliveryResponse struct {
	Address      string `json:"address,omitempty"`
	City         string `json:"city,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

// EmergencyContactResponse is the emergency contact block of an order
// response. It is omitted entirely for the fulfiller.
type EmergencyContactResponse struct {
	Name     string `json:"name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Relation string `json:"relation,omitempty"`
}

// TimelineEntryResponse is one audit log row.
type TimelineEntryResponse struct {
	Step string    `json:"step"`
	At   time.Time `json:"at"`
}

// RevisionResponse is one revision in an order response.
type RevisionResponse struct {
	ID              string    `json:"id"`
	Sequence        int       `json:"sequence"`
	Description     string    `json:"description"`
	Images          []string  `json:"images,omitempty"`
	Status          string    `json:"status"`
	RequestedAt     time.Time `json:"requested_at"`
	RejectionReason string    `json:"rejection_reason,omitempty"`
	CompletionNotes string    `json:"completion_notes,omitempty"`
}

// MilestoneResponse is one payment milestone in an order response.
type MilestoneResponse struct {
	ID            string     `json:"id"`
	Kind          string     `json:"kind"`
	AmountCents   int64      `json:"amount_cents"`
	DueDate       time.Time  `json:"due_date"`
	Paid          bool       `json:"paid"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	PaymentMethod string     `json:"payment_method,omitempty"`
	TransactionID string     `json:"transaction_id,omitempty"`
	Overdue       bool       `json:"overdue"`
}

// DisputeResponse is one dispute in an order response.
type DisputeResponse struct {
	ID          string     `json:"id"`
	Reason      string     `json:"reason"`
	Description string     `json:"description,omitempty"`
	Attachments []string   `json:"attachments,omitempty"`
	RaisedBy    string     `json:"raised_by"`
	Status      string     `json:"status"`
	Resolution  string     `json:"resolution,omitempty"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}

// AlterationResponse is one alteration request in an order response.
type AlterationResponse struct {
	ID                 string     `json:"id"`
	Description        string     `json:"description"`
	Urgency            string     `json:"urgency"`
	Status             string     `json:"status"`
	EstimatedCostCents int64      `json:"estimated_cost_cents"`
	EstimatedTime      string     `json:"estimated_time,omitempty"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
}

// RefundResponse is one refund request in an order response.
type RefundResponse struct {
	ID                   string     `json:"id"`
	Reason               string     `json:"reason"`
	Description          string     `json:"description,omitempty"`
	RequestedAmountCents int64      `json:"requested_amount_cents"`
	Status               string     `json:"status"`
	TransactionID        string     `json:"transaction_id,omitempty"`
	ProcessedAt          *time.Time `json:"processed_at,omitempty"`
}

// GetOrderQueryResponse is the full order view for an authorized party.
type GetOrderQueryResponse struct {
	ID          string `json:"id"`
	OrderNumber string `json:"order_number"`
	CustomerID  string `json:"customer_id"`
	FulfillerID string `json:"fulfiller_id"`

	Garment     string `json:"garment"`
	ServiceType string `json:"service_type"`
	Quantity    int    `json:"quantity"`

	BasePriceCents         int64 `json:"base_price_cents"`
	FabricCostCents        int64 `json:"fabric_cost_cents"`
	AdditionalChargesCents int64 `json:"additional_charges_cents"`
	DiscountCents          int64 `json:"discount_cents"`
	TotalPriceCents        int64 `json:"total_price_cents"`
	TotalPaidCents         int64 `json:"total_paid_cents"`

	Status             string `json:"status"`
	CancellationReason string `json:"cancellation_reason,omitempty"`

	Consultation     ConsultationResponse      `json:"consultation"`
	Delivery         DeliveryResponse          `json:"delivery"`
	EmergencyContact *EmergencyContactResponse `json:"emergency_contact,omitempty"`

	Timeline    []TimelineEntryResponse `json:"timeline"`
	Revisions   []RevisionResponse      `json:"revisions"`
	Milestones  []MilestoneResponse     `json:"milestones"`
	Disputes    []DisputeResponse       `json:"disputes"`
	Alterations []AlterationResponse    `json:"alterations"`
	Refunds     []RefundResponse        `json:"refunds"`

	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
