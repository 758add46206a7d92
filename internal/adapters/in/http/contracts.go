package http

import "time"

// Request bodies for the order API. Money travels as integer cents; validation
// tags cover shape only, business rules stay in the domain.

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	OrderNumber            string `json:"order_number" validate:"required"`
	CustomerID             string `json:"customer_id" validate:"required,uuid"`
	FulfillerID            string `json:"fulfiller_id" validate:"required,uuid"`
	Garment                string `json:"garment" validate:"required"`
	ServiceType            string `json:"service_type" validate:"required"`
	Quantity               int    `json:"quantity" validate:"required,min=1"`
	BasePriceCents         int64  `json:"base_price_cents" validate:"required,min=1"`
	FabricCostCents        int64  `json:"fabric_cost_cents" validate:"min=0"`
	AdditionalChargesCents int64  `json:"additional_charges_cents" validate:"min=0"`
	DiscountCents          int64  `json:"discount_cents" validate:"min=0"`
}

// AdvanceStatusRequest is the body of POST /api/v1/orders/:id/status.
type AdvanceStatusRequest struct {
	Target string `json:"target" validate:"required"`
	Reason string `json:"reason"`
}

// UpdateConsultationRequest is the body of PUT /api/v1/orders/:id/consultation.
type UpdateConsultationRequest struct {
	ScheduledAt *time.Time `json:"scheduled_at"`
	Location    string     `json:"location"`
	Notes       string     `json:"notes"`
}

// UpdateDeliveryRequest is the body of PUT /api/v1/orders/:id/delivery.
type UpdateDeliveryRequest struct {
	Address      string `json:"address"`
	City         string `json:"city"`
	PostalCode   string `json:"postal_code"`
	Phone        string `json:"phone"`
	Instructions string `json:"instructions"`
}

// UpdateEmergencyContactRequest is the body of PUT /api/v1/orders/:id/emergency-contact.
type UpdateEmergencyContactRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Relation string `json:"relation"`
}

// OpenRevisionRequest is the body of POST /api/v1/orders/:id/revisions.
type OpenRevisionRequest struct {
	Description string   `json:"description" validate:"required"`
	Images      []string `json:"images" validate:"omitempty,dive,uri"`
}

// ReviewRevisionRequest is the body of POST /api/v1/orders/:id/revisions/:revisionId/review.
type ReviewRevisionRequest struct {
	Action string `json:"action" validate:"required"`
	Note   string `json:"note"`
}

// AddMilestoneRequest is the body of POST /api/v1/orders/:id/milestones.
type AddMilestoneRequest struct {
	Kind          string    `json:"kind" validate:"required"`
	AmountCents   int64     `json:"amount_cents" validate:"required,min=1"`
	DueDate       time.Time `json:"due_date" validate:"required"`
	PaymentMethod string    `json:"payment_method"`
}

// PayMilestoneRequest is the body of POST /api/v1/orders/:id/milestones/:milestoneId/pay.
// The transaction id is optional: cash payments have none.
type PayMilestoneRequest struct {
	TransactionID string `json:"transaction_id"`
}

// OpenDisputeRequest is the body of POST /api/v1/orders/:id/disputes.
type OpenDisputeRequest struct {
	Reason      string   `json:"reason" validate:"required"`
	Description string   `json:"description"`
	Attachments []string `json:"attachments" validate:"omitempty,dive,uri"`
}

// ResolveDisputeRequest is the body of POST /api/v1/orders/:id/disputes/:disputeId/resolve.
type ResolveDisputeRequest struct {
	Target     string `json:"target" validate:"required,oneof=resolved rejected"`
	Resolution string `json:"resolution" validate:"required"`
}

// RequestAlterationRequest is the body of POST /api/v1/orders/:id/alterations.
type RequestAlterationRequest struct {
	Description string `json:"description" validate:"required"`
	Urgency     string `json:"urgency" validate:"required"`
}

// ReviewAlterationRequest is the body of POST /api/v1/orders/:id/alterations/:alterationId/review.
type ReviewAlterationRequest struct {
	Target             string `json:"target" validate:"required"`
	EstimatedCostCents int64  `json:"estimated_cost_cents" validate:"min=0"`
	EstimatedTime      string `json:"estimated_time"`
}

// RequestRefundRequest is the body of POST /api/v1/orders/:id/refunds.
type RequestRefundRequest struct {
	Reason      string `json:"reason" validate:"required"`
	Description string `json:"description"`
	AmountCents int64  `json:"amount_cents" validate:"required,min=1"`
}

// ProcessRefundRequest is the body of POST /api/v1/orders/:id/refunds/:refundId/process.
type ProcessRefundRequest struct {
	Target        string `json:"target" validate:"required,oneof=approved rejected"`
	TransactionID string `json:"transaction_id"`
}

// CreatedResponse carries the server-generated identifier of a new resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
