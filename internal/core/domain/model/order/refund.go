package order

import (
	"fmt"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

// RefundStatus represents the state of a monetary refund request.
type RefundStatus int

const (
	// RefundUnknown represents an invalid or undefined refund status.
	RefundUnknown RefundStatus = iota

	// RefundPending awaits processing by the fulfiller or an administrator.
	RefundPending

	// RefundApproved means the refund was granted. Terminal.
	RefundApproved

	// RefundRejected means the refund was declined. Terminal.
	RefundRejected
)

func getRefundStatusStrings() map[RefundStatus]string {
	return map[RefundStatus]string{
		RefundUnknown:  "unknown",
		RefundPending:  "pending",
		RefundApproved: "approved",
		RefundRejected: "rejected",
	}
}

// RefundStatusFromString parses a refund status name.
func RefundStatusFromString(s string) (RefundStatus, error) {
	for status, name := range getRefundStatusStrings() {
		if name == s && status != RefundUnknown {
			return status, nil
		}
	}
	return RefundUnknown, errs.NewValueIsInvalidErrorWithCause("refund status",
		fmt.Errorf("%q is not a valid refund status", s))
}

// String returns the name of the refund status.
func (s RefundStatus) String() string {
	if str, ok := getRefundStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the value is one of the defined refund statuses.
func (s RefundStatus) Validate() error {
	if _, ok := getRefundStatusStrings()[s]; !ok || s == RefundUnknown {
		return errs.NewValueIsInvalidErrorWithCause("refund status",
			fmt.Errorf("%d is not a valid refund status", s))
	}
	return nil
}

// RefundRequest is a customer claim for money back, bounded by the order's
// outstanding balance at request time. Approved or rejected requests are
// terminal; further claims need a new request.
type RefundRequest struct {
	id              kernel.UUID
	reason          string
	description     string
	requestedAmount kernel.Money
	status          RefundStatus
	transactionID   string
	processedAt     *time.Time
}

func newRefundRequest(id kernel.UUID, reason, description string, requestedAmount kernel.Money) (*RefundRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if reason == "" {
		return nil, errs.NewValueIsRequiredError("refund reason")
	}
	if err := requestedAmount.ValidatePositive("requested amount"); err != nil {
		return nil, err
	}

	return &RefundRequest{
		id:              id,
		reason:          reason,
		description:     description,
		requestedAmount: requestedAmount,
		status:          RefundPending,
	}, nil
}

// RestoreRefundRequest reconstructs a refund request from persistence.
func RestoreRefundRequest(
	id kernel.UUID,
	reason, description string,
	requestedAmount kernel.Money,
	status RefundStatus,
	transactionID string,
	processedAt *time.Time,
) (*RefundRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &RefundRequest{
		id:              id,
		reason:          reason,
		description:     description,
		requestedAmount: requestedAmount,
		status:          status,
		transactionID:   transactionID,
		processedAt:     processedAt,
	}, nil
}

// ID returns the refund request's unique identifier.
func (r *RefundRequest) ID() kernel.UUID { return r.id }

// Reason returns the short cause of the claim.
func (r *RefundRequest) Reason() string { return r.reason }

// Description returns the customer's full account.
func (r *RefundRequest) Description() string { return r.description }

// RequestedAmount returns the amount claimed.
func (r *RefundRequest) RequestedAmount() kernel.Money { return r.requestedAmount }

// Status returns the refund request's current state.
func (r *RefundRequest) Status() RefundStatus { return r.status }

// TransactionID returns the payout transaction reference recorded on approval.
func (r *RefundRequest) TransactionID() string { return r.transactionID }

// ProcessedAt returns when the request was processed, or nil while pending.
func (r *RefundRequest) ProcessedAt() *time.Time { return r.processedAt }

// Process closes the request as approved (with an optional transaction
// reference) or rejected. Re-processing a closed request fails with
// AlreadyProcessed.
func (r *RefundRequest) Process(target RefundStatus, transactionID string) error {
	if target != RefundApproved && target != RefundRejected {
		return errs.NewInvalidTransitionError("refund", r.status.String(), target.String())
	}
	if r.status != RefundPending {
		return errs.NewAlreadyProcessedError("refund", r.id.String(), r.status.String())
	}

	now := time.Now().UTC()
	r.status = target
	r.transactionID = transactionID
	r.processedAt = &now
	return nil
}
