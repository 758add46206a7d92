package order

import (
	"fmt"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

// MilestoneKind names the purpose of a scheduled partial payment.
// Kinds carry no ordering constraint between each other: deposits and final
// payments can be scheduled in any order.
type MilestoneKind int

const (
	// MilestoneUnknown represents an invalid or undefined milestone kind.
	MilestoneUnknown MilestoneKind = iota

	// MilestoneDeposit is an up-front payment securing the order.
	MilestoneDeposit

	// MilestoneFabric covers the fabric purchase.
	MilestoneFabric

	// MilestoneProgress is an interim payment during fulfillment.
	MilestoneProgress

	// MilestoneFinal is the balance payment.
	MilestoneFinal

	// MilestoneDelivery covers delivery charges.
	MilestoneDelivery
)

func getMilestoneKindStrings() map[MilestoneKind]string {
	return map[MilestoneKind]string{
		MilestoneUnknown:  "unknown",
		MilestoneDeposit:  "deposit",
		MilestoneFabric:   "fabric",
		MilestoneProgress: "progress",
		MilestoneFinal:    "final",
		MilestoneDelivery: "delivery",
	}
}

// MilestoneKindFromString parses a milestone kind name.
func MilestoneKindFromString(s string) (MilestoneKind, error) {
	for kind, name := range getMilestoneKindStrings() {
		if name == s && kind != MilestoneUnknown {
			return kind, nil
		}
	}
	return MilestoneUnknown, errs.NewValueIsInvalidErrorWithCause("milestone kind",
		fmt.Errorf("%q is not a valid milestone kind", s))
}

// String returns the name of the milestone kind.
func (k MilestoneKind) String() string {
	if s, ok := getMilestoneKindStrings()[k]; ok {
		return s
	}
	return "unknown"
}

// Validate checks if the value is one of the defined milestone kinds.
func (k MilestoneKind) Validate() error {
	if _, ok := getMilestoneKindStrings()[k]; !ok || k == MilestoneUnknown {
		return errs.NewValueIsInvalidErrorWithCause("milestone kind",
			fmt.Errorf("%d is not a valid milestone kind", k))
	}
	return nil
}

// PaymentMilestone is a named, scheduled partial payment within an order's
// payment plan. The paid flag is monotonic: once set it is never reverted by
// this engine (reversal is an administrative override outside its scope).
type PaymentMilestone struct {
	id            kernel.UUID
	kind          MilestoneKind
	amount        kernel.Money
	dueDate       time.Time
	paid          bool
	paidAt        *time.Time
	paymentMethod string
	transactionID string
}

func newPaymentMilestone(id kernel.UUID, kind MilestoneKind, amount kernel.Money, dueDate time.Time, paymentMethod string) (*PaymentMilestone, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	if err := amount.ValidatePositive("milestone amount"); err != nil {
		return nil, err
	}
	if dueDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("milestone due date")
	}

	return &PaymentMilestone{
		id:            id,
		kind:          kind,
		amount:        amount,
		dueDate:       dueDate,
		paymentMethod: paymentMethod,
	}, nil
}

// RestorePaymentMilestone reconstructs a milestone from persistence.
func RestorePaymentMilestone(
	id kernel.UUID,
	kind MilestoneKind,
	amount kernel.Money,
	dueDate time.Time,
	paid bool,
	paidAt *time.Time,
	paymentMethod string,
	transactionID string,
) (*PaymentMilestone, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	return &PaymentMilestone{
		id:            id,
		kind:          kind,
		amount:        amount,
		dueDate:       dueDate,
		paid:          paid,
		paidAt:        paidAt,
		paymentMethod: paymentMethod,
		transactionID: transactionID,
	}, nil
}

// ID returns the milestone's unique identifier.
func (m *PaymentMilestone) ID() kernel.UUID { return m.id }

// Kind returns what the payment is for.
func (m *PaymentMilestone) Kind() MilestoneKind { return m.kind }

// Amount returns the scheduled amount.
func (m *PaymentMilestone) Amount() kernel.Money { return m.amount }

// DueDate returns when the payment falls due.
func (m *PaymentMilestone) DueDate() time.Time { return m.dueDate }

// Paid reports whether the milestone has been settled.
func (m *PaymentMilestone) Paid() bool { return m.paid }

// PaidAt returns when the milestone was settled, or nil if unpaid.
func (m *PaymentMilestone) PaidAt() *time.Time { return m.paidAt }

// PaymentMethod returns how the milestone is expected to be (or was) paid.
func (m *PaymentMilestone) PaymentMethod() string { return m.paymentMethod }

// TransactionID returns the settlement transaction reference, if recorded.
func (m *PaymentMilestone) TransactionID() string { return m.transactionID }

// IsOverdue reports whether the milestone is unpaid past its due date.
// This is a read-time derived property; nothing transitions on the passage of time.
func (m *PaymentMilestone) IsOverdue(now time.Time) bool {
	return !m.paid && now.After(m.dueDate)
}

// MarkPaid settles the milestone, recording the optional transaction
// reference. A second call fails with AlreadyProcessed.
func (m *PaymentMilestone) MarkPaid(transactionID string) error {
	if m.paid {
		return errs.NewAlreadyProcessedError("payment milestone", m.id.String(), "paid")
	}
	now := time.Now().UTC()
	m.paid = true
	m.paidAt = &now
	m.transactionID = transactionID
	return nil
}
