package order

import (
	"fmt"
	"slices"

	"atelier/internal/pkg/errs"
)

// Status represents the primary fulfillment stage of an order.
// It implements a state machine with defined transitions so orders always
// follow the documented workflow.
//
// State transitions:
//
//	pending ──> consultation_scheduled ──> consultation_completed ──> fabric_selected ──> in_progress ──> quality_check ──> completed
//	   │                 │                          │                       │                │  ▲              │
//	   └────────────┬────┴──────────────────────────┴───────────────────────┘                ▼  │              ▼
//	            cancelled                                                          revision_requested <── (from quality_check)
//
// The transition table below is the single source of truth for primary status
// legality; no other code re-encodes allowed-next-state lists.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a customer places the order.
	Pending

	// ConsultationScheduled indicates a consultation appointment has been set.
	ConsultationScheduled

	// ConsultationCompleted indicates the consultation took place.
	ConsultationCompleted

	// FabricSelected indicates the fabric for the garment has been chosen.
	FabricSelected

	// InProgress indicates the fulfiller is working on the garment.
	InProgress

	// QualityCheck indicates the garment is under final inspection.
	QualityCheck

	// Completed indicates the order has been fulfilled. Terminal; reaching it
	// unlocks the alteration workflow.
	Completed

	// Cancelled indicates the order was called off before work finished. Terminal.
	Cancelled

	// RevisionRequested is the side branch entered while a revision is open.
	RevisionRequested
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:               "unknown",
		Pending:               "pending",
		ConsultationScheduled: "consultation_scheduled",
		ConsultationCompleted: "consultation_completed",
		FabricSelected:        "fabric_selected",
		InProgress:            "in_progress",
		QualityCheck:          "quality_check",
		Completed:             "completed",
		Cancelled:             "cancelled",
		RevisionRequested:     "revision_requested",
	}
}

// getStatusTransitions returns the authoritative legal-next-state table.
// Terminal statuses (completed, cancelled) have no entries.
func getStatusTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:               {ConsultationScheduled, Cancelled},
		ConsultationScheduled: {ConsultationCompleted, Cancelled},
		ConsultationCompleted: {FabricSelected, Cancelled},
		FabricSelected:        {InProgress, Cancelled},
		InProgress:            {QualityCheck, RevisionRequested},
		RevisionRequested:     {InProgress},
		QualityCheck:          {Completed, RevisionRequested},
	}
}

// StatusFromString parses a status name, e.g. from an HTTP payload.
// Unknown is not parseable; every other defined status is.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// String returns the snake_case name of the status.
// Implements fmt.Stringer; safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the Status value is one of the defined statuses.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no further transition is defined from s.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether target is in s's allowed-next set.
func (s Status) CanTransitionTo(target Status) bool {
	return slices.Contains(getStatusTransitions()[s], target)
}

// TransitionTo validates the move from s to target against the transition
// table and returns the new status.
//
// Returns:
//   - (target, nil) when the transition is listed in the table
//   - (Unknown, *errs.InvalidTransitionError) otherwise
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewInvalidTransitionError("order", s.String(), target.String())
	}
	return target, nil
}
