package order

import (
	"fmt"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

// Urgency expresses how quickly the customer needs an alteration.
type Urgency int

const (
	// UrgencyUnknown represents an invalid or undefined urgency.
	UrgencyUnknown Urgency = iota

	// UrgencyLow means the alteration can wait.
	UrgencyLow

	// UrgencyMedium means the alteration should happen soon.
	UrgencyMedium

	// UrgencyHigh means the alteration is time critical.
	UrgencyHigh
)

func getUrgencyStrings() map[Urgency]string {
	return map[Urgency]string{
		UrgencyUnknown: "unknown",
		UrgencyLow:     "low",
		UrgencyMedium:  "medium",
		UrgencyHigh:    "high",
	}
}

// UrgencyFromString parses an urgency name.
func UrgencyFromString(s string) (Urgency, error) {
	for u, name := range getUrgencyStrings() {
		if name == s && u != UrgencyUnknown {
			return u, nil
		}
	}
	return UrgencyUnknown, errs.NewValueIsInvalidErrorWithCause("urgency",
		fmt.Errorf("%q is not a valid urgency", s))
}

// String returns the urgency name.
func (u Urgency) String() string {
	if s, ok := getUrgencyStrings()[u]; ok {
		return s
	}
	return "unknown"
}

// Validate checks if the value is one of the defined urgencies.
func (u Urgency) Validate() error {
	if _, ok := getUrgencyStrings()[u]; !ok || u == UrgencyUnknown {
		return errs.NewValueIsInvalidErrorWithCause("urgency",
			fmt.Errorf("%d is not a valid urgency", u))
	}
	return nil
}

// AlterationStatus represents the state of a post-completion change request.
//
// State transitions:
//
//	pending ──> approved ──> in_progress ──> completed
//	   │
//	   └──> rejected
//
// Unlike revisions there is no customer counter-approval step: completion by
// the fulfiller is terminal.
type AlterationStatus int

const (
	// AlterationUnknown represents an invalid or undefined alteration status.
	AlterationUnknown AlterationStatus = iota

	// AlterationPending awaits the fulfiller's estimate and decision.
	AlterationPending

	// AlterationApproved means the fulfiller accepted with cost/time estimates.
	AlterationApproved

	// AlterationRejected means the fulfiller declined. Terminal.
	AlterationRejected

	// AlterationInProgress means the fulfiller is working on the alteration.
	AlterationInProgress

	// AlterationCompleted means the alteration is done. Terminal.
	AlterationCompleted
)

func getAlterationStatusStrings() map[AlterationStatus]string {
	return map[AlterationStatus]string{
		AlterationUnknown:    "unknown",
		AlterationPending:    "pending",
		AlterationApproved:   "approved",
		AlterationRejected:   "rejected",
		AlterationInProgress: "in_progress",
		AlterationCompleted:  "completed",
	}
}

// AlterationStatusFromString parses an alteration status name.
func AlterationStatusFromString(s string) (AlterationStatus, error) {
	for status, name := range getAlterationStatusStrings() {
		if name == s && status != AlterationUnknown {
			return status, nil
		}
	}
	return AlterationUnknown, errs.NewValueIsInvalidErrorWithCause("alteration status",
		fmt.Errorf("%q is not a valid alteration status", s))
}

// String returns the name of the alteration status.
func (s AlterationStatus) String() string {
	if str, ok := getAlterationStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the value is one of the defined alteration statuses.
func (s AlterationStatus) Validate() error {
	if _, ok := getAlterationStatusStrings()[s]; !ok || s == AlterationUnknown {
		return errs.NewValueIsInvalidErrorWithCause("alteration status",
			fmt.Errorf("%d is not a valid alteration status", s))
	}
	return nil
}

// IsTerminal reports whether no further transition is defined from s.
func (s AlterationStatus) IsTerminal() bool {
	return s == AlterationRejected || s == AlterationCompleted
}

// AlterationRequest is a customer-initiated change request made once the
// garment exists, typically after completion.
type AlterationRequest struct {
	id            kernel.UUID
	description   string
	urgency       Urgency
	status        AlterationStatus
	estimatedCost kernel.Money
	estimatedTime string
	completedAt   *time.Time
}

func newAlterationRequest(id kernel.UUID, description string, urgency Urgency) (*AlterationRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if description == "" {
		return nil, errs.NewValueIsRequiredError("alteration description")
	}
	if err := urgency.Validate(); err != nil {
		return nil, err
	}

	return &AlterationRequest{
		id:          id,
		description: description,
		urgency:     urgency,
		status:      AlterationPending,
	}, nil
}

// RestoreAlterationRequest reconstructs an alteration request from persistence.
func RestoreAlterationRequest(
	id kernel.UUID,
	description string,
	urgency Urgency,
	status AlterationStatus,
	estimatedCost kernel.Money,
	estimatedTime string,
	completedAt *time.Time,
) (*AlterationRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := urgency.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &AlterationRequest{
		id:            id,
		description:   description,
		urgency:       urgency,
		status:        status,
		estimatedCost: estimatedCost,
		estimatedTime: estimatedTime,
		completedAt:   completedAt,
	}, nil
}

// ID returns the alteration request's unique identifier.
func (a *AlterationRequest) ID() kernel.UUID { return a.id }

// Description returns what the customer asked to alter.
func (a *AlterationRequest) Description() string { return a.description }

// Urgency returns how quickly the customer needs the alteration.
func (a *AlterationRequest) Urgency() Urgency { return a.urgency }

// Status returns the alteration's current state.
func (a *AlterationRequest) Status() AlterationStatus { return a.status }

// EstimatedCost returns the fulfiller's cost estimate recorded on approval.
func (a *AlterationRequest) EstimatedCost() kernel.Money { return a.estimatedCost }

// EstimatedTime returns the fulfiller's time estimate recorded on approval.
func (a *AlterationRequest) EstimatedTime() string { return a.estimatedTime }

// CompletedAt returns when the alteration finished, or nil before that.
func (a *AlterationRequest) CompletedAt() *time.Time { return a.completedAt }

func (a *AlterationRequest) transition(from, to AlterationStatus) error {
	if a.status == to {
		return errs.NewAlreadyProcessedError("alteration", a.id.String(), a.status.String())
	}
	if a.status != from {
		return errs.NewInvalidTransitionError("alteration", a.status.String(), to.String())
	}
	a.status = to
	return nil
}

// Approve accepts a pending alteration, recording the fulfiller's mandatory
// cost and time estimates.
func (a *AlterationRequest) Approve(estimatedCost kernel.Money, estimatedTime string) error {
	if err := estimatedCost.ValidateNonNegative("estimated cost"); err != nil {
		return err
	}
	if estimatedTime == "" {
		return errs.NewValueIsRequiredError("estimated time")
	}
	if err := a.transition(AlterationPending, AlterationApproved); err != nil {
		return err
	}
	a.estimatedCost = estimatedCost
	a.estimatedTime = estimatedTime
	return nil
}

// Reject declines a pending alteration. Terminal.
func (a *AlterationRequest) Reject() error {
	return a.transition(AlterationPending, AlterationRejected)
}

// Start moves an approved alteration to in_progress.
func (a *AlterationRequest) Start() error {
	return a.transition(AlterationApproved, AlterationInProgress)
}

// Complete finishes an in_progress alteration. Terminal; there is no customer
// counter-approval step.
func (a *AlterationRequest) Complete() error {
	if err := a.transition(AlterationInProgress, AlterationCompleted); err != nil {
		return err
	}
	now := time.Now().UTC()
	a.completedAt = &now
	return nil
}
