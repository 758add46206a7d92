package order

import (
	"fmt"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

// DisputeStatus represents the state of a dispute between the two parties.
type DisputeStatus int

const (
	// DisputeUnknown represents an invalid or undefined dispute status.
	DisputeUnknown DisputeStatus = iota

	// DisputeOpen awaits resolution by the counter-party or an administrator.
	DisputeOpen

	// DisputeResolved means the dispute was settled in the raiser's favor. Terminal.
	DisputeResolved

	// DisputeRejected means the dispute was dismissed. Terminal.
	DisputeRejected
)

func getDisputeStatusStrings() map[DisputeStatus]string {
	return map[DisputeStatus]string{
		DisputeUnknown:  "unknown",
		DisputeOpen:     "open",
		DisputeResolved: "resolved",
		DisputeRejected: "rejected",
	}
}

// DisputeStatusFromString parses a dispute status name.
func DisputeStatusFromString(s string) (DisputeStatus, error) {
	for status, name := range getDisputeStatusStrings() {
		if name == s && status != DisputeUnknown {
			return status, nil
		}
	}
	return DisputeUnknown, errs.NewValueIsInvalidErrorWithCause("dispute status",
		fmt.Errorf("%q is not a valid dispute status", s))
}

// String returns the name of the dispute status.
func (s DisputeStatus) String() string {
	if str, ok := getDisputeStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the value is one of the defined dispute statuses.
func (s DisputeStatus) Validate() error {
	if _, ok := getDisputeStatusStrings()[s]; !ok || s == DisputeUnknown {
		return errs.NewValueIsInvalidErrorWithCause("dispute status",
			fmt.Errorf("%d is not a valid dispute status", s))
	}
	return nil
}

// Dispute is a disagreement raised by either party against the order.
// Resolution always requires a party other than the raiser; once resolved or
// rejected the dispute is terminal and a new one must be opened for further
// disagreement on the same topic.
type Dispute struct {
	id          kernel.UUID
	reason      string
	description string
	attachments []string
	raisedBy    kernel.UUID
	status      DisputeStatus
	resolution  string
	resolvedAt  *time.Time
}

func newDispute(id kernel.UUID, raisedBy kernel.UUID, reason, description string, attachments []string) (*Dispute, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := raisedBy.Validate(); err != nil {
		return nil, err
	}
	if reason == "" {
		return nil, errs.NewValueIsRequiredError("dispute reason")
	}

	return &Dispute{
		id:          id,
		reason:      reason,
		description: description,
		attachments: cloneStrings(attachments),
		raisedBy:    raisedBy,
		status:      DisputeOpen,
	}, nil
}

// RestoreDispute reconstructs a dispute from persistence.
func RestoreDispute(
	id kernel.UUID,
	raisedBy kernel.UUID,
	reason, description string,
	attachments []string,
	status DisputeStatus,
	resolution string,
	resolvedAt *time.Time,
) (*Dispute, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := raisedBy.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Dispute{
		id:          id,
		reason:      reason,
		description: description,
		attachments: cloneStrings(attachments),
		raisedBy:    raisedBy,
		status:      status,
		resolution:  resolution,
		resolvedAt:  resolvedAt,
	}, nil
}

// ID returns the dispute's unique identifier.
func (d *Dispute) ID() kernel.UUID { return d.id }

// Reason returns the short cause of the dispute.
func (d *Dispute) Reason() string { return d.reason }

// Description returns the raiser's full account.
func (d *Dispute) Description() string { return d.description }

// Attachments returns evidence URLs attached by the raiser.
func (d *Dispute) Attachments() []string { return cloneStrings(d.attachments) }

// RaisedBy returns the identity of the party who opened the dispute.
func (d *Dispute) RaisedBy() kernel.UUID { return d.raisedBy }

// Status returns the dispute's current state.
func (d *Dispute) Status() DisputeStatus { return d.status }

// Resolution returns the text recorded when the dispute was closed.
func (d *Dispute) Resolution() string { return d.resolution }

// ResolvedAt returns when the dispute was closed, or nil while open.
func (d *Dispute) ResolvedAt() *time.Time { return d.resolvedAt }

// Resolve closes the dispute as resolved or rejected with mandatory
// resolution text. The raiser may never resolve their own dispute, in any
// dispute state; re-resolving a closed dispute fails with AlreadyProcessed.
func (d *Dispute) Resolve(resolverID kernel.UUID, target DisputeStatus, resolution string) error {
	if resolverID.IsEqual(d.raisedBy) {
		return errs.NewUnauthorizedError("resolve their own dispute", "the raising party")
	}
	if target != DisputeResolved && target != DisputeRejected {
		return errs.NewInvalidTransitionError("dispute", d.status.String(), target.String())
	}
	if d.status != DisputeOpen {
		return errs.NewAlreadyProcessedError("dispute", d.id.String(), d.status.String())
	}
	if resolution == "" {
		return errs.NewValueIsRequiredError("resolution")
	}

	now := time.Now().UTC()
	d.status = target
	d.resolution = resolution
	d.resolvedAt = &now
	return nil
}
