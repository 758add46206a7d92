package order

import (
	"fmt"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

// RevisionStatus represents the state of a single revision request.
//
// State transitions:
//
//	pending ──> approved ──> in_progress ──> completed ──> customer_approved
//	   │                                         │
//	   └──> rejected                             └──> customer_rejected (a fresh pending revision is auto-opened)
type RevisionStatus int

const (
	// RevisionUnknown represents an invalid or undefined revision status.
	RevisionUnknown RevisionStatus = iota

	// RevisionPending awaits the fulfiller's decision.
	RevisionPending

	// RevisionApproved means the fulfiller accepted the revision request.
	RevisionApproved

	// RevisionRejected means the fulfiller declined the request. Terminal.
	RevisionRejected

	// RevisionInProgress means the fulfiller is working on the revision.
	RevisionInProgress

	// RevisionCompleted means the fulfiller finished; awaiting the customer's verdict.
	RevisionCompleted

	// RevisionCustomerApproved means the customer accepted the result. Terminal.
	RevisionCustomerApproved

	// RevisionCustomerRejected means the customer rejected the result. Terminal
	// for this revision; a new pending revision is opened in its place.
	RevisionCustomerRejected
)

func getRevisionStatusStrings() map[RevisionStatus]string {
	return map[RevisionStatus]string{
		RevisionUnknown:          "unknown",
		RevisionPending:          "pending",
		RevisionApproved:         "approved",
		RevisionRejected:         "rejected",
		RevisionInProgress:       "in_progress",
		RevisionCompleted:        "completed",
		RevisionCustomerApproved: "customer_approved",
		RevisionCustomerRejected: "customer_rejected",
	}
}

// RevisionStatusFromString parses a revision status name.
func RevisionStatusFromString(s string) (RevisionStatus, error) {
	for status, name := range getRevisionStatusStrings() {
		if name == s && status != RevisionUnknown {
			return status, nil
		}
	}
	return RevisionUnknown, errs.NewValueIsInvalidErrorWithCause("revision status",
		fmt.Errorf("%q is not a valid revision status", s))
}

// String returns the snake_case name of the revision status.
func (s RevisionStatus) String() string {
	if str, ok := getRevisionStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the value is one of the defined revision statuses.
func (s RevisionStatus) Validate() error {
	if _, ok := getRevisionStatusStrings()[s]; !ok || s == RevisionUnknown {
		return errs.NewValueIsInvalidErrorWithCause("revision status",
			fmt.Errorf("%d is not a valid revision status", s))
	}
	return nil
}

// IsTerminal reports whether no further transition is defined from s.
func (s RevisionStatus) IsTerminal() bool {
	return s == RevisionRejected || s == RevisionCustomerApproved || s == RevisionCustomerRejected
}

// Revision is a customer change request raised against an in-flight order.
// Revisions are owned exclusively by their order and never referenced
// externally; they are status-transitioned, never deleted.
type Revision struct {
	id              kernel.UUID
	sequence        int
	description     string
	images          []string
	status          RevisionStatus
	requestedAt     time.Time
	rejectionReason string
	completionNotes string
}

func newRevision(id kernel.UUID, sequence int, description string, images []string) (*Revision, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if sequence <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("revision sequence",
			fmt.Errorf("%d is not greater than 0", sequence))
	}
	if description == "" {
		return nil, errs.NewValueIsRequiredError("revision description")
	}

	return &Revision{
		id:          id,
		sequence:    sequence,
		description: description,
		images:      cloneStrings(images),
		status:      RevisionPending,
		requestedAt: time.Now().UTC(),
	}, nil
}

// RestoreRevision reconstructs a revision from persistence without re-running
// creation-time rules. The stored status must still be a defined one.
func RestoreRevision(
	id kernel.UUID,
	sequence int,
	description string,
	images []string,
	status RevisionStatus,
	requestedAt time.Time,
	rejectionReason string,
	completionNotes string,
) (*Revision, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Revision{
		id:              id,
		sequence:        sequence,
		description:     description,
		images:          cloneStrings(images),
		status:          status,
		requestedAt:     requestedAt,
		rejectionReason: rejectionReason,
		completionNotes: completionNotes,
	}, nil
}

// ID returns the revision's unique identifier.
func (r *Revision) ID() kernel.UUID { return r.id }

// Sequence returns the revision's 1-based position in the order's revision history.
func (r *Revision) Sequence() int { return r.sequence }

// Description returns what the customer asked to change.
func (r *Revision) Description() string { return r.description }

// Images returns the reference image URLs attached to the request.
func (r *Revision) Images() []string { return cloneStrings(r.images) }

// Status returns the revision's current state.
func (r *Revision) Status() RevisionStatus { return r.status }

// RequestedAt returns when the revision was opened.
func (r *Revision) RequestedAt() time.Time { return r.requestedAt }

// RejectionReason returns the reason recorded by whoever rejected the revision.
func (r *Revision) RejectionReason() string { return r.rejectionReason }

// CompletionNotes returns the fulfiller's notes recorded on completion.
func (r *Revision) CompletionNotes() string { return r.completionNotes }

// transition enforces the revision machine for a single step. Re-applying a
// step the revision already absorbed yields AlreadyProcessed; any other
// mismatch yields InvalidTransition.
func (r *Revision) transition(from, to RevisionStatus) error {
	if r.status == to {
		return errs.NewAlreadyProcessedError("revision", r.id.String(), r.status.String())
	}
	if r.status != from {
		return errs.NewInvalidTransitionError("revision", r.status.String(), to.String())
	}
	r.status = to
	return nil
}

// Approve moves a pending revision to approved.
func (r *Revision) Approve() error {
	return r.transition(RevisionPending, RevisionApproved)
}

// Reject declines a pending revision with a mandatory reason. Terminal.
func (r *Revision) Reject(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("rejection reason")
	}
	if err := r.transition(RevisionPending, RevisionRejected); err != nil {
		return err
	}
	r.rejectionReason = reason
	return nil
}

// Start moves an approved revision to in_progress.
func (r *Revision) Start() error {
	return r.transition(RevisionApproved, RevisionInProgress)
}

// Complete moves an in_progress revision to completed, recording the
// fulfiller's notes.
func (r *Revision) Complete(notes string) error {
	if err := r.transition(RevisionInProgress, RevisionCompleted); err != nil {
		return err
	}
	r.completionNotes = notes
	return nil
}

// CustomerApprove records the customer's acceptance of a completed revision. Terminal.
func (r *Revision) CustomerApprove() error {
	return r.transition(RevisionCompleted, RevisionCustomerApproved)
}

// CustomerReject records the customer's rejection of a completed revision with
// a mandatory reason. Terminal for this revision; the order opens a fresh
// pending revision in response.
func (r *Revision) CustomerReject(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("rejection reason")
	}
	if err := r.transition(RevisionCompleted, RevisionCustomerRejected); err != nil {
		return err
	}
	r.rejectionReason = reason
	return nil
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
