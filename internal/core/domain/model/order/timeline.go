package order

import (
	"time"

	"atelier/internal/pkg/errs"
)

// TimelineEntry is an append-only audit record of one accepted state-machine
// operation. Entries are never updated or deleted.
type TimelineEntry struct {
	step string
	at   time.Time
}

// RestoreTimelineEntry reconstructs a timeline entry from persistence.
func RestoreTimelineEntry(step string, at time.Time) (TimelineEntry, error) {
	if step == "" {
		return TimelineEntry{}, errs.NewValueIsRequiredError("timeline step")
	}
	return TimelineEntry{step: step, at: at}, nil
}

// Step returns the name of the recorded operation.
func (e TimelineEntry) Step() string { return e.step }

// At returns when the operation was accepted.
func (e TimelineEntry) At() time.Time { return e.at }
