package queries

import (
	"errors"
	"time"

	"atelier/internal/pkg/guard"
)

var ErrGetOverdueMilestonesQueryIsNotConstructed = errors.New(
	"GetOverdueMilestonesQuery must be created via NewGetOverdueMilestonesQuery constructor",
)

// GetOverdueMilestonesQuery retrieves unpaid milestones past their due date
// across all live orders. Used by the overdue payment job; overdue is a
// read-time property and nothing transitions on it.
type GetOverdueMilestonesQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewGetOverdueMilestonesQuery creates a query for milestones unpaid as of the
// given instant.
func NewGetOverdueMilestonesQuery(asOf time.Time) (GetOverdueMilestonesQuery, error) {
	if asOf.IsZero() {
		return GetOverdueMilestonesQuery{}, errors.New("as-of time is required")
	}

	return GetOverdueMilestonesQuery{
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOverdueMilestonesQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueMilestonesQueryIsNotConstructed)
}

// AsOf returns the instant overdue is evaluated against.
func (q GetOverdueMilestonesQuery) AsOf() time.Time { return q.asOf }

// GetOverdueMilestonesQueryResponse is one overdue milestone row.
type GetOverdueMilestonesQueryResponse struct {
	OrderID     string
	OrderNumber string
	MilestoneID string
	Kind        string
	AmountCents int64
	DueDate     time.Time
}
