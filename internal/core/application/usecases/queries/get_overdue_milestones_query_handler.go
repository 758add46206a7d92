package queries

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOverdueMilestonesQueryHandler reads overdue milestones straight from the
// database, bypassing aggregate hydration: the job only needs flat rows.
type GetOverdueMilestonesQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueMilestonesQueryHandler creates a handler for overdue milestone queries.
// Requires a GORM database connection for query execution.
func NewGetOverdueMilestonesQueryHandler(db *gorm.DB) GetOverdueMilestonesQueryHandler {
	return GetOverdueMilestonesQueryHandler{db: db}
}

// Handle executes the query. Milestones on cancelled orders are excluded:
// their payment plans are moot.
func (h GetOverdueMilestonesQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueMilestonesQuery,
) ([]GetOverdueMilestonesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	milestones := make([]GetOverdueMilestonesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_number,
			m.id,
			m.kind,
			m.amount_cents,
			m.due_date
		FROM payment_milestones m
		JOIN orders o ON o.id = m.order_id
		WHERE NOT m.paid
		  AND m.due_date < ?
		  AND o.status != ?
		ORDER BY m.due_date
	`, query.AsOf(), order.Cancelled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOverdueMilestonesQueryResponse
		var orderID, milestoneID uuid.UUID

		err = rows.Scan(
			&orderID,
			&resp.OrderNumber,
			&milestoneID,
			&resp.Kind,
			&resp.AmountCents,
			&resp.DueDate,
		)
		if err != nil {
			return nil, err
		}

		oid, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		mid, idErr := kernel.UUIDFromBytes(milestoneID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OrderID = oid.String()
		resp.MilestoneID = mid.String()
		milestones = append(milestones, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return milestones, nil
}
