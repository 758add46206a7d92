package order_test

import (
	"errors"
	"testing"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type parties struct {
	customer  kernel.Actor
	fulfiller kernel.Actor
	admin     kernel.Actor
	stranger  kernel.Actor
}

func newParties(t *testing.T) parties {
	t.Helper()

	customer, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleCustomer)
	require.NoError(t, err)
	fulfiller, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleFulfiller)
	require.NoError(t, err)
	admin, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleAdmin)
	require.NoError(t, err)
	// Claims the customer role but is neither party of the order.
	stranger, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleCustomer)
	require.NoError(t, err)

	return parties{customer: customer, fulfiller: fulfiller, admin: admin, stranger: stranger}
}

func newTestOrder(t *testing.T, p parties) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(), "ORD-1001",
		p.customer.ID(), p.fulfiller.ID(),
		"three-piece suit", "bespoke", 1,
		kernel.NewMoney(50000), kernel.NewMoney(12550), kernel.NewMoney(2000), kernel.NewMoney(500),
	)
	require.NoError(t, err)
	return o
}

// advanceTo drives the fulfiller through the happy path until the order
// reaches the wanted status.
func advanceTo(t *testing.T, o *order.Order, p parties, target order.Status) {
	t.Helper()

	path := []order.Status{
		order.ConsultationScheduled,
		order.ConsultationCompleted,
		order.FabricSelected,
		order.InProgress,
		order.QualityCheck,
		order.Completed,
	}
	for _, s := range path {
		if o.Status() == target {
			return
		}
		require.NoError(t, o.AdvanceStatus(p.fulfiller, s, ""))
	}
	require.Equal(t, target, o.Status())
}

func TestNewOrder(t *testing.T) {
	p := newParties(t)

	t.Run("should create pending order with derived total", func(t *testing.T) {
		o := newTestOrder(t, p)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "ORD-1001", o.OrderNumber())
		// 50000*1 + 12550 + 2000 - 500
		assert.Equal(t, int64(64050), o.TotalPrice().Cents())
		assert.True(t, o.TotalPaid().IsZero())
		assert.Equal(t, 1, o.Version())

		timeline := o.Timeline()
		require.Len(t, timeline, 1)
		assert.Equal(t, "pending", timeline[0].Step())
	})

	t.Run("should multiply base price by quantity", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), "ORD-1002",
			p.customer.ID(), p.fulfiller.ID(),
			"shirt", "made_to_measure", 3,
			kernel.NewMoney(8000), kernel.NewMoney(0), kernel.NewMoney(0), kernel.NewMoney(0),
		)

		require.NoError(t, err)
		assert.Equal(t, int64(24000), o.TotalPrice().Cents())
	})

	t.Run("should fail when discount drives the total negative", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), "ORD-1003",
			p.customer.ID(), p.fulfiller.ID(),
			"shirt", "made_to_measure", 1,
			kernel.NewMoney(8000), kernel.NewMoney(0), kernel.NewMoney(0), kernel.NewMoney(9000),
		)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.True(t, errors.Is(err, errs.ErrValueIsOutOfRange))
	})

	t.Run("should fail with invalid customer UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(
			kernel.NewUUID(), "ORD-1004",
			invalidID, p.fulfiller.ID(),
			"shirt", "made_to_measure", 1,
			kernel.NewMoney(8000), kernel.NewMoney(0), kernel.NewMoney(0), kernel.NewMoney(0),
		)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "customer id")
	})

	t.Run("should fail when fulfiller equals customer", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), "ORD-1005",
			p.customer.ID(), p.customer.ID(),
			"shirt", "made_to_measure", 1,
			kernel.NewMoney(8000), kernel.NewMoney(0), kernel.NewMoney(0), kernel.NewMoney(0),
		)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), "ORD-1006",
			p.customer.ID(), p.fulfiller.ID(),
			"shirt", "made_to_measure", 0,
			kernel.NewMoney(8000), kernel.NewMoney(0), kernel.NewMoney(0), kernel.NewMoney(0),
		)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with missing garment", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), "ORD-1007",
			p.customer.ID(), p.fulfiller.ID(),
			"", "made_to_measure", 1,
			kernel.NewMoney(8000), kernel.NewMoney(0), kernel.NewMoney(0), kernel.NewMoney(0),
		)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
	})
}

func TestAdvanceStatus(t *testing.T) {
	t.Run("should walk the full happy path and audit every step", func(t *testing.T) {
		p := newParties(t)
		o := newTestOrder(t, p)

		advanceTo(t, o, p, order.Completed)

		assert.Equal(t, order.Completed, o.Status())

		steps := make([]string, 0)
		for _, e := range o.Timeline() {
			steps = append(steps, e.Step())
		}
		assert.Equal(t, []string{
			"pending",
			"consultation_scheduled",
			"consultation_completed",
			"fabric_selected",
			"in_progress",
			"quality_check",
			"completed",
		}, steps)
	})

	t.Run("should refuse skipping a stage", func(t *testing.T) {
		p := newParties(t)
		o := newTestOrder(t, p)

		err := o.AdvanceStatus(p.fulfiller, order.InProgress, "")

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrInvalidTransition))
		assert.Equal(t, order.Pending, o.Status())
		assert.Len(t, o.Timeline(), 1)
	})

	t.Run("should refuse customer advancing the status", func(t *testing.T) {
		p := newParties(t)
		o := newTestOrder(t, p)

		err := o.AdvanceStatus(p.customer, order.ConsultationScheduled, "")

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrUnauthorized))
	})

	t.Run("should refuse admin advancing the status", func(t *testing.T) {
		p := newParties(t)
		o := newTestOrder(t, p)

		err := o.AdvanceStatus(p.admin, order.ConsultationScheduled, "")

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrUnauthorized))
	})

	t.Run("should refuse an impostor claiming the fulfiller role", func(t *testing.T) {
		p := newParties(t)
		o := newTestOrder(t, p)
		impostor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleFulfiller)
		require.NoError(t, err)

		err = o.AdvanceStatus(impostor, order.ConsultationScheduled, "")

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrUnauthorized))
	})
}

func TestCancellation(t *testing.T) {
	t.Run("should allow customer to cancel with a reason", func(t *testing.T) {
		p := newParties(t)
		o := newTestOrder(t, p)

		err := o.AdvanceStatus(p.customer, order.Cancelled, "found another tailor")

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, "found another tailor", o.CancellationReason())
		assert.Equal(t, "cancelled", o.Timeline()[len(o.Timeline())-1].Step())
	})

	t.Run("should allow fulfiller to cancel with a reason", func(t *testing.T) {
		p := newParties(t)
		o := newTestOrder(t, p)
		advanceTo(t, o, p, order.FabricSelected)

		err := o.AdvanceStatus(p.fulfiller, order.Cancelled, "fabric discontinued")

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should require a cancellation reason", func(t *testing.T) {
		p := newParties(t)
		o := newTestOrder(t, p)

		err := o.AdvanceStatus(p.customer, order.Cancelled, "")

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should refuse cancelling once work started", func(t *testing.T) {
		p := newParties(t)
		o := newTestOrder(t, p)
		advanceTo(t, o, p, order.InProgress)

		err := o.AdvanceStatus(p.customer, order.Cancelled, "changed my mind")

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrInvalidTransition))
		assert.Equal(t, order.InProgress, o.Status())
	})

	t.Run("should refuse a stranger cancelling", func(t *testing.T) {
		p := newParties(t)
		o := newTestOrder(t, p)

		err := o.AdvanceStatus(p.stranger, order.Cancelled, "not my order")

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrUnauthorized))
	})
}

func TestContactUpdates(t *testing.T) {
	t.Run("should let customer update delivery without a timeline entry", func(t *testing.T) {
		p := newParties(t)
		o := newTestOrder(t, p)
		before := len(o.Timeline())

		err := o.UpdateDelivery(p.customer, order.DeliveryDetails{
			Address: "12 Savile Row", City: "London", PostalCode: "W1S 3PQ", Phone: "+44 20 7946 0000",
		})

		require.NoError(t, err)
		assert.Equal(t, "12 Savile Row", o.Delivery().Address)
		assert.Len(t, o.Timeline(), before)
	})

	t.Run("should let admin update the emergency contact", func(t *testing.T) {
		p := newParties(t)
		o := newTestOrder(t, p)

		err := o.UpdateEmergencyContact(p.admin, order.EmergencyContact{
			Name: "Ada", Phone: "+44 20 7946 0001", Relation: "sibling",
		})

		require.NoError(t, err)
		assert.Equal(t, "Ada", o.EmergencyContact().Name)
	})

	t.Run("should refuse fulfiller updating contact details", func(t *testing.T) {
		p := newParties(t)
		o := newTestOrder(t, p)

		err := o.UpdateEmergencyContact(p.fulfiller, order.EmergencyContact{Name: "Ada"})

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrUnauthorized))
	})

	t.Run("should let customer update the consultation", func(t *testing.T) {
		p := newParties(t)
		o := newTestOrder(t, p)

		err := o.UpdateConsultation(p.customer, order.Consultation{
			Location: "atelier", Notes: "bring fabric samples",
		})

		require.NoError(t, err)
		assert.Equal(t, "atelier", o.Consultation().Location)
	})
}

func TestRestoreOrder(t *testing.T) {
	p := newParties(t)

	t.Run("should round-trip through a snapshot", func(t *testing.T) {
		o := newTestOrder(t, p)
		advanceTo(t, o, p, order.InProgress)

		restored, err := order.RestoreOrder(order.OrderSnapshot{
			ID:                o.ID(),
			OrderNumber:       o.OrderNumber(),
			CustomerID:        o.CustomerID(),
			FulfillerID:       o.FulfillerID(),
			Garment:           o.Garment(),
			ServiceType:       o.ServiceType(),
			Quantity:          o.Quantity(),
			BasePrice:         o.BasePrice(),
			FabricCost:        o.FabricCost(),
			AdditionalCharges: o.AdditionalCharges(),
			Discount:          o.Discount(),
			TotalPrice:        o.TotalPrice(),
			TotalPaid:         o.TotalPaid(),
			Status:            o.Status(),
			Timeline:          o.Timeline(),
			Version:           4,
			CreatedAt:         o.CreatedAt(),
			UpdatedAt:         o.UpdatedAt(),
		})

		require.NoError(t, err)
		assert.Equal(t, order.InProgress, restored.Status())
		assert.Equal(t, 4, restored.Version())
		assert.Len(t, restored.Timeline(), len(o.Timeline()))
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(order.OrderSnapshot{
			ID:          kernel.NewUUID(),
			CustomerID:  p.customer.ID(),
			FulfillerID: p.fulfiller.ID(),
			Status:      order.Unknown,
		})

		require.Error(t, err)
	})
}
