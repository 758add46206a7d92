package order

import (
	"fmt"
	"slices"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

// Consultation holds the appointment details agreed between the parties.
type Consultation struct {
	ScheduledAt *time.Time
	Location    string
	Notes       string
}

// DeliveryDetails holds where and how the finished garment is handed over.
type DeliveryDetails struct {
	Address      string
	City         string
	PostalCode   string
	Phone        string
	Instructions string
}

// EmergencyContact is the customer's fallback contact. It is personal data:
// read models redact it from the fulfiller.
type EmergencyContact struct {
	Name     string
	Phone    string
	Relation string
}

// Order is the aggregate root of the fulfillment engine. It owns the primary
// status machine, the payment plan, and every revision, dispute, alteration,
// and refund raised against it. All mutations go through the aggregate so the
// authorization and transition rules cannot be bypassed; child entities are
// never addressed outside their order.
//
// Concurrency is optimistic: version is bumped by the repository on every
// successful update, and a stale write fails with a Conflict error instead of
// silently overwriting.
type Order struct {
	id          kernel.UUID
	orderNumber string
	customerID  kernel.UUID
	fulfillerID kernel.UUID

	garment     string
	serviceType string
	quantity    int

	basePrice         kernel.Money
	fabricCost        kernel.Money
	additionalCharges kernel.Money
	discount          kernel.Money
	totalPrice        kernel.Money
	totalPaid         kernel.Money

	status             Status
	cancellationReason string

	consultation     Consultation
	delivery         DeliveryDetails
	emergencyContact EmergencyContact

	timeline    []TimelineEntry
	revisions   []*Revision
	milestones  []*PaymentMilestone
	disputes    []*Dispute
	alterations []*AlterationRequest
	refunds     []*RefundRequest

	version   int
	createdAt time.Time
	updatedAt time.Time
}

// NewOrder creates an order in the pending status and records the first
// timeline entry. The total price is derived from the pricing components and
// never accepted from the caller:
//
//	totalPrice = basePrice*quantity + fabricCost + additionalCharges - discount
//
// A pricing combination that drives the total below zero is rejected.
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	customerID, fulfillerID kernel.UUID,
	garment, serviceType string,
	quantity int,
	basePrice, fabricCost, additionalCharges, discount kernel.Money,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if orderNumber == "" {
		return nil, errs.NewValueIsRequiredError("order number")
	}
	if err := customerID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	if err := fulfillerID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("fulfiller id", err)
	}
	if customerID.IsEqual(fulfillerID) {
		return nil, errs.NewValueIsInvalidError("fulfiller id must differ from customer id")
	}
	if garment == "" {
		return nil, errs.NewValueIsRequiredError("garment")
	}
	if serviceType == "" {
		return nil, errs.NewValueIsRequiredError("service type")
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if err := basePrice.ValidatePositive("base price"); err != nil {
		return nil, err
	}
	if err := fabricCost.ValidateNonNegative("fabric cost"); err != nil {
		return nil, err
	}
	if err := additionalCharges.ValidateNonNegative("additional charges"); err != nil {
		return nil, err
	}
	if err := discount.ValidateNonNegative("discount"); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	o := &Order{
		id:                id,
		orderNumber:       orderNumber,
		customerID:        customerID,
		fulfillerID:       fulfillerID,
		garment:           garment,
		serviceType:       serviceType,
		quantity:          quantity,
		basePrice:         basePrice,
		fabricCost:        fabricCost,
		additionalCharges: additionalCharges,
		discount:          discount,
		status:            Pending,
		version:           1,
		createdAt:         now,
		updatedAt:         now,
	}
	if err := o.recomputeTotal(); err != nil {
		return nil, err
	}
	o.appendTimeline(Pending.String())
	return o, nil
}

// OrderSnapshot is the flat persisted state of an order, used by RestoreOrder.
type OrderSnapshot struct {
	ID          kernel.UUID
	OrderNumber string
	CustomerID  kernel.UUID
	FulfillerID kernel.UUID

	Garment     string
	ServiceType string
	Quantity    int

	BasePrice         kernel.Money
	FabricCost        kernel.Money
	AdditionalCharges kernel.Money
	Discount          kernel.Money
	TotalPrice        kernel.Money
	TotalPaid         kernel.Money

	Status             Status
	CancellationReason string

	Consultation     Consultation
	Delivery         DeliveryDetails
	EmergencyContact EmergencyContact

	Timeline    []TimelineEntry
	Revisions   []*Revision
	Milestones  []*PaymentMilestone
	Disputes    []*Dispute
	Alterations []*AlterationRequest
	Refunds     []*RefundRequest

	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RestoreOrder reconstructs an order from persistence without re-running
// creation-time rules.
func RestoreOrder(s OrderSnapshot) (*Order, error) {
	if err := s.ID.Validate(); err != nil {
		return nil, err
	}
	if err := s.CustomerID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	if err := s.FulfillerID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("fulfiller id", err)
	}
	if err := s.Status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:                 s.ID,
		orderNumber:        s.OrderNumber,
		customerID:         s.CustomerID,
		fulfillerID:        s.FulfillerID,
		garment:            s.Garment,
		serviceType:        s.ServiceType,
		quantity:           s.Quantity,
		basePrice:          s.BasePrice,
		fabricCost:         s.FabricCost,
		additionalCharges:  s.AdditionalCharges,
		discount:           s.Discount,
		totalPrice:         s.TotalPrice,
		totalPaid:          s.TotalPaid,
		status:             s.Status,
		cancellationReason: s.CancellationReason,
		consultation:       s.Consultation,
		delivery:           s.Delivery,
		emergencyContact:   s.EmergencyContact,
		timeline:           slices.Clone(s.Timeline),
		revisions:          slices.Clone(s.Revisions),
		milestones:         slices.Clone(s.Milestones),
		disputes:           slices.Clone(s.Disputes),
		alterations:        slices.Clone(s.Alterations),
		refunds:            slices.Clone(s.Refunds),
		version:            s.Version,
		createdAt:          s.CreatedAt,
		updatedAt:          s.UpdatedAt,
	}, nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// OrderNumber returns the human-readable order reference.
func (o *Order) OrderNumber() string { return o.orderNumber }

// CustomerID returns the identity of the ordering party.
func (o *Order) CustomerID() kernel.UUID { return o.customerID }

// FulfillerID returns the identity of the fulfilling tailor.
func (o *Order) FulfillerID() kernel.UUID { return o.fulfillerID }

// Garment returns what is being made.
func (o *Order) Garment() string { return o.garment }

// ServiceType returns the kind of tailoring service ordered.
func (o *Order) ServiceType() string { return o.serviceType }

// Quantity returns how many garments the order covers.
func (o *Order) Quantity() int { return o.quantity }

// BasePrice returns the per-unit price component.
func (o *Order) BasePrice() kernel.Money { return o.basePrice }

// FabricCost returns the fabric price component.
func (o *Order) FabricCost() kernel.Money { return o.fabricCost }

// AdditionalCharges returns the extra charges component.
func (o *Order) AdditionalCharges() kernel.Money { return o.additionalCharges }

// Discount returns the discount component.
func (o *Order) Discount() kernel.Money { return o.discount }

// TotalPrice returns the derived order total.
func (o *Order) TotalPrice() kernel.Money { return o.totalPrice }

// TotalPaid returns the sum of all settled milestone amounts.
func (o *Order) TotalPaid() kernel.Money { return o.totalPaid }

// Status returns the primary fulfillment status.
func (o *Order) Status() Status { return o.status }

// CancellationReason returns the reason recorded when the order was cancelled.
func (o *Order) CancellationReason() string { return o.cancellationReason }

// Consultation returns the appointment details.
func (o *Order) Consultation() Consultation { return o.consultation }

// Delivery returns the delivery details.
func (o *Order) Delivery() DeliveryDetails { return o.delivery }

// EmergencyContact returns the customer's fallback contact.
func (o *Order) EmergencyContact() EmergencyContact { return o.emergencyContact }

// Timeline returns the append-only audit log of accepted operations.
func (o *Order) Timeline() []TimelineEntry { return slices.Clone(o.timeline) }

// Revisions returns the order's revisions in request order.
func (o *Order) Revisions() []*Revision { return slices.Clone(o.revisions) }

// Milestones returns the order's payment plan.
func (o *Order) Milestones() []*PaymentMilestone { return slices.Clone(o.milestones) }

// Disputes returns the disputes raised against the order.
func (o *Order) Disputes() []*Dispute { return slices.Clone(o.disputes) }

// Alterations returns the alteration requests raised against the order.
func (o *Order) Alterations() []*AlterationRequest { return slices.Clone(o.alterations) }

// Refunds returns the refund requests raised against the order.
func (o *Order) Refunds() []*RefundRequest { return slices.Clone(o.refunds) }

// Version returns the optimistic concurrency version as loaded.
func (o *Order) Version() int { return o.version }

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns when the order last absorbed a mutation.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// Validate checks the aggregate's structural invariants.
func (o *Order) Validate() error {
	if err := o.id.Validate(); err != nil {
		return err
	}
	if err := o.customerID.Validate(); err != nil {
		return err
	}
	if err := o.fulfillerID.Validate(); err != nil {
		return err
	}
	return o.status.Validate()
}

func (o *Order) recomputeTotal() error {
	total := o.basePrice.MulInt(o.quantity).
		Add(o.fabricCost).
		Add(o.additionalCharges).
		Sub(o.discount)
	if total.IsNegative() {
		return errs.NewValueIsOutOfRangeError("total price", total.String(), "0.00", nil)
	}
	o.totalPrice = total
	return nil
}

func (o *Order) appendTimeline(step string) {
	now := time.Now().UTC()
	o.timeline = append(o.timeline, TimelineEntry{step: step, at: now})
	o.updatedAt = now
}

// authorize verifies that the actor genuinely is one of the order's parties
// (or an administrator) and that their role is allowed to run the operation.
// A role claim whose identity does not match the corresponding order party is
// rejected regardless of the allowed set.
func (o *Order) authorize(actor kernel.Actor, operation string, allowed ...kernel.Role) error {
	denied := errs.NewUnauthorizedError(operation,
		fmt.Sprintf("%s %s", actor.Role(), actor.ID()))

	switch actor.Role() {
	case kernel.RoleAdmin:
		// Admins are not order parties; their identity needs no match.
	case kernel.RoleCustomer:
		if !actor.ID().IsEqual(o.customerID) {
			return denied
		}
	case kernel.RoleFulfiller:
		if !actor.ID().IsEqual(o.fulfillerID) {
			return denied
		}
	default:
		return denied
	}

	if !slices.Contains(allowed, actor.Role()) {
		return denied
	}
	return nil
}

// AdvanceStatus moves the primary status to target per the transition table.
// Cancellation may be requested by either party and requires a reason; every
// other target is the fulfiller's call.
func (o *Order) AdvanceStatus(actor kernel.Actor, target Status, reason string) error {
	if target == Cancelled {
		if err := o.authorize(actor, "cancel the order",
			kernel.RoleCustomer, kernel.RoleFulfiller); err != nil {
			return err
		}
		if reason == "" {
			return errs.NewValueIsRequiredError("cancellation reason")
		}
	} else {
		if err := o.authorize(actor, "advance the order status",
			kernel.RoleFulfiller); err != nil {
			return err
		}
	}

	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}
	o.status = next
	if target == Cancelled {
		o.cancellationReason = reason
	}
	o.appendTimeline(target.String())
	return nil
}

// UpdateConsultation replaces the appointment details. Customer or admin;
// no timeline entry is written for plain field updates.
func (o *Order) UpdateConsultation(actor kernel.Actor, c Consultation) error {
	if err := o.authorize(actor, "update the consultation",
		kernel.RoleCustomer, kernel.RoleAdmin); err != nil {
		return err
	}
	o.consultation = c
	o.updatedAt = time.Now().UTC()
	return nil
}

// UpdateDelivery replaces the delivery details. Customer or admin.
func (o *Order) UpdateDelivery(actor kernel.Actor, d DeliveryDetails) error {
	if err := o.authorize(actor, "update the delivery details",
		kernel.RoleCustomer, kernel.RoleAdmin); err != nil {
		return err
	}
	o.delivery = d
	o.updatedAt = time.Now().UTC()
	return nil
}

// UpdateEmergencyContact replaces the fallback contact. Customer or admin.
func (o *Order) UpdateEmergencyContact(actor kernel.Actor, c EmergencyContact) error {
	if err := o.authorize(actor, "update the emergency contact",
		kernel.RoleCustomer, kernel.RoleAdmin); err != nil {
		return err
	}
	o.emergencyContact = c
	o.updatedAt = time.Now().UTC()
	return nil
}

// OpenRevision raises a new revision request and parks the primary status in
// revision_requested. Only the customer may open revisions, and only while the
// order is in progress or under quality check.
func (o *Order) OpenRevision(actor kernel.Actor, id kernel.UUID, description string, images []string) error {
	if err := o.authorize(actor, "open a revision", kernel.RoleCustomer); err != nil {
		return err
	}
	if o.status != InProgress && o.status != QualityCheck {
		return errs.NewInvalidTransitionError("order", o.status.String(), RevisionRequested.String())
	}

	rev, err := newRevision(id, len(o.revisions)+1, description, images)
	if err != nil {
		return err
	}

	next, err := o.status.TransitionTo(RevisionRequested)
	if err != nil {
		return err
	}
	o.revisions = append(o.revisions, rev)
	o.status = next
	o.appendTimeline(RevisionRequested.String())
	return nil
}

// ApproveRevision records the fulfiller's acceptance of a pending revision.
func (o *Order) ApproveRevision(actor kernel.Actor, revisionID kernel.UUID) error {
	if err := o.authorize(actor, "approve a revision", kernel.RoleFulfiller); err != nil {
		return err
	}
	rev, err := o.findRevision(revisionID)
	if err != nil {
		return err
	}
	if err := rev.Approve(); err != nil {
		return err
	}
	o.appendTimeline("revision_approved")
	return nil
}

// RejectRevision records the fulfiller's refusal of a pending revision and
// resumes work: a parked primary status returns to in_progress.
func (o *Order) RejectRevision(actor kernel.Actor, revisionID kernel.UUID, reason string) error {
	if err := o.authorize(actor, "reject a revision", kernel.RoleFulfiller); err != nil {
		return err
	}
	rev, err := o.findRevision(revisionID)
	if err != nil {
		return err
	}
	if err := rev.Reject(reason); err != nil {
		return err
	}
	if o.status == RevisionRequested {
		o.status = InProgress
	}
	o.appendTimeline("revision_rejected")
	return nil
}

// StartRevision moves an approved revision to in_progress and returns the
// primary status from revision_requested to in_progress.
func (o *Order) StartRevision(actor kernel.Actor, revisionID kernel.UUID) error {
	if err := o.authorize(actor, "start a revision", kernel.RoleFulfiller); err != nil {
		return err
	}
	rev, err := o.findRevision(revisionID)
	if err != nil {
		return err
	}
	if err := rev.Start(); err != nil {
		return err
	}
	if o.status == RevisionRequested {
		o.status = InProgress
	}
	o.appendTimeline("revision_started")
	return nil
}

// CompleteRevision records the fulfiller finishing an in_progress revision.
// The revision then awaits the customer's verdict.
func (o *Order) CompleteRevision(actor kernel.Actor, revisionID kernel.UUID, notes string) error {
	if err := o.authorize(actor, "complete a revision", kernel.RoleFulfiller); err != nil {
		return err
	}
	rev, err := o.findRevision(revisionID)
	if err != nil {
		return err
	}
	if err := rev.Complete(notes); err != nil {
		return err
	}
	o.appendTimeline("revision_completed")
	return nil
}

// CustomerApproveRevision records the customer accepting a completed revision.
func (o *Order) CustomerApproveRevision(actor kernel.Actor, revisionID kernel.UUID) error {
	if err := o.authorize(actor, "approve a revision result", kernel.RoleCustomer); err != nil {
		return err
	}
	rev, err := o.findRevision(revisionID)
	if err != nil {
		return err
	}
	if err := rev.CustomerApprove(); err != nil {
		return err
	}
	o.appendTimeline("revision_customer_approved")
	return nil
}

// CustomerRejectRevision records the customer rejecting a completed revision.
// A fresh pending revision carrying the rejection reason is opened in its
// place, and the primary status parks in revision_requested again when legal.
func (o *Order) CustomerRejectRevision(actor kernel.Actor, revisionID, nextRevisionID kernel.UUID, reason string) error {
	if err := o.authorize(actor, "reject a revision result", kernel.RoleCustomer); err != nil {
		return err
	}
	rev, err := o.findRevision(revisionID)
	if err != nil {
		return err
	}
	if err := rev.CustomerReject(reason); err != nil {
		return err
	}

	next, err := newRevision(nextRevisionID, len(o.revisions)+1, reason, nil)
	if err != nil {
		return err
	}
	o.revisions = append(o.revisions, next)
	if o.status.CanTransitionTo(RevisionRequested) {
		o.status = RevisionRequested
	}
	o.appendTimeline("revision_customer_rejected")
	return nil
}

// AddMilestone schedules a new partial payment. Either party (or an admin)
// may extend the payment plan on a live order.
func (o *Order) AddMilestone(actor kernel.Actor, id kernel.UUID, kind MilestoneKind, amount kernel.Money, dueDate time.Time, paymentMethod string) error {
	if err := o.authorize(actor, "add a payment milestone",
		kernel.RoleCustomer, kernel.RoleFulfiller, kernel.RoleAdmin); err != nil {
		return err
	}
	if o.status == Cancelled {
		return errs.NewInvalidTransitionError("order", o.status.String(), "milestone_added")
	}

	m, err := newPaymentMilestone(id, kind, amount, dueDate, paymentMethod)
	if err != nil {
		return err
	}
	o.milestones = append(o.milestones, m)
	o.appendTimeline("milestone_added")
	return nil
}

// MarkMilestonePaid settles a milestone and adds its amount to the order's
// running total paid. Settling the same milestone twice fails with
// AlreadyProcessed and leaves the total untouched.
func (o *Order) MarkMilestonePaid(actor kernel.Actor, milestoneID kernel.UUID, transactionID string) error {
	if err := o.authorize(actor, "mark a milestone paid",
		kernel.RoleCustomer, kernel.RoleFulfiller, kernel.RoleAdmin); err != nil {
		return err
	}
	m, err := o.findMilestone(milestoneID)
	if err != nil {
		return err
	}
	if err := m.MarkPaid(transactionID); err != nil {
		return err
	}
	o.totalPaid = o.totalPaid.Add(m.Amount())
	o.appendTimeline("payment_received")
	return nil
}

// OpenDispute raises a dispute. Either party may dispute any live order;
// cancelled orders are closed to new disputes.
func (o *Order) OpenDispute(actor kernel.Actor, id kernel.UUID, reason, description string, attachments []string) error {
	if err := o.authorize(actor, "open a dispute",
		kernel.RoleCustomer, kernel.RoleFulfiller); err != nil {
		return err
	}
	if o.status == Cancelled {
		return errs.NewInvalidTransitionError("order", o.status.String(), "dispute_opened")
	}

	d, err := newDispute(id, actor.ID(), reason, description, attachments)
	if err != nil {
		return err
	}
	o.disputes = append(o.disputes, d)
	o.appendTimeline("dispute_opened")
	return nil
}

// ResolveDispute closes a dispute as resolved or rejected. Any party or an
// admin may attempt it; the dispute itself refuses its raiser.
func (o *Order) ResolveDispute(actor kernel.Actor, disputeID kernel.UUID, target DisputeStatus, resolution string) error {
	if err := o.authorize(actor, "resolve a dispute",
		kernel.RoleCustomer, kernel.RoleFulfiller, kernel.RoleAdmin); err != nil {
		return err
	}
	d, err := o.findDispute(disputeID)
	if err != nil {
		return err
	}
	if err := d.Resolve(actor.ID(), target, resolution); err != nil {
		return err
	}
	switch target {
	case DisputeResolved:
		o.appendTimeline("dispute_resolved")
	case DisputeRejected:
		o.appendTimeline("dispute_rejected")
	}
	return nil
}

// RequestAlteration raises a post-production change request. Only the customer
// may request alterations, and only once the garment exists: in progress,
// under revision, under quality check, or completed.
func (o *Order) RequestAlteration(actor kernel.Actor, id kernel.UUID, description string, urgency Urgency) error {
	if err := o.authorize(actor, "request an alteration", kernel.RoleCustomer); err != nil {
		return err
	}
	switch o.status {
	case InProgress, RevisionRequested, QualityCheck, Completed:
	default:
		return errs.NewInvalidTransitionError("order", o.status.String(), "alteration_requested")
	}

	a, err := newAlterationRequest(id, description, urgency)
	if err != nil {
		return err
	}
	o.alterations = append(o.alterations, a)
	o.appendTimeline("alteration_requested")
	return nil
}

// ReviewAlteration moves an alteration through its machine. Approval carries
// the fulfiller's mandatory cost and time estimates; the other targets ignore
// them.
func (o *Order) ReviewAlteration(actor kernel.Actor, alterationID kernel.UUID, target AlterationStatus, estimatedCost kernel.Money, estimatedTime string) error {
	if err := o.authorize(actor, "review an alteration", kernel.RoleFulfiller); err != nil {
		return err
	}
	a, err := o.findAlteration(alterationID)
	if err != nil {
		return err
	}

	switch target {
	case AlterationApproved:
		err = a.Approve(estimatedCost, estimatedTime)
	case AlterationRejected:
		err = a.Reject()
	case AlterationInProgress:
		err = a.Start()
	case AlterationCompleted:
		err = a.Complete()
	default:
		return errs.NewInvalidTransitionError("alteration", a.Status().String(), target.String())
	}
	if err != nil {
		return err
	}
	o.appendTimeline("alteration_" + target.String())
	return nil
}

// RequestRefund raises a refund claim bounded by the outstanding balance:
// the requested amount may not exceed totalPrice - totalPaid.
func (o *Order) RequestRefund(actor kernel.Actor, id kernel.UUID, reason, description string, amount kernel.Money) error {
	if err := o.authorize(actor, "request a refund", kernel.RoleCustomer); err != nil {
		return err
	}

	balance := o.totalPrice.Sub(o.totalPaid)
	if amount.GreaterThan(balance) {
		return errs.NewValueIsOutOfRangeError("requested amount",
			amount.String(), "0.01", balance.String())
	}

	r, err := newRefundRequest(id, reason, description, amount)
	if err != nil {
		return err
	}
	o.refunds = append(o.refunds, r)
	o.appendTimeline("refund_requested")
	return nil
}

// ProcessRefund closes a refund request as approved or rejected. The claim is
// against the fulfiller, so only the fulfiller or an admin may process it.
func (o *Order) ProcessRefund(actor kernel.Actor, refundID kernel.UUID, target RefundStatus, transactionID string) error {
	if err := o.authorize(actor, "process a refund",
		kernel.RoleFulfiller, kernel.RoleAdmin); err != nil {
		return err
	}
	r, err := o.findRefund(refundID)
	if err != nil {
		return err
	}
	if err := r.Process(target, transactionID); err != nil {
		return err
	}
	switch target {
	case RefundApproved:
		o.appendTimeline("refund_approved")
	case RefundRejected:
		o.appendTimeline("refund_rejected")
	}
	return nil
}

func (o *Order) findRevision(id kernel.UUID) (*Revision, error) {
	for _, r := range o.revisions {
		if r.ID().IsEqual(id) {
			return r, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("revision id", id.String())
}

func (o *Order) findMilestone(id kernel.UUID) (*PaymentMilestone, error) {
	for _, m := range o.milestones {
		if m.ID().IsEqual(id) {
			return m, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("milestone id", id.String())
}

func (o *Order) findDispute(id kernel.UUID) (*Dispute, error) {
	for _, d := range o.disputes {
		if d.ID().IsEqual(id) {
			return d, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("dispute id", id.String())
}

func (o *Order) findAlteration(id kernel.UUID) (*AlterationRequest, error) {
	for _, a := range o.alterations {
		if a.ID().IsEqual(id) {
			return a, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("alteration id", id.String())
}

func (o *Order) findRefund(id kernel.UUID) (*RefundRequest, error) {
	for _, r := range o.refunds {
		if r.ID().IsEqual(id) {
			return r, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("refund id", id.String())
}
