// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. The order aggregate is stored across seven tables: the
// orders row plus one table per child collection, all loaded and saved
// together with the aggregate.
package orderrepo

import (
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber string    `gorm:"uniqueIndex"`
	CustomerID  uuid.UUID `gorm:"type:uuid;index"`
	FulfillerID uuid.UUID `gorm:"type:uuid;index"`

	Garment     string
	ServiceType string
	Quantity    int

	BasePriceCents         int64
	FabricCostCents        int64
	AdditionalChargesCents int64
	DiscountCents          int64
	TotalPriceCents        int64
	TotalPaidCents         int64

	Status             string `gorm:"index"`
	CancellationReason string

	Consultation     ConsultationDTO     `gorm:"embedded;embeddedPrefix:consultation_"`
	Delivery         DeliveryDTO         `gorm:"embedded;embeddedPrefix:delivery_"`
	EmergencyContact EmergencyContactDTO `gorm:"embedded;embeddedPrefix:emergency_"`

	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time

	Timeline    []TimelineEntryDTO `gorm:"foreignKey:OrderID"`
	Revisions   []RevisionDTO      `gorm:"foreignKey:OrderID"`
	Milestones  []MilestoneDTO     `gorm:"foreignKey:OrderID"`
	Disputes    []DisputeDTO       `gorm:"foreignKey:OrderID"`
	Alterations []AlterationDTO    `gorm:"foreignKey:OrderID"`
	Refunds     []RefundDTO        `gorm:"foreignKey:OrderID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ConsultationDTO is the embedded consultation block of the orders table.
type ConsultationDTO struct {
	ScheduledAt *time.Time
	Location    string
	Notes       string
}

// DeliveryDTO is the embedded delivery block of the orders table.
type DeliveryDTO struct {
	Address      string
	City         string
	PostalCode   string
	Phone        string
	Instructions string
}

// EmergencyContactDTO is the embedded emergency contact block of the orders table.
type EmergencyContactDTO struct {
	Name     string
	Phone    string
	Relation string
}

// TimelineEntryDTO is one append-only audit row. The (order_id, seq) key makes
// re-saving the aggregate's timeline idempotent.
type TimelineEntryDTO struct {
	OrderID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq     int       `gorm:"primaryKey"`
	Step    string
	At      time.Time
}

// TableName specifies the database table name for timeline entries.
func (TimelineEntryDTO) TableName() string {
	return "order_timeline"
}

// RevisionDTO represents a persisted revision request.
type RevisionDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID `gorm:"type:uuid;index"`
	Sequence        int
	Description     string
	Images          []string `gorm:"serializer:json;type:jsonb"`
	Status          string
	RequestedAt     time.Time
	RejectionReason string
	CompletionNotes string
}

// TableName specifies the database table name for revisions.
func (RevisionDTO) TableName() string {
	return "revisions"
}

// MilestoneDTO represents a persisted payment milestone.
type MilestoneDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	Kind          string
	AmountCents   int64
	DueDate       time.Time `gorm:"index"`
	Paid          bool
	PaidAt        *time.Time
	PaymentMethod string
	TransactionID string
	CreatedAt     time.Time
}

// TableName specifies the database table name for payment milestones.
func (MilestoneDTO) TableName() string {
	return "payment_milestones"
}

// DisputeDTO represents a persisted dispute.
type DisputeDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	Reason      string
	Description string
	Attachments []string `gorm:"serializer:json;type:jsonb"`
	RaisedBy    uuid.UUID `gorm:"type:uuid"`
	Status      string
	Resolution  string
	ResolvedAt  *time.Time
	CreatedAt   time.Time
}

// TableName specifies the database table name for disputes.
func (DisputeDTO) TableName() string {
	return "disputes"
}

// AlterationDTO represents a persisted alteration request.
type AlterationDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID            uuid.UUID `gorm:"type:uuid;index"`
	Description        string
	Urgency            string
	Status             string
	EstimatedCostCents int64
	EstimatedTime      string
	CompletedAt        *time.Time
	CreatedAt          time.Time
}

// TableName specifies the database table name for alteration requests.
func (AlterationDTO) TableName() string {
	return "alteration_requests"
}

// RefundDTO represents a persisted refund request.
type RefundDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID              uuid.UUID `gorm:"type:uuid;index"`
	Reason               string
	Description          string
	RequestedAmountCents int64
	Status               string
	TransactionID        string
	ProcessedAt          *time.Time
	CreatedAt            time.Time
}

// TableName specifies the database table name for refund requests.
func (RefundDTO) TableName() string {
	return "refund_requests"
}

// MigrateSchema creates or updates all order tables.
func MigrateSchema(db *gorm.DB) error {
	return db.AutoMigrate(
		&OrderDTO{},
		&TimelineEntryDTO{},
		&RevisionDTO{},
		&MilestoneDTO{},
		&DisputeDTO{},
		&AlterationDTO{},
		&RefundDTO{},
	)
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:          aggregate.ID().Bytes(),
		OrderNumber: aggregate.OrderNumber(),
		CustomerID:  aggregate.CustomerID().Bytes(),
		FulfillerID: aggregate.FulfillerID().Bytes(),

		Garment:     aggregate.Garment(),
		ServiceType: aggregate.ServiceType(),
		Quantity:    aggregate.Quantity(),

		BasePriceCents:         aggregate.BasePrice().Cents(),
		FabricCostCents:        aggregate.FabricCost().Cents(),
		AdditionalChargesCents: aggregate.AdditionalCharges().Cents(),
		DiscountCents:          aggregate.Discount().Cents(),
		TotalPriceCents:        aggregate.TotalPrice().Cents(),
		TotalPaidCents:         aggregate.TotalPaid().Cents(),

		Status:             aggregate.Status().String(),
		CancellationReason: aggregate.CancellationReason(),

		Consultation: ConsultationDTO{
			ScheduledAt: aggregate.Consultation().ScheduledAt,
			Location:    aggregate.Consultation().Location,
			Notes:       aggregate.Consultation().Notes,
		},
		Delivery: DeliveryDTO{
			Address:      aggregate.Delivery().Address,
			City:         aggregate.Delivery().City,
			PostalCode:   aggregate.Delivery().PostalCode,
			Phone:        aggregate.Delivery().Phone,
			Instructions: aggregate.Delivery().Instructions,
		},
		EmergencyContact: EmergencyContactDTO{
			Name:     aggregate.EmergencyContact().Name,
			Phone:    aggregate.EmergencyContact().Phone,
			Relation: aggregate.EmergencyContact().Relation,
		},

		Version:   aggregate.Version(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}

	orderID := dto.ID
	for i, e := range aggregate.Timeline() {
		dto.Timeline = append(dto.Timeline, TimelineEntryDTO{
			OrderID: orderID,
			Seq:     i + 1,
			Step:    e.Step(),
			At:      e.At(),
		})
	}
	for _, r := range aggregate.Revisions() {
		dto.Revisions = append(dto.Revisions, RevisionDTO{
			ID:              r.ID().Bytes(),
			OrderID:         orderID,
			Sequence:        r.Sequence(),
			Description:     r.Description(),
			Images:          r.Images(),
			Status:          r.Status().String(),
			RequestedAt:     r.RequestedAt(),
			RejectionReason: r.RejectionReason(),
			CompletionNotes: r.CompletionNotes(),
		})
	}
	for _, m := range aggregate.Milestones() {
		dto.Milestones = append(dto.Milestones, MilestoneDTO{
			ID:            m.ID().Bytes(),
			OrderID:       orderID,
			Kind:          m.Kind().String(),
			AmountCents:   m.Amount().Cents(),
			DueDate:       m.DueDate(),
			Paid:          m.Paid(),
			PaidAt:        m.PaidAt(),
			PaymentMethod: m.PaymentMethod(),
			TransactionID: m.TransactionID(),
		})
	}
	for _, d := range aggregate.Disputes() {
		dto.Disputes = append(dto.Disputes, DisputeDTO{
			ID:          d.ID().Bytes(),
			OrderID:     orderID,
			Reason:      d.Reason(),
			Description: d.Description(),
			Attachments: d.Attachments(),
			RaisedBy:    d.RaisedBy().Bytes(),
			Status:      d.Status().String(),
			Resolution:  d.Resolution(),
			ResolvedAt:  d.ResolvedAt(),
		})
	}
	for _, a := range aggregate.Alterations() {
		dto.Alterations = append(dto.Alterations, AlterationDTO{
			ID:                 a.ID().Bytes(),
			OrderID:            orderID,
			Description:        a.Description(),
			Urgency:            a.Urgency().String(),
			Status:             a.Status().String(),
			EstimatedCostCents: a.EstimatedCost().Cents(),
			EstimatedTime:      a.EstimatedTime(),
			CompletedAt:        a.CompletedAt(),
		})
	}
	for _, r := range aggregate.Refunds() {
		dto.Refunds = append(dto.Refunds, RefundDTO{
			ID:                   r.ID().Bytes(),
			OrderID:              orderID,
			Reason:               r.Reason(),
			Description:          r.Description(),
			RequestedAmountCents: r.RequestedAmount().Cents(),
			Status:               r.Status().String(),
			TransactionID:        r.TransactionID(),
			ProcessedAt:          r.ProcessedAt(),
		})
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate using the
// Restore constructors, so stored state is still validated on the way in.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	fulfillerID, err := kernel.UUIDFromBytes(dto.FulfillerID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	snapshot := order.OrderSnapshot{
		ID:          id,
		OrderNumber: dto.OrderNumber,
		CustomerID:  customerID,
		FulfillerID: fulfillerID,

		Garment:     dto.Garment,
		ServiceType: dto.ServiceType,
		Quantity:    dto.Quantity,

		BasePrice:         kernel.NewMoney(dto.BasePriceCents),
		FabricCost:        kernel.NewMoney(dto.FabricCostCents),
		AdditionalCharges: kernel.NewMoney(dto.AdditionalChargesCents),
		Discount:          kernel.NewMoney(dto.DiscountCents),
		TotalPrice:        kernel.NewMoney(dto.TotalPriceCents),
		TotalPaid:         kernel.NewMoney(dto.TotalPaidCents),

		Status:             status,
		CancellationReason: dto.CancellationReason,

		Consultation: order.Consultation{
			ScheduledAt: dto.Consultation.ScheduledAt,
			Location:    dto.Consultation.Location,
			Notes:       dto.Consultation.Notes,
		},
		Delivery: order.DeliveryDetails{
			Address:      dto.Delivery.Address,
			City:         dto.Delivery.City,
			PostalCode:   dto.Delivery.PostalCode,
			Phone:        dto.Delivery.Phone,
			Instructions: dto.Delivery.Instructions,
		},
		EmergencyContact: order.EmergencyContact{
			Name:     dto.EmergencyContact.Name,
			Phone:    dto.EmergencyContact.Phone,
			Relation: dto.EmergencyContact.Relation,
		},

		Version:   dto.Version,
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	}

	for _, e := range dto.Timeline {
		entry, entryErr := order.RestoreTimelineEntry(e.Step, e.At)
		if entryErr != nil {
			return nil, entryErr
		}
		snapshot.Timeline = append(snapshot.Timeline, entry)
	}

	for _, r := range dto.Revisions {
		revID, idErr := kernel.UUIDFromBytes(r.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		revStatus, stErr := order.RevisionStatusFromString(r.Status)
		if stErr != nil {
			return nil, stErr
		}
		rev, revErr := order.RestoreRevision(revID, r.Sequence, r.Description, r.Images,
			revStatus, r.RequestedAt, r.RejectionReason, r.CompletionNotes)
		if revErr != nil {
			return nil, revErr
		}
		snapshot.Revisions = append(snapshot.Revisions, rev)
	}

	for _, m := range dto.Milestones {
		mID, idErr := kernel.UUIDFromBytes(m.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		kind, kindErr := order.MilestoneKindFromString(m.Kind)
		if kindErr != nil {
			return nil, kindErr
		}
		milestone, mErr := order.RestorePaymentMilestone(mID, kind, kernel.NewMoney(m.AmountCents),
			m.DueDate, m.Paid, m.PaidAt, m.PaymentMethod, m.TransactionID)
		if mErr != nil {
			return nil, mErr
		}
		snapshot.Milestones = append(snapshot.Milestones, milestone)
	}

	for _, d := range dto.Disputes {
		dID, idErr := kernel.UUIDFromBytes(d.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		raisedBy, rbErr := kernel.UUIDFromBytes(d.RaisedBy[:])
		if rbErr != nil {
			return nil, rbErr
		}
		disputeStatus, stErr := order.DisputeStatusFromString(d.Status)
		if stErr != nil {
			return nil, stErr
		}
		dispute, dErr := order.RestoreDispute(dID, raisedBy, d.Reason, d.Description,
			d.Attachments, disputeStatus, d.Resolution, d.ResolvedAt)
		if dErr != nil {
			return nil, dErr
		}
		snapshot.Disputes = append(snapshot.Disputes, dispute)
	}

	for _, a := range dto.Alterations {
		aID, idErr := kernel.UUIDFromBytes(a.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		urgency, uErr := order.UrgencyFromString(a.Urgency)
		if uErr != nil {
			return nil, uErr
		}
		altStatus, stErr := order.AlterationStatusFromString(a.Status)
		if stErr != nil {
			return nil, stErr
		}
		alt, aErr := order.RestoreAlterationRequest(aID, a.Description, urgency, altStatus,
			kernel.NewMoney(a.EstimatedCostCents), a.EstimatedTime, a.CompletedAt)
		if aErr != nil {
			return nil, aErr
		}
		snapshot.Alterations = append(snapshot.Alterations, alt)
	}

	for _, r := range dto.Refunds {
		rID, idErr := kernel.UUIDFromBytes(r.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		refundStatus, stErr := order.RefundStatusFromString(r.Status)
		if stErr != nil {
			return nil, stErr
		}
		refund, rErr := order.RestoreRefundRequest(rID, r.Reason, r.Description,
			kernel.NewMoney(r.RequestedAmountCents), refundStatus, r.TransactionID, r.ProcessedAt)
		if rErr != nil {
			return nil, rErr
		}
		snapshot.Refunds = append(snapshot.Refunds, refund)
	}

	return order.RestoreOrder(snapshot)
}
