package orderrepo

import (
	"context"
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database, children included.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing order to the database under optimistic concurrency:
// the orders row is rewritten only if the stored version still matches the one
// the aggregate was loaded with, and the version is bumped in the same write.
// A lost race yields Conflict; a vanished row yields ObjectNotFound.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	loadedVersion := dto.Version
	dto.Version = loadedVersion + 1

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Select("*").
		Omit("created_at", clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&OrderDTO{}).
			Where("id = ?", dto.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order id", aggregate.ID().String())
		}
		return errs.NewConflictError("order", aggregate.ID().String(), loadedVersion)
	}

	return r.saveChildren(ctx, dto)
}

// saveChildren upserts the aggregate's child rows. Children are never deleted,
// only added or status-transitioned, so inserting with a conflict clause over
// the mutable columns covers every mutation. Timeline rows are append-only and
// keyed by (order_id, seq), so re-saving them is a no-op for existing entries.
func (r *GormOrderRepository) saveChildren(ctx context.Context, dto OrderDTO) error {
	db := r.db.WithContext(ctx)

	if len(dto.Timeline) > 0 {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto.Timeline).Error; err != nil {
			return err
		}
	}
	if len(dto.Revisions) > 0 {
		onConflict := clause.OnConflict{
			DoUpdates: clause.AssignmentColumns([]string{"status", "rejection_reason", "completion_notes"}),
		}
		if err := db.Clauses(onConflict).Create(&dto.Revisions).Error; err != nil {
			return err
		}
	}
	if len(dto.Milestones) > 0 {
		onConflict := clause.OnConflict{
			DoUpdates: clause.AssignmentColumns([]string{"paid", "paid_at", "payment_method", "transaction_id"}),
		}
		if err := db.Clauses(onConflict).Create(&dto.Milestones).Error; err != nil {
			return err
		}
	}
	if len(dto.Disputes) > 0 {
		onConflict := clause.OnConflict{
			DoUpdates: clause.AssignmentColumns([]string{"status", "resolution", "resolved_at"}),
		}
		if err := db.Clauses(onConflict).Create(&dto.Disputes).Error; err != nil {
			return err
		}
	}
	if len(dto.Alterations) > 0 {
		onConflict := clause.OnConflict{
			DoUpdates: clause.AssignmentColumns([]string{"status", "estimated_cost_cents", "estimated_time", "completed_at"}),
		}
		if err := db.Clauses(onConflict).Create(&dto.Alterations).Error; err != nil {
			return err
		}
	}
	if len(dto.Refunds) > 0 {
		onConflict := clause.OnConflict{
			DoUpdates: clause.AssignmentColumns([]string{"status", "transaction_id", "processed_at"}),
		}
		if err := db.Clauses(onConflict).Create(&dto.Refunds).Error; err != nil {
			return err
		}
	}

	return nil
}

// Get retrieves an order by ID with all its children, in stable order.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Timeline", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		Preload("Revisions", func(db *gorm.DB) *gorm.DB { return db.Order("sequence") }).
		Preload("Milestones", func(db *gorm.DB) *gorm.DB { return db.Order("due_date, created_at") }).
		Preload("Disputes", func(db *gorm.DB) *gorm.DB { return db.Order("created_at") }).
		Preload("Alterations", func(db *gorm.DB) *gorm.DB { return db.Order("created_at") }).
		Preload("Refunds", func(db *gorm.DB) *gorm.DB { return db.Order("created_at") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order id", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
