package orderrepo

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
//
// Status changes go through a conditional single-row update: the WHERE
// clause restates the status the caller read, so of N concurrent requests
// racing on one order exactly one matches the row and wins. The losers get
// *errs.PreconditionFailedError without having written anything.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves all orders in a non-terminal status, oldest first.
func (r *GormOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status NOT IN ?", []int{int(order.Delivered), int(order.Cancelled)}).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllInStatus retrieves all orders currently in the given status.
func (r *GormOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", int(status)).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// TransitionStatus persists the aggregate's status and tracking document on
// the condition that the stored row still carries the from status. Zero
// matched rows means another request moved the order first; the caller's
// aggregate is stale and must be discarded.
//
// The assignment column is written only by the transitions that own it:
// starting a delivery sets the rider, cancelling releases it. Every other
// transition leaves the column alone, so a rider assigned between the
// caller's read and this write is not silently reverted. The tracking
// document itself still rides the read aggregate; concurrent
// document-touching writers stay serialized by the status condition alone.
func (r *GormOrderRepository) TransitionStatus(ctx context.Context, aggregate *order.Order, from order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := from.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	updates := map[string]any{
		"status":     dto.Status,
		"tracking":   dto.Tracking,
		"updated_at": time.Now().UTC(),
	}
	if aggregate.Status() == order.OutForDelivery || aggregate.Status() == order.Cancelled {
		updates["assigned_to"] = dto.AssignedTo
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(from)).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewPreconditionFailedError("transitionStatus",
			aggregate.ID().String(), from.String())
	}

	return nil
}

// UpdateAssignedRider persists only the rider assignment. The write is
// conditional on the order not having reached a terminal status, and leaves
// the status and tracking columns untouched so it can never clobber a
// concurrent transition.
func (r *GormOrderRepository) UpdateAssignedRider(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status NOT IN ?", dto.ID, []int{int(order.Delivered), int(order.Cancelled)}).
		Updates(map[string]any{
			"assigned_to": dto.AssignedTo,
			"updated_at":  time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewPreconditionFailedError("assignRider",
			aggregate.ID().String(), "non-terminal")
	}

	return nil
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}
	return orders, nil
}
