package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// ProductRepository defines the inventory contract used when packing
// completes. Stock for a packed order is deducted exactly once, guarded at
// the storage level so a level never goes negative.
type ProductRepository interface {
	// DeductStock atomically decrements the product's stock by quantity,
	// but only while the stored level covers it. Returns false, without an
	// error, when the product is understocked or unknown; the caller treats
	// that as a skipped line, not a failure.
	DeductStock(ctx context.Context, productID kernel.UUID, quantity int) (bool, error)

	// RestoreStock increments the product's stock by quantity. Compensation
	// for a failed order creation only; once packing has started the
	// deduction stands, even if the order is later cancelled.
	RestoreStock(ctx context.Context, productID kernel.UUID, quantity int) error

	// GetStock returns the current stock level for the product.
	// Returns *errs.ObjectNotFoundError when no such product exists.
	GetStock(ctx context.Context, productID kernel.UUID) (int, error)
}
