package productrepo

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ ports.ProductRepository = (*GormProductRepository)(nil)

// GormProductRepository provides PostgreSQL-backed inventory persistence.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a repository bound to the given connection.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// DeductStock decrements the product's stock by quantity in a single guarded
// update. The guard keeps the row untouched when the stored level does not
// cover the deduction, so a zero row count means an understocked or unknown
// product rather than an error.
func (r *GormProductRepository) DeductStock(ctx context.Context, productID kernel.UUID, quantity int) (bool, error) {
	if quantity <= 0 {
		return false, errs.NewValueIsInvalidError("quantity")
	}

	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ? AND stock >= ?", productID.Bytes(), quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return false, fmt.Errorf("deduct stock for product %s: %w", productID, result.Error)
	}

	return result.RowsAffected > 0, nil
}

// RestoreStock increments the product's stock by quantity, creating the row
// when the product has no stock record yet.
func (r *GormProductRepository) RestoreStock(ctx context.Context, productID kernel.UUID, quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{"stock": gorm.Expr("products.stock + ?", quantity)}),
		}).
		Create(&ProductDTO{ID: productID.Bytes(), Stock: quantity})
	if result.Error != nil {
		return fmt.Errorf("restore stock for product %s: %w", productID, result.Error)
	}

	return nil
}

// GetStock returns the current stock level for the product.
func (r *GormProductRepository) GetStock(ctx context.Context, productID kernel.UUID) (int, error) {
	var dto ProductDTO
	result := r.db.WithContext(ctx).First(&dto, "id = ?", productID.Bytes())
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return 0, errs.NewObjectNotFoundError("product", productID)
		}
		return 0, fmt.Errorf("get stock for product %s: %w", productID, result.Error)
	}

	return dto.Stock, nil
}
