// Package productrepo implements the inventory repository using GORM and
// PostgreSQL. Stock writes are guarded at the SQL level so a deduction can
// never push a level below zero, whatever the callers are doing concurrently.
package productrepo

import (
	"github.com/google/uuid"
)

// ProductDTO is the database representation of a catalog product's stock row.
type ProductDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(255);not null"`
	Stock int       `gorm:"not null;default:0"`
}

// TableName specifies the database table name for GORM.
func (ProductDTO) TableName() string {
	return "products"
}
