package services

import (
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// BarcodeService is a domain service responsible for issuing and checking the
// handoff barcode printed on a package at pack-start.
//
// Key responsibilities:
//   - Generating a fresh, human-readable barcode per order
//   - Comparing a scanned value against the stored barcode
//
// Business rules:
//   - A barcode is generated exactly once, at pack-start
//   - Every later checkpoint compares against the stored value
//   - A mismatch aborts the checkpoint without modifying the order
//
// Example usage:
//
//	svc := NewBarcodeService()
//	barcode := svc.Generate(order.ID())
//	// later, at a checkpoint:
//	if err := svc.Verify(order, scannedValue); err != nil {
//	    // abort the operation, nothing was modified
//	    return err
//	}
type BarcodeService struct{}

// NewBarcodeService creates a new BarcodeService instance.
func NewBarcodeService() BarcodeService {
	return BarcodeService{}
}

// Generate mints a new handoff barcode for the given order. The value embeds
// a fresh random token rather than the order ID, so knowledge of an order's
// identifier is not enough to forge its barcode.
func (s BarcodeService) Generate(orderID kernel.UUID) string {
	token := kernel.NewUUID().Bytes()
	return fmt.Sprintf("PKG-%X%X%X", token[0:4], token[4:8], token[8:12])
}

// Verify compares the scanned value against the order's stored barcode.
// Surrounding whitespace on the scanned value is ignored; the comparison
// itself is exact.
//
// Returns:
//   - nil when the scanned value matches
//   - *errs.VerificationFailedError when the order has no barcode yet or the
//     values differ
func (s BarcodeService) Verify(o *order.Order, scanned string) error {
	if err := o.Validate(); err != nil {
		return err
	}

	stored := o.Barcode()
	if stored == "" {
		return errs.NewVerificationFailedError("verifyBarcode", o.ID().String())
	}
	if strings.TrimSpace(scanned) != stored {
		return errs.NewVerificationFailedError("verifyBarcode", o.ID().String())
	}
	return nil
}
