// Package services provides domain services that implement business logic
// which doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - BarcodeService: issues and checks the package handoff barcode
//   - HubResolver: maps a delivery address onto its regional hub
//   - EtaEstimator: produces the coarse per-stage delivery estimate
//
// Domain services are stateless; handlers construct them once in the
// composition root and share them freely.
package services
