package guard_test

import (
	"errors"
	"testing"

	"fulfillment/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		guard := guard.NewConstructorGuard()

		// Then
		assert.NotNil(t, guard)

		// Test with custom error
		customError := errors.New("test object not constructed")
		require.NoError(t, guard.Validate(customError))

		// Test with nil error (should use default)
		require.NoError(t, guard.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		guard := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		// When
		err := guard.Validate(customError)

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var guard guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := guard.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// by the command objects in this module to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type scanInput struct {
		orderID string
		barcode string
		guard   guard.ConstructorGuard
	}

	var errScanInputNotConstructed = errors.New("scanInput must be created via newScanInput")

	newScanInput := func(orderID, barcode string) (scanInput, error) {
		if orderID == "" {
			return scanInput{}, errors.New("order ID is required")
		}
		if barcode == "" {
			return scanInput{}, errors.New("barcode is required")
		}
		return scanInput{
			orderID: orderID,
			barcode: barcode,
			guard:   guard.NewConstructorGuard(),
		}, nil
	}

	validateScanInput := func(s scanInput) error {
		return s.guard.Validate(errScanInputNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		scan, err := newScanInput("O1", "PKG-1234")

		// Then
		require.NoError(t, err)
		require.NoError(t, validateScanInput(scan))
		assert.Equal(t, "O1", scan.orderID)
		assert.Equal(t, "PKG-1234", scan.barcode)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		// Given
		var scan scanInput // zero value

		// When
		err := validateScanInput(scan)

		// Then
		// Zero value scanInput has zero value guard which returns the error we pass
		require.Error(t, err)
		assert.Equal(t, errScanInputNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		// Test missing order ID
		_, err := newScanInput("", "PKG-1234")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "order ID is required")

		// Test missing barcode
		_, err = newScanInput("O1", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "barcode is required")
	})
}

// TestConstructorGuardDefaultError verifies the default error behavior.
func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("nil_error_uses_default_for_zero_value", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		// Then
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Contains(t, guard.ErrDefaultConstructorGuard.Error(), "constructor")
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardConcurrency verifies that ConstructorGuard is safe for concurrent use.
func TestConstructorGuardConcurrency(t *testing.T) {
	guard := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 100 {
		go func() {
			for range 1000 {
				err := guard.Validate(validationError)
				assert.NoError(t, err)
			}
			done <- true
		}()
	}

	for range 100 {
		<-done
	}
}

// TestConstructorGuardImmutability verifies that ConstructorGuard is immutable.
func TestConstructorGuardImmutability(t *testing.T) {
	t.Run("guard_can_be_safely_passed_by_value", func(t *testing.T) {
		// Given
		guard := guard.NewConstructorGuard()
		testError := errors.New("test error")

		// When
		guardCopy := guard // Pass by value

		// Then
		require.NoError(t, guard.Validate(testError))
		require.NoError(t, guardCopy.Validate(testError))
	})
}
