package tracking

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// LocationType classifies where a tracking event was observed along the
// fulfillment chain. It is a closed enum; any value outside the declared
// constants fails validation.
type LocationType int

const (
	// LocationTypeUnknown represents an invalid or undefined location type.
	// This value (0) helps catch uninitialized LocationType values.
	LocationTypeUnknown LocationType = iota

	// LocationTypeWarehouse marks events produced while the order is being
	// packed at the fulfillment warehouse.
	LocationTypeWarehouse

	// LocationTypeTransit marks events produced between the warehouse and the
	// delivery leg, for example at a regional hub.
	LocationTypeTransit

	// LocationTypeDelivery marks events produced while a rider is carrying
	// the order to the customer.
	LocationTypeDelivery

	// LocationTypeCustomer marks events produced at the customer's address,
	// i.e. the final handoff.
	LocationTypeCustomer
)

func getLocationTypeStrings() map[LocationType]string {
	return map[LocationType]string{
		LocationTypeUnknown:   "unknown",
		LocationTypeWarehouse: "warehouse",
		LocationTypeTransit:   "transit",
		LocationTypeDelivery:  "delivery",
		LocationTypeCustomer:  "customer",
	}
}

func getValidLocationTypeStrings() map[LocationType]string {
	//nolint:exhaustive // LocationTypeUnknown is intentionally excluded as it's invalid
	return map[LocationType]string{
		LocationTypeWarehouse: "warehouse",
		LocationTypeTransit:   "transit",
		LocationTypeDelivery:  "delivery",
		LocationTypeCustomer:  "customer",
	}
}

// Validate checks if the LocationType value is one of the declared constants.
// LocationTypeUnknown (0) and any other values are invalid.
func (lt LocationType) Validate() error {
	if _, ok := getValidLocationTypeStrings()[lt]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("locationType is invalid",
			fmt.Errorf("%d is not a valid location type", lt))
	}
	return nil
}

// String returns the wire name of the location type ("warehouse", "transit",
// "delivery", "customer"), or "unknown" for invalid values. This is the form
// persisted in the ledger and rendered to customers.
func (lt LocationType) String() string {
	if str, ok := getLocationTypeStrings()[lt]; ok {
		return str
	}
	return "unknown"
}

// LocationTypeFromString parses the wire name of a location type. Used when
// reconstructing events from persistence.
func LocationTypeFromString(s string) (LocationType, error) {
	for lt, str := range getValidLocationTypeStrings() {
		if str == s {
			return lt, nil
		}
	}
	return LocationTypeUnknown, errs.NewValueIsInvalidErrorWithCause("locationType is invalid",
		fmt.Errorf("%q is not a valid location type", s))
}
