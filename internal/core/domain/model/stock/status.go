package stock

import (
	"fulfillment/internal/pkg/errs"
)

// UnitStatus represents the lifecycle state of a single stock unit.
//
// State transitions:
//
//	Available ──> Reserved ──> InTransit ──> Delivered
//	                 │             │
//	                 └─────────────┴──> Available   (delivery cancelled)
//	                 │             │
//	                 └─────────────┴──> Delivered   (receipt confirmed)
//
// Delivered is terminal: ownership has passed to the destination company,
// which mints its own new units.
type UnitStatus int

const (
	// UnitStatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized UnitStatus values.
	UnitStatusUnknown UnitStatus = iota

	// UnitStatusAvailable means the unit sits in its company's free pool.
	UnitStatusAvailable

	// UnitStatusReserved means the unit is held for a delivery item that has
	// not been dispatched yet.
	UnitStatusReserved

	// UnitStatusInTransit means the unit left the supplier with a dispatched
	// delivery.
	UnitStatusInTransit

	// UnitStatusDelivered means the unit was handed over to the destination
	// company. Terminal.
	UnitStatusDelivered
)

func getUnitStatusStrings() map[UnitStatus]string {
	return map[UnitStatus]string{
		UnitStatusUnknown:   "Unknown",
		UnitStatusAvailable: "Available",
		UnitStatusReserved:  "Reserved",
		UnitStatusInTransit: "InTransit",
		UnitStatusDelivered: "Delivered",
	}
}

func getValidUnitStatusStrings() map[UnitStatus]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[UnitStatus]string{
		UnitStatusAvailable: "Available",
		UnitStatusReserved:  "Reserved",
		UnitStatusInTransit: "InTransit",
		UnitStatusDelivered: "Delivered",
	}
}

// Validate checks that the status is one of the defined lifecycle states.
func (s UnitStatus) Validate() error {
	if _, ok := getValidUnitStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("unit status",
			errs.NewValueIsOutOfRangeError("status", int(s), int(UnitStatusAvailable), int(UnitStatusDelivered)))
	}
	return nil
}

// String returns the human-readable name of the status. Implements
// fmt.Stringer and is safe on invalid values.
func (s UnitStatus) String() string {
	if str, ok := getUnitStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Reserve transitions the status to Reserved. Only Available units can be
// reserved.
func (s UnitStatus) Reserve() (UnitStatus, error) {
	if s != UnitStatusAvailable {
		return 0, errs.NewIllegalStateTransitionError(s.String(), UnitStatusReserved.String())
	}
	return UnitStatusReserved, nil
}

// Dispatch transitions the status to InTransit. Only Reserved units move
// with a dispatched delivery.
func (s UnitStatus) Dispatch() (UnitStatus, error) {
	if s != UnitStatusReserved {
		return 0, errs.NewIllegalStateTransitionError(s.String(), UnitStatusInTransit.String())
	}
	return UnitStatusInTransit, nil
}

// Deliver transitions the status to Delivered. Receipt confirmation retires
// both Reserved and InTransit units on the supplier side.
func (s UnitStatus) Deliver() (UnitStatus, error) {
	if s != UnitStatusReserved && s != UnitStatusInTransit {
		return 0, errs.NewIllegalStateTransitionError(s.String(), UnitStatusDelivered.String())
	}
	return UnitStatusDelivered, nil
}

// Release transitions the status back to Available when a delivery is
// cancelled. Legal from Reserved and InTransit only.
func (s UnitStatus) Release() (UnitStatus, error) {
	if s != UnitStatusReserved && s != UnitStatusInTransit {
		return 0, errs.NewIllegalStateTransitionError(s.String(), UnitStatusAvailable.String())
	}
	return UnitStatusAvailable, nil
}

// RequiresReservationLink reports whether a unit in this status must be
// linked to a delivery item. The link/status consistency invariant: linked
// if and only if Reserved or InTransit.
func (s UnitStatus) RequiresReservationLink() bool {
	return s == UnitStatusReserved || s == UnitStatusInTransit
}
