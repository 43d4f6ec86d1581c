package order

import (
	"fulfillment/internal/pkg/errs"
)

// ItemStatus represents the buyer's approval decision on one order line.
type ItemStatus int

const (
	// ItemStatusUnknown represents an invalid or undefined status.
	ItemStatusUnknown ItemStatus = iota

	// ItemStatusPending means the buyer has not decided on the line yet.
	ItemStatusPending

	// ItemStatusApproved means the buyer accepted the line.
	ItemStatusApproved

	// ItemStatusRejected means the buyer declined the line.
	ItemStatusRejected
)

func getItemStatusStrings() map[ItemStatus]string {
	return map[ItemStatus]string{
		ItemStatusUnknown:  "Unknown",
		ItemStatusPending:  "Pending",
		ItemStatusApproved: "Approved",
		ItemStatusRejected: "Rejected",
	}
}

// Validate checks that the status is one of the defined values.
func (s ItemStatus) Validate() error {
	if s != ItemStatusPending && s != ItemStatusApproved && s != ItemStatusRejected {
		return errs.NewValueIsInvalidError("item status")
	}
	return nil
}

// IsDecision reports whether the status is a decision a buyer may record
// (Approved or Rejected; Pending is the initial state, not a decision).
func (s ItemStatus) IsDecision() bool {
	return s == ItemStatusApproved || s == ItemStatusRejected
}

// String returns the human-readable name of the status.
func (s ItemStatus) String() string {
	if str, ok := getItemStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// OverallStatus is the aggregate approval state of an order. It is always
// derived from the item statuses, never persisted.
type OverallStatus int

const (
	// OverallStatusNotYet means no decision pattern has emerged: at least one
	// line is pending and none is approved.
	OverallStatusNotYet OverallStatus = iota + 1

	// OverallStatusRejected means every line was rejected.
	OverallStatusRejected

	// OverallStatusSomeApproved means at least one line is approved but not
	// all of them.
	OverallStatusSomeApproved

	// OverallStatusAllApproved means every line was approved.
	OverallStatusAllApproved
)

func getOverallStatusStrings() map[OverallStatus]string {
	return map[OverallStatus]string{
		OverallStatusNotYet:       "NotYet",
		OverallStatusRejected:     "Rejected",
		OverallStatusSomeApproved: "SomeApproved",
		OverallStatusAllApproved:  "AllApproved",
	}
}

// String returns the human-readable name of the status.
func (s OverallStatus) String() string {
	if str, ok := getOverallStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// HasApprovals reports whether the aggregate state triggers delivery
// creation: SomeApproved or AllApproved.
func (s OverallStatus) HasApprovals() bool {
	return s == OverallStatusSomeApproved || s == OverallStatusAllApproved
}

// DeriveOverallStatus computes the aggregate status from the item statuses.
// Pure function: given the same statuses it always yields the same result,
// so callers recompute it instead of trusting a stored value.
func DeriveOverallStatus(statuses []ItemStatus) OverallStatus {
	if len(statuses) == 0 {
		return OverallStatusNotYet
	}

	approved, rejected := 0, 0
	for _, s := range statuses {
		switch s {
		case ItemStatusApproved:
			approved++
		case ItemStatusRejected:
			rejected++
		}
	}

	switch {
	case rejected == len(statuses):
		return OverallStatusRejected
	case approved == len(statuses):
		return OverallStatusAllApproved
	case approved > 0:
		return OverallStatusSomeApproved
	default:
		return OverallStatusNotYet
	}
}
