package delivery

import (
	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending means the delivery is planned and its stock is reserved,
	// but nothing has shipped.
	StatusPending

	// StatusInTransit means the supplier dispatched the delivery.
	StatusInTransit

	// StatusDelivered means the buyer received every line in full. Terminal.
	StatusDelivered

	// StatusPartiallyDelivered means the buyer received some lines short or
	// not at all.
	StatusPartiallyDelivered

	// StatusCancelled means the delivery was called off and its stock
	// returned to the pool. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:            "Unknown",
		StatusPending:            "Pending",
		StatusInTransit:          "InTransit",
		StatusDelivered:          "Delivered",
		StatusPartiallyDelivered: "PartiallyDelivered",
		StatusCancelled:          "Cancelled",
	}
}

// Validate checks that the status is one of the defined values.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusInTransit, StatusDelivered, StatusPartiallyDelivered, StatusCancelled:
		return nil
	default:
		return errs.NewValueIsInvalidError("delivery status")
	}
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// IsActive reports whether the delivery still has work in flight. Partially
// delivered counts as active because a follow-up confirmation may complete it.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusInTransit || s == StatusPartiallyDelivered
}

// CanTransitionTo reports whether moving from s to the target status is
// legal:
//
//	Pending            -> InTransit, Cancelled
//	InTransit          -> Delivered, PartiallyDelivered, Cancelled
//	PartiallyDelivered -> Delivered, Cancelled
//	Delivered          -> (none)
//	Cancelled          -> (none)
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusPending:
		return target == StatusInTransit || target == StatusCancelled
	case StatusInTransit:
		return target == StatusDelivered || target == StatusPartiallyDelivered || target == StatusCancelled
	case StatusPartiallyDelivered:
		return target == StatusDelivered || target == StatusCancelled
	default:
		return false
	}
}

// TransitionTo returns the target status if the move is legal, or an
// IllegalStateTransitionError otherwise.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(target) {
		return StatusUnknown, errs.NewIllegalStateTransitionError(s.String(), target.String())
	}
	return target, nil
}

// ItemStatus represents the receipt outcome of one delivery line.
type ItemStatus int

const (
	// ItemStatusUnknown represents an invalid or undefined status.
	ItemStatusUnknown ItemStatus = iota

	// ItemStatusPending means the line is awaiting receipt, or was only
	// partially received.
	ItemStatusPending

	// ItemStatusDelivered means the line was received in full.
	ItemStatusDelivered

	// ItemStatusRejected means the buyer received none of the line.
	ItemStatusRejected
)

func getItemStatusStrings() map[ItemStatus]string {
	return map[ItemStatus]string{
		ItemStatusUnknown:   "Unknown",
		ItemStatusPending:   "Pending",
		ItemStatusDelivered: "Delivered",
		ItemStatusRejected:  "Rejected",
	}
}

// Validate checks that the status is one of the defined values.
func (s ItemStatus) Validate() error {
	switch s {
	case ItemStatusPending, ItemStatusDelivered, ItemStatusRejected:
		return nil
	default:
		return errs.NewValueIsInvalidError("delivery item status")
	}
}

// String returns the human-readable name of the status.
func (s ItemStatus) String() string {
	if str, ok := getItemStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
