package services

import (
	"errors"
	"fmt"
)

// Every failed operation returns exactly one of these. They signal state
// precondition violations, not transient faults; callers refresh their view
// of the order and re-decide instead of retrying blindly.
var (
	ErrEmptyCart         = errors.New("cart has no items")
	ErrNoTableSelected   = errors.New("no table selected")
	ErrOrderFrozen       = errors.New("order is printed and can no longer change")
	ErrInvalidTransition = errors.New("item status can only change while pending")
	ErrPaymentLocked     = errors.New("payment option is locked once the bill is printed")
	ErrNothingToBill     = errors.New("no accepted items to bill")
	ErrTableOccupied     = errors.New("table already has an open order")
	ErrUnknownItem       = errors.New("item does not belong to this order")
	ErrItemUnavailable   = errors.New("item is not orderable right now")
	ErrInvalidPayment    = errors.New("payment option must be CASH or ONLINE")
)

// ImmutableItemError reports which decided item an edit payload illegally
// referenced, so the waiter UI can point at the exact line.
type ImmutableItemError struct {
	ItemID string
}

func (e *ImmutableItemError) Error() string {
	return fmt.Sprintf("item %s was already decided and cannot be edited", e.ItemID)
}
