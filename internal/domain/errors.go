package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrAccountLocked rejects withdrawals once a chargeback froze the client.
	ErrAccountLocked = errors.New("account is locked")

	// ErrTxNotFound signals a lifecycle action against an unknown transaction id.
	ErrTxNotFound = errors.New("transaction not found")
)

// InsufficientFundsError rejects an operation that would overdraw a bucket.
// Available carries the most the operation could have consumed, so a
// diagnostic can always name both sides of the shortfall.
type InsufficientFundsError struct {
	Available Amount
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: only %s present", e.Available)
}

// WrongStateError rejects a lifecycle transition that is not in the legal
// transition table for the transaction's current state.
type WrongStateError struct {
	Current TxState
}

func (e *WrongStateError) Error() string {
	return fmt.Sprintf("wrong state %s", e.Current)
}
