package usecase

import (
	"github.com/iho/payengine/internal/domain"
)

// TransactionStore keeps every disputable transaction together with its
// lifecycle state. Implementations may decorate a base store (for example
// with a recently-used cache) as long as operation outcomes are unchanged.
type TransactionStore interface {
	// Store records t in state committed. An existing record with the same
	// id is silently overwritten.
	Store(t domain.Transaction)

	// Access is a non-mutating read of the record and its current state.
	Access(id uint32) (domain.Transaction, domain.TxState, bool)

	// Update atomically transitions the record to state and returns a copy
	// of it. Illegal transitions fail with domain.WrongStateError and leave
	// the stored state untouched; unknown ids fail with domain.ErrTxNotFound.
	Update(id uint32, state domain.TxState) (domain.Transaction, error)
}
