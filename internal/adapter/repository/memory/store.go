// Package memory provides the in-memory transaction store and its
// recently-used cache decorator. One run's transactions all fit in memory;
// nothing survives the process.
package memory

import (
	"github.com/iho/payengine/internal/domain"
)

type entry struct {
	record domain.Transaction
	state  domain.TxState
}

// Store is the in-memory implementation of usecase.TransactionStore, keyed
// by transaction id.
type Store struct {
	entries map[uint32]entry
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{entries: make(map[uint32]entry)}
}

// legalTransitions is the lifecycle transition table. Disputed is reachable
// from Resolved and ChargedBack so a failed account-level resolve or
// chargeback can be rolled back and retried later.
var legalTransitions = map[domain.TxState]map[domain.TxState]bool{
	domain.StateCommitted: {
		domain.StateDisputed: true,
	},
	domain.StateDisputed: {
		domain.StateResolved:    true,
		domain.StateChargedBack: true,
	},
	domain.StateResolved: {
		domain.StateCommitted: true,
		domain.StateDisputed:  true,
	},
	domain.StateChargedBack: {
		domain.StateChargedBackFinal: true,
		domain.StateDisputed:         true,
	},
	domain.StateChargedBackFinal: {},
}

// Store records t in state committed. A record already stored under the
// same id is overwritten; ids are assumed globally unique in the input.
func (s *Store) Store(t domain.Transaction) {
	s.entries[t.ID] = entry{record: t, state: domain.StateCommitted}
}

// Access returns the record and state for id without mutating anything.
func (s *Store) Access(id uint32) (domain.Transaction, domain.TxState, bool) {
	e, ok := s.entries[id]
	if !ok {
		return domain.Transaction{}, 0, false
	}
	return e.record, e.state, true
}

// Update transitions the record for id to state. The stored state changes
// only when the transition is legal; failures report the current state (or
// that the id is unknown) and leave the entry untouched.
func (s *Store) Update(id uint32, state domain.TxState) (domain.Transaction, error) {
	e, ok := s.entries[id]
	if !ok {
		return domain.Transaction{}, domain.ErrTxNotFound
	}
	if !legalTransitions[e.state][state] {
		return domain.Transaction{}, &domain.WrongStateError{Current: e.state}
	}
	e.state = state
	s.entries[id] = e
	return e.record, nil
}
