package domain

// Account is the per-client balance state. Funds live in four buckets:
//
//   - Available: freely withdrawable.
//   - Held: frozen by an active dispute on a settled deposit.
//   - HeldReserve: owed into Held once a deposit that was disputed before
//     its funds arrived actually lands (the funds were withdrawn before the
//     dispute was processed).
//   - Reserve: bookkeeping hold against a disputed withdrawal, pending
//     resolve or chargeback.
//
// The reported total is Available + Held + HeldReserve. Accounts are created
// lazily on first reference and never deleted. Every operation either fully
// applies or leaves the account untouched.
type Account struct {
	ID          uint16
	Available   Amount
	Held        Amount
	HeldReserve Amount
	Reserve     Amount
	Locked      bool
}

// NewAccount creates an empty, unlocked account for the given client.
func NewAccount(id uint16) *Account {
	return &Account{ID: id}
}

// Deposit credits amount to the account. Any outstanding HeldReserve backlog
// is satisfied first: that part of the deposit lands directly in Held, and
// only the remainder becomes Available.
func (a *Account) Deposit(amount Amount) {
	if remaining, leftover, ok := a.HeldReserve.Sub(amount); ok {
		a.HeldReserve = remaining
		a.Held = a.Held.Add(amount)
	} else {
		a.Held = a.Held.Add(a.HeldReserve)
		a.HeldReserve = Amount{}
		a.Available = a.Available.Add(leftover)
	}
}

// Withdraw debits amount from Available. A locked account always fails with
// ErrAccountLocked; insufficient funds fail with the current Available as
// the shortfall signal. Failures do not mutate.
func (a *Account) Withdraw(amount Amount) error {
	if a.Locked {
		return ErrAccountLocked
	}
	remaining, _, ok := a.Available.Sub(amount)
	if !ok {
		return &InsufficientFundsError{Available: a.Available}
	}
	a.Available = remaining
	return nil
}

// DisputeDeposit freezes the disputed deposit's amount. Whatever part of it
// is still Available moves to Held; the rest was already withdrawn, so the
// shortfall is recorded in HeldReserve to be satisfied by future deposits.
func (a *Account) DisputeDeposit(amount Amount) {
	if remaining, shortfall, ok := a.Available.Sub(amount); ok {
		a.Available = remaining
		a.Held = a.Held.Add(amount)
	} else {
		a.Held = a.Held.Add(a.Available)
		a.Available = Amount{}
		a.HeldReserve = a.HeldReserve.Add(shortfall)
	}
}

// DisputeWithdrawal records a tentative claim against a withdrawal that has
// already left the account. Only Reserve changes; the funds are gone until a
// chargeback reverses them.
func (a *Account) DisputeWithdrawal(amount Amount) {
	a.Reserve = a.Reserve.Add(amount)
}

// ResolveDeposit releases a disputed deposit. The HeldReserve backlog is
// relieved first; any remainder comes out of Held and returns to Available.
// If Held and HeldReserve together cannot cover amount the call fails with
// that combined total and nothing changes.
func (a *Account) ResolveDeposit(amount Amount) error {
	if remaining, shortfall, ok := a.HeldReserve.Sub(amount); ok {
		a.HeldReserve = remaining
		return nil
	} else if newHeld, _, ok := a.Held.Sub(shortfall); ok {
		a.HeldReserve = Amount{}
		a.Held = newHeld
		a.Available = a.Available.Add(shortfall)
		return nil
	}
	return &InsufficientFundsError{Available: a.Held.Add(a.HeldReserve)}
}

// ResolveWithdrawal drops the tentative claim against a disputed
// withdrawal. Fails with the current Reserve, without mutation, if the claim
// exceeds it.
func (a *Account) ResolveWithdrawal(amount Amount) error {
	remaining, _, ok := a.Reserve.Sub(amount)
	if !ok {
		return &InsufficientFundsError{Available: a.Reserve}
	}
	a.Reserve = remaining
	return nil
}

// ChargebackDeposit pulls a disputed deposit back out of the account. The
// account locks unconditionally, even when the relief fails. Relief order
// matches ResolveDeposit, but the freed funds are forfeited rather than
// returned to Available.
func (a *Account) ChargebackDeposit(amount Amount) error {
	a.Locked = true
	if remaining, shortfall, ok := a.HeldReserve.Sub(amount); ok {
		a.HeldReserve = remaining
		return nil
	} else if newHeld, _, ok := a.Held.Sub(shortfall); ok {
		a.HeldReserve = Amount{}
		a.Held = newHeld
		return nil
	}
	return &InsufficientFundsError{Available: a.Held.Add(a.HeldReserve)}
}

// ChargebackWithdrawal reverses a disputed withdrawal: the account locks
// unconditionally, the Reserve claim is consumed and the withdrawn amount
// returns to Available. Fails with the current Reserve if the claim exceeds
// it.
func (a *Account) ChargebackWithdrawal(amount Amount) error {
	a.Locked = true
	remaining, _, ok := a.Reserve.Sub(amount)
	if !ok {
		return &InsufficientFundsError{Available: a.Reserve}
	}
	a.Reserve = remaining
	a.Available = a.Available.Add(amount)
	return nil
}

// Total is the reported balance: Available plus everything frozen or owed
// by open deposit disputes.
func (a *Account) Total() Amount {
	return a.Available.Add(a.Held).Add(a.HeldReserve)
}

// HeldTotal is the publicly reported held figure, folding the reserve
// backlog into Held.
func (a *Account) HeldTotal() Amount {
	return a.Held.Add(a.HeldReserve)
}
