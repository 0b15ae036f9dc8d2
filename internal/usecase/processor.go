package usecase

import (
	"errors"
	"sort"

	"github.com/rs/zerolog"

	"github.com/iho/payengine/internal/domain"
	"github.com/iho/payengine/internal/infrastructure/metrics"
)

// Processor drives the event stream against the account map and the
// transaction store. It is strictly sequential: one event at a time, in
// input order, touching exactly one account and at most one stored
// transaction per event. Business-rule failures are logged and never abort
// the stream.
type Processor struct {
	accounts map[uint16]*domain.Account
	store    TransactionStore
	logger   zerolog.Logger
	metrics  *metrics.Metrics
}

// NewProcessor creates a Processor with an empty account map.
func NewProcessor(store TransactionStore, logger zerolog.Logger, m *metrics.Metrics) *Processor {
	return &Processor{
		accounts: make(map[uint16]*domain.Account),
		store:    store,
		logger:   logger,
		metrics:  m,
	}
}

// Process applies one event. The relevant account is created on first
// reference; dispute/resolve/chargeback act on the account named by the
// event's client id.
func (p *Processor) Process(ev domain.Event) {
	account := p.account(ev.ClientID)

	switch ev.Type {
	case domain.EventDeposit:
		p.deposit(account, ev)
	case domain.EventWithdrawal:
		p.withdraw(account, ev)
	case domain.EventDispute:
		p.dispute(account, ev)
	case domain.EventResolve:
		p.resolve(account, ev)
	case domain.EventChargeback:
		p.chargeback(account, ev)
	}
}

// Accounts returns a snapshot of all known accounts sorted by client id.
func (p *Processor) Accounts() []*domain.Account {
	accounts := make([]*domain.Account, 0, len(p.accounts))
	for _, account := range p.accounts {
		accounts = append(accounts, account)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts
}

func (p *Processor) account(clientID uint16) *domain.Account {
	account, ok := p.accounts[clientID]
	if !ok {
		account = domain.NewAccount(clientID)
		p.accounts[clientID] = account
		if p.metrics != nil {
			p.metrics.AccountsCreated.Inc()
		}
	}
	return account
}

func (p *Processor) deposit(account *domain.Account, ev domain.Event) {
	account.Deposit(ev.Amount)
	p.store.Store(domain.Transaction{
		ID:       ev.TxID,
		ClientID: ev.ClientID,
		Kind:     domain.KindDeposit,
		Amount:   ev.Amount,
	})
	p.processed(domain.EventDeposit)
}

func (p *Processor) withdraw(account *domain.Account, ev domain.Event) {
	err := account.Withdraw(ev.Amount)
	if err == nil {
		// Only applied withdrawals are recorded; a rejected one can never
		// be disputed.
		p.store.Store(domain.Transaction{
			ID:       ev.TxID,
			ClientID: ev.ClientID,
			Kind:     domain.KindWithdrawal,
			Amount:   ev.Amount,
		})
		p.processed(domain.EventWithdrawal)
		return
	}

	var insufficient *domain.InsufficientFundsError
	switch {
	case errors.Is(err, domain.ErrAccountLocked):
		p.rejected(metrics.ReasonAccountLocked)
		p.eventLog(ev).Msgf("failed to withdraw %s: client frozen", ev.Amount)
	case errors.As(err, &insufficient):
		p.rejected(metrics.ReasonInsufficientFunds)
		p.eventLog(ev).
			Stringer("available", insufficient.Available).
			Msgf("failed to withdraw %s: insufficient funds", ev.Amount)
	}
}

func (p *Processor) dispute(account *domain.Account, ev domain.Event) {
	record, err := p.store.Update(ev.TxID, domain.StateDisputed)
	if err != nil {
		p.lifecycleFailure(ev, "dispute", err)
		return
	}
	switch record.Kind {
	case domain.KindDeposit:
		account.DisputeDeposit(record.Amount)
	case domain.KindWithdrawal:
		account.DisputeWithdrawal(record.Amount)
	}
	p.processed(domain.EventDispute)
}

func (p *Processor) resolve(account *domain.Account, ev domain.Event) {
	record, err := p.store.Update(ev.TxID, domain.StateResolved)
	if err != nil {
		p.lifecycleFailure(ev, "resolve", err)
		return
	}

	switch record.Kind {
	case domain.KindDeposit:
		err = account.ResolveDeposit(record.Amount)
	case domain.KindWithdrawal:
		err = account.ResolveWithdrawal(record.Amount)
	}

	if err == nil {
		// A resolved transaction becomes indistinguishable from a fresh
		// commit and can be disputed again.
		if _, err := p.store.Update(ev.TxID, domain.StateCommitted); err != nil {
			p.eventLog(ev).Err(err).Msg("failed to commit resolved transaction")
		}
		p.processed(domain.EventResolve)
		return
	}

	p.rejected(metrics.ReasonInsufficientFunds)
	var insufficient *domain.InsufficientFundsError
	if errors.As(err, &insufficient) {
		p.eventLog(ev).
			Stringer("requested", record.Amount).
			Stringer("resolvable", insufficient.Available).
			Msg("failed to resolve transaction: insufficient held funds")
	}
	if _, err := p.store.Update(ev.TxID, domain.StateDisputed); err != nil {
		p.eventLog(ev).Err(err).Msg("failed to roll back resolve")
	}
}

func (p *Processor) chargeback(account *domain.Account, ev domain.Event) {
	record, err := p.store.Update(ev.TxID, domain.StateChargedBack)
	if err != nil {
		p.lifecycleFailure(ev, "chargeback", err)
		return
	}

	switch record.Kind {
	case domain.KindDeposit:
		err = account.ChargebackDeposit(record.Amount)
	case domain.KindWithdrawal:
		err = account.ChargebackWithdrawal(record.Amount)
	}

	if err == nil {
		if _, err := p.store.Update(ev.TxID, domain.StateChargedBackFinal); err != nil {
			p.eventLog(ev).Err(err).Msg("failed to finalize chargeback")
		}
		p.processed(domain.EventChargeback)
		return
	}

	p.rejected(metrics.ReasonInsufficientFunds)
	var insufficient *domain.InsufficientFundsError
	if errors.As(err, &insufficient) {
		p.eventLog(ev).
			Stringer("requested", record.Amount).
			Stringer("chargeable", insufficient.Available).
			Msg("failed to charge back transaction: insufficient held funds")
	}
	if _, err := p.store.Update(ev.TxID, domain.StateDisputed); err != nil {
		p.eventLog(ev).Err(err).Msg("failed to roll back chargeback")
	}
}

func (p *Processor) lifecycleFailure(ev domain.Event, action string, err error) {
	var wrongState *domain.WrongStateError
	switch {
	case errors.Is(err, domain.ErrTxNotFound):
		p.rejected(metrics.ReasonNotFound)
		p.eventLog(ev).Msgf("failed to %s transaction: not found", action)
	case errors.As(err, &wrongState):
		p.rejected(metrics.ReasonWrongState)
		p.eventLog(ev).
			Stringer("state", wrongState.Current).
			Msgf("failed to %s transaction: wrong state", action)
	default:
		p.eventLog(ev).Err(err).Msgf("failed to %s transaction", action)
	}
}

func (p *Processor) eventLog(ev domain.Event) *zerolog.Event {
	return p.logger.Warn().
		Uint32("tx", ev.TxID).
		Uint16("client", ev.ClientID)
}

func (p *Processor) processed(t domain.EventType) {
	if p.metrics != nil {
		p.metrics.EventsProcessed.WithLabelValues(t.String()).Inc()
	}
}

func (p *Processor) rejected(reason string) {
	if p.metrics != nil {
		p.metrics.EventsRejected.WithLabelValues(reason).Inc()
	}
}
