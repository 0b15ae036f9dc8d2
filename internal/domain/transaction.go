package domain

// TxKind distinguishes the two disputable transaction kinds.
type TxKind int

const (
	KindDeposit TxKind = iota
	KindWithdrawal
)

func (k TxKind) String() string {
	switch k {
	case KindDeposit:
		return "deposit"
	case KindWithdrawal:
		return "withdrawal"
	default:
		return "unknown"
	}
}

// Transaction is a disputable transaction record: a deposit or withdrawal
// that was successfully applied to an account. Rejected withdrawals are
// never recorded and therefore can never be disputed.
type Transaction struct {
	ID       uint32
	ClientID uint16
	Kind     TxKind
	Amount   Amount
}

// TxState is the lifecycle state of a stored transaction.
type TxState int

const (
	StateCommitted TxState = iota
	StateDisputed
	StateResolved
	StateChargedBack
	StateChargedBackFinal
)

func (s TxState) String() string {
	switch s {
	case StateCommitted:
		return "committed"
	case StateDisputed:
		return "disputed"
	case StateResolved:
		return "resolved"
	case StateChargedBack:
		return "charged_back"
	case StateChargedBackFinal:
		return "charged_back_final"
	default:
		return "unknown"
	}
}

// EventType is the kind of an incoming event record.
type EventType int

const (
	EventDeposit EventType = iota
	EventWithdrawal
	EventDispute
	EventResolve
	EventChargeback
)

func (t EventType) String() string {
	switch t {
	case EventDeposit:
		return "deposit"
	case EventWithdrawal:
		return "withdrawal"
	case EventDispute:
		return "dispute"
	case EventResolve:
		return "resolve"
	case EventChargeback:
		return "chargeback"
	default:
		return "unknown"
	}
}

// Event is one record from the input stream. Amount is meaningful only for
// deposit and withdrawal events; lifecycle events ignore it.
type Event struct {
	Type     EventType
	ClientID uint16
	TxID     uint32
	Amount   Amount
}
