// Package csvio reads the event stream and writes the final report as CSV.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iho/payengine/internal/domain"
)

// RowError describes a single unusable input record. The stream stays
// readable past it; callers log and skip.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("record on line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// Reader streams events out of a CSV document with a
// `type, client, tx, amount` header. Columns are located by header name,
// every field is whitespace-trimmed, and the amount column may be absent or
// empty for lifecycle events.
type Reader struct {
	csv     *csv.Reader
	columns map[string]int
	line    int
}

// NewReader creates a Reader and consumes the header record.
func NewReader(r io.Reader) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"type", "client", "tx"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("read header: missing %q column", required)
		}
	}

	return &Reader{csv: cr, columns: columns, line: 1}, nil
}

// Next returns the next event. It returns io.EOF at the end of the stream
// and a *RowError for a malformed record; only the latter leaves the stream
// readable.
func (r *Reader) Next() (domain.Event, error) {
	row, err := r.csv.Read()
	if err == io.EOF {
		return domain.Event{}, io.EOF
	}
	r.line++
	if err != nil {
		return domain.Event{}, &RowError{Line: r.line, Err: err}
	}

	ev, err := r.parse(row)
	if err != nil {
		return domain.Event{}, &RowError{Line: r.line, Err: err}
	}
	return ev, nil
}

func (r *Reader) parse(row []string) (domain.Event, error) {
	eventType, err := parseEventType(r.field(row, "type"))
	if err != nil {
		return domain.Event{}, err
	}

	client, err := strconv.ParseUint(r.field(row, "client"), 10, 16)
	if err != nil {
		return domain.Event{}, fmt.Errorf("parse client: %w", err)
	}

	tx, err := strconv.ParseUint(r.field(row, "tx"), 10, 32)
	if err != nil {
		return domain.Event{}, fmt.Errorf("parse tx: %w", err)
	}

	ev := domain.Event{
		Type:     eventType,
		ClientID: uint16(client),
		TxID:     uint32(tx),
	}

	// Lifecycle events ignore the amount column entirely.
	if eventType == domain.EventDeposit || eventType == domain.EventWithdrawal {
		ev.Amount, err = domain.ParseAmount(r.field(row, "amount"))
		if err != nil {
			return domain.Event{}, err
		}
	}
	return ev, nil
}

func (r *Reader) field(row []string, name string) string {
	i, ok := r.columns[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseEventType(s string) (domain.EventType, error) {
	switch s {
	case "deposit":
		return domain.EventDeposit, nil
	case "withdrawal":
		return domain.EventWithdrawal, nil
	case "dispute":
		return domain.EventDispute, nil
	case "resolve":
		return domain.EventResolve, nil
	case "chargeback":
		return domain.EventChargeback, nil
	default:
		return 0, fmt.Errorf("unknown event type %q", s)
	}
}
