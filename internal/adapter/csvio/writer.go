package csvio

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/iho/payengine/internal/domain"
)

// WriteReport writes the final account snapshots as CSV. The held column
// folds the deposit-dispute backlog into the public held figure; total is
// available plus that figure. Rows appear in the order given, which the
// caller keeps deterministic by sorting on client id.
func WriteReport(w io.Writer, accounts []*domain.Account) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return err
	}
	for _, account := range accounts {
		row := []string{
			strconv.FormatUint(uint64(account.ID), 10),
			account.Available.String(),
			account.HeldTotal().String(),
			account.Total().String(),
			strconv.FormatBool(account.Locked),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
