package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/ledger"
	"github.com/hance08/tally/internal/utils"
)

type Writer struct {
	csv *csv.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteAccounts writes the header followed by one row per account.
func (w *Writer) WriteAccounts(accounts []*ledger.Account) error {
	if err := w.csv.Write(constants.OutputHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, acc := range accounts {
		if err := w.csv.Write(Row(acc)); err != nil {
			return fmt.Errorf("failed to write client %d: %w", acc.Client(), err)
		}
	}

	w.csv.Flush()
	return w.csv.Error()
}

// Row renders an account in output column order.
func Row(acc *ledger.Account) []string {
	return []string{
		strconv.FormatUint(uint64(acc.Client()), 10),
		utils.FormatAmount(acc.Available()),
		utils.FormatAmount(acc.Held()),
		utils.FormatAmount(acc.Total()),
		strconv.FormatBool(acc.Locked()),
	}
}
