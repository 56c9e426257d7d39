package views

import (
	"io"

	"github.com/hance08/tally/internal/csvio"
	"github.com/hance08/tally/internal/ledger"
	"github.com/pterm/pterm"
)

type BalanceListView struct {
	out io.Writer
}

func NewBalanceListView(out io.Writer) *BalanceListView {
	return &BalanceListView{out: out}
}

func (v *BalanceListView) Render(accounts []*ledger.Account) error {
	headers := []string{"Client", "Available", "Held", "Total", "Locked"}
	tableData := pterm.TableData{headers}

	for _, acc := range accounts {
		row := csvio.Row(acc)
		if acc.Locked() {
			for i := range row {
				row[i] = pterm.Red(row[i])
			}
		}
		tableData = append(tableData, row)
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithData(tableData).
		WithWriter(v.out).
		Render()
}
