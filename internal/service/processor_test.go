package service

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/hance08/tally/internal/csvio"
	"github.com/hance08/tally/internal/ledger"
	"github.com/hance08/tally/internal/model"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sliceReader struct {
	txs []*model.Transaction
	err error
}

func (r *sliceReader) Read() (*model.Transaction, error) {
	if len(r.txs) == 0 {
		if r.err != nil {
			return nil, r.err
		}
		return nil, io.EOF
	}
	tx := r.txs[0]
	r.txs = r.txs[1:]
	return tx, nil
}

func tx(kind model.TransactionKind, client uint16, id uint32, amt string) *model.Transaction {
	if amt == "" {
		return model.NewTransaction(kind, client, id, nil)
	}
	d := decimal.RequireFromString(amt)
	return model.NewTransaction(kind, client, id, &d)
}

func rows(t *testing.T, p *Processor, src TransactionReader) []string {
	t.Helper()
	registry, err := p.Run(src)
	require.NoError(t, err)

	var out []string
	for _, acc := range registry.Snapshot() {
		out = append(out, strings.Join(csvio.Row(acc), ","))
	}
	return out
}

func newTestProcessor() *Processor {
	return NewProcessor(zerolog.Nop())
}

func TestRunScenarios(t *testing.T) {
	tests := []struct {
		name string
		txs  []*model.Transaction
		want []string
	}{
		{
			name: "single deposit",
			txs:  []*model.Transaction{tx(model.KindDeposit, 1, 1, "1.5")},
			want: []string{"1,1.5,0,1.5,false"},
		},
		{
			name: "deposit then withdrawal",
			txs: []*model.Transaction{
				tx(model.KindDeposit, 1, 1, "2.0"),
				tx(model.KindWithdrawal, 1, 2, "0.5"),
			},
			want: []string{"1,1.5,0,1.5,false"},
		},
		{
			name: "dispute holds funds",
			txs: []*model.Transaction{
				tx(model.KindDeposit, 1, 1, "2.5"),
				tx(model.KindDispute, 1, 1, ""),
			},
			want: []string{"1,0,2.5,2.5,false"},
		},
		{
			name: "resolve releases funds",
			txs: []*model.Transaction{
				tx(model.KindDeposit, 1, 1, "2.5"),
				tx(model.KindDispute, 1, 1, ""),
				tx(model.KindResolve, 1, 1, ""),
			},
			want: []string{"1,2.5,0,2.5,false"},
		},
		{
			name: "chargeback locks",
			txs: []*model.Transaction{
				tx(model.KindDeposit, 1, 1, "2.5"),
				tx(model.KindDispute, 1, 1, ""),
				tx(model.KindChargeback, 1, 1, ""),
			},
			want: []string{"1,0,0,0,true"},
		},
		{
			name: "withdrawal without funds is skipped",
			txs: []*model.Transaction{
				tx(model.KindWithdrawal, 1, 1, "10"),
				tx(model.KindDeposit, 2, 2, "1"),
			},
			want: []string{"1,0,0,0,false", "2,1,0,1,false"},
		},
		{
			name: "unknown references are skipped",
			txs: []*model.Transaction{
				tx(model.KindDeposit, 1, 1, "3"),
				tx(model.KindDispute, 1, 9, ""),
				tx(model.KindResolve, 1, 9, ""),
				tx(model.KindChargeback, 1, 9, ""),
				tx(model.KindDispute, 2, 1, ""),
			},
			want: []string{"1,3,0,3,false", "2,0,0,0,false"},
		},
		{
			name: "resolve and chargeback of undisputed are skipped",
			txs: []*model.Transaction{
				tx(model.KindDeposit, 1, 1, "3"),
				tx(model.KindResolve, 1, 1, ""),
				tx(model.KindChargeback, 1, 1, ""),
			},
			want: []string{"1,3,0,3,false"},
		},
		{
			name: "clients keep first-seen order",
			txs: []*model.Transaction{
				tx(model.KindDeposit, 5, 1, "1"),
				tx(model.KindDeposit, 2, 2, "2"),
				tx(model.KindDeposit, 5, 3, "3"),
			},
			want: []string{"5,4,0,4,false", "2,2,0,2,false"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rows(t, newTestProcessor(), &sliceReader{txs: tt.txs})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunAbortsOnFatalErrors(t *testing.T) {
	tests := []struct {
		name string
		txs  []*model.Transaction
		kind ledger.ErrorKind
	}{
		{
			name: "deposit after chargeback",
			txs: []*model.Transaction{
				tx(model.KindDeposit, 1, 1, "2.5"),
				tx(model.KindDispute, 1, 1, ""),
				tx(model.KindChargeback, 1, 1, ""),
				tx(model.KindDeposit, 1, 2, "1"),
			},
			kind: ledger.KindAccountLocked,
		},
		{
			name: "deposit without amount",
			txs:  []*model.Transaction{tx(model.KindDeposit, 1, 1, "")},
			kind: ledger.KindAmountMissing,
		},
		{
			name: "dispute with amount",
			txs: []*model.Transaction{
				tx(model.KindDeposit, 1, 1, "1"),
				tx(model.KindDispute, 1, 1, "1"),
			},
			kind: ledger.KindAmountForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry, err := newTestProcessor().Run(&sliceReader{txs: tt.txs})

			require.Error(t, err)
			assert.Nil(t, registry)

			var lerr *ledger.Error
			require.True(t, errors.As(err, &lerr))
			assert.Equal(t, tt.kind, lerr.Kind)
		})
	}
}

func TestRunStopsAfterFatalError(t *testing.T) {
	src := &sliceReader{txs: []*model.Transaction{
		tx(model.KindWithdrawal, 1, 1, ""),
		tx(model.KindDeposit, 1, 2, "1"),
	}}

	_, err := newTestProcessor().Run(src)

	require.Error(t, err)
	assert.Len(t, src.txs, 1, "records after the fatal one must not be read")
}

func TestRunSurfacesReadErrors(t *testing.T) {
	readErr := errors.New("boom")
	src := &sliceReader{txs: []*model.Transaction{tx(model.KindDeposit, 1, 1, "1")}, err: readErr}

	registry, err := newTestProcessor().Run(src)

	assert.Nil(t, registry)
	assert.ErrorIs(t, err, readErr)
}

func TestRunFromCSV(t *testing.T) {
	input := `type, client, tx, amount
deposit, 1, 1, 1.0
deposit, 2, 2, 2.0
deposit, 1, 3, 2.0
withdrawal, 1, 4, 1.5
withdrawal, 2, 5, 3.0
`
	got := rows(t, newTestProcessor(), csvio.NewReader(strings.NewReader(input), ','))

	assert.Equal(t, []string{"1,1.5,0,1.5,false", "2,2,0,2,false"}, got)
}

func TestRunMalformedCSV(t *testing.T) {
	input := "type,client,tx,amount\ndeposit,1,1,1.0\nrefund,1,2,1.0\n"

	_, err := newTestProcessor().Run(csvio.NewReader(strings.NewReader(input), ','))

	assert.ErrorIs(t, err, csvio.ErrMalformedRecord)
}

func TestRunStatsAndLogging(t *testing.T) {
	var buf bytes.Buffer
	p := NewProcessor(zerolog.New(&buf).Level(zerolog.InfoLevel))

	_, err := p.Run(&sliceReader{txs: []*model.Transaction{
		tx(model.KindDeposit, 1, 1, "1"),
		tx(model.KindWithdrawal, 1, 2, "5"),
		tx(model.KindDispute, 1, 7, ""),
	}})
	require.NoError(t, err)

	assert.Equal(t, Stats{Records: 3, Applied: 1, Skipped: 2}, p.Stats())

	logs := buf.String()
	assert.Contains(t, logs, `"kind":"insufficient_funds"`)
	assert.Contains(t, logs, `"kind":"transaction_not_found"`)
	assert.Contains(t, logs, `"message":"replay finished"`)
	assert.Contains(t, logs, `"skipped":2`)
}
