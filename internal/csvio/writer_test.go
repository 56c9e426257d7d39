package csvio

import (
	"bytes"
	"testing"

	"github.com/hance08/tally/internal/ledger"
	"github.com/hance08/tally/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func depositInto(t *testing.T, acc *ledger.Account, tx uint32, amt string) {
	t.Helper()
	d := decimal.RequireFromString(amt)
	require.NoError(t, acc.Apply(model.NewTransaction(model.KindDeposit, acc.Client(), tx, &d)))
}

func TestWriteAccounts(t *testing.T) {
	first := ledger.NewAccount(1)
	depositInto(t, first, 1, "1.5")

	second := ledger.NewAccount(2)
	depositInto(t, second, 2, "2.0")
	require.NoError(t, second.Apply(model.NewTransaction(model.KindDispute, 2, 2, nil)))
	require.NoError(t, second.Apply(model.NewTransaction(model.KindChargeback, 2, 2, nil)))

	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf).WriteAccounts([]*ledger.Account{first, second}))

	assert.Equal(t, "client,available,held,total,locked\n"+
		"1,1.5,0,1.5,false\n"+
		"2,0,0,0,true\n", buf.String())
}

func TestWriteNoAccounts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf).WriteAccounts(nil))

	assert.Equal(t, "client,available,held,total,locked\n", buf.String())
}

func TestRow(t *testing.T) {
	acc := ledger.NewAccount(65535)
	depositInto(t, acc, 1, "0.0001")

	assert.Equal(t, []string{"65535", "0.0001", "0", "0.0001", "false"}, Row(acc))
}
