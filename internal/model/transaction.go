package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type TransactionKind int

const (
	KindDeposit TransactionKind = iota + 1
	KindWithdrawal
	KindDispute
	KindResolve
	KindChargeback
)

var kindNames = map[TransactionKind]string{
	KindDeposit:    "deposit",
	KindWithdrawal: "withdrawal",
	KindDispute:    "dispute",
	KindResolve:    "resolve",
	KindChargeback: "chargeback",
}

func (k TransactionKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind maps a type token to its kind. Matching is case-insensitive.
func ParseKind(s string) (TransactionKind, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	for kind, name := range kindNames {
		if name == token {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown transaction type %q", s)
}

// Referrable reports whether a dispute, resolve or chargeback may target
// a transaction of this kind.
func (k TransactionKind) Referrable() bool {
	return k == KindDeposit || k == KindWithdrawal
}

// CarriesAmount reports whether records of this kind must have an amount.
func (k TransactionKind) CarriesAmount() bool {
	return k == KindDeposit || k == KindWithdrawal
}

type Transaction struct {
	Kind   TransactionKind
	Client uint16
	TxID   uint32
	Amount *decimal.Decimal

	disputed bool
}

func NewTransaction(kind TransactionKind, client uint16, txID uint32, amount *decimal.Decimal) *Transaction {
	return &Transaction{
		Kind:   kind,
		Client: client,
		TxID:   txID,
		Amount: amount,
	}
}

// Dispute flags the transaction as under dispute. Resolving does not clear it.
func (t *Transaction) Dispute() {
	t.disputed = true
}

func (t *Transaction) Disputed() bool {
	return t.disputed
}
