package ledger

import (
	"github.com/hance08/tally/internal/model"
	"github.com/shopspring/decimal"
)

// Account is the balance sheet of a single client. It keeps the deposits and
// withdrawals it has accepted so later disputes can refer to them.
type Account struct {
	client    uint16
	available decimal.Decimal
	held      decimal.Decimal
	total     decimal.Decimal
	locked    bool
	history   map[uint32]*model.Transaction
}

func NewAccount(client uint16) *Account {
	return &Account{
		client:  client,
		history: make(map[uint32]*model.Transaction),
	}
}

func (a *Account) Client() uint16             { return a.client }
func (a *Account) Available() decimal.Decimal { return a.available }
func (a *Account) Held() decimal.Decimal      { return a.held }
func (a *Account) Total() decimal.Decimal     { return a.total }
func (a *Account) Locked() bool               { return a.locked }

// Apply validates the amount of tx and routes it to the matching operation.
// On error the account is left untouched.
func (a *Account) Apply(tx *model.Transaction) error {
	if tx.Kind.CarriesAmount() && tx.Amount == nil {
		return newError(KindAmountMissing, a.client, tx.TxID)
	}
	if !tx.Kind.CarriesAmount() && tx.Amount != nil {
		return newError(KindAmountForbidden, a.client, tx.TxID)
	}

	switch tx.Kind {
	case model.KindDeposit:
		return a.deposit(tx)
	case model.KindWithdrawal:
		return a.withdraw(tx)
	case model.KindDispute:
		return a.dispute(tx.TxID)
	case model.KindResolve:
		return a.resolve(tx.TxID)
	case model.KindChargeback:
		return a.chargeback(tx.TxID)
	default:
		return newError(KindNotReferrable, a.client, tx.TxID)
	}
}

func (a *Account) checkUnlocked(txID uint32) error {
	if a.locked {
		return newError(KindAccountLocked, a.client, txID)
	}
	return nil
}

func (a *Account) deposit(tx *model.Transaction) error {
	if err := a.checkUnlocked(tx.TxID); err != nil {
		return err
	}

	a.available = a.available.Add(*tx.Amount)
	a.total = a.total.Add(*tx.Amount)
	a.history[tx.TxID] = tx

	return nil
}

func (a *Account) withdraw(tx *model.Transaction) error {
	if err := a.checkUnlocked(tx.TxID); err != nil {
		return err
	}

	available := a.available.Sub(*tx.Amount)
	if available.IsNegative() {
		return &Error{
			Kind:      KindInsufficientFunds,
			Client:    a.client,
			Tx:        tx.TxID,
			Available: a.available,
			Requested: *tx.Amount,
		}
	}

	a.available = available
	a.total = a.total.Sub(*tx.Amount)
	a.history[tx.TxID] = tx

	return nil
}

// referred looks up a stored deposit or withdrawal by id.
func (a *Account) referred(txID uint32) (*model.Transaction, error) {
	tx, ok := a.history[txID]
	if !ok {
		return nil, newError(KindTransactionNotFound, a.client, txID)
	}
	if !tx.Kind.Referrable() {
		return nil, newError(KindNotReferrable, a.client, txID)
	}
	return tx, nil
}

func (a *Account) dispute(txID uint32) error {
	if err := a.checkUnlocked(txID); err != nil {
		return err
	}
	tx, err := a.referred(txID)
	if err != nil {
		return err
	}

	tx.Dispute()
	a.available = a.available.Sub(*tx.Amount)
	a.held = a.held.Add(*tx.Amount)

	return nil
}

func (a *Account) resolve(txID uint32) error {
	if err := a.checkUnlocked(txID); err != nil {
		return err
	}
	tx, err := a.referred(txID)
	if err != nil {
		return err
	}
	if !tx.Disputed() {
		return newError(KindNotDisputed, a.client, txID)
	}

	a.available = a.available.Add(*tx.Amount)
	a.held = a.held.Sub(*tx.Amount)

	return nil
}

// chargeback reverses a disputed transaction and locks the account. It runs
// on locked accounts too. The held amount is subtracted for withdrawals as
// well as deposits.
func (a *Account) chargeback(txID uint32) error {
	tx, err := a.referred(txID)
	if err != nil {
		return err
	}
	if !tx.Disputed() {
		return newError(KindNotDisputed, a.client, txID)
	}

	a.held = a.held.Sub(*tx.Amount)
	a.total = a.total.Sub(*tx.Amount)
	a.locked = true

	return nil
}
