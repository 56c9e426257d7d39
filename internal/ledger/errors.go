package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrorKind tags every failure Apply can return. The set is closed.
type ErrorKind int

const (
	KindInsufficientFunds ErrorKind = iota + 1
	KindTransactionNotFound
	KindNotDisputed
	KindAccountLocked
	KindAmountMissing
	KindAmountForbidden
	KindNotReferrable
)

func (k ErrorKind) String() string {
	switch k {
	case KindInsufficientFunds:
		return "insufficient_funds"
	case KindTransactionNotFound:
		return "transaction_not_found"
	case KindNotDisputed:
		return "not_disputed"
	case KindAccountLocked:
		return "account_locked"
	case KindAmountMissing:
		return "amount_missing"
	case KindAmountForbidden:
		return "amount_forbidden"
	case KindNotReferrable:
		return "not_referrable"
	default:
		return fmt.Sprintf("error_kind(%d)", int(k))
	}
}

type Error struct {
	Kind   ErrorKind
	Client uint16
	Tx     uint32

	// Set for KindInsufficientFunds only.
	Available decimal.Decimal
	Requested decimal.Decimal
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindInsufficientFunds:
		return fmt.Sprintf("no funds available (requested %s from client %d with %s available)",
			e.Requested, e.Client, e.Available)
	case KindTransactionNotFound:
		return fmt.Sprintf("transaction %d not found for client %d", e.Tx, e.Client)
	case KindNotDisputed:
		return fmt.Sprintf("transaction %d is not disputed, cannot resolve/chargeback", e.Tx)
	case KindAccountLocked:
		return fmt.Sprintf("client %d account locked", e.Client)
	case KindAmountMissing:
		return fmt.Sprintf("transaction %d: deposit/withdrawal has to specify amount", e.Tx)
	case KindAmountForbidden:
		return fmt.Sprintf("transaction %d: dispute/resolve/chargeback must not specify amount", e.Tx)
	case KindNotReferrable:
		return fmt.Sprintf("transaction %d cannot be referred, only deposit/withdrawal can", e.Tx)
	default:
		return fmt.Sprintf("ledger error %s", e.Kind)
	}
}

// Is matches another *Error of the same kind, so callers can write
// errors.Is(err, &ledger.Error{Kind: ledger.KindAccountLocked}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func newError(kind ErrorKind, client uint16, tx uint32) *Error {
	return &Error{Kind: kind, Client: client, Tx: tx}
}
