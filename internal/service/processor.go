package service

import (
	"errors"
	"fmt"
	"io"

	"github.com/hance08/tally/internal/ledger"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/store"
	"github.com/rs/zerolog"
)

// TransactionReader yields transactions in input order and io.EOF at the end.
type TransactionReader interface {
	Read() (*model.Transaction, error)
}

// Stats counts what happened to the records of one run.
type Stats struct {
	Records int
	Applied int
	Skipped int
}

type Processor struct {
	log   zerolog.Logger
	stats Stats
}

func NewProcessor(log zerolog.Logger) *Processor {
	return &Processor{log: log}
}

// Run folds every transaction from src into a fresh registry. Recoverable
// ledger errors skip the record; any other error aborts the run and is
// returned with a nil registry.
func (p *Processor) Run(src TransactionReader) (*store.Registry, error) {
	registry := store.NewRegistry()
	p.stats = Stats{}

	for {
		tx, err := src.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read transaction: %w", err)
		}
		p.stats.Records++

		acc := registry.GetOrCreate(tx.Client)
		if err := acc.Apply(tx); err != nil {
			if fatal := p.handle(tx, err); fatal != nil {
				return nil, fatal
			}
			continue
		}
		p.stats.Applied++
	}

	p.log.Info().
		Int("records", p.stats.Records).
		Int("applied", p.stats.Applied).
		Int("skipped", p.stats.Skipped).
		Int("clients", registry.Len()).
		Msg("replay finished")

	return registry, nil
}

// handle returns nil when the failure of tx can be skipped.
func (p *Processor) handle(tx *model.Transaction, err error) error {
	var lerr *ledger.Error
	if !errors.As(err, &lerr) {
		return fmt.Errorf("failed to apply transaction %d: %w", tx.TxID, err)
	}

	switch lerr.Kind {
	case ledger.KindInsufficientFunds, ledger.KindTransactionNotFound, ledger.KindNotDisputed:
		p.stats.Skipped++
		p.log.Warn().
			Uint16("client", tx.Client).
			Uint32("tx", tx.TxID).
			Str("type", tx.Kind.String()).
			Str("kind", lerr.Kind.String()).
			Err(lerr).
			Msg("skipping transaction")
		return nil
	case ledger.KindAccountLocked, ledger.KindAmountMissing, ledger.KindAmountForbidden, ledger.KindNotReferrable:
		return fmt.Errorf("failed to apply %s transaction %d: %w", tx.Kind, tx.TxID, lerr)
	default:
		return fmt.Errorf("failed to apply %s transaction %d: %w", tx.Kind, tx.TxID, lerr)
	}
}

func (p *Processor) Stats() Stats {
	return p.stats
}
