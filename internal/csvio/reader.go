package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/utils"
)

var (
	ErrMalformedRecord = errors.New("malformed record")
	ErrMissingColumn   = errors.New("missing column")
)

// Reader decodes transactions from CSV input with a header row. Columns are
// matched by name, so their order is free and the amount column is optional.
type Reader struct {
	csv     *csv.Reader
	columns map[string]int
}

func NewReader(r io.Reader, delimiter rune) *Reader {
	cr := csv.NewReader(r)
	cr.Comma = delimiter
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	return &Reader{csv: cr}
}

// Read returns the next transaction, or io.EOF once the input is exhausted.
// Any other error wraps ErrMalformedRecord.
func (r *Reader) Read() (*model.Transaction, error) {
	if r.columns == nil {
		if err := r.readHeader(); err != nil {
			return nil, err
		}
	}

	record, err := r.csv.Read()
	if errors.Is(err, io.EOF) {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	line, _ := r.csv.FieldPos(0)
	tx, err := r.decode(record)
	if err != nil {
		return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRecord, line, err)
	}

	return tx, nil
}

func (r *Reader) readHeader() error {
	header, err := r.csv.Read()
	if errors.Is(err, io.EOF) {
		return io.EOF
	}
	if err != nil {
		return fmt.Errorf("%w: header: %v", ErrMalformedRecord, err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, required := range []string{constants.ColumnType, constants.ColumnClient, constants.ColumnTx} {
		if _, ok := columns[required]; !ok {
			return fmt.Errorf("%w: %w %q", ErrMalformedRecord, ErrMissingColumn, required)
		}
	}

	r.columns = columns
	return nil
}

func (r *Reader) field(record []string, column string) string {
	i, ok := r.columns[column]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func (r *Reader) decode(record []string) (*model.Transaction, error) {
	kind, err := model.ParseKind(r.field(record, constants.ColumnType))
	if err != nil {
		return nil, err
	}

	client, err := strconv.ParseUint(r.field(record, constants.ColumnClient), 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid client: %w", err)
	}

	txID, err := strconv.ParseUint(r.field(record, constants.ColumnTx), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid tx: %w", err)
	}

	amount := utils.ParseAmount(r.field(record, constants.ColumnAmount))

	return model.NewTransaction(kind, uint16(client), uint32(txID), amount), nil
}
