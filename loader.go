package dividends

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// Error kinds reported by the loader. Everything that makes a file
// unusable (empty, malformed quoting, inconsistent field count, a missing
// required column) wraps ErrInvalidFormat.
var (
	ErrNotFound      = errors.New("statement file not found")
	ErrInvalidFormat = errors.New("invalid statement format")
)

// requiredColumns are the header names the core interprets. Matching is
// exact after whitespace trimming; order in the file does not matter.
var requiredColumns = []string{"Run Date", "Action", "Symbol", "Amount ($)"}

// LoadStatement opens and decodes the statement file at path.
//
// It returns an error wrapping ErrNotFound if the path does not exist, and
// an error wrapping ErrInvalidFormat if the content cannot be decoded. The
// file is closed on all exit paths.
func LoadStatement(path string) (*Statement, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("could not open statement file %q: %w", path, err)
	}
	defer f.Close()

	s, err := DecodeStatement(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// DecodeStatement reads a statement from r.
//
// The header row is required; its column names are whitespace-trimmed
// before any lookup. Unparseable "Amount ($)" values coerce to the missing
// Amount and never abort the load.
func DecodeStatement(r io.Reader) (*Statement, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: file is empty", ErrInvalidFormat)
		}
		return nil, fmt.Errorf("%w: cannot read header: %v", ErrInvalidFormat, err)
	}

	colIndex := make(map[string]int, len(header))
	for i, col := range header {
		header[i] = strings.TrimSpace(col)
		colIndex[header[i]] = i
	}
	for _, col := range requiredColumns {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrInvalidFormat, col)
		}
	}

	s := &Statement{header: header}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// csv.Reader rejects malformed quoting and wrong field counts.
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}

		fields := make(map[string]string, len(header))
		for col, i := range colIndex {
			fields[col] = record[i]
		}
		s.rows = append(s.rows, TransactionRow{
			Date:   record[colIndex["Run Date"]],
			Action: record[colIndex["Action"]],
			Symbol: record[colIndex["Symbol"]],
			Amount: ParseAmount(record[colIndex["Amount ($)"]]),
			Fields: fields,
		})
	}
	return s, nil
}
