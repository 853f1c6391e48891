// Package importer runs the full CSV import pipeline: dialect
// detection, tokenizing, header resolution, field normalization,
// categorization, and transaction assembly.
package importer

import (
	"fmt"
	"io"

	"github.com/umsatz-dev/umsatz/internal/csvscan"
	"github.com/umsatz-dev/umsatz/internal/model"
	"github.com/umsatz-dev/umsatz/internal/schema"
)

// Importer parses raw bank CSV exports into Transactions.
type Importer struct {
	sniffer         csvscan.Sniffer
	defaultCurrency string
}

// New creates an Importer using the given default currency for rows
// that carry none.
func New(defaultCurrency string) *Importer {
	return &Importer{
		sniffer:         csvscan.FirstLineSniffer{},
		defaultCurrency: defaultCurrency,
	}
}

// WithSniffer replaces the dialect detection strategy.
func (im *Importer) WithSniffer(s csvscan.Sniffer) *Importer {
	im.sniffer = s
	return im
}

// Parse reads a whole CSV export and returns its Transactions in row
// order. Any fatal condition (no data, unresolved mandatory columns,
// an unparseable amount) returns an error and no transactions; there
// are no partial results.
func (im *Importer) Parse(r io.Reader) ([]model.Transaction, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	text := string(data)
	rows, err := csvscan.Scan(text, im.sniffer.Sniff(text))
	if err != nil {
		return nil, err
	}

	cols, err := schema.Resolve(rows[0])
	if err != nil {
		return nil, err
	}

	txns := make([]model.Transaction, 0, len(rows)-1)
	for i, row := range rows[1:] {
		// Row numbers are 1-based and count the header line.
		txn, err := im.buildRow(cols, row, i+2)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, nil
}
