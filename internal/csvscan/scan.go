// Package csvscan tokenizes raw CSV text into rows of string fields,
// detecting the delimiter when the source declares no schema.
package csvscan

import (
	"errors"
	"strings"
)

// ErrNoData reports input that contains no non-blank rows.
var ErrNoData = errors.New("no data rows in input")

// Scan tokenizes text using the given dialect. Quotes protect
// delimiters and newlines, a doubled quote inside a quoted field is a
// literal quote, and an unpaired quote simply toggles quoted mode.
// Carriage returns outside quotes are stripped. Rows whose fields are
// all blank are dropped; if nothing remains, ErrNoData is returned.
func Scan(text string, d Dialect) ([][]string, error) {
	var (
		rows     [][]string
		row      []string
		field    strings.Builder
		inQuotes bool
	)

	endField := func() {
		row = append(row, field.String())
		field.Reset()
	}
	endRow := func() {
		endField()
		if !blankRow(row) {
			rows = append(rows, row)
		}
		row = nil
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case ch == d.Quote:
			if inQuotes && i+1 < len(runes) && runes[i+1] == d.Quote {
				field.WriteRune(d.Quote)
				i++
				continue
			}
			inQuotes = !inQuotes
		case ch == d.Delimiter && !inQuotes:
			endField()
		case ch == '\n' && !inQuotes:
			endRow()
		case ch == '\r' && !inQuotes:
			// stripped
		default:
			field.WriteRune(ch)
		}
	}
	if field.Len() > 0 || len(row) > 0 {
		endRow()
	}

	if len(rows) == 0 {
		return nil, ErrNoData
	}
	return rows, nil
}

func blankRow(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
