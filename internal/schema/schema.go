// Package schema maps vendor-specific CSV column headers onto the
// fixed logical transaction schema.
package schema

import (
	"errors"
	"strings"
)

// Absent marks a logical field with no matching column.
const Absent = -1

// ErrMissingColumns reports a header row lacking the mandatory booking
// date or amount column. The whole import aborts; no partial imports.
var ErrMissingColumns = errors.New("cannot locate required columns (booking date, amount)")

// ColumnMap holds the resolved column index per logical field, or
// Absent. Headers carries every normalized original header label in
// column order, for building the per-row raw map.
type ColumnMap struct {
	BookingDate  int
	ValueDate    int
	Description  int
	Payee        int
	Amount       int
	Currency     int
	Account      int
	Info         int
	IBAN         int
	BIC          int
	BankCategory int

	Headers []string
}

// aliases lists the acceptable header spellings per logical field, in
// match-priority order. Matching is case-insensitive after label
// normalization. German bank exports first, English exports after.
var aliases = struct {
	bookingDate  []string
	valueDate    []string
	description  []string
	payee        []string
	amount       []string
	currency     []string
	account      []string
	info         []string
	iban         []string
	bic          []string
	bankCategory []string
}{
	bookingDate: []string{
		"buchungstag", "buchungsdatum", "buchung", "datum",
		"booking date", "posting date", "date",
	},
	valueDate: []string{
		"wertstellung", "valutadatum", "valuta", "wert",
		"value date",
	},
	// "Buchungstext" is deliberately not a description alias: in the
	// exports that carry it, it holds the booking type (KARTENZAHLUNG,
	// DAUERAUFTRAG), and it would shadow Verwendungszweck by header
	// order. It survives in the raw map.
	description: []string{
		"verwendungszweck", "beschreibung", "umsatztext",
		"description", "memo", "text", "reference",
	},
	payee: []string{
		"beguenstigter/zahlungspflichtiger", "begünstigter/zahlungspflichtiger",
		"auftraggeber/empfaenger", "auftraggeber/empfänger",
		"empfaenger", "empfänger", "name",
		"payee", "counterparty", "recipient",
	},
	amount: []string{
		"betrag", "betrag (eur)", "umsatz",
		"amount", "value",
	},
	currency: []string{
		"waehrung", "währung", "currency",
	},
	account: []string{
		"auftragskonto", "konto",
		"account", "account name",
	},
	info: []string{
		"info", "hinweis", "notiz",
		"notes", "note",
	},
	iban: []string{
		"kontonummer/iban", "iban", "kontonummer",
		"account number",
	},
	bic: []string{
		"bic (swift-code)", "bic", "blz",
		"routing number", "sort code",
	},
	bankCategory: []string{
		"kategorie", "umsatzart",
		"category", "transaction type", "type",
	},
}

// Resolve maps a header row to a ColumnMap. Labels are normalized
// (BOM stripped, non-breaking spaces flattened, trimmed) and matched
// case-insensitively against each field's alias list; the first
// matching column in header order wins. Booking date and amount are
// mandatory.
func Resolve(header []string) (ColumnMap, error) {
	labels := make([]string, len(header))
	for i, h := range header {
		labels[i] = NormalizeLabel(h)
	}

	m := ColumnMap{
		BookingDate:  find(labels, aliases.bookingDate),
		ValueDate:    find(labels, aliases.valueDate),
		Description:  find(labels, aliases.description),
		Payee:        find(labels, aliases.payee),
		Amount:       find(labels, aliases.amount),
		Currency:     find(labels, aliases.currency),
		Account:      find(labels, aliases.account),
		Info:         find(labels, aliases.info),
		IBAN:         find(labels, aliases.iban),
		BIC:          find(labels, aliases.bic),
		BankCategory: find(labels, aliases.bankCategory),
		Headers:      labels,
	}

	if m.BookingDate == Absent || m.Amount == Absent {
		return ColumnMap{}, ErrMissingColumns
	}
	return m, nil
}

// NormalizeLabel strips a leading BOM, collapses non-breaking spaces
// to regular spaces, and trims surrounding whitespace.
func NormalizeLabel(s string) string {
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.ReplaceAll(s, "\u00A0", " ")
	return strings.TrimSpace(s)
}

func find(labels []string, names []string) int {
	for i, label := range labels {
		for _, name := range names {
			if strings.EqualFold(label, name) {
				return i
			}
		}
	}
	return Absent
}
