package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CategorySource records where a transaction's effective category came from.
type CategorySource string

const (
	// CategoryFromBank means the source institution supplied the category.
	CategoryFromBank CategorySource = "bank"
	// CategoryDetected means the category was assigned heuristically.
	CategoryDetected CategorySource = "detected"
)

// PlaceholderDescription stands in when a row carries no usable description.
const PlaceholderDescription = "(no description)"

// Transaction is one normalized bank transaction. It is a value: once
// built it is never mutated — overrides produce a new Transaction.
type Transaction struct {
	ID string

	// BookingDate is "YYYY-MM-DD" when the source date parsed, or the
	// trimmed raw string when it did not (degraded but accepted).
	BookingDate string
	// ValueDate is "YYYY-MM-DD", a degraded raw string, or "" when absent.
	ValueDate string

	Description string // never empty; falls back to PlaceholderDescription
	Payee       string

	Amount   decimal.Decimal // negative = expense, non-negative = income
	Currency string

	// Category is the effective category used for aggregation; it is
	// BankCategory when the source supplied one, DetectedCategory
	// otherwise. Both originals are retained.
	Category         string
	CategorySource   CategorySource
	BankCategory     string
	DetectedCategory string

	Account string
	Info    string
	IBAN    string
	BIC     string

	// Raw maps each original column header (whitespace-normalized) to
	// its original string value, including columns no logical field
	// claimed. Kept for debugging and forward compatibility.
	Raw map[string]string
}

// DedupKey derives the identity used to recognize content-equivalent
// transactions across repeated imports. Two rows with the same booking
// date, amount, description, and payee are considered the same
// transaction regardless of their IDs.
func (t Transaction) DedupKey() string {
	return strings.Join([]string{t.BookingDate, t.Amount.String(), t.Description, t.Payee}, "|")
}
