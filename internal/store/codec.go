package store

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/umsatz-dev/umsatz/internal/model"
)

// record is the persisted shape of one transaction. Amounts are kept
// as strings so decimals survive the round trip exactly.
type record struct {
	ID               string            `json:"id"`
	BookingDate      string            `json:"bookingDate"`
	ValueDate        string            `json:"valueDate,omitempty"`
	Description      string            `json:"description"`
	Payee            string            `json:"payee,omitempty"`
	Amount           string            `json:"amount"`
	Currency         string            `json:"currency"`
	Category         string            `json:"category"`
	CategorySource   string            `json:"categorySource"`
	BankCategory     string            `json:"bankCategory,omitempty"`
	DetectedCategory string            `json:"detectedCategory,omitempty"`
	Account          string            `json:"account,omitempty"`
	Info             string            `json:"info,omitempty"`
	IBAN             string            `json:"iban,omitempty"`
	BIC              string            `json:"bic,omitempty"`
	Raw              map[string]string `json:"raw,omitempty"`
}

// EncodeTransactions serializes the collection, including the raw
// original-column maps.
func EncodeTransactions(txns []model.Transaction) ([]byte, error) {
	records := make([]record, len(txns))
	for i, t := range txns {
		records[i] = record{
			ID:               t.ID,
			BookingDate:      t.BookingDate,
			ValueDate:        t.ValueDate,
			Description:      t.Description,
			Payee:            t.Payee,
			Amount:           t.Amount.String(),
			Currency:         t.Currency,
			Category:         t.Category,
			CategorySource:   string(t.CategorySource),
			BankCategory:     t.BankCategory,
			DetectedCategory: t.DetectedCategory,
			Account:          t.Account,
			Info:             t.Info,
			IBAN:             t.IBAN,
			BIC:              t.BIC,
			Raw:              t.Raw,
		}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encoding transactions: %w", err)
	}
	return data, nil
}

// DecodeTransactions permissively reconstructs a persisted collection.
// Legacy records missing newer fields get explicit defaults; entries
// that are not object-shaped are skipped; a blob that is not a JSON
// array at all decodes to an empty collection. Corruption never makes
// the system unusable.
func DecodeTransactions(data []byte) []model.Transaction {
	if len(data) == 0 {
		return nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil
	}

	var txns []model.Transaction
	for _, entry := range entries {
		var m map[string]any
		if err := json.Unmarshal(entry, &m); err != nil {
			continue // not row-shaped
		}
		txns = append(txns, reconstruct(m))
	}
	return txns
}

// reconstruct coerces one persisted object to a best-effort
// Transaction, defaulting every optional field.
func reconstruct(m map[string]any) model.Transaction {
	t := model.Transaction{
		ID:               str(m, "id"),
		BookingDate:      str(m, "bookingDate"),
		ValueDate:        str(m, "valueDate"),
		Description:      str(m, "description"),
		Payee:            str(m, "payee"),
		Amount:           amount(m["amount"]),
		Currency:         str(m, "currency"),
		Category:         str(m, "category"),
		CategorySource:   model.CategorySource(str(m, "categorySource")),
		BankCategory:     str(m, "bankCategory"),
		DetectedCategory: str(m, "detectedCategory"),
		Account:          str(m, "account"),
		Info:             str(m, "info"),
		IBAN:             str(m, "iban"),
		BIC:              str(m, "bic"),
		Raw:              rawMap(m["raw"]),
	}

	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Description == "" {
		t.Description = model.PlaceholderDescription
	}
	if t.Category == "" {
		switch {
		case t.BankCategory != "":
			t.Category = t.BankCategory
		case t.DetectedCategory != "":
			t.Category = t.DetectedCategory
		default:
			t.Category = "Other"
		}
	}
	if t.CategorySource == "" {
		t.CategorySource = model.CategoryDetected
		if t.BankCategory != "" {
			t.CategorySource = model.CategoryFromBank
		}
	}
	return t
}

func str(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// amount accepts a string (current schema) or a bare JSON number
// (legacy schema); anything else defaults to zero.
func amount(v any) decimal.Decimal {
	switch a := v.(type) {
	case string:
		if d, err := decimal.NewFromString(a); err == nil {
			return d
		}
	case float64:
		return decimal.NewFromFloat(a)
	}
	return decimal.Zero
}

func rawMap(v any) map[string]string {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(obj))
	for k, val := range obj {
		if s, ok := val.(string); ok {
			out[k] = s
		}
	}
	return out
}
