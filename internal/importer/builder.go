package importer

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/umsatz-dev/umsatz/internal/category"
	"github.com/umsatz-dev/umsatz/internal/model"
	"github.com/umsatz-dev/umsatz/internal/normalize"
	"github.com/umsatz-dev/umsatz/internal/schema"
)

// buildRow assembles one Transaction from a tokenized data row. An
// unparseable amount fails the row, and with it the whole import.
func (im *Importer) buildRow(cols schema.ColumnMap, row []string, rowNum int) (model.Transaction, error) {
	get := func(idx int) string {
		if idx == schema.Absent || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	amount, err := normalize.Amount(get(cols.Amount))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("row %d: %w", rowNum, err)
	}

	// An unparseable booking date keeps the trimmed raw string; a
	// fabricated date would be worse than a visibly odd one.
	booking := normalize.Text(get(cols.BookingDate))
	if iso, ok := normalize.Date(booking); ok {
		booking = iso
	}

	valueDate := normalize.Text(get(cols.ValueDate))
	if iso, ok := normalize.Date(valueDate); ok {
		valueDate = iso
	}

	payee := normalize.Text(get(cols.Payee))
	info := normalize.Text(get(cols.Info))

	desc := normalize.Text(get(cols.Description))
	if desc == "" {
		desc = payee
	}
	if desc == "" {
		desc = info
	}
	if desc == "" {
		desc = model.PlaceholderDescription
	}

	// Auxiliary fields that just repeat the description carry no
	// information; treat them as absent.
	account := normalize.Text(get(cols.Account))
	if account == desc {
		account = ""
	}
	if info == desc {
		info = ""
	}

	currency := normalize.Text(get(cols.Currency))
	if currency == "" {
		currency = im.defaultCurrency
	}

	bankCategory := normalize.Text(get(cols.BankCategory))
	detected := category.Detect(desc, payee, amount)

	effective, source := bankCategory, model.CategoryFromBank
	if bankCategory == "" {
		effective, source = detected, model.CategoryDetected
	}

	raw := make(map[string]string, len(cols.Headers))
	for i, h := range cols.Headers {
		raw[h] = get(i)
	}

	return model.Transaction{
		ID:               uuid.NewString(),
		BookingDate:      booking,
		ValueDate:        valueDate,
		Description:      desc,
		Payee:            payee,
		Amount:           amount,
		Currency:         currency,
		Category:         effective,
		CategorySource:   source,
		BankCategory:     bankCategory,
		DetectedCategory: detected,
		Account:          account,
		Info:             info,
		IBAN:             normalize.Text(get(cols.IBAN)),
		BIC:              normalize.Text(get(cols.BIC)),
		Raw:              raw,
	}, nil
}
