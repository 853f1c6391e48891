package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umsatz-dev/umsatz/internal/model"
)

func sample() model.Transaction {
	amt, _ := decimal.NewFromString("-54.23")
	return model.Transaction{
		ID:               "abc-123",
		BookingDate:      "2024-01-05",
		ValueDate:        "2024-01-05",
		Description:      "REWE SAGT DANKE",
		Payee:            "REWE Markt GmbH",
		Amount:           amt,
		Currency:         "EUR",
		Category:         "Groceries",
		CategorySource:   model.CategoryDetected,
		DetectedCategory: "Groceries",
		Raw:              map[string]string{"Saldo": "1.234,56", "Buchungstag": "05.01.2024"},
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	data, err := EncodeTransactions([]model.Transaction{sample()})
	require.NoError(t, err)

	got := DecodeTransactions(data)
	require.Len(t, got, 1)

	want := sample()
	assert.Equal(t, want.ID, got[0].ID)
	assert.Equal(t, want.BookingDate, got[0].BookingDate)
	assert.Equal(t, want.Description, got[0].Description)
	assert.True(t, want.Amount.Equal(got[0].Amount))
	assert.Equal(t, want.CategorySource, got[0].CategorySource)
	assert.Equal(t, want.Raw, got[0].Raw)
}

func TestDecode_LegacyRecordWithNumericAmount(t *testing.T) {
	blob := `[{"bookingDate":"2023-06-01","description":"old","amount":-12.5}]`
	got := DecodeTransactions([]byte(blob))
	require.Len(t, got, 1)

	assert.Equal(t, "old", got[0].Description)
	assert.True(t, got[0].Amount.Equal(decimal.NewFromFloat(-12.5)))
	// Missing fields get explicit defaults, not rejections.
	assert.NotEmpty(t, got[0].ID)
	assert.Equal(t, "Other", got[0].Category)
	assert.Equal(t, model.CategoryDetected, got[0].CategorySource)
}

func TestDecode_BankCategoryBackfillsEffective(t *testing.T) {
	blob := `[{"bookingDate":"2023-06-01","description":"x","amount":"-1","bankCategory":"Lebensmittel"}]`
	got := DecodeTransactions([]byte(blob))
	require.Len(t, got, 1)
	assert.Equal(t, "Lebensmittel", got[0].Category)
	assert.Equal(t, model.CategoryFromBank, got[0].CategorySource)
}

func TestDecode_SkipsNonRowShapedEntries(t *testing.T) {
	blob := `[{"bookingDate":"2024-01-01","description":"keep","amount":"-1"},"junk",42,[1,2]]`
	got := DecodeTransactions([]byte(blob))
	require.Len(t, got, 1)
	assert.Equal(t, "keep", got[0].Description)
}

func TestDecode_CorruptBlobMeansEmpty(t *testing.T) {
	assert.Nil(t, DecodeTransactions([]byte("{not json")))
	assert.Nil(t, DecodeTransactions([]byte(`{"an":"object"}`)))
	assert.Nil(t, DecodeTransactions(nil))
}

func TestDecode_EmptyDescriptionGetsPlaceholder(t *testing.T) {
	blob := `[{"bookingDate":"2024-01-01","amount":"-1"}]`
	got := DecodeTransactions([]byte(blob))
	require.Len(t, got, 1)
	assert.Equal(t, model.PlaceholderDescription, got[0].Description)
}
