package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/umsatz-dev/umsatz/internal/model"
)

// CategoryTotal aggregates one effective category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
	Count    int
}

// Summary aggregates the collection for display.
type Summary struct {
	Categories []CategoryTotal
	Income     decimal.Decimal // sum of non-negative amounts
	Expenses   decimal.Decimal // sum of negative amounts
}

// Summarize totals the collection per effective category, plus overall
// income and expense sums. Categories come back alphabetically.
func Summarize(txns []model.Transaction) Summary {
	byCat := make(map[string]*CategoryTotal)
	var income, expenses decimal.Decimal

	for _, t := range txns {
		ct, ok := byCat[t.Category]
		if !ok {
			ct = &CategoryTotal{Category: t.Category}
			byCat[t.Category] = ct
		}
		ct.Total = ct.Total.Add(t.Amount)
		ct.Count++

		if t.Amount.IsNegative() {
			expenses = expenses.Add(t.Amount)
		} else {
			income = income.Add(t.Amount)
		}
	}

	cats := make([]CategoryTotal, 0, len(byCat))
	for _, ct := range byCat {
		cats = append(cats, *ct)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i].Category < cats[j].Category })

	return Summary{Categories: cats, Income: income, Expenses: expenses}
}
