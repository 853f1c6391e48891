// Package category assigns a semantic category to transactions that
// arrive without one. The assignment is an advisory heuristic, not an
// authoritative classification.
package category

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Category labels form a closed set plus the Other catch-all.
const (
	Income        = "Income"
	Groceries     = "Groceries"
	Rent          = "Rent"
	Utilities     = "Utilities"
	Transport     = "Transport"
	Shopping      = "Shopping"
	Dining        = "Dining"
	Healthcare    = "Healthcare"
	Subscriptions = "Subscriptions"
	Fees          = "Fees"
	Education     = "Education"
	Insurance     = "Insurance"
	Travel        = "Travel"
	Other         = "Other"
)

// rule maps a set of lowercase keywords to a category. Rules live in
// a slice, not a map: evaluation order is part of the contract, since
// keywords overlap across categories and the first match must win.
type rule struct {
	keywords []string
	category string
}

var rules = []rule{
	{[]string{"rewe", "edeka", "aldi", "lidl", "netto", "penny", "kaufland", "supermarkt", "grocery", "groceries"}, Groceries},
	{[]string{"miete", "rent", "vermieter", "hausverwaltung", "wohnung"}, Rent},
	{[]string{"stadtwerke", "strom", "gas", "wasser", "vattenfall", "eon", "e.on", "telekom", "vodafone", "o2", "internet", "electricity", "utility"}, Utilities},
	{[]string{"versicherung", "insurance", "allianz", "huk", "axa"}, Insurance},
	{[]string{"bahn", "bvg", "mvv", "hvv", "tankstelle", "aral", "shell", "esso", "uber", "taxi", "fuel", "transit", "parking", "parkhaus"}, Transport},
	{[]string{"apotheke", "arzt", "zahnarzt", "klinik", "pharmacy", "doctor", "hospital", "drogerie", "dm ", "rossmann"}, Healthcare},
	{[]string{"netflix", "spotify", "disney", "amazon prime", "youtube premium", "abo", "subscription", "mitgliedsbeitrag", "membership"}, Subscriptions},
	{[]string{"restaurant", "cafe", "café", "pizzeria", "lieferando", "mcdonald", "burger king", "subway", "bar ", "bistro", "imbiss"}, Dining},
	{[]string{"amazon", "zalando", "ikea", "mediamarkt", "saturn", "otto", "ebay", "shop", "store"}, Shopping},
	{[]string{"gebuehr", "gebühr", "entgelt", "kontofuehrung", "kontoführung", "fee", "charge", "zinsen", "interest"}, Fees},
	{[]string{"uni", "universitaet", "universität", "schule", "kurs", "udemy", "coursera", "tuition", "semesterbeitrag"}, Education},
	{[]string{"hotel", "airbnb", "booking.com", "lufthansa", "ryanair", "easyjet", "flight", "flug", "reise", "travel"}, Travel},
}

// Detect returns the category for a transaction. Non-negative amounts
// are Income regardless of text; otherwise the lowercased
// description+payee text is matched against the rule list in order and
// the first hit wins, falling back to Other.
func Detect(description, payee string, amount decimal.Decimal) string {
	if !amount.IsNegative() {
		return Income
	}

	text := strings.ToLower(description + " " + payee)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(text, kw) {
				return r.category
			}
		}
	}
	return Other
}

// All lists every assignable category in rule priority order, Income
// first and Other last.
func All() []string {
	out := []string{Income}
	for _, r := range rules {
		out = append(out, r.category)
	}
	return append(out, Other)
}
