// Package normalize converts locale-formatted field strings into
// normalized domain values: day.month.year dates into ISO form and
// decimal-comma amounts into exact decimals.
package normalize

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	dateRe = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\.(\d{4}|\d{2})$`)
	isoRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Date parses a "D.M.YYYY" or "D.M.YY" date (two-digit years mean
// 2000+YY) into "YYYY-MM-DD". The second return is false when the
// input does not match; the caller decides the fallback.
func Date(s string) (string, bool) {
	m := dateRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", false
	}

	day := atoi2(m[1])
	month := atoi2(m[2])
	year := atoi2(m[3])
	if len(m[3]) == 2 {
		year += 2000
	}
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}

// IsISODate reports whether s has the normalized "YYYY-MM-DD" shape,
// distinguishing real dates from degraded raw strings.
func IsISODate(s string) bool {
	return isoRe.MatchString(s)
}

// Amount parses a decimal-comma, dot-grouped amount string. It
// tolerates surrounding whitespace, a currency symbol, a Unicode
// minus, a dangling decimal comma, and a trailing minus sign; a
// trailing minus forces the result negative regardless of any leading
// sign.
func Amount(s string) (decimal.Decimal, error) {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\u00a0', '€', '$':
			return -1
		}
		return r
	}, s)

	clean = strings.ReplaceAll(clean, ".", "")  // grouping dots
	clean = strings.ReplaceAll(clean, ",", ".") // decimal comma
	clean = strings.ReplaceAll(clean, "−", "-")

	trailingMinus := strings.HasSuffix(clean, "-")
	clean = strings.TrimSuffix(clean, "-")
	clean = strings.TrimSuffix(clean, ".") // dangling decimal comma, as in "5,-"

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	if trailingMinus {
		d = d.Abs().Neg()
	}
	return d, nil
}

// Text trims surrounding whitespace; empty results mean "absent".
func Text(s string) string {
	return strings.TrimSpace(s)
}

func atoi2(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
