package csvscan

import "strings"

// Candidates is the delimiter preference order used for detection.
// Earlier entries win ties.
var Candidates = []rune{';', ',', '\t', '|'}

// Sniffer detects the CSV dialect of an input. Implementations may
// inspect as much of the text as they need.
type Sniffer interface {
	Sniff(text string) Dialect
}

// Dialect describes the detected CSV flavor.
type Dialect struct {
	Delimiter rune
	Quote     rune
}

// FirstLineSniffer picks the delimiter by counting candidate
// occurrences in the first physical line only. Cheap, and wrong for
// files whose header line quotes a competing delimiter; kept behind
// the Sniffer interface so a multi-line strategy can replace it.
type FirstLineSniffer struct{}

// Sniff returns the dialect detected from the first line of text.
func (FirstLineSniffer) Sniff(text string) Dialect {
	line := text
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}

	best := Candidates[0]
	bestCount := -1
	for _, c := range Candidates {
		n := strings.Count(line, string(c))
		if n > bestCount {
			best = c
			bestCount = n
		}
	}
	return Dialect{Delimiter: best, Quote: '"'}
}
