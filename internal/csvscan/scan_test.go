package csvscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSniff_PrefersMostFrequentDelimiter(t *testing.T) {
	d := FirstLineSniffer{}.Sniff("Buchungstag;Betrag;Verwendungszweck\n01.02.2024;-10,50;Miete")
	assert.Equal(t, ';', d.Delimiter)

	d = FirstLineSniffer{}.Sniff("Date,Amount,Description\n")
	assert.Equal(t, ',', d.Delimiter)

	d = FirstLineSniffer{}.Sniff("a\tb\tc\td")
	assert.Equal(t, '\t', d.Delimiter)

	d = FirstLineSniffer{}.Sniff("a|b|c")
	assert.Equal(t, '|', d.Delimiter)
}

func TestSniff_TieResolvesToPreferenceOrder(t *testing.T) {
	// One ';' and one ',' — ';' comes first in the candidate order.
	d := FirstLineSniffer{}.Sniff("a;b,c")
	assert.Equal(t, ';', d.Delimiter)
}

func TestSniff_OnlyFirstLineCounts(t *testing.T) {
	d := FirstLineSniffer{}.Sniff("a;b\nc,d,e,f,g,h")
	assert.Equal(t, ';', d.Delimiter)
}

func TestScan_QuotedDelimiter(t *testing.T) {
	rows, err := Scan(`x;"a;b";y`, Dialect{Delimiter: ';', Quote: '"'})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"x", "a;b", "y"}, rows[0])
}

func TestScan_DoubledQuote(t *testing.T) {
	rows, err := Scan(`"say ""hi""";2`, Dialect{Delimiter: ';', Quote: '"'})
	require.NoError(t, err)
	assert.Equal(t, []string{`say "hi"`, "2"}, rows[0])
}

func TestScan_QuotedNewline(t *testing.T) {
	rows, err := Scan("\"line1\nline2\";x", Dialect{Delimiter: ';', Quote: '"'})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "line1\nline2", rows[0][0])
}

func TestScan_CarriageReturnsStripped(t *testing.T) {
	rows, err := Scan("a;b\r\nc;d\r\n", Dialect{Delimiter: ';', Quote: '"'})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"a", "b"}, rows[0])
	assert.Equal(t, []string{"c", "d"}, rows[1])
}

func TestScan_BlankRowsDropped(t *testing.T) {
	rows, err := Scan("\n ; ; \na;b\n\n;;\nc;d\n", Dialect{Delimiter: ';', Quote: '"'})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"a", "b"}, rows[0])
	assert.Equal(t, []string{"c", "d"}, rows[1])
}

func TestScan_NoFinalNewline(t *testing.T) {
	rows, err := Scan("a;b\nc;d", Dialect{Delimiter: ';', Quote: '"'})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"c", "d"}, rows[1])
}

func TestScan_EmptyInput(t *testing.T) {
	_, err := Scan("", Dialect{Delimiter: ';', Quote: '"'})
	assert.ErrorIs(t, err, ErrNoData)

	_, err = Scan("\n\n  \n", Dialect{Delimiter: ';', Quote: '"'})
	assert.ErrorIs(t, err, ErrNoData)
}
