// Package testutil provides helpers for building legacy-encoded declaration
// fixtures in tests.
package testutil

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Separator is the standard record separator used by fixtures.
const Separator = "S20.G00.05.001,'01'\r\n"

// EncodeLatin1 renders text in ISO 8859-1. Fixture text is authored in the
// code page's repertoire, so encoding failures are programming errors.
func EncodeLatin1(text string) []byte {
	out, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(text))
	if err != nil {
		panic("testutil: fixture text outside ISO 8859-1: " + err.Error())
	}
	return out
}

// Record renders one record block with the standard markers filled in.
func Record(payPeriod, establishment, activity string) string {
	var b strings.Builder
	b.WriteString("S20.G00.05.005,'" + payPeriod + "'\r\n")
	b.WriteString("S21.G00.06.001,'" + establishment + "'\r\n")
	b.WriteString("S21.G00.06.002,'" + activity + "'\r\n")
	return b.String()
}

// BuildDeclarationFile assembles header + separator-delimited records and
// encodes the result in ISO 8859-1, matching real input files.
func BuildDeclarationFile(header string, records ...string) []byte {
	var b strings.Builder
	b.WriteString(header)
	for _, r := range records {
		b.WriteString(Separator)
		b.WriteString(r)
	}
	return EncodeLatin1(b.String())
}
