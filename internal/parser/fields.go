package parser

import (
	"strings"
	"unicode"
)

// Markers identifies the three fields pulled out of every record block.
// Each marker is followed in the file by a comma and a single-quoted value,
// e.g. S21.G00.06.001,'123456789'.
type Markers struct {
	PayPeriod     string
	Establishment string
	Activity      string
}

// Fields holds the raw values extracted from one record block.
type Fields struct {
	PayPeriod     string
	Establishment string
	Activity      string
}

// valueIntroducer separates a marker from its quoted value.
const valueIntroducer = ",'"

// ExtractField returns the value of marker within record: the text after the
// ",'" introducer, ended by the closing quote or the next whitespace.
//
// A missing marker yields the empty string rather than an error. This is a
// deliberate tolerance: unexpected record layouts degrade the derived keys
// instead of aborting the whole batch.
func ExtractField(record, marker string) string {
	idx := strings.Index(record, marker)
	if idx < 0 {
		return ""
	}
	rest := record[idx+len(marker):]
	if !strings.HasPrefix(rest, valueIntroducer) {
		return ""
	}
	rest = rest[len(valueIntroducer):]
	end := strings.IndexFunc(rest, func(r rune) bool {
		return r == '\'' || unicode.IsSpace(r)
	})
	if end < 0 {
		return rest
	}
	return rest[:end]
}

// ExtractFields pulls the pay period, establishment identifier and activity
// code out of one record block.
func ExtractFields(record string, m Markers) Fields {
	return Fields{
		PayPeriod:     ExtractField(record, m.PayPeriod),
		Establishment: ExtractField(record, m.Establishment),
		Activity:      ExtractField(record, m.Activity),
	}
}

// FormatPeriod reformats an 8-character ddmmyyyy pay period as yyyy-mm-dd
// using fixed-offset slicing. No calendar validation: day 31 in a 30-day
// month passes through verbatim. Degenerate values shorter than 8 characters
// (a missing pay-period marker) yield the empty string.
func FormatPeriod(raw string) string {
	if len(raw) < 8 {
		return ""
	}
	return raw[4:8] + "-" + raw[2:4] + "-" + raw[0:2]
}
