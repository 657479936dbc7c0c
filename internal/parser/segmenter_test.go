package parser

import "testing"

const sep = "S20.G00.05.001,'01'\r\n"

func TestSplitRoundTrip(t *testing.T) {
	header := "S10.G00.00.001,'SOFT'\r\n"
	record := "S20.G00.05.005,'01012023'\r\n"

	gotHeader, records := Split(header+sep+record, sep)
	if gotHeader != header {
		t.Errorf("Expected header %q, got %q", header, gotHeader)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if records[0] != record {
		t.Errorf("Expected record %q, got %q", record, records[0])
	}
}

func TestSplitMultipleRecordsKeepOrder(t *testing.T) {
	header := "HEADER\r\n"
	r1 := "first\r\n"
	r2 := "second\r\n"
	r3 := "third\r\n"

	gotHeader, records := Split(header+sep+r1+sep+r2+sep+r3, sep)
	if gotHeader != header {
		t.Errorf("Expected header %q, got %q", header, gotHeader)
	}
	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}
	for i, want := range []string{r1, r2, r3} {
		if records[i] != want {
			t.Errorf("Record %d: expected %q, got %q", i, want, records[i])
		}
	}
}

func TestSplitSeparatorAbsent(t *testing.T) {
	text := "just a header, no records"

	header, records := Split(text, sep)
	if header != text {
		t.Errorf("Expected whole text as header, got %q", header)
	}
	if len(records) != 0 {
		t.Errorf("Expected 0 records, got %d", len(records))
	}
}

func TestSplitLiteralMatchOnly(t *testing.T) {
	// A near-miss marker where '.' is replaced by another character must not
	// split; the separator is a literal, not a pattern.
	nearMiss := "S20xG00x05x001,'01'\r\n"
	text := "header" + nearMiss + "tail"

	header, records := Split(text, sep)
	if header != text {
		t.Errorf("Expected no split on near-miss separator, got header %q", header)
	}
	if len(records) != 0 {
		t.Errorf("Expected 0 records, got %d", len(records))
	}
}
