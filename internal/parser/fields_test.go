package parser

import "testing"

func defaultMarkers() Markers {
	return Markers{
		PayPeriod:     "S20.G00.05.005",
		Establishment: "S21.G00.06.001",
		Activity:      "S21.G00.06.002",
	}
}

func TestExtractField(t *testing.T) {
	record := "S20.G00.05.005,'31012023'\r\nS21.G00.06.001,'111222333'\r\nS21.G00.06.002,'A'\r\n"

	if got := ExtractField(record, "S21.G00.06.001"); got != "111222333" {
		t.Errorf("Expected 111222333, got %q", got)
	}
	if got := ExtractField(record, "S20.G00.05.005"); got != "31012023" {
		t.Errorf("Expected 31012023, got %q", got)
	}
	if got := ExtractField(record, "S21.G00.06.002"); got != "A" {
		t.Errorf("Expected A, got %q", got)
	}
}

func TestExtractFieldDeterministic(t *testing.T) {
	record := "S21.G00.06.001,'98765'\r\n"

	first := ExtractField(record, "S21.G00.06.001")
	for i := 0; i < 10; i++ {
		if got := ExtractField(record, "S21.G00.06.001"); got != first {
			t.Fatalf("Extraction not deterministic: %q vs %q", got, first)
		}
	}
}

func TestExtractFieldMissingMarker(t *testing.T) {
	record := "S20.G00.05.005,'01012023'\r\n"

	if got := ExtractField(record, "S21.G00.06.002"); got != "" {
		t.Errorf("Expected empty string for missing marker, got %q", got)
	}
}

func TestExtractFieldMarkerWithoutValue(t *testing.T) {
	// Marker present but not followed by the ,' introducer.
	record := "S21.G00.06.001 something else\r\n"

	if got := ExtractField(record, "S21.G00.06.001"); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}
}

func TestExtractFieldsMissingActivity(t *testing.T) {
	record := "S20.G00.05.005,'01012023'\r\nS21.G00.06.001,'111222333'\r\n"

	f := ExtractFields(record, defaultMarkers())
	if f.Establishment != "111222333" {
		t.Errorf("Expected establishment 111222333, got %q", f.Establishment)
	}
	if f.Activity != "" {
		t.Errorf("Expected empty activity, got %q", f.Activity)
	}
}

func TestFormatPeriod(t *testing.T) {
	if got := FormatPeriod("31012023"); got != "2023-01-31" {
		t.Errorf("Expected 2023-01-31, got %q", got)
	}
	// No calendar validation: day 31 in a 30-day month passes verbatim.
	if got := FormatPeriod("31042023"); got != "2023-04-31" {
		t.Errorf("Expected 2023-04-31, got %q", got)
	}
	if got := FormatPeriod(""); got != "" {
		t.Errorf("Expected empty period for empty input, got %q", got)
	}
	if got := FormatPeriod("0101"); got != "" {
		t.Errorf("Expected empty period for short input, got %q", got)
	}
}
