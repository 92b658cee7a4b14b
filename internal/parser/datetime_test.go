package parser

import (
	"testing"
	"time"
)

var fallbackInstant = time.Date(2024, time.January, 2, 3, 4, 5, 0, time.Local)

func fixedNow() time.Time {
	return fallbackInstant
}

func TestNormalizeDateTime_DayFirst(t *testing.T) {
	got := normalizeDateTime("01/12/2023", "10:30", fixedNow)
	want := time.Date(2023, time.December, 1, 10, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestNormalizeDateTime_UnambiguousDayFirst(t *testing.T) {
	// 13 cannot be a month, so day-first succeeds immediately.
	got := normalizeDateTime("13/02/2023", "09:15", fixedNow)
	want := time.Date(2023, time.February, 13, 9, 15, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestNormalizeDateTime_MonthFirstFallback(t *testing.T) {
	// 02/13 is invalid day-first (month 13), so the US order kicks in.
	got := normalizeDateTime("02/13/2023", "09:15", fixedNow)
	want := time.Date(2023, time.February, 13, 9, 15, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestNormalizeDateTime_ISOFormat(t *testing.T) {
	got := normalizeDateTime("2023-12-01", "10:30:45", fixedNow)
	want := time.Date(2023, time.December, 1, 10, 30, 45, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestNormalizeDateTime_TwoDigitYear(t *testing.T) {
	got := normalizeDateTime("01/12/23", "10:30", fixedNow)
	want := time.Date(2023, time.December, 1, 10, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestNormalizeDateTime_TwelveHourClock(t *testing.T) {
	got := normalizeDateTime("01/12/2023", "10:30 PM", fixedNow)
	want := time.Date(2023, time.December, 1, 22, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestNormalizeDateTime_InvalidBothOrders(t *testing.T) {
	// Feb 31 is invalid in either interpretation, so the current time wins.
	got := normalizeDateTime("31/02/2023", "10:30", fixedNow)
	if !got.Equal(fallbackInstant) {
		t.Errorf("Expected fallback %v, got %v", fallbackInstant, got)
	}
}

func TestNormalizeDateTime_Garbage(t *testing.T) {
	for _, input := range []string{"not-a-date-at", "01/12", "a/b/c", ""} {
		got := normalizeDateTime(input, "10:30", fixedNow)
		if !got.Equal(fallbackInstant) {
			t.Errorf("normalizeDateTime(%q): expected fallback %v, got %v", input, fallbackInstant, got)
		}
	}
}

func TestNormalizeDateTime_BadClockDefaultsMidnight(t *testing.T) {
	got := normalizeDateTime("01/12/2023", "later", fixedNow)
	want := time.Date(2023, time.December, 1, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		input               string
		hour, min, sec      int
		ok                  bool
	}{
		{"10:30", 10, 30, 0, true},
		{"10:30:45", 10, 30, 45, true},
		{"9:05", 9, 5, 0, true},
		{"10:30 PM", 22, 30, 0, true},
		{"10:30pm", 22, 30, 0, true},
		{"12:00 AM", 0, 0, 0, true},
		{"noon", 0, 0, 0, false},
	}
	for _, tt := range tests {
		hour, min, sec, ok := parseClock(tt.input)
		if ok != tt.ok || hour != tt.hour || min != tt.min || sec != tt.sec {
			t.Errorf("parseClock(%q) = %d:%d:%d ok=%v, want %d:%d:%d ok=%v",
				tt.input, hour, min, sec, ok, tt.hour, tt.min, tt.sec, tt.ok)
		}
	}
}
