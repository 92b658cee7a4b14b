package parser

import (
	"strconv"
	"strings"
	"time"
)

// clockLayouts are tried in order when parsing the time portion of a header.
var clockLayouts = []string{
	"15:04:05",
	"15:04",
	"3:04:05 PM",
	"3:04 PM",
	"3:04:05PM",
	"3:04PM",
}

// normalizeDateTime converts the date and time substrings of a matched header
// line into a concrete instant. Dashed dates are year-first. Slash dates are
// tried day-first and then month-first, since most exports use the
// international order but US-locale exports do not. Anything unparseable
// falls back to the current time: transcripts are noisy and a best-effort
// timestamp beats dropping the message.
func normalizeDateTime(dateStr, timeStr string, now func() time.Time) time.Time {
	dateStr = strings.Trim(strings.TrimSpace(dateStr), "[]")
	timeStr = strings.Trim(strings.TrimSpace(timeStr), "[]")

	hour, min, sec, ok := parseClock(timeStr)
	if !ok {
		hour, min, sec = 0, 0, 0
	}

	if strings.Contains(dateStr, "-") {
		parts := strings.Split(dateStr, "-")
		if len(parts) == 3 {
			if t, ok := buildDate(parts[0], parts[1], parts[2], hour, min, sec); ok {
				return t
			}
		}
		return now()
	}

	parts := strings.Split(dateStr, "/")
	if len(parts) != 3 {
		return now()
	}
	if t, ok := buildDate(parts[2], parts[1], parts[0], hour, min, sec); ok {
		return t
	}
	// US-locale fallback: month/day/year.
	if t, ok := buildDate(parts[2], parts[0], parts[1], hour, min, sec); ok {
		return t
	}
	return now()
}

// buildDate validates the year/month/day combination and assembles the
// instant in local time. Two-digit years are taken as 20xx.
func buildDate(yearStr, monthStr, dayStr string, hour, min, sec int) (time.Time, bool) {
	year, err := strconv.Atoi(strings.TrimSpace(yearStr))
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(strings.TrimSpace(monthStr))
	if err != nil {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(strings.TrimSpace(dayStr))
	if err != nil {
		return time.Time{}, false
	}

	if year < 100 {
		year += 2000
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, hour, min, sec, 0, time.Local)
	// time.Date normalizes out-of-range values (Feb 31 rolls into March), so
	// a changed day or month means this was not a real calendar date.
	if t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}, false
	}
	return t, true
}

func parseClock(timeStr string) (hour, min, sec int, ok bool) {
	s := strings.ToUpper(strings.TrimSpace(timeStr))
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Hour(), t.Minute(), t.Second(), true
		}
	}
	return 0, 0, 0, false
}
