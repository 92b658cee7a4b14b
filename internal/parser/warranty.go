package parser

import (
	"regexp"
	"strings"
)

// warrantyKeywords gate date extraction. A bare date in a message says
// nothing about the warranty card; the message has to mention the card.
var warrantyKeywords = []string{"保卡", "保修卡", "warranty", "card date", "卡日期"}

// warrantyDatePatterns are tried in order and the first match is returned as
// the literal substring. A single keyword gives no locale hint, so the text
// is handed back unparsed rather than guessing day/month order.
var warrantyDatePatterns = []*regexp.Regexp{
	// YYYY-MM-DD, YYYY/MM/DD, YYYY.MM.DD
	regexp.MustCompile(`\b\d{4}[-/.]\d{1,2}[-/.]\d{1,2}\b`),
	// DD/MM/YYYY or MM/DD/YYYY
	regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b`),
	// YYYY年MM月 or YYYY年MM月DD日
	regexp.MustCompile(`\d{4}年\d{1,2}月(?:\d{1,2}日)?`),
	// Month-name YYYY (Jan 2023, January 2023)
	regexp.MustCompile(`(?i)(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4}`),
}

// ExtractWarrantyDate returns the literal warranty-card date mentioned in
// text, if the message references a warranty card at all.
func ExtractWarrantyDate(text string) (string, bool) {
	lower := strings.ToLower(text)
	gated := false
	for _, kw := range warrantyKeywords {
		if strings.Contains(lower, kw) {
			gated = true
			break
		}
	}
	if !gated {
		return "", false
	}

	for _, pattern := range warrantyDatePatterns {
		if m := pattern.FindString(text); m != "" {
			return m, true
		}
	}
	return "", false
}
