package parser

import (
	"regexp"
	"strings"
	"time"

	"watchquote/api/internal/models"
)

// headerPatterns recognize the line shapes that start a new message in the
// supported export formats. They are tried in order and the first match
// wins. Groups: 1=date, 2=time, 3=author, 4=body.
var headerPatterns = []*regexp.Regexp{
	// DD/MM/YYYY, HH:MM - Name: Message (also MM/DD/YYYY and AM/PM clocks)
	regexp.MustCompile(`(?i)^(\d{1,2}/\d{1,2}/\d{2,4}),?\s+(\d{1,2}:\d{2}(?::\d{2})?(?:\s*[AP]M)?)\s*[-–]\s*([^:]+):\s*(.+)$`),
	// [DD/MM/YYYY, HH:MM:SS] Name: Message
	regexp.MustCompile(`(?i)^\[(\d{1,2}/\d{1,2}/\d{2,4}),?\s+(\d{1,2}:\d{2}:\d{2})\]\s*([^:]+):\s*(.+)$`),
	// YYYY-MM-DD HH:MM - Name: Message
	regexp.MustCompile(`(?i)^(\d{4}-\d{2}-\d{2})\s+(\d{1,2}:\d{2}(?::\d{2})?)\s*[-–]\s*([^:]+):\s*(.+)$`),
}

// SegmentMessages splits raw transcript text into ordered, attributed
// messages. A line matching no header pattern is folded into the body of the
// message it follows, because exports wrap long messages across lines
// without repeating the header. Blank lines are skipped and a continuation
// line before any header is dropped.
func SegmentMessages(text string) []models.Message {
	return segmentMessages(text, time.Now)
}

func segmentMessages(text string, now func() time.Time) []models.Message {
	var messages []models.Message
	var current *models.Message

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		var match []string
		for _, pattern := range headerPatterns {
			if m := pattern.FindStringSubmatch(line); m != nil {
				match = m
				break
			}
		}

		if match == nil {
			if current != nil {
				current.Body += "\n" + line
			}
			continue
		}

		if current != nil {
			messages = append(messages, *current)
		}
		current = &models.Message{
			Timestamp: normalizeDateTime(match[1], match[2], now),
			Author:    strings.TrimSpace(match[3]),
			Body:      strings.TrimSpace(match[4]),
		}
	}

	if current != nil {
		messages = append(messages, *current)
	}
	return messages
}
