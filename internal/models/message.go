package models

import "time"

// Message is a single attributed entry from an exported chat transcript.
// Continuation lines in the export are folded into Body with newlines.
type Message struct {
	Timestamp time.Time `json:"timestamp"`
	Author    string    `json:"author,omitempty"` // empty for system/unattributed lines
	Body      string    `json:"body"`
}

// HasAuthor reports whether the message is attributed to a participant.
func (m Message) HasAuthor() bool {
	return m.Author != ""
}
