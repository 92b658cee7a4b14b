package parser

import (
	"strings"
	"testing"
	"time"
)

func TestSegmentMessages_BasicFormat(t *testing.T) {
	chatText := "01/12/2023, 10:30 - John Doe: Hello\n" +
		"01/12/2023, 10:31 - Jane Smith: Hi there"

	messages := SegmentMessages(chatText)

	if len(messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(messages))
	}
	if messages[0].Author != "John Doe" || messages[0].Body != "Hello" {
		t.Errorf("Unexpected first message: %+v", messages[0])
	}
	if messages[1].Author != "Jane Smith" || messages[1].Body != "Hi there" {
		t.Errorf("Unexpected second message: %+v", messages[1])
	}

	want := time.Date(2023, time.December, 1, 10, 30, 0, 0, time.Local)
	if !messages[0].Timestamp.Equal(want) {
		t.Errorf("Expected timestamp %v, got %v", want, messages[0].Timestamp)
	}
}

func TestSegmentMessages_ContinuationFolding(t *testing.T) {
	chatText := "01/12/2023, 10:30 - John: Line 1\nLine 2\nLine 3"

	messages := SegmentMessages(chatText)

	if len(messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(messages))
	}
	if messages[0].Body != "Line 1\nLine 2\nLine 3" {
		t.Errorf("Expected folded body, got %q", messages[0].Body)
	}
}

func TestSegmentMessages_BracketedFormat(t *testing.T) {
	chatText := "[01/12/2023, 10:30:15] Seller: 116500LN available"

	messages := SegmentMessages(chatText)

	if len(messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(messages))
	}
	if messages[0].Author != "Seller" {
		t.Errorf("Expected author Seller, got %q", messages[0].Author)
	}
	want := time.Date(2023, time.December, 1, 10, 30, 15, 0, time.Local)
	if !messages[0].Timestamp.Equal(want) {
		t.Errorf("Expected timestamp %v, got %v", want, messages[0].Timestamp)
	}
}

func TestSegmentMessages_ISOFormat(t *testing.T) {
	chatText := "2023-12-01 10:30 - Seller: hello"

	messages := SegmentMessages(chatText)

	if len(messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(messages))
	}
	want := time.Date(2023, time.December, 1, 10, 30, 0, 0, time.Local)
	if !messages[0].Timestamp.Equal(want) {
		t.Errorf("Expected timestamp %v, got %v", want, messages[0].Timestamp)
	}
}

func TestSegmentMessages_BlankLinesSkipped(t *testing.T) {
	chatText := "01/12/2023, 10:30 - John: Hello\n\n\n01/12/2023, 10:31 - Jane: Hi"

	messages := SegmentMessages(chatText)

	if len(messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(messages))
	}
	// A blank line must not become part of the first body.
	if strings.Contains(messages[0].Body, "\n") {
		t.Errorf("Blank lines leaked into body: %q", messages[0].Body)
	}
}

func TestSegmentMessages_OrphanLinesDropped(t *testing.T) {
	chatText := "no header here\nstill no header\n01/12/2023, 10:30 - John: Hello"

	messages := SegmentMessages(chatText)

	if len(messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(messages))
	}
	if messages[0].Body != "Hello" {
		t.Errorf("Orphan lines should be dropped, got body %q", messages[0].Body)
	}
}

func TestSegmentMessages_SystemLineWithoutColonIsContinuation(t *testing.T) {
	chatText := "01/12/2023, 10:30 - John: Hello\n" +
		"01/12/2023, 10:31 - Messages are end-to-end encrypted"

	messages := SegmentMessages(chatText)

	// The second line has no author colon, so it folds into the first body.
	if len(messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(messages))
	}
	if !strings.Contains(messages[0].Body, "encrypted") {
		t.Errorf("Expected system line folded into body, got %q", messages[0].Body)
	}
}

func TestSegmentMessages_CRLFInput(t *testing.T) {
	chatText := "01/12/2023, 10:30 - John: Hello\r\n01/12/2023, 10:31 - Jane: Hi\r\n"

	messages := SegmentMessages(chatText)

	if len(messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(messages))
	}
	if messages[1].Body != "Hi" {
		t.Errorf("Expected body %q, got %q", "Hi", messages[1].Body)
	}
}

func TestSegmentMessages_Empty(t *testing.T) {
	if got := SegmentMessages(""); len(got) != 0 {
		t.Errorf("Expected no messages for empty input, got %d", len(got))
	}
}
