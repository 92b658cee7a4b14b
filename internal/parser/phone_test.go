package parser

import "testing"

func TestExtractPhoneNumber_International(t *testing.T) {
	phone, ok := ExtractPhoneNumber("+852 1234 5678")
	if !ok {
		t.Fatal("Expected extraction to succeed")
	}
	if phone != "+85212345678" {
		t.Errorf("Expected +85212345678, got %q", phone)
	}
}

func TestExtractPhoneNumber_LocalEightDigit(t *testing.T) {
	phone, ok := ExtractPhoneNumber("Contact: 91234567")
	if !ok {
		t.Fatal("Expected extraction to succeed")
	}
	if phone != "+85291234567" {
		t.Errorf("Expected +85291234567, got %q", phone)
	}
}

func TestExtractPhoneNumber_ChineseContactPrefix(t *testing.T) {
	phone, ok := ExtractPhoneNumber("聯絡：91234567")
	if !ok {
		t.Fatal("Expected extraction to succeed")
	}
	if phone != "+85291234567" {
		t.Errorf("Expected +85291234567, got %q", phone)
	}
}

func TestExtractPhoneNumber_BareDigitRun(t *testing.T) {
	// Starts with 1, so the local rule skips it and the generic rule returns
	// it verbatim.
	phone, ok := ExtractPhoneNumber("12345678")
	if !ok {
		t.Fatal("Expected extraction to succeed")
	}
	if phone != "12345678" {
		t.Errorf("Expected 12345678, got %q", phone)
	}
}

func TestExtractPhoneNumber_InternationalWins(t *testing.T) {
	phone, ok := ExtractPhoneNumber("call 91234567 or +86 138 1234 5678")
	if !ok {
		t.Fatal("Expected extraction to succeed")
	}
	if phone != "+8613812345678" {
		t.Errorf("Expected international number to win, got %q", phone)
	}
}

func TestExtractPhoneNumber_None(t *testing.T) {
	for _, input := range []string{"John Doe", "no digits here", "123"} {
		if phone, ok := ExtractPhoneNumber(input); ok {
			t.Errorf("ExtractPhoneNumber(%q): expected no match, got %q", input, phone)
		}
	}
}
