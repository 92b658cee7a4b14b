package parser

import "testing"

func TestExtractWarrantyDate_Keyworded(t *testing.T) {
	date, ok := ExtractWarrantyDate("保卡 2023-01-15")
	if !ok {
		t.Fatal("Expected extraction to succeed")
	}
	if date != "2023-01-15" {
		t.Errorf("Expected 2023-01-15, got %q", date)
	}
}

func TestExtractWarrantyDate_SlashShape(t *testing.T) {
	date, ok := ExtractWarrantyDate("warranty card date: 01/15/2023")
	if !ok {
		t.Fatal("Expected extraction to succeed")
	}
	if date != "01/15/2023" {
		t.Errorf("Expected 01/15/2023, got %q", date)
	}
}

func TestExtractWarrantyDate_ChineseShape(t *testing.T) {
	date, ok := ExtractWarrantyDate("保修卡 2023年6月15日")
	if !ok {
		t.Fatal("Expected extraction to succeed")
	}
	if date != "2023年6月15日" {
		t.Errorf("Expected 2023年6月15日, got %q", date)
	}
}

func TestExtractWarrantyDate_MonthNameShape(t *testing.T) {
	date, ok := ExtractWarrantyDate("Warranty from January 2023")
	if !ok {
		t.Fatal("Expected extraction to succeed")
	}
	if date != "January 2023" {
		t.Errorf("Expected January 2023, got %q", date)
	}
}

func TestExtractWarrantyDate_GateClosedWithoutKeyword(t *testing.T) {
	if date, ok := ExtractWarrantyDate("Just a date 2023-01-15"); ok {
		t.Errorf("Expected no warranty date without a keyword, got %q", date)
	}
}

func TestExtractWarrantyDate_KeywordCaseInsensitive(t *testing.T) {
	date, ok := ExtractWarrantyDate("WARRANTY 2023-01-15")
	if !ok {
		t.Fatal("Expected extraction to succeed")
	}
	if date != "2023-01-15" {
		t.Errorf("Expected 2023-01-15, got %q", date)
	}
}

func TestExtractWarrantyDate_KeywordWithoutDate(t *testing.T) {
	if date, ok := ExtractWarrantyDate("保卡齊全"); ok {
		t.Errorf("Expected no date, got %q", date)
	}
}
