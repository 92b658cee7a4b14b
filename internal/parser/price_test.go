package parser

import (
	"testing"

	"watchquote/api/internal/models"
)

func TestExtractPrice(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		amount   int64
		currency models.Currency
	}{
		{"bare dollar is HKD", "Price: $50000", 5000000, models.CurrencyHKD},
		{"HKD prefix with separators", "HKD 50,000", 5000000, models.CurrencyHKD},
		{"k multiplier", "Price: $50k", 5000000, models.CurrencyHKD},
		{"wan multiplier with dollar", "$5萬", 5000000, models.CurrencyHKD},
		{"HK dollar sign", "HK$120000", 12000000, models.CurrencyHKD},
		{"USD keyword", "USD 10000", 1000000, models.CurrencyUSD},
		{"USD chinese keyword", "美金 25,500", 2550000, models.CurrencyUSD},
		{"CNY yen sign", "¥30000", 3000000, models.CurrencyCNY},
		{"RMB keyword", "RMB 88,000", 8800000, models.CurrencyCNY},
		{"EUR keyword", "EUR 15000", 1500000, models.CurrencyEUR},
		{"euro sign", "€9,999", 999900, models.CurrencyEUR},
		{"bare wan fallback", "5萬", 5000000, models.CurrencyHKD},
		{"fractional wan fallback", "4.5萬", 4500000, models.CurrencyHKD},
		{"simplified wan", "3万", 3000000, models.CurrencyHKD},
		{"wan with trailing currency word", "$5萬 HKD", 5000000, models.CurrencyHKD},
		{"decimal amount", "$1,234.56", 123456, models.CurrencyHKD},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, ok := ExtractPrice(tt.input)
			if !ok {
				t.Fatalf("ExtractPrice(%q): expected a match", tt.input)
			}
			if price.AmountMinorUnits != tt.amount {
				t.Errorf("ExtractPrice(%q): amount = %d, want %d", tt.input, price.AmountMinorUnits, tt.amount)
			}
			if price.Currency != tt.currency {
				t.Errorf("ExtractPrice(%q): currency = %s, want %s", tt.input, price.Currency, tt.currency)
			}
		})
	}
}

func TestExtractPrice_NoMatch(t *testing.T) {
	for _, input := range []string{"no price here", "model 116500LN", ""} {
		if price, ok := ExtractPrice(input); ok {
			t.Errorf("ExtractPrice(%q): expected no match, got %+v", input, price)
		}
	}
}

func TestExtractPrice_KInHKDIsNotAMultiplier(t *testing.T) {
	// The K in the HKD marker precedes the digits and must not scale them.
	price, ok := ExtractPrice("HKD 50000")
	if !ok {
		t.Fatal("Expected a match")
	}
	if price.AmountMinorUnits != 5000000 {
		t.Errorf("Expected 5000000 minor units, got %d", price.AmountMinorUnits)
	}
}

func TestExtractPrice_FirstRuleWins(t *testing.T) {
	// Both an HKD marker and a USD marker appear; HKD is checked first.
	price, ok := ExtractPrice("HKD 50000 or USD 6400")
	if !ok {
		t.Fatal("Expected a match")
	}
	if price.Currency != models.CurrencyHKD {
		t.Errorf("Expected HKD to win, got %s", price.Currency)
	}
}

func TestExtractPrice_NonNegative(t *testing.T) {
	inputs := []string{"$0", "$50k", "¥1", "0.5萬"}
	for _, input := range inputs {
		price, ok := ExtractPrice(input)
		if !ok {
			t.Fatalf("ExtractPrice(%q): expected a match", input)
		}
		if price.AmountMinorUnits < 0 {
			t.Errorf("ExtractPrice(%q): negative minor units %d", input, price.AmountMinorUnits)
		}
	}
}
