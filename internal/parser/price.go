package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"watchquote/api/internal/models"
)

// Price is a parsed amount in minor units (cents) with its currency.
type Price struct {
	AmountMinorUnits int64
	Currency         models.Currency
}

// priceRule ties one currency-marked pattern to the currency it implies.
// Group 1 captures the digits, group 2 the optional multiplier marker.
type priceRule struct {
	pattern  *regexp.Regexp
	currency models.Currency
}

// priceRules are tried in order and the first match wins. Ordering matters:
// the bare-$ rule claims HKD before the USD rule can see the amount, and the
// HKD rules lead because HKD is the default currency of this market.
var priceRules = []priceRule{
	{regexp.MustCompile(`(?i)(?:HKD?|HK\$|港幣|港币)\s?\$?([\d,]+(?:\.\d{2})?)([kK萬万]?)`), models.CurrencyHKD},
	{regexp.MustCompile(`(?i)\$\s?([\d,]+(?:\.\d{2})?)([kK萬万]?)(?:\s?HKD)?`), models.CurrencyHKD},
	{regexp.MustCompile(`(?i)(?:USD|US\$|美金|美元)\s?\$?([\d,]+(?:\.\d{2})?)([kK]?)`), models.CurrencyUSD},
	{regexp.MustCompile(`(?i)(?:CNY|RMB|人民币|人民幣)\s?¥?([\d,]+(?:\.\d{2})?)([kK萬万]?)`), models.CurrencyCNY},
	{regexp.MustCompile(`(?i)¥\s?([\d,]+(?:\.\d{2})?)([kK萬万]?)`), models.CurrencyCNY},
	{regexp.MustCompile(`(?i)(?:EUR|€|歐元|欧元)\s?([\d,]+(?:\.\d{2})?)([kK]?)`), models.CurrencyEUR},
}

// bareWanPattern catches standalone 萬/万 amounts with no currency marker at
// all, e.g. "5萬".
var bareWanPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)[萬万]`)

// ExtractPrice finds the first currency-marked amount in text and normalizes
// it to minor units. The multiplier (k = thousands, 萬/万 = ten thousands)
// is read only from the single marker position captured right after the
// digits, so the K in a trailing "HKD" never scales the amount. When nothing
// currency-marked matches, a bare 萬/万 amount is taken as HKD.
func ExtractPrice(text string) (Price, bool) {
	price, _, ok := extractPrice(text)
	return price, ok
}

// extractPrice also reports the span of the captured amount digits, so the
// assembler can keep model candidates off the price literal.
func extractPrice(text string) (Price, [2]int, bool) {
	for _, rule := range priceRules {
		idx := rule.pattern.FindStringSubmatchIndex(text)
		if idx == nil {
			continue
		}
		digits := text[idx[2]:idx[3]]
		marker := ""
		if idx[4] >= 0 {
			marker = text[idx[4]:idx[5]]
		}

		amount, err := strconv.ParseFloat(strings.ReplaceAll(digits, ",", ""), 64)
		if err != nil {
			continue
		}
		amount *= multiplier(marker)
		return Price{
			AmountMinorUnits: int64(math.Round(amount * 100)),
			Currency:         rule.currency,
		}, [2]int{idx[2], idx[3]}, true
	}

	if idx := bareWanPattern.FindStringSubmatchIndex(text); idx != nil {
		digits := text[idx[2]:idx[3]]
		if amount, err := strconv.ParseFloat(digits, 64); err == nil {
			return Price{
				AmountMinorUnits: int64(math.Round(amount * 10000 * 100)),
				Currency:         models.CurrencyHKD,
			}, [2]int{idx[2], idx[3]}, true
		}
	}

	return Price{}, [2]int{}, false
}

func multiplier(marker string) float64 {
	switch marker {
	case "k", "K":
		return 1000
	case "萬", "万":
		return 10000
	}
	return 1
}
