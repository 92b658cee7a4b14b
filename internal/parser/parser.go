// Package parser turns exported chat transcripts into structured watch
// quotations.
//
// The pipeline has two stages: SegmentMessages splits raw multi-line text
// into timestamped, attributed messages, and AssembleQuotations runs the
// field extractors (watch model, price, warranty date, phone number) over
// each message body. Everything is best-effort over noisy human text:
// malformed input yields fewer results, never an error. The package holds no
// state between calls, so all functions are safe for concurrent use.
package parser

import "watchquote/api/internal/models"

// Result bundles the messages found in a transcript and the quotations
// assembled from them.
type Result struct {
	Messages   []models.Message
	Quotations []models.Quotation
}

// Parse processes one exported transcript end to end.
func Parse(text string) Result {
	messages := SegmentMessages(text)
	return Result{
		Messages:   messages,
		Quotations: AssembleQuotations(messages),
	}
}

// AssembleQuotations builds quotation records from segmented messages. A
// message must name at least one watch model and one price to produce
// anything; when it names several models they all share the one extracted
// price. Unattributed messages are skipped.
func AssembleQuotations(messages []models.Message) []models.Quotation {
	var quotations []models.Quotation

	for _, msg := range messages {
		if !msg.HasAuthor() {
			continue
		}

		price, priceSpan, ok := extractPrice(msg.Body)
		if !ok {
			continue
		}
		// A six-digit amount like "$150000" would otherwise read as a bare
		// reference number, so the price digits are off-limits to the model
		// rules.
		watchModels := extractWatchModels(msg.Body, priceSpan)
		if len(watchModels) == 0 {
			continue
		}

		var warrantyDate *string
		if wd, ok := ExtractWarrantyDate(msg.Body); ok {
			warrantyDate = &wd
		}

		phone, found := ExtractPhoneNumber(msg.Author)
		if !found {
			phone, found = ExtractPhoneNumber(msg.Body)
		}
		if !found {
			// No number anywhere; the display name is the only identity left.
			phone = msg.Author
		}
		sellerName := msg.Author

		for _, model := range watchModels {
			quotations = append(quotations, models.Quotation{
				WatchModel:      model,
				PriceMinorUnits: price.AmountMinorUnits,
				Currency:        price.Currency,
				WarrantyDate:    warrantyDate,
				SellerPhone:     phone,
				SellerName:      &sellerName,
				QuoteDate:       msg.Timestamp,
				MessageText:     msg.Body,
			})
		}
	}
	return quotations
}
