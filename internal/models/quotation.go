package models

import "time"

// Currency identifies the currency of a quoted price.
type Currency string

const (
	CurrencyHKD Currency = "HKD"
	CurrencyUSD Currency = "USD"
	CurrencyCNY Currency = "CNY"
	CurrencyEUR Currency = "EUR"
)

// Quotation is one seller's price offer for one watch reference, extracted
// from a single chat message. Prices are stored in minor units (cents) to
// avoid floating point drift.
type Quotation struct {
	ID              int64     `json:"id,omitempty"`
	UserID          int64     `json:"userId,omitempty"`
	ChatFileID      int64     `json:"chatFileId,omitempty"`
	WatchModel      string    `json:"watchModel"`
	PriceMinorUnits int64     `json:"price"`
	Currency        Currency  `json:"currency"`
	WarrantyDate    *string   `json:"warrantyDate,omitempty"` // literal substring from the message, not normalized
	SellerPhone     string    `json:"sellerPhone"`
	SellerName      *string   `json:"sellerName,omitempty"`
	QuoteDate       time.Time `json:"quoteDate"`
	MessageText     string    `json:"messageText"`
	CreatedAt       time.Time `json:"createdAt,omitempty"`
}
