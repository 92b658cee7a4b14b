package models

import "time"

// BlacklistEntry marks a seller phone number whose quotations should be
// hidden from search results.
type BlacklistEntry struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	PhoneNumber string    `json:"phoneNumber"`
	Reason      *string   `json:"reason,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
