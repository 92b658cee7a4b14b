package models

import "time"

// ChatFile records one uploaded transcript: where the original text is
// archived and how much the parser got out of it.
type ChatFile struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"userId"`
	Filename         string    `json:"filename"`
	FileKey          string    `json:"fileKey"`
	UploadDate       time.Time `json:"uploadDate"`
	TotalMessages    int       `json:"totalMessages"`
	ParsedQuotations int       `json:"parsedQuotations"`
}
