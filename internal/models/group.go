package models

import "time"

// Group is a chat group monitored by the external sync client on behalf of
// a user.
type Group struct {
	ID           int64      `json:"id"`
	UserID       int64      `json:"userId"`
	GroupID      string     `json:"groupId"`
	GroupName    string     `json:"groupName"`
	IsActive     bool       `json:"isActive"`
	LastSyncTime *time.Time `json:"lastSyncTime,omitempty"`
	MessageCount int        `json:"messageCount"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// Sync status values for a monitored group.
const (
	SyncStatusRunning = "running"
	SyncStatusPaused  = "paused"
	SyncStatusError   = "error"
)

// SyncStatus tracks the health of the sync feed for one group.
type SyncStatus struct {
	ID           int64      `json:"id"`
	UserID       int64      `json:"userId"`
	GroupID      string     `json:"groupId"`
	Status       string     `json:"status"`
	LastMessage  *time.Time `json:"lastMessage,omitempty"`
	ErrorMessage *string    `json:"errorMessage,omitempty"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
