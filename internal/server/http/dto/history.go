package dto

import "time"

// HistoryEntryResponse represents one recorded ledger mutation.
type HistoryEntryResponse struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	Amount     int64     `json:"amount"`
	Type       string    `json:"type"`
	RecordedAt time.Time `json:"recordedAt"`
}
