package dto

import "time"

// BalanceResponse represents the current point balance of a user.
type BalanceResponse struct {
	UserID    int64     `json:"userId"`
	Amount    int64     `json:"amount"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AmountRequest carries the point amount for charge and use operations.
type AmountRequest struct {
	Amount int64 `json:"amount"`
}
