package model

import "time"

// Balance is the current point total owned by a single user.
type Balance struct {
	UserID    int64
	Amount    int64
	UpdatedAt time.Time
}
