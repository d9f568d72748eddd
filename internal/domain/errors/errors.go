package errors

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrAmountOverflow     = errors.New("amount overflow")
	ErrLockTimeout        = errors.New("lock acquisition timed out")
)
