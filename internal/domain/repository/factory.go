package repository

import "context"

// Factory describes access to the domain repositories of one storage backend.
type Factory interface {
	Balances() BalanceRepository
	Histories() HistoryRepository

	// HealthCheck verifies the backend is reachable.
	HealthCheck(ctx context.Context) error

	// Close releases backend resources.
	Close()
}
