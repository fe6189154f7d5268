package usage

import (
	"context"

	"github.com/KirkDiggler/dicebag/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/dicebag/internal/repositories/usage Repository

// Repository defines the interface for daily roll usage persistence
type Repository interface {
	// GetOrCreateTodayUsage returns today's usage record for an identity,
	// creating a zero record if none exists
	GetOrCreateTodayUsage(ctx context.Context, input *GetOrCreateTodayUsageInput) (*models.UsageRecord, error)

	// IncrementTodayUsage atomically adds to today's roll count for an
	// identity, creating the record if needed, and returns the new record
	IncrementTodayUsage(ctx context.Context, input *IncrementTodayUsageInput) (*models.UsageRecord, error)

	// GetTodayUsage returns today's roll count for an identity, zero if
	// no record exists
	GetTodayUsage(ctx context.Context, input *GetTodayUsageInput) (int, error)

	// CleanupOldUsage deletes usage records older than the retention
	// window and returns how many were removed
	CleanupOldUsage(ctx context.Context, input *CleanupOldUsageInput) (*CleanupOldUsageOutput, error)
}
