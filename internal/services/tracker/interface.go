package tracker

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/dicebag/internal/services/tracker Service

// Service defines the interface for anonymous daily quota tracking
type Service interface {
	// ValidateRoll fails with ErrDailyLimitExceeded when the requested
	// rolls would push an anonymous identity past the daily quota
	ValidateRoll(ctx context.Context, input *ValidateRollInput) error

	// RecordRoll records granted rolls against today's usage; storage
	// failures are logged and swallowed so a granted roll never fails
	RecordRoll(ctx context.Context, input *RecordRollInput) error

	// GetUsageStats returns an identity's standing against the quota
	GetUsageStats(ctx context.Context, input *GetUsageStatsInput) (*GetUsageStatsOutput, error)
}
