package tracker

import (
	"github.com/KirkDiggler/dicebag/internal/models"
	usageRepo "github.com/KirkDiggler/dicebag/internal/repositories/usage"
)

// Config holds configuration for the usage tracker service
type Config struct {
	// UsageRepo persists the per-day counters
	UsageRepo usageRepo.Repository

	// DailyLimit is the anonymous daily roll quota
	DailyLimit int
}

// ValidateRollInput contains parameters for the quota check
type ValidateRollInput struct {
	// RequestedRolls is how many rolls the caller wants
	RequestedRolls int

	// Identity is the anonymous caller's identity; empty means the
	// caller is authenticated and exempt from the quota
	Identity string
}

// RecordRollInput contains parameters for recording granted rolls
type RecordRollInput struct {
	RollCount int
	Identity  string
}

// GetUsageStatsInput contains parameters for reading quota standing
type GetUsageStatsInput struct {
	Identity string
}

// GetUsageStatsOutput contains an identity's quota standing
type GetUsageStatsOutput struct {
	Stats *models.UsageStats
}
