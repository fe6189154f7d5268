package tracker

import (
	"context"
	"errors"
	"log"

	"github.com/KirkDiggler/dicebag/internal/models"
	usageRepo "github.com/KirkDiggler/dicebag/internal/repositories/usage"
)

// service implements the Service interface
type service struct {
	usageRepo  usageRepo.Repository
	dailyLimit int
}

// New creates a new usage tracker service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.UsageRepo == nil {
		return nil, ErrNilUsageRepo
	}

	if cfg.DailyLimit <= 0 {
		return nil, ErrInvalidDailyLimit
	}

	return &service{
		usageRepo:  cfg.UsageRepo,
		dailyLimit: cfg.DailyLimit,
	}, nil
}

// ValidateRoll fails with ErrDailyLimitExceeded when the requested rolls
// would push an anonymous identity past the daily quota. Authenticated
// callers (empty identity) are exempt. If the store cannot be reached the
// roll is permitted; a tracking outage must not take down rolling.
func (s *service) ValidateRoll(ctx context.Context, input *ValidateRollInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if input.Identity == "" {
		return nil
	}

	todayUsage, err := s.usageRepo.GetTodayUsage(ctx, &usageRepo.GetTodayUsageInput{
		Identity: input.Identity,
	})
	if err != nil {
		log.Printf("[UsageTracker] Failed to check quota for %s, allowing roll: %v", input.Identity, err)
		return nil
	}

	if todayUsage+input.RequestedRolls > s.dailyLimit {
		log.Printf("[UsageTracker] Daily limit would be exceeded for %s: %d + %d > %d",
			input.Identity, todayUsage, input.RequestedRolls, s.dailyLimit)
		return ErrDailyLimitExceeded
	}

	return nil
}

// RecordRoll records granted rolls against today's usage. Storage failures
// are logged and swallowed so a roll that was already granted never fails
// on accounting.
func (s *service) RecordRoll(ctx context.Context, input *RecordRollInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if input.Identity == "" || input.RollCount <= 0 {
		return nil
	}

	record, err := s.usageRepo.IncrementTodayUsage(ctx, &usageRepo.IncrementTodayUsageInput{
		Identity: input.Identity,
		Delta:    input.RollCount,
	})
	if err != nil {
		log.Printf("[UsageTracker] Failed to record %d rolls for %s: %v", input.RollCount, input.Identity, err)
		return nil
	}

	log.Printf("[UsageTracker] Recorded %d rolls for %s, total today: %d", input.RollCount, input.Identity, record.TotalRolls)
	return nil
}

// GetUsageStats returns an identity's standing against the quota. On store
// errors it reports a full remaining quota rather than failing the caller.
func (s *service) GetUsageStats(ctx context.Context, input *GetUsageStatsInput) (*GetUsageStatsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	todayUsage := 0
	if input.Identity != "" {
		usage, err := s.usageRepo.GetTodayUsage(ctx, &usageRepo.GetTodayUsageInput{
			Identity: input.Identity,
		})
		if err != nil {
			log.Printf("[UsageTracker] Failed to get usage stats for %s: %v", input.Identity, err)
		} else {
			todayUsage = usage
		}
	}

	remaining := s.dailyLimit - todayUsage
	if remaining < 0 {
		remaining = 0
	}

	return &GetUsageStatsOutput{
		Stats: &models.UsageStats{
			TodayUsage:     todayUsage,
			DailyLimit:     s.dailyLimit,
			RemainingRolls: remaining,
			LimitExceeded:  todayUsage >= s.dailyLimit,
		},
	}, nil
}
