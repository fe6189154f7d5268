package cleanup

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	usageRepo "github.com/KirkDiggler/dicebag/internal/repositories/usage"
)

// Config holds configuration for the cleanup service
type Config struct {
	// UsageRepo is swept for expired usage records
	UsageRepo usageRepo.Repository

	// RetentionDays is how long usage records are kept
	RetentionDays int

	// Interval is how often the sweep runs
	Interval time.Duration
}

// Service periodically deletes usage records older than the retention
// window. It runs off the roll hot path entirely.
type Service struct {
	usageRepo     usageRepo.Repository
	retentionDays int
	interval      time.Duration

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// New creates a new cleanup service
func New(cfg *Config) (*Service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.UsageRepo == nil {
		return nil, errors.New("usage repository cannot be nil")
	}

	if cfg.RetentionDays <= 0 {
		return nil, errors.New("retention days must be positive")
	}

	if cfg.Interval <= 0 {
		return nil, errors.New("interval must be positive")
	}

	return &Service{
		usageRepo:     cfg.UsageRepo,
		retentionDays: cfg.RetentionDays,
		interval:      cfg.Interval,
	}, nil
}

// Start runs an immediate sweep and then sweeps on the configured
// interval until Stop is called
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		log.Printf("[Cleanup] Already running")
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})
	s.running = true
	s.mu.Unlock()

	log.Printf("[Cleanup] Started periodic cleanup every %s", s.interval)

	go func() {
		defer close(s.done)

		s.RunCleanup(ctx)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.RunCleanup(ctx)
			}
		}
	}()
}

// Stop halts the periodic sweep and waits for any in-flight sweep
func (s *Service) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	cancel := s.cancel
	done := s.done
	s.running = false
	s.mu.Unlock()

	cancel()
	<-done
	log.Printf("[Cleanup] Stopped periodic cleanup")
}

// RunCleanup performs one retention sweep; errors are logged, not fatal
func (s *Service) RunCleanup(ctx context.Context) {
	out, err := s.usageRepo.CleanupOldUsage(ctx, &usageRepo.CleanupOldUsageInput{
		RetentionDays: s.retentionDays,
	})
	if err != nil {
		log.Printf("[Cleanup] Sweep failed: %v", err)
		return
	}

	log.Printf("[Cleanup] Sweep completed: %d records deleted", out.Deleted)
}
