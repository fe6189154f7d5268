package recovery

import (
	"context"
	"errors"
	"log"
	"sort"

	"github.com/KirkDiggler/dicebag/internal/common/clock"
	"github.com/KirkDiggler/dicebag/internal/models"
	poolRepo "github.com/KirkDiggler/dicebag/internal/repositories/pool"
	poolService "github.com/KirkDiggler/dicebag/internal/services/pool"
)

// service implements the Service interface
type service struct {
	poolRepo         poolRepo.Repository
	poolService      poolService.Service
	clock            clock.Clock
	lowPoolThreshold int
}

// New creates a new recovery service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.PoolRepo == nil {
		return nil, errors.New("pool repository cannot be nil")
	}

	if cfg.PoolService == nil {
		return nil, errors.New("pool service cannot be nil")
	}

	if cfg.LowPoolThreshold <= 0 {
		return nil, errors.New("low pool threshold must be positive")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	return &service{
		poolRepo:         cfg.PoolRepo,
		poolService:      cfg.PoolService,
		clock:            clk,
		lowPoolThreshold: cfg.LowPoolThreshold,
	}, nil
}

// InitializePools ensures every public pool exists. A failure on one die
// type is logged and the rest are still attempted; startup proceeds either
// way.
func (s *service) InitializePools(ctx context.Context) error {
	log.Printf("[PoolRecovery] Starting pool initialization")

	initialized := 0
	for _, dieType := range models.AllDieTypes() {
		pool, err := s.poolRepo.GetOrCreatePublicPool(ctx, &poolRepo.GetOrCreatePublicPoolInput{
			DieType: dieType,
		})
		if err != nil {
			log.Printf("[PoolRecovery] Failed to initialize public pool for %s: %v", dieType, err)
			continue
		}

		initialized++
		log.Printf("[PoolRecovery] Public %s: %d numbers remaining", dieType, len(pool.Numbers))
	}

	log.Printf("[PoolRecovery] Pool initialization completed: %d/%d public pools ready",
		initialized, len(models.AllDieTypes()))
	return nil
}

// HealthCheck reports public pool state and flags pools below the
// low-water mark
func (s *service) HealthCheck(ctx context.Context) (*HealthCheckOutput, error) {
	status, err := s.poolService.GetPoolStatus(ctx, &poolService.GetPoolStatusInput{})
	if err != nil {
		log.Printf("[PoolRecovery] Health check failed: %v", err)
		return &HealthCheckOutput{
			Healthy:   false,
			Timestamp: s.clock.Now(),
		}, nil
	}

	stats, err := s.poolService.GetStats(ctx, &poolService.GetStatsInput{})
	if err != nil {
		log.Printf("[PoolRecovery] Health check failed: %v", err)
		return &HealthCheckOutput{
			Healthy:   false,
			Timestamp: s.clock.Now(),
		}, nil
	}

	var lowPools []models.DieType
	for dieType, poolStatus := range status.Pools {
		if poolStatus.Remaining < s.lowPoolThreshold {
			lowPools = append(lowPools, dieType)
		}
	}
	sort.Slice(lowPools, func(i, j int) bool {
		a, _ := lowPools[i].Sides()
		b, _ := lowPools[j].Sides()
		return a < b
	})

	return &HealthCheckOutput{
		Healthy:   true,
		Pools:     status.Pools,
		LowPools:  lowPools,
		Usage:     stats.Usage,
		Timestamp: s.clock.Now(),
	}, nil
}
