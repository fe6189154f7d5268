package pool

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/KirkDiggler/dicebag/internal/common/clock"
	"github.com/KirkDiggler/dicebag/internal/models"
	"github.com/KirkDiggler/dicebag/internal/randomorg"
	poolRepo "github.com/KirkDiggler/dicebag/internal/repositories/pool"
	"github.com/KirkDiggler/dicebag/internal/services/tracker"
	"golang.org/x/sync/singleflight"
)

// service implements the Service interface
type service struct {
	poolRepo     poolRepo.Repository
	tracker      tracker.Service
	randomClient randomorg.Client
	clock        clock.Clock

	publicPoolSize int
	userPoolSize   int
	maxDicePerType int

	// refillGroup collapses concurrent refills of the same pool key into
	// one provider call; waiters share the winner's result
	refillGroup singleflight.Group

	// drawMu serializes draws per pool key so two requests never pop the
	// same number
	drawMu   sync.Mutex
	drawLock map[string]*sync.Mutex

	// best-effort in-process telemetry, not authoritative
	statsMu       sync.Mutex
	totalRolls    int64
	totalAPICalls int64
	lastRefill    map[string]time.Time
}

// New creates a new pool manager service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.PoolRepo == nil {
		return nil, ErrNilPoolRepo
	}

	if cfg.Tracker == nil {
		return nil, ErrNilTracker
	}

	if cfg.RandomClient == nil {
		return nil, ErrNilRandomClient
	}

	if cfg.PublicPoolSize <= 0 || cfg.UserPoolSize <= 0 || cfg.MaxDicePerType <= 0 {
		return nil, ErrInvalidPoolSizes
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	return &service{
		poolRepo:       cfg.PoolRepo,
		tracker:        cfg.Tracker,
		randomClient:   cfg.RandomClient,
		clock:          clk,
		publicPoolSize: cfg.PublicPoolSize,
		userPoolSize:   cfg.UserPoolSize,
		maxDicePerType: cfg.MaxDicePerType,
		drawLock:       make(map[string]*sync.Mutex),
		lastRefill:     make(map[string]time.Time),
	}, nil
}

// poolKey identifies a pool for refill dedup and draw serialization
func poolKey(userID string, dieType models.DieType) string {
	if userID != "" {
		return fmt.Sprintf("%s:%s", userID, dieType)
	}
	return string(dieType)
}

// GetNumbers draws a quantity of random numbers for a die type. Quantity
// validation and the anonymous quota check happen before any pool access;
// usage is recorded once after every draw succeeds.
func (s *service) GetNumbers(ctx context.Context, input *GetNumbersInput) (*GetNumbersOutput, error) {
	if input == nil {
		return nil, ErrInvalidQuantity
	}

	if input.Quantity <= 0 {
		return &GetNumbersOutput{Numbers: []int{}}, nil
	}

	if !input.DieType.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDieType, input.DieType)
	}

	if input.Quantity > s.maxDicePerType {
		return nil, fmt.Errorf("%w: maximum %d dice per die type, requested %d",
			ErrInvalidQuantity, s.maxDicePerType, input.Quantity)
	}

	// Anonymous callers are gated by the daily quota before any draw
	if input.UserID == "" {
		err := s.tracker.ValidateRoll(ctx, &tracker.ValidateRollInput{
			RequestedRolls: input.Quantity,
			Identity:       input.Identity,
		})
		if err != nil {
			return nil, err
		}
	}

	log.Printf("[PoolManager] Getting %d numbers for %s (%s)", input.Quantity, input.DieType, tierName(input.UserID))

	numbers := make([]int, 0, input.Quantity)
	for i := 0; i < input.Quantity; i++ {
		n, err := s.getNextNumber(ctx, input.DieType, input.UserID)
		if err != nil {
			// Abort the whole call; rolls already drawn are not recorded
			return nil, err
		}
		numbers = append(numbers, n)
	}

	if input.UserID == "" {
		// Recording failures are swallowed by the tracker
		_ = s.tracker.RecordRoll(ctx, &tracker.RecordRollInput{
			RollCount: input.Quantity,
			Identity:  input.Identity,
		})
	}

	return &GetNumbersOutput{Numbers: numbers}, nil
}

// getNextNumber pops the next FIFO value from the pool, refilling it first
// when empty. Draws on the same pool key are serialized so concurrent
// requests never observe the same value.
func (s *service) getNextNumber(ctx context.Context, dieType models.DieType, userID string) (int, error) {
	key := poolKey(userID, dieType)

	lock := s.lockFor(key)
	lock.Lock()
	defer lock.Unlock()

	pool, err := s.loadPool(ctx, dieType, userID)
	if err != nil {
		return 0, err
	}

	if len(pool.Numbers) == 0 {
		if err := s.refillPool(ctx, dieType, userID); err != nil {
			return 0, err
		}

		pool, err = s.loadPool(ctx, dieType, userID)
		if err != nil {
			return 0, err
		}

		if len(pool.Numbers) == 0 {
			return 0, fmt.Errorf("%w: %s pool for %s", ErrRefillFailed, tierName(userID), dieType)
		}
	}

	number := pool.Numbers[0]
	remaining := pool.Numbers[1:]

	err = s.poolRepo.ReplacePoolNumbers(ctx, &poolRepo.ReplacePoolNumbersInput{
		PoolID:  pool.ID,
		Numbers: remaining,
	})
	if err != nil {
		return 0, err
	}

	s.statsMu.Lock()
	s.totalRolls++
	s.statsMu.Unlock()

	log.Printf("[PoolManager] Retrieved %d for %s %s (%d remaining)", number, tierName(userID), dieType, len(remaining))
	return number, nil
}

// refillPool replaces a pool's contents with a fresh provider batch. At
// most one refill per pool key is in flight at a time; concurrent callers
// wait on the in-flight call and share its outcome.
func (s *service) refillPool(ctx context.Context, dieType models.DieType, userID string) error {
	key := poolKey(userID, dieType)

	// A caller abandoning its request must not cancel a refill other
	// waiters share; the provider's own request timeout still bounds it
	ctx = context.WithoutCancel(ctx)

	_, err, _ := s.refillGroup.Do(key, func() (interface{}, error) {
		size := s.publicPoolSize
		if userID != "" {
			size = s.userPoolSize
		}

		log.Printf("[PoolManager] Starting refill for %s %s with %d numbers", tierName(userID), dieType, size)

		out, err := s.randomClient.GetRandomNumbers(ctx, &randomorg.GetRandomNumbersInput{
			DieType:  dieType,
			Quantity: size,
		})
		if err != nil {
			log.Printf("[PoolManager] Refill failed for %s %s: %v", tierName(userID), dieType, err)
			return nil, err
		}

		pool, err := s.loadPool(ctx, dieType, userID)
		if err != nil {
			return nil, err
		}

		// Full replacement: anything still in the stored sequence is
		// discarded in favor of the new batch
		err = s.poolRepo.ReplacePoolNumbers(ctx, &poolRepo.ReplacePoolNumbersInput{
			PoolID:  pool.ID,
			Numbers: out.Numbers,
		})
		if err != nil {
			return nil, err
		}

		s.statsMu.Lock()
		s.totalAPICalls++
		s.lastRefill[key] = s.clock.Now()
		s.statsMu.Unlock()

		log.Printf("[PoolManager] Refill completed for %s %s: %d numbers added", tierName(userID), dieType, len(out.Numbers))
		return nil, nil
	})

	return err
}

// GetPoolStatus reports the remaining count and last refill time of every
// pool in the caller's tier. Lengths come straight from the store.
func (s *service) GetPoolStatus(ctx context.Context, input *GetPoolStatusInput) (*GetPoolStatusOutput, error) {
	userID := ""
	if input != nil {
		userID = input.UserID
	}

	pools := make(map[models.DieType]models.PoolStatus, len(models.AllDieTypes()))

	for _, dieType := range models.AllDieTypes() {
		pool, err := s.loadPool(ctx, dieType, userID)
		if err != nil {
			return nil, err
		}

		lastRefill := pool.LastRefill
		s.statsMu.Lock()
		if t, ok := s.lastRefill[poolKey(userID, dieType)]; ok {
			lastRefill = t
		}
		s.statsMu.Unlock()

		pools[dieType] = models.PoolStatus{
			Remaining:  len(pool.Numbers),
			LastRefill: lastRefill,
		}
	}

	return &GetPoolStatusOutput{Pools: pools}, nil
}

// GetStats reports service counters and the caller's quota standing
func (s *service) GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error) {
	identity := ""
	if input != nil {
		identity = input.Identity
	}

	usageOut, err := s.tracker.GetUsageStats(ctx, &tracker.GetUsageStatsInput{
		Identity: identity,
	})
	if err != nil {
		return nil, err
	}

	s.statsMu.Lock()
	defer s.statsMu.Unlock()

	lastRefill := make(map[string]time.Time, len(s.lastRefill))
	for k, v := range s.lastRefill {
		lastRefill[k] = v
	}

	return &GetStatsOutput{
		TotalRolls:    s.totalRolls,
		TotalAPICalls: s.totalAPICalls,
		LastRefill:    lastRefill,
		Usage:         usageOut.Stats,
	}, nil
}

// loadPool fetches the pool for the caller's tier, creating it lazily
func (s *service) loadPool(ctx context.Context, dieType models.DieType, userID string) (*models.Pool, error) {
	if userID != "" {
		return s.poolRepo.GetOrCreateUserPool(ctx, &poolRepo.GetOrCreateUserPoolInput{
			UserID:  userID,
			DieType: dieType,
		})
	}

	return s.poolRepo.GetOrCreatePublicPool(ctx, &poolRepo.GetOrCreatePublicPoolInput{
		DieType: dieType,
	})
}

// lockFor returns the draw mutex for a pool key, creating it on first use
func (s *service) lockFor(key string) *sync.Mutex {
	s.drawMu.Lock()
	defer s.drawMu.Unlock()

	lock, ok := s.drawLock[key]
	if !ok {
		lock = &sync.Mutex{}
		s.drawLock[key] = lock
	}
	return lock
}

// tierName labels a pool's tier in logs
func tierName(userID string) string {
	if userID != "" {
		return "user"
	}
	return "public"
}
