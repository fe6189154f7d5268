package usage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/KirkDiggler/dicebag/internal/common/clock"
	"github.com/KirkDiggler/dicebag/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// usageKeyPrefix namespaces the per-day counters in Redis
	usageKeyPrefix = "pool_usage:"

	// dayFormat is the fixed-width UTC day segment inside usage keys
	dayFormat = "2006-01-02"
)

// Config holds configuration for the Redis usage repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Clock, defaults to the system clock
	Clock clock.Clock
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	clock  clock.Clock
}

// NewRedis creates a new Redis-backed usage repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	return &redisRepository{
		client: cfg.RedisClient,
		clock:  clk,
	}, nil
}

// usageKey builds the counter key for a day and identity. The day segment
// is fixed width so identities containing colons (IPv6) parse cleanly.
func usageKey(day, identity string) string {
	return fmt.Sprintf("%s%s:%s", usageKeyPrefix, day, identity)
}

// today returns the current UTC calendar day
func (r *redisRepository) today() string {
	return r.clock.Now().UTC().Format(dayFormat)
}

// GetOrCreateTodayUsage returns today's usage record for an identity,
// creating a zero record if none exists
func (r *redisRepository) GetOrCreateTodayUsage(ctx context.Context, input *GetOrCreateTodayUsageInput) (*models.UsageRecord, error) {
	if input == nil || input.Identity == "" {
		return nil, errors.New("input and identity cannot be empty")
	}

	day := r.today()
	key := usageKey(day, input.Identity)

	created, err := r.client.SetNX(ctx, key, 0, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to create usage record: %w", err)
	}
	if created {
		log.Printf("[UsageRepo] Created new usage record for %s on %s", input.Identity, day)
	}

	total, err := r.client.Get(ctx, key).Int()
	if err != nil {
		return nil, fmt.Errorf("failed to get usage record: %w", err)
	}

	return &models.UsageRecord{
		Day:        day,
		Identity:   input.Identity,
		TotalRolls: total,
	}, nil
}

// IncrementTodayUsage atomically adds to today's roll count for an identity.
// INCRBY creates the key when missing, so there is no read-modify-write
// window under concurrent requests from the same identity.
func (r *redisRepository) IncrementTodayUsage(ctx context.Context, input *IncrementTodayUsageInput) (*models.UsageRecord, error) {
	if input == nil || input.Identity == "" {
		return nil, errors.New("input and identity cannot be empty")
	}

	if input.Delta <= 0 {
		return nil, errors.New("delta must be positive")
	}

	day := r.today()
	key := usageKey(day, input.Identity)

	total, err := r.client.IncrBy(ctx, key, int64(input.Delta)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to increment usage for %s: %w", input.Identity, err)
	}

	return &models.UsageRecord{
		Day:        day,
		Identity:   input.Identity,
		TotalRolls: int(total),
	}, nil
}

// GetTodayUsage returns today's roll count for an identity, zero if no
// record exists
func (r *redisRepository) GetTodayUsage(ctx context.Context, input *GetTodayUsageInput) (int, error) {
	if input == nil || input.Identity == "" {
		return 0, errors.New("input and identity cannot be empty")
	}

	key := usageKey(r.today(), input.Identity)

	total, err := r.client.Get(ctx, key).Int()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get usage for %s: %w", input.Identity, err)
	}

	return total, nil
}

// CleanupOldUsage deletes usage records whose day segment is older than the
// retention window. Invoked by the periodic cleanup service, never from the
// roll path.
func (r *redisRepository) CleanupOldUsage(ctx context.Context, input *CleanupOldUsageInput) (*CleanupOldUsageOutput, error) {
	if input == nil || input.RetentionDays <= 0 {
		return nil, errors.New("input and retention days must be positive")
	}

	cutoff := r.clock.Now().UTC().AddDate(0, 0, -input.RetentionDays).Format(dayFormat)

	var (
		cursor  uint64
		deleted int
	)

	for {
		keys, next, err := r.client.Scan(ctx, cursor, usageKeyPrefix+"*", 100).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan usage records: %w", err)
		}

		var stale []string
		for _, key := range keys {
			day, ok := dayFromKey(key)
			if ok && day < cutoff {
				stale = append(stale, key)
			}
		}

		if len(stale) > 0 {
			removed, err := r.client.Del(ctx, stale...).Result()
			if err != nil {
				return nil, fmt.Errorf("failed to delete usage records: %w", err)
			}
			deleted += int(removed)
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	log.Printf("[UsageRepo] Cleanup removed %d usage records older than %s", deleted, cutoff)

	return &CleanupOldUsageOutput{
		Deleted: deleted,
	}, nil
}

// dayFromKey extracts and validates the day segment of a usage key
func dayFromKey(key string) (string, bool) {
	rest := strings.TrimPrefix(key, usageKeyPrefix)
	if len(rest) < len(dayFormat)+1 {
		return "", false
	}

	day := rest[:len(dayFormat)]
	if _, err := time.Parse(dayFormat, day); err != nil {
		return "", false
	}

	return day, true
}
