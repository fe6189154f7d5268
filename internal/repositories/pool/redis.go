package pool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/dicebag/internal/common/clock"
	"github.com/KirkDiggler/dicebag/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	publicPoolKeyPrefix = "public_pool:"
	userPoolKeyPrefix   = "user_pool:"
)

// ErrPoolNotFound is returned when a pool is not found
var ErrPoolNotFound = errors.New("pool not found")

// Config holds configuration for the Redis pool repository
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

// NewRedis creates a new Redis-backed pool repository
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

// PublicPoolKey returns the store key for a public pool
func PublicPoolKey(dieType models.DieType) string {
	return fmt.Sprintf("%s%s", publicPoolKeyPrefix, dieType)
}

// UserPoolKey returns the store key for a user pool
func UserPoolKey(userID string, dieType models.DieType) string {
	return fmt.Sprintf("%s%s:%s", userPoolKeyPrefix, userID, dieType)
}

// GetOrCreatePublicPool returns the shared pool for a die type, creating an
// empty one if it does not exist
func (r *redisRepository) GetOrCreatePublicPool(ctx context.Context, input *GetOrCreatePublicPoolInput) (*models.Pool, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if !input.DieType.IsValid() {
		return nil, fmt.Errorf("invalid die type: %s", input.DieType)
	}

	return r.getOrCreate(ctx, PublicPoolKey(input.DieType), "", input.DieType)
}

// GetOrCreateUserPool returns a user's pool for a die type, creating an
// empty one if it does not exist
func (r *redisRepository) GetOrCreateUserPool(ctx context.Context, input *GetOrCreateUserPoolInput) (*models.Pool, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	if !input.DieType.IsValid() {
		return nil, fmt.Errorf("invalid die type: %s", input.DieType)
	}

	return r.getOrCreate(ctx, UserPoolKey(input.UserID, input.DieType), input.UserID, input.DieType)
}

// getOrCreate loads the pool at key, creating an empty pool document when
// the key is missing. Creation uses SETNX so concurrent first accesses
// converge on a single document.
func (r *redisRepository) getOrCreate(ctx context.Context, key, userID string, dieType models.DieType) (*models.Pool, error) {
	pool, err := r.get(ctx, key)
	if err == nil {
		return pool, nil
	}
	if !errors.Is(err, ErrPoolNotFound) {
		return nil, err
	}

	now := r.clock.Now()
	created := &models.Pool{
		ID:         key,
		UserID:     userID,
		DieType:    dieType,
		Numbers:    []int{},
		LastRefill: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	poolJSON, err := json.Marshal(created)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal pool: %w", err)
	}

	set, err := r.client.SetNX(ctx, key, poolJSON, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if !set {
		// Another writer created the pool first; read theirs
		return r.get(ctx, key)
	}

	log.Printf("[PoolRepo] Created new pool %s", key)
	return created, nil
}

// ReplacePoolNumbers atomically overwrites a pool's numbers and stamps the
// refill time. This is a full replace; any numbers still in the stored
// sequence are discarded.
func (r *redisRepository) ReplacePoolNumbers(ctx context.Context, input *ReplacePoolNumbersInput) error {
	if input == nil || input.PoolID == "" {
		return errors.New("input and pool ID cannot be empty")
	}

	pool, err := r.get(ctx, input.PoolID)
	if err != nil {
		return err
	}

	now := r.clock.Now()
	pool.Numbers = input.Numbers
	if pool.Numbers == nil {
		pool.Numbers = []int{}
	}
	pool.LastRefill = now
	pool.UpdatedAt = now

	poolJSON, err := json.Marshal(pool)
	if err != nil {
		return fmt.Errorf("failed to marshal pool: %w", err)
	}

	if err := r.client.Set(ctx, pool.ID, poolJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to update pool %s: %w", pool.ID, err)
	}

	return nil
}

// get loads and unmarshals the pool document at key
func (r *redisRepository) get(ctx context.Context, key string) (*models.Pool, error) {
	poolJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPoolNotFound
		}
		return nil, fmt.Errorf("failed to get pool %s: %w", key, err)
	}

	var pool models.Pool
	if err := json.Unmarshal([]byte(poolJSON), &pool); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pool %s: %w", key, err)
	}

	return &pool, nil
}
