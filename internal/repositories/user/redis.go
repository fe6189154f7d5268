package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/dicebag/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	userKeyPrefix        = "user:"
	userEmailKeyPrefix   = "user_email:"
	rollHistoryKeyPrefix = "roll_history:"
)

// ErrUserNotFound is returned when a user is not found
var ErrUserNotFound = errors.New("user not found")

// Config holds configuration for the Redis user repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed user repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveUser persists a user and its email index
func (r *redisRepository) SaveUser(ctx context.Context, input *SaveUserInput) error {
	if input == nil || input.User == nil {
		return errors.New("input and user cannot be nil")
	}

	user := input.User

	if user.ID == "" {
		return errors.New("user ID cannot be empty")
	}

	if user.Email == "" {
		return errors.New("user email cannot be empty")
	}

	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	// Write the user document and the email index together
	pipe := r.client.Pipeline()
	pipe.Set(ctx, fmt.Sprintf("%s%s", userKeyPrefix, user.ID), userJSON, 0)
	pipe.Set(ctx, emailKey(user.Email), user.ID, 0)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	return nil
}

// GetUser retrieves a user by ID
func (r *redisRepository) GetUser(ctx context.Context, input *GetUserInput) (*models.User, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	userJSON, err := r.client.Get(ctx, fmt.Sprintf("%s%s", userKeyPrefix, input.UserID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var user models.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return &user, nil
}

// GetUserByEmail retrieves a user by email via the email index
func (r *redisRepository) GetUserByEmail(ctx context.Context, input *GetUserByEmailInput) (*models.User, error) {
	if input == nil || input.Email == "" {
		return nil, errors.New("input and email cannot be empty")
	}

	userID, err := r.client.Get(ctx, emailKey(input.Email)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}

	return r.GetUser(ctx, &GetUserInput{UserID: userID})
}

// AddRollHistory appends an entry to a user's roll history, trimming the
// list to the newest MaxRollHistoryEntries
func (r *redisRepository) AddRollHistory(ctx context.Context, input *AddRollHistoryInput) error {
	if input == nil || input.UserID == "" || input.Entry == nil {
		return errors.New("input, user ID, and entry cannot be empty")
	}

	entryJSON, err := json.Marshal(input.Entry)
	if err != nil {
		return fmt.Errorf("failed to marshal roll history entry: %w", err)
	}

	key := fmt.Sprintf("%s%s", rollHistoryKeyPrefix, input.UserID)

	pipe := r.client.Pipeline()
	pipe.LPush(ctx, key, entryJSON)
	pipe.LTrim(ctx, key, 0, int64(models.MaxRollHistoryEntries-1))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append roll history: %w", err)
	}

	return nil
}

// GetRollHistory retrieves a user's roll history, newest first
func (r *redisRepository) GetRollHistory(ctx context.Context, input *GetRollHistoryInput) (*GetRollHistoryOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	key := fmt.Sprintf("%s%s", rollHistoryKeyPrefix, input.UserID)

	raw, err := r.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get roll history: %w", err)
	}

	entries := make([]*models.RollHistoryEntry, 0, len(raw))
	for _, item := range raw {
		var entry models.RollHistoryEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal roll history entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	return &GetRollHistoryOutput{
		Entries: entries,
	}, nil
}

// emailKey builds the email index key; emails are indexed lowercase
func emailKey(email string) string {
	return fmt.Sprintf("%s%s", userEmailKeyPrefix, strings.ToLower(email))
}
