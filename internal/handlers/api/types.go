package api

import (
	"time"

	poolService "github.com/KirkDiggler/dicebag/internal/services/pool"
	recoveryService "github.com/KirkDiggler/dicebag/internal/services/recovery"
	userService "github.com/KirkDiggler/dicebag/internal/services/user"
)

// Config holds the configuration for the HTTP handler
type Config struct {
	// PoolService serves dice draws, pool status, and stats
	PoolService poolService.Service

	// UserService handles accounts, tokens, and roll history
	UserService userService.Service

	// RecoveryService supplies the pool health check
	RecoveryService recoveryService.Service

	// CORSOrigin is the allowed frontend origin
	CORSOrigin string

	// MaxDicePerType caps one request's quantity for a single die type
	MaxDicePerType int

	// MaxDicePerRoll caps the total dice in one roll request
	MaxDicePerRoll int

	// RollRateLimit caps roll requests per client IP per RollRateWindow;
	// zero uses the default
	RollRateLimit  int
	RollRateWindow time.Duration

	// StatusRateLimit caps pool status and stats reads per client IP per
	// StatusRateWindow; zero uses the default
	StatusRateLimit  int
	StatusRateWindow time.Duration
}

// RollRequest asks for a set of dice, keyed by die type
type RollRequest struct {
	Dice map[string]int `json:"dice"`
}

// RollResultDTO is the outcome for one die type in a roll
type RollResultDTO struct {
	DieType string `json:"dieType"`
	Results []int  `json:"results"`
	Total   int    `json:"total"`
}

// RollResponse is the full outcome of a roll request
type RollResponse struct {
	Results    []RollResultDTO `json:"results"`
	GrandTotal int             `json:"grandTotal"`
}

// PoolStatusDTO is one pool's snapshot in API responses
type PoolStatusDTO struct {
	Remaining  int       `json:"remaining"`
	LastRefill time.Time `json:"lastRefill"`
}

// PoolsResponse maps die types to their pool snapshots
type PoolsResponse struct {
	Pools map[string]PoolStatusDTO `json:"pools"`
}

// UsageDTO is the caller's quota standing
type UsageDTO struct {
	TodayUsage     int  `json:"todayUsage"`
	DailyLimit     int  `json:"dailyLimit"`
	RemainingRolls int  `json:"remainingRolls"`
	LimitExceeded  bool `json:"limitExceeded"`
}

// StatsResponse reports service counters and the caller's quota standing
type StatsResponse struct {
	TotalRolls    int64                `json:"totalRolls"`
	TotalAPICalls int64                `json:"totalApiCalls"`
	LastRefill    map[string]time.Time `json:"lastRefill"`
	Usage         *UsageDTO            `json:"usage,omitempty"`
}

// HealthResponse reports pool health for monitoring
type HealthResponse struct {
	Healthy   bool                     `json:"healthy"`
	Pools     map[string]PoolStatusDTO `json:"pools,omitempty"`
	LowPools  []string                 `json:"lowPools,omitempty"`
	Timestamp time.Time                `json:"timestamp"`
}

// SignupRequest creates an account
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Avatar   string `json:"avatar,omitempty"`
}

// SigninRequest logs in to an existing account
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserDTO is a user profile in API responses
type UserDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse returns the account and its bearer token
type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// UpdateUserRequest carries partial profile updates; absent fields are
// left unchanged
type UpdateUserRequest struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

// RollDetailDTO is the per-die-type breakdown of a saved roll
type RollDetailDTO struct {
	DieType string `json:"dieType"`
	Results []int  `json:"results"`
}

// SaveHistoryRequest appends a roll to the caller's history
type SaveHistoryRequest struct {
	DiceRolled string          `json:"diceRolled"`
	Total      int             `json:"total"`
	Details    []RollDetailDTO `json:"details"`
}

// HistoryEntryDTO is one saved roll in API responses
type HistoryEntryDTO struct {
	ID         string          `json:"id"`
	Timestamp  time.Time       `json:"timestamp"`
	DiceRolled string          `json:"diceRolled"`
	Total      int             `json:"total"`
	Details    []RollDetailDTO `json:"details"`
}

// HistoryResponse lists the caller's saved rolls, newest first
type HistoryResponse struct {
	Entries []HistoryEntryDTO `json:"entries"`
}

// ErrorResponse is the JSON body for failed requests
type ErrorResponse struct {
	Error string `json:"error"`
}
