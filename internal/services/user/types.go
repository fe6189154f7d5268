package user

import (
	"time"

	"github.com/KirkDiggler/dicebag/internal/common/clock"
	"github.com/KirkDiggler/dicebag/internal/common/uuid"
	"github.com/KirkDiggler/dicebag/internal/models"
	userRepo "github.com/KirkDiggler/dicebag/internal/repositories/user"
)

// Config holds configuration for the user service
type Config struct {
	// UserRepo persists accounts and roll history
	UserRepo userRepo.Repository

	// Clock, defaults to the system clock
	Clock clock.Clock

	// UUIDGenerator, defaults to random UUIDs
	UUIDGenerator uuid.UUID

	// JWTSecret signs issued tokens
	JWTSecret string

	// TokenExpiry is how long issued tokens stay valid
	TokenExpiry time.Duration
}

// RegisterInput contains parameters for creating an account
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Avatar   string
}

// RegisterOutput contains the created account and its token
type RegisterOutput struct {
	User  *models.User
	Token string
}

// LoginInput contains login credentials
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput contains the authenticated account and its token
type LoginOutput struct {
	User  *models.User
	Token string
}

// GetUserInput contains parameters for reading a profile
type GetUserInput struct {
	UserID string
}

// GetUserOutput contains the user's profile
type GetUserOutput struct {
	User *models.User
}

// UpdateUserInput contains profile updates; nil fields are left unchanged
type UpdateUserInput struct {
	UserID string
	Name   *string
	Email  *string
	Avatar *string
}

// UpdateUserOutput contains the updated profile
type UpdateUserOutput struct {
	User *models.User
}

// VerifyTokenInput contains the bearer token to validate
type VerifyTokenInput struct {
	Token string
}

// VerifyTokenOutput contains the user ID carried by a valid token
type VerifyTokenOutput struct {
	UserID string
}

// SaveRollInput contains parameters for appending a history entry
type SaveRollInput struct {
	UserID     string
	DiceRolled string
	Total      int
	Details    []models.RollDetail
}

// SaveRollOutput contains the stored history entry
type SaveRollOutput struct {
	Entry *models.RollHistoryEntry
}

// GetRollHistoryInput contains parameters for reading roll history
type GetRollHistoryInput struct {
	UserID string
}

// GetRollHistoryOutput contains the user's roll history, newest first
type GetRollHistoryOutput struct {
	Entries []*models.RollHistoryEntry
}
