package user

import (
	"context"

	"github.com/KirkDiggler/dicebag/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/dicebag/internal/repositories/user Repository

// Repository defines the interface for user data persistence
type Repository interface {
	// SaveUser persists a user and its email index
	SaveUser(ctx context.Context, input *SaveUserInput) error

	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, input *GetUserInput) (*models.User, error)

	// GetUserByEmail retrieves a user by email
	GetUserByEmail(ctx context.Context, input *GetUserByEmailInput) (*models.User, error)

	// AddRollHistory appends an entry to a user's bounded roll history
	AddRollHistory(ctx context.Context, input *AddRollHistoryInput) error

	// GetRollHistory retrieves a user's roll history, newest first
	GetRollHistory(ctx context.Context, input *GetRollHistoryInput) (*GetRollHistoryOutput, error)
}
