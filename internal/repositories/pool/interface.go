package pool

import (
	"context"

	"github.com/KirkDiggler/dicebag/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/dicebag/internal/repositories/pool Repository

// Repository defines the interface for dice pool persistence
type Repository interface {
	// GetOrCreatePublicPool returns the shared pool for a die type,
	// creating an empty one if it does not exist
	GetOrCreatePublicPool(ctx context.Context, input *GetOrCreatePublicPoolInput) (*models.Pool, error)

	// GetOrCreateUserPool returns a user's pool for a die type,
	// creating an empty one if it does not exist
	GetOrCreateUserPool(ctx context.Context, input *GetOrCreateUserPoolInput) (*models.Pool, error)

	// ReplacePoolNumbers atomically overwrites a pool's numbers and
	// stamps the refill time
	ReplacePoolNumbers(ctx context.Context, input *ReplacePoolNumbersInput) error
}
