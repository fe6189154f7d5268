package randomorg

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_client.go github.com/KirkDiggler/dicebag/internal/randomorg Client

// Client defines the interface for fetching batches of random numbers
// from the upstream provider
type Client interface {
	// GetRandomNumbers fetches a batch of uniform random integers for a die type
	GetRandomNumbers(ctx context.Context, input *GetRandomNumbersInput) (*GetRandomNumbersOutput, error)
}
