package recovery

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/dicebag/internal/services/recovery Service

// Service defines the interface for pool startup and health reporting
type Service interface {
	// InitializePools ensures every public pool exists; individual
	// failures are logged but do not fail startup
	InitializePools(ctx context.Context) error

	// HealthCheck reports pool state and any pools running low
	HealthCheck(ctx context.Context) (*HealthCheckOutput, error)
}
