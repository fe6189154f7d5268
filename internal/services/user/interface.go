package user

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/dicebag/internal/services/user Service

// Service defines the interface for account and roll history operations
type Service interface {
	// Register creates a new account and returns a signed token
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and returns a signed token
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// GetUser retrieves a user's profile
	GetUser(ctx context.Context, input *GetUserInput) (*GetUserOutput, error)

	// UpdateUser modifies a user's profile fields
	UpdateUser(ctx context.Context, input *UpdateUserInput) (*UpdateUserOutput, error)

	// VerifyToken validates a token and returns the user ID it carries
	VerifyToken(ctx context.Context, input *VerifyTokenInput) (*VerifyTokenOutput, error)

	// SaveRoll appends a roll to the user's bounded history
	SaveRoll(ctx context.Context, input *SaveRollInput) (*SaveRollOutput, error)

	// GetRollHistory retrieves the user's roll history, newest first
	GetRollHistory(ctx context.Context, input *GetRollHistoryInput) (*GetRollHistoryOutput, error)
}
