package user

import "github.com/KirkDiggler/dicebag/internal/models"

// SaveUserInput contains parameters for saving a user
type SaveUserInput struct {
	User *models.User
}

// GetUserInput contains parameters for retrieving a user
type GetUserInput struct {
	UserID string
}

// GetUserByEmailInput contains parameters for retrieving a user by email
type GetUserByEmailInput struct {
	Email string
}

// AddRollHistoryInput contains parameters for appending a roll history entry
type AddRollHistoryInput struct {
	UserID string
	Entry  *models.RollHistoryEntry
}

// GetRollHistoryInput contains parameters for retrieving roll history
type GetRollHistoryInput struct {
	UserID string
}

// GetRollHistoryOutput contains a user's roll history, newest first
type GetRollHistoryOutput struct {
	Entries []*models.RollHistoryEntry
}
