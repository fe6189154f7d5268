package user

// UserError is a custom error type for account-related errors
type UserError string

// Error implements the error interface
func (e UserError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrEmailTaken         UserError = "user with this email already exists"
	ErrInvalidCredentials UserError = "invalid email or password"
	ErrUserNotFound       UserError = "user not found"
	ErrInvalidName        UserError = "name must be between 2 and 30 characters"
	ErrInvalidEmail       UserError = "invalid email format"
	ErrInvalidPassword    UserError = "password must be at least 6 characters"
	ErrInvalidAvatar      UserError = "invalid avatar URL"
	ErrInvalidToken       UserError = "invalid or expired token"
	ErrNilConfig          UserError = "config cannot be nil"
	ErrNilUserRepo        UserError = "user repository cannot be nil"
	ErrMissingJWTSecret   UserError = "JWT secret cannot be empty"
)
