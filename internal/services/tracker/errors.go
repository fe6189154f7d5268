package tracker

// TrackerError is a custom error type for quota tracking errors
type TrackerError string

// Error implements the error interface
func (e TrackerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrDailyLimitExceeded TrackerError = "daily roll limit exceeded"
	ErrNilConfig          TrackerError = "config cannot be nil"
	ErrNilUsageRepo       TrackerError = "usage repository cannot be nil"
	ErrInvalidDailyLimit  TrackerError = "daily limit must be positive"
)
