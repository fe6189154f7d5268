package pool

// PoolError is a custom error type for pool manager errors
type PoolError string

// Error implements the error interface
func (e PoolError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidDieType   PoolError = "invalid die type"
	ErrInvalidQuantity  PoolError = "invalid quantity"
	ErrRefillFailed     PoolError = "pool still empty after refill"
	ErrNilConfig        PoolError = "config cannot be nil"
	ErrNilPoolRepo      PoolError = "pool repository cannot be nil"
	ErrNilTracker       PoolError = "usage tracker cannot be nil"
	ErrNilRandomClient  PoolError = "random client cannot be nil"
	ErrInvalidPoolSizes PoolError = "pool sizes must be positive"
)
