package randomorg

import "errors"

// ErrInvalidDieType is returned when the requested die type is not supported
var ErrInvalidDieType = errors.New("invalid die type")

// ErrQuotaExceeded is returned when the provider reports its API quota is
// exhausted; distinct from ErrUnavailable because it is retryable later
var ErrQuotaExceeded = errors.New("random.org API quota exceeded")

// ErrUnavailable is returned for network, HTTP, and protocol failures
var ErrUnavailable = errors.New("random.org unavailable")
