package api

import (
	"errors"
	"net/http"

	"github.com/KirkDiggler/dicebag/internal/randomorg"
	poolService "github.com/KirkDiggler/dicebag/internal/services/pool"
	"github.com/KirkDiggler/dicebag/internal/services/tracker"
	userService "github.com/KirkDiggler/dicebag/internal/services/user"
)

// writeServiceError maps service errors to HTTP status codes
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, poolService.ErrInvalidDieType),
		errors.Is(err, poolService.ErrInvalidQuantity),
		errors.Is(err, userService.ErrInvalidName),
		errors.Is(err, userService.ErrInvalidEmail),
		errors.Is(err, userService.ErrInvalidPassword):
		writeError(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, userService.ErrInvalidCredentials),
		errors.Is(err, userService.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, err.Error())

	case errors.Is(err, userService.ErrUserNotFound):
		writeError(w, http.StatusNotFound, err.Error())

	case errors.Is(err, userService.ErrEmailTaken),
		errors.Is(err, randomorg.ErrQuotaExceeded):
		writeError(w, http.StatusConflict, err.Error())

	case errors.Is(err, tracker.ErrDailyLimitExceeded):
		writeError(w, http.StatusTooManyRequests, err.Error())

	case errors.Is(err, randomorg.ErrUnavailable):
		writeError(w, http.StatusBadGateway, "random number provider unavailable")

	case errors.Is(err, poolService.ErrRefillFailed):
		writeError(w, http.StatusServiceUnavailable, "dice pool temporarily empty")

	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
