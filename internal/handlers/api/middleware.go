package api

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/httprate"

	userService "github.com/KirkDiggler/dicebag/internal/services/user"
)

type contextKey string

const userIDContextKey contextKey = "userID"

// userIDFromContext returns the authenticated user ID, or empty for
// anonymous callers
func userIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(userIDContextKey).(string)
	return userID
}

// withAuth resolves an optional bearer token. Requests without an
// Authorization header continue as anonymous; a presented but invalid
// token is rejected.
func (h *Handler) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			next.ServeHTTP(w, r)
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			writeError(w, http.StatusUnauthorized, "malformed authorization header")
			return
		}

		out, err := h.userService.VerifyToken(r.Context(), &userService.VerifyTokenInput{
			Token: token,
		})
		if err != nil {
			h.writeServiceError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey, out.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// rateLimiter caps requests per client IP over a sliding window, keyed
// the same way as the anonymous quota identity
func rateLimiter(limit int, window time.Duration) func(http.Handler) http.Handler {
	return httprate.Limit(limit, window,
		httprate.WithKeyFuncs(func(r *http.Request) (string, error) {
			return clientIP(r), nil
		}),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			log.Printf("[API] Rate limit exceeded for %s", clientIP(r))
			writeError(w, http.StatusTooManyRequests, "too many requests, please try again later")
		}),
	)
}

// requireAuth rejects requests that did not authenticate
func requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userIDFromContext(r.Context()) == "" {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
