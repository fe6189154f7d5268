package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/KirkDiggler/dicebag/internal/models"
	poolService "github.com/KirkDiggler/dicebag/internal/services/pool"
	recoveryService "github.com/KirkDiggler/dicebag/internal/services/recovery"
	userService "github.com/KirkDiggler/dicebag/internal/services/user"
)

// Default per-IP transport rate limits
const (
	DefaultRollRateLimit    = 100
	DefaultRollRateWindow   = 15 * time.Minute
	DefaultStatusRateLimit  = 50
	DefaultStatusRateWindow = 5 * time.Minute
)

// Handler serves the HTTP API
type Handler struct {
	poolService     poolService.Service
	userService     userService.Service
	recoveryService recoveryService.Service
	corsOrigin      string
	maxDicePerType  int
	maxDicePerRoll  int

	rollRateLimit    int
	rollRateWindow   time.Duration
	statusRateLimit  int
	statusRateWindow time.Duration
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.PoolService == nil {
		return nil, errors.New("pool service cannot be nil")
	}

	if cfg.UserService == nil {
		return nil, errors.New("user service cannot be nil")
	}

	if cfg.RecoveryService == nil {
		return nil, errors.New("recovery service cannot be nil")
	}

	if cfg.MaxDicePerType <= 0 || cfg.MaxDicePerRoll <= 0 {
		return nil, errors.New("dice caps must be positive")
	}

	rollRateLimit := cfg.RollRateLimit
	if rollRateLimit <= 0 {
		rollRateLimit = DefaultRollRateLimit
	}

	rollRateWindow := cfg.RollRateWindow
	if rollRateWindow <= 0 {
		rollRateWindow = DefaultRollRateWindow
	}

	statusRateLimit := cfg.StatusRateLimit
	if statusRateLimit <= 0 {
		statusRateLimit = DefaultStatusRateLimit
	}

	statusRateWindow := cfg.StatusRateWindow
	if statusRateWindow <= 0 {
		statusRateWindow = DefaultStatusRateWindow
	}

	return &Handler{
		poolService:      cfg.PoolService,
		userService:      cfg.UserService,
		recoveryService:  cfg.RecoveryService,
		corsOrigin:       cfg.CORSOrigin,
		maxDicePerType:   cfg.MaxDicePerType,
		maxDicePerRoll:   cfg.MaxDicePerRoll,
		rollRateLimit:    rollRateLimit,
		rollRateWindow:   rollRateWindow,
		statusRateLimit:  statusRateLimit,
		statusRateWindow: statusRateWindow,
	}, nil
}

// RollDice draws numbers for each requested die type
func (h *Handler) RollDice(w http.ResponseWriter, r *http.Request) {
	var req RollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(req.Dice) == 0 {
		writeError(w, http.StatusBadRequest, "no dice requested")
		return
	}

	type diceEntry struct {
		dieType  models.DieType
		sides    int
		quantity int
	}

	entries := make([]diceEntry, 0, len(req.Dice))
	totalDice := 0
	for name, quantity := range req.Dice {
		dieType, err := models.ParseDieType(name)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid die type: %s", name))
			return
		}

		if quantity <= 0 {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("quantity for %s must be positive", name))
			return
		}

		if quantity > h.maxDicePerType {
			writeError(w, http.StatusBadRequest,
				fmt.Sprintf("quantity for %s exceeds the limit of %d", name, h.maxDicePerType))
			return
		}

		sides, _ := dieType.Sides()
		entries = append(entries, diceEntry{dieType: dieType, sides: sides, quantity: quantity})
		totalDice += quantity
	}

	if totalDice > h.maxDicePerRoll {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("total dice exceeds the limit of %d", h.maxDicePerRoll))
		return
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].sides < entries[j].sides
	})

	userID := userIDFromContext(r.Context())
	identity := ""
	if userID == "" {
		identity = clientIP(r)
	}

	results := make([]RollResultDTO, 0, len(entries))
	details := make([]RollDetailDTO, 0, len(entries))
	described := make([]string, 0, len(entries))
	grandTotal := 0

	for _, entry := range entries {
		out, err := h.poolService.GetNumbers(r.Context(), &poolService.GetNumbersInput{
			DieType:  entry.dieType,
			Quantity: entry.quantity,
			UserID:   userID,
			Identity: identity,
		})
		if err != nil {
			h.writeServiceError(w, err)
			return
		}

		total := 0
		for _, n := range out.Numbers {
			total += n
		}

		results = append(results, RollResultDTO{
			DieType: string(entry.dieType),
			Results: out.Numbers,
			Total:   total,
		})
		details = append(details, RollDetailDTO{
			DieType: string(entry.dieType),
			Results: out.Numbers,
		})
		described = append(described, fmt.Sprintf("%d%s", entry.quantity, entry.dieType))
		grandTotal += total
	}

	if userID != "" {
		_, err := h.userService.SaveRoll(r.Context(), &userService.SaveRollInput{
			UserID:     userID,
			DiceRolled: strings.Join(described, " + "),
			Total:      grandTotal,
			Details:    toModelDetails(details),
		})
		if err != nil {
			// The roll already succeeded, history is best effort
			log.Printf("[API] Failed to save roll history for %s: %v", userID, err)
		}
	}

	writeJSON(w, http.StatusOK, &RollResponse{
		Results:    results,
		GrandTotal: grandTotal,
	})
}

// GetPools reports the caller's pool snapshots
func (h *Handler) GetPools(w http.ResponseWriter, r *http.Request) {
	out, err := h.poolService.GetPoolStatus(r.Context(), &poolService.GetPoolStatusInput{
		UserID: userIDFromContext(r.Context()),
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &PoolsResponse{Pools: toPoolDTOs(out.Pools)})
}

// GetStats reports service counters and the caller's quota standing
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	out, err := h.poolService.GetStats(r.Context(), &poolService.GetStatsInput{
		Identity: clientIP(r),
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	resp := &StatsResponse{
		TotalRolls:    out.TotalRolls,
		TotalAPICalls: out.TotalAPICalls,
		LastRefill:    out.LastRefill,
	}
	if out.Usage != nil {
		resp.Usage = &UsageDTO{
			TodayUsage:     out.Usage.TodayUsage,
			DailyLimit:     out.Usage.DailyLimit,
			RemainingRolls: out.Usage.RemainingRolls,
			LimitExceeded:  out.Usage.LimitExceeded,
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetDiceHealth reports pool health for monitoring
func (h *Handler) GetDiceHealth(w http.ResponseWriter, r *http.Request) {
	out, err := h.recoveryService.HealthCheck(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	lowPools := make([]string, 0, len(out.LowPools))
	for _, dieType := range out.LowPools {
		lowPools = append(lowPools, string(dieType))
	}

	resp := &HealthResponse{
		Healthy:   out.Healthy,
		Pools:     toPoolDTOs(out.Pools),
		LowPools:  lowPools,
		Timestamp: out.Timestamp,
	}

	status := http.StatusOK
	if !out.Healthy {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, resp)
}

// GetHealth is the basic liveness endpoint
func (h *Handler) GetHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Signup creates an account and returns a bearer token
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	out, err := h.userService.Register(r.Context(), &userService.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Avatar:   req.Avatar,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, &AuthResponse{
		Token: out.Token,
		User:  toUserDTO(out.User),
	})
}

// Signin verifies credentials and returns a bearer token
func (h *Handler) Signin(w http.ResponseWriter, r *http.Request) {
	var req SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	out, err := h.userService.Login(r.Context(), &userService.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &AuthResponse{
		Token: out.Token,
		User:  toUserDTO(out.User),
	})
}

// GetMe returns the authenticated user's profile
func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	out, err := h.userService.GetUser(r.Context(), &userService.GetUserInput{
		UserID: userIDFromContext(r.Context()),
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserDTO(out.User))
}

// UpdateMe applies partial updates to the authenticated user's profile
func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	out, err := h.userService.UpdateUser(r.Context(), &userService.UpdateUserInput{
		UserID: userIDFromContext(r.Context()),
		Name:   req.Name,
		Email:  req.Email,
		Avatar: req.Avatar,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserDTO(out.User))
}

// GetHistory lists the authenticated user's saved rolls, newest first
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	out, err := h.userService.GetRollHistory(r.Context(), &userService.GetRollHistoryInput{
		UserID: userIDFromContext(r.Context()),
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	entries := make([]HistoryEntryDTO, 0, len(out.Entries))
	for _, entry := range out.Entries {
		details := make([]RollDetailDTO, 0, len(entry.Details))
		for _, d := range entry.Details {
			details = append(details, RollDetailDTO{
				DieType: string(d.DieType),
				Results: d.Results,
			})
		}

		entries = append(entries, HistoryEntryDTO{
			ID:         entry.ID,
			Timestamp:  entry.Timestamp,
			DiceRolled: entry.DiceRolled,
			Total:      entry.Total,
			Details:    details,
		})
	}

	writeJSON(w, http.StatusOK, &HistoryResponse{Entries: entries})
}

// SaveHistory appends a roll to the authenticated user's history
func (h *Handler) SaveHistory(w http.ResponseWriter, r *http.Request) {
	var req SaveHistoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.DiceRolled == "" {
		writeError(w, http.StatusBadRequest, "diceRolled is required")
		return
	}

	out, err := h.userService.SaveRoll(r.Context(), &userService.SaveRollInput{
		UserID:     userIDFromContext(r.Context()),
		DiceRolled: req.DiceRolled,
		Total:      req.Total,
		Details:    toModelDetails(req.Details),
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, &HistoryEntryDTO{
		ID:         out.Entry.ID,
		Timestamp:  out.Entry.Timestamp,
		DiceRolled: out.Entry.DiceRolled,
		Total:      out.Entry.Total,
		Details:    req.Details,
	})
}

func toUserDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
	}
}

func toPoolDTOs(pools map[models.DieType]models.PoolStatus) map[string]PoolStatusDTO {
	out := make(map[string]PoolStatusDTO, len(pools))
	for dieType, status := range pools {
		out[string(dieType)] = PoolStatusDTO{
			Remaining:  status.Remaining,
			LastRefill: status.LastRefill,
		}
	}
	return out
}

func toModelDetails(details []RollDetailDTO) []models.RollDetail {
	out := make([]models.RollDetail, 0, len(details))
	for _, d := range details {
		out = append(out, models.RollDetail{
			DieType: models.DieType(d.DieType),
			Results: d.Results,
		})
	}
	return out
}

// clientIP extracts the caller's network identity, preferring the first
// hop of X-Forwarded-For when a proxy is in front
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("[API] Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, &ErrorResponse{Error: message})
}
