package randomorg

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync/atomic"
	"time"
)

const (
	// DefaultURL is the random.org JSON-RPC invoke endpoint
	DefaultURL = "https://api.random.org/json-rpc/2/invoke"

	// requestTimeout bounds a single provider call
	requestTimeout = 30 * time.Second

	// quotaExceededCode is the provider error code for an exhausted API quota
	quotaExceededCode = 5
)

// Config holds configuration for the random.org client
type Config struct {
	// APIKey is the random.org API credential
	APIKey string

	// URL overrides the provider endpoint, used in tests
	URL string

	// HTTPClient overrides the HTTP client, used in tests
	HTTPClient *http.Client
}

// client implements the Client interface against the random.org JSON-RPC API
type client struct {
	apiKey     string
	url        string
	httpClient *http.Client

	// requestID numbers outgoing requests for logging
	requestID atomic.Int64
}

// New creates a new random.org client
func New(cfg *Config) (*client, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.APIKey == "" {
		return nil, errors.New("API key cannot be empty")
	}

	url := cfg.URL
	if url == "" {
		url = DefaultURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: requestTimeout,
		}
	}

	return &client{
		apiKey:     cfg.APIKey,
		url:        url,
		httpClient: httpClient,
	}, nil
}

// GetRandomNumbers fetches a batch of uniform random integers for a die type
// using one generateIntegerSequences call. It does not retry; retry policy
// belongs to the caller.
func (c *client) GetRandomNumbers(ctx context.Context, input *GetRandomNumbersInput) (*GetRandomNumbersOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	sides, err := input.DieType.Sides()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDieType, input.DieType)
	}

	if input.Quantity <= 0 {
		return nil, errors.New("quantity must be positive")
	}

	requestID := c.requestID.Add(1)

	reqBody := rpcRequest{
		JSONRPC: "2.0",
		Method:  "generateIntegerSequences",
		Params: rpcParams{
			APIKey:      c.apiKey,
			N:           1,
			Length:      input.Quantity,
			Min:         1,
			Max:         sides,
			Replacement: true,
			Base:        10,
		},
		ID: requestID,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	log.Printf("[RandomOrg] Requesting %d numbers for %s (request %d)", input.Quantity, input.DieType, requestID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "DiceBag/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP %d", ErrUnavailable, resp.StatusCode)
	}

	var rpcResp rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrUnavailable, err)
	}

	if rpcResp.Error != nil {
		log.Printf("[RandomOrg] API error (request %d): code %d: %s", requestID, rpcResp.Error.Code, rpcResp.Error.Message)

		if rpcResp.Error.Code == quotaExceededCode {
			return nil, ErrQuotaExceeded
		}

		return nil, fmt.Errorf("%w: API error code %d: %s", ErrUnavailable, rpcResp.Error.Code, rpcResp.Error.Message)
	}

	if rpcResp.Result == nil || len(rpcResp.Result.Random.Data) == 0 {
		return nil, fmt.Errorf("%w: response contained no sequences", ErrUnavailable)
	}

	numbers := rpcResp.Result.Random.Data[0]

	log.Printf("[RandomOrg] Success (request %d): %d numbers received", requestID, len(numbers))
	log.Printf("[RandomOrg] Bits used: %d, bits left: %d, requests left: %d",
		rpcResp.Result.BitsUsed, rpcResp.Result.BitsLeft, rpcResp.Result.RequestsLeft)

	return &GetRandomNumbersOutput{
		Numbers: numbers,
	}, nil
}
