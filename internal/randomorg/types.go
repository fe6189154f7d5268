package randomorg

import "github.com/KirkDiggler/dicebag/internal/models"

// GetRandomNumbersInput contains parameters for fetching a batch of numbers
type GetRandomNumbersInput struct {
	// DieType determines the inclusive range [1, sides] of the numbers
	DieType models.DieType

	// Quantity is the batch size to fetch
	Quantity int
}

// GetRandomNumbersOutput contains the fetched batch
type GetRandomNumbersOutput struct {
	// Numbers are the fetched random integers, in provider order
	Numbers []int
}

// rpcRequest is the JSON-RPC 2.0 envelope sent to the provider
type rpcRequest struct {
	JSONRPC string    `json:"jsonrpc"`
	Method  string    `json:"method"`
	Params  rpcParams `json:"params"`
	ID      int64     `json:"id"`
}

// rpcParams is the generateIntegerSequences parameter block
type rpcParams struct {
	APIKey      string `json:"apiKey"`
	N           int    `json:"n"`
	Length      int    `json:"length"`
	Min         int    `json:"min"`
	Max         int    `json:"max"`
	Replacement bool   `json:"replacement"`
	Base        int    `json:"base"`
}

// rpcResponse is the JSON-RPC 2.0 envelope returned by the provider
type rpcResponse struct {
	JSONRPC string     `json:"jsonrpc"`
	Result  *rpcResult `json:"result"`
	Error   *rpcError  `json:"error"`
	ID      int64      `json:"id"`
}

type rpcResult struct {
	Random struct {
		Data [][]int `json:"data"`
	} `json:"random"`
	BitsUsed      int64 `json:"bitsUsed"`
	BitsLeft      int64 `json:"bitsLeft"`
	RequestsLeft  int64 `json:"requestsLeft"`
	AdvisoryDelay int64 `json:"advisoryDelay"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
