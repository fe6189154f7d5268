package randomorg

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KirkDiggler/dicebag/internal/models"
	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *ClientTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) newServer(handler http.HandlerFunc) (*httptest.Server, Client) {
	server := httptest.NewServer(handler)
	s.T().Cleanup(server.Close)

	client, err := New(&Config{
		APIKey: "test-api-key",
		URL:    server.URL,
	})
	s.Require().NoError(err)

	return server, client
}

func (s *ClientTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{})
	s.Error(err)

	client, err := New(&Config{APIKey: "key"})
	s.NoError(err)
	s.NotNil(client)
}

func (s *ClientTestSuite) TestGetRandomNumbers() {
	var gotRequest rpcRequest

	_, client := s.newServer(func(w http.ResponseWriter, r *http.Request) {
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&gotRequest))

		resp := map[string]any{
			"jsonrpc": "2.0",
			"result": map[string]any{
				"random": map[string]any{
					"data": [][]int{{3, 1, 6, 6, 2}},
				},
				"bitsUsed":     13,
				"bitsLeft":     999987,
				"requestsLeft": 999,
			},
			"id": gotRequest.ID,
		}
		s.Require().NoError(json.NewEncoder(w).Encode(resp))
	})

	out, err := client.GetRandomNumbers(s.ctx, &GetRandomNumbersInput{
		DieType:  models.DieTypeD6,
		Quantity: 5,
	})
	s.Require().NoError(err)
	s.Equal([]int{3, 1, 6, 6, 2}, out.Numbers)

	// The request carries the die range and batch size
	s.Equal("generateIntegerSequences", gotRequest.Method)
	s.Equal("test-api-key", gotRequest.Params.APIKey)
	s.Equal(1, gotRequest.Params.N)
	s.Equal(5, gotRequest.Params.Length)
	s.Equal(1, gotRequest.Params.Min)
	s.Equal(6, gotRequest.Params.Max)
	s.True(gotRequest.Params.Replacement)
}

func (s *ClientTestSuite) TestGetRandomNumbersInvalidDieType() {
	_, client := s.newServer(func(w http.ResponseWriter, r *http.Request) {
		s.Fail("no request expected for an invalid die type")
	})

	_, err := client.GetRandomNumbers(s.ctx, &GetRandomNumbersInput{
		DieType:  models.DieType("d7"),
		Quantity: 10,
	})
	s.ErrorIs(err, ErrInvalidDieType)
}

func (s *ClientTestSuite) TestGetRandomNumbersQuotaExceeded() {
	_, client := s.newServer(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"jsonrpc": "2.0",
			"error": map[string]any{
				"code":    5,
				"message": "API key has exceeded its daily quota",
			},
			"id": 1,
		}
		s.Require().NoError(json.NewEncoder(w).Encode(resp))
	})

	_, err := client.GetRandomNumbers(s.ctx, &GetRandomNumbersInput{
		DieType:  models.DieTypeD20,
		Quantity: 100,
	})
	s.ErrorIs(err, ErrQuotaExceeded)
}

func (s *ClientTestSuite) TestGetRandomNumbersAPIError() {
	_, client := s.newServer(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"jsonrpc": "2.0",
			"error": map[string]any{
				"code":    202,
				"message": "parameter out of range",
			},
			"id": 1,
		}
		s.Require().NoError(json.NewEncoder(w).Encode(resp))
	})

	_, err := client.GetRandomNumbers(s.ctx, &GetRandomNumbersInput{
		DieType:  models.DieTypeD4,
		Quantity: 10,
	})
	s.ErrorIs(err, ErrUnavailable)
	s.NotErrorIs(err, ErrQuotaExceeded)
}

func (s *ClientTestSuite) TestGetRandomNumbersHTTPError() {
	_, client := s.newServer(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.GetRandomNumbers(s.ctx, &GetRandomNumbersInput{
		DieType:  models.DieTypeD6,
		Quantity: 10,
	})
	s.ErrorIs(err, ErrUnavailable)
}

func (s *ClientTestSuite) TestGetRandomNumbersMalformedBody() {
	_, client := s.newServer(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte("not json"))
		s.Require().NoError(err)
	})

	_, err := client.GetRandomNumbers(s.ctx, &GetRandomNumbersInput{
		DieType:  models.DieTypeD6,
		Quantity: 10,
	})
	s.ErrorIs(err, ErrUnavailable)
}
