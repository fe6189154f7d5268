package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dicebag/internal/models"
	"github.com/KirkDiggler/dicebag/internal/randomorg"
	poolService "github.com/KirkDiggler/dicebag/internal/services/pool"
	poolMocks "github.com/KirkDiggler/dicebag/internal/services/pool/mocks"
	recoveryService "github.com/KirkDiggler/dicebag/internal/services/recovery"
	recoveryMocks "github.com/KirkDiggler/dicebag/internal/services/recovery/mocks"
	"github.com/KirkDiggler/dicebag/internal/services/tracker"
	userService "github.com/KirkDiggler/dicebag/internal/services/user"
	userMocks "github.com/KirkDiggler/dicebag/internal/services/user/mocks"
)

type HandlerTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockPool     *poolMocks.MockService
	mockUser     *userMocks.MockService
	mockRecovery *recoveryMocks.MockService
	router       http.Handler

	testUserID string
	testToken  string
	testIP     string
}

func (s *HandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPool = poolMocks.NewMockService(s.mockCtrl)
	s.mockUser = userMocks.NewMockService(s.mockCtrl)
	s.mockRecovery = recoveryMocks.NewMockService(s.mockCtrl)

	s.testUserID = "user-123"
	s.testToken = "valid-token"
	s.testIP = "203.0.113.7"

	h, err := New(&Config{
		PoolService:     s.mockPool,
		UserService:     s.mockUser,
		RecoveryService: s.mockRecovery,
		CORSOrigin:      "http://localhost:5173",
		MaxDicePerType:  50,
		MaxDicePerRoll:  100,
	})
	s.Require().NoError(err)

	s.router = NewRouter(h)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) request(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	s.T().Helper()
	return s.requestVia(s.router, method, path, body, token)
}

func (s *HandlerTestSuite) requestVia(router http.Handler, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	s.T().Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.RemoteAddr = s.testIP + ":52118"
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) expectAuth() {
	s.mockUser.EXPECT().
		VerifyToken(gomock.Any(), &userService.VerifyTokenInput{Token: s.testToken}).
		Return(&userService.VerifyTokenOutput{UserID: s.testUserID}, nil)
}

func (s *HandlerTestSuite) TestHealth() {
	rec := s.request(http.MethodGet, "/api/health", nil, "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestRollAnonymous() {
	s.mockPool.EXPECT().
		GetNumbers(gomock.Any(), &poolService.GetNumbersInput{
			DieType:  models.DieTypeD6,
			Quantity: 2,
			Identity: s.testIP,
		}).
		Return(&poolService.GetNumbersOutput{Numbers: []int{3, 5}}, nil)

	rec := s.request(http.MethodPost, "/api/dice/roll", &RollRequest{
		Dice: map[string]int{"d6": 2},
	}, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp RollResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Len(resp.Results, 1)
	s.Equal("d6", resp.Results[0].DieType)
	s.Equal([]int{3, 5}, resp.Results[0].Results)
	s.Equal(8, resp.Results[0].Total)
	s.Equal(8, resp.GrandTotal)
}

func (s *HandlerTestSuite) TestRollMultipleDiceOrderedBySides() {
	s.mockPool.EXPECT().
		GetNumbers(gomock.Any(), &poolService.GetNumbersInput{
			DieType:  models.DieTypeD6,
			Quantity: 1,
			Identity: s.testIP,
		}).
		Return(&poolService.GetNumbersOutput{Numbers: []int{4}}, nil)
	s.mockPool.EXPECT().
		GetNumbers(gomock.Any(), &poolService.GetNumbersInput{
			DieType:  models.DieTypeD20,
			Quantity: 1,
			Identity: s.testIP,
		}).
		Return(&poolService.GetNumbersOutput{Numbers: []int{17}}, nil)

	rec := s.request(http.MethodPost, "/api/dice/roll", &RollRequest{
		Dice: map[string]int{"d20": 1, "d6": 1},
	}, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp RollResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Len(resp.Results, 2)
	s.Equal("d6", resp.Results[0].DieType)
	s.Equal("d20", resp.Results[1].DieType)
	s.Equal(21, resp.GrandTotal)
}

func (s *HandlerTestSuite) TestRollForwardedForPreferred() {
	s.mockPool.EXPECT().
		GetNumbers(gomock.Any(), &poolService.GetNumbersInput{
			DieType:  models.DieTypeD6,
			Quantity: 1,
			Identity: "198.51.100.4",
		}).
		Return(&poolService.GetNumbersOutput{Numbers: []int{2}}, nil)

	raw, err := json.Marshal(&RollRequest{Dice: map[string]int{"d6": 1}})
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/api/dice/roll", bytes.NewReader(raw))
	req.RemoteAddr = s.testIP + ":52118"
	req.Header.Set("X-Forwarded-For", "198.51.100.4, 10.0.0.1")

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestRollInvalidDieType() {
	rec := s.request(http.MethodPost, "/api/dice/roll", &RollRequest{
		Dice: map[string]int{"d7": 1},
	}, "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestRollNoDice() {
	rec := s.request(http.MethodPost, "/api/dice/roll", &RollRequest{}, "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestRollPerTypeCap() {
	rec := s.request(http.MethodPost, "/api/dice/roll", &RollRequest{
		Dice: map[string]int{"d6": 51},
	}, "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestRollTotalCap() {
	rec := s.request(http.MethodPost, "/api/dice/roll", &RollRequest{
		Dice: map[string]int{"d6": 40, "d8": 40, "d20": 40},
	}, "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestRollDailyLimit() {
	s.mockPool.EXPECT().
		GetNumbers(gomock.Any(), gomock.Any()).
		Return(nil, tracker.ErrDailyLimitExceeded)

	rec := s.request(http.MethodPost, "/api/dice/roll", &RollRequest{
		Dice: map[string]int{"d6": 1},
	}, "")
	s.Equal(http.StatusTooManyRequests, rec.Code)
}

func (s *HandlerTestSuite) TestRollUpstreamQuota() {
	s.mockPool.EXPECT().
		GetNumbers(gomock.Any(), gomock.Any()).
		Return(nil, randomorg.ErrQuotaExceeded)

	rec := s.request(http.MethodPost, "/api/dice/roll", &RollRequest{
		Dice: map[string]int{"d6": 1},
	}, "")
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *HandlerTestSuite) TestRollUpstreamUnavailable() {
	s.mockPool.EXPECT().
		GetNumbers(gomock.Any(), gomock.Any()).
		Return(nil, randomorg.ErrUnavailable)

	rec := s.request(http.MethodPost, "/api/dice/roll", &RollRequest{
		Dice: map[string]int{"d6": 1},
	}, "")
	s.Equal(http.StatusBadGateway, rec.Code)
}

func (s *HandlerTestSuite) TestRollAuthenticatedSavesHistory() {
	s.expectAuth()

	s.mockPool.EXPECT().
		GetNumbers(gomock.Any(), &poolService.GetNumbersInput{
			DieType:  models.DieTypeD6,
			Quantity: 2,
			UserID:   s.testUserID,
		}).
		Return(&poolService.GetNumbersOutput{Numbers: []int{3, 5}}, nil)

	s.mockUser.EXPECT().
		SaveRoll(gomock.Any(), &userService.SaveRollInput{
			UserID:     s.testUserID,
			DiceRolled: "2d6",
			Total:      8,
			Details: []models.RollDetail{
				{DieType: models.DieTypeD6, Results: []int{3, 5}},
			},
		}).
		Return(&userService.SaveRollOutput{Entry: &models.RollHistoryEntry{ID: "entry-1"}}, nil)

	rec := s.request(http.MethodPost, "/api/dice/roll", &RollRequest{
		Dice: map[string]int{"d6": 2},
	}, s.testToken)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestRollInvalidToken() {
	s.mockUser.EXPECT().
		VerifyToken(gomock.Any(), gomock.Any()).
		Return(nil, userService.ErrInvalidToken)

	rec := s.request(http.MethodPost, "/api/dice/roll", &RollRequest{
		Dice: map[string]int{"d6": 1},
	}, "garbage")
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *HandlerTestSuite) TestGetPools() {
	s.mockPool.EXPECT().
		GetPoolStatus(gomock.Any(), &poolService.GetPoolStatusInput{}).
		Return(&poolService.GetPoolStatusOutput{
			Pools: map[models.DieType]models.PoolStatus{
				models.DieTypeD6: {Remaining: 42},
			},
		}, nil)

	rec := s.request(http.MethodGet, "/api/dice/pools", nil, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp PoolsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(42, resp.Pools["d6"].Remaining)
}

func (s *HandlerTestSuite) TestGetStats() {
	s.mockPool.EXPECT().
		GetStats(gomock.Any(), &poolService.GetStatsInput{Identity: s.testIP}).
		Return(&poolService.GetStatsOutput{
			TotalRolls:    12,
			TotalAPICalls: 3,
			Usage: &models.UsageStats{
				TodayUsage:     5,
				DailyLimit:     50,
				RemainingRolls: 45,
			},
		}, nil)

	rec := s.request(http.MethodGet, "/api/dice/stats", nil, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp StatsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(int64(12), resp.TotalRolls)
	s.Require().NotNil(resp.Usage)
	s.Equal(45, resp.Usage.RemainingRolls)
}

func (s *HandlerTestSuite) TestDiceHealthLowPools() {
	s.mockRecovery.EXPECT().
		HealthCheck(gomock.Any()).
		Return(&recoveryService.HealthCheckOutput{
			Healthy: true,
			Pools: map[models.DieType]models.PoolStatus{
				models.DieTypeD6: {Remaining: 4},
			},
			LowPools:  []models.DieType{models.DieTypeD6},
			Timestamp: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
		}, nil)

	rec := s.request(http.MethodGet, "/api/dice/health", nil, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp HealthResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.True(resp.Healthy)
	s.Equal([]string{"d6"}, resp.LowPools)
}

func (s *HandlerTestSuite) TestDiceHealthUnhealthy() {
	s.mockRecovery.EXPECT().
		HealthCheck(gomock.Any()).
		Return(&recoveryService.HealthCheckOutput{Healthy: false}, nil)

	rec := s.request(http.MethodGet, "/api/dice/health", nil, "")
	s.Equal(http.StatusServiceUnavailable, rec.Code)
}

func (s *HandlerTestSuite) TestSignup() {
	s.mockUser.EXPECT().
		Register(gomock.Any(), &userService.RegisterInput{
			Name:     "Frodo",
			Email:    "frodo@shire.example",
			Password: "mellon1",
		}).
		Return(&userService.RegisterOutput{
			User:  &models.User{ID: s.testUserID, Name: "Frodo", Email: "frodo@shire.example"},
			Token: "new-token",
		}, nil)

	rec := s.request(http.MethodPost, "/api/signup", &SignupRequest{
		Name:     "Frodo",
		Email:    "frodo@shire.example",
		Password: "mellon1",
	}, "")
	s.Require().Equal(http.StatusCreated, rec.Code)

	var resp AuthResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("new-token", resp.Token)
	s.Equal(s.testUserID, resp.User.ID)
}

func (s *HandlerTestSuite) TestSignupDuplicateEmail() {
	s.mockUser.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, userService.ErrEmailTaken)

	rec := s.request(http.MethodPost, "/api/signup", &SignupRequest{
		Name:     "Frodo",
		Email:    "frodo@shire.example",
		Password: "mellon1",
	}, "")
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *HandlerTestSuite) TestSigninWrongPassword() {
	s.mockUser.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(nil, userService.ErrInvalidCredentials)

	rec := s.request(http.MethodPost, "/api/signin", &SigninRequest{
		Email:    "frodo@shire.example",
		Password: "wrong",
	}, "")
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *HandlerTestSuite) TestGetMeRequiresAuth() {
	rec := s.request(http.MethodGet, "/api/users/me", nil, "")
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *HandlerTestSuite) TestGetMe() {
	s.expectAuth()
	s.mockUser.EXPECT().
		GetUser(gomock.Any(), &userService.GetUserInput{UserID: s.testUserID}).
		Return(&userService.GetUserOutput{
			User: &models.User{ID: s.testUserID, Name: "Frodo"},
		}, nil)

	rec := s.request(http.MethodGet, "/api/users/me", nil, s.testToken)
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp UserDTO
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("Frodo", resp.Name)
}

func (s *HandlerTestSuite) TestUpdateMe() {
	s.expectAuth()

	newName := "Mr. Underhill"
	s.mockUser.EXPECT().
		UpdateUser(gomock.Any(), &userService.UpdateUserInput{
			UserID: s.testUserID,
			Name:   &newName,
		}).
		Return(&userService.UpdateUserOutput{
			User: &models.User{ID: s.testUserID, Name: newName},
		}, nil)

	rec := s.request(http.MethodPatch, "/api/users/me", &UpdateUserRequest{
		Name: &newName,
	}, s.testToken)
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp UserDTO
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(newName, resp.Name)
}

func (s *HandlerTestSuite) TestGetHistory() {
	s.expectAuth()
	s.mockUser.EXPECT().
		GetRollHistory(gomock.Any(), &userService.GetRollHistoryInput{UserID: s.testUserID}).
		Return(&userService.GetRollHistoryOutput{
			Entries: []*models.RollHistoryEntry{
				{ID: "entry-2", DiceRolled: "1d20", Total: 17},
				{ID: "entry-1", DiceRolled: "2d6", Total: 8},
			},
		}, nil)

	rec := s.request(http.MethodGet, "/api/history", nil, s.testToken)
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp HistoryResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Len(resp.Entries, 2)
	s.Equal("entry-2", resp.Entries[0].ID)
}

func (s *HandlerTestSuite) TestSaveHistory() {
	s.expectAuth()
	s.mockUser.EXPECT().
		SaveRoll(gomock.Any(), &userService.SaveRollInput{
			UserID:     s.testUserID,
			DiceRolled: "2d6",
			Total:      8,
			Details: []models.RollDetail{
				{DieType: models.DieTypeD6, Results: []int{3, 5}},
			},
		}).
		Return(&userService.SaveRollOutput{
			Entry: &models.RollHistoryEntry{ID: "entry-1", DiceRolled: "2d6", Total: 8},
		}, nil)

	rec := s.request(http.MethodPost, "/api/history", &SaveHistoryRequest{
		DiceRolled: "2d6",
		Total:      8,
		Details: []RollDetailDTO{
			{DieType: "d6", Results: []int{3, 5}},
		},
	}, s.testToken)
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *HandlerTestSuite) TestHistoryRequiresAuth() {
	rec := s.request(http.MethodGet, "/api/history", nil, "")
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *HandlerTestSuite) tightLimitRouter(rollLimit, statusLimit int) http.Handler {
	s.T().Helper()

	h, err := New(&Config{
		PoolService:      s.mockPool,
		UserService:      s.mockUser,
		RecoveryService:  s.mockRecovery,
		CORSOrigin:       "http://localhost:5173",
		MaxDicePerType:   50,
		MaxDicePerRoll:   100,
		RollRateLimit:    rollLimit,
		RollRateWindow:   time.Minute,
		StatusRateLimit:  statusLimit,
		StatusRateWindow: time.Minute,
	})
	s.Require().NoError(err)

	return NewRouter(h)
}

func (s *HandlerTestSuite) TestRollRateLimited() {
	router := s.tightLimitRouter(2, 50)

	s.mockPool.EXPECT().
		GetNumbers(gomock.Any(), gomock.Any()).
		Return(&poolService.GetNumbersOutput{Numbers: []int{4}}, nil).
		Times(2)

	body := &RollRequest{Dice: map[string]int{"d6": 1}}
	for i := 0; i < 2; i++ {
		rec := s.requestVia(router, http.MethodPost, "/api/dice/roll", body, "")
		s.Require().Equal(http.StatusOK, rec.Code)
	}

	rec := s.requestVia(router, http.MethodPost, "/api/dice/roll", body, "")
	s.Equal(http.StatusTooManyRequests, rec.Code)
}

func (s *HandlerTestSuite) TestRollRateLimitPerIP() {
	router := s.tightLimitRouter(1, 50)

	s.mockPool.EXPECT().
		GetNumbers(gomock.Any(), gomock.Any()).
		Return(&poolService.GetNumbersOutput{Numbers: []int{4}}, nil).
		Times(2)

	body := &RollRequest{Dice: map[string]int{"d6": 1}}
	rec := s.requestVia(router, http.MethodPost, "/api/dice/roll", body, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.requestVia(router, http.MethodPost, "/api/dice/roll", body, "")
	s.Require().Equal(http.StatusTooManyRequests, rec.Code)

	// A different client IP has its own bucket
	raw, err := json.Marshal(body)
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/api/dice/roll", bytes.NewReader(raw))
	req.RemoteAddr = "198.51.100.4:52118"

	other := httptest.NewRecorder()
	router.ServeHTTP(other, req)
	s.Equal(http.StatusOK, other.Code)
}

func (s *HandlerTestSuite) TestStatusRateLimited() {
	router := s.tightLimitRouter(50, 1)

	s.mockPool.EXPECT().
		GetPoolStatus(gomock.Any(), gomock.Any()).
		Return(&poolService.GetPoolStatusOutput{}, nil)

	rec := s.requestVia(router, http.MethodGet, "/api/dice/pools", nil, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	// Pools and stats share the status window
	rec = s.requestVia(router, http.MethodGet, "/api/dice/stats", nil, "")
	s.Equal(http.StatusTooManyRequests, rec.Code)
}
