package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/KirkDiggler/dicebag/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/dicebag/internal/common/uuid/mocks"
	"github.com/KirkDiggler/dicebag/internal/models"
	userRepo "github.com/KirkDiggler/dicebag/internal/repositories/user"
	userMocks "github.com/KirkDiggler/dicebag/internal/repositories/user/mocks"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUserRepo *userMocks.MockRepository
	mockClock    *clockMocks.MockClock
	mockUUID     *uuidMocks.MockUUID
	service      Service
	ctx          context.Context

	now        time.Time
	testUserID string
	testEmail  string
}

func (s *UserServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUserRepo = userMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()

	s.now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	s.testUserID = "user-123"
	s.testEmail = "frodo@shire.example"

	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time {
		return s.now
	}).AnyTimes()

	svc, err := New(&Config{
		UserRepo:      s.mockUserRepo,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		JWTSecret:     "test-secret",
		TokenExpiry:   time.Hour,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *UserServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{JWTSecret: "secret"})
	s.ErrorIs(err, ErrNilUserRepo)

	_, err = New(&Config{UserRepo: s.mockUserRepo})
	s.ErrorIs(err, ErrMissingJWTSecret)
}

func (s *UserServiceTestSuite) TestRegister() {
	s.mockUserRepo.EXPECT().
		GetUserByEmail(s.ctx, &userRepo.GetUserByEmailInput{Email: s.testEmail}).
		Return(nil, userRepo.ErrUserNotFound)
	s.mockUUID.EXPECT().NewUUID().Return(s.testUserID)

	var saved *models.User
	s.mockUserRepo.EXPECT().
		SaveUser(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *userRepo.SaveUserInput) error {
			saved = input.User
			return nil
		})

	out, err := s.service.Register(s.ctx, &RegisterInput{
		Name:     "Frodo",
		Email:    "Frodo@Shire.example",
		Password: "mellon1",
	})
	s.Require().NoError(err)
	s.Require().NotNil(out)
	s.NotEmpty(out.Token)

	s.Require().NotNil(saved)
	s.Equal(s.testUserID, saved.ID)
	s.Equal("Frodo", saved.Name)
	s.Equal(s.testEmail, saved.Email)
	s.NotEqual("mellon1", saved.PasswordHash)
	s.NotEmpty(saved.PasswordHash)
	s.Equal(s.now, saved.CreatedAt)

	verified, err := s.service.VerifyToken(s.ctx, &VerifyTokenInput{Token: out.Token})
	s.Require().NoError(err)
	s.Equal(s.testUserID, verified.UserID)
}

func (s *UserServiceTestSuite) TestRegisterDuplicateEmail() {
	s.mockUserRepo.EXPECT().
		GetUserByEmail(s.ctx, &userRepo.GetUserByEmailInput{Email: s.testEmail}).
		Return(&models.User{ID: "existing", Email: s.testEmail}, nil)

	_, err := s.service.Register(s.ctx, &RegisterInput{
		Name:     "Frodo",
		Email:    s.testEmail,
		Password: "mellon1",
	})
	s.ErrorIs(err, ErrEmailTaken)
}

func (s *UserServiceTestSuite) TestRegisterValidation() {
	_, err := s.service.Register(s.ctx, &RegisterInput{
		Name:     "F",
		Email:    s.testEmail,
		Password: "mellon1",
	})
	s.ErrorIs(err, ErrInvalidName)

	_, err = s.service.Register(s.ctx, &RegisterInput{
		Name:     "Frodo",
		Email:    "not-an-email",
		Password: "mellon1",
	})
	s.ErrorIs(err, ErrInvalidEmail)

	_, err = s.service.Register(s.ctx, &RegisterInput{
		Name:     "Frodo",
		Email:    s.testEmail,
		Password: "short",
	})
	s.ErrorIs(err, ErrInvalidPassword)
}

func (s *UserServiceTestSuite) registeredUser(password string) *models.User {
	s.T().Helper()

	s.mockUserRepo.EXPECT().
		GetUserByEmail(s.ctx, gomock.Any()).
		Return(nil, userRepo.ErrUserNotFound)
	s.mockUUID.EXPECT().NewUUID().Return(s.testUserID)

	var saved *models.User
	s.mockUserRepo.EXPECT().
		SaveUser(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *userRepo.SaveUserInput) error {
			saved = input.User
			return nil
		})

	_, err := s.service.Register(s.ctx, &RegisterInput{
		Name:     "Frodo",
		Email:    s.testEmail,
		Password: password,
	})
	s.Require().NoError(err)

	return saved
}

func (s *UserServiceTestSuite) TestLogin() {
	user := s.registeredUser("mellon1")

	s.mockUserRepo.EXPECT().
		GetUserByEmail(s.ctx, &userRepo.GetUserByEmailInput{Email: s.testEmail}).
		Return(user, nil)

	out, err := s.service.Login(s.ctx, &LoginInput{
		Email:    "FRODO@shire.example",
		Password: "mellon1",
	})
	s.Require().NoError(err)
	s.Equal(s.testUserID, out.User.ID)
	s.NotEmpty(out.Token)
}

func (s *UserServiceTestSuite) TestLoginWrongPassword() {
	user := s.registeredUser("mellon1")

	s.mockUserRepo.EXPECT().
		GetUserByEmail(s.ctx, &userRepo.GetUserByEmailInput{Email: s.testEmail}).
		Return(user, nil)

	_, err := s.service.Login(s.ctx, &LoginInput{
		Email:    s.testEmail,
		Password: "wrong-password",
	})
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *UserServiceTestSuite) TestLoginUnknownEmail() {
	s.mockUserRepo.EXPECT().
		GetUserByEmail(s.ctx, gomock.Any()).
		Return(nil, userRepo.ErrUserNotFound)

	_, err := s.service.Login(s.ctx, &LoginInput{
		Email:    "nobody@shire.example",
		Password: "mellon1",
	})
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *UserServiceTestSuite) TestVerifyTokenExpired() {
	user := s.registeredUser("mellon1")

	s.mockUserRepo.EXPECT().
		GetUserByEmail(s.ctx, gomock.Any()).
		Return(user, nil)

	out, err := s.service.Login(s.ctx, &LoginInput{
		Email:    s.testEmail,
		Password: "mellon1",
	})
	s.Require().NoError(err)

	s.now = s.now.Add(2 * time.Hour)

	_, err = s.service.VerifyToken(s.ctx, &VerifyTokenInput{Token: out.Token})
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *UserServiceTestSuite) TestVerifyTokenGarbage() {
	_, err := s.service.VerifyToken(s.ctx, &VerifyTokenInput{Token: "not-a-token"})
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *UserServiceTestSuite) TestGetUser() {
	user := &models.User{ID: s.testUserID, Name: "Frodo", Email: s.testEmail}

	s.mockUserRepo.EXPECT().
		GetUser(s.ctx, &userRepo.GetUserInput{UserID: s.testUserID}).
		Return(user, nil)

	out, err := s.service.GetUser(s.ctx, &GetUserInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.Equal(user, out.User)
}

func (s *UserServiceTestSuite) TestGetUserNotFound() {
	s.mockUserRepo.EXPECT().
		GetUser(s.ctx, gomock.Any()).
		Return(nil, userRepo.ErrUserNotFound)

	_, err := s.service.GetUser(s.ctx, &GetUserInput{UserID: "missing"})
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *UserServiceTestSuite) TestUpdateUserPartial() {
	created := s.now.Add(-24 * time.Hour)
	existing := &models.User{
		ID:        s.testUserID,
		Name:      "Frodo",
		Email:     s.testEmail,
		Avatar:    "https://example.com/frodo.png",
		CreatedAt: created,
		UpdatedAt: created,
	}

	s.mockUserRepo.EXPECT().
		GetUser(s.ctx, &userRepo.GetUserInput{UserID: s.testUserID}).
		Return(existing, nil)

	var saved *models.User
	s.mockUserRepo.EXPECT().
		SaveUser(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *userRepo.SaveUserInput) error {
			saved = input.User
			return nil
		})

	newName := "Mr. Underhill"
	out, err := s.service.UpdateUser(s.ctx, &UpdateUserInput{
		UserID: s.testUserID,
		Name:   &newName,
	})
	s.Require().NoError(err)

	s.Equal("Mr. Underhill", out.User.Name)
	s.Equal(s.testEmail, out.User.Email)
	s.Equal("https://example.com/frodo.png", out.User.Avatar)
	s.Equal(s.now, out.User.UpdatedAt)
	s.Equal(created, out.User.CreatedAt)
	s.Equal(saved, out.User)
}

func (s *UserServiceTestSuite) TestUpdateUserEmailTaken() {
	existing := &models.User{ID: s.testUserID, Name: "Frodo", Email: s.testEmail}

	s.mockUserRepo.EXPECT().
		GetUser(s.ctx, gomock.Any()).
		Return(existing, nil)

	newEmail := "sam@shire.example"
	s.mockUserRepo.EXPECT().
		GetUserByEmail(s.ctx, &userRepo.GetUserByEmailInput{Email: newEmail}).
		Return(&models.User{ID: "other-user", Email: newEmail}, nil)

	_, err := s.service.UpdateUser(s.ctx, &UpdateUserInput{
		UserID: s.testUserID,
		Email:  &newEmail,
	})
	s.ErrorIs(err, ErrEmailTaken)
}

func (s *UserServiceTestSuite) TestSaveRoll() {
	s.mockUUID.EXPECT().NewUUID().Return("entry-1")

	details := []models.RollDetail{
		{DieType: models.DieTypeD6, Results: []int{3, 5}},
	}

	s.mockUserRepo.EXPECT().
		AddRollHistory(s.ctx, &userRepo.AddRollHistoryInput{
			UserID: s.testUserID,
			Entry: &models.RollHistoryEntry{
				ID:         "entry-1",
				Timestamp:  s.now,
				DiceRolled: "2d6",
				Total:      8,
				Details:    details,
			},
		}).
		Return(nil)

	out, err := s.service.SaveRoll(s.ctx, &SaveRollInput{
		UserID:     s.testUserID,
		DiceRolled: "2d6",
		Total:      8,
		Details:    details,
	})
	s.Require().NoError(err)
	s.Equal("entry-1", out.Entry.ID)
}

func (s *UserServiceTestSuite) TestGetRollHistory() {
	entries := []*models.RollHistoryEntry{
		{ID: "entry-2", Total: 12},
		{ID: "entry-1", Total: 8},
	}

	s.mockUserRepo.EXPECT().
		GetRollHistory(s.ctx, &userRepo.GetRollHistoryInput{UserID: s.testUserID}).
		Return(&userRepo.GetRollHistoryOutput{Entries: entries}, nil)

	out, err := s.service.GetRollHistory(s.ctx, &GetRollHistoryInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.Equal(entries, out.Entries)
}

func (s *UserServiceTestSuite) TestSaveRollRepoError() {
	s.mockUUID.EXPECT().NewUUID().Return("entry-1")
	s.mockUserRepo.EXPECT().
		AddRollHistory(s.ctx, gomock.Any()).
		Return(errors.New("redis down"))

	_, err := s.service.SaveRoll(s.ctx, &SaveRollInput{UserID: s.testUserID})
	s.Error(err)
}
