package user

import (
	"context"
	"errors"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/KirkDiggler/dicebag/internal/common/clock"
	commonUUID "github.com/KirkDiggler/dicebag/internal/common/uuid"
	"github.com/KirkDiggler/dicebag/internal/models"
	userRepo "github.com/KirkDiggler/dicebag/internal/repositories/user"
)

const (
	nameMinLength     = 2
	nameMaxLength     = 30
	passwordMinLength = 6

	// DefaultTokenExpiry is used when the config leaves TokenExpiry zero
	DefaultTokenExpiry = 168 * time.Hour
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type service struct {
	userRepo      userRepo.Repository
	clock         clock.Clock
	uuidGenerator commonUUID.UUID
	jwtSecret     []byte
	tokenExpiry   time.Duration
}

// New creates a new user service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.UserRepo == nil {
		return nil, ErrNilUserRepo
	}

	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	svcClock := cfg.Clock
	if svcClock == nil {
		svcClock = &clock.DefaultClock{}
	}

	uuider := cfg.UUIDGenerator
	if uuider == nil {
		uuider = commonUUID.New()
	}

	expiry := cfg.TokenExpiry
	if expiry <= 0 {
		expiry = DefaultTokenExpiry
	}

	return &service{
		userRepo:      cfg.UserRepo,
		clock:         svcClock,
		uuidGenerator: uuider,
		jwtSecret:     []byte(cfg.JWTSecret),
		tokenExpiry:   expiry,
	}, nil
}

// Register creates a new account and returns a signed token
func (s *service) Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if len(name) < nameMinLength || len(name) > nameMaxLength {
		return nil, ErrInvalidName
	}

	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	if len(input.Password) < passwordMinLength {
		return nil, ErrInvalidPassword
	}

	_, err := s.userRepo.GetUserByEmail(ctx, &userRepo.GetUserByEmailInput{
		Email: email,
	})
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, userRepo.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	user := &models.User{
		ID:           s.uuidGenerator.NewUUID(),
		Name:         name,
		Email:        email,
		Avatar:       strings.TrimSpace(input.Avatar),
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.SaveUser(ctx, &userRepo.SaveUserInput{User: user}); err != nil {
		return nil, err
	}

	token, err := s.signToken(user.ID)
	if err != nil {
		return nil, err
	}

	log.Printf("[User] Registered user %s", user.ID)

	return &RegisterOutput{
		User:  user,
		Token: token,
	}, nil
}

// Login verifies credentials and returns a signed token
func (s *service) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.userRepo.GetUserByEmail(ctx, &userRepo.GetUserByEmailInput{
		Email: email,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.signToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		User:  user,
		Token: token,
	}, nil
}

// GetUser retrieves a user's profile
func (s *service) GetUser(ctx context.Context, input *GetUserInput) (*GetUserOutput, error) {
	user, err := s.userRepo.GetUser(ctx, &userRepo.GetUserInput{
		UserID: input.UserID,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	return &GetUserOutput{User: user}, nil
}

// UpdateUser modifies a user's profile fields. Nil fields are left unchanged.
func (s *service) UpdateUser(ctx context.Context, input *UpdateUserInput) (*UpdateUserOutput, error) {
	user, err := s.userRepo.GetUser(ctx, &userRepo.GetUserInput{
		UserID: input.UserID,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if len(name) < nameMinLength || len(name) > nameMaxLength {
			return nil, ErrInvalidName
		}

		user.Name = name
	}

	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if !emailPattern.MatchString(email) {
			return nil, ErrInvalidEmail
		}

		if email != user.Email {
			_, err := s.userRepo.GetUserByEmail(ctx, &userRepo.GetUserByEmailInput{
				Email: email,
			})
			if err == nil {
				return nil, ErrEmailTaken
			}
			if !errors.Is(err, userRepo.ErrUserNotFound) {
				return nil, err
			}
		}

		user.Email = email
	}

	if input.Avatar != nil {
		user.Avatar = strings.TrimSpace(*input.Avatar)
	}

	user.UpdatedAt = s.clock.Now()

	if err := s.userRepo.SaveUser(ctx, &userRepo.SaveUserInput{User: user}); err != nil {
		return nil, err
	}

	return &UpdateUserOutput{User: user}, nil
}

// VerifyToken validates a token and returns the user ID it carries
func (s *service) VerifyToken(_ context.Context, input *VerifyTokenInput) (*VerifyTokenOutput, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(input.Token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}

		return s.jwtSecret, nil
	}, jwt.WithTimeFunc(s.clock.Now))
	if err != nil || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &VerifyTokenOutput{UserID: claims.Subject}, nil
}

// SaveRoll appends a roll to the user's bounded history
func (s *service) SaveRoll(ctx context.Context, input *SaveRollInput) (*SaveRollOutput, error) {
	entry := &models.RollHistoryEntry{
		ID:         s.uuidGenerator.NewUUID(),
		Timestamp:  s.clock.Now(),
		DiceRolled: input.DiceRolled,
		Total:      input.Total,
		Details:    input.Details,
	}

	err := s.userRepo.AddRollHistory(ctx, &userRepo.AddRollHistoryInput{
		UserID: input.UserID,
		Entry:  entry,
	})
	if err != nil {
		return nil, err
	}

	return &SaveRollOutput{Entry: entry}, nil
}

// GetRollHistory retrieves the user's roll history, newest first
func (s *service) GetRollHistory(ctx context.Context, input *GetRollHistoryInput) (*GetRollHistoryOutput, error) {
	history, err := s.userRepo.GetRollHistory(ctx, &userRepo.GetRollHistoryInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, err
	}

	return &GetRollHistoryOutput{Entries: history.Entries}, nil
}

func (s *service) signToken(userID string) (string, error) {
	now := s.clock.Now()

	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenExpiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.jwtSecret)
}
