package user

import (
	"fmt"
	"time"

	"oncall/models"
	"oncall/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// authTokenTTL is how long a minted token stays valid.
const authTokenTTL = 30 * 24 * time.Hour

// RegisterUser validates the request, checks for duplicates, stores the user
// with a bcrypt password hash, and signs the first auth token.
func (s *DefaultUserService) RegisterUser(req models.UserRegistrationRequest) (*AuthResponse, error) {
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return nil, fmt.Errorf("all fields are required")
	}
	if req.Timezone == "" {
		req.Timezone = "UTC"
	}
	if _, err := time.LoadLocation(req.Timezone); err != nil {
		return nil, fmt.Errorf("unknown timezone %q", req.Timezone)
	}

	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		utils.GetLogger().Error("RegisterUser: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("a user with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usr := &models.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
		Timezone:     req.Timezone,
	}

	token, err := utils.GenerateToken(usr.ID, usr.Email, authTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	usr.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(usr); err != nil {
		utils.GetLogger().Error("RegisterUser: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return &AuthResponse{
		ID:       usr.ID,
		Token:    token,
		Name:     usr.Name,
		Email:    usr.Email,
		Timezone: usr.Timezone,
	}, nil
}
