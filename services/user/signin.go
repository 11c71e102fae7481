package user

import (
	"fmt"
	"time"

	"oncall/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthenticateUser verifies credentials, signs a fresh token, stores its hash
// on the user record, and caches the session in Redis.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(userRec.ID, userRec.Email, authTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.UpdateSetDocument(userRec.ID, bson.M{"tokenHash": tokenHash}); err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}

	session := utils.AuthSession{
		UserID:    userRec.ID,
		Email:     userRec.Email,
		Timezone:  userRec.Timezone,
		CreatedAt: time.Now(),
	}
	if err := utils.SaveAuthSession(utils.GetAuthCacheClient(), tokenHash, session); err != nil {
		// The session cache is an optimization; auth still works against the
		// user record when it is cold.
		utils.GetLogger().Warn("AuthenticateUser: failed to cache session", zap.Error(err))
	}

	return &AuthResponse{
		ID:       userRec.ID,
		Token:    token,
		Name:     userRec.Name,
		Email:    userRec.Email,
		Timezone: userRec.Timezone,
	}, nil
}

// RevokeUserAuthToken clears the stored token hash and drops the cached
// session, signing the user out everywhere.
func (s *DefaultUserService) RevokeUserAuthToken(userID string) error {
	userRec, err := s.Repo.GetByID(userID)
	if err != nil {
		return fmt.Errorf("failed to fetch user: %w", err)
	}
	if userRec.TokenHash != "" {
		if err := utils.ClearAuthSession(utils.GetAuthCacheClient(), userRec.TokenHash); err != nil {
			utils.GetLogger().Warn("RevokeUserAuthToken: failed to clear cached session", zap.Error(err))
		}
	}
	if err := s.Repo.UpdateSetDocument(userID, bson.M{"tokenHash": ""}); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}
