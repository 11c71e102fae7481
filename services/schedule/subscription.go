// File: services/schedule/subscription.go
package schedule

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"oncall/models"
	"oncall/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// newFeedKey returns a 128-bit hex key. The key is the only credential in a
// feed URL, so it must be unguessable.
func newFeedKey() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate feed key: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// IssueSubscriptionKey creates a new feed key for the user.
func (s *DefaultScheduleService) IssueSubscriptionKey(userID string) (*models.SubscriptionKey, error) {
	key, err := newFeedKey()
	if err != nil {
		return nil, err
	}
	rec := &models.SubscriptionKey{
		ID:     uuid.New().String(),
		UserID: userID,
		Key:    key,
	}
	if err := s.SubKeyRepo.Create(rec); err != nil {
		return nil, fmt.Errorf("failed to issue subscription key: %w", err)
	}
	return rec, nil
}

// GetSubscriptionKeys lists the user's feed keys.
func (s *DefaultScheduleService) GetSubscriptionKeys(userID string) ([]models.SubscriptionKey, error) {
	keys, err := s.SubKeyRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subscription keys: %w", err)
	}
	return keys, nil
}

// RevokeSubscriptionKey marks an owned key as revoked and evicts it from the
// cache so calendar clients lose access on their next poll.
func (s *DefaultScheduleService) RevokeSubscriptionKey(userID, keyID string) error {
	keys, err := s.SubKeyRepo.GetByUserID(userID)
	if err != nil {
		return fmt.Errorf("failed to fetch subscription keys: %w", err)
	}
	for _, k := range keys {
		if k.ID != keyID {
			continue
		}
		if err := s.SubKeyRepo.Revoke(keyID); err != nil {
			return err
		}
		ctx := context.Background()
		if err := utils.GetCacheClient().Del(ctx, utils.SubKeyCachePrefix+k.Key).Err(); err != nil {
			utils.GetLogger().Warn("RevokeSubscriptionKey: failed to evict cached key", zap.Error(err))
		}
		return nil
	}
	return fmt.Errorf("subscription key not found")
}

// resolveFeedKey maps a feed key to its owning user ID, consulting the cache
// first. Revoked and unknown keys resolve to an error.
func (s *DefaultScheduleService) resolveFeedKey(key string) (string, error) {
	ctx := context.Background()
	cache := utils.GetCacheClient()

	if userID, err := cache.Get(ctx, utils.SubKeyCachePrefix+key).Result(); err == nil && userID != "" {
		return userID, nil
	}

	rec, err := s.SubKeyRepo.GetByKey(key)
	if err != nil {
		return "", fmt.Errorf("failed to resolve subscription key: %w", err)
	}
	if rec == nil || rec.Revoked {
		return "", fmt.Errorf("unknown subscription key")
	}

	if err := cache.Set(ctx, utils.SubKeyCachePrefix+key, rec.UserID, utils.SubKeyCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("resolveFeedKey: failed to cache key", zap.Error(err))
	}
	return rec.UserID, nil
}
