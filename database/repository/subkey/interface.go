package subkeyRepo

import "oncall/models"

// SubscriptionKeyRepository defines methods for subscription-key data access.
type SubscriptionKeyRepository interface {
	// GetByKey retrieves a key record by its key string, nil when absent.
	GetByKey(key string) (*models.SubscriptionKey, error)
	// GetByUserID retrieves all key records owned by a user.
	GetByUserID(userID string) ([]models.SubscriptionKey, error)
	// Create inserts a new key record.
	Create(key *models.SubscriptionKey) error
	// Revoke marks a key record as revoked.
	Revoke(id string) error
}
