// models/subscription.go
package models

import "time"

// SubscriptionKey grants unauthenticated read access to a user's calendar
// feed. The key itself is the only credential in the feed URL.
type SubscriptionKey struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Key       string    `bson:"key" json:"key"`
	Revoked   bool      `bson:"revoked" json:"revoked"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
