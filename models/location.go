// models/location.go
package models

import "time"

// Location is a hospital or rotation site a schedule can be tied to.
type Location struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Name      string    `bson:"name" json:"name"`
	Address   string    `bson:"address,omitempty" json:"address,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// LocationRequest is the create/update payload for a location.
type LocationRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}
