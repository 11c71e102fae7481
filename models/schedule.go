// models/schedule.go
package models

import "time"

// Schedule statuses.
const (
	ScheduleStatusDraft     = "draft"
	ScheduleStatusFinalized = "finalized"
)

// Schedule is a named collection of shifts, optionally tied to a location.
type Schedule struct {
	ID         string    `bson:"id" json:"id"`
	UserID     string    `bson:"userId" json:"userId"`
	LocationID string    `bson:"locationId,omitempty" json:"locationId,omitempty"`
	Name       string    `bson:"name" json:"name"`
	Status     string    `bson:"status" json:"status"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ScheduleRequest is the create/update payload for a schedule.
type ScheduleRequest struct {
	Name       string `json:"name" binding:"required"`
	LocationID string `json:"locationId"`
}
