// models/shift.go
package models

import "time"

// Wall-clock layouts used by persisted shifts and the extraction pipeline.
// Values carry no offset; the calendar feed interprets them against the
// owning user's timezone.
const (
	ShiftDateLayout     = "2006-01-02"
	ShiftDateTimeLayout = "2006-01-02T15:04"
)

// Shift is a persisted on-call period inside a schedule. AllDay shifts carry
// Date; timed shifts carry StartAt and EndAt.
type Shift struct {
	ID         string    `bson:"id" json:"id"`
	ScheduleID string    `bson:"scheduleId" json:"scheduleId"`
	UserID     string    `bson:"userId" json:"userId"`
	AllDay     bool      `bson:"allDay" json:"allDay"`
	Date       string    `bson:"date,omitempty" json:"date,omitempty"`
	StartAt    string    `bson:"startAt,omitempty" json:"startAt,omitempty"`
	EndAt      string    `bson:"endAt,omitempty" json:"endAt,omitempty"`
	Note       string    `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ShiftRequest is the create/update payload for a single shift.
type ShiftRequest struct {
	AllDay  bool   `json:"allDay"`
	Date    string `json:"date"`
	StartAt string `json:"startAt"`
	EndAt   string `json:"endAt"`
	Note    string `json:"note"`
}
