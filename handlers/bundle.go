// File: handlers/bundle.go
package handlers

import (
	userRepoPkg "oncall/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// User endpoints
	RegisterUserHandler        gin.HandlerFunc
	AuthenticateUserHandler    gin.HandlerFunc
	GetCurrentUserHandler      gin.HandlerFunc
	UpdateUserHandler          gin.HandlerFunc
	DeleteUserHandler          gin.HandlerFunc
	RevokeUserAuthTokenHandler gin.HandlerFunc

	// Location endpoints
	CreateLocationHandler gin.HandlerFunc
	GetLocationsHandler   gin.HandlerFunc
	UpdateLocationHandler gin.HandlerFunc
	DeleteLocationHandler gin.HandlerFunc

	// Schedule endpoints
	CreateScheduleHandler   gin.HandlerFunc
	GetSchedulesHandler     gin.HandlerFunc
	GetScheduleHandler      gin.HandlerFunc
	UpdateScheduleHandler   gin.HandlerFunc
	FinalizeScheduleHandler gin.HandlerFunc
	DeleteScheduleHandler   gin.HandlerFunc

	// Shift endpoints
	CreateShiftHandler gin.HandlerFunc
	GetShiftsHandler   gin.HandlerFunc
	UpdateShiftHandler gin.HandlerFunc
	DeleteShiftHandler gin.HandlerFunc

	// Upload endpoints
	ExtractShiftsHandler gin.HandlerFunc
	ImportShiftsHandler  gin.HandlerFunc

	// Subscription and calendar endpoints
	IssueSubscriptionKeyHandler  gin.HandlerFunc
	GetSubscriptionKeysHandler   gin.HandlerFunc
	RevokeSubscriptionKeyHandler gin.HandlerFunc
	CalendarFeedHandler          gin.HandlerFunc
}
