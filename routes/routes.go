package routes

import (
	"net/http"
	"time"

	"oncall/handlers"
	"oncall/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers user endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/me", hb.GetCurrentUserHandler)
		api.PUT("/me", hb.UpdateUserHandler)
		api.DELETE("/me", hb.DeleteUserHandler)
		api.DELETE("/revoke", hb.RevokeUserAuthTokenHandler)
	}
}

// RegisterLocationRoutes registers hospital location endpoints.
func RegisterLocationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/locations")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("", hb.CreateLocationHandler)
		api.GET("", hb.GetLocationsHandler)
		api.PUT("/:id", hb.UpdateLocationHandler)
		api.DELETE("/:id", hb.DeleteLocationHandler)
	}
}

// RegisterScheduleRoutes registers schedule and shift endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedules")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("", hb.CreateScheduleHandler)
		api.GET("", hb.GetSchedulesHandler)
		api.GET("/:id", hb.GetScheduleHandler)
		api.PUT("/:id", hb.UpdateScheduleHandler)
		api.POST("/:id/finalize", hb.FinalizeScheduleHandler)
		api.DELETE("/:id", hb.DeleteScheduleHandler)

		api.POST("/:id/shifts", hb.CreateShiftHandler)
		api.GET("/:id/shifts", hb.GetShiftsHandler)
	}

	shifts := r.Group("/api/shifts")
	{
		shifts.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		shifts.PUT("/:id", hb.UpdateShiftHandler)
		shifts.DELETE("/:id", hb.DeleteShiftHandler)
	}
}

// RegisterUploadRoutes registers the image extraction endpoints.
func RegisterUploadRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/uploads")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("", hb.ExtractShiftsHandler)
		api.POST("/import", hb.ImportShiftsHandler)
	}
}

// RegisterCalendarRoutes registers subscription key management and the
// public calendar feed. The feed itself is unauthenticated: the key is
// the credential.
func RegisterCalendarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/subscriptions")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("", hb.IssueSubscriptionKeyHandler)
		api.GET("", hb.GetSubscriptionKeysHandler)
		api.DELETE("/:id", hb.RevokeSubscriptionKeyHandler)
	}

	r.GET("/calendar/:key", hb.CalendarFeedHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterLocationRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterUploadRoutes(r, hb)
	RegisterCalendarRoutes(r, hb)
	RegisterHealthRoute(r)
}
