// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"oncall/config"
	"oncall/database"
	locationRepoPkg "oncall/database/repository/location"
	scheduleRepoPkg "oncall/database/repository/schedule"
	shiftRepoPkg "oncall/database/repository/shift"
	subkeyRepoPkg "oncall/database/repository/subkey"
	userRepoPkg "oncall/database/repository/user"
	"oncall/handlers"
	"oncall/middleware"
	"oncall/routes"
	"oncall/services/extraction"
	"oncall/services/schedule"
	"oncall/services/storage"
	"oncall/services/user"
	"oncall/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Cloudinary is optional: without it, uploaded images are simply not
	// archived after extraction.
	var archiveSvc storage.ArchiveService
	if config.AppConfig.CloudinaryURL != "" {
		cld, err := storage.NewCloudinaryArchiveService(config.AppConfig.CloudinaryURL)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize cloudinary archive: %v", err)
		}
		archiveSvc = cld
	} else {
		logger.Sugar().Warn("main: CLOUDINARY_URL not set, image archiving disabled")
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	locationRepo := locationRepoPkg.NewMongoLocationRepo()
	scheduleRepo := scheduleRepoPkg.NewMongoScheduleRepo()
	shiftRepo := shiftRepoPkg.NewMongoShiftRepo()
	subkeyRepo := subkeyRepoPkg.NewMongoSubKeyRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	handlers.SetUserService(userService)

	scheduleService := &schedule.DefaultScheduleService{
		ScheduleRepo: scheduleRepo,
		ShiftRepo:    shiftRepo,
		LocationRepo: locationRepo,
		SubKeyRepo:   subkeyRepo,
		UserRepo:     userRepo,
	}
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)

	generator := extraction.NewGeminiShiftGenerator(
		config.AppConfig.GeminiAPIKey,
		config.AppConfig.GeminiModel,
	)
	extractionService := extraction.NewDefaultExtractionService(generator)
	uploadHandler := handlers.NewUploadHandler(extractionService, scheduleService, archiveSvc)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// User endpoints.
		RegisterUserHandler:        handlers.RegisterUserHandler,
		AuthenticateUserHandler:    handlers.AuthenticateUserHandler,
		GetCurrentUserHandler:      handlers.GetCurrentUserHandler,
		UpdateUserHandler:          handlers.UpdateUserHandler,
		DeleteUserHandler:          handlers.DeleteUserHandler,
		RevokeUserAuthTokenHandler: handlers.RevokeUserAuthTokenHandler,

		// Location endpoints.
		CreateLocationHandler: scheduleHandler.CreateLocationHandler,
		GetLocationsHandler:   scheduleHandler.GetLocationsHandler,
		UpdateLocationHandler: scheduleHandler.UpdateLocationHandler,
		DeleteLocationHandler: scheduleHandler.DeleteLocationHandler,

		// Schedule endpoints.
		CreateScheduleHandler:   scheduleHandler.CreateScheduleHandler,
		GetSchedulesHandler:     scheduleHandler.GetSchedulesHandler,
		GetScheduleHandler:      scheduleHandler.GetScheduleHandler,
		UpdateScheduleHandler:   scheduleHandler.UpdateScheduleHandler,
		FinalizeScheduleHandler: scheduleHandler.FinalizeScheduleHandler,
		DeleteScheduleHandler:   scheduleHandler.DeleteScheduleHandler,

		// Shift endpoints.
		CreateShiftHandler: scheduleHandler.CreateShiftHandler,
		GetShiftsHandler:   scheduleHandler.GetShiftsHandler,
		UpdateShiftHandler: scheduleHandler.UpdateShiftHandler,
		DeleteShiftHandler: scheduleHandler.DeleteShiftHandler,

		// Upload endpoints.
		ExtractShiftsHandler: uploadHandler.ExtractShiftsHandler,
		ImportShiftsHandler:  uploadHandler.ImportShiftsHandler,

		// Subscription and calendar endpoints.
		IssueSubscriptionKeyHandler:  scheduleHandler.IssueSubscriptionKeyHandler,
		GetSubscriptionKeysHandler:   scheduleHandler.GetSubscriptionKeysHandler,
		RevokeSubscriptionKeyHandler: scheduleHandler.RevokeSubscriptionKeyHandler,
		CalendarFeedHandler:          scheduleHandler.CalendarFeedHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
