// File: courtside/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"courtside/config"
	"courtside/cron"
	"courtside/database"
	bookingRepoPkg "courtside/database/repository/booking"
	coachRepoPkg "courtside/database/repository/coach"
	fixedBookingRepoPkg "courtside/database/repository/fixedbooking"
	userRepoPkg "courtside/database/repository/user"
	venueRepoPkg "courtside/database/repository/venue"
	"courtside/handlers"
	"courtside/middleware"
	"courtside/routes"
	"courtside/services/availability"
	bookingSvc "courtside/services/booking"
	coachSvc "courtside/services/coach"
	fixedBookingSvc "courtside/services/fixedbooking"
	scheduleSvc "courtside/services/schedule"
	"courtside/services/storage"
	userSvcPkg "courtside/services/user"
	venueSvc "courtside/services/venue"
	"courtside/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	coachRepo := coachRepoPkg.NewMongoCoachRepo()
	venueRepo := venueRepoPkg.NewMongoVenueRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	fixedBookingRepo := fixedBookingRepoPkg.NewMongoFixedBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	storageService := storage.NewCachedStorageService()

	userService := &userSvcPkg.DefaultUserService{
		UserRepo:  userRepo,
		CoachRepo: coachRepo,
	}
	coachService := &coachSvc.DefaultCoachService{
		CoachRepo: coachRepo,
	}
	venueService := &venueSvc.DefaultVenueService{
		VenueRepo: venueRepo,
		Storage:   storageService,
	}
	scheduleService := &scheduleSvc.DefaultScheduleService{
		CoachRepo: coachRepo,
	}
	availabilityService := &availability.DefaultAvailabilityService{
		CoachRepo:        coachRepo,
		VenueRepo:        venueRepo,
		BookingRepo:      bookingRepo,
		FixedBookingRepo: fixedBookingRepo,
	}
	bookingService := &bookingSvc.DefaultBookingService{
		BookingRepo: bookingRepo,
		UserRepo:    userRepo,
	}
	fixedBookingService := &fixedBookingSvc.DefaultFixedBookingService{
		FixedBookingRepo: fixedBookingRepo,
		BookingRepo:      bookingRepo,
	}

	// handlers.
	userHandler := handlers.NewUserHandler(userService)
	coachHandler := handlers.NewCoachHandler(coachService, scheduleService)
	venueHandler := handlers.NewVenueHandler(venueService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	fixedBookingHandler := handlers.NewFixedBookingHandler(fixedBookingService)
	adminHandler := handlers.NewAdminHandler(fixedBookingService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserSvc: userService,

		// Account endpoints.
		RegisterUserHandler: userHandler.RegisterHandler,
		LoginHandler:        userHandler.LoginHandler,
		ProfileHandler:      userHandler.ProfileHandler,
		SetRolesHandler:     userHandler.SetRolesHandler,

		// Coach endpoints.
		ListCoachesHandler:     coachHandler.ListHandler,
		GetCoachHandler:        coachHandler.GetHandler,
		CreateCoachHandler:     coachHandler.CreateHandler,
		UpdateCoachHandler:     coachHandler.UpdateHandler,
		DeleteCoachHandler:     coachHandler.DeleteHandler,
		GetScheduleHandler:     coachHandler.GetScheduleHandler,
		ReplaceScheduleHandler: coachHandler.ReplaceScheduleHandler,

		// Venue endpoints.
		ListVenuesHandler:  venueHandler.ListHandler,
		GetVenueHandler:    venueHandler.GetHandler,
		CreateVenueHandler: venueHandler.CreateHandler,
		UpdateVenueHandler: venueHandler.UpdateHandler,
		DeleteVenueHandler: venueHandler.DeleteHandler,

		// Availability endpoints.
		ResolveAvailabilityHandler: availabilityHandler.ResolveHandler,
		VenueAvailabilityHandler:   availabilityHandler.VenueAvailabilityHandler,

		// Booking endpoints.
		ListBookingsHandler:    bookingHandler.ListHandler,
		GetBookingHandler:      bookingHandler.GetHandler,
		CreateBookingHandler:   bookingHandler.CreateHandler,
		ConfirmBookingHandler:  bookingHandler.TransitionHandler(bookingSvc.ActionConfirm),
		RejectBookingHandler:   bookingHandler.TransitionHandler(bookingSvc.ActionReject),
		CancelBookingHandler:   bookingHandler.TransitionHandler(bookingSvc.ActionCancel),
		CompleteBookingHandler: bookingHandler.TransitionHandler(bookingSvc.ActionComplete),

		// Fixed booking endpoints.
		ListFixedBookingsHandler:     fixedBookingHandler.ListHandler,
		FixedBookingCalendarHandler:  fixedBookingHandler.CalendarHandler,
		CreateFixedBookingHandler:    fixedBookingHandler.CreateHandler,
		UpdateFixedBookingHandler:    fixedBookingHandler.UpdateHandler,
		SetFixedBookingStatusHandler: fixedBookingHandler.SetStatusHandler,
		DeleteFixedBookingHandler:    fixedBookingHandler.DeleteHandler,

		// Admin endpoints.
		PromoteFixedBookingsHandler: adminHandler.PromoteFixedBookingsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background promotion worker and periodic health checks.
	cron.InitPromotionWorker(fixedBookingService)
	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient(), utils.GetImageURLCacheClient()}, database.MongoClient)

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
