package routes

import (
	"time"

	"courtside/handlers"
	"courtside/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserSvc))
		api.GET("/me", hb.ProfileHandler)
		api.PUT("/role", middleware.RequireAdmin(), hb.SetRolesHandler)
	}
}

// RegisterCoachRoutes registers coach profile and schedule endpoints.
func RegisterCoachRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/coaches")
	{
		// Browsing coaches and their schedules works without an account.
		api.GET("", middleware.OptionalAuthMiddleware(hb.UserSvc), hb.ListCoachesHandler)
		api.GET("/:id", middleware.OptionalAuthMiddleware(hb.UserSvc), hb.GetCoachHandler)
		api.GET("/:id/schedule", middleware.OptionalAuthMiddleware(hb.UserSvc), hb.GetScheduleHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserSvc))
		protected.POST("", hb.CreateCoachHandler)
		protected.PUT("/:id", hb.UpdateCoachHandler)
		protected.DELETE("/:id", hb.DeleteCoachHandler)
		protected.PUT("/:id/schedule", hb.ReplaceScheduleHandler)
	}
}

// RegisterVenueRoutes registers venue endpoints.
func RegisterVenueRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/venues")
	{
		api.GET("", hb.ListVenuesHandler)
		api.GET("/availability", hb.VenueAvailabilityHandler)
		api.GET("/:id", hb.GetVenueHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserSvc), middleware.RequireAdmin())
		protected.POST("", hb.CreateVenueHandler)
		protected.PUT("/:id", hb.UpdateVenueHandler)
		protected.DELETE("/:id", hb.DeleteVenueHandler)
	}
}

// RegisterAvailabilityRoutes registers the slot resolver endpoint.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/availability", hb.ResolveAvailabilityHandler)
}

// RegisterBookingRoutes registers one-off booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserSvc))
		api.GET("", hb.ListBookingsHandler)
		api.GET("/:id", hb.GetBookingHandler)
		api.POST("", hb.CreateBookingHandler)
		api.POST("/:id/confirm", hb.ConfirmBookingHandler)
		api.POST("/:id/reject", hb.RejectBookingHandler)
		api.POST("/:id/cancel", hb.CancelBookingHandler)
		api.POST("/:id/complete", hb.CompleteBookingHandler)
	}
}

// RegisterFixedBookingRoutes registers recurring template endpoints.
func RegisterFixedBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/fixed-bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserSvc))
		api.GET("", hb.ListFixedBookingsHandler)
		api.GET("/calendar", hb.FixedBookingCalendarHandler)
		api.POST("", hb.CreateFixedBookingHandler)
		api.PUT("/:id", hb.UpdateFixedBookingHandler)
		api.PUT("/:id/status", hb.SetFixedBookingStatusHandler)
		api.DELETE("/:id", hb.DeleteFixedBookingHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserSvc), middleware.RequireAdmin())
		api.POST("/fixed-bookings/promote", hb.PromoteFixedBookingsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterCoachRoutes(r, hb)
	RegisterVenueRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterFixedBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
