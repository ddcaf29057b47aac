package handlers

import (
	"courtside/services/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserSvc user.UserService

	// Account endpoints
	RegisterUserHandler gin.HandlerFunc
	LoginHandler        gin.HandlerFunc
	ProfileHandler      gin.HandlerFunc
	SetRolesHandler     gin.HandlerFunc

	// Coach endpoints
	ListCoachesHandler     gin.HandlerFunc
	GetCoachHandler        gin.HandlerFunc
	CreateCoachHandler     gin.HandlerFunc
	UpdateCoachHandler     gin.HandlerFunc
	DeleteCoachHandler     gin.HandlerFunc
	GetScheduleHandler     gin.HandlerFunc
	ReplaceScheduleHandler gin.HandlerFunc

	// Venue endpoints
	ListVenuesHandler  gin.HandlerFunc
	GetVenueHandler    gin.HandlerFunc
	CreateVenueHandler gin.HandlerFunc
	UpdateVenueHandler gin.HandlerFunc
	DeleteVenueHandler gin.HandlerFunc

	// Availability endpoints
	ResolveAvailabilityHandler gin.HandlerFunc
	VenueAvailabilityHandler   gin.HandlerFunc

	// Booking endpoints
	ListBookingsHandler    gin.HandlerFunc
	GetBookingHandler      gin.HandlerFunc
	CreateBookingHandler   gin.HandlerFunc
	ConfirmBookingHandler  gin.HandlerFunc
	RejectBookingHandler   gin.HandlerFunc
	CancelBookingHandler   gin.HandlerFunc
	CompleteBookingHandler gin.HandlerFunc

	// Fixed booking endpoints
	ListFixedBookingsHandler     gin.HandlerFunc
	FixedBookingCalendarHandler  gin.HandlerFunc
	CreateFixedBookingHandler    gin.HandlerFunc
	UpdateFixedBookingHandler    gin.HandlerFunc
	SetFixedBookingStatusHandler gin.HandlerFunc
	DeleteFixedBookingHandler    gin.HandlerFunc

	// Admin endpoints
	PromoteFixedBookingsHandler gin.HandlerFunc
}
