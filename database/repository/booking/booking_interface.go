package bookingRepo

import (
	"context"
	"errors"

	"courtside/models"
)

// ErrDuplicateSlot is returned by Create when another pending or confirmed
// booking already holds the same (coach, venue, date, startTime) tuple. The
// partial unique index makes the check-and-insert atomic; callers translate
// this into a user-facing conflict.
var ErrDuplicateSlot = errors.New("slot already booked")

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID; (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// List retrieves bookings matching the filter, newest created first.
	List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)
	// Create inserts a new booking record. Returns ErrDuplicateSlot when the
	// slot is already held by a pending or confirmed booking.
	Create(ctx context.Context, booking *models.Booking) error
	// UpdateStatus applies a status transition with optional extra fields
	// ("rejectReason", "feedback", "photos").
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus, extra map[string]any) error
	// ExistsPromoted reports whether a booking promoted from the given fixed
	// booking template already exists for date.
	ExistsPromoted(ctx context.Context, fixedBookingID, date string) (bool, error)
}
