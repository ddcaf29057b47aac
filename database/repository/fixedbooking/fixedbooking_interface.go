package fixedBookingRepo

import (
	"context"

	"courtside/models"
)

// FixedBookingRepository defines methods for recurring template data access.
type FixedBookingRepository interface {
	// GetByID retrieves a template by its unique ID; (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*models.FixedBooking, error)
	// List retrieves templates matching the filter.
	List(ctx context.Context, filter models.FixedBookingFilter) ([]models.FixedBooking, error)
	// Create inserts a new template.
	Create(ctx context.Context, fb *models.FixedBooking) error
	// Update modifies an existing template.
	Update(ctx context.Context, fb *models.FixedBooking) error
	// SetStatus flips a template between active (1) and paused (0).
	SetStatus(ctx context.Context, id string, status int) error
	// Delete removes a template by its ID.
	Delete(ctx context.Context, id string) error
}
