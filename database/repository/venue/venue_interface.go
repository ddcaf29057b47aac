package venueRepo

import (
	"context"

	"courtside/models"
)

// VenueRepository defines methods for venue data access.
type VenueRepository interface {
	// GetByID retrieves a venue by its unique ID; (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*models.Venue, error)
	// List retrieves venues, optionally filtered by status.
	List(ctx context.Context, status *int) ([]models.Venue, error)
	// Create inserts a new venue record.
	Create(ctx context.Context, venue *models.Venue) error
	// Update modifies an existing venue record.
	Update(ctx context.Context, venue *models.Venue) error
	// Delete removes a venue record by its ID.
	Delete(ctx context.Context, id string) error
}
