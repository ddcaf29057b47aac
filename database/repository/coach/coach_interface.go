package coachRepo

import (
	"context"

	"courtside/models"
)

// CoachRepository defines methods for coach data access.
type CoachRepository interface {
	// GetByID retrieves a coach by its unique ID; (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*models.Coach, error)
	// GetByUserID retrieves the coach profile owned by a user account.
	GetByUserID(ctx context.Context, userID string) (*models.Coach, error)
	// List retrieves coaches, optionally filtered by status.
	List(ctx context.Context, status *int) ([]models.Coach, error)
	// Create inserts a new coach record.
	Create(ctx context.Context, coach *models.Coach) error
	// Update modifies an existing coach record.
	Update(ctx context.Context, coach *models.Coach) error
	// ReplaceSchedule overwrites the coach's schedule document in full.
	ReplaceSchedule(ctx context.Context, coachID string, schedule *models.Schedule) error
	// Delete removes a coach record by its ID.
	Delete(ctx context.Context, id string) error
}
