package userRepo

import (
	"context"

	"courtside/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID; (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByPhone retrieves a user by phone number; (nil, nil) when absent.
	GetByPhone(ctx context.Context, phone string) (*models.User, error)
	// GetByIDs retrieves users for a set of IDs in a single query.
	GetByIDs(ctx context.Context, ids []string) ([]models.User, error)
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
	// Update modifies an existing user record.
	Update(ctx context.Context, user *models.User) error
	// SetRoles updates the role and current display role of a user.
	SetRoles(ctx context.Context, id string, role, currentRole models.Role) error
}
