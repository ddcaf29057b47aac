package venue

import (
	"context"
	"fmt"
	"strings"
	"time"

	venueRepo "courtside/database/repository/venue"
	"courtside/models"
	"courtside/services/storage"
	"courtside/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// VenueService owns venue CRUD for the admin surface and venue reads for the
// booking flow.
type VenueService interface {
	GetByID(ctx context.Context, id string) (*models.Venue, error)
	List(ctx context.Context, status *int) ([]models.Venue, error)
	Create(ctx context.Context, session models.Session, venue *models.Venue) (*models.Venue, error)
	Update(ctx context.Context, session models.Session, venue *models.Venue) (*models.Venue, error)
	Delete(ctx context.Context, session models.Session, id string) error
}

// DefaultVenueService implements VenueService. Storage resolves image
// references into serveable URLs on reads.
type DefaultVenueService struct {
	VenueRepo venueRepo.VenueRepository
	Storage   storage.StorageService
}

func (s *DefaultVenueService) GetByID(ctx context.Context, id string) (*models.Venue, error) {
	venue, err := s.VenueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.NewCollaboratorError("venue lookup", err)
	}
	if venue != nil {
		s.resolveImages(ctx, venue)
	}
	return venue, nil
}

func (s *DefaultVenueService) List(ctx context.Context, status *int) ([]models.Venue, error) {
	venues, err := s.VenueRepo.List(ctx, status)
	if err != nil {
		return nil, utils.NewCollaboratorError("venue lookup", err)
	}
	for i := range venues {
		s.resolveImages(ctx, &venues[i])
	}
	return venues, nil
}

func (s *DefaultVenueService) Create(ctx context.Context, session models.Session, venue *models.Venue) (*models.Venue, error) {
	if !session.IsAdmin() {
		return nil, utils.NewPermissionError("only an admin may create venues")
	}
	if err := validateVenue(venue); err != nil {
		return nil, err
	}
	venue.ID = uuid.NewString()
	venue.Status = models.VenueActive
	if err := s.VenueRepo.Create(ctx, venue); err != nil {
		return nil, utils.NewCollaboratorError("venue create", err)
	}
	utils.GetLogger().Info("venue created", zap.String("id", venue.ID), zap.String("name", venue.Name))
	return venue, nil
}

func (s *DefaultVenueService) Update(ctx context.Context, session models.Session, venue *models.Venue) (*models.Venue, error) {
	if !session.IsAdmin() {
		return nil, utils.NewPermissionError("only an admin may edit venues")
	}
	if venue.ID == "" {
		return nil, utils.NewValidationError("id", "id is required")
	}
	existing, err := s.VenueRepo.GetByID(ctx, venue.ID)
	if err != nil {
		return nil, utils.NewCollaboratorError("venue lookup", err)
	}
	if existing == nil {
		return nil, utils.NewValidationError("id", fmt.Sprintf("venue %s not found", venue.ID))
	}
	if err := validateVenue(venue); err != nil {
		return nil, err
	}
	venue.CreatedAt = existing.CreatedAt
	if err := s.VenueRepo.Update(ctx, venue); err != nil {
		return nil, utils.NewCollaboratorError("venue update", err)
	}
	return venue, nil
}

func (s *DefaultVenueService) Delete(ctx context.Context, session models.Session, id string) error {
	if !session.IsAdmin() {
		return utils.NewPermissionError("only an admin may remove venues")
	}
	if err := s.VenueRepo.Delete(ctx, id); err != nil {
		return utils.NewCollaboratorError("venue delete", err)
	}
	return nil
}

func (s *DefaultVenueService) resolveImages(ctx context.Context, venue *models.Venue) {
	if s.Storage == nil || len(venue.Images) == 0 {
		return
	}
	resolved, err := s.Storage.ResolveURLs(ctx, venue.Images)
	if err != nil {
		// Unresolved references still render as broken thumbnails upstream;
		// never fail a venue read over them.
		utils.GetLogger().Warn("image resolution failed", zap.String("venueId", venue.ID), zap.Error(err))
		return
	}
	venue.Images = resolved
}

func validateVenue(venue *models.Venue) error {
	if strings.TrimSpace(venue.Name) == "" {
		return utils.NewValidationError("name", "name is required")
	}
	open, err := time.Parse("15:04", venue.OperatingHours.Open)
	if err != nil {
		return utils.NewValidationError("operatingHours.open", "must be HH:MM")
	}
	closeT, err := time.Parse("15:04", venue.OperatingHours.Close)
	if err != nil {
		return utils.NewValidationError("operatingHours.close", "must be HH:MM")
	}
	if !open.Before(closeT) {
		return utils.NewValidationError("operatingHours", "open must be before close")
	}
	return nil
}
