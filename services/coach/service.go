package coach

import (
	"context"
	"fmt"
	"strings"

	coachRepo "courtside/database/repository/coach"
	"courtside/models"
	"courtside/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CoachService owns coach profile CRUD.
type CoachService interface {
	GetByID(ctx context.Context, id string) (*models.Coach, error)
	List(ctx context.Context, status *int) ([]models.Coach, error)
	Create(ctx context.Context, session models.Session, coach *models.Coach) (*models.Coach, error)
	Update(ctx context.Context, session models.Session, coach *models.Coach) (*models.Coach, error)
	Delete(ctx context.Context, session models.Session, id string) error
}

// DefaultCoachService implements CoachService.
type DefaultCoachService struct {
	CoachRepo coachRepo.CoachRepository
}

func (s *DefaultCoachService) GetByID(ctx context.Context, id string) (*models.Coach, error) {
	coach, err := s.CoachRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.NewCollaboratorError("coach lookup", err)
	}
	return coach, nil
}

func (s *DefaultCoachService) List(ctx context.Context, status *int) ([]models.Coach, error) {
	coaches, err := s.CoachRepo.List(ctx, status)
	if err != nil {
		return nil, utils.NewCollaboratorError("coach lookup", err)
	}
	return coaches, nil
}

// Create registers a coach profile. A new coach starts with the default
// weekly schedule so availability resolves sensibly before the first edit.
func (s *DefaultCoachService) Create(ctx context.Context, session models.Session, coach *models.Coach) (*models.Coach, error) {
	if !session.IsAdmin() {
		return nil, utils.NewPermissionError("only an admin may create coach profiles")
	}
	if err := validateCoach(coach); err != nil {
		return nil, err
	}
	coach.ID = uuid.NewString()
	coach.Status = models.CoachActive
	if coach.Schedule == nil {
		coach.Schedule = models.DefaultSchedule()
	}
	if err := s.CoachRepo.Create(ctx, coach); err != nil {
		return nil, utils.NewCollaboratorError("coach create", err)
	}
	utils.GetLogger().Info("coach created", zap.String("id", coach.ID), zap.String("name", coach.Name))
	return coach, nil
}

func (s *DefaultCoachService) Update(ctx context.Context, session models.Session, coach *models.Coach) (*models.Coach, error) {
	if coach.ID == "" {
		return nil, utils.NewValidationError("id", "id is required")
	}
	existing, err := s.CoachRepo.GetByID(ctx, coach.ID)
	if err != nil {
		return nil, utils.NewCollaboratorError("coach lookup", err)
	}
	if existing == nil {
		return nil, utils.NewValidationError("id", fmt.Sprintf("coach %s not found", coach.ID))
	}
	if !session.ActsAsCoach(coach.ID) {
		return nil, utils.NewPermissionError("only the coach or an admin may edit this profile")
	}
	if err := validateCoach(coach); err != nil {
		return nil, err
	}
	// Profile edits never touch the schedule; that goes through the
	// schedule service's full replace.
	coach.Schedule = existing.Schedule
	coach.UserID = existing.UserID
	coach.CreatedAt = existing.CreatedAt
	if err := s.CoachRepo.Update(ctx, coach); err != nil {
		return nil, utils.NewCollaboratorError("coach update", err)
	}
	return coach, nil
}

func (s *DefaultCoachService) Delete(ctx context.Context, session models.Session, id string) error {
	if !session.IsAdmin() {
		return utils.NewPermissionError("only an admin may remove coach profiles")
	}
	if err := s.CoachRepo.Delete(ctx, id); err != nil {
		return utils.NewCollaboratorError("coach delete", err)
	}
	return nil
}

func validateCoach(coach *models.Coach) error {
	if strings.TrimSpace(coach.Name) == "" {
		return utils.NewValidationError("name", "name is required")
	}
	if len(coach.Specialties) > models.MaxSpecialties {
		return utils.NewValidationError("specialties", fmt.Sprintf("at most %d specialties", models.MaxSpecialties))
	}
	if coach.Status != models.CoachActive && coach.Status != models.CoachInactive {
		return utils.NewValidationError("status", "must be 0 or 1")
	}
	return nil
}
