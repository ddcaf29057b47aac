package user

import (
	"context"
	"fmt"
	"time"

	coachRepo "courtside/database/repository/coach"
	userRepo "courtside/database/repository/user"
	"courtside/models"
	"courtside/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is how long an issued session token remains valid.
const TokenTTL = 72 * time.Hour

// AuthResult is the login response payload.
type AuthResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// UserService owns accounts: registration, login, role management, and
// session reconstruction from a token subject.
type UserService interface {
	Register(ctx context.Context, phone, password, nickname string) (*AuthResult, error)
	Login(ctx context.Context, phone, password string) (*AuthResult, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	// SessionFor builds the actor context for a user id, attaching the owned
	// coach profile when one exists.
	SessionFor(ctx context.Context, userID string) (models.Session, error)
	// SetRoles assigns a user's role and current display role. Admin only.
	SetRoles(ctx context.Context, session models.Session, userID string, role, currentRole models.Role) error
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	UserRepo  userRepo.UserRepository
	CoachRepo coachRepo.CoachRepository
}

func (s *DefaultUserService) Register(ctx context.Context, phone, password, nickname string) (*AuthResult, error) {
	if phone == "" {
		return nil, utils.NewValidationError("phone", "phone is required")
	}
	if len(password) < 6 {
		return nil, utils.NewValidationError("password", "must be at least 6 characters")
	}
	existing, err := s.UserRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, utils.NewCollaboratorError("user lookup", err)
	}
	if existing != nil {
		return nil, utils.NewConflictError("an account with this phone already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	now := time.Now()
	u := &models.User{
		ID:           uuid.NewString(),
		Phone:        phone,
		PasswordHash: string(hash),
		Nickname:     nickname,
		Role:         models.RoleStudent,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.UserRepo.Create(ctx, u); err != nil {
		return nil, utils.NewCollaboratorError("user create", err)
	}
	utils.GetLogger().Info("user registered", zap.String("id", u.ID))
	return s.issue(u)
}

func (s *DefaultUserService) Login(ctx context.Context, phone, password string) (*AuthResult, error) {
	if phone == "" || password == "" {
		return nil, utils.NewValidationError("phone", "phone and password are required")
	}
	u, err := s.UserRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, utils.NewCollaboratorError("user lookup", err)
	}
	if u == nil {
		return nil, utils.NewPermissionError("invalid phone or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, utils.NewPermissionError("invalid phone or password")
	}
	return s.issue(u)
}

func (s *DefaultUserService) issue(u *models.User) (*AuthResult, error) {
	token, err := utils.GenerateToken(u.ID, string(u.Role), TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}
	return &AuthResult{Token: token, User: u}, nil
}

func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, err := s.UserRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.NewCollaboratorError("user lookup", err)
	}
	return u, nil
}

func (s *DefaultUserService) SessionFor(ctx context.Context, userID string) (models.Session, error) {
	u, err := s.UserRepo.GetByID(ctx, userID)
	if err != nil {
		return models.Session{}, utils.NewCollaboratorError("user lookup", err)
	}
	if u == nil {
		return models.Session{}, utils.NewPermissionError("account no longer exists")
	}
	session := models.Session{UserID: u.ID, Role: u.Role, CoachID: u.CoachID}
	if u.CurrentRole != "" && u.Role == models.RoleAdmin {
		// Admins may browse as another role; permissions follow the viewed
		// role, not the underlying account.
		session.Role = u.CurrentRole
	}
	if session.Role == models.RoleCoach && session.CoachID == "" {
		coach, err := s.CoachRepo.GetByUserID(ctx, u.ID)
		if err != nil {
			return models.Session{}, utils.NewCollaboratorError("coach lookup", err)
		}
		if coach != nil {
			session.CoachID = coach.ID
		}
	}
	return session, nil
}

func (s *DefaultUserService) SetRoles(ctx context.Context, session models.Session, userID string, role, currentRole models.Role) error {
	if !session.IsAdmin() {
		return utils.NewPermissionError("only an admin may change roles")
	}
	if _, err := models.ParseRole(string(role)); err != nil {
		return utils.NewValidationError("role", err.Error())
	}
	if currentRole != "" {
		if _, err := models.ParseRole(string(currentRole)); err != nil {
			return utils.NewValidationError("currentRole", err.Error())
		}
	}
	if err := s.UserRepo.SetRoles(ctx, userID, role, currentRole); err != nil {
		return utils.NewCollaboratorError("user update", err)
	}
	utils.GetLogger().Info("user roles updated",
		zap.String("userId", userID), zap.String("role", string(role)), zap.String("currentRole", string(currentRole)))
	return nil
}
