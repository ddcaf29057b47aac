package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "courtside/database/repository/booking"
	userRepo "courtside/database/repository/user"
	"courtside/models"
	"courtside/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ConfirmedCancelLead is the minimum lead time before the start instant at
// which a confirmed booking may still be cancelled. Pending bookings carry no
// such commitment and are always cancellable.
const ConfirmedCancelLead = 12 * time.Hour

// Action is a requested lifecycle transition on a booking.
type Action string

const (
	ActionConfirm  Action = "confirm"
	ActionReject   Action = "reject"
	ActionCancel   Action = "cancel"
	ActionComplete Action = "complete"
)

// TransitionExtra carries the optional side payload of a transition.
type TransitionExtra struct {
	Reason   string   `json:"reason,omitempty"`
	Feedback string   `json:"feedback,omitempty"`
	Photos   []string `json:"photos,omitempty"`
}

// CreateInput is the student-facing booking request.
type CreateInput struct {
	CoachID     string            `json:"coachId" binding:"required"`
	VenueID     string            `json:"venueId" binding:"required"`
	Date        string            `json:"date" binding:"required"`
	StartTime   string            `json:"startTime" binding:"required"`
	EndTime     string            `json:"endTime" binding:"required"`
	Students    []models.Attendee `json:"students,omitempty"`
	StudentNote string            `json:"studentNote,omitempty"`
}

// BookingService owns one-off booking creation, listing, and the lifecycle
// state machine.
type BookingService interface {
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)
	Create(ctx context.Context, session models.Session, input CreateInput) (*models.Booking, error)
	Transition(ctx context.Context, session models.Session, bookingID string, action Action, extra TransitionExtra) (*models.Booking, error)
}

// DefaultBookingService implements BookingService. Location fixes the wall
// clock used for the cancellation lead-time check.
type DefaultBookingService struct {
	BookingRepo bookingRepo.BookingRepository
	UserRepo    userRepo.UserRepository
	Location    *time.Location
	Now         func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultBookingService) location() *time.Location {
	if s.Location != nil {
		return s.Location
	}
	return time.Local
}

func (s *DefaultBookingService) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	b, err := s.BookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.NewCollaboratorError("booking lookup", err)
	}
	return b, nil
}

// List returns matching bookings with student and coach display names
// attached through a single batched user lookup.
func (s *DefaultBookingService) List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	bookings, err := s.BookingRepo.List(ctx, filter)
	if err != nil {
		return nil, utils.NewCollaboratorError("booking lookup", err)
	}
	if len(bookings) == 0 {
		return bookings, nil
	}

	idSet := make(map[string]bool, len(bookings))
	for _, b := range bookings {
		if b.StudentID != "" {
			idSet[b.StudentID] = true
		}
	}
	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	users, err := s.UserRepo.GetByIDs(ctx, ids)
	if err != nil {
		// Enrichment is display-only; the booking list itself still stands.
		utils.GetLogger().Warn("booking enrichment failed", zap.Error(err))
		return bookings, nil
	}
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Nickname
	}
	for i := range bookings {
		bookings[i].StudentName = names[bookings[i].StudentID]
	}
	return bookings, nil
}

// Create validates and inserts a pending booking. The insert itself is the
// source of truth for slot ownership: a duplicate-slot rejection from the
// unique index is a normal outcome surfaced as a conflict, not a crash.
func (s *DefaultBookingService) Create(ctx context.Context, session models.Session, input CreateInput) (*models.Booking, error) {
	if err := validateCreate(input); err != nil {
		return nil, err
	}
	if session.UserID == "" {
		return nil, utils.NewPermissionError("sign in to book a lesson")
	}

	now := s.now()
	booking := &models.Booking{
		ID:          uuid.NewString(),
		CoachID:     input.CoachID,
		StudentID:   session.UserID,
		VenueID:     input.VenueID,
		Date:        input.Date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Status:      models.BookingPending,
		Students:    input.Students,
		StudentNote: input.StudentNote,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.BookingRepo.Create(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateSlot) {
			return nil, utils.NewConflictError("this slot was just booked, please pick another time")
		}
		return nil, utils.NewCollaboratorError("booking create", err)
	}
	utils.GetLogger().Info("booking created",
		zap.String("id", booking.ID), zap.String("coachId", booking.CoachID),
		zap.String("date", booking.Date), zap.String("startTime", booking.StartTime))
	return booking, nil
}

// Transition applies one state-machine step. Checks run in a fixed order:
// existence, terminal state, actor role, then eligibility. Nothing is written
// until all of them pass.
func (s *DefaultBookingService) Transition(ctx context.Context, session models.Session, bookingID string, action Action, extra TransitionExtra) (*models.Booking, error) {
	b, err := s.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, utils.NewCollaboratorError("booking lookup", err)
	}
	if b == nil {
		return nil, utils.NewValidationError("id", fmt.Sprintf("booking %s not found", bookingID))
	}
	if b.Status.Terminal() {
		return nil, utils.NewConflictError(fmt.Sprintf("booking is already %s and can no longer change", b.Status))
	}

	var (
		next     models.BookingStatus
		extraDoc map[string]any
	)
	switch action {
	case ActionConfirm:
		if b.Status != models.BookingPending {
			return nil, utils.NewConflictError("only a pending booking can be confirmed")
		}
		if !session.ActsAsCoach(b.CoachID) {
			return nil, utils.NewPermissionError("only the coach may confirm a booking")
		}
		next = models.BookingConfirmed

	case ActionReject:
		if b.Status != models.BookingPending {
			return nil, utils.NewConflictError("only a pending booking can be rejected")
		}
		if !session.ActsAsCoach(b.CoachID) {
			return nil, utils.NewPermissionError("only the coach may reject a booking")
		}
		next = models.BookingRejected
		if extra.Reason != "" {
			extraDoc = map[string]any{"rejectReason": extra.Reason}
		}

	case ActionCancel:
		if !s.mayCancel(session, b) {
			return nil, utils.NewPermissionError("only the booking's student, the coach, or an admin may cancel")
		}
		if b.Status == models.BookingConfirmed {
			ok, err := s.cancellable(b)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, utils.NewConflictError("a confirmed booking can only be cancelled at least 12 hours before it starts")
			}
		}
		next = models.BookingCancelled

	case ActionComplete:
		if b.Status != models.BookingConfirmed {
			return nil, utils.NewConflictError("only a confirmed booking can be completed")
		}
		if !session.ActsAsCoach(b.CoachID) {
			return nil, utils.NewPermissionError("only the coach may complete a booking")
		}
		next = models.BookingCompleted
		extraDoc = map[string]any{}
		if extra.Feedback != "" {
			extraDoc["feedback"] = extra.Feedback
		}
		if len(extra.Photos) > 0 {
			extraDoc["photos"] = extra.Photos
		}
		if len(extraDoc) == 0 {
			extraDoc = nil
		}

	default:
		return nil, utils.NewValidationError("action", fmt.Sprintf("unknown action %q", action))
	}

	if err := s.BookingRepo.UpdateStatus(ctx, bookingID, next, extraDoc); err != nil {
		return nil, utils.NewCollaboratorError("booking update", err)
	}
	utils.GetLogger().Info("booking transitioned",
		zap.String("id", bookingID), zap.String("from", string(b.Status)),
		zap.String("to", string(next)), zap.String("actor", session.UserID))

	b.Status = next
	if extra.Reason != "" && next == models.BookingRejected {
		b.RejectReason = extra.Reason
	}
	if next == models.BookingCompleted {
		if extra.Feedback != "" {
			b.Feedback = extra.Feedback
		}
		if len(extra.Photos) > 0 {
			b.Photos = extra.Photos
		}
	}
	b.UpdatedAt = s.now()
	return b, nil
}

func (s *DefaultBookingService) mayCancel(session models.Session, b *models.Booking) bool {
	if session.IsAdmin() {
		return true
	}
	if session.UserID != "" && session.UserID == b.StudentID {
		return true
	}
	return session.ActsAsCoach(b.CoachID)
}

// cancellable applies the confirmed-booking lead-time rule: the start instant
// must be at least ConfirmedCancelLead away.
func (s *DefaultBookingService) cancellable(b *models.Booking) (bool, error) {
	start, err := b.StartInstant(s.location())
	if err != nil {
		return false, utils.NewValidationError("startTime", "booking has a malformed start time")
	}
	return start.Sub(s.now()) >= ConfirmedCancelLead, nil
}

func validateCreate(input CreateInput) error {
	if input.CoachID == "" {
		return utils.NewValidationError("coachId", "coach is required")
	}
	if input.VenueID == "" {
		return utils.NewValidationError("venueId", "venue is required")
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return utils.NewValidationError("date", "must be YYYY-MM-DD")
	}
	start, err := time.Parse("15:04", input.StartTime)
	if err != nil {
		return utils.NewValidationError("startTime", "must be HH:MM")
	}
	end, err := time.Parse("15:04", input.EndTime)
	if err != nil {
		return utils.NewValidationError("endTime", "must be HH:MM")
	}
	if end.Sub(start) != time.Hour {
		return utils.NewValidationError("endTime", "a lesson is exactly one hour")
	}
	return nil
}
