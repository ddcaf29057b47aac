package fixedbooking

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	bookingRepo "courtside/database/repository/booking"
	fixedBookingRepo "courtside/database/repository/fixedbooking"
	"courtside/models"
	"courtside/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaterializeWindowDays is the default lookahead for expanding recurring
// templates into calendar occurrences, inclusive of today.
const MaterializeWindowDays = 30

// occurrenceNamespace seeds the deterministic synthetic occurrence IDs so the
// same (template, date) pair always maps to the same ID.
var occurrenceNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// FixedBookingService owns recurring booking templates: their CRUD, their
// expansion into dated occurrences, and their promotion into real bookings.
type FixedBookingService interface {
	GetByID(ctx context.Context, id string) (*models.FixedBooking, error)
	List(ctx context.Context, filter models.FixedBookingFilter) ([]models.FixedBooking, error)
	Create(ctx context.Context, session models.Session, fb *models.FixedBooking) (*models.FixedBooking, error)
	Update(ctx context.Context, session models.Session, fb *models.FixedBooking) (*models.FixedBooking, error)
	SetStatus(ctx context.Context, session models.Session, id string, status int) error
	Delete(ctx context.Context, session models.Session, id string) error

	// Calendar returns the merged view of materialized occurrences and real
	// one-off bookings for a coach, deduplicated and ordered.
	Calendar(ctx context.Context, coachID string) ([]models.BookingOccurrence, error)

	// PromoteDue persists real confirmed bookings for today's occurrences
	// that have not been promoted yet. Returns the number created.
	PromoteDue(ctx context.Context) (int, error)
}

// DefaultFixedBookingService implements FixedBookingService.
type DefaultFixedBookingService struct {
	FixedBookingRepo fixedBookingRepo.FixedBookingRepository
	BookingRepo      bookingRepo.BookingRepository
	Now              func() time.Time
}

func (s *DefaultFixedBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// OccurrenceID derives the deterministic synthetic identity for one
// materialized occurrence.
func OccurrenceID(templateID, date string) string {
	return uuid.NewSHA1(occurrenceNamespace, []byte(templateID+"|"+date)).String()
}

// Materialize expands active templates into occurrences over [from, from+days)
// inclusive of from. An occurrence exists for each date whose weekday matches
// the template and that the template still covers. Status is always confirmed;
// recurring slots are pre-approved by construction.
func Materialize(templates []models.FixedBooking, from time.Time, days int) []models.BookingOccurrence {
	if days <= 0 {
		days = MaterializeWindowDays
	}
	var out []models.BookingOccurrence
	for offset := 0; offset < days; offset++ {
		day := from.AddDate(0, 0, offset)
		date := day.Format("2006-01-02")
		weekday := int(day.Weekday())
		for i := range templates {
			fb := &templates[i]
			if fb.Status != models.FixedBookingActive || fb.Weekday != weekday || !fb.CoversDate(date) {
				continue
			}
			out = append(out, models.BookingOccurrence{
				ID:             OccurrenceID(fb.ID, date),
				IsFixed:        true,
				FixedBookingID: fb.ID,
				CoachID:        fb.CoachID,
				StudentID:      fb.StudentID,
				VenueID:        fb.VenueID,
				Date:           date,
				StartTime:      fb.StartTime,
				EndTime:        fb.EndTime,
				Students:       fb.Students,
				Status:         models.BookingConfirmed,
			})
		}
	}
	return out
}

// MergeCalendar combines materialized occurrences with real one-off bookings.
// An occurrence whose (fixedBookingID, date) already exists as a promoted
// booking is dropped so the calendar never shows it twice. Output is sorted
// ascending by (date, startTime).
func MergeCalendar(occurrences []models.BookingOccurrence, bookings []models.Booking) []models.BookingOccurrence {
	promoted := make(map[string]bool, len(bookings))
	merged := make([]models.BookingOccurrence, 0, len(occurrences)+len(bookings))
	for _, b := range bookings {
		if b.FixedBookingID != "" {
			promoted[b.FixedBookingID+"|"+b.Date] = true
		}
		merged = append(merged, models.BookingOccurrence{
			ID:             b.ID,
			FixedBookingID: b.FixedBookingID,
			CoachID:        b.CoachID,
			StudentID:      b.StudentID,
			VenueID:        b.VenueID,
			Date:           b.Date,
			StartTime:      b.StartTime,
			EndTime:        b.EndTime,
			Students:       b.Students,
			Status:         b.Status,
		})
	}
	for _, occ := range occurrences {
		if promoted[occ.FixedBookingID+"|"+occ.Date] {
			continue
		}
		merged = append(merged, occ)
	}
	sort.Slice(merged, func(i, j int) bool {
		if merged[i].Date != merged[j].Date {
			return merged[i].Date < merged[j].Date
		}
		return merged[i].StartTime < merged[j].StartTime
	})
	return merged
}

func (s *DefaultFixedBookingService) GetByID(ctx context.Context, id string) (*models.FixedBooking, error) {
	fb, err := s.FixedBookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.NewCollaboratorError("fixed booking lookup", err)
	}
	return fb, nil
}

func (s *DefaultFixedBookingService) List(ctx context.Context, filter models.FixedBookingFilter) ([]models.FixedBooking, error) {
	fbs, err := s.FixedBookingRepo.List(ctx, filter)
	if err != nil {
		return nil, utils.NewCollaboratorError("fixed booking lookup", err)
	}
	return fbs, nil
}

func (s *DefaultFixedBookingService) Create(ctx context.Context, session models.Session, fb *models.FixedBooking) (*models.FixedBooking, error) {
	if err := validateTemplate(fb); err != nil {
		return nil, err
	}
	if !s.mayManage(session, fb.StudentID) {
		return nil, utils.NewPermissionError("only the owning student or an admin may manage this template")
	}
	now := s.now()
	fb.ID = uuid.NewString()
	fb.Status = models.FixedBookingActive
	fb.CreatedAt = now
	fb.UpdatedAt = now
	if err := s.FixedBookingRepo.Create(ctx, fb); err != nil {
		return nil, utils.NewCollaboratorError("fixed booking create", err)
	}
	utils.GetLogger().Info("fixed booking created",
		zap.String("id", fb.ID), zap.String("coachId", fb.CoachID), zap.Int("weekday", fb.Weekday))
	return fb, nil
}

func (s *DefaultFixedBookingService) Update(ctx context.Context, session models.Session, fb *models.FixedBooking) (*models.FixedBooking, error) {
	if fb.ID == "" {
		return nil, utils.NewValidationError("id", "id is required")
	}
	existing, err := s.FixedBookingRepo.GetByID(ctx, fb.ID)
	if err != nil {
		return nil, utils.NewCollaboratorError("fixed booking lookup", err)
	}
	if existing == nil {
		return nil, utils.NewValidationError("id", fmt.Sprintf("fixed booking %s not found", fb.ID))
	}
	if !s.mayManage(session, existing.StudentID) {
		return nil, utils.NewPermissionError("only the owning student or an admin may manage this template")
	}
	if err := validateTemplate(fb); err != nil {
		return nil, err
	}
	fb.StudentID = existing.StudentID
	fb.Status = existing.Status
	fb.CreatedAt = existing.CreatedAt
	fb.UpdatedAt = s.now()
	if err := s.FixedBookingRepo.Update(ctx, fb); err != nil {
		return nil, utils.NewCollaboratorError("fixed booking update", err)
	}
	return fb, nil
}

func (s *DefaultFixedBookingService) SetStatus(ctx context.Context, session models.Session, id string, status int) error {
	if status != models.FixedBookingActive && status != models.FixedBookingPaused {
		return utils.NewValidationError("status", "must be 0 or 1")
	}
	existing, err := s.FixedBookingRepo.GetByID(ctx, id)
	if err != nil {
		return utils.NewCollaboratorError("fixed booking lookup", err)
	}
	if existing == nil {
		return utils.NewValidationError("id", fmt.Sprintf("fixed booking %s not found", id))
	}
	if !s.mayManage(session, existing.StudentID) {
		return utils.NewPermissionError("only the owning student or an admin may manage this template")
	}
	if err := s.FixedBookingRepo.SetStatus(ctx, id, status); err != nil {
		return utils.NewCollaboratorError("fixed booking update", err)
	}
	return nil
}

func (s *DefaultFixedBookingService) Delete(ctx context.Context, session models.Session, id string) error {
	existing, err := s.FixedBookingRepo.GetByID(ctx, id)
	if err != nil {
		return utils.NewCollaboratorError("fixed booking lookup", err)
	}
	if existing == nil {
		return utils.NewValidationError("id", fmt.Sprintf("fixed booking %s not found", id))
	}
	if !s.mayManage(session, existing.StudentID) {
		return utils.NewPermissionError("only the owning student or an admin may manage this template")
	}
	if err := s.FixedBookingRepo.Delete(ctx, id); err != nil {
		return utils.NewCollaboratorError("fixed booking delete", err)
	}
	return nil
}

func (s *DefaultFixedBookingService) Calendar(ctx context.Context, coachID string) ([]models.BookingOccurrence, error) {
	active := models.FixedBookingActive
	templates, err := s.FixedBookingRepo.List(ctx, models.FixedBookingFilter{CoachID: coachID, Status: &active})
	if err != nil {
		return nil, utils.NewCollaboratorError("fixed booking lookup", err)
	}
	occurrences := Materialize(templates, s.now(), MaterializeWindowDays)

	bookings, err := s.BookingRepo.List(ctx, models.BookingFilter{
		CoachID:  coachID,
		Statuses: models.BlockingStatuses,
	})
	if err != nil {
		return nil, utils.NewCollaboratorError("booking lookup", err)
	}
	return MergeCalendar(occurrences, bookings), nil
}

// PromoteDue materializes today's occurrences into persisted confirmed
// bookings. Already-promoted occurrences are skipped, and a duplicate-slot
// insert race is treated as already promoted rather than a failure.
func (s *DefaultFixedBookingService) PromoteDue(ctx context.Context) (int, error) {
	active := models.FixedBookingActive
	templates, err := s.FixedBookingRepo.List(ctx, models.FixedBookingFilter{Status: &active})
	if err != nil {
		return 0, utils.NewCollaboratorError("fixed booking lookup", err)
	}

	now := s.now()
	created := 0
	for _, occ := range Materialize(templates, now, 1) {
		exists, err := s.BookingRepo.ExistsPromoted(ctx, occ.FixedBookingID, occ.Date)
		if err != nil {
			return created, utils.NewCollaboratorError("booking lookup", err)
		}
		if exists {
			continue
		}
		booking := &models.Booking{
			ID:             uuid.NewString(),
			CoachID:        occ.CoachID,
			StudentID:      occ.StudentID,
			VenueID:        occ.VenueID,
			Date:           occ.Date,
			StartTime:      occ.StartTime,
			EndTime:        occ.EndTime,
			Status:         models.BookingConfirmed,
			Students:       occ.Students,
			FixedBookingID: occ.FixedBookingID,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := s.BookingRepo.Create(ctx, booking); err != nil {
			if errors.Is(err, bookingRepo.ErrDuplicateSlot) {
				continue
			}
			return created, utils.NewCollaboratorError("booking create", err)
		}
		created++
	}
	if created > 0 {
		utils.GetLogger().Info("fixed bookings promoted", zap.Int("created", created))
	}
	return created, nil
}

func (s *DefaultFixedBookingService) mayManage(session models.Session, studentID string) bool {
	return session.IsAdmin() || (session.UserID != "" && session.UserID == studentID)
}

func validateTemplate(fb *models.FixedBooking) error {
	if fb.CoachID == "" {
		return utils.NewValidationError("coachId", "coach is required")
	}
	if fb.VenueID == "" {
		return utils.NewValidationError("venueId", "venue is required")
	}
	if fb.StudentID == "" {
		return utils.NewValidationError("studentId", "student is required")
	}
	if fb.Weekday < 0 || fb.Weekday > 6 {
		return utils.NewValidationError("weekday", "must be 0 (Sunday) through 6 (Saturday)")
	}
	if _, err := time.Parse("15:04", fb.StartTime); err != nil {
		return utils.NewValidationError("startTime", "must be HH:MM")
	}
	if _, err := time.Parse("15:04", fb.EndTime); err != nil {
		return utils.NewValidationError("endTime", "must be HH:MM")
	}
	if fb.StartTime >= fb.EndTime {
		return utils.NewValidationError("endTime", "must be after startTime")
	}
	if fb.ValidUntil != "" {
		if _, err := time.Parse("2006-01-02", fb.ValidUntil); err != nil {
			return utils.NewValidationError("validUntil", "must be YYYY-MM-DD")
		}
	}
	return nil
}
