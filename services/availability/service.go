package availability

import (
	"context"
	"fmt"
	"time"

	bookingRepo "courtside/database/repository/booking"
	coachRepo "courtside/database/repository/coach"
	fixedBookingRepo "courtside/database/repository/fixedbooking"
	venueRepo "courtside/database/repository/venue"
	"courtside/models"
	"courtside/services/schedule"
	"courtside/utils"

	"go.uber.org/zap"
)

// Fallback slot universe when no venue data is available.
const (
	fallbackOpenHour  = 8
	fallbackCloseHour = 22
)

// AvailabilityService computes slot-level availability verdicts.
type AvailabilityService interface {
	// Resolve produces the final per-slot availability for a coach on a date.
	Resolve(ctx context.Context, coachID, date string) (*models.DayAvailability, error)
	// VenueAvailability returns a per-venue verdict for a concrete slot, used
	// on the booking confirmation screen.
	VenueAvailability(ctx context.Context, date, startTime, endTime string) ([]models.VenueVerdict, error)
}

// DefaultAvailabilityService implements AvailabilityService. Now is
// injectable so same-day cutoff behavior is testable with a fixed clock.
type DefaultAvailabilityService struct {
	CoachRepo        coachRepo.CoachRepository
	VenueRepo        venueRepo.VenueRepository
	BookingRepo      bookingRepo.BookingRepository
	FixedBookingRepo fixedBookingRepo.FixedBookingRepository
	Now              func() time.Time
}

func (s *DefaultAvailabilityService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// BuildDaySlots computes the candidate 1-hour slot universe from venue
// operating hours: every whole hour in [minOpenHour, maxCloseHour) across the
// given venues, falling back to 08:00-22:00 when no venue contributes hours.
// Venue-driven only; coach schedules are a later filter.
func BuildDaySlots(venues []models.Venue) []models.Slot {
	minOpen, maxClose := -1, -1
	for _, v := range venues {
		if v.Status != models.VenueActive {
			continue
		}
		open, okO := parseHour(v.OperatingHours.Open)
		closeH, okC := parseHour(v.OperatingHours.Close)
		if !okO || !okC || open >= closeH {
			continue
		}
		if minOpen == -1 || open < minOpen {
			minOpen = open
		}
		if closeH > maxClose {
			maxClose = closeH
		}
	}
	if minOpen == -1 || maxClose == -1 {
		minOpen, maxClose = fallbackOpenHour, fallbackCloseHour
	}

	slots := make([]models.Slot, 0, maxClose-minOpen)
	for h := minOpen; h < maxClose; h++ {
		slots = append(slots, models.Slot{
			StartTime: fmt.Sprintf("%02d:00", h),
			EndTime:   fmt.Sprintf("%02d:00", h+1),
		})
	}
	return slots
}

// Resolve applies the availability filters in a fixed order. Each filter only
// narrows: a slot marked unavailable is never re-enabled by a later filter.
func (s *DefaultAvailabilityService) Resolve(ctx context.Context, coachID, date string) (*models.DayAvailability, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, utils.NewValidationError("date", "must be YYYY-MM-DD")
	}

	venues, err := s.VenueRepo.List(ctx, intPtr(models.VenueActive))
	if err != nil {
		utils.GetLogger().Warn("venue read failed, using fallback slot window",
			zap.String("coachId", coachID), zap.String("date", date), zap.Error(err))
		venues = nil
	}
	universe := BuildDaySlots(venues)

	sched, bookings, fixed, degraded := s.loadCollaborators(ctx, coachID, date, day)
	if degraded {
		// A transient read failure must not deny booking outright. Serve the
		// venue-derived universe fully open and flag the response.
		return openDay(coachID, date, universe, true), nil
	}

	unavailable := make(map[string]bool, len(universe))

	// 1. Schedule filter: blackout date or empty weekday set means the whole
	// day is off.
	dayOff := sched.IsDateBlocked(date) || len(sched.HoursForWeekday(day.Weekday())) == 0
	if !dayOff {
		allowed := make(map[int]bool)
		for _, h := range sched.HoursForWeekday(day.Weekday()) {
			allowed[h] = true
		}
		for _, slot := range universe {
			if h, ok := parseHour(slot.StartTime); !ok || !allowed[h] {
				unavailable[slot.StartTime] = true
			}
		}
	} else {
		for _, slot := range universe {
			unavailable[slot.StartTime] = true
		}
	}

	// 2. Existing pending/confirmed bookings hold their slot.
	for _, b := range bookings {
		unavailable[b.StartTime] = true
	}

	// 3. Active fixed templates for this weekday, still in force on date.
	for _, fb := range fixed {
		if fb.CoversDate(date) {
			unavailable[fb.StartTime] = true
		}
	}

	// 4. Same-day cutoff: at least a one hour lead time. At 14:20 the next
	// bookable hour is 16:00; a slot starting exactly at minBookableHour is
	// still too close and stays excluded.
	now := s.now()
	if date == now.Format("2006-01-02") {
		minBookableHour := now.Hour() + 1
		for _, slot := range universe {
			if h, ok := parseHour(slot.StartTime); ok && h <= minBookableHour {
				unavailable[slot.StartTime] = true
			}
		}
	}

	out := &models.DayAvailability{CoachID: coachID, Date: date, AllUnavailable: true}
	out.Slots = make([]models.SlotAvailability, 0, len(universe))
	for _, slot := range universe {
		avail := !unavailable[slot.StartTime]
		if avail {
			out.AllUnavailable = false
		}
		out.Slots = append(out.Slots, models.SlotAvailability{Slot: slot, Available: avail})
	}
	return out, nil
}

// loadCollaborators gathers the three reads the resolver filters on. Any
// failure flips the whole day into degraded mode, logged for operators.
func (s *DefaultAvailabilityService) loadCollaborators(ctx context.Context, coachID, date string, day time.Time) (*models.Schedule, []models.Booking, []models.FixedBooking, bool) {
	coach, err := s.CoachRepo.GetByID(ctx, coachID)
	if err != nil {
		utils.GetLogger().Warn("availability degraded: coach read failed",
			zap.String("coachId", coachID), zap.String("date", date), zap.Error(err))
		return nil, nil, nil, true
	}
	var sched *models.Schedule
	if coach != nil {
		sched = coach.Schedule
	}
	sched = schedule.EnsureSchedule(sched)

	bookings, err := s.BookingRepo.List(ctx, models.BookingFilter{
		CoachID:  coachID,
		Date:     date,
		Statuses: models.BlockingStatuses,
	})
	if err != nil {
		utils.GetLogger().Warn("availability degraded: booking read failed",
			zap.String("coachId", coachID), zap.String("date", date), zap.Error(err))
		return nil, nil, nil, true
	}

	weekday := int(day.Weekday())
	fixed, err := s.FixedBookingRepo.List(ctx, models.FixedBookingFilter{
		CoachID: coachID,
		Weekday: &weekday,
		Status:  intPtr(models.FixedBookingActive),
	})
	if err != nil {
		utils.GetLogger().Warn("availability degraded: fixed booking read failed",
			zap.String("coachId", coachID), zap.String("date", date), zap.Error(err))
		return nil, nil, nil, true
	}

	return sched, bookings, fixed, false
}

// VenueAvailability answers, per active venue, whether the requested slot can
// be booked there: within operating hours and not already held by a blocking
// booking at that venue.
func (s *DefaultAvailabilityService) VenueAvailability(ctx context.Context, date, startTime, endTime string) ([]models.VenueVerdict, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, utils.NewValidationError("date", "must be YYYY-MM-DD")
	}
	startHour, ok := parseHour(startTime)
	if !ok {
		return nil, utils.NewValidationError("startTime", "must be HH:MM")
	}
	endHour, ok := parseHour(endTime)
	if !ok {
		return nil, utils.NewValidationError("endTime", "must be HH:MM")
	}

	venues, err := s.VenueRepo.List(ctx, intPtr(models.VenueActive))
	if err != nil {
		return nil, utils.NewCollaboratorError("venue lookup", err)
	}

	booked := make(map[string]bool)
	bookings, err := s.BookingRepo.List(ctx, models.BookingFilter{
		Date:     date,
		Statuses: models.BlockingStatuses,
	})
	if err != nil {
		utils.GetLogger().Warn("venue availability degraded: booking read failed",
			zap.String("date", date), zap.Error(err))
	} else {
		for _, b := range bookings {
			if b.StartTime == startTime {
				booked[b.VenueID] = true
			}
		}
	}

	verdicts := make([]models.VenueVerdict, 0, len(venues))
	for _, v := range venues {
		verdict := models.VenueVerdict{
			Venue:              v,
			Available:          true,
			OperatingHoursText: v.OperatingHours.Open + "-" + v.OperatingHours.Close,
		}
		openH, okO := parseHour(v.OperatingHours.Open)
		closeH, okC := parseHour(v.OperatingHours.Close)
		switch {
		case okO && okC && (startHour < openH || endHour > closeH):
			verdict.Available = false
			verdict.UnavailableReason = models.VenueReasonOutsideHours
		case booked[v.ID]:
			verdict.Available = false
			verdict.UnavailableReason = models.VenueReasonAlreadyBooked
		}
		verdicts = append(verdicts, verdict)
	}
	return verdicts, nil
}

func openDay(coachID, date string, universe []models.Slot, degraded bool) *models.DayAvailability {
	out := &models.DayAvailability{CoachID: coachID, Date: date, Degraded: degraded}
	out.Slots = make([]models.SlotAvailability, 0, len(universe))
	for _, slot := range universe {
		out.Slots = append(out.Slots, models.SlotAvailability{Slot: slot, Available: true})
	}
	return out
}

func parseHour(hhmm string) (int, bool) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, false
	}
	return t.Hour(), true
}

func intPtr(v int) *int { return &v }
