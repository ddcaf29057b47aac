package schedule

import (
	"context"
	"fmt"
	"sort"
	"time"

	coachRepo "courtside/database/repository/coach"
	"courtside/models"
	"courtside/utils"
)

// ScheduleService answers willingness questions about a coach's weekly
// schedule and owns full-replace saves of it.
type ScheduleService interface {
	// GetCoachSchedule returns the coach's schedule, substituting the default
	// when the coach has never saved one.
	GetCoachSchedule(ctx context.Context, coachID string) (*models.Schedule, error)
	// ReplaceSchedule overwrites the coach's schedule in full. Only the
	// owning coach or an admin may save.
	ReplaceSchedule(ctx context.Context, session models.Session, coachID string, sched *models.Schedule) error
}

// DefaultScheduleService implements ScheduleService.
type DefaultScheduleService struct {
	CoachRepo coachRepo.CoachRepository
}

func (s *DefaultScheduleService) GetCoachSchedule(ctx context.Context, coachID string) (*models.Schedule, error) {
	coach, err := s.CoachRepo.GetByID(ctx, coachID)
	if err != nil {
		return nil, utils.NewCollaboratorError("coach lookup", err)
	}
	if coach == nil {
		return nil, utils.NewValidationError("coachId", fmt.Sprintf("coach %s not found", coachID))
	}
	return EnsureSchedule(coach.Schedule), nil
}

func (s *DefaultScheduleService) ReplaceSchedule(ctx context.Context, session models.Session, coachID string, sched *models.Schedule) error {
	if !session.ActsAsCoach(coachID) {
		return utils.NewPermissionError("only the coach or an admin may edit this schedule")
	}
	if err := ValidateSchedule(sched); err != nil {
		return err
	}
	normalize(sched)

	if err := s.CoachRepo.ReplaceSchedule(ctx, coachID, sched); err != nil {
		return utils.NewCollaboratorError("schedule save", err)
	}
	return nil
}

// EnsureSchedule returns sched, or the default schedule when the coach has
// none persisted.
func EnsureSchedule(sched *models.Schedule) *models.Schedule {
	if sched == nil || sched.WeeklySlots == nil {
		return models.DefaultSchedule()
	}
	return sched
}

// ValidateSchedule checks hour ranges and blackout-date uniqueness.
func ValidateSchedule(sched *models.Schedule) error {
	if sched == nil {
		return utils.NewValidationError("schedule", "schedule is required")
	}
	for day, hours := range sched.WeeklySlots {
		for _, h := range hours {
			if h < 0 || h > 23 {
				return utils.NewValidationError("weeklySlots", fmt.Sprintf("%s: hour %d out of range", day, h))
			}
		}
	}
	seen := make(map[string]bool, len(sched.UnavailableDates))
	for _, u := range sched.UnavailableDates {
		if u.Date == "" {
			return utils.NewValidationError("unavailableDates", "date is required")
		}
		if seen[u.Date] {
			return utils.NewValidationError("unavailableDates", fmt.Sprintf("duplicate date %s", u.Date))
		}
		seen[u.Date] = true
	}
	return nil
}

// normalize sorts hour sets and guarantees all seven weekday keys exist so
// stored documents always have the full shape.
func normalize(sched *models.Schedule) {
	if sched.WeeklySlots == nil {
		sched.WeeklySlots = make(map[string][]int, 7)
	}
	for wd := 0; wd < 7; wd++ {
		key := models.DayKey(time.Weekday(wd))
		hours := sched.WeeklySlots[key]
		if hours == nil {
			hours = []int{}
		}
		sort.Ints(hours)
		sched.WeeklySlots[key] = dedupHours(hours)
	}
}

func dedupHours(hours []int) []int {
	out := hours[:0]
	for i, h := range hours {
		if i == 0 || h != hours[i-1] {
			out = append(out, h)
		}
	}
	return out
}
