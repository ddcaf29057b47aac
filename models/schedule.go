package models

import "time"

// Weekday keys used in Schedule.WeeklySlots. The map convention is fixed:
// time.Weekday 0 (Sunday) through 6 (Saturday) map to the lowercase English
// day name.
var dayKeys = [7]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// DayKey returns the WeeklySlots key for a weekday.
func DayKey(wd time.Weekday) string {
	return dayKeys[int(wd)%7]
}

// UnavailableDate is a one-off blackout date on a coach's schedule.
type UnavailableDate struct {
	Date   string `bson:"date" json:"date"` // "2006-01-02"
	Reason string `bson:"reason,omitempty" json:"reason,omitempty"`
}

// Schedule describes a coach's recurring weekly availability plus
// date-specific exceptions. WeeklySlots maps weekday key to the set of
// hour-of-day integers (0-23) the coach works; an empty set is a rest day.
type Schedule struct {
	WeeklySlots      map[string][]int  `bson:"weeklySlots" json:"weeklySlots"`
	UnavailableDates []UnavailableDate `bson:"unavailableDates,omitempty" json:"unavailableDates,omitempty"`
}

// HoursForWeekday returns the configured hour set for a weekday. Absent or
// malformed keys yield an empty set (rest day) rather than an error, since
// upstream documents may be partially populated.
func (s *Schedule) HoursForWeekday(wd time.Weekday) []int {
	if s == nil || s.WeeklySlots == nil {
		return nil
	}
	return s.WeeklySlots[DayKey(wd)]
}

// IsDateBlocked reports whether date appears in the blackout list.
func (s *Schedule) IsDateBlocked(date string) bool {
	if s == nil {
		return false
	}
	for _, u := range s.UnavailableDates {
		if u.Date == date {
			return true
		}
	}
	return false
}

// DefaultSchedule is the schedule assumed for a coach that has never saved
// one: Monday through Saturday 08:00-21:00 slots, Sunday off.
func DefaultSchedule() *Schedule {
	workday := make([]int, 0, 14)
	for h := 8; h <= 21; h++ {
		workday = append(workday, h)
	}
	slots := make(map[string][]int, 7)
	for _, key := range dayKeys {
		if key == "sunday" {
			slots[key] = []int{}
			continue
		}
		day := make([]int, len(workday))
		copy(day, workday)
		slots[key] = day
	}
	return &Schedule{WeeklySlots: slots}
}
