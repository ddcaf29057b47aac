package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"courtside/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCoachRepo struct {
	coach  *models.Coach
	getErr error
}

func (f *fakeCoachRepo) GetByID(ctx context.Context, id string) (*models.Coach, error) {
	return f.coach, f.getErr
}
func (f *fakeCoachRepo) GetByUserID(ctx context.Context, userID string) (*models.Coach, error) {
	return f.coach, f.getErr
}
func (f *fakeCoachRepo) List(ctx context.Context, status *int) ([]models.Coach, error) {
	return nil, nil
}
func (f *fakeCoachRepo) Create(ctx context.Context, coach *models.Coach) error { return nil }
func (f *fakeCoachRepo) Update(ctx context.Context, coach *models.Coach) error { return nil }
func (f *fakeCoachRepo) ReplaceSchedule(ctx context.Context, coachID string, schedule *models.Schedule) error {
	return nil
}
func (f *fakeCoachRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeVenueRepo struct {
	venues  []models.Venue
	listErr error
}

func (f *fakeVenueRepo) GetByID(ctx context.Context, id string) (*models.Venue, error) {
	return nil, nil
}
func (f *fakeVenueRepo) List(ctx context.Context, status *int) ([]models.Venue, error) {
	return f.venues, f.listErr
}
func (f *fakeVenueRepo) Create(ctx context.Context, venue *models.Venue) error { return nil }
func (f *fakeVenueRepo) Update(ctx context.Context, venue *models.Venue) error { return nil }
func (f *fakeVenueRepo) Delete(ctx context.Context, id string) error           { return nil }

type fakeBookingRepo struct {
	bookings []models.Booking
	listErr  error
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingRepo) List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	return f.bookings, f.listErr
}
func (f *fakeBookingRepo) Create(ctx context.Context, booking *models.Booking) error { return nil }
func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id string, status models.BookingStatus, extra map[string]any) error {
	return nil
}
func (f *fakeBookingRepo) ExistsPromoted(ctx context.Context, fixedBookingID, date string) (bool, error) {
	return false, nil
}

type fakeFixedBookingRepo struct {
	templates []models.FixedBooking
	listErr   error
}

func (f *fakeFixedBookingRepo) GetByID(ctx context.Context, id string) (*models.FixedBooking, error) {
	return nil, nil
}
func (f *fakeFixedBookingRepo) List(ctx context.Context, filter models.FixedBookingFilter) ([]models.FixedBooking, error) {
	return f.templates, f.listErr
}
func (f *fakeFixedBookingRepo) Create(ctx context.Context, fb *models.FixedBooking) error { return nil }
func (f *fakeFixedBookingRepo) Update(ctx context.Context, fb *models.FixedBooking) error { return nil }
func (f *fakeFixedBookingRepo) SetStatus(ctx context.Context, id string, status int) error {
	return nil
}
func (f *fakeFixedBookingRepo) Delete(ctx context.Context, id string) error { return nil }

func newService(coach *fakeCoachRepo, venue *fakeVenueRepo, booking *fakeBookingRepo, fixed *fakeFixedBookingRepo, now time.Time) *DefaultAvailabilityService {
	return &DefaultAvailabilityService{
		CoachRepo:        coach,
		VenueRepo:        venue,
		BookingRepo:      booking,
		FixedBookingRepo: fixed,
		Now:              func() time.Time { return now },
	}
}

func activeVenue(open, close string) models.Venue {
	return models.Venue{
		ID:             "v1",
		Name:           "Center Court",
		OperatingHours: models.OperatingHours{Open: open, Close: close},
		Status:         models.VenueActive,
	}
}

func slotFor(t *testing.T, day *models.DayAvailability, start string) models.SlotAvailability {
	t.Helper()
	for _, s := range day.Slots {
		if s.StartTime == start {
			return s
		}
	}
	t.Fatalf("no slot starting at %s", start)
	return models.SlotAvailability{}
}

func TestBuildDaySlots_FallbackWindow(t *testing.T) {
	slots := BuildDaySlots(nil)

	require.Len(t, slots, 14)
	assert.Equal(t, "08:00", slots[0].StartTime)
	assert.Equal(t, "09:00", slots[0].EndTime)
	assert.Equal(t, "21:00", slots[len(slots)-1].StartTime)
	assert.Equal(t, "22:00", slots[len(slots)-1].EndTime)
}

func TestBuildDaySlots_SpansVenueExtremes(t *testing.T) {
	venues := []models.Venue{
		activeVenue("09:00", "18:00"),
		{ID: "v2", OperatingHours: models.OperatingHours{Open: "07:00", Close: "12:00"}, Status: models.VenueActive},
		{ID: "v3", OperatingHours: models.OperatingHours{Open: "06:00", Close: "23:00"}, Status: models.VenueInactive},
	}

	slots := BuildDaySlots(venues)

	// Inactive venues do not widen the window.
	assert.Equal(t, "07:00", slots[0].StartTime)
	assert.Equal(t, "17:00", slots[len(slots)-1].StartTime)

	for i := 1; i < len(slots); i++ {
		assert.Equal(t, slots[i-1].EndTime, slots[i].StartTime, "slots must be contiguous")
	}
}

func TestResolve_ExistingBookingBlocksSlot(t *testing.T) {
	// A future Monday.
	coach := &fakeCoachRepo{coach: &models.Coach{ID: "c1"}}
	booking := &fakeBookingRepo{bookings: []models.Booking{
		{CoachID: "c1", Date: "2025-06-09", StartTime: "10:00", Status: models.BookingConfirmed},
	}}
	svc := newService(coach, &fakeVenueRepo{}, booking, &fakeFixedBookingRepo{},
		time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))

	day, err := svc.Resolve(context.Background(), "c1", "2025-06-09")

	require.NoError(t, err)
	assert.False(t, slotFor(t, day, "10:00").Available)
	assert.True(t, slotFor(t, day, "11:00").Available)
	assert.False(t, day.AllUnavailable)
}

func TestResolve_SundayOffBlocksWholeDay(t *testing.T) {
	coach := &fakeCoachRepo{coach: &models.Coach{ID: "c1"}} // default schedule, Sunday empty
	svc := newService(coach, &fakeVenueRepo{}, &fakeBookingRepo{}, &fakeFixedBookingRepo{},
		time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))

	day, err := svc.Resolve(context.Background(), "c1", "2025-06-08") // a Sunday

	require.NoError(t, err)
	assert.True(t, day.AllUnavailable)
	for _, s := range day.Slots {
		assert.False(t, s.Available)
	}
}

func TestResolve_BlackoutDateOverridesWeekday(t *testing.T) {
	sched := models.DefaultSchedule()
	sched.UnavailableDates = []models.UnavailableDate{{Date: "2025-06-09", Reason: "holiday"}}
	coach := &fakeCoachRepo{coach: &models.Coach{ID: "c1", Schedule: sched}}
	svc := newService(coach, &fakeVenueRepo{}, &fakeBookingRepo{}, &fakeFixedBookingRepo{},
		time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))

	day, err := svc.Resolve(context.Background(), "c1", "2025-06-09") // a Monday

	require.NoError(t, err)
	assert.True(t, day.AllUnavailable)
}

func TestResolve_SameDayCutoffBoundary(t *testing.T) {
	// At 14:20 the minimum bookable hour is 15; a slot starting exactly at
	// 15:00 is excluded, 16:00 and later stay eligible.
	coach := &fakeCoachRepo{coach: &models.Coach{ID: "c1"}}
	now := time.Date(2025, 6, 9, 14, 20, 0, 0, time.UTC) // Monday
	svc := newService(coach, &fakeVenueRepo{}, &fakeBookingRepo{}, &fakeFixedBookingRepo{}, now)

	day, err := svc.Resolve(context.Background(), "c1", "2025-06-09")

	require.NoError(t, err)
	assert.False(t, slotFor(t, day, "14:00").Available)
	assert.False(t, slotFor(t, day, "15:00").Available)
	assert.True(t, slotFor(t, day, "16:00").Available)
}

func TestResolve_FixedBookingBlocksSlot(t *testing.T) {
	coach := &fakeCoachRepo{coach: &models.Coach{ID: "c1"}}
	fixed := &fakeFixedBookingRepo{templates: []models.FixedBooking{
		{ID: "fb1", CoachID: "c1", Weekday: 1, StartTime: "09:00", EndTime: "10:00",
			Status: models.FixedBookingActive, ValidUntil: "2025-06-30"},
		{ID: "fb2", CoachID: "c1", Weekday: 1, StartTime: "11:00", EndTime: "12:00",
			Status: models.FixedBookingActive, ValidUntil: "2025-06-01"}, // expired
	}}
	svc := newService(coach, &fakeVenueRepo{}, &fakeBookingRepo{}, fixed,
		time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))

	day, err := svc.Resolve(context.Background(), "c1", "2025-06-09")

	require.NoError(t, err)
	assert.False(t, slotFor(t, day, "09:00").Available)
	assert.True(t, slotFor(t, day, "11:00").Available, "expired template no longer blocks")
}

func TestResolve_DegradesOnReadFailure(t *testing.T) {
	coach := &fakeCoachRepo{coach: &models.Coach{ID: "c1"}}
	booking := &fakeBookingRepo{listErr: errors.New("timeout")}
	svc := newService(coach, &fakeVenueRepo{}, booking, &fakeFixedBookingRepo{},
		time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))

	day, err := svc.Resolve(context.Background(), "c1", "2025-06-09")

	require.NoError(t, err)
	assert.True(t, day.Degraded)
	assert.False(t, day.AllUnavailable)
	for _, s := range day.Slots {
		assert.True(t, s.Available, "degraded day serves every slot open")
	}
}

func TestResolve_EndToEndScenario(t *testing.T) {
	// Coach works Monday 9-11, venue open 08:00-18:00, a confirmed booking
	// holds 10:00. Expect 10 candidate slots with exactly 09:00 and 11:00
	// available.
	sched := &models.Schedule{WeeklySlots: map[string][]int{"monday": {9, 10, 11}}}
	coach := &fakeCoachRepo{coach: &models.Coach{ID: "c1", Schedule: sched}}
	venue := &fakeVenueRepo{venues: []models.Venue{activeVenue("08:00", "18:00")}}
	booking := &fakeBookingRepo{bookings: []models.Booking{
		{CoachID: "c1", Date: "2025-06-09", StartTime: "10:00", Status: models.BookingConfirmed},
	}}
	svc := newService(coach, venue, booking, &fakeFixedBookingRepo{},
		time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))

	day, err := svc.Resolve(context.Background(), "c1", "2025-06-09")

	require.NoError(t, err)
	require.Len(t, day.Slots, 10)
	assert.True(t, slotFor(t, day, "09:00").Available)
	assert.False(t, slotFor(t, day, "10:00").Available)
	assert.True(t, slotFor(t, day, "11:00").Available)
	assert.False(t, slotFor(t, day, "08:00").Available)
	assert.False(t, day.AllUnavailable)
}

func TestResolve_RejectsBadDate(t *testing.T) {
	svc := newService(&fakeCoachRepo{}, &fakeVenueRepo{}, &fakeBookingRepo{}, &fakeFixedBookingRepo{}, time.Now())

	_, err := svc.Resolve(context.Background(), "c1", "06/09/2025")

	assert.Error(t, err)
}

func TestVenueAvailability_Reasons(t *testing.T) {
	venue := &fakeVenueRepo{venues: []models.Venue{
		{ID: "early", OperatingHours: models.OperatingHours{Open: "08:00", Close: "12:00"}, Status: models.VenueActive},
		{ID: "taken", OperatingHours: models.OperatingHours{Open: "08:00", Close: "22:00"}, Status: models.VenueActive},
		{ID: "open", OperatingHours: models.OperatingHours{Open: "08:00", Close: "22:00"}, Status: models.VenueActive},
	}}
	booking := &fakeBookingRepo{bookings: []models.Booking{
		{VenueID: "taken", Date: "2025-06-09", StartTime: "14:00", Status: models.BookingPending},
	}}
	svc := newService(&fakeCoachRepo{}, venue, booking, &fakeFixedBookingRepo{}, time.Now())

	verdicts, err := svc.VenueAvailability(context.Background(), "2025-06-09", "14:00", "15:00")

	require.NoError(t, err)
	require.Len(t, verdicts, 3)
	byID := make(map[string]models.VenueVerdict)
	for _, v := range verdicts {
		byID[v.ID] = v
	}
	assert.False(t, byID["early"].Available)
	assert.Equal(t, models.VenueReasonOutsideHours, byID["early"].UnavailableReason)
	assert.False(t, byID["taken"].Available)
	assert.Equal(t, models.VenueReasonAlreadyBooked, byID["taken"].UnavailableReason)
	assert.True(t, byID["open"].Available)
	assert.Empty(t, byID["open"].UnavailableReason)
}
