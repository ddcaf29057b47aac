package fixedbooking

import (
	"context"
	"testing"
	"time"

	"courtside/models"
	"courtside/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFixedBookingRepo struct {
	byID      map[string]*models.FixedBooking
	templates []models.FixedBooking
	created   []*models.FixedBooking
	statusSet map[string]int
	deleted   []string
}

func newFakeFixedBookingRepo() *fakeFixedBookingRepo {
	return &fakeFixedBookingRepo{
		byID:      make(map[string]*models.FixedBooking),
		statusSet: make(map[string]int),
	}
}

func (f *fakeFixedBookingRepo) GetByID(ctx context.Context, id string) (*models.FixedBooking, error) {
	return f.byID[id], nil
}
func (f *fakeFixedBookingRepo) List(ctx context.Context, filter models.FixedBookingFilter) ([]models.FixedBooking, error) {
	return f.templates, nil
}
func (f *fakeFixedBookingRepo) Create(ctx context.Context, fb *models.FixedBooking) error {
	f.created = append(f.created, fb)
	return nil
}
func (f *fakeFixedBookingRepo) Update(ctx context.Context, fb *models.FixedBooking) error {
	return nil
}
func (f *fakeFixedBookingRepo) SetStatus(ctx context.Context, id string, status int) error {
	f.statusSet[id] = status
	return nil
}
func (f *fakeFixedBookingRepo) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeBookingRepo struct {
	bookings []models.Booking
	promoted map[string]bool
	created  []*models.Booking
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingRepo) List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	return f.bookings, nil
}
func (f *fakeBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	f.created = append(f.created, booking)
	return nil
}
func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id string, status models.BookingStatus, extra map[string]any) error {
	return nil
}
func (f *fakeBookingRepo) ExistsPromoted(ctx context.Context, fixedBookingID, date string) (bool, error) {
	return f.promoted[fixedBookingID+"|"+date], nil
}

func TestMaterialize_RespectsValidUntil(t *testing.T) {
	// Window starts Wednesday 2025-02-05. Wednesdays in the next 30 days up
	// to and including 2025-03-01: 02-05, 02-12, 02-19, 02-26. The template
	// expires before 03-05.
	templates := []models.FixedBooking{{
		ID: "fb1", CoachID: "c1", StudentID: "s1", VenueID: "v1",
		Weekday: 3, StartTime: "10:00", EndTime: "11:00",
		ValidUntil: "2025-03-01", Status: models.FixedBookingActive,
	}}
	from := time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC)

	occ := Materialize(templates, from, 30)

	require.Len(t, occ, 4)
	dates := make([]string, len(occ))
	for i, o := range occ {
		dates[i] = o.Date
		assert.True(t, o.IsFixed)
		assert.Equal(t, models.BookingConfirmed, o.Status)
		assert.Equal(t, "fb1", o.FixedBookingID)
	}
	assert.Equal(t, []string{"2025-02-05", "2025-02-12", "2025-02-19", "2025-02-26"}, dates)
}

func TestMaterialize_SkipsPausedAndWrongWeekday(t *testing.T) {
	templates := []models.FixedBooking{
		{ID: "paused", Weekday: 3, StartTime: "10:00", Status: models.FixedBookingPaused},
		{ID: "tuesday", Weekday: 2, StartTime: "10:00", Status: models.FixedBookingActive},
	}
	from := time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC) // Wednesday

	occ := Materialize(templates, from, 7)

	require.Len(t, occ, 1)
	assert.Equal(t, "tuesday", occ[0].FixedBookingID)
	assert.Equal(t, "2025-02-11", occ[0].Date)
}

func TestOccurrenceID_Deterministic(t *testing.T) {
	a := OccurrenceID("fb1", "2025-02-05")
	b := OccurrenceID("fb1", "2025-02-05")
	c := OccurrenceID("fb1", "2025-02-12")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestMergeCalendar_DropsPromotedAndSorts(t *testing.T) {
	occurrences := []models.BookingOccurrence{
		{ID: "o2", FixedBookingID: "fb1", Date: "2025-02-12", StartTime: "10:00", IsFixed: true},
		{ID: "o1", FixedBookingID: "fb1", Date: "2025-02-05", StartTime: "10:00", IsFixed: true},
	}
	bookings := []models.Booking{
		// Already promoted for 02-05: its synthetic twin must be dropped.
		{ID: "b1", FixedBookingID: "fb1", Date: "2025-02-05", StartTime: "10:00", Status: models.BookingConfirmed},
		{ID: "b2", Date: "2025-02-05", StartTime: "09:00", Status: models.BookingPending},
	}

	merged := MergeCalendar(occurrences, bookings)

	require.Len(t, merged, 3)
	assert.Equal(t, "b2", merged[0].ID, "earliest start first")
	assert.Equal(t, "b1", merged[1].ID)
	assert.Equal(t, "o2", merged[2].ID)
}

func TestCreate_Validation(t *testing.T) {
	svc := &DefaultFixedBookingService{FixedBookingRepo: newFakeFixedBookingRepo(), BookingRepo: &fakeBookingRepo{}}
	admin := models.Session{UserID: "a1", Role: models.RoleAdmin}
	ctx := context.Background()

	cases := []struct {
		name string
		fb   models.FixedBooking
	}{
		{"missing coach", models.FixedBooking{StudentID: "s1", VenueID: "v1", Weekday: 1, StartTime: "10:00", EndTime: "11:00"}},
		{"weekday out of range", models.FixedBooking{StudentID: "s1", CoachID: "c1", VenueID: "v1", Weekday: 7, StartTime: "10:00", EndTime: "11:00"}},
		{"end before start", models.FixedBooking{StudentID: "s1", CoachID: "c1", VenueID: "v1", Weekday: 1, StartTime: "11:00", EndTime: "10:00"}},
		{"bad validUntil", models.FixedBooking{StudentID: "s1", CoachID: "c1", VenueID: "v1", Weekday: 1, StartTime: "10:00", EndTime: "11:00", ValidUntil: "03/01/2025"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fb := tc.fb
			_, err := svc.Create(ctx, admin, &fb)
			var vErr *utils.ValidationError
			require.ErrorAs(t, err, &vErr)
		})
	}
}

func TestCreate_OwnershipEnforced(t *testing.T) {
	svc := &DefaultFixedBookingService{FixedBookingRepo: newFakeFixedBookingRepo(), BookingRepo: &fakeBookingRepo{}}
	fb := &models.FixedBooking{StudentID: "s1", CoachID: "c1", VenueID: "v1", Weekday: 1, StartTime: "10:00", EndTime: "11:00"}

	_, err := svc.Create(context.Background(), models.Session{UserID: "someone-else", Role: models.RoleStudent}, fb)

	var pErr *utils.PermissionError
	require.ErrorAs(t, err, &pErr)
}

func TestCreate_SetsDefaults(t *testing.T) {
	repo := newFakeFixedBookingRepo()
	svc := &DefaultFixedBookingService{FixedBookingRepo: repo, BookingRepo: &fakeBookingRepo{}}
	fb := &models.FixedBooking{StudentID: "s1", CoachID: "c1", VenueID: "v1", Weekday: 1, StartTime: "10:00", EndTime: "11:00"}

	out, err := svc.Create(context.Background(), models.Session{UserID: "s1", Role: models.RoleStudent}, fb)

	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, models.FixedBookingActive, out.Status)
	require.Len(t, repo.created, 1)
}

func TestSetStatus_RejectsUnknownValue(t *testing.T) {
	repo := newFakeFixedBookingRepo()
	repo.byID["fb1"] = &models.FixedBooking{ID: "fb1", StudentID: "s1"}
	svc := &DefaultFixedBookingService{FixedBookingRepo: repo, BookingRepo: &fakeBookingRepo{}}

	err := svc.SetStatus(context.Background(), models.Session{UserID: "s1", Role: models.RoleStudent}, "fb1", 2)

	var vErr *utils.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestPromoteDue_SkipsAlreadyPromoted(t *testing.T) {
	now := time.Date(2025, 2, 5, 6, 0, 0, 0, time.UTC) // Wednesday
	fixedRepo := newFakeFixedBookingRepo()
	fixedRepo.templates = []models.FixedBooking{
		{ID: "fb1", CoachID: "c1", StudentID: "s1", VenueID: "v1", Weekday: 3,
			StartTime: "10:00", EndTime: "11:00", Status: models.FixedBookingActive},
		{ID: "fb2", CoachID: "c1", StudentID: "s2", VenueID: "v1", Weekday: 3,
			StartTime: "11:00", EndTime: "12:00", Status: models.FixedBookingActive},
	}
	bookingRepo := &fakeBookingRepo{promoted: map[string]bool{"fb1|2025-02-05": true}}
	svc := &DefaultFixedBookingService{
		FixedBookingRepo: fixedRepo,
		BookingRepo:      bookingRepo,
		Now:              func() time.Time { return now },
	}

	created, err := svc.PromoteDue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, created)
	require.Len(t, bookingRepo.created, 1)
	b := bookingRepo.created[0]
	assert.Equal(t, "fb2", b.FixedBookingID)
	assert.Equal(t, "2025-02-05", b.Date)
	assert.Equal(t, models.BookingConfirmed, b.Status)
}

func TestCalendar_MergedView(t *testing.T) {
	now := time.Date(2025, 2, 5, 6, 0, 0, 0, time.UTC)
	fixedRepo := newFakeFixedBookingRepo()
	fixedRepo.templates = []models.FixedBooking{
		{ID: "fb1", CoachID: "c1", StudentID: "s1", VenueID: "v1", Weekday: 3,
			StartTime: "10:00", EndTime: "11:00", Status: models.FixedBookingActive},
	}
	bookingRepo := &fakeBookingRepo{bookings: []models.Booking{
		{ID: "b1", CoachID: "c1", FixedBookingID: "fb1", Date: "2025-02-05",
			StartTime: "10:00", Status: models.BookingConfirmed},
	}}
	svc := &DefaultFixedBookingService{
		FixedBookingRepo: fixedRepo,
		BookingRepo:      bookingRepo,
		Now:              func() time.Time { return now },
	}

	merged, err := svc.Calendar(context.Background(), "c1")

	require.NoError(t, err)
	// 30-day window covers five Wednesdays; the first occurrence is replaced
	// by its promoted booking.
	require.Len(t, merged, 5)
	assert.Equal(t, "b1", merged[0].ID)
	for _, occ := range merged[1:] {
		assert.True(t, occ.IsFixed)
	}
}
