package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"courtside/models"
	"courtside/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCoachRepo struct {
	coach    *models.Coach
	getErr   error
	replaced *models.Schedule
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
	f.replaced = schedule
	return nil
}
func (f *fakeCoachRepo) Delete(ctx context.Context, id string) error { return nil }

func TestDefaultScheduleShape(t *testing.T) {
	sched := models.DefaultSchedule()

	for wd := time.Monday; wd <= time.Saturday; wd++ {
		hours := sched.HoursForWeekday(wd)
		require.Len(t, hours, 14, "weekday %s", wd)
		assert.Equal(t, 8, hours[0])
		assert.Equal(t, 21, hours[len(hours)-1])
	}
	assert.Empty(t, sched.HoursForWeekday(time.Sunday))
}

func TestGetCoachSchedule_SubstitutesDefault(t *testing.T) {
	repo := &fakeCoachRepo{coach: &models.Coach{ID: "c1"}}
	svc := &DefaultScheduleService{CoachRepo: repo}

	sched, err := svc.GetCoachSchedule(context.Background(), "c1")

	require.NoError(t, err)
	assert.Len(t, sched.HoursForWeekday(time.Monday), 14)
	assert.Empty(t, sched.HoursForWeekday(time.Sunday))
}

func TestGetCoachSchedule_KeepsPersisted(t *testing.T) {
	persisted := &models.Schedule{WeeklySlots: map[string][]int{"monday": {9, 10}}}
	repo := &fakeCoachRepo{coach: &models.Coach{ID: "c1", Schedule: persisted}}
	svc := &DefaultScheduleService{CoachRepo: repo}

	sched, err := svc.GetCoachSchedule(context.Background(), "c1")

	require.NoError(t, err)
	assert.Equal(t, []int{9, 10}, sched.HoursForWeekday(time.Monday))
}

func TestGetCoachSchedule_UnknownCoach(t *testing.T) {
	svc := &DefaultScheduleService{CoachRepo: &fakeCoachRepo{}}

	_, err := svc.GetCoachSchedule(context.Background(), "nope")

	var vErr *utils.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestReplaceSchedule_PermissionAndValidation(t *testing.T) {
	repo := &fakeCoachRepo{coach: &models.Coach{ID: "c1"}}
	svc := &DefaultScheduleService{CoachRepo: repo}
	ctx := context.Background()
	sched := &models.Schedule{WeeklySlots: map[string][]int{"monday": {9}}}

	t.Run("student may not save", func(t *testing.T) {
		err := svc.ReplaceSchedule(ctx, models.Session{UserID: "u1", Role: models.RoleStudent}, "c1", sched)
		var pErr *utils.PermissionError
		require.ErrorAs(t, err, &pErr)
	})

	t.Run("other coach may not save", func(t *testing.T) {
		err := svc.ReplaceSchedule(ctx, models.Session{UserID: "u2", Role: models.RoleCoach, CoachID: "c2"}, "c1", sched)
		var pErr *utils.PermissionError
		require.ErrorAs(t, err, &pErr)
	})

	t.Run("hour out of range rejected", func(t *testing.T) {
		bad := &models.Schedule{WeeklySlots: map[string][]int{"monday": {24}}}
		err := svc.ReplaceSchedule(ctx, models.Session{Role: models.RoleAdmin}, "c1", bad)
		var vErr *utils.ValidationError
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("duplicate blackout date rejected", func(t *testing.T) {
		bad := &models.Schedule{
			WeeklySlots: map[string][]int{"monday": {9}},
			UnavailableDates: []models.UnavailableDate{
				{Date: "2025-03-01"}, {Date: "2025-03-01"},
			},
		}
		err := svc.ReplaceSchedule(ctx, models.Session{Role: models.RoleAdmin}, "c1", bad)
		var vErr *utils.ValidationError
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("owning coach saves normalized", func(t *testing.T) {
		in := &models.Schedule{WeeklySlots: map[string][]int{"monday": {10, 9, 9}}}
		err := svc.ReplaceSchedule(ctx, models.Session{UserID: "u1", Role: models.RoleCoach, CoachID: "c1"}, "c1", in)
		require.NoError(t, err)
		require.NotNil(t, repo.replaced)
		assert.Equal(t, []int{9, 10}, repo.replaced.WeeklySlots["monday"])
		assert.Len(t, repo.replaced.WeeklySlots, 7, "all weekday keys present after save")
	})
}

func TestIsDateBlocked(t *testing.T) {
	sched := &models.Schedule{
		UnavailableDates: []models.UnavailableDate{{Date: "2025-05-01", Reason: "holiday"}},
	}
	assert.True(t, sched.IsDateBlocked("2025-05-01"))
	assert.False(t, sched.IsDateBlocked("2025-05-02"))
}

func TestGetCoachSchedule_RepoFailure(t *testing.T) {
	repo := &fakeCoachRepo{getErr: errors.New("timeout")}
	svc := &DefaultScheduleService{CoachRepo: repo}

	_, err := svc.GetCoachSchedule(context.Background(), "c1")

	var uErr *utils.CollaboratorUnavailableError
	require.ErrorAs(t, err, &uErr)
}
