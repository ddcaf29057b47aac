package venue

import (
	"context"
	"testing"

	"courtside/models"
	"courtside/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVenueRepo struct {
	byID    map[string]*models.Venue
	created []*models.Venue
}

func newFakeVenueRepo() *fakeVenueRepo {
	return &fakeVenueRepo{byID: make(map[string]*models.Venue)}
}

func (f *fakeVenueRepo) GetByID(ctx context.Context, id string) (*models.Venue, error) {
	return f.byID[id], nil
}
func (f *fakeVenueRepo) List(ctx context.Context, status *int) ([]models.Venue, error) {
	return nil, nil
}
func (f *fakeVenueRepo) Create(ctx context.Context, venue *models.Venue) error {
	f.created = append(f.created, venue)
	return nil
}
func (f *fakeVenueRepo) Update(ctx context.Context, venue *models.Venue) error { return nil }
func (f *fakeVenueRepo) Delete(ctx context.Context, id string) error           { return nil }

var adminSession = models.Session{UserID: "a1", Role: models.RoleAdmin}

func TestCreate_RequiresAdmin(t *testing.T) {
	svc := &DefaultVenueService{VenueRepo: newFakeVenueRepo()}
	v := &models.Venue{Name: "Court A", OperatingHours: models.OperatingHours{Open: "08:00", Close: "22:00"}}

	_, err := svc.Create(context.Background(), models.Session{UserID: "s1", Role: models.RoleStudent}, v)

	var pErr *utils.PermissionError
	require.ErrorAs(t, err, &pErr)
}

func TestCreate_RejectsOpenAfterClose(t *testing.T) {
	svc := &DefaultVenueService{VenueRepo: newFakeVenueRepo()}

	cases := []models.OperatingHours{
		{Open: "22:00", Close: "08:00"},
		{Open: "10:00", Close: "10:00"},
		{Open: "eight", Close: "22:00"},
	}
	for _, hours := range cases {
		_, err := svc.Create(context.Background(), adminSession, &models.Venue{Name: "Court A", OperatingHours: hours})
		var vErr *utils.ValidationError
		require.ErrorAs(t, err, &vErr, "%+v", hours)
	}
}

func TestCreate_ValidVenuePersisted(t *testing.T) {
	repo := newFakeVenueRepo()
	svc := &DefaultVenueService{VenueRepo: repo}
	v := &models.Venue{Name: "Court A", OperatingHours: models.OperatingHours{Open: "08:00", Close: "22:00"}}

	created, err := svc.Create(context.Background(), adminSession, v)

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.VenueActive, created.Status)
	require.Len(t, repo.created, 1)
}
