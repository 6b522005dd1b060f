package assignment

import (
	"context"
	"math/rand"
	"testing"

	"github.com/shenikar/fortiq_portal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sink struct {
	items []models.Notification
}

func (s *sink) notify(_ context.Context, n models.Notification) {
	s.items = append(s.items, n)
}

func intPtr(v int) *int { return &v }

func newTestForm(sites ...models.Site) (*Form, *sink) {
	s := &sink{}
	f := NewForm(s.notify)
	f.Reset(context.Background(), sites)
	return f, s
}

func TestToggleGuard_RespectsRequiredCount(t *testing.T) {
	f, _ := newTestForm(models.Site{ID: 1, TotalGuardsRequested: 2})

	res, err := f.ToggleGuard(1, 101)
	require.NoError(t, err)
	assert.Equal(t, GuardAdded, res)
	res, _ = f.ToggleGuard(1, 102)
	assert.Equal(t, GuardAdded, res)
	res, _ = f.ToggleGuard(1, 103)
	assert.Equal(t, GuardRejected, res)

	d, ok := f.Draft(1)
	require.True(t, ok)
	assert.ElementsMatch(t, []int{101, 102}, d.GuardIDs)
}

func TestToggleGuard_TwiceRestoresSelection(t *testing.T) {
	f, _ := newTestForm(models.Site{ID: 1, TotalGuardsRequested: 3})
	_, _ = f.ToggleGuard(1, 101)
	before, _ := f.Draft(1)

	res, _ := f.ToggleGuard(1, 102)
	assert.Equal(t, GuardAdded, res)
	res, _ = f.ToggleGuard(1, 102)
	assert.Equal(t, GuardRemoved, res)

	after, _ := f.Draft(1)
	assert.ElementsMatch(t, before.GuardIDs, after.GuardIDs)
}

func TestToggleGuard_RandomSequencesNeverExceedLimit(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 200; round++ {
		required := rng.Intn(5)
		f, _ := newTestForm(models.Site{ID: 1, TotalGuardsRequested: required})
		for step := 0; step < 30; step++ {
			_, err := f.ToggleGuard(1, 100+rng.Intn(8))
			require.NoError(t, err)
			d, _ := f.Draft(1)
			require.LessOrEqual(t, len(d.GuardIDs), required)

			seen := map[int]bool{}
			for _, id := range d.GuardIDs {
				require.False(t, seen[id], "guard %d selected twice", id)
				seen[id] = true
			}
		}
	}
}

func TestToggleGuard_UnknownSite(t *testing.T) {
	f, _ := newTestForm()

	_, err := f.ToggleGuard(9, 1)

	assert.ErrorIs(t, err, ErrUnknownSite)
}

func TestSetRequired_TruncatesAndWarns(t *testing.T) {
	f, s := newTestForm(models.Site{ID: 1, TotalGuardsRequested: 3})
	ctx := context.Background()
	_, _ = f.ToggleGuard(1, 101)
	_, _ = f.ToggleGuard(1, 102)
	_, _ = f.ToggleGuard(1, 103)

	require.NoError(t, f.SetRequired(ctx, 1, 1))

	d, _ := f.Draft(1)
	assert.Equal(t, []int{101}, d.GuardIDs)
	require.Len(t, s.items, 1)
	assert.Equal(t, models.NotificationWarning, s.items[0].Variant)
	assert.Equal(t, "Guard Limit Reached", s.items[0].Title)
	assert.Equal(t, "You cannot assign more than 1 guard(s) to this site.", s.items[0].Description)
}

func TestSetRequired_NoWarningWithinLimit(t *testing.T) {
	f, s := newTestForm(models.Site{ID: 1, TotalGuardsRequested: 3})
	_, _ = f.ToggleGuard(1, 101)

	require.NoError(t, f.SetRequired(context.Background(), 1, 2))

	assert.Empty(t, s.items)
}

func TestReset_KeepsDraftsOfRemainingSites(t *testing.T) {
	f, s := newTestForm(
		models.Site{ID: 1, TotalGuardsRequested: 2, GeofencePerimeter: intPtr(150)},
		models.Site{ID: 2, TotalGuardsRequested: 1},
	)
	require.NoError(t, f.SelectOfficer(1, 7))
	_, _ = f.ToggleGuard(1, 101)
	_, _ = f.ToggleGuard(1, 102)

	// Объект 2 ушел из списка, у объекта 1 уменьшился лимит
	f.Reset(context.Background(), []models.Site{{ID: 1, TotalGuardsRequested: 1}, {ID: 3, TotalGuardsRequested: 1}})

	d1, ok := f.Draft(1)
	require.True(t, ok)
	assert.Equal(t, 7, d1.OfficerID)
	assert.Equal(t, []int{101}, d1.GuardIDs)
	assert.Equal(t, "150", d1.GeofencePerimeter)
	_, ok = f.Draft(2)
	assert.False(t, ok)
	_, ok = f.Draft(3)
	assert.True(t, ok)
	require.Len(t, s.items, 1)
	assert.Equal(t, models.NotificationWarning, s.items[0].Variant)
	assert.Equal(t, "Guard Limit Reached", s.items[0].Title)
}

func TestReset_DefaultsGeofenceFromSite(t *testing.T) {
	f, _ := newTestForm(models.Site{ID: 1, GeofencePerimeter: intPtr(300)}, models.Site{ID: 2})

	d1, _ := f.Draft(1)
	d2, _ := f.Draft(2)

	assert.Equal(t, "300", d1.GeofencePerimeter)
	assert.Empty(t, d2.GeofencePerimeter)
	assert.Equal(t, []int{}, d2.GuardIDs)
}

func TestRequest_Validation(t *testing.T) {
	f, _ := newTestForm(models.Site{ID: 1, TotalGuardsRequested: 2})

	_, err := f.Request(1)
	assert.ErrorIs(t, err, ErrNoOfficer)
	d, _ := f.Draft(1)
	assert.False(t, d.CanSubmit)

	require.NoError(t, f.SelectOfficer(1, 7))
	_, err = f.Request(1)
	assert.ErrorIs(t, err, ErrNoGuards)

	_, _ = f.ToggleGuard(1, 101)
	require.NoError(t, f.SetGeofence(1, "ten"))
	_, err = f.Request(1)
	assert.ErrorIs(t, err, ErrInvalidGeofence)

	require.NoError(t, f.SetGeofence(1, "-5"))
	_, err = f.Request(1)
	assert.ErrorIs(t, err, ErrInvalidGeofence)

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestRequest_Success(t *testing.T) {
	f, _ := newTestForm(models.Site{ID: 1, TotalGuardsRequested: 2})
	require.NoError(t, f.SelectOfficer(1, 7))
	_, _ = f.ToggleGuard(1, 101)
	_, _ = f.ToggleGuard(1, 102)
	require.NoError(t, f.SetGeofence(1, " 250 "))

	req, err := f.Request(1)

	require.NoError(t, err)
	assert.Equal(t, 7, req.PatrolOfficerID)
	assert.Equal(t, []int{101, 102}, req.GuardIDs)
	require.NotNil(t, req.GeofencePerimeter)
	assert.Equal(t, 250, *req.GeofencePerimeter)
	d, _ := f.Draft(1)
	assert.True(t, d.CanSubmit)
}

func TestRequest_WithoutGeofence(t *testing.T) {
	f, _ := newTestForm(models.Site{ID: 1, TotalGuardsRequested: 1})
	require.NoError(t, f.SelectOfficer(1, 7))
	_, _ = f.ToggleGuard(1, 101)

	req, err := f.Request(1)

	require.NoError(t, err)
	assert.Nil(t, req.GeofencePerimeter)
}

func TestDiscard(t *testing.T) {
	f, _ := newTestForm(models.Site{ID: 1, TotalGuardsRequested: 1})

	f.Discard(1)

	_, ok := f.Draft(1)
	assert.False(t, ok)
	assert.Empty(t, f.Drafts())
}
