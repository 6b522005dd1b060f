package cascade

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shenikar/fortiq_portal/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

var citiesByRegion = map[string][]models.City{
	"1": {{ID: 10, Name: "Northville"}, {ID: 11, Name: "Frostburg"}},
	"2": {{ID: 20, Name: "Southport"}},
}

func regionsStub(_ context.Context, countryID int) ([]models.Region, error) {
	return []models.Region{{ID: 1, Name: "North"}, {ID: 2, Name: "South"}}, nil
}

func TestSelectRegion_LoadsCitiesOfRegion(t *testing.T) {
	var gotCountry int
	var gotRegion string
	c := New(91, regionsStub, func(_ context.Context, countryID int, regionID string) ([]models.City, error) {
		gotCountry, gotRegion = countryID, regionID
		return citiesByRegion[regionID], nil
	}, quietLogger())
	ctx := context.Background()
	require.NoError(t, c.LoadRegions(ctx))

	c.SelectRegion(ctx, "1")

	snap := c.Snapshot()
	assert.Equal(t, 91, gotCountry)
	assert.Equal(t, "1", gotRegion)
	assert.Len(t, snap.Regions, 2)
	assert.Equal(t, citiesByRegion["1"], snap.Cities)
	assert.Equal(t, "1", snap.Region)
	assert.Equal(t, models.FilterAll, snap.City)
	assert.False(t, snap.CityDisabled)
}

func TestSelectRegion_AllClearsCitiesWithoutFetch(t *testing.T) {
	calls := 0
	c := New(91, regionsStub, func(_ context.Context, _ int, regionID string) ([]models.City, error) {
		calls++
		return citiesByRegion[regionID], nil
	}, quietLogger())
	ctx := context.Background()
	c.SelectRegion(ctx, "1")
	c.SelectCity("10")

	c.SelectRegion(ctx, models.FilterAll)

	snap := c.Snapshot()
	assert.Equal(t, 1, calls)
	assert.Empty(t, snap.Cities)
	assert.Equal(t, models.FilterAll, snap.City)
	assert.True(t, snap.CityDisabled)
	assert.Equal(t, map[string]string{"region": models.FilterAll, "city": models.FilterAll}, c.Filters())
}

func TestSelectRegion_ResetsCity(t *testing.T) {
	c := New(91, regionsStub, func(_ context.Context, _ int, regionID string) ([]models.City, error) {
		return citiesByRegion[regionID], nil
	}, quietLogger())
	ctx := context.Background()
	c.SelectRegion(ctx, "1")
	c.SelectCity("10")
	require.Equal(t, "10", c.Filters()["city"])

	c.SelectRegion(ctx, "2")

	assert.Equal(t, map[string]string{"region": "2", "city": models.FilterAll}, c.Filters())
	assert.Equal(t, citiesByRegion["2"], c.Snapshot().Cities)
}

func TestSelectRegion_DisablesCityWhileLoading(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	c := New(91, regionsStub, func(_ context.Context, _ int, regionID string) ([]models.City, error) {
		close(started)
		<-release
		return citiesByRegion[regionID], nil
	}, quietLogger())

	done := make(chan struct{})
	go func() {
		c.SelectRegion(context.Background(), "1")
		close(done)
	}()
	<-started

	snap := c.Snapshot()
	assert.True(t, snap.CitiesLoading)
	assert.True(t, snap.CityDisabled)
	assert.Equal(t, "Loading cities...", snap.CityPlaceholder)

	close(release)
	<-done
	assert.False(t, c.Snapshot().CitiesLoading)
}

func TestSelectRegion_FailureClearsCities(t *testing.T) {
	fail := false
	c := New(91, regionsStub, func(_ context.Context, _ int, regionID string) ([]models.City, error) {
		if fail {
			return nil, errors.New("boom")
		}
		return citiesByRegion[regionID], nil
	}, quietLogger())
	ctx := context.Background()
	c.SelectRegion(ctx, "1")

	fail = true
	c.SelectRegion(ctx, "2")

	snap := c.Snapshot()
	assert.Empty(t, snap.Cities)
	assert.False(t, snap.CitiesLoading)
}

func TestSelectRegion_LatestSelectionWins(t *testing.T) {
	slowStarted := make(chan struct{})
	releaseSlow := make(chan struct{})
	c := New(91, regionsStub, func(_ context.Context, _ int, regionID string) ([]models.City, error) {
		if regionID == "1" {
			close(slowStarted)
			<-releaseSlow
		}
		return citiesByRegion[regionID], nil
	}, quietLogger())
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.SelectRegion(ctx, "1")
	}()
	<-slowStarted
	c.SelectRegion(ctx, "2")
	close(releaseSlow)
	wg.Wait()

	snap := c.Snapshot()
	assert.Equal(t, "2", snap.Region)
	assert.Equal(t, citiesByRegion["2"], snap.Cities)
}

func TestLoadRegions_FailureLeavesEmptyList(t *testing.T) {
	c := New(91, func(context.Context, int) ([]models.Region, error) {
		return nil, errors.New("boom")
	}, nil, quietLogger())

	err := c.LoadRegions(context.Background())

	assert.Error(t, err)
	assert.Empty(t, c.Snapshot().Regions)
}

func TestLoadRegions_RetryAfterFailure(t *testing.T) {
	calls := 0
	c := New(91, func(context.Context, int) ([]models.Region, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("boom")
		}
		return []models.Region{{ID: 1, Name: "Punjab"}}, nil
	}, nil, quietLogger())
	ctx := context.Background()

	require.Error(t, c.LoadRegions(ctx))
	require.NoError(t, c.LoadRegions(ctx))

	assert.Equal(t, []models.Region{{ID: 1, Name: "Punjab"}}, c.Regions())
	assert.Equal(t, 2, calls)
}

func TestNoCountry_SkipsFetches(t *testing.T) {
	c := New(0, func(context.Context, int) ([]models.Region, error) {
		t.Fatal("regions must not be fetched without a country")
		return nil, nil
	}, func(context.Context, int, string) ([]models.City, error) {
		t.Fatal("cities must not be fetched without a country")
		return nil, nil
	}, quietLogger())
	ctx := context.Background()

	assert.NoError(t, c.LoadRegions(ctx))
	c.SelectRegion(ctx, "1")

	assert.Equal(t, "1", c.Filters()["region"])
	assert.Empty(t, c.Snapshot().Cities)
}
