package serviceImp

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropsense/entities"
)

type fakeClient struct {
	obs   *entities.Observation
	err   error
	calls int
}

func (f *fakeClient) Current(loc entities.GeoLocation) (*entities.Observation, error) {
	f.calls++
	return f.obs, f.err
}

func (f *fakeClient) Forecast(loc entities.GeoLocation, days int) (*entities.WeatherForecast, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &entities.WeatherForecast{
		LocationID:   loc.ID(),
		ForecastData: make([]entities.Observation, days*8),
	}, nil
}

func (f *fakeClient) Soil(loc entities.GeoLocation) (map[string]any, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return map[string]any{"source": "provider"}, nil
}

type memCache struct {
	rows map[string]*entities.WeatherCache
}

func newMemCache() *memCache { return &memCache{rows: map[string]*entities.WeatherCache{}} }

func (m *memCache) Get(key string, notBefore time.Time) (*entities.WeatherCache, error) {
	row, ok := m.rows[key]
	if !ok || row.FetchedAt.Before(notBefore) {
		return nil, nil
	}
	return row, nil
}

func (m *memCache) Put(key, payload string, fetchedAt time.Time) error {
	m.rows[key] = &entities.WeatherCache{Key: key, Payload: payload, FetchedAt: fetchedAt}
	return nil
}

var testLoc = entities.GeoLocation{Latitude: 40.7, Longitude: -74.0}

func TestCurrentFromProvider(t *testing.T) {
	client := &fakeClient{obs: &entities.Observation{Temperature: 21.5, Source: "provider"}}
	svc := New(client, newMemCache(), time.Hour, nil)

	obs, err := svc.Current(testLoc)
	require.NoError(t, err)
	assert.Equal(t, "provider", obs.Source)
	assert.Equal(t, 21.5, obs.Temperature)
}

func TestCurrentServedFromCache(t *testing.T) {
	client := &fakeClient{obs: &entities.Observation{Temperature: 21.5, Source: "provider"}}
	svc := New(client, newMemCache(), time.Hour, nil)

	_, err := svc.Current(testLoc)
	require.NoError(t, err)
	obs, err := svc.Current(testLoc)
	require.NoError(t, err)

	assert.Equal(t, 1, client.calls, "second read must come from the cache")
	assert.Equal(t, "provider", obs.Source)
}

func TestCurrentStaleCacheRefetches(t *testing.T) {
	client := &fakeClient{obs: &entities.Observation{Temperature: 21.5, Source: "provider"}}
	cache := newMemCache()
	svc := New(client, cache, time.Hour, nil)

	_, err := svc.Current(testLoc)
	require.NoError(t, err)

	// age the cached row past the TTL
	row := cache.rows["current:"+testLoc.ID()]
	require.NotNil(t, row)
	row.FetchedAt = time.Now().Add(-2 * time.Hour)

	_, err = svc.Current(testLoc)
	require.NoError(t, err)
	assert.Equal(t, 2, client.calls)
}

func TestCurrentFallsBackOnProviderError(t *testing.T) {
	client := &fakeClient{err: errors.New("connection refused")}
	svc := New(client, newMemCache(), time.Hour, nil)

	obs, err := svc.Current(testLoc)
	require.NoError(t, err, "provider outages never propagate")
	assert.Equal(t, "estimated", obs.Source)
}

func TestForecastFallsBackOnProviderError(t *testing.T) {
	client := &fakeClient{err: errors.New("timeout")}
	svc := New(client, newMemCache(), time.Hour, nil)

	fc, err := svc.Forecast(testLoc, 3)
	require.NoError(t, err)
	assert.Len(t, fc.ForecastData, 24)
}

func TestForecastCacheIsKeyedByDayCount(t *testing.T) {
	client := &fakeClient{}
	svc := New(client, newMemCache(), time.Hour, nil)

	fc7, err := svc.Forecast(testLoc, 7)
	require.NoError(t, err)
	require.Len(t, fc7.ForecastData, 56)

	// a cached 7-day payload must not answer a 1-day request
	fc1, err := svc.Forecast(testLoc, 1)
	require.NoError(t, err)
	assert.Len(t, fc1.ForecastData, 8)
	assert.Equal(t, 2, client.calls)

	// each day count is cached independently
	_, err = svc.Forecast(testLoc, 7)
	require.NoError(t, err)
	_, err = svc.Forecast(testLoc, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, client.calls)
}

func TestForecastClampsDays(t *testing.T) {
	client := &fakeClient{err: errors.New("down")}
	svc := New(client, nil, 0, nil)

	fc, err := svc.Forecast(testLoc, 0)
	require.NoError(t, err)
	assert.Len(t, fc.ForecastData, 8, "days below 1 clamp to 1")

	fc, err = svc.Forecast(testLoc, 30)
	require.NoError(t, err)
	assert.Len(t, fc.ForecastData, 56, "days above 7 clamp to 7")
}

func TestSoilFallsBackOnProviderError(t *testing.T) {
	client := &fakeClient{err: errors.New("down")}
	svc := New(client, newMemCache(), time.Hour, nil)

	data, err := svc.Soil(testLoc)
	require.NoError(t, err)
	assert.Equal(t, "estimated", data["source"])
}

func TestNilCacheIsTolerated(t *testing.T) {
	client := &fakeClient{obs: &entities.Observation{Source: "provider"}}
	svc := New(client, nil, time.Hour, nil)

	obs, err := svc.Current(testLoc)
	require.NoError(t, err)
	assert.Equal(t, "provider", obs.Source)

	_, err = svc.Current(testLoc)
	require.NoError(t, err)
	assert.Equal(t, 2, client.calls)
}
