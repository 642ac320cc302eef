package serviceImp

import (
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"cropsense/entities"
	"cropsense/pkg/weather"
	"cropsense/pkg/weather/repository"
	"cropsense/pkg/weather/service"
)

type Svc struct {
	client   weather.Client
	fallback weather.Client
	cache    repository.CacheRepository
	ttl      time.Duration
	log      *zap.Logger
}

func New(client weather.Client, cache repository.CacheRepository, ttl time.Duration, log *zap.Logger) service.WeatherService {
	if log == nil {
		log = zap.NewNop()
	}
	return &Svc{
		client:   client,
		fallback: weather.NewSynthetic(),
		cache:    cache,
		ttl:      ttl,
		log:      log,
	}
}

func (s *Svc) Current(loc entities.GeoLocation) (*entities.Observation, error) {
	key := "current:" + loc.ID()
	if obs := cachedAs[entities.Observation](s, key); obs != nil {
		return obs, nil
	}

	obs, err := s.client.Current(loc)
	if err != nil {
		s.log.Warn("current weather fetch failed, using synthetic estimate",
			zap.String("location", loc.ID()), zap.Error(err))
		return s.fallback.Current(loc)
	}
	s.store(key, obs)
	return obs, nil
}

func (s *Svc) Forecast(loc entities.GeoLocation, days int) (*entities.WeatherForecast, error) {
	if days < 1 {
		days = 1
	}
	if days > 7 {
		days = 7
	}
	// the day count is part of the key; a cached 7-day payload must not
	// answer a 1-day request
	key := fmt.Sprintf("forecast:%d:%s", days, loc.ID())
	if fc := cachedAs[entities.WeatherForecast](s, key); fc != nil {
		return fc, nil
	}

	fc, err := s.client.Forecast(loc, days)
	if err != nil {
		s.log.Warn("forecast fetch failed, using synthetic estimate",
			zap.String("location", loc.ID()), zap.Error(err))
		return s.fallback.Forecast(loc, days)
	}
	s.store(key, fc)
	return fc, nil
}

func (s *Svc) Soil(loc entities.GeoLocation) (map[string]any, error) {
	key := "soil:" + loc.ID()
	if data := cachedAs[map[string]any](s, key); data != nil {
		return *data, nil
	}

	data, err := s.client.Soil(loc)
	if err != nil {
		s.log.Warn("soil data fetch failed, using synthetic estimate",
			zap.String("location", loc.ID()), zap.Error(err))
		return s.fallback.Soil(loc)
	}
	s.store(key, data)
	return data, nil
}

// cachedAs reads a fresh cache row and decodes it; any miss or decode
// problem just forces a refetch.
func cachedAs[T any](s *Svc, key string) *T {
	if s.cache == nil || s.ttl <= 0 {
		return nil
	}
	row, err := s.cache.Get(key, time.Now().Add(-s.ttl))
	if err != nil || row == nil {
		return nil
	}
	var out T
	if err := json.Unmarshal([]byte(row.Payload), &out); err != nil {
		return nil
	}
	return &out
}

func (s *Svc) store(key string, v any) {
	if s.cache == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.cache.Put(key, string(b), time.Now()); err != nil {
		s.log.Warn("weather cache write failed", zap.String("key", key), zap.Error(err))
	}
}
