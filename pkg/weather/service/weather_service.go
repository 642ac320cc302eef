package service

import "cropsense/entities"

// WeatherService resolves observations for a location: cache first, then the
// external provider, then the synthetic fallback. It never returns a
// transport failure to its callers.
type WeatherService interface {
	Current(loc entities.GeoLocation) (*entities.Observation, error)
	Forecast(loc entities.GeoLocation, days int) (*entities.WeatherForecast, error)
	Soil(loc entities.GeoLocation) (map[string]any, error)
}
