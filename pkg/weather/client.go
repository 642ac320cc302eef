package weather

import "cropsense/entities"

// Client is the external weather/soil data collaborator. The rule engines
// never call it; they accept already-resolved observations.
type Client interface {
	Current(loc entities.GeoLocation) (*entities.Observation, error)
	Forecast(loc entities.GeoLocation, days int) (*entities.WeatherForecast, error)
	Soil(loc entities.GeoLocation) (map[string]any, error)
}
