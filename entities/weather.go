package entities

import "time"

// Observation is a point-in-time environmental reading supplied by the
// weather collaborator (or its synthetic fallback), never built by the core.
type Observation struct {
	Temperature     float64   `json:"temperature"`       // Celsius
	Humidity        float64   `json:"humidity"`          // 0-100 %
	Precipitation   float64   `json:"precipitation"`     // mm
	WindSpeed       float64   `json:"wind_speed"`        // m/s
	WindDirection   float64   `json:"wind_direction"`    // 0-360 deg
	SoilTemperature *float64  `json:"soil_temperature"`  // Celsius, optional
	SoilMoisture    *float64  `json:"soil_moisture"`     // 0-100 %, optional
	Timestamp       time.Time `json:"timestamp"`
	Source          string    `json:"source,omitempty"` // provider|estimated
}

// WeatherForecast is an ordered run of observations for one location.
type WeatherForecast struct {
	LocationID   string        `json:"location_id"`
	ForecastData []Observation `json:"forecast_data"`
	CreatedAt    time.Time     `json:"created_at"`
}

// WeatherCache stores raw provider responses so repeated lookups within the
// configured TTL do not hit the external API.
type WeatherCache struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:80" json:"key"` // kind[:days]:lat,lon
	Payload   string    `json:"payload"`                        // JSON body
	FetchedAt time.Time `gorm:"index" json:"fetched_at"`
}
