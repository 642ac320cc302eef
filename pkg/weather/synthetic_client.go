package weather

import (
	"fmt"
	"hash/fnv"
	"math"
	"time"

	"cropsense/entities"
)

type syntheticClient struct{}

// NewSynthetic returns the offline fallback collaborator. It produces
// plausible observations from a seasonal/latitude model and never fails,
// so transport outages don't propagate into the rule engines.
func NewSynthetic() Client { return &syntheticClient{} }

func (m *syntheticClient) Current(loc entities.GeoLocation) (*entities.Observation, error) {
	return m.estimate(loc, time.Now().UTC()), nil
}

func (m *syntheticClient) estimate(loc entities.GeoLocation, at time.Time) *entities.Observation {
	// Sinusoidal seasonal swing anchored at the spring equinox, colder
	// toward the poles.
	dayOfYear := float64(at.YearDay())
	seasonal := math.Sin(2 * math.Pi * (dayOfYear - 81) / 365)
	baseTemp := 20 - math.Abs(loc.Latitude)*0.6
	temp := round1(baseTemp + seasonal*15)

	soilTemp := round1(temp - 2.0)
	soilMoist := 45.0
	return &entities.Observation{
		Temperature:     temp,
		Humidity:        65.0,
		Precipitation:   0.0,
		WindSpeed:       5.0,
		WindDirection:   180.0,
		SoilTemperature: &soilTemp,
		SoilMoisture:    &soilMoist,
		Timestamp:       at,
		Source:          "estimated",
	}
}

func (m *syntheticClient) Forecast(loc entities.GeoLocation, days int) (*entities.WeatherForecast, error) {
	now := time.Now().UTC()
	base := m.estimate(loc, now)

	obs := make([]entities.Observation, 0, days*8)
	for i := 0; i < days*8; i++ {
		// daily temperature cycle plus a deterministic per-slot jitter
		cycle := float64(i%8-4) * 2
		jitter := float64(slotHash(loc, i)%10-5) * 0.5
		temp := base.Temperature + cycle + jitter

		soilTemp := temp - 2.0
		soilMoist := clamp(45.0+float64(i%4-2)*5, 20, 80)
		precip := 0.0
		if i%7 == 0 {
			precip = 2.0
		}
		obs = append(obs, entities.Observation{
			Temperature:     temp,
			Humidity:        clamp(base.Humidity+float64(i%3-1)*5, 30, 90),
			Precipitation:   precip,
			WindSpeed:       math.Max(0, base.WindSpeed+float64(i%5-2)),
			WindDirection:   math.Mod(base.WindDirection+float64(i)*5, 360),
			SoilTemperature: &soilTemp,
			SoilMoisture:    &soilMoist,
			Timestamp:       now.Add(time.Duration(i) * 3 * time.Hour),
			Source:          "estimated",
		})
	}
	return &entities.WeatherForecast{LocationID: loc.ID(), ForecastData: obs, CreatedAt: now}, nil
}

func (m *syntheticClient) Soil(loc entities.GeoLocation) (map[string]any, error) {
	return map[string]any{
		"location":       map[string]any{"lat": loc.Latitude, "lon": loc.Longitude},
		"soil_type":      "loam",
		"ph":             6.5,
		"organic_matter": 3.2,
		"moisture":       45.0,
		"temperature":    18.0,
		"nutrients": map[string]any{
			"nitrogen":   25.0,
			"phosphorus": 15.0,
			"potassium":  200.0,
		},
		"source":    "estimated",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func slotHash(loc entities.GeoLocation, i int) int {
	h := fnv.New32a()
	fmt.Fprintf(h, "%g%g%d", loc.Latitude, loc.Longitude, i)
	return int(h.Sum32() & 0x7fffffff)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
