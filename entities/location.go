package entities

import (
	"fmt"
	"strconv"
	"strings"
)

// GeoLocation is a pass-through identifier; the rule engines never interpret it.
type GeoLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (g GeoLocation) Validate() error {
	if g.Latitude < -90 || g.Latitude > 90 {
		return fmt.Errorf("latitude %.4f out of range [-90,90]", g.Latitude)
	}
	if g.Longitude < -180 || g.Longitude > 180 {
		return fmt.Errorf("longitude %.4f out of range [-180,180]", g.Longitude)
	}
	return nil
}

// ID renders the "lat,lon" form used in routes and cache keys.
func (g GeoLocation) ID() string {
	return fmt.Sprintf("%g,%g", g.Latitude, g.Longitude)
}

// ParseLocationID parses a "latitude,longitude" path segment.
func ParseLocationID(s string) (GeoLocation, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return GeoLocation{}, fmt.Errorf("invalid location format %q", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return GeoLocation{}, fmt.Errorf("invalid latitude %q", parts[0])
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return GeoLocation{}, fmt.Errorf("invalid longitude %q", parts[1])
	}
	loc := GeoLocation{Latitude: lat, Longitude: lon}
	if err := loc.Validate(); err != nil {
		return GeoLocation{}, err
	}
	return loc, nil
}
