// Package geo holds geographic coordinates and great-circle distance.
package geo

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/s2"
)

// EarthRadius is the mean Earth radius in meters used by Distance.
const EarthRadius = 6371000.0

// ErrBadCoordinates indicates a latitude outside [-90,90], a longitude
// outside [-180,180], or a NaN component.
var ErrBadCoordinates = errors.New("geo: coordinates out of range")

// Coordinates is a WGS-84 point in degrees.
type Coordinates struct {
	Lat float64 `json:"latitude" yaml:"latitude"`
	Lng float64 `json:"longitude" yaml:"longitude"`
}

// Validate reports ErrBadCoordinates for out-of-range or NaN components.
func (c Coordinates) Validate() error {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) || c.Lat < -90 || c.Lat > 90 || c.Lng < -180 || c.Lng > 180 {
		return fmt.Errorf("%w: (%g, %g)", ErrBadCoordinates, c.Lat, c.Lng)
	}

	return nil
}

// Distance returns the great-circle distance between from and to in meters
// on a sphere of EarthRadius. Identical points yield exactly 0.
func Distance(from, to Coordinates) float64 {
	if from == to {
		return 0
	}
	a := s2.LatLngFromDegrees(from.Lat, from.Lng)
	b := s2.LatLngFromDegrees(to.Lat, to.Lng)

	return a.Distance(b).Radians() * EarthRadius
}
