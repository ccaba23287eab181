package router

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrBadSettings indicates routing settings outside their accepted range.
var ErrBadSettings = errors.New("router: invalid routing settings")

const (
	metersPerKilometer = 1000.0
	minutesPerHour     = 60.0
)

var validate = validator.New()

// Settings is the network-wide routing configuration.
type Settings struct {
	// BusWaitTime is the time spent at a stop before every boarding, in minutes.
	BusWaitTime int `json:"bus_wait_time" yaml:"bus_wait_time" validate:"gte=1,lte=1000"`
	// BusVelocity is the bus speed, in km/h.
	BusVelocity float64 `json:"bus_velocity" yaml:"bus_velocity" validate:"gt=0,lte=1000"`
}

// Validate checks both fields against their ranges.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrBadSettings, err)
	}

	return nil
}

// RideMinutes converts a road distance in meters to travel minutes.
func (s Settings) RideMinutes(meters int) float64 {
	return float64(meters) / (s.BusVelocity * metersPerKilometer / minutesPerHour)
}
