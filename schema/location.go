package schema

import (
	"fmt"
	"math"
)

var ErrInvalidCoordinate = fmt.Errorf("coordinate out of range")

// coordEpsilon is the tolerance used when comparing vertices, e.g. to
// decide whether a boundary ring is explicitly closed.
const coordEpsilon = 1e-9

// Location is a geographic coordinate in degrees.
type Location struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// NewLocation validates latitude and longitude ranges before returning
// a Location. Out-of-range input fails with ErrInvalidCoordinate.
func NewLocation(latitude, longitude float64) (Location, error) {
	loc := Location{Latitude: latitude, Longitude: longitude}
	if !loc.Valid() {
		return Location{}, fmt.Errorf("%w: %f,%f", ErrInvalidCoordinate, latitude, longitude)
	}
	return loc, nil
}

// Valid reports whether both fields are inside WGS84 degree ranges.
func (l Location) Valid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}

// Equal compares two locations within coordEpsilon on both axes.
func (l Location) Equal(other Location) bool {
	return math.Abs(l.Latitude-other.Latitude) < coordEpsilon &&
		math.Abs(l.Longitude-other.Longitude) < coordEpsilon
}
