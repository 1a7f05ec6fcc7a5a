package api

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kiranacart/delivery-api/schema"
)

var errMissingLocation = fmt.Errorf("missing lat/lng parameters")

// parseGeoPosition will parse latitude and longitude from the geo-position string
func parseGeoPosition(geoPosition string) (float64, float64, error) {
	positions := strings.Split(geoPosition, ";")

	if len(positions) != 2 {
		return 0, 0, fmt.Errorf("invalid geo-position value")
	}

	lat, err := strconv.ParseFloat(positions[0], 64)
	if err != nil {
		return 0, 0, err
	}

	long, err := strconv.ParseFloat(positions[1], 64)
	if err != nil {
		return 0, 0, err
	}

	return lat, long, nil
}

// requestLocation reads the queried coordinate from the lat/lng query
// parameters, falling back to the mobile client's Geo-Position header
// (lat;lng). Range validation happens here so detection logic never
// sees a malformed coordinate.
func requestLocation(c *gin.Context) (schema.Location, error) {
	latStr := c.Query("lat")
	lngStr := c.Query("lng")

	if latStr == "" && lngStr == "" {
		if gp := c.GetHeader("Geo-Position"); gp != "" {
			lat, lng, err := parseGeoPosition(gp)
			if err != nil {
				return schema.Location{}, err
			}
			return schema.NewLocation(lat, lng)
		}
		return schema.Location{}, errMissingLocation
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return schema.Location{}, err
	}

	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return schema.Location{}, err
	}

	return schema.NewLocation(lat, lng)
}

// locationError maps a requestLocation failure onto the error table:
// absent parameters, unparseable values and out-of-range coordinates
// get distinct codes.
func locationError(err error) ErrorResponse {
	switch {
	case errors.Is(err, errMissingLocation):
		return errorInvalidParameters
	case errors.Is(err, schema.ErrInvalidCoordinate):
		return errorInvalidCoordinate
	default:
		return errorCannotParseRequest
	}
}
