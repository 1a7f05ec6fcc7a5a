package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kiranacart/delivery-api/geo"
	"github.com/kiranacart/delivery-api/schema"
	"github.com/kiranacart/delivery-api/store"
)

// detectZone answers "do we deliver to this coordinate". A miss is a
// normal 200 response carrying the explanatory message, not an error.
func (s *Server) detectZone(c *gin.Context) {
	loc, err := requestLocation(c)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, locationError(err), err)
		return
	}

	detection, err := s.detector.DetectZone(loc, c.GetHeader("Accept-Language"))
	if err != nil {
		if errors.Is(err, schema.ErrInvalidCoordinate) {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidCoordinate, err)
			return
		}
		shouldInterupt(err, c)
		return
	}

	c.JSON(http.StatusOK, detection)
}

// closestZone suggests the nearest zone for an out-of-zone coordinate.
func (s *Server) closestZone(c *gin.Context) {
	loc, err := requestLocation(c)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, locationError(err), err)
		return
	}

	zone, err := s.detector.FindClosestZone(loc)
	if err != nil {
		if errors.Is(err, schema.ErrInvalidCoordinate) {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidCoordinate, err)
			return
		}
		shouldInterupt(err, c)
		return
	}

	if zone == nil {
		abortWithEncoding(c, http.StatusNotFound, errorNoActiveZones)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"zone":        zone,
		"town":        schema.TownFromZone(*zone),
		"distance_km": geo.DistanceKm(loc, geo.Centroid(zone.Boundary)),
	})
}

func (s *Server) listZones(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"zones": s.zones.ActiveZones(),
	})
}

func (s *Server) getZone(c *gin.Context) {
	zone, err := s.zones.ZoneByID(c.Param("zoneID"))
	if err != nil {
		if errors.Is(err, store.ErrZoneNotFound) {
			abortWithEncoding(c, http.StatusNotFound, errorZoneNotFound)
			return
		}
		shouldInterupt(err, c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"zone": zone})
}

// refreshZones reloads the snapshot store from the zone source. It is
// the only mutating operation the API exposes and is admin-gated.
func (s *Server) refreshZones(c *gin.Context) {
	zones, err := s.source.LoadZones(context.Background())
	if err != nil {
		log.Error(err)
		abortWithEncoding(c, http.StatusBadGateway, errorZoneReload, err)
		return
	}

	s.zones.Refresh(zones)

	c.JSON(http.StatusOK, gin.H{
		"result": "ok",
		"zones":  len(zones),
	})
}
