package geo

import (
	"fmt"

	"github.com/kiranacart/delivery-api/schema"
)

// NotAvailableMessage is the fallback user-facing text for a point we
// do not deliver to. Localized variants live in the i18n catalog.
const NotAvailableMessage = "We don't deliver to this area yet, but we're expanding soon!"

// ZoneReader is the read side of the zone store the detector needs.
type ZoneReader interface {
	ActiveZones() []schema.DeliveryZone
}

// Messages resolves the not-available text for a client language.
type Messages interface {
	NotAvailable(lang string) string
}

// ZoneDetector - interface for answering delivery availability
type ZoneDetector interface {
	DetectZone(loc schema.Location, lang string) (schema.Detection, error)
	FindClosestZone(loc schema.Location) (*schema.DeliveryZone, error)
	IsDeliveryAvailable(loc schema.Location) (bool, error)
}

type storeDetector struct {
	zones    ZoneReader
	messages Messages
}

// NewStoreDetector builds a detector over a zone snapshot store. Every
// call reads one immutable snapshot, so it is safe under any number of
// concurrent callers and concurrent store refreshes.
func NewStoreDetector(zones ZoneReader, messages Messages) *storeDetector {
	return &storeDetector{
		zones:    zones,
		messages: messages,
	}
}

// DetectZone scans the active zones in their stable order and returns
// the first one whose boundary contains the point. With overlapping
// zones the lowest (ordinal, id) zone wins; a miss is an ordinary
// not-found result, never an error.
func (d *storeDetector) DetectZone(loc schema.Location, lang string) (schema.Detection, error) {
	if !loc.Valid() {
		return schema.Detection{}, fmt.Errorf("%w: %f,%f", schema.ErrInvalidCoordinate, loc.Latitude, loc.Longitude)
	}

	for _, zone := range d.zones.ActiveZones() {
		if Contains(loc, zone.Boundary) {
			return schema.FoundDetection(loc, zone), nil
		}
	}

	message := NotAvailableMessage
	if d.messages != nil {
		message = d.messages.NotAvailable(lang)
	}

	return schema.NotFoundDetection(loc, message), nil
}

// FindClosestZone ranks active zones by haversine distance from the
// point to each boundary centroid. Ties keep the earlier zone in the
// stable order. Returns nil when no zone is active.
func (d *storeDetector) FindClosestZone(loc schema.Location) (*schema.DeliveryZone, error) {
	if !loc.Valid() {
		return nil, fmt.Errorf("%w: %f,%f", schema.ErrInvalidCoordinate, loc.Latitude, loc.Longitude)
	}

	var closest *schema.DeliveryZone
	var closestDistance float64

	for _, zone := range d.zones.ActiveZones() {
		distance := DistanceKm(loc, Centroid(zone.Boundary))
		if closest == nil || distance < closestDistance {
			z := zone
			closest = &z
			closestDistance = distance
		}
	}

	return closest, nil
}

func (d *storeDetector) IsDeliveryAvailable(loc schema.Location) (bool, error) {
	detection, err := d.DetectZone(loc, "")
	if err != nil {
		return false, err
	}
	return detection.Found, nil
}
