package store

import (
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/kiranacart/delivery-api/schema"
)

var (
	ErrZoneNotFound = fmt.Errorf("zone not found")
)

// ZoneStore holds the zone set the detection engine runs against.
// Readers always see one fully-formed snapshot; Refresh swaps the
// whole snapshot atomically and never mutates a published one.
type ZoneStore interface {
	ActiveZones() []schema.DeliveryZone
	ZoneByID(id string) (*schema.DeliveryZone, error)
	Refresh(zones []schema.DeliveryZone)
}

// zoneSnapshot is immutable once published.
type zoneSnapshot struct {
	active []schema.DeliveryZone
	byID   map[string]schema.DeliveryZone
}

type snapshotZoneStore struct {
	current atomic.Value
}

// NewZoneStore builds a store with an initial zone set. An empty set
// is legal: detection then always answers not-found.
func NewZoneStore(zones []schema.DeliveryZone) ZoneStore {
	s := &snapshotZoneStore{}
	s.Refresh(zones)
	return s
}

// ActiveZones returns the active zones of the current snapshot in
// stable (ordinal, id) order. Callers must not modify the slice.
func (s *snapshotZoneStore) ActiveZones() []schema.DeliveryZone {
	return s.current.Load().(*zoneSnapshot).active
}

// ZoneByID looks a zone up by id, active or not.
func (s *snapshotZoneStore) ZoneByID(id string) (*schema.DeliveryZone, error) {
	zone, ok := s.current.Load().(*zoneSnapshot).byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrZoneNotFound, id)
	}
	return &zone, nil
}

// Refresh replaces the snapshot wholesale. In-flight readers keep the
// snapshot they already loaded; no reader ever observes a partially
// updated zone set.
func (s *snapshotZoneStore) Refresh(zones []schema.DeliveryZone) {
	snapshot := &zoneSnapshot{
		active: make([]schema.DeliveryZone, 0, len(zones)),
		byID:   make(map[string]schema.DeliveryZone, len(zones)),
	}

	for _, zone := range zones {
		snapshot.byID[zone.ID] = zone
		if zone.Active {
			snapshot.active = append(snapshot.active, zone)
		}
	}

	// stable order keeps "first match wins" reproducible
	sort.Slice(snapshot.active, func(i, j int) bool {
		if snapshot.active[i].Ordinal != snapshot.active[j].Ordinal {
			return snapshot.active[i].Ordinal < snapshot.active[j].Ordinal
		}
		return snapshot.active[i].ID < snapshot.active[j].ID
	})

	s.current.Store(snapshot)
}
