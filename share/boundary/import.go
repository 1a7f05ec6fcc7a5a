// Package boundary imports administratively-authored zone boundaries
// into the zone stores. Input is the raw text export of a mapping tool
// (whitespace-separated longitude,latitude,altitude triples) plus a
// manifest carrying each zone's commercial terms.
package boundary

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/kiranacart/delivery-api/external/geoinfo"
	"github.com/kiranacart/delivery-api/geo"
	"github.com/kiranacart/delivery-api/ingest"
	"github.com/kiranacart/delivery-api/schema"
	"github.com/kiranacart/delivery-api/store"
)

// ZoneManifest describes one zone to import.
type ZoneManifest struct {
	Name              string  `json:"name"`
	Ordinal           int     `json:"ordinal"`
	BoundaryFile      string  `json:"boundary_file"`
	DeliveryFee       float64 `json:"delivery_fee"`
	MinimumOrder      float64 `json:"minimum_order"`
	EstimatedDelivery string  `json:"estimated_delivery"`
}

// Manifest is the root of the import file.
type Manifest struct {
	Zones []ZoneManifest `json:"zones"`
}

// Importer builds validated zone records and publishes them.
type Importer struct {
	mongoZones store.MongoZones
	registry   *store.ZoneRegistry
	geoClient  geoinfo.GeoInfo
	region     *ingest.RegionBounds
}

// NewImporter wires the import pipeline. registry and geoClient may be
// nil: without a registry only MongoDB is written, without a geo
// client the zone's state field stays empty.
func NewImporter(mongoZones store.MongoZones, registry *store.ZoneRegistry, geoClient geoinfo.GeoInfo, region *ingest.RegionBounds) *Importer {
	return &Importer{
		mongoZones: mongoZones,
		registry:   registry,
		geoClient:  geoClient,
		region:     region,
	}
}

// BuildZone parses and validates one manifest entry. Validation
// failures abort the import: bad zone data must never reach the store.
func (i *Importer) BuildZone(manifest ZoneManifest) (*schema.DeliveryZone, error) {
	raw, err := ioutil.ReadFile(manifest.BoundaryFile)
	if err != nil {
		return nil, err
	}

	parsed, err := ingest.ParseBoundary(string(raw))
	if err != nil {
		return nil, err
	}

	report := ingest.Validate(parsed, i.region)
	if !report.OK() {
		return nil, fmt.Errorf("boundary for %q rejected: %v", manifest.Name, report.Violations)
	}

	log.WithFields(log.Fields{
		"prefix":   "import",
		"zone":     manifest.Name,
		"vertices": report.VertexCount,
		"area_km2": report.AreaKm2,
	}).Info("boundary validated")

	zone := &schema.DeliveryZone{
		ID:       uuid.New().String(),
		Name:     manifest.Name,
		Ordinal:  manifest.Ordinal,
		Active:   true,
		Boundary: parsed,
		Metadata: schema.ZoneMetadata{
			DeliveryFee:       manifest.DeliveryFee,
			MinimumOrder:      manifest.MinimumOrder,
			EstimatedDelivery: manifest.EstimatedDelivery,
		},
	}

	if i.geoClient != nil {
		zone.State = i.resolveState(geo.Centroid(parsed))
	}

	return zone, nil
}

// resolveState reverse-geocodes the centroid to fill the zone's
// state/region display field. Failures only leave the field empty.
func (i *Importer) resolveState(centroid schema.Location) string {
	results, err := i.geoClient.Get(centroid)
	if err != nil {
		log.WithError(err).Warn("resolve zone state")
		return ""
	}
	if len(results) == 0 {
		return ""
	}

	for _, component := range results[0].AddressComponents {
		if len(component.Types) > 0 && component.Types[0] == "administrative_area_level_1" {
			return component.LongName
		}
	}
	return ""
}

// ImportManifest reads a manifest file, builds every zone, and
// publishes the batch. The whole batch fails on the first bad zone.
func (i *Importer) ImportManifest(ctx context.Context, manifestFile string) ([]schema.DeliveryZone, error) {
	file, err := os.Open(manifestFile)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var manifest Manifest
	if err := json.NewDecoder(file).Decode(&manifest); err != nil {
		return nil, err
	}

	zones := make([]schema.DeliveryZone, 0, len(manifest.Zones))
	for _, entry := range manifest.Zones {
		zone, err := i.BuildZone(entry)
		if err != nil {
			return nil, err
		}
		zones = append(zones, *zone)
	}

	if err := i.mongoZones.InsertZones(ctx, zones); err != nil {
		return nil, err
	}

	if i.registry != nil {
		for _, zone := range zones {
			if err := i.registry.RegisterZone(zone); err != nil {
				return nil, err
			}
		}
	}

	return zones, nil
}
