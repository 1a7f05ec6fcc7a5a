package ingest

import (
	"fmt"

	"github.com/kiranacart/delivery-api/geo"
	"github.com/kiranacart/delivery-api/schema"
)

// RegionBounds is an allowed geographic bounding box for incoming
// boundaries, used to catch data authored in the wrong hemisphere.
type RegionBounds = geo.BoundingBox

// Violation is one validation finding on a boundary.
type Violation struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	if v.Index < 0 {
		return v.Message
	}
	return fmt.Sprintf("vertex %d: %s", v.Index, v.Message)
}

// ValidationReport collects every violation found on a boundary, not
// just the first, so an administrator fixes the export in one pass.
type ValidationReport struct {
	Violations []Violation `json:"violations"`

	// Diagnostics computed for administrator review before publishing.
	VertexCount int             `json:"vertex_count"`
	Closed      bool            `json:"closed"`
	Box         geo.BoundingBox `json:"bounding_box"`
	AreaKm2     float64         `json:"area_km2"`
}

// OK reports whether the boundary may be published as a zone.
func (r ValidationReport) OK() bool {
	return len(r.Violations) == 0
}

// Validate checks a parsed boundary: at least 3 distinct vertices,
// every vertex within coordinate range, and, when region is non-nil,
// every vertex within the allowed region box. Diagnostics are filled
// regardless of violations.
func Validate(boundary schema.Boundary, region *RegionBounds) ValidationReport {
	report := ValidationReport{
		Violations:  []Violation{},
		VertexCount: len(boundary.Vertices()),
		Closed:      boundary.IsClosed(),
		Box:         geo.BoundaryBox(boundary),
		AreaKm2:     geo.ApproximateAreaKm2(boundary),
	}

	if report.VertexCount < 3 {
		report.Violations = append(report.Violations, Violation{
			Index:   -1,
			Message: fmt.Sprintf("boundary has %d distinct vertices, need at least 3", report.VertexCount),
		})
	}

	for i, v := range boundary {
		if !v.Valid() {
			report.Violations = append(report.Violations, Violation{
				Index:   i,
				Message: fmt.Sprintf("coordinate %f,%f out of range", v.Latitude, v.Longitude),
			})
			continue
		}
		if region != nil && !region.Contains(v) {
			report.Violations = append(report.Violations, Violation{
				Index:   i,
				Message: fmt.Sprintf("coordinate %f,%f outside allowed region", v.Latitude, v.Longitude),
			})
		}
	}

	return report
}
