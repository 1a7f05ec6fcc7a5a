package geo

import (
	"math"

	"github.com/kiranacart/delivery-api/schema"
)

const (
	// earthRadiusKm is the mean spherical Earth radius.
	earthRadiusKm = 6371.0

	// kmPerDegree is a fixed degrees-to-km scale used by the shoelace
	// area estimate. It ignores latitude-dependent longitude scaling,
	// which is fine for sanity-checking city-scale zones and nothing
	// more.
	kmPerDegree = 111.32
)

// Contains runs the even-odd ray-casting test for a point against a
// boundary ring. The ring is treated as cyclic over its vertex list,
// so an explicitly closed ring (first == last) and its unclosed form
// answer identically: the duplicated closing vertex only produces a
// zero-length edge, which can never satisfy the crossing predicate.
// The answer does not depend on winding direction. Points exactly on
// an edge get whatever parity the crossing count yields; the result is
// deterministic but not normalized to a fixed inside/outside policy.
func Contains(point schema.Location, boundary schema.Boundary) bool {
	n := len(boundary)
	if n < 3 {
		return false
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi := boundary[i]
		vj := boundary[j]

		if (vi.Latitude > point.Latitude) == (vj.Latitude > point.Latitude) {
			continue
		}
		crossing := (vj.Longitude-vi.Longitude)*(point.Latitude-vi.Latitude)/
			(vj.Latitude-vi.Latitude) + vi.Longitude
		if point.Longitude < crossing {
			inside = !inside
		}
	}

	return inside
}

// DistanceKm computes the haversine great-circle distance between two
// coordinates on a spherical Earth. Approximate but symmetric and
// monotonic, which is all nearest-zone ranking needs.
func DistanceKm(a, b schema.Location) float64 {
	latA := a.Latitude * math.Pi / 180
	latB := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Centroid returns the arithmetic mean of the ring's distinct
// vertices. Not a true geometric centroid, but stable enough to rank
// zones by distance.
func Centroid(boundary schema.Boundary) schema.Location {
	vertices := boundary.Vertices()
	if len(vertices) == 0 {
		return schema.Location{}
	}

	var latSum, lngSum float64
	for _, v := range vertices {
		latSum += v.Latitude
		lngSum += v.Longitude
	}

	return schema.Location{
		Latitude:  latSum / float64(len(vertices)),
		Longitude: lngSum / float64(len(vertices)),
	}
}

// BoundingBox is the axis-aligned extent of a boundary ring.
type BoundingBox struct {
	MinLatitude  float64 `json:"min_latitude"`
	MaxLatitude  float64 `json:"max_latitude"`
	MinLongitude float64 `json:"min_longitude"`
	MaxLongitude float64 `json:"max_longitude"`
}

// Contains reports whether a location falls inside the box, borders
// included.
func (b BoundingBox) Contains(loc schema.Location) bool {
	return loc.Latitude >= b.MinLatitude && loc.Latitude <= b.MaxLatitude &&
		loc.Longitude >= b.MinLongitude && loc.Longitude <= b.MaxLongitude
}

// BoundaryBox computes the bounding box of a boundary ring.
func BoundaryBox(boundary schema.Boundary) BoundingBox {
	if len(boundary) == 0 {
		return BoundingBox{}
	}

	box := BoundingBox{
		MinLatitude:  boundary[0].Latitude,
		MaxLatitude:  boundary[0].Latitude,
		MinLongitude: boundary[0].Longitude,
		MaxLongitude: boundary[0].Longitude,
	}
	for _, v := range boundary[1:] {
		box.MinLatitude = math.Min(box.MinLatitude, v.Latitude)
		box.MaxLatitude = math.Max(box.MaxLatitude, v.Latitude)
		box.MinLongitude = math.Min(box.MinLongitude, v.Longitude)
		box.MaxLongitude = math.Max(box.MaxLongitude, v.Longitude)
	}
	return box
}

// ApproximateAreaKm2 estimates the ring's area with the planar
// shoelace formula in degree² scaled by a fixed km-per-degree factor.
// It ignores Earth curvature and longitude compression, so it is a
// data sanity check for administrators, not a figure for billing or
// legal boundaries.
func ApproximateAreaKm2(boundary schema.Boundary) float64 {
	vertices := boundary.Vertices()
	n := len(vertices)
	if n < 3 {
		return 0
	}

	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += vertices[i].Longitude * vertices[j].Latitude
		sum -= vertices[j].Longitude * vertices[i].Latitude
	}

	return math.Abs(sum) / 2 * kmPerDegree * kmPerDegree
}
