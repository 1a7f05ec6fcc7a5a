// Package ingest converts externally-authored boundary descriptions
// into validated zone boundaries. It runs in administrative tooling
// only, never on the detection request path, so it fails loudly: bad
// zone data must not enter the store silently.
package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kiranacart/delivery-api/schema"
)

// MalformedBoundaryError reports the exact token that failed to parse
// so the administrator can fix the source export.
type MalformedBoundaryError struct {
	Token  string
	Reason string
}

func (e *MalformedBoundaryError) Error() string {
	return fmt.Sprintf("malformed boundary token %q: %s", e.Token, e.Reason)
}

// ParseBoundary reads the raw text export of a mapping tool: a blob of
// whitespace-separated "longitude,latitude,altitude" triples. Altitude
// is accepted and ignored; a bare "longitude,latitude" pair is also
// accepted. Any unparseable token fails the whole parse — no point is
// ever silently dropped.
func ParseBoundary(raw string) (schema.Boundary, error) {
	tokens := strings.Fields(raw)
	if len(tokens) == 0 {
		return nil, &MalformedBoundaryError{Token: "", Reason: "empty boundary text"}
	}

	boundary := make(schema.Boundary, 0, len(tokens))
	for _, token := range tokens {
		parts := strings.Split(token, ",")
		if len(parts) != 2 && len(parts) != 3 {
			return nil, &MalformedBoundaryError{Token: token, Reason: "expect longitude,latitude[,altitude]"}
		}

		lng, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, &MalformedBoundaryError{Token: token, Reason: "invalid longitude"}
		}

		lat, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, &MalformedBoundaryError{Token: token, Reason: "invalid latitude"}
		}

		// altitude is discarded but still has to be numeric
		if len(parts) == 3 {
			if _, err := strconv.ParseFloat(parts[2], 64); err != nil {
				return nil, &MalformedBoundaryError{Token: token, Reason: "invalid altitude"}
			}
		}

		boundary = append(boundary, schema.Location{Latitude: lat, Longitude: lng})
	}

	return boundary, nil
}

// Serialize renders a boundary back into the authoring text format.
// ParseBoundary(Serialize(b)) reproduces b within float formatting
// precision.
func Serialize(boundary schema.Boundary) string {
	tokens := make([]string, len(boundary))
	for i, v := range boundary {
		tokens[i] = fmt.Sprintf("%s,%s,0",
			strconv.FormatFloat(v.Longitude, 'f', -1, 64),
			strconv.FormatFloat(v.Latitude, 'f', -1, 64))
	}
	return strings.Join(tokens, " ")
}

// Close returns a boundary whose last vertex repeats the first. A ring
// that is already closed comes back unchanged.
func Close(boundary schema.Boundary) schema.Boundary {
	if len(boundary) == 0 || boundary.IsClosed() {
		return boundary
	}
	closed := make(schema.Boundary, len(boundary)+1)
	copy(closed, boundary)
	closed[len(boundary)] = boundary[0]
	return closed
}
