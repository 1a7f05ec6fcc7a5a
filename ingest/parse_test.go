package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kiranacart/delivery-api/schema"
)

// the export format of the mapping tool administrators author zones in
const rawSquare = "90.0,25.0,0 90.0,25.1,0 90.1,25.1,0 90.1,25.0,0 90.0,25.0,0"

func TestParseBoundary(t *testing.T) {
	boundary, err := ParseBoundary(rawSquare)
	assert.NoError(t, err)
	assert.Len(t, boundary, 5)
	assert.True(t, boundary.IsClosed())

	// tokens are longitude,latitude
	assert.Equal(t, 25.0, boundary[0].Latitude)
	assert.Equal(t, 90.0, boundary[0].Longitude)
	assert.Equal(t, 25.1, boundary[1].Latitude)
	assert.Equal(t, 90.0, boundary[1].Longitude)
}

func TestParseBoundaryWithoutAltitude(t *testing.T) {
	boundary, err := ParseBoundary("90.0,25.0 90.0,25.1 90.1,25.1")
	assert.NoError(t, err)
	assert.Len(t, boundary, 3)
}

func TestParseBoundaryMalformedToken(t *testing.T) {
	cases := []struct {
		raw   string
		token string
	}{
		{"90.0,25.0,0 blah 90.1,25.1,0", "blah"},
		{"90.0,25.0,0 90.1,abc,0", "90.1,abc,0"},
		{"90.0,25.0,0 xyz,25.1,0", "xyz,25.1,0"},
		{"90.0,25.0,0 90.1", "90.1"},
		{"90.0,25.0,0 1,2,3,4", "1,2,3,4"},
		{"90.0,25.0,0 90.1,25.1,abc", "90.1,25.1,abc"},
	}

	for _, c := range cases {
		_, err := ParseBoundary(c.raw)
		assert.Error(t, err, "raw %q", c.raw)

		malformed, ok := err.(*MalformedBoundaryError)
		assert.True(t, ok, "raw %q", c.raw)
		assert.Equal(t, c.token, malformed.Token)
	}
}

func TestParseBoundaryEmpty(t *testing.T) {
	_, err := ParseBoundary("   ")
	assert.Error(t, err)
}

func TestSerializeRoundTrip(t *testing.T) {
	boundary, err := ParseBoundary(rawSquare)
	assert.NoError(t, err)

	again, err := ParseBoundary(Serialize(boundary))
	assert.NoError(t, err)
	assert.Len(t, again, len(boundary))

	for i := range boundary {
		assert.InDelta(t, boundary[i].Latitude, again[i].Latitude, 1e-6)
		assert.InDelta(t, boundary[i].Longitude, again[i].Longitude, 1e-6)
	}
}

func TestClose(t *testing.T) {
	open := schema.Boundary{
		{Latitude: 25.0, Longitude: 90.0},
		{Latitude: 25.1, Longitude: 90.0},
		{Latitude: 25.1, Longitude: 90.1},
	}
	assert.False(t, open.IsClosed())

	closed := Close(open)
	assert.True(t, closed.IsClosed())
	assert.Len(t, closed, 4)

	// closing twice changes nothing
	assert.Len(t, Close(closed), 4)

	// the input ring is left untouched
	assert.Len(t, open, 3)
}
