package boundary

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"googlemaps.github.io/maps"

	apimocks "github.com/kiranacart/delivery-api/api/mocks"
	geomocks "github.com/kiranacart/delivery-api/external/mocks"
	"github.com/kiranacart/delivery-api/schema"
)

const squareBoundary = "90.0,25.0,0 90.0,25.1,0 90.1,25.1,0 90.1,25.0,0 90.0,25.0,0"

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	assert.Nil(t, ioutil.WriteFile(path, []byte(content), 0600))
	return path
}

func tempDir(t *testing.T) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "boundary-import")
	assert.Nil(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

func TestBuildZone(t *testing.T) {
	dir := tempDir(t)
	boundaryFile := writeTempFile(t, dir, "mirpur.txt", squareBoundary)

	importer := NewImporter(nil, nil, nil, nil)

	zone, err := importer.BuildZone(ZoneManifest{
		Name:              "Mirpur",
		Ordinal:           1,
		BoundaryFile:      boundaryFile,
		DeliveryFee:       30,
		MinimumOrder:      200,
		EstimatedDelivery: "45 minutes",
	})

	assert.Nil(t, err)
	assert.NotEmpty(t, zone.ID)
	assert.Equal(t, "Mirpur", zone.Name)
	assert.True(t, zone.Active)
	assert.Len(t, zone.Boundary, 5)
	assert.Equal(t, 30.0, zone.Metadata.DeliveryFee)
	assert.Empty(t, zone.State, "no geo client wired")
}

func TestBuildZoneRejectsBadBoundary(t *testing.T) {
	dir := tempDir(t)

	importer := NewImporter(nil, nil, nil, nil)

	// two vertices cannot enclose an area
	degenerate := writeTempFile(t, dir, "degenerate.txt", "90.0,25.0,0 90.1,25.1,0")
	_, err := importer.BuildZone(ZoneManifest{Name: "Broken", BoundaryFile: degenerate})
	assert.Error(t, err)

	malformed := writeTempFile(t, dir, "malformed.txt", "90.0,abc,0 90.1,25.1,0 90.0,25.1,0")
	_, err = importer.BuildZone(ZoneManifest{Name: "Broken", BoundaryFile: malformed})
	assert.Error(t, err)

	_, err = importer.BuildZone(ZoneManifest{Name: "Missing", BoundaryFile: filepath.Join(dir, "nope.txt")})
	assert.Error(t, err)
}

func TestBuildZoneResolvesState(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	dir := tempDir(t)
	boundaryFile := writeTempFile(t, dir, "mirpur.txt", squareBoundary)

	g := geomocks.NewMockGeoInfo(ctl)
	g.EXPECT().Get(gomock.Any()).Return([]maps.GeocodingResult{
		{
			AddressComponents: []maps.AddressComponent{
				{LongName: "Mirpur Road", Types: []string{"route"}},
				{LongName: "Dhaka Division", Types: []string{"administrative_area_level_1"}},
			},
		},
	}, nil).Times(1)

	importer := NewImporter(nil, nil, g, nil)

	zone, err := importer.BuildZone(ZoneManifest{Name: "Mirpur", BoundaryFile: boundaryFile})
	assert.Nil(t, err)
	assert.Equal(t, "Dhaka Division", zone.State)
}

func TestImportManifest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	dir := tempDir(t)
	writeTempFile(t, dir, "mirpur.txt", squareBoundary)

	manifestFile := writeTempFile(t, dir, "manifest.json", `{
		"zones": [
			{
				"name": "Mirpur",
				"ordinal": 1,
				"boundary_file": "`+filepath.Join(dir, "mirpur.txt")+`",
				"delivery_fee": 30,
				"minimum_order": 200,
				"estimated_delivery": "45 minutes"
			}
		]
	}`)

	m := apimocks.NewMockMongoZones(ctl)
	m.EXPECT().InsertZones(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, zones []schema.DeliveryZone) error {
			assert.Len(t, zones, 1)
			assert.Equal(t, "Mirpur", zones[0].Name)
			return nil
		}).Times(1)

	importer := NewImporter(m, nil, nil, nil)

	zones, err := importer.ImportManifest(context.Background(), manifestFile)
	assert.Nil(t, err)
	assert.Len(t, zones, 1)
}

func TestImportManifestAbortsOnBadZone(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	dir := tempDir(t)
	writeTempFile(t, dir, "good.txt", squareBoundary)
	writeTempFile(t, dir, "bad.txt", "90.0,25.0,0")

	manifestFile := writeTempFile(t, dir, "manifest.json", `{
		"zones": [
			{"name": "Good", "boundary_file": "`+filepath.Join(dir, "good.txt")+`"},
			{"name": "Bad", "boundary_file": "`+filepath.Join(dir, "bad.txt")+`"}
		]
	}`)

	// no InsertZones expectation: nothing may be written
	m := apimocks.NewMockMongoZones(ctl)

	importer := NewImporter(m, nil, nil, nil)

	_, err := importer.ImportManifest(context.Background(), manifestFile)
	assert.Error(t, err)
}
