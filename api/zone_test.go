package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/kiranacart/delivery-api/api/mocks"
	"github.com/kiranacart/delivery-api/schema"
	"github.com/kiranacart/delivery-api/store"
)

func testRouter(route string, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET(route, handler)
	return router
}

func TestDetectZoneFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockZoneDetector(ctl)

	s := Server{
		detector: d,
	}

	loc := schema.Location{Latitude: 25.05, Longitude: 90.05}
	zone := schema.DeliveryZone{
		ID:     "zone-mirpur",
		Name:   "Mirpur",
		Active: true,
	}

	d.EXPECT().DetectZone(loc, gomock.Any()).Return(schema.FoundDetection(loc, zone), nil).Times(1)

	router := testRouter("/", s.detectZone)

	req := httptest.NewRequest("GET", "/?lat=25.05&lng=90.05", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp schema.Detection
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.True(t, jResp.Found)
	assert.Equal(t, "zone-mirpur", jResp.Zone.ID)
	assert.Equal(t, "Mirpur", jResp.Town.Name)
}

func TestDetectZoneNotFoundIsOK(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockZoneDetector(ctl)

	s := Server{
		detector: d,
	}

	loc := schema.Location{Latitude: 25.5, Longitude: 90.5}
	d.EXPECT().DetectZone(loc, gomock.Any()).
		Return(schema.NotFoundDetection(loc, "no delivery here"), nil).Times(1)

	router := testRouter("/", s.detectZone)

	req := httptest.NewRequest("GET", "/?lat=25.5&lng=90.5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "a miss is not an error")

	var jResp schema.Detection
	assert.Nil(t, json.Unmarshal([]byte(w.Body.String()), &jResp))
	assert.False(t, jResp.Found)
	assert.Equal(t, "no delivery here", jResp.Message)
}

func TestDetectZoneBadParameters(t *testing.T) {
	s := Server{}

	router := testRouter("/", s.detectZone)

	cases := []struct {
		target string
		code   int64
	}{
		{"/", 1010},                 // no parameters at all
		{"/?lat=abc&lng=90.5", 1011}, // not a number
		{"/?lat=91&lng=0", 1100},     // out of coordinate range
	}

	for _, c := range cases {
		req := httptest.NewRequest("GET", c.target, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "target %s", c.target)

		var jResp ErrorResponse
		assert.Nil(t, json.Unmarshal([]byte(w.Body.String()), &jResp), "target %s", c.target)
		assert.Equal(t, c.code, jResp.Code, "target %s", c.target)
	}
}

func TestDetectZoneGeoPositionHeader(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockZoneDetector(ctl)

	s := Server{
		detector: d,
	}

	loc := schema.Location{Latitude: 25.05, Longitude: 90.05}
	d.EXPECT().DetectZone(loc, gomock.Any()).
		Return(schema.NotFoundDetection(loc, "nope"), nil).Times(1)

	router := testRouter("/", s.detectZone)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Geo-Position", "25.05;90.05")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestClosestZone(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockZoneDetector(ctl)

	s := Server{
		detector: d,
	}

	zone := schema.DeliveryZone{ID: "zone-uttara", Name: "Uttara"}
	d.EXPECT().FindClosestZone(gomock.Any()).Return(&zone, nil).Times(1)

	router := testRouter("/", s.closestZone)

	req := httptest.NewRequest("GET", "/?lat=26.5&lng=91.5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var jResp struct {
		Zone       schema.DeliveryZone `json:"zone"`
		Town       schema.Town         `json:"town"`
		DistanceKm float64             `json:"distance_km"`
	}
	assert.Nil(t, json.Unmarshal([]byte(w.Body.String()), &jResp))
	assert.Equal(t, "zone-uttara", jResp.Zone.ID)
	assert.Equal(t, "Uttara", jResp.Town.Name)
}

func TestClosestZoneNoActiveZones(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockZoneDetector(ctl)

	s := Server{
		detector: d,
	}

	d.EXPECT().FindClosestZone(gomock.Any()).Return(nil, nil).Times(1)

	router := testRouter("/", s.closestZone)

	req := httptest.NewRequest("GET", "/?lat=26.5&lng=91.5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListZones(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	z := mocks.NewMockZoneStore(ctl)

	s := Server{
		zones: z,
	}

	z.EXPECT().ActiveZones().Return([]schema.DeliveryZone{
		{ID: "zone-mirpur"},
		{ID: "zone-uttara"},
	}).Times(1)

	router := testRouter("/", s.listZones)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var jResp struct {
		Zones []schema.DeliveryZone `json:"zones"`
	}
	assert.Nil(t, json.Unmarshal([]byte(w.Body.String()), &jResp))
	assert.Len(t, jResp.Zones, 2)
}

func TestGetZoneNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	z := mocks.NewMockZoneStore(ctl)

	s := Server{
		zones: z,
	}

	z.EXPECT().ZoneByID("missing").Return(nil, store.ErrZoneNotFound).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/:zoneID", s.getZone)

	req := httptest.NewRequest("GET", "/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRefreshZones(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	z := mocks.NewMockZoneStore(ctl)
	src := mocks.NewMockZoneSource(ctl)

	s := Server{
		zones:  z,
		source: src,
	}

	zones := []schema.DeliveryZone{{ID: "zone-mirpur", Active: true}}
	src.EXPECT().LoadZones(gomock.Any()).Return(zones, nil).Times(1)
	z.EXPECT().Refresh(zones).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/", s.refreshZones)

	req := httptest.NewRequest("POST", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestApikeyAuthentication(t *testing.T) {
	s := Server{}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.apikeyAuthentication("secret-token"))
	router.POST("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("POST", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code, "missing token")

	req = httptest.NewRequest("POST", "/", nil)
	req.Header.Set("Api-Token", "wrong")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code, "wrong token")

	req = httptest.NewRequest("POST", "/", nil)
	req.Header.Set("Api-Token", "secret-token")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code, "valid token")
}

func TestHealthz(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoZones(ctl)

	s := Server{
		mongoZones: m,
	}

	m.EXPECT().Ping().Return(nil).Times(1)

	router := testRouter("/healthz", s.healthz)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
