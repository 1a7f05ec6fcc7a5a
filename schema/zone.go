package schema

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

const (
	ZoneCollection = "zones"
)

// Boundary is the ordered vertex ring of a delivery zone. It may or
// may not repeat the first vertex at the end; consumers treat it as
// implicitly closed either way.
type Boundary []Location

// IsClosed reports whether the first and last vertex coincide.
func (b Boundary) IsClosed() bool {
	if len(b) < 2 {
		return false
	}
	return b[0].Equal(b[len(b)-1])
}

// Vertices returns the ring without the duplicated closing vertex.
func (b Boundary) Vertices() []Location {
	if b.IsClosed() {
		return b[:len(b)-1]
	}
	return b
}

func (b Boundary) Value() (driver.Value, error) {
	return json.Marshal(b)
}

func (b *Boundary) Scan(src interface{}) error {
	source, ok := src.([]byte)
	if !ok {
		return errors.New("Type assertion .([]byte) failed.")
	}
	return json.Unmarshal(source, b)
}

// ZoneMetadata carries the commercial terms displayed for a zone.
type ZoneMetadata struct {
	DeliveryFee       float64 `json:"delivery_fee" bson:"delivery_fee"`
	MinimumOrder      float64 `json:"minimum_order" bson:"minimum_order"`
	EstimatedDelivery string  `json:"estimated_delivery" bson:"estimated_delivery"`
}

func (m ZoneMetadata) Value() (driver.Value, error) {
	return json.Marshal(m)
}

func (m *ZoneMetadata) Scan(src interface{}) error {
	source, ok := src.([]byte)
	if !ok {
		return errors.New("Type assertion .([]byte) failed.")
	}
	return json.Unmarshal(source, m)
}

// DeliveryZone is a polygon-bounded area where delivery is offered.
// Zones are created by the administrative import, never by the
// detection path, and are deactivated rather than deleted.
type DeliveryZone struct {
	ID       string       `json:"id" bson:"_id" gorm:"primary_key"`
	Name     string       `json:"name" bson:"name"`
	State    string       `json:"state" bson:"state"`
	Ordinal  int          `json:"ordinal" bson:"ordinal"`
	Active   bool         `json:"active" bson:"active"`
	Boundary Boundary     `json:"boundary" bson:"boundary" sql:"type:jsonb"`
	Metadata ZoneMetadata `json:"metadata" bson:"metadata" sql:"type:jsonb"`
}

func (DeliveryZone) TableName() string {
	return "delivery_zones"
}
