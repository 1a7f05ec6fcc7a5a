package store

import (
	"context"

	"github.com/jinzhu/gorm"

	"github.com/kiranacart/delivery-api/schema"
)

// ZoneRegistry is the Postgres system of record for zones, used by
// back-office tooling. It doubles as a ZoneSource so deployments
// without MongoDB can refresh the snapshot store straight from it.
type ZoneRegistry struct {
	ormDB *gorm.DB
}

func NewZoneRegistry(ormDB *gorm.DB) *ZoneRegistry {
	return &ZoneRegistry{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (r *ZoneRegistry) Ping() error {
	return r.ormDB.DB().Ping()
}

// LoadZones reads all registered zones in stable order.
func (r *ZoneRegistry) LoadZones(ctx context.Context) ([]schema.DeliveryZone, error) {
	var zones []schema.DeliveryZone
	if err := r.ormDB.Order("ordinal asc, id asc").Find(&zones).Error; err != nil {
		return nil, err
	}
	return zones, nil
}

// RegisterZone upserts one zone record.
func (r *ZoneRegistry) RegisterZone(zone schema.DeliveryZone) error {
	var existing schema.DeliveryZone
	err := r.ormDB.Where("id = ?", zone.ID).First(&existing).Error
	if gorm.IsRecordNotFoundError(err) {
		return r.ormDB.Create(&zone).Error
	}
	if err != nil {
		return err
	}
	return r.ormDB.Save(&zone).Error
}

// DeactivateZone retires a zone; registry rows are never deleted.
func (r *ZoneRegistry) DeactivateZone(id string) error {
	result := r.ormDB.Model(&schema.DeliveryZone{}).
		Where("id = ?", id).
		Update("active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrZoneNotFound
	}
	return nil
}
