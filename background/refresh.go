package background

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// RefreshZones reloads every zone record from the zone source and
// swaps the snapshot. Readers of the store keep whatever snapshot they
// already hold.
func (m *BackgroundManager) RefreshZones() error {
	zones, err := m.source.LoadZones(context.Background())
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": "background",
			"error":  err,
		}).Error("load zones for refresh")
		return err
	}

	m.zones.Refresh(zones)

	log.WithFields(log.Fields{
		"prefix": "background",
		"zones":  len(zones),
	}).Info("zone snapshot refreshed")

	return nil
}
