package background

import (
	"errors"

	"github.com/RichardKnop/machinery/v1"

	"github.com/kiranacart/delivery-api/store"
)

const (
	// TaskRefreshZones is enqueued by the sync scheduler whenever zone
	// records change upstream.
	TaskRefreshZones = "refresh_delivery_zones"
)

// BackgroundManager runs the zone maintenance worker. It shares the
// API server's snapshot store: a refresh task swaps the snapshot that
// serves live detection traffic.
type BackgroundManager struct {
	zones  store.ZoneStore
	source store.ZoneSource

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(zones store.ZoneStore, source store.ZoneSource, taskServer *machinery.Server) *BackgroundManager {
	return &BackgroundManager{
		zones:      zones,
		source:     source,
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}

	if err := m.RegisterTask(TaskRefreshZones, m.RefreshZones); err != nil {
		return err
	}

	m.worker = m.taskServer.NewWorker("kirana-worker", 5)
	return m.worker.Launch()
}
