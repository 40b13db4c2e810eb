package cron

import (
	log "log/slog"

	"panganjawara/internal/job"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine          *cron.Cron
	counterSyncJob  *job.CounterSyncJob
	priceScrapeJob  *job.PriceScrapeJob
	mediaCleanupJob *job.MediaCleanupJob
	eventStatusJob  *job.EventStatusJob
}

func NewCronManager(
	counterSyncJob *job.CounterSyncJob,
	priceScrapeJob *job.PriceScrapeJob,
	mediaCleanupJob *job.MediaCleanupJob,
	eventStatusJob *job.EventStatusJob,
) *Manager {
	return &Manager{
		engine:          cron.New(cron.WithSeconds()),
		counterSyncJob:  counterSyncJob,
		priceScrapeJob:  priceScrapeJob,
		mediaCleanupJob: mediaCleanupJob,
		eventStatusJob:  eventStatusJob,
	}
}

// RegisterJobs mendaftarkan semua tugas terjadwal portal.
func (s *Manager) RegisterJobs() error {
	// flush penghitung tiap menit supaya kolom denormalisasi tidak
	// tertinggal jauh dari redis
	if _, err := s.engine.AddJob("0 * * * * *", s.counterSyncJob); err != nil {
		return err
	}
	// harga komoditas diperbarui tiap pagi sebelum jam pasar
	if _, err := s.engine.AddJob("0 0 5 * * *", s.priceScrapeJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob("@daily", s.mediaCleanupJob); err != nil {
		return err
	}
	// acara yang sudah lewat ditutup tiap jam
	if _, err := s.engine.AddJob("@hourly", s.eventStatusJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("mesin cron dimulai")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("mesin cron dihentikan")
	s.engine.Stop()
}
