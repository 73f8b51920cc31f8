package sharelinks

import (
	"time"

	"go.uber.org/zap"

	"shipment-proof-service/services"
)

// Worker periodically removes expired share links. It is the only background
// job the service runs; everything else is request-driven.
type Worker struct {
	logger   *zap.Logger
	links    *services.ShareLinkService
	schedule string
	busy     bool
}

func NewWorker(logger *zap.Logger, links *services.ShareLinkService, schedule string) *Worker {
	return &Worker{
		logger:   logger,
		links:    links,
		schedule: schedule,
	}
}

func (w *Worker) Schedule() string {
	return w.schedule
}

func (w *Worker) Ready(time.Time) bool {
	return !w.busy
}

func (w *Worker) Execute() {
	w.busy = true
	defer func() {
		w.busy = false
	}()

	removed, err := w.links.CleanupExpired()
	if err != nil {
		w.logger.Error("Failed to clean up expired share links", zap.Error(err))
		return
	}

	if removed == 0 {
		w.logger.Info("No expired share links found. Cleanup work completed 😴")
		return
	}

	w.logger.Info("Expired share links removed",
		zap.Int64("count", removed),
	)
}
