package core

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type Orchestrator struct {
	logger  *zap.Logger
	workers []Worker
}

func NewOrchestrator(logger *zap.Logger, workers []Worker) *Orchestrator {
	return &Orchestrator{logger, workers}
}

func (o *Orchestrator) Start(ctx context.Context) (*cron.Cron, error) {
	c := cron.New()

	for _, worker := range o.workers {
		_, err := c.AddFunc(worker.Schedule(), func() {
			if worker.Ready(time.Now()) {
				go worker.Execute()
			}
		})

		if err != nil {
			o.logger.Error("Error adding cron job", zap.Error(err))
			return nil, err
		}
	}

	c.Start()
	return c, nil
}
