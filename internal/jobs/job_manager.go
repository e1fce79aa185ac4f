package jobs

import (
	"fmt"

	"go.uber.org/zap"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	outboxJob     *OutboxPublishingJob
	stockAgingJob *StockAgingJob
}

func NewJobManager(
	outboxPublisher OutboxPublisher,
	stockAger StockAger,
	logger *zap.Logger,
) *JobManager {
	return &JobManager{
		outboxJob:     NewOutboxPublishingJob(outboxPublisher, logger),
		stockAgingJob: NewStockAgingJob(stockAger, logger),
	}
}

// StartAll starts every job, or none of them.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox publishing job: %w", err)
	}

	if err := jm.stockAgingJob.Start(); err != nil {
		jm.outboxJob.Stop()
		return fmt.Errorf("failed to start stock aging job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stockAgingJob.Stop()
	jm.outboxJob.Stop()
}
