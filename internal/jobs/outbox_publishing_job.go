package jobs

import (
	"context"

	"pharmacygo/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	OutboxSchedule  = "*/2 * * * * *"
	OutboxBatchSize = 100
)

type OutboxPublisher interface {
	Handle(ctx context.Context, cmd commands.PublishOutboxCommand) (int, error)
}

// OutboxPublishingJob hands stored domain events to the message bus every
// two seconds.
type OutboxPublishingJob struct {
	handler OutboxPublisher
	cron    *cron.Cron
	logger  *zap.Logger
}

func NewOutboxPublishingJob(handler OutboxPublisher, logger *zap.Logger) *OutboxPublishingJob {
	return &OutboxPublishingJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:  logger.With(zap.String("component", "outbox_publishing_job")),
	}
}

func (j *OutboxPublishingJob) Start() error {
	if _, err := j.cron.AddFunc(OutboxSchedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Outbox publishing job started", zap.String("schedule", OutboxSchedule))
	return nil
}

// Run publishes one batch.
func (j *OutboxPublishingJob) Run(ctx context.Context) {
	cmd, err := commands.NewPublishOutboxCommand(OutboxBatchSize)
	if err != nil {
		j.logger.Error("Outbox publishing job misconfigured", zap.Error(err))
		return
	}

	published, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.Error("Outbox publishing job failed", zap.Int("published", published), zap.Error(err))
		return
	}
	if published > 0 {
		j.logger.Debug("Outbox messages published", zap.Int("count", published))
	}
}

// Stop waits for a running batch to finish.
func (j *OutboxPublishingJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Outbox publishing job stopped")
}
