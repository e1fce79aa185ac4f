package jobs

import (
	"context"

	"pharmacygo/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StockAgingSchedule fires at 03:00 every night.
const StockAgingSchedule = "0 0 3 * * *"

type StockAger interface {
	Handle(ctx context.Context, cmd commands.AgeStockCommand) (int, error)
}

// StockAgingJob counts every stock line one day down towards its expiry.
type StockAgingJob struct {
	handler StockAger
	cron    *cron.Cron
	logger  *zap.Logger
}

func NewStockAgingJob(handler StockAger, logger *zap.Logger) *StockAgingJob {
	return &StockAgingJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With(zap.String("component", "stock_aging_job")),
	}
}

func (j *StockAgingJob) Start() error {
	if _, err := j.cron.AddFunc(StockAgingSchedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Stock aging job started", zap.String("schedule", StockAgingSchedule))
	return nil
}

func (j *StockAgingJob) Run(ctx context.Context) {
	aged, err := j.handler.Handle(ctx, commands.NewAgeStockCommand())
	if err != nil {
		j.logger.Error("Stock aging job failed", zap.Error(err))
		return
	}
	j.logger.Info("Stock aged", zap.Int("lines", aged))
}

func (j *StockAgingJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Stock aging job stopped")
}
