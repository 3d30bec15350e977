package jobs

import (
	"context"
	"log/slog"

	"pizzashop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultKitchenSchedule runs a kitchen round every five seconds.
const DefaultKitchenSchedule = "*/5 * * * * *"

// OrderAdvancer processes every unready order once.
type OrderAdvancer interface {
	Handle(ctx context.Context, cmd commands.AdvanceOrdersCommand) error
}

// KitchenJob moves open orders one phase forward on a cron schedule.
// A round that is still running when the next one is due is skipped.
type KitchenJob struct {
	handler  OrderAdvancer
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewKitchenJob creates the job. schedule is a six-field cron spec with seconds;
// an empty schedule means DefaultKitchenSchedule.
func NewKitchenJob(handler OrderAdvancer, schedule string, logger *slog.Logger) *KitchenJob {
	if schedule == "" {
		schedule = DefaultKitchenSchedule
	}

	return &KitchenJob{
		handler:  handler,
		schedule: schedule,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger.With("component", "kitchen_job"),
	}
}

func (j *KitchenJob) Name() string {
	return "kitchen"
}

// Start registers the round with the scheduler and starts it.
func (j *KitchenJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		_ = j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Kitchen job started", "schedule", j.schedule)
	return nil
}

// RunOnce performs a single kitchen round outside the schedule.
func (j *KitchenJob) RunOnce(ctx context.Context) error {
	if err := j.handler.Handle(ctx, commands.NewAdvanceOrdersCommand()); err != nil {
		j.logger.ErrorContext(ctx, "Kitchen job failed", "error", err)
		return err
	}

	j.logger.DebugContext(ctx, "Kitchen round completed")
	return nil
}

// Stop stops the scheduler and waits for a running round to finish.
func (j *KitchenJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Kitchen job stopped")
}
