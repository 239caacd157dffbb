package jobs

import (
	"context"
	"log/slog"
	"time"

	"orderservice/internal/core/application/usecases/queries"
	"orderservice/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// DefaultProfitReportSchedule runs the report daily at 06:00 server time.
const DefaultProfitReportSchedule = "0 0 6 * * *"

// ProfitReporter is the query handler the report is built from.
type ProfitReporter interface {
	Handle(ctx context.Context, query queries.GetProfitByMonthQuery) ([]services.ProfitByMonth, error)
}

// ProfitReportJob logs the monthly profit of completed orders for the
// current year on a cron schedule.
type ProfitReportJob struct {
	handler  ProfitReporter
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
	now      func() time.Time
}

// NewProfitReportJob creates a job that runs handler on schedule, a six-field
// cron expression (seconds first) or a descriptor such as "@daily".
func NewProfitReportJob(handler ProfitReporter, schedule string, logger *slog.Logger) *ProfitReportJob {
	return &ProfitReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "profit_report_job"),
		now:      time.Now,
	}
}

// Start registers the report on its schedule and starts the scheduler.
func (j *ProfitReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Profit report job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Profit report job started", "schedule", j.schedule)
	return nil
}

// Run builds the report for the current year once.
func (j *ProfitReportJob) Run(ctx context.Context) error {
	now := j.now().UTC()
	year := now.Year()

	query, err := queries.NewGetProfitByMonthQuery(&year, nil, now)
	if err != nil {
		return err
	}

	rows, err := j.handler.Handle(ctx, query)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		j.logger.InfoContext(ctx, "No completed orders this year", "year", year)
		return nil
	}

	for _, row := range rows {
		j.logger.InfoContext(ctx, "Monthly profit",
			"year", row.Year,
			"month", row.MonthName,
			"profit", row.TotalProfit.StringFixed(2),
			"orders", row.OrderCount,
		)
	}
	return nil
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *ProfitReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Profit report job stopped")
}
