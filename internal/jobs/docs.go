// Package jobs provides scheduled background tasks for the order service.
//
// Jobs are cron driven (github.com/robfig/cron/v3, seconds-enabled parser)
// and call into the application layer through query or command handlers.
//
// # Available Jobs
//
// ProfitReportJob runs GetProfitByMonth for the current year and logs one
// line per month with completed orders. The default schedule is
// DefaultProfitReportSchedule.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(profitHandler, cfg.ProfitReportSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failing run is logged and the schedule continues. An invalid schedule is
// reported by StartAll.
package jobs
