package scheduler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"assettrack/src/api/controllers"
	"assettrack/src/schemas"

	"github.com/sirupsen/logrus"
)

// ReportRunner drives scheduled report exports. Each active schedule row gets
// its own cron task that generates the report file and drops it in OutputDir.
type ReportRunner struct {
	Schedules controllers.ReportScheduleControllerI
	Reports   controllers.ReportsControllerI
	OutputDir string
	Logger    *logrus.Logger

	tasks []*ScheduledTask
}

func NewReportRunner(
	schedules controllers.ReportScheduleControllerI,
	reports controllers.ReportsControllerI,
	outputDir string,
	logger *logrus.Logger,
) *ReportRunner {
	return &ReportRunner{
		Schedules: schedules,
		Reports:   reports,
		OutputDir: outputDir,
		Logger:    logger,
	}
}

// Start loads every schedule and registers a cron task per active row.
// Schedules added after startup are picked up on the next restart.
func (rr *ReportRunner) Start(ctx context.Context) error {
	if err := os.MkdirAll(rr.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to prepare report output dir: %w", err)
	}

	schedules, err := rr.Schedules.GetAllReportSchedules(ctx)
	if err != nil {
		return fmt.Errorf("failed to load report schedules: %w", err)
	}

	for _, schedule := range schedules {
		if !schedule.Active {
			continue
		}
		task, err := NewScheduledTask(schedule.CronTime, rr.runFunc(schedule))
		if err != nil {
			rr.Stop()
			return fmt.Errorf("failed to schedule report %s: %w", schedule.Kind, err)
		}
		rr.tasks = append(rr.tasks, task)
		rr.Logger.Infof("scheduled %s report (%s) with cron %q", schedule.Kind, schedule.Format, schedule.CronTime)
	}
	return nil
}

// Stop cancels every registered task.
func (rr *ReportRunner) Stop() {
	for _, task := range rr.tasks {
		task.Cancel()
	}
	rr.tasks = nil
}

func (rr *ReportRunner) runFunc(schedule *schemas.ReportScheduleResponse) func() {
	id := schedule.ID
	kind := schedule.Kind
	format := schedule.Format
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		file, err := rr.Reports.GenerateReportFile(ctx, kind, format)
		if err != nil {
			rr.Logger.Errorf("scheduled %s report run failed: %v", kind, err)
			return
		}

		path := filepath.Join(rr.OutputDir, file.Name)
		if err := os.WriteFile(path, file.Content, 0o644); err != nil {
			rr.Logger.Errorf("failed to write scheduled %s report to %s: %v", kind, path, err)
			return
		}

		if err := rr.Schedules.MarkReportScheduleRun(ctx, id, time.Now()); err != nil {
			rr.Logger.Warningf("failed to record run of schedule %d: %v", id, err)
		}
		rr.Logger.Infof("wrote scheduled %s report to %s", kind, path)
	}
}
