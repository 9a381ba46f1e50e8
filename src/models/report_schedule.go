package models

import (
	"time"
)

// ReportSchedule is a recurring report run: which report kind, when (cron
// expression) and which output format the exported file uses.
type ReportSchedule struct {
	ID        uint      `db:"id"`
	Kind      string    `db:"kind"`
	CronTime  string    `db:"cron_time"`
	Format    string    `db:"format"`
	LastRunAt time.Time `db:"last_run_at"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
	Active    bool      `db:"active"`
}

func (ReportSchedule) TableName() string {
	return "report_schedules"
}
