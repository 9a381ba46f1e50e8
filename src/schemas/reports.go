package schemas

import (
	"fmt"
	"time"
)

// ReportKind identifies one of the fixed set of reports the service can
// generate. Every kind is handled by a single dispatch switch so that adding
// a kind without a generator fails loudly.
type ReportKind string

const (
	ReportAssetInventory      ReportKind = "asset-inventory"
	ReportMaintenanceSchedule ReportKind = "maintenance-schedule"
	ReportAssetValue          ReportKind = "asset-value"
	ReportAssignmentHistory   ReportKind = "assignment-history"
	ReportDepreciation        ReportKind = "depreciation"
	ReportAuditTrail          ReportKind = "audit-trail"
)

// ReportKinds lists every supported kind in presentation order.
var ReportKinds = []ReportKind{
	ReportAssetInventory,
	ReportMaintenanceSchedule,
	ReportAssetValue,
	ReportAssignmentHistory,
	ReportDepreciation,
	ReportAuditTrail,
}

// ParseReportKind validates a kind received over the wire.
func ParseReportKind(s string) (ReportKind, error) {
	for _, kind := range ReportKinds {
		if string(kind) == s {
			return kind, nil
		}
	}
	return "", fmt.Errorf("unknown report kind: %q", s)
}

// ColumnFormat tags a column with how its raw values should be rendered.
type ColumnFormat string

const (
	FormatNone     ColumnFormat = ""
	FormatCurrency ColumnFormat = "currency"
	FormatDate     ColumnFormat = "date"
	FormatDateTime ColumnFormat = "datetime"
)

// ReportColumn describes one column of a generated report.
type ReportColumn struct {
	Header string       `json:"header"`
	Key    string       `json:"key"`
	Format ColumnFormat `json:"format,omitempty"`
}

// ReportRow is one raw joined record keyed by column key. Values are left
// unformatted; the renderer applies the column format tags.
type ReportRow map[string]interface{}

// Summary maps aggregate labels to values. A value is either a number or a
// nested map[string]float64 category breakdown.
type Summary map[string]interface{}

// Report is the normalized structure every generator produces and the
// renderer/exporter consumes.
type Report struct {
	Title       string         `json:"title"`
	GeneratedAt time.Time      `json:"generatedAt"`
	Columns     []ReportColumn `json:"columns"`
	Rows        []ReportRow    `json:"rows"`
	Summary     Summary        `json:"summary"`
}

// SummaryLine is one formatted label/value pair of a rendered summary.
// Nested category breakdowns expand to one line per nested key.
type SummaryLine struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// RenderedReport is a report with every cell formatted for display.
type RenderedReport struct {
	Title       string        `json:"title"`
	GeneratedAt time.Time     `json:"generatedAt"`
	Headers     []string      `json:"headers"`
	Rows        [][]string    `json:"rows"`
	Summary     []SummaryLine `json:"summary"`
}

// CreateReportScheduleRequest represents the request schema for creating a new report schedule.
type CreateReportScheduleRequest struct {
	Kind     ReportKind `json:"kind" validate:"required"`
	CronTime string     `json:"cron_time" validate:"required"`
	Format   string     `json:"format" validate:"required"`
}

// UpdateReportScheduleRequest represents the request schema for updating an existing report schedule.
type UpdateReportScheduleRequest struct {
	ID       uint        `json:"id"`
	Kind     *ReportKind `json:"kind"`
	CronTime *string     `json:"cron_time"`
	Format   *string     `json:"format"`
	Active   *bool       `json:"active"`
}

// ReportScheduleResponse represents the response schema for report schedule data.
type ReportScheduleResponse struct {
	ID        uint       `json:"id"`
	Kind      ReportKind `json:"kind"`
	CronTime  string     `json:"cron_time"`
	Format    string     `json:"format"`
	LastRunAt time.Time  `json:"last_run_at"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Active    bool       `json:"active"`
}
