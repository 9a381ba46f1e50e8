package controllers

import (
	"context"
	"time"

	"assettrack/src/models"
	"assettrack/src/schemas"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ReportScheduleControllerI interface {
	GetAllReportSchedules(ctx context.Context) ([]*schemas.ReportScheduleResponse, error)
	GetReportScheduleByID(ctx context.Context, ID uint) (*schemas.ReportScheduleResponse, error)
	CreateReportSchedule(ctx context.Context, req *schemas.CreateReportScheduleRequest) (*schemas.ReportScheduleResponse, error)
	UpdateReportSchedule(ctx context.Context, req *schemas.UpdateReportScheduleRequest) (*schemas.ReportScheduleResponse, error)
	DeleteReportSchedule(ctx context.Context, id uint) error
	MarkReportScheduleRun(ctx context.Context, id uint, ranAt time.Time) error
}

type ReportScheduleController struct {
	DB *pgxpool.Pool
}

func NewReportScheduleController(db *pgxpool.Pool) *ReportScheduleController {
	return &ReportScheduleController{DB: db}
}

func scheduleResponse(rs *models.ReportSchedule) *schemas.ReportScheduleResponse {
	return &schemas.ReportScheduleResponse{
		ID:        rs.ID,
		Kind:      schemas.ReportKind(rs.Kind),
		CronTime:  rs.CronTime,
		Format:    rs.Format,
		LastRunAt: rs.LastRunAt,
		CreatedAt: rs.CreatedAt,
		UpdatedAt: rs.UpdatedAt,
		Active:    rs.Active,
	}
}

// GetAllReportSchedules loads every configured schedule.
func (rc *ReportScheduleController) GetAllReportSchedules(ctx context.Context) ([]*schemas.ReportScheduleResponse, error) {
	rows, err := rc.DB.Query(ctx, `
		SELECT
			id,
			kind,
			cron_time,
			format,
			COALESCE(last_run_at, '1970-01-01'::timestamp) as last_run_at,
			COALESCE(created_at, NOW()) as created_at,
			COALESCE(updated_at, NOW()) as updated_at,
			active
		FROM report_schedules`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var responses []*schemas.ReportScheduleResponse
	for rows.Next() {
		var rs models.ReportSchedule
		err := rows.Scan(
			&rs.ID,
			&rs.Kind,
			&rs.CronTime,
			&rs.Format,
			&rs.LastRunAt,
			&rs.CreatedAt,
			&rs.UpdatedAt,
			&rs.Active,
		)
		if err != nil {
			return nil, err
		}
		responses = append(responses, scheduleResponse(&rs))
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}

// GetReportScheduleByID loads a single schedule.
func (rc *ReportScheduleController) GetReportScheduleByID(ctx context.Context, ID uint) (*schemas.ReportScheduleResponse, error) {
	var rs models.ReportSchedule
	err := rc.DB.QueryRow(ctx, `
		SELECT
			id,
			kind,
			cron_time,
			format,
			COALESCE(last_run_at, '1970-01-01'::timestamp) as last_run_at,
			COALESCE(created_at, NOW()) as created_at,
			COALESCE(updated_at, NOW()) as updated_at,
			active
		FROM report_schedules WHERE id = $1`, ID).Scan(
		&rs.ID,
		&rs.Kind,
		&rs.CronTime,
		&rs.Format,
		&rs.LastRunAt,
		&rs.CreatedAt,
		&rs.UpdatedAt,
		&rs.Active,
	)
	if err != nil {
		return nil, err
	}

	return scheduleResponse(&rs), nil
}

// CreateReportSchedule inserts a new active schedule.
func (rc *ReportScheduleController) CreateReportSchedule(ctx context.Context, req *schemas.CreateReportScheduleRequest) (*schemas.ReportScheduleResponse, error) {
	if _, err := schemas.ParseReportKind(string(req.Kind)); err != nil {
		return nil, err
	}

	var rs models.ReportSchedule
	err := rc.DB.QueryRow(ctx, `
		INSERT INTO report_schedules (kind, cron_time, format, active, created_at, updated_at)
		VALUES ($1, $2, $3, true, NOW(), NOW())
		RETURNING id, kind, cron_time, format, COALESCE(last_run_at, '1970-01-01'::timestamp), created_at, updated_at, active`,
		string(req.Kind), req.CronTime, req.Format).Scan(
		&rs.ID,
		&rs.Kind,
		&rs.CronTime,
		&rs.Format,
		&rs.LastRunAt,
		&rs.CreatedAt,
		&rs.UpdatedAt,
		&rs.Active,
	)
	if err != nil {
		return nil, err
	}

	return scheduleResponse(&rs), nil
}

// UpdateReportSchedule applies the non-nil fields of the request.
func (rc *ReportScheduleController) UpdateReportSchedule(ctx context.Context, req *schemas.UpdateReportScheduleRequest) (*schemas.ReportScheduleResponse, error) {
	current, err := rc.GetReportScheduleByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	kind := string(current.Kind)
	if req.Kind != nil {
		if _, err := schemas.ParseReportKind(string(*req.Kind)); err != nil {
			return nil, err
		}
		kind = string(*req.Kind)
	}
	cronTime := current.CronTime
	if req.CronTime != nil {
		cronTime = *req.CronTime
	}
	format := current.Format
	if req.Format != nil {
		format = *req.Format
	}
	active := current.Active
	if req.Active != nil {
		active = *req.Active
	}

	_, err = rc.DB.Exec(ctx, `
		UPDATE report_schedules
		SET kind = $1, cron_time = $2, format = $3, active = $4, updated_at = NOW()
		WHERE id = $5`,
		kind, cronTime, format, active, req.ID)
	if err != nil {
		return nil, err
	}

	return rc.GetReportScheduleByID(ctx, req.ID)
}

// DeleteReportSchedule removes a schedule.
func (rc *ReportScheduleController) DeleteReportSchedule(ctx context.Context, id uint) error {
	_, err := rc.DB.Exec(ctx, `DELETE FROM report_schedules WHERE id = $1`, id)
	return err
}

// MarkReportScheduleRun records a completed scheduled run.
func (rc *ReportScheduleController) MarkReportScheduleRun(ctx context.Context, id uint, ranAt time.Time) error {
	_, err := rc.DB.Exec(ctx, `UPDATE report_schedules SET last_run_at = $1, updated_at = NOW() WHERE id = $2`, ranAt, id)
	return err
}
