package controllers

import (
	"context"
	"fmt"
	"strings"

	"assettrack/src/schemas"
	"assettrack/src/services"
	"assettrack/src/utils"
)

// ReportFile is an export ready to be served as an attachment.
type ReportFile struct {
	Name        string
	ContentType string
	Content     []byte
}

type ReportsControllerI interface {
	GetReport(ctx context.Context, kind schemas.ReportKind) (*schemas.Report, error)
	GetRenderedReport(ctx context.Context, kind schemas.ReportKind) (*schemas.RenderedReport, error)
	GenerateReportFile(ctx context.Context, kind schemas.ReportKind, format string) (*ReportFile, error)
}

// ReportsController glues the generators to the renderer/exporter. Only file
// generation lives here; generators never produce file output themselves.
type ReportsController struct {
	Reports services.ReportServiceI
	Export  *services.ExportService
}

func NewReportsController(reports services.ReportServiceI, export *services.ExportService) *ReportsController {
	return &ReportsController{Reports: reports, Export: export}
}

func (rc *ReportsController) GetReport(ctx context.Context, kind schemas.ReportKind) (*schemas.Report, error) {
	return rc.Reports.Generate(ctx, kind)
}

func (rc *ReportsController) GetRenderedReport(ctx context.Context, kind schemas.ReportKind) (*schemas.RenderedReport, error) {
	report, err := rc.Reports.Generate(ctx, kind)
	if err != nil {
		return nil, err
	}
	return rc.Export.Render(report), nil
}

func (rc *ReportsController) GenerateReportFile(ctx context.Context, kind schemas.ReportKind, format string) (*ReportFile, error) {
	report, err := rc.Reports.Generate(ctx, kind)
	if err != nil {
		return nil, err
	}

	switch strings.ToUpper(format) {
	case "", "CSV":
		return &ReportFile{
			Name:        rc.Export.FileName(report, "csv"),
			ContentType: services.CSVContentType,
			Content:     rc.Export.GenerateCSV(report),
		}, nil
	case "XLSX":
		file, err := rc.Export.GenerateXLSX(report)
		if err != nil {
			return nil, err
		}
		buffer, err := file.WriteToBuffer()
		if err != nil {
			return nil, err
		}
		return &ReportFile{
			Name:        rc.Export.FileName(report, "xlsx"),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Content:     buffer.Bytes(),
		}, nil
	case "PDF":
		content, err := rc.Export.GeneratePDF(report)
		if err != nil {
			return nil, err
		}
		return &ReportFile{
			Name:        rc.Export.FileName(report, "pdf"),
			ContentType: "application/pdf",
			Content:     content,
		}, nil
	default:
		return nil, utils.BadRequest(fmt.Sprintf("unsupported report format: %q", format))
	}
}
