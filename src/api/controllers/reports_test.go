package controllers_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"assettrack/src/api/controllers"
	"assettrack/src/schemas"
	"assettrack/src/services"
	"assettrack/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReportService struct {
	report *schemas.Report
	err    error
}

func (s *stubReportService) Generate(ctx context.Context, kind schemas.ReportKind) (*schemas.Report, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.report, nil
}

func stubReport() *schemas.Report {
	return &schemas.Report{
		Title:       "Asset Inventory Report",
		GeneratedAt: time.Now(),
		Columns: []schemas.ReportColumn{
			{Header: "Name", Key: "name"},
			{Header: "Value", Key: "value", Format: schemas.FormatCurrency},
		},
		Rows: []schemas.ReportRow{
			{"name": "Dell Laptop", "value": "1200.5"},
		},
		Summary: schemas.Summary{"Total Assets": 1},
	}
}

func TestGenerateReportFile(t *testing.T) {
	controller := controllers.NewReportsController(
		&stubReportService{report: stubReport()},
		services.NewExportService(),
	)

	t.Run("defaults to CSV", func(t *testing.T) {
		file, err := controller.GenerateReportFile(context.Background(), schemas.ReportAssetInventory, "")
		require.NoError(t, err)

		assert.Equal(t, "text/csv;charset=utf-8", file.ContentType)
		expectedName := fmt.Sprintf("Asset_Inventory_Report_%s.csv", time.Now().Format(utils.ShortDashDateLayout))
		assert.Equal(t, expectedName, file.Name)
		assert.True(t, strings.HasPrefix(string(file.Content), `"Name","Value"`))
	})

	t.Run("explicit format is case insensitive", func(t *testing.T) {
		file, err := controller.GenerateReportFile(context.Background(), schemas.ReportAssetInventory, "csv")
		require.NoError(t, err)
		assert.Equal(t, "text/csv;charset=utf-8", file.ContentType)
	})

	t.Run("XLSX", func(t *testing.T) {
		file, err := controller.GenerateReportFile(context.Background(), schemas.ReportAssetInventory, "XLSX")
		require.NoError(t, err)
		assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", file.ContentType)
		assert.True(t, strings.HasSuffix(file.Name, ".xlsx"))
		assert.NotEmpty(t, file.Content)
	})

	t.Run("PDF", func(t *testing.T) {
		file, err := controller.GenerateReportFile(context.Background(), schemas.ReportAssetInventory, "PDF")
		require.NoError(t, err)
		assert.Equal(t, "application/pdf", file.ContentType)
		assert.NotEmpty(t, file.Content)
	})

	t.Run("unknown format is rejected", func(t *testing.T) {
		file, err := controller.GenerateReportFile(context.Background(), schemas.ReportAssetInventory, "DOCX")
		assert.Nil(t, file)
		require.Error(t, err)
		httpErr, ok := err.(*utils.HTTPError)
		require.True(t, ok)
		assert.Equal(t, 400, httpErr.Code)
	})
}

func TestGetRenderedReport(t *testing.T) {
	controller := controllers.NewReportsController(
		&stubReportService{report: stubReport()},
		services.NewExportService(),
	)

	rendered, err := controller.GetRenderedReport(context.Background(), schemas.ReportAssetInventory)
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Value"}, rendered.Headers)
	require.Len(t, rendered.Rows, 1)
	assert.Equal(t, []string{"Dell Laptop", "$1200.50"}, rendered.Rows[0])
}

func TestGenerateReportFilePropagatesErrors(t *testing.T) {
	controller := controllers.NewReportsController(
		&stubReportService{err: utils.ServiceUnavailable("No response received from server. Please check your connection.")},
		services.NewExportService(),
	)

	file, err := controller.GenerateReportFile(context.Background(), schemas.ReportAssetInventory, "")
	assert.Nil(t, file)
	require.Error(t, err)
}
