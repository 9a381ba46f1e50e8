package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"assettrack/src/api/controllers"
	"assettrack/src/api/handlers"
	"assettrack/src/schemas"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReportsController struct{}

func (s *stubReportsController) GetReport(ctx context.Context, kind schemas.ReportKind) (*schemas.Report, error) {
	return &schemas.Report{
		Title:       "Asset Inventory Report",
		GeneratedAt: time.Now(),
		Columns:     []schemas.ReportColumn{{Header: "Name", Key: "name"}},
		Rows:        []schemas.ReportRow{{"name": "Dell Laptop"}},
		Summary:     schemas.Summary{"Total Assets": 1},
	}, nil
}

func (s *stubReportsController) GetRenderedReport(ctx context.Context, kind schemas.ReportKind) (*schemas.RenderedReport, error) {
	return &schemas.RenderedReport{
		Title:   "Asset Inventory Report",
		Headers: []string{"Name"},
		Rows:    [][]string{{"Dell Laptop"}},
	}, nil
}

func (s *stubReportsController) GenerateReportFile(ctx context.Context, kind schemas.ReportKind, format string) (*controllers.ReportFile, error) {
	return &controllers.ReportFile{
		Name:        "Asset_Inventory_Report_2026-08-31.csv",
		ContentType: "text/csv;charset=utf-8",
		Content:     []byte(`"Name"` + "\n" + `"Dell Laptop"`),
	}, nil
}

func newReportsRouter() *chi.Mux {
	h := &handlers.Handler{
		Reports: &stubReportsController{},
		Logger:  logrus.New(),
	}
	router := chi.NewRouter()
	router.Get("/api/reports/{kind}", h.GetReport)
	router.Get("/api/reports/{kind}/file", h.GetReportFile)
	return router
}

func TestGetReportHandler(t *testing.T) {
	router := newReportsRouter()

	t.Run("returns the structured report", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/reports/asset-inventory", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var report schemas.Report
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
		assert.Equal(t, "Asset Inventory Report", report.Title)
		assert.Len(t, report.Rows, 1)
	})

	t.Run("rejects an unknown kind", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/reports/budget-forecast", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetReportFileHandler(t *testing.T) {
	router := newReportsRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/reports/asset-inventory/file", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv;charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Asset_Inventory_Report_2026-08-31.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Contains(t, rec.Body.String(), `"Dell Laptop"`)
}
