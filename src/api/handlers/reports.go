package handlers

import (
	"fmt"
	"net/http"

	"assettrack/src/schemas"
	"assettrack/src/utils"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetReportKinds(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, schemas.ReportKinds, http.StatusOK)
}

// GetReport returns the structured report for a kind: typed columns, raw rows
// and the summary block, before any rendering is applied.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	kind, err := schemas.ParseReportKind(chi.URLParam(r, "kind"))
	if err != nil {
		h.HandleErrors(w, utils.BadRequest(err.Error()))
		return
	}

	if r.URL.Query().Get("rendered") == "true" {
		rendered, err := h.Reports.GetRenderedReport(ctx, kind)
		if err != nil {
			h.HandleErrors(w, err)
			return
		}
		h.respond(w, r, rendered, http.StatusOK)
		return
	}

	report, err := h.Reports.GetReport(ctx, kind)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, report, http.StatusOK)
}

// GetReportFile streams the export as an attachment. Format comes from the
// query string and defaults to CSV.
func (h *Handler) GetReportFile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	kind, err := schemas.ParseReportKind(chi.URLParam(r, "kind"))
	if err != nil {
		h.HandleErrors(w, utils.BadRequest(err.Error()))
		return
	}

	file, err := h.Reports.GenerateReportFile(ctx, kind, r.URL.Query().Get("format"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Content)
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	summary, err := h.Dashboard.GetSummary(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, summary, http.StatusOK)
}
