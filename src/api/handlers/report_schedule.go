package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"assettrack/src/schemas"
	"assettrack/src/utils"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetAllReportSchedules(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	schedules, err := h.Schedules.GetAllReportSchedules(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, schedules, http.StatusOK)
}

func (h *Handler) GetReportScheduleByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 0 {
		h.HandleErrors(w, utils.BadRequest("invalid schedule id"))
		return
	}

	schedule, err := h.Schedules.GetReportScheduleByID(ctx, uint(id))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, schedule, http.StatusOK)
}

func (h *Handler) CreateReportSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	var req schemas.CreateReportScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, utils.BadRequest("malformed schedule payload"))
		return
	}

	created, err := h.Schedules.CreateReportSchedule(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, created, http.StatusCreated)
}

func (h *Handler) UpdateReportSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 0 {
		h.HandleErrors(w, utils.BadRequest("invalid schedule id"))
		return
	}

	var req schemas.UpdateReportScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, utils.BadRequest("malformed schedule payload"))
		return
	}
	req.ID = uint(id)

	updated, err := h.Schedules.UpdateReportSchedule(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, updated, http.StatusOK)
}

func (h *Handler) DeleteReportSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 0 {
		h.HandleErrors(w, utils.BadRequest("invalid schedule id"))
		return
	}

	if err := h.Schedules.DeleteReportSchedule(ctx, uint(id)); err != nil {
		h.HandleErrors(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
