package handlers

import (
	"encoding/json"
	"net/http"

	"assettrack/src/schemas"
	"assettrack/src/utils"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetAllMaintenanceRecords(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	records, err := h.Inventory.GetAllMaintenance(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, records, http.StatusOK)
}

func (h *Handler) GetMaintenanceRecordByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	record, err := h.Inventory.GetMaintenanceByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, record, http.StatusOK)
}

func (h *Handler) CreateMaintenanceRecord(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	var record schemas.MaintenanceRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		h.HandleErrors(w, utils.BadRequest("malformed maintenance payload"))
		return
	}

	created, err := h.Inventory.CreateMaintenance(ctx, &record)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, created, http.StatusCreated)
}

func (h *Handler) UpdateMaintenanceRecord(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	var record schemas.MaintenanceRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		h.HandleErrors(w, utils.BadRequest("malformed maintenance payload"))
		return
	}

	updated, err := h.Inventory.UpdateMaintenance(ctx, chi.URLParam(r, "id"), &record)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, updated, http.StatusOK)
}

func (h *Handler) DeleteMaintenanceRecord(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	if err := h.Inventory.DeleteMaintenance(ctx, chi.URLParam(r, "id")); err != nil {
		h.HandleErrors(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
