package handlers

import (
	"encoding/json"
	"net/http"

	"assettrack/src/schemas"
	"assettrack/src/utils"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetAllLocations(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	locations, err := h.Inventory.GetAllLocations(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, locations, http.StatusOK)
}

func (h *Handler) GetLocationByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	location, err := h.Inventory.GetLocationByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, location, http.StatusOK)
}

func (h *Handler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	var location schemas.Location
	if err := json.NewDecoder(r.Body).Decode(&location); err != nil {
		h.HandleErrors(w, utils.BadRequest("malformed location payload"))
		return
	}

	created, err := h.Inventory.CreateLocation(ctx, &location)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, created, http.StatusCreated)
}

func (h *Handler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	var location schemas.Location
	if err := json.NewDecoder(r.Body).Decode(&location); err != nil {
		h.HandleErrors(w, utils.BadRequest("malformed location payload"))
		return
	}

	updated, err := h.Inventory.UpdateLocation(ctx, chi.URLParam(r, "id"), &location)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, updated, http.StatusOK)
}

func (h *Handler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	if err := h.Inventory.DeleteLocation(ctx, chi.URLParam(r, "id")); err != nil {
		h.HandleErrors(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
