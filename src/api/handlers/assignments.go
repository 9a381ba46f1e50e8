package handlers

import (
	"encoding/json"
	"net/http"

	"assettrack/src/schemas"
	"assettrack/src/utils"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetAllAssignments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	assignments, err := h.Inventory.GetAllAssignments(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, assignments, http.StatusOK)
}

func (h *Handler) GetAssignmentByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	assignment, err := h.Inventory.GetAssignmentByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, assignment, http.StatusOK)
}

func (h *Handler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	var assignment schemas.Assignment
	if err := json.NewDecoder(r.Body).Decode(&assignment); err != nil {
		h.HandleErrors(w, utils.BadRequest("malformed assignment payload"))
		return
	}

	created, err := h.Inventory.CreateAssignment(ctx, &assignment)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, created, http.StatusCreated)
}

func (h *Handler) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	var assignment schemas.Assignment
	if err := json.NewDecoder(r.Body).Decode(&assignment); err != nil {
		h.HandleErrors(w, utils.BadRequest("malformed assignment payload"))
		return
	}

	updated, err := h.Inventory.UpdateAssignment(ctx, chi.URLParam(r, "id"), &assignment)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, updated, http.StatusOK)
}

func (h *Handler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	if err := h.Inventory.DeleteAssignment(ctx, chi.URLParam(r, "id")); err != nil {
		h.HandleErrors(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AssignAsset hands an available asset to a person. The heavy lifting lives in
// the assets controller so the workflow can be tested without HTTP plumbing.
func (h *Handler) AssignAsset(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	var req schemas.AssignAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, utils.BadRequest("malformed assignment payload"))
		return
	}

	assignment, err := h.Assets.AssignAsset(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, assignment, http.StatusCreated)
}

func (h *Handler) ReturnAsset(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	assignment, err := h.Assets.ReturnAsset(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, assignment, http.StatusOK)
}
