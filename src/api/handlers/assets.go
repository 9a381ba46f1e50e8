package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"assettrack/src/schemas"
	"assettrack/src/utils"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	return utils.WithLogger(ctx, h.Logger), cancel
}

func (h *Handler) GetAllAssets(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	if query := r.URL.Query().Get("q"); query != "" {
		assets, err := h.Inventory.SearchAssets(ctx, query)
		if err != nil {
			h.HandleErrors(w, err)
			return
		}
		h.respond(w, r, assets, http.StatusOK)
		return
	}

	assets, err := h.Inventory.GetAllAssets(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, assets, http.StatusOK)
}

func (h *Handler) GetAssetByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	asset, err := h.Inventory.GetAssetByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, asset, http.StatusOK)
}

func (h *Handler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	var asset schemas.Asset
	if err := json.NewDecoder(r.Body).Decode(&asset); err != nil {
		h.HandleErrors(w, utils.BadRequest("malformed asset payload"))
		return
	}

	created, err := h.Inventory.CreateAsset(ctx, &asset)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, created, http.StatusCreated)
}

func (h *Handler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	var asset schemas.Asset
	if err := json.NewDecoder(r.Body).Decode(&asset); err != nil {
		h.HandleErrors(w, utils.BadRequest("malformed asset payload"))
		return
	}

	updated, err := h.Inventory.UpdateAsset(ctx, chi.URLParam(r, "id"), &asset)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, updated, http.StatusOK)
}

func (h *Handler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	if err := h.Inventory.DeleteAsset(ctx, chi.URLParam(r, "id")); err != nil {
		h.HandleErrors(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
