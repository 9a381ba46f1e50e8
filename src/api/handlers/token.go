package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"assettrack/src/schemas"
	"assettrack/src/utils"

	"github.com/go-chi/jwtauth"
)

func (h *Handler) PostToken(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	var tokenRequest = new(schemas.TokenRequest)
	err := json.NewDecoder(r.Body).Decode(tokenRequest)
	if err != nil {
		h.HandleErrors(w, utils.BadRequest("malformed login request"))
		return
	}

	tokenResponse, err := h.Token.PostToken(ctx, tokenRequest.Email, tokenRequest.Password)
	if err != nil {
		h.Logger.Warning(err)
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, tokenResponse, http.StatusOK)
}

// GetProfile returns the session profile of the calling user.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	sessionID, err := sessionIDFromContext(r.Context())
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	profile, err := h.Token.GetProfile(ctx, sessionID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, profile, http.StatusOK)
}

// DeleteToken logs the calling user out by dropping their session.
func (h *Handler) DeleteToken(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	sessionID, err := sessionIDFromContext(r.Context())
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	if err := h.Token.DeleteSession(ctx, sessionID); err != nil {
		h.HandleErrors(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func sessionIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", utils.Unauthorized("auth token not detected")
	}
	sessionID, ok := claims["sid"].(string)
	if !ok || sessionID == "" {
		return "", utils.Unauthorized("auth token not detected")
	}
	return sessionID, nil
}
