package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/eloqagency/website/internal/strategy"
	"github.com/eloqagency/website/pkg/apperror"
	"github.com/eloqagency/website/pkg/logger"
)

type strategyRequest struct {
	Prompt string `json:"prompt"`
}

// SubmitStrategy handles the no-JS form post. It blocks until the flow
// resolves, then redirects back to the console.
func (h *Handler) SubmitStrategy(w http.ResponseWriter, r *http.Request) {
	id := h.visitorID(w, r)

	if _, err := h.submit(r, id, r.PostFormValue("prompt")); err != nil && !errors.Is(err, strategy.ErrEmptyPrompt) {
		h.log.Error("strategy submit failed", slog.String("visitor", id), logger.Error(err))
	}

	http.Redirect(w, r, "/#ai-strategy", http.StatusSeeOther)
}

// StrategyAPI runs one generation and returns the outcome as JSON.
func (h *Handler) StrategyAPI(w http.ResponseWriter, r *http.Request) {
	id := h.visitorID(w, r)

	var req strategyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperror.WriteJSON(w, h.log, apperror.NewBadRequest("request body must be JSON with a prompt field"))
		return
	}

	snap, err := h.submit(r, id, req.Prompt)
	if errors.Is(err, strategy.ErrEmptyPrompt) {
		apperror.WriteJSON(w, h.log, apperror.NewBadRequest("prompt is required"))
		return
	}
	if err != nil {
		apperror.WriteJSON(w, h.log, apperror.NewInternal("strategy failed", err))
		return
	}

	writeJSON(w, http.StatusOK, snap)
}

// StrategyStatus returns the visitor's current flow state.
func (h *Handler) StrategyStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.snapshot(r))
}

// submit runs the visitor's flow detached from the request, so a client
// disconnect does not abort a generation other requests may observe.
func (h *Handler) submit(r *http.Request, visitor, prompt string) (strategy.Snapshot, error) {
	ctx := context.WithoutCancel(r.Context())
	return h.flows.Flow(visitor).Submit(ctx, prompt)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
