package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/loanpulse/internal/entity"
)

// ScenarioStore is the read/delete surface the scenario endpoints need.
// Writes go through the scan pipeline, not this handler.
type ScenarioStore interface {
	FindByID(ctx context.Context, id string) (*entity.Scenario, error)
	ListByLead(ctx context.Context, leadID string) ([]*entity.Scenario, error)
	Delete(ctx context.Context, id string) error
	ListRatePoints(ctx context.Context, scenarioID string) ([]*entity.RatePoint, error)
}

type ScenarioHandler struct {
	Scenarios ScenarioStore
}

func NewScenarioHandler(scenarios ScenarioStore) *ScenarioHandler {
	return &ScenarioHandler{Scenarios: scenarios}
}

type scenarioResponse struct {
	*entity.Scenario
	RatePoints []*entity.RatePoint `json:"rate_points"`
}

func (h *ScenarioHandler) HandleListByLead(w http.ResponseWriter, r *http.Request) {
	scenarios, err := h.Scenarios.ListByLead(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	out := make([]scenarioResponse, 0, len(scenarios))
	for _, s := range scenarios {
		points, err := h.Scenarios.ListRatePoints(r.Context(), s.ID)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}
		out = append(out, scenarioResponse{Scenario: s, RatePoints: points})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *ScenarioHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	s, err := h.Scenarios.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	points, err := h.Scenarios.ListRatePoints(r.Context(), s.ID)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, scenarioResponse{Scenario: s, RatePoints: points})
}

func (h *ScenarioHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Scenarios.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeUsecaseError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
