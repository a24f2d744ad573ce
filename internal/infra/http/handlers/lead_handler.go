package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/loanpulse/internal/infra/http/middleware"
	"github.com/xavierca1/loanpulse/internal/usecase"
)

type LeadHandler struct {
	LeadRepo  usecase.LeadRepositoryInterface
	CreateUC  *usecase.CreateLeadUseCase
	UpdateUC  *usecase.UpdateLeadUseCase
	AnalyzeUC *usecase.AnalyzeLeadsUseCase
}

func NewLeadHandler(
	leadRepo usecase.LeadRepositoryInterface,
	createUC *usecase.CreateLeadUseCase,
	updateUC *usecase.UpdateLeadUseCase,
	analyzeUC *usecase.AnalyzeLeadsUseCase,
) *LeadHandler {
	return &LeadHandler{
		LeadRepo:  leadRepo,
		CreateUC:  createUC,
		UpdateUC:  updateUC,
		AnalyzeUC: analyzeUC,
	}
}

func (h *LeadHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.LeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	lead, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	leads, err := h.LeadRepo.ListByUser(r.Context(), userID)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	lead, err := h.LeadRepo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeUsecaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var input usecase.LeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	lead, err := h.UpdateUC.Execute(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.LeadRepo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeUsecaseError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleAnalyze runs the matching engine over the officer's leads against a
// day's scenario pool (today when rate_sheet_date is omitted).
func (h *LeadHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	input := usecase.AnalyzeLeadsInput{UserID: userID}
	if raw := r.URL.Query().Get("rate_sheet_date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "rate_sheet_date must be YYYY-MM-DD")
			return
		}
		input.RateSheetDate = &date
	}

	results, err := h.AnalyzeUC.Execute(r.Context(), input)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	middleware.RecordMatchRun(len(results))
	writeJSON(w, http.StatusOK, results)
}
