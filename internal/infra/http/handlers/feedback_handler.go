package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/loanpulse/internal/entity"
	"github.com/xavierca1/loanpulse/internal/usecase"
)

type FeedbackLister interface {
	ListByLead(ctx context.Context, leadID string) ([]*entity.Feedback, error)
}

type FeedbackHandler struct {
	SubmitUC *usecase.SubmitFeedbackUseCase
	Lister   FeedbackLister
}

func NewFeedbackHandler(submitUC *usecase.SubmitFeedbackUseCase, lister FeedbackLister) *FeedbackHandler {
	return &FeedbackHandler{SubmitUC: submitUC, Lister: lister}
}

func (h *FeedbackHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.FeedbackInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	input.LeadID = chi.URLParam(r, "id")

	feedback, err := h.SubmitUC.Execute(r.Context(), input)
	if err != nil {
		if errors.Is(err, usecase.ErrDuplicateFeedback) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeUsecaseError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, feedback)
}

func (h *FeedbackHandler) HandleListByLead(w http.ResponseWriter, r *http.Request) {
	feedbacks, err := h.Lister.ListByLead(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeUsecaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, feedbacks)
}
