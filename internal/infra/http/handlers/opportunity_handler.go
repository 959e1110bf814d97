package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/crm-records/internal/entity"
	"github.com/xavierca1/crm-records/internal/infra/http/middleware"
	"github.com/xavierca1/crm-records/internal/usecase"
)

type OpportunityHandler struct {
	UC *usecase.OpportunityUseCase
}

func NewOpportunityHandler(uc *usecase.OpportunityUseCase) *OpportunityHandler {
	return &OpportunityHandler{UC: uc}
}

type UpdateStageRequest struct {
	StageName string `json:"stage_name"`
}

type UpsertOpportunityListRequest struct {
	Opportunities []*entity.Opportunity `json:"opportunities"`
}

type UpsertOpportunitiesForAccountRequest struct {
	AccountName      string   `json:"account_name"`
	OpportunityNames []string `json:"opportunity_names"`
}

func (h *OpportunityHandler) HandleUpdateStage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateStageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.UC.UpdateOpportunityStage(r.Context(), id, req.StageName); err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordWrite("Opportunity", "update", 1)
	w.WriteHeader(http.StatusNoContent)
}

func (h *OpportunityHandler) HandleUpsertList(w http.ResponseWriter, r *http.Request) {
	var req UpsertOpportunityListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.UC.UpsertOpportunityList(r.Context(), req.Opportunities); err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordWrite("Opportunity", "upsert", len(req.Opportunities))
	writeJSON(w, http.StatusOK, req.Opportunities)
}

func (h *OpportunityHandler) HandleUpsertForAccount(w http.ResponseWriter, r *http.Request) {
	var req UpsertOpportunitiesForAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.UC.UpsertOpportunities(r.Context(), req.AccountName, req.OpportunityNames); err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordWrite("Opportunity", "upsert", len(req.OpportunityNames))
	w.WriteHeader(http.StatusNoContent)
}
