package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/xavierca1/crm-records/internal/infra/http/middleware"
	"github.com/xavierca1/crm-records/internal/usecase"
)

type CaseHandler struct {
	UC          *usecase.CaseUseCase
	rateLimiter *RateLimiter
}

func NewCaseHandler(uc *usecase.CaseUseCase) *CaseHandler {
	return &CaseHandler{
		UC:          uc,
		rateLimiter: NewRateLimiter(10, time.Minute),
	}
}

type CaseCycleRequest struct {
	AccountID  string `json:"account_id"`
	NumOfCases int    `json:"num_of_cases"`
}

func (h *CaseHandler) HandleDemoCycle(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "too many requests, try again later"})
		return
	}

	var req CaseCycleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.UC.CreateAndDeleteCases(r.Context(), req.AccountID, req.NumOfCases); err != nil {
		writeError(w, err)
		return
	}

	count := req.NumOfCases
	if count < 0 {
		count = 0
	}
	middleware.RecordWrite("Case", "insert", count)
	middleware.RecordDelete("Case", count)
	writeJSON(w, http.StatusOK, CycleResponse{Inserted: count, Deleted: count})
}
