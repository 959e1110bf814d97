package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/crm-records/internal/infra/http/middleware"
	"github.com/xavierca1/crm-records/internal/usecase"
)

type AccountHandler struct {
	UC *usecase.AccountUseCase
}

func NewAccountHandler(uc *usecase.AccountUseCase) *AccountHandler {
	return &AccountHandler{UC: uc}
}

type CreateAccountRequest struct {
	Name     string `json:"name"`
	Industry string `json:"industry,omitempty"`
}

type UpdateAccountRequest struct {
	Name     string `json:"name"`
	Industry string `json:"industry,omitempty"`
}

type UpsertAccountRequest struct {
	Name string `json:"name"`
}

type InsertedResponse struct {
	ID string `json:"id"`
}

func (h *AccountHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	account, err := h.UC.CreateAccount(r.Context(), req.Name, req.Industry)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordWrite("Account", "insert", 1)
	writeJSON(w, http.StatusCreated, account)
}

// HandleInsertDemo creates the canonical demo account and returns its id.
func (h *AccountHandler) HandleInsertDemo(w http.ResponseWriter, r *http.Request) {
	id, err := h.UC.InsertNewAccount(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordWrite("Account", "insert", 1)
	writeJSON(w, http.StatusCreated, InsertedResponse{ID: id})
}

func (h *AccountHandler) HandleUpdateFields(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.UC.UpdateAccountFields(r.Context(), id, req.Name, req.Industry); err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordWrite("Account", "update", 1)
	w.WriteHeader(http.StatusNoContent)
}

func (h *AccountHandler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	var req UpsertAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	account, err := h.UC.UpsertAccount(r.Context(), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordWrite("Account", "upsert", 1)
	writeJSON(w, http.StatusOK, account)
}
