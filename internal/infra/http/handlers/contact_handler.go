package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/crm-records/internal/entity"
	"github.com/xavierca1/crm-records/internal/infra/http/middleware"
	"github.com/xavierca1/crm-records/internal/usecase"
)

type ContactHandler struct {
	UC *usecase.ContactUseCase
}

func NewContactHandler(uc *usecase.ContactUseCase) *ContactHandler {
	return &ContactHandler{UC: uc}
}

type InsertContactRequest struct {
	AccountID string `json:"account_id"`
}

type UpdateContactLastNameRequest struct {
	LastName string `json:"last_name"`
}

type UpsertContactsRequest struct {
	Contacts []*entity.Contact `json:"contacts"`
}

func (h *ContactHandler) HandleInsert(w http.ResponseWriter, r *http.Request) {
	var req InsertContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	id, err := h.UC.InsertNewContact(r.Context(), req.AccountID)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordWrite("Contact", "insert", 1)
	writeJSON(w, http.StatusCreated, InsertedResponse{ID: id})
}

func (h *ContactHandler) HandleUpdateLastName(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateContactLastNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.UC.UpdateContactLastName(r.Context(), id, req.LastName); err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordWrite("Contact", "update", 1)
	w.WriteHeader(http.StatusNoContent)
}

func (h *ContactHandler) HandleUpsertWithAccounts(w http.ResponseWriter, r *http.Request) {
	var req UpsertContactsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.UC.UpsertAccountsWithContacts(r.Context(), req.Contacts); err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordWrite("Contact", "upsert", len(req.Contacts))
	writeJSON(w, http.StatusOK, req.Contacts)
}
