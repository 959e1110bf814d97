package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/crm-records/internal/entity"
	"github.com/xavierca1/crm-records/internal/infra/memory"
	"github.com/xavierca1/crm-records/internal/usecase"
)

func newAccountHandler() *AccountHandler {
	store := memory.NewStore()
	return NewAccountHandler(usecase.NewAccountUseCase(store.Accounts(), nil))
}

func TestHandleUpsertCreatesThenUpdates(t *testing.T) {
	h := newAccountHandler()

	body := bytes.NewBufferString(`{"name":"Acme"}`)
	req := httptest.NewRequest(http.MethodPost, "/accounts/upsert", body)
	rec := httptest.NewRecorder()
	h.HandleUpsert(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var first entity.Account
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&first))
	assert.Equal(t, "New Account", first.Description)

	body = bytes.NewBufferString(`{"name":"Acme"}`)
	req = httptest.NewRequest(http.MethodPost, "/accounts/upsert", body)
	rec = httptest.NewRecorder()
	h.HandleUpsert(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var second entity.Account
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&second))
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Updated Account", second.Description)
}

func TestHandleInsertDemo(t *testing.T) {
	h := newAccountHandler()

	req := httptest.NewRequest(http.MethodPost, "/accounts/demo", nil)
	rec := httptest.NewRecorder()
	h.HandleInsertDemo(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp InsertedResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.ID)
}

func TestHandleCreateRejectsInvalidJSON(t *testing.T) {
	h := newAccountHandler()

	req := httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCreateRejectsMissingName(t *testing.T) {
	h := newAccountHandler()

	req := httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewBufferString(`{"industry":"Retail"}`))
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
