package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, http.StatusTooManyRequests, "slow down")

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"slow down"}`, rec.Body.String())
}

func TestRespondInternalError_HidesDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondInternalError(rec)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}

func TestRespondUnauthorized_DefaultMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondUnauthorized(rec, "")
	assert.JSONEq(t, `{"error":"unauthorized"}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Phone string `json:"phone"`
	}

	var p payload
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"phone":"+15551234567"}`))
	require.NoError(t, DecodeJSON(r, &p))
	assert.Equal(t, "+15551234567", p.Phone)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"phone":"1","extra":true}`))
	assert.Error(t, DecodeJSON(r, &p))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(``))
	assert.EqualError(t, DecodeJSON(r, &p), "empty request body")
}
