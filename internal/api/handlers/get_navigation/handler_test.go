package get_navigation

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DoctorBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DoctorBooking/internal/service/navigation"
)

func get(token string) *navigation.Menu {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/navigation", nil)
	if token != "" {
		req.Header.Set(middleware.HeaderToken, token)
	}
	rec := httptest.NewRecorder()
	middleware.SessionToken(http.HandlerFunc(NewHandler(navigation.NewService()).Handle)).ServeHTTP(rec, req)

	var menu navigation.Menu
	if rec.Code != http.StatusOK || json.Unmarshal(rec.Body.Bytes(), &menu) != nil {
		return nil
	}
	return &menu
}

func TestHandler(t *testing.T) {
	guest := get("")
	require.NotNil(t, guest)
	assert.False(t, guest.Authenticated)
	require.NotNil(t, guest.CallToAction)
	assert.Empty(t, guest.Account)

	user := get("jwt")
	require.NotNil(t, user)
	assert.True(t, user.Authenticated)
	assert.Len(t, user.Account, 3)
	assert.Nil(t, user.CallToAction)
}
