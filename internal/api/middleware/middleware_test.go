package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DoctorBooking/pkg/logger"
)

type observation struct {
	route, method, status string
}

type fakeRecorder struct {
	mu       sync.Mutex
	observed []observation
}

func (f *fakeRecorder) ObserveHTTPRequest(route, method, status string, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.observed = append(f.observed, observation{route: route, method: method, status: status})
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "req-42")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "req-42", seen)
	assert.Equal(t, "req-42", rec.Header().Get(HeaderRequestID))
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	recorder := &fakeRecorder{}
	router := mux.NewRouter()
	router.Use(MetricsMiddleware(recorder))
	router.HandleFunc("/api/v1/doctors/{docId}/available-slots", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/doctors/doc-1/available-slots", nil))

	assert.Equal(t, []observation{{
		route:  "/api/v1/doctors/{docId}/available-slots",
		method: http.MethodGet,
		status: "404",
	}}, recorder.observed)
}

func TestSessionToken(t *testing.T) {
	var token string
	h := SessionToken(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token = GetToken(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderToken, " jwt ")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "jwt", token)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Empty(t, token)
}

func TestAdminAuth(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name       string
		configured string
		provided   string
		wantStatus int
	}{
		{name: "valid", configured: "secret", provided: "secret", wantStatus: http.StatusNoContent},
		{name: "missing", configured: "secret", wantStatus: http.StatusUnauthorized},
		{name: "wrong", configured: "secret", provided: "guess", wantStatus: http.StatusForbidden},
		{name: "not configured", configured: "", provided: "anything", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.provided != "" {
				req.Header.Set(HeaderAdminToken, tt.provided)
			}
			rec := httptest.NewRecorder()
			AdminAuth(tt.configured, logger.Nop())(ok).ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAccessLog_PassesThrough(t *testing.T) {
	h := AccessLog(logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusCreated, rec.Code)
}
