package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-DoctorBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-DoctorBooking/pkg/logger"
)

type fakeUseCase struct {
	resp *getAvailableSlots.Response
	err  error
	req  *getAvailableSlots.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.req = req
	return f.resp, f.err
}

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/doctors/{docId}/available-slots", h.Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_Success(t *testing.T) {
	now := time.Date(2024, time.January, 1, 9, 15, 0, 0, time.UTC)
	window := getAvailableSlots.Generate(now, domain.BookedSlotMap{}, 2)
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		DoctorID:    "doc-1",
		DoctorName:  "Dr. Richard James",
		GeneratedAt: now,
		Window:      window,
	}}

	rec := serve(NewHandler(uc, logger.Nop()), "/api/v1/doctors/doc-1/available-slots?days=2")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, &getAvailableSlots.Request{DoctorID: "doc-1", Days: 2}, uc.req)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "doc-1", body.DoctorID)
	assert.Equal(t, "2024-01-01T09:15:00Z", body.GeneratedAt)
	require.Len(t, body.Days, 2)

	first := body.Days[0]
	assert.Equal(t, "2024-01-01", first.Date)
	assert.Equal(t, "1_1_2024", first.DateKey)
	assert.Equal(t, "MON", first.Weekday)
	assert.Equal(t, 1, first.Day)
	require.Len(t, first.Slots, 22)
	assert.Equal(t, SlotResponse{DateKey: "1_1_2024", Time: "10:00 AM", StartsAt: "2024-01-01T10:00:00Z"}, first.Slots[0])
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		err        error
		wantStatus int
	}{
		{name: "days not a number", target: "/api/v1/doctors/doc-1/available-slots?days=abc", wantStatus: http.StatusBadRequest},
		{name: "invalid input", target: "/api/v1/doctors/doc-1/available-slots?days=2", err: getAvailableSlots.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "doctor not found", target: "/api/v1/doctors/doc-9/available-slots", err: getAvailableSlots.ErrDoctorNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", target: "/api/v1/doctors/doc-1/available-slots", err: getAvailableSlots.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&fakeUseCase{err: tt.err}, logger.Nop()), tt.target)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestHandler_DaysOutOfRange(t *testing.T) {
	for _, days := range []string{"-1", "61"} {
		t.Run(days, func(t *testing.T) {
			uc := &fakeUseCase{}
			rec := serve(NewHandler(uc, logger.Nop()), "/api/v1/doctors/doc-1/available-slots?days="+days)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"days must be an integer between 0 and 60"}`, rec.Body.String())
			assert.Nil(t, uc.req)
		})
	}
}
