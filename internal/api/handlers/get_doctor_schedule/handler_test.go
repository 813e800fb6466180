package get_doctor_schedule

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-DoctorBooking/internal/service/schedule/models"
	"github.com/m04kA/SMC-DoctorBooking/pkg/logger"
)

type fakeService struct {
	resp     *models.ScheduleResponse
	err      error
	doctorID string
}

func (f *fakeService) Get(_ context.Context, doctorID string) (*models.ScheduleResponse, error) {
	f.doctorID = doctorID
	return f.resp, f.err
}

func get(svc ScheduleService) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/doctors/{docId}/schedule", NewHandler(svc, logger.Nop()).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/doctors/doc-1/schedule", nil))
	return rec
}

func TestHandler(t *testing.T) {
	svc := &fakeService{resp: &models.ScheduleResponse{
		DoctorID: "doc-1", OpenTime: "10:00", CloseTime: "21:00",
		SlotStepMinutes: 30, WindowDays: 7, MaxHorizonDays: 60, IsDefault: true,
	}}
	rec := get(svc)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "doc-1", svc.doctorID)
	assert.JSONEq(t, `{"doctorId":"doc-1","openTime":"10:00","closeTime":"21:00","slotStepMinutes":30,
		"windowDays":7,"maxHorizonDays":60,"isDefault":true}`, rec.Body.String())

	rec = get(&fakeService{err: errors.New("db down")})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
