package attempts

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
	"github.com/m04kA/SMC-DoctorBooking/pkg/logger"
)

type fakeRepo struct {
	created   []*domain.BookingAttempt
	list      []*domain.BookingAttempt
	err       error
	lastLimit int
}

func (r *fakeRepo) Create(_ context.Context, a *domain.BookingAttempt) (*domain.BookingAttempt, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.created = append(r.created, a)
	return a, nil
}

func (r *fakeRepo) ListByDoctor(_ context.Context, _ string, limit int) ([]*domain.BookingAttempt, error) {
	r.lastLimit = limit
	return r.list, r.err
}

func TestService_List(t *testing.T) {
	repo := &fakeRepo{list: []*domain.BookingAttempt{
		{ID: "a-1", DoctorID: "doc-1", SlotDate: "2_1_2024", SlotTime: "10:30 AM", Success: true},
	}}
	svc := NewService(repo, logger.Nop())

	resp, err := svc.List(context.Background(), "doc-1", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultListLimit, repo.lastLimit)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "10:30 AM", resp.Attempts[0].SlotTime)

	_, err = svc.List(context.Background(), "doc-1", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, repo.lastLimit)
}

func TestService_ListInvalid(t *testing.T) {
	svc := NewService(&fakeRepo{}, logger.Nop())

	for _, limit := range []int{-1, MaxListLimit + 1} {
		_, err := svc.List(context.Background(), "doc-1", limit)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}

	_, err := svc.List(context.Background(), "", 10)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_RepositoryErrors(t *testing.T) {
	svc := NewService(&fakeRepo{err: errors.New("db down")}, logger.Nop())

	_, err := svc.List(context.Background(), "doc-1", 10)
	assert.ErrorIs(t, err, ErrInternal)

	err = svc.Record(context.Background(), &domain.BookingAttempt{DoctorID: "doc-1"})
	assert.ErrorIs(t, err, ErrInternal)
}
