package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
	clinicClient "github.com/m04kA/SMC-DoctorBooking/internal/integrations/clinicapi"
	"github.com/m04kA/SMC-DoctorBooking/pkg/logger"
)

type fakeLister struct {
	doctors []domain.Doctor
	err     error
	calls   int
}

func (f *fakeLister) ListDoctors(ctx context.Context) ([]domain.Doctor, error) {
	f.calls++
	return f.doctors, f.err
}

type fakeMetrics struct {
	hits, misses int
}

func (m *fakeMetrics) ObserveCacheLookup(_ string, hit bool) {
	if hit {
		m.hits++
		return
	}
	m.misses++
}

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	return mr, redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestDoctorCache_HitAfterMiss(t *testing.T) {
	_, rdb := setupRedis(t)
	source := &fakeLister{doctors: []domain.Doctor{
		{ID: "doc-1", Name: "Dr. Richard James", SlotsBooked: domain.BookedSlotMap{"1_1_2024": {"10:00 AM"}}},
	}}
	m := &fakeMetrics{}
	c := NewDoctorCache(rdb, source, time.Minute, m, logger.Nop())

	first, err := c.ListDoctors(context.Background())
	require.NoError(t, err)
	second, err := c.ListDoctors(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, source.calls)
	assert.Equal(t, 1, m.hits)
	assert.Equal(t, 1, m.misses)

	doctor, err := c.GetDoctor(context.Background(), "doc-1")
	require.NoError(t, err)
	assert.True(t, doctor.SlotsBooked.IsBooked("1_1_2024", "10:00 AM"))

	_, err = c.GetDoctor(context.Background(), "doc-2")
	assert.ErrorIs(t, err, clinicClient.ErrDoctorNotFound)
}

func TestDoctorCache_ExpiresAndInvalidates(t *testing.T) {
	mr, rdb := setupRedis(t)
	source := &fakeLister{doctors: []domain.Doctor{{ID: "doc-1"}}}
	c := NewDoctorCache(rdb, source, time.Minute, &fakeMetrics{}, logger.Nop())
	ctx := context.Background()

	_, err := c.ListDoctors(ctx)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)
	_, err = c.ListDoctors(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, source.calls)

	require.NoError(t, c.Invalidate(ctx))
	_, err = c.ListDoctors(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, source.calls)
}

func TestDoctorCache_RedisDownFallsBackToSource(t *testing.T) {
	mr, rdb := setupRedis(t)
	source := &fakeLister{doctors: []domain.Doctor{{ID: "doc-1"}}}
	c := NewDoctorCache(rdb, source, time.Minute, &fakeMetrics{}, logger.Nop())
	mr.Close()

	doctors, err := c.ListDoctors(context.Background())
	require.NoError(t, err)
	assert.Len(t, doctors, 1)
	assert.Error(t, c.Invalidate(context.Background()))
}

func TestDoctorCache_SourceError(t *testing.T) {
	_, rdb := setupRedis(t)
	source := &fakeLister{err: errors.New("clinic api down")}
	c := NewDoctorCache(rdb, source, time.Minute, &fakeMetrics{}, logger.Nop())

	_, err := c.ListDoctors(context.Background())
	assert.EqualError(t, err, "clinic api down")
}

func TestCooldownStore(t *testing.T) {
	mr, rdb := setupRedis(t)
	store := NewCooldownStore(rdb)
	ctx := context.Background()

	remaining, err := store.Remaining(ctx, "+15551234567")
	require.NoError(t, err)
	assert.Zero(t, remaining)

	require.NoError(t, store.Start(ctx, "+15551234567", 30*time.Second))
	remaining, err = store.Remaining(ctx, "+15551234567")
	require.NoError(t, err)
	assert.InDelta(t, 30*time.Second, remaining, float64(time.Second))

	mr.FastForward(31 * time.Second)
	remaining, err = store.Remaining(ctx, "+15551234567")
	require.NoError(t, err)
	assert.Zero(t, remaining)

	require.NoError(t, store.Start(ctx, "+15551234567", 30*time.Second))
	require.NoError(t, store.Clear(ctx, "+15551234567"))
	remaining, err = store.Remaining(ctx, "+15551234567")
	require.NoError(t, err)
	assert.Zero(t, remaining)
}
