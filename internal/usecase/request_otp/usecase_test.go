package request_otp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DoctorBooking/internal/infra/cache"
	"github.com/m04kA/SMC-DoctorBooking/internal/integrations/clinicapi"
	"github.com/m04kA/SMC-DoctorBooking/pkg/logger"
)

type fakeClinic struct {
	result *clinicapi.Result
	err    error
	phones []string
}

func (f *fakeClinic) GenerateOTP(_ context.Context, phone string) (*clinicapi.Result, error) {
	f.phones = append(f.phones, phone)
	return f.result, f.err
}

type brokenCooldowns struct{}

func (brokenCooldowns) Remaining(context.Context, string) (time.Duration, error) {
	return 0, errors.New("redis down")
}

func (brokenCooldowns) Start(context.Context, string, time.Duration) error {
	return errors.New("redis down")
}

func newCooldowns(t *testing.T) (*miniredis.Miniredis, *cache.CooldownStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	return mr, cache.NewCooldownStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func TestUseCase_Execute_Cooldown(t *testing.T) {
	mr, cooldowns := newCooldowns(t)
	clinic := &fakeClinic{result: &clinicapi.Result{Success: true, Message: "OTP sent"}}
	uc := NewUseCase(clinic, cooldowns, 30*time.Second, logger.Nop())
	ctx := context.Background()

	resp, err := uc.Execute(ctx, &Request{Phone: "+1 555 123-4567"})
	require.NoError(t, err)
	assert.Equal(t, &Response{Success: true, Message: "OTP sent", ResendAfterSeconds: 30}, resp)
	assert.Equal(t, []string{"+15551234567"}, clinic.phones)

	// Повторный запрос в другом формате того же номера попадает в ту же паузу
	mr.FastForward(10 * time.Second)
	_, err = uc.Execute(ctx, &Request{Phone: "+15551234567"})
	require.ErrorIs(t, err, ErrCooldown)

	var cooldownErr *CooldownError
	require.ErrorAs(t, err, &cooldownErr)
	assert.Equal(t, 20, cooldownErr.Seconds())
	assert.Len(t, clinic.phones, 1)

	mr.FastForward(21 * time.Second)
	_, err = uc.Execute(ctx, &Request{Phone: "+15551234567"})
	require.NoError(t, err)
	assert.Len(t, clinic.phones, 2)
}

func TestUseCase_Execute_Rejected(t *testing.T) {
	_, cooldowns := newCooldowns(t)
	clinic := &fakeClinic{result: &clinicapi.Result{Success: false, Message: "Too many attempts"}}
	uc := NewUseCase(clinic, cooldowns, 0, logger.Nop())

	_, err := uc.Execute(context.Background(), &Request{Phone: "9876543210"})
	var rejected *RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, "Too many attempts", rejected.Message)

	// Отказ не запускает паузу
	remaining, err := cooldowns.Remaining(context.Background(), "9876543210")
	require.NoError(t, err)
	assert.Zero(t, remaining)
}

func TestUseCase_Execute_CooldownStoreUnavailable(t *testing.T) {
	clinic := &fakeClinic{result: &clinicapi.Result{Success: true}}
	uc := NewUseCase(clinic, brokenCooldowns{}, 0, logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{Phone: "9876543210"})
	require.NoError(t, err)
	assert.Equal(t, 30, resp.ResendAfterSeconds)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	_, cooldowns := newCooldowns(t)

	uc := NewUseCase(&fakeClinic{}, cooldowns, 0, logger.Nop())
	_, err := uc.Execute(context.Background(), &Request{Phone: "123"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	uc = NewUseCase(&fakeClinic{err: clinicapi.ErrInternal}, cooldowns, 0, logger.Nop())
	_, err = uc.Execute(context.Background(), &Request{Phone: "9876543210"})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "********4567", maskPhone("+15551234567"))
	assert.Equal(t, "123", maskPhone("123"))
}
