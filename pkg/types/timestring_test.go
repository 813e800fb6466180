package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "plain", input: "10:00", want: "10:00"},
		{name: "postgres time", input: "21:00:00", want: "21:00"},
		{name: "trimmed", input: " 09:30 ", want: "09:30"},
		{name: "hour out of range", input: "25:00", wantErr: true},
		{name: "no padding", input: "9:30", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Arithmetic(t *testing.T) {
	open := TimeString("10:00")

	m, err := open.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 600, m)

	next, err := open.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), next)
	assert.True(t, open.IsBefore(next))
	assert.True(t, next.IsAfter(open))

	_, err = TimeString("23:45").AddMinutes(30)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("21:00:00"))
	assert.Equal(t, TimeString("21:00"), ts)

	require.NoError(t, ts.Scan([]byte("10:30:00")))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 8, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("08:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
