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
		{name: "valid morning", input: "08:00", want: "08:00"},
		{name: "valid evening", input: "21:30", want: "21:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "last minute", input: "23:59", want: "23:59"},
		{name: "end of day bound", input: "24:00", want: "24:00"},
		{name: "missing leading zero", input: "8:00", wantErr: true},
		{name: "with seconds", input: "08:00:00", wantErr: true},
		{name: "hour out of range", input: "25:00", wantErr: true},
		{name: "past end of day bound", input: "24:01", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "not digits", input: "ab:cd", wantErr: true},
		{name: "empty", input: "", wantErr: true},
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

func TestTimeString_Minutes(t *testing.T) {
	assert.Equal(t, 0, TimeString("00:00").Minutes())
	assert.Equal(t, 480, TimeString("08:00").Minutes())
	assert.Equal(t, 1290, TimeString("21:30").Minutes())
	assert.Equal(t, 0, TimeString("").Minutes())
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("08:00").AddMinutes(120)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:00"), got)

	got, err = TimeString("19:30").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("20:00"), got)

	// Конец суток не заворачивается в "00:00"
	got, err = TimeString("22:00").AddMinutes(120)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), got)
	assert.True(t, TimeString("22:00").IsBefore(got))

	_, err = TimeString("23:00").AddMinutes(120)
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = TimeString("01:00").AddMinutes(-120)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("12:30").IsAfter("12:00"))
	assert.False(t, TimeString("12:00").IsAfter("12:00"))
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2025, 10, 14, 9, 5, 33, 0, time.UTC)
	assert.Equal(t, TimeString("09:05"), NewTimeString(moment))
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	got, err := NewTimeStringFromMinutes(480)
	require.NoError(t, err)
	assert.Equal(t, TimeString("08:00"), got)

	// Верхняя граница диапазона проходит и собственную валидацию
	got, err = NewTimeStringFromMinutes(1440)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), got)
	assert.NoError(t, got.Validate())

	_, err = NewTimeStringFromMinutes(-1)
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromMinutes(1441)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("14:30:00"))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan([]byte("08:00:00")))
	assert.Equal(t, TimeString("08:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 10, 14, 16, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("16:45"), ts)

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	// Конец интервала "22:00" + 120 минут записывается в TIME как '24:00'
	v, err = TimeString("24:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "24:00", v)

	_, err = TimeString("bad").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
