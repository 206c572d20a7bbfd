package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	tests := []struct {
		name    string
		value   TimeString
		wantErr bool
	}{
		{"valid morning", "09:00", false},
		{"valid midnight", "00:00", false},
		{"valid end of day", "23:59", false},
		{"missing leading zero", "9:00", true},
		{"out of range hour", "24:00", true},
		{"out of range minute", "10:60", true},
		{"with seconds", "10:00:00", true},
		{"garbage", "abc", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.value.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTimeString_IsBefore(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("09:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	// Лексикографическое сравнение корректно только при двузначных часах
	assert.True(t, TimeString("09:59").IsBefore("10:00"))
}

func TestTimeString_IsAfter(t *testing.T) {
	assert.True(t, TimeString("18:00").IsAfter("09:30"))
	assert.False(t, TimeString("09:30").IsAfter("18:00"))
	assert.False(t, TimeString("12:00").IsAfter("12:00"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	result, err := TimeString("10:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:15"), result)

	result, err = TimeString("10:30").AddMinutes(-30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:00"), result)

	// Выход за пределы суток
	_, err = TimeString("23:30").AddMinutes(60)
	assert.Error(t, err)

	_, err = TimeString("00:10").AddMinutes(-20)
	assert.Error(t, err)
}

func TestTimeString_TotalMinutes(t *testing.T) {
	tests := []struct {
		value TimeString
		want  int
	}{
		{"00:00", 0},
		{"10:30", 630},
		{"23:59", 1439},
	}

	for _, tt := range tests {
		got, err := tt.value.TotalMinutes()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := TimeString("abc").TotalMinutes()
	assert.Error(t, err)
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 9, 1, 14, 5, 33, 0, time.UTC))
	assert.Equal(t, TimeString("14:05"), ts)
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("08:15")
	require.NoError(t, err)
	assert.Equal(t, TimeString("08:15"), ts)

	_, err = NewTimeStringFromString("8:15")
	assert.Error(t, err)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:00"))
	assert.Equal(t, TimeString("10:00"), ts)

	// PostgreSQL TIME приходит с секундами
	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, TimeString("10:00"), ts)

	require.NoError(t, ts.Scan([]byte("18:45:00")))
	assert.Equal(t, TimeString("18:45"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 1, 1, 7, 30, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("07:30"), ts)
}

func TestTimeString_Value(t *testing.T) {
	value, err := TimeString("12:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "12:00", value)
}
