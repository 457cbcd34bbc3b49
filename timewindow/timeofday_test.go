package timewindow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDayLenientHour(t *testing.T) {
	short, err := ParseTimeOfDay("9:00:00")
	require.NoError(t, err)
	long, err := ParseTimeOfDay("09:00:00")
	require.NoError(t, err)

	assert.Equal(t, long, short)
	assert.Equal(t, TimeOfDay{Hour: 9, Minute: 0, Second: 0}, short)
}

func TestParseTimeOfDayBounds(t *testing.T) {
	cases := []struct {
		input string
		valid bool
	}{
		{"00:00:00", true},
		{"0:00:00", true},
		{"23:59:59", true},
		{"11:30:00", true},
		{"24:00:00", false},
		{"12:60:00", false},
		{"12:00:60", false},
		{"9:0:0", false},
		{"09:00", false},
		{"banana", false},
		{"", false},
		{" 09:00:00", false},
	}

	for _, tc := range cases {
		_, err := ParseTimeOfDay(tc.input)
		if tc.valid {
			assert.NoError(t, err, "input %q", tc.input)
		} else {
			assert.ErrorIs(t, err, ErrInvalidTimeFormat, "input %q", tc.input)
		}
	}
}

func TestTimeOfDayStringNormalizes(t *testing.T) {
	tod, err := ParseTimeOfDay("9:05:07")
	require.NoError(t, err)
	assert.Equal(t, "09:05:07", tod.String())
}

func TestCombine(t *testing.T) {
	date := time.Date(2025, 6, 10, 22, 45, 13, 999, time.Local)
	got := Combine(date, MustParseTimeOfDay("11:30:00"))
	assert.Equal(t, time.Date(2025, 6, 10, 11, 30, 0, 0, time.Local), got)
}

func TestCombineStringRejectsMalformed(t *testing.T) {
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.Local)
	_, err := CombineString(date, "25:00:00")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestMustParseTimeOfDayPanics(t *testing.T) {
	assert.Panics(t, func() { MustParseTimeOfDay("not a time") })
}
