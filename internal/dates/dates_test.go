package dates

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Day
		wantErr bool
	}{
		{"plain day", "2024-03-15", NewDay(2024, time.March, 15), false},
		{"rfc3339 truncated", "2024-03-15T18:30:00Z", NewDay(2024, time.March, 15), false},
		{"garbage", "not-a-date", Day{}, true},
		{"empty", "", Day{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDay(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDayUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Day
	}{
		{"null", `null`, Day{}},
		{"empty string", `""`, Day{}},
		{"plain day", `"2024-03-15"`, NewDay(2024, time.March, 15)},
		{"rfc3339", `"2024-03-15T10:00:00Z"`, NewDay(2024, time.March, 15)},
		{"epoch seconds", `1710460800`, NewDay(2024, time.March, 15)},
		{"epoch millis", `1710460800000`, NewDay(2024, time.March, 15)},
		{"unparseable string", `"tomorrow"`, Day{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Day
			err := json.Unmarshal([]byte(tt.input), &got)
			require.NoError(t, err, "tolerant decoding must never fail")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDayMarshalJSON(t *testing.T) {
	data, err := json.Marshal(NewDay(2024, time.March, 5))
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-05"`, string(data))

	data, err = json.Marshal(Day{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(data))
}

func TestDayAsMapKey(t *testing.T) {
	in := map[Day]bool{
		NewDay(2024, time.January, 1): true,
		NewDay(2024, time.January, 2): true,
	}
	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out map[Day]bool
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestAddMonthsClamps(t *testing.T) {
	tests := []struct {
		name string
		from Day
		n    int
		want Day
	}{
		{"jan 31 to feb 29", NewDay(2024, time.January, 31), 1, NewDay(2024, time.February, 29)},
		{"jan 31 to feb 28", NewDay(2023, time.January, 31), 1, NewDay(2023, time.February, 28)},
		{"mid month", NewDay(2024, time.January, 15), 1, NewDay(2024, time.February, 15)},
		{"year rollover", NewDay(2024, time.December, 15), 1, NewDay(2025, time.January, 15)},
		{"oct 31 to nov 30", NewDay(2024, time.October, 31), 1, NewDay(2024, time.November, 30)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.AddMonths(tt.n))
		})
	}
}

func TestAddDays(t *testing.T) {
	assert.Equal(t, NewDay(2024, time.March, 1), NewDay(2024, time.February, 29).AddDays(1))
	assert.Equal(t, NewDay(2023, time.December, 31), NewDay(2024, time.January, 1).AddDays(-1))
}

func TestBeforeAfter(t *testing.T) {
	a := NewDay(2024, time.March, 1)
	b := NewDay(2024, time.March, 2)
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Before(a))
}

func TestStampUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"null", `null`, time.Time{}},
		{"rfc3339", `"2024-03-15T10:30:00Z"`, time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)},
		{"plain day", `"2024-03-15"`, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)},
		{"epoch seconds", `1710498600`, time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)},
		{"epoch millis", `1710498600000`, time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)},
		{"garbage", `"whenever"`, time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Stamp
			require.NoError(t, json.Unmarshal([]byte(tt.input), &got))
			assert.True(t, tt.want.Equal(got.Time), "want %v got %v", tt.want, got.Time)
		})
	}
}

func TestStampDay(t *testing.T) {
	s := StampOf(time.Date(2024, time.March, 15, 23, 30, 0, 0, time.UTC))
	assert.Equal(t, NewDay(2024, time.March, 15), s.Day(time.UTC))
}
