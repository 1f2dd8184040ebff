package problem

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "valid date", input: "2026-08-29", want: NewDate(2026, time.August, 29)},
		{name: "month boundary", input: "2026-03-01", want: NewDate(2026, time.March, 1)},
		{name: "garbage", input: "yesterday", wantErr: true},
		{name: "time component rejected", input: "2026-08-29T10:00:00Z", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
		})
	}
}

func TestDate_AddDays(t *testing.T) {
	d := NewDate(2026, time.February, 27)

	assert.Equal(t, "2026-02-28", d.AddDays(1).String())
	assert.Equal(t, "2026-03-01", d.AddDays(2).String()) // not a leap year
	assert.Equal(t, "2026-02-26", d.AddDays(-1).String())
	assert.Equal(t, "2026-02-27", d.AddDays(0).String())
}

func TestDate_DaysUntil(t *testing.T) {
	d := NewDate(2026, time.August, 29)

	assert.Equal(t, 0, d.DaysUntil(d))
	assert.Equal(t, 5, d.DaysUntil(d.AddDays(5)))
	assert.Equal(t, -3, d.DaysUntil(d.AddDays(-3)))
}

func TestDate_Comparisons(t *testing.T) {
	earlier := NewDate(2026, time.August, 28)
	later := NewDate(2026, time.August, 29)

	assert.True(t, earlier.Before(later))
	assert.False(t, later.Before(earlier))
	assert.True(t, later.After(earlier))
	assert.True(t, earlier.Equal(NewDate(2026, time.August, 28)))
	assert.False(t, earlier.Equal(later))
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2026, time.August, 29)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-08-29"`, string(raw))

	var decoded Date
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.True(t, d.Equal(decoded))
}

func TestDate_ScanAndValue(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan("2026-08-29"))
	assert.Equal(t, "2026-08-29", d.String())

	require.NoError(t, d.Scan([]byte("2026-01-02")))
	assert.Equal(t, "2026-01-02", d.String())

	require.NoError(t, d.Scan(time.Date(2026, time.May, 4, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, "2026-05-04", d.String())

	assert.Error(t, d.Scan(42))

	value, err := NewDate(2026, time.August, 29).Value()
	require.NoError(t, err)
	assert.Equal(t, "2026-08-29", value)
}

func TestNullDate(t *testing.T) {
	var nd NullDate
	require.NoError(t, nd.Scan(nil))
	assert.False(t, nd.Valid)

	value, err := nd.Value()
	require.NoError(t, err)
	assert.Nil(t, value)

	require.NoError(t, nd.Scan("2026-08-29"))
	assert.True(t, nd.Valid)
	assert.Equal(t, "2026-08-29", nd.Date.String())

	value, err = nd.Value()
	require.NoError(t, err)
	assert.Equal(t, "2026-08-29", value)

	some := SomeDate(NewDate(2026, time.August, 29))
	assert.True(t, some.Valid)
	assert.Equal(t, "2026-08-29", some.Date.String())
}
