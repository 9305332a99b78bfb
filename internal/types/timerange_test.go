package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeRangePresetResolve(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		preset TimeRangePreset
		start  time.Time
	}{
		{TimeRangeLast7Days, now.AddDate(0, 0, -7)},
		{TimeRangeLast30Days, now.AddDate(0, 0, -30)},
		{TimeRangeLast90Days, now.AddDate(0, 0, -90)},
		{TimeRangeThisMonth, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			r := tt.preset.Resolve(now)
			assert.Equal(t, tt.start, r.Start)
			assert.Equal(t, now, r.End)
		})
	}
}

func TestTimeRangePresetValidate(t *testing.T) {
	assert.NoError(t, TimeRangeLast7Days.Validate())
	assert.NoError(t, TimeRangeThisMonth.Validate())
	assert.Error(t, TimeRangePreset("last_year").Validate())
	assert.Error(t, TimeRangePreset("").Validate())
}

func TestTimeRangeValidate(t *testing.T) {
	now := time.Now().UTC()

	assert.NoError(t, TimeRange{Start: now.Add(-time.Hour), End: now}.Validate())
	assert.Error(t, TimeRange{Start: now, End: now}.Validate())
	assert.Error(t, TimeRange{Start: now, End: now.Add(-time.Hour)}.Validate())
	assert.Error(t, TimeRange{End: now}.Validate())
}

func TestTimeRangePrevious(t *testing.T) {
	r := TimeRange{
		Start: time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	}

	prev := r.Previous()
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), prev.Start)
	assert.Equal(t, r.Start, prev.End)
	assert.Equal(t, r.Duration(), prev.Duration())
}

func TestTimeRangeContains(t *testing.T) {
	r := TimeRange{
		Start: time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	}

	// Half-open: start inclusive, end exclusive
	assert.True(t, r.Contains(r.Start))
	assert.True(t, r.Contains(r.End.Add(-time.Nanosecond)))
	assert.False(t, r.Contains(r.End))
	assert.False(t, r.Contains(r.Start.Add(-time.Nanosecond)))
}
