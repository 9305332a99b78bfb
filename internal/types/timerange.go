package types

import (
	"time"

	ierr "github.com/sellora/sellora/internal/errors"
)

// TimeRangePreset is a named dashboard time window
type TimeRangePreset string

const (
	TimeRangeLast7Days  TimeRangePreset = "last_7_days"
	TimeRangeLast30Days TimeRangePreset = "last_30_days"
	TimeRangeLast90Days TimeRangePreset = "last_90_days"
	TimeRangeThisMonth  TimeRangePreset = "this_month"

	// DefaultTimeRangePreset is used when a dashboard request names no window
	DefaultTimeRangePreset = TimeRangeLast30Days
)

// Validate validates the time range preset
func (p TimeRangePreset) Validate() error {
	switch p {
	case TimeRangeLast7Days, TimeRangeLast30Days, TimeRangeLast90Days, TimeRangeThisMonth:
		return nil
	default:
		return ierr.NewError("invalid time range preset").
			WithHint("Time range must be one of: last_7_days, last_30_days, last_90_days, this_month").
			WithReportableDetails(map[string]interface{}{
				"time_range": p,
			}).
			Mark(ierr.ErrValidation)
	}
}

// Resolve converts the preset into a concrete [start, end) window anchored at now
func (p TimeRangePreset) Resolve(now time.Time) TimeRange {
	now = now.UTC()
	switch p {
	case TimeRangeLast7Days:
		return TimeRange{Start: now.AddDate(0, 0, -7), End: now}
	case TimeRangeLast90Days:
		return TimeRange{Start: now.AddDate(0, 0, -90), End: now}
	case TimeRangeThisMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return TimeRange{Start: start, End: now}
	case TimeRangeLast30Days:
		fallthrough
	default:
		return TimeRange{Start: now.AddDate(0, 0, -30), End: now}
	}
}

// TimeRange is a half-open [Start, End) window
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Validate validates the time range
func (r TimeRange) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return ierr.NewError("time range start and end are required").
			WithHint("Provide both start and end timestamps").
			Mark(ierr.ErrValidation)
	}
	if !r.End.After(r.Start) {
		return ierr.NewError("time range end must be after start").
			WithReportableDetails(map[string]interface{}{
				"start": r.Start,
				"end":   r.End,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// Duration returns the window length
func (r TimeRange) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Previous returns the window of equal duration immediately preceding this one.
// Used as the comparison period for period-over-period trends.
func (r TimeRange) Previous() TimeRange {
	d := r.Duration()
	return TimeRange{Start: r.Start.Add(-d), End: r.Start}
}

// Contains reports whether t falls inside the half-open window
func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}
