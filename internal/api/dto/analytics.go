package dto

import (
	"time"

	"github.com/sellora/sellora/internal/domain/analytics"
	ierr "github.com/sellora/sellora/internal/errors"
	"github.com/sellora/sellora/internal/types"
)

// GetDashboardSummaryRequest represents the request for the dashboard
// summary API. Either a named preset or an explicit start/end window may be
// supplied; with neither, the default preset applies.
type GetDashboardSummaryRequest struct {
	TimeRange types.TimeRangePreset `json:"time_range,omitempty" form:"time_range"`
	StartTime *time.Time            `json:"start_time,omitempty" form:"start_time" time_format:"2006-01-02T15:04:05Z07:00"`
	EndTime   *time.Time            `json:"end_time,omitempty" form:"end_time" time_format:"2006-01-02T15:04:05Z07:00"`
	Timezone  string                `json:"timezone,omitempty" form:"timezone"`
}

// Validate validates the dashboard summary request
func (r *GetDashboardSummaryRequest) Validate() error {
	if r.StartTime != nil || r.EndTime != nil {
		if r.StartTime == nil || r.EndTime == nil {
			return ierr.NewError("start_time and end_time must be provided together").
				WithHint("Provide both start_time and end_time, or use time_range").
				Mark(ierr.ErrValidation)
		}
		if err := (types.TimeRange{Start: *r.StartTime, End: *r.EndTime}).Validate(); err != nil {
			return err
		}
	}
	if r.TimeRange != "" {
		if err := r.TimeRange.Validate(); err != nil {
			return err
		}
	}
	if r.Timezone != "" {
		if err := types.ValidateTimezone(r.Timezone); err != nil {
			return ierr.WithError(err).
				WithHint("Timezone must be a valid IANA name or a known abbreviation").
				WithReportableDetails(map[string]interface{}{
					"timezone": r.Timezone,
				}).
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

// ResolveWindow converts the request into a concrete time window anchored at now
func (r *GetDashboardSummaryRequest) ResolveWindow(now time.Time) types.TimeRange {
	if r.StartTime != nil && r.EndTime != nil {
		return types.TimeRange{Start: r.StartTime.UTC(), End: r.EndTime.UTC()}
	}
	preset := r.TimeRange
	if preset == "" {
		preset = types.DefaultTimeRangePreset
	}
	return preset.Resolve(now)
}

// DashboardSummaryResponse represents the response for the dashboard summary API
type DashboardSummaryResponse struct {
	*analytics.Summary
}
