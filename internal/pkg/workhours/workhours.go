// Package workhours converts labor spans into billable hours using the
// office's fixed work shifts.
package workhours

import (
	"math"
	"time"

	"github.com/haneco/timesheet-backend-go/internal/pkg/validator"
)

// TimeOfDay is minutes since midnight.
type TimeOfDay int

// Work shift boundaries. Lunch (12:00-13:00) is never billable.
const (
	MorningStart   TimeOfDay = 8 * 60
	MorningEnd     TimeOfDay = 12 * 60
	AfternoonStart TimeOfDay = 13 * 60
	AfternoonEnd   TimeOfDay = 17 * 60

	FullDayHours = 8.0
)

// Span is a labor interval: dates carry the calendar days, times the
// clock positions on the boundary days.
type Span struct {
	StartDate time.Time
	EndDate   time.Time
	Start     TimeOfDay
	End       TimeOfDay
}

// Calculator computes billable hours for a Span. With Overtime set,
// time worked past the afternoon shift accrues instead of being clamped.
type Calculator struct {
	Overtime bool
}

// Compute returns billable hours rounded to 2 decimals, always >= 0.
// A span whose end is not after its start yields 0.
func (c Calculator) Compute(s Span) float64 {
	startDay := dateOnly(s.StartDate)
	endDay := dateOnly(s.EndDate)

	if endDay.Before(startDay) {
		return 0
	}

	if startDay.Equal(endDay) {
		if s.End <= s.Start {
			return 0
		}
		return round2(c.dayPortion(s.Start, s.End))
	}

	// First day runs from the recorded start to the end of the afternoon
	// shift, the last day from the start of the morning shift to the
	// recorded end. Every day in between counts as a full work day.
	total := c.dayPortion(s.Start, AfternoonEnd)
	total += c.dayPortion(MorningStart, s.End)

	middleDays := int(endDay.Sub(startDay).Hours()/24) - 1
	total += float64(middleDays) * FullDayHours

	return round2(total)
}

// dayPortion returns the billable hours of [start, end) within a single
// day: the overlap with the morning and afternoon shifts, plus, in
// overtime mode, everything past the afternoon shift.
func (c Calculator) dayPortion(start, end TimeOfDay) float64 {
	minutes := overlap(start, end, MorningStart, MorningEnd)
	minutes += overlap(start, end, AfternoonStart, AfternoonEnd)
	if c.Overtime {
		minutes += overlap(start, end, AfternoonEnd, 24*60)
	}
	return float64(minutes) / 60.0
}

func overlap(aStart, aEnd, bStart, bEnd TimeOfDay) TimeOfDay {
	lo := max(aStart, bStart)
	hi := min(aEnd, bEnd)
	if hi <= lo {
		return 0
	}
	return hi - lo
}

func round2(h float64) float64 {
	return math.Round(h*100) / 100
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS" clock strings.
func ParseTimeOfDay(s string) (TimeOfDay, bool) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDay(t.Hour()*60 + t.Minute()), true
		}
	}
	return 0, false
}

// String renders the time back to "HH:MM".
func (t TimeOfDay) String() string {
	return time.Date(0, 1, 1, int(t)/60, int(t)%60, 0, 0, time.UTC).Format("15:04")
}

// ParseSpan builds a Span from raw date ("YYYY-MM-DD") and time ("HH:MM")
// strings, collecting a field error per malformed input.
func ParseSpan(startDate, endDate, startTime, endTime string) (Span, error) {
	var errs validator.ValidationErrors
	var span Span

	if d, ok := validator.IsValidDate(startDate); ok {
		span.StartDate = d
	} else {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if d, ok := validator.IsValidDate(endDate); ok {
		span.EndDate = d
	} else {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if t, ok := ParseTimeOfDay(startTime); ok {
		span.Start = t
	} else {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be a valid time (HH:MM)",
		})
	}

	if t, ok := ParseTimeOfDay(endTime); ok {
		span.End = t
	} else {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be a valid time (HH:MM)",
		})
	}

	if len(errs) > 0 {
		return Span{}, errs
	}

	return span, nil
}
