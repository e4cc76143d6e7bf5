package workhours

import (
	"testing"
	"time"

	"github.com/haneco/timesheet-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func clock(h, m int) TimeOfDay {
	return TimeOfDay(h*60 + m)
}

func TestCompute_SameDay(t *testing.T) {
	d := date(2024, 6, 3)
	calc := Calculator{}

	tests := []struct {
		name       string
		start, end TimeOfDay
		want       float64
	}{
		{"morning only", clock(9, 0), clock(11, 0), 2.0},
		{"crosses lunch", clock(9, 0), clock(14, 0), 4.0},
		{"full shift", clock(8, 0), clock(17, 0), 8.0},
		{"end exactly at noon", clock(9, 0), clock(12, 0), 3.0},
		{"start exactly after lunch", clock(13, 0), clock(17, 0), 4.0},
		{"inside lunch", clock(12, 0), clock(13, 0), 0.0},
		{"before shift", clock(6, 0), clock(7, 30), 0.0},
		{"after shift", clock(18, 0), clock(20, 0), 0.0},
		{"evening clamped", clock(15, 0), clock(19, 0), 2.0},
		{"end equals start", clock(10, 0), clock(10, 0), 0.0},
		{"end before start", clock(14, 0), clock(9, 0), 0.0},
		{"half hours", clock(8, 30), clock(11, 15), 2.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.Compute(Span{StartDate: d, EndDate: d, Start: tt.start, End: tt.end})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompute_MultiDay(t *testing.T) {
	calc := Calculator{}

	// 14:00 on day 1 through 10:00 on day 3:
	// 3h first afternoon + 8h full day + 2h last morning.
	got := calc.Compute(Span{
		StartDate: date(2024, 6, 3),
		EndDate:   date(2024, 6, 5),
		Start:     clock(14, 0),
		End:       clock(10, 0),
	})
	assert.Equal(t, 13.0, got)

	// Two consecutive full days, no middle day.
	got = calc.Compute(Span{
		StartDate: date(2024, 6, 3),
		EndDate:   date(2024, 6, 4),
		Start:     clock(8, 0),
		End:       clock(17, 0),
	})
	assert.Equal(t, 16.0, got)

	// Start before noon on the first day keeps the lunch exclusion.
	got = calc.Compute(Span{
		StartDate: date(2024, 6, 3),
		EndDate:   date(2024, 6, 4),
		Start:     clock(10, 0),
		End:       clock(12, 0),
	})
	assert.Equal(t, 10.0, got)
}

func TestCompute_EndDateBeforeStartDate(t *testing.T) {
	calc := Calculator{}

	got := calc.Compute(Span{
		StartDate: date(2024, 6, 5),
		EndDate:   date(2024, 6, 3),
		Start:     clock(8, 0),
		End:       clock(17, 0),
	})
	assert.Equal(t, 0.0, got)
}

func TestCompute_Overtime(t *testing.T) {
	d := date(2024, 6, 3)

	clamped := Calculator{}
	accruing := Calculator{Overtime: true}

	span := Span{StartDate: d, EndDate: d, Start: clock(9, 0), End: clock(19, 0)}
	assert.Equal(t, 7.0, clamped.Compute(span))
	assert.Equal(t, 9.0, accruing.Compute(span))

	// Pure evening work only counts when overtime accrual is on.
	evening := Span{StartDate: d, EndDate: d, Start: clock(18, 0), End: clock(21, 0)}
	assert.Equal(t, 0.0, clamped.Compute(evening))
	assert.Equal(t, 3.0, accruing.Compute(evening))
}

func TestParseSpan(t *testing.T) {
	span, err := ParseSpan("2024-06-03", "2024-06-05", "08:00", "17:00:00")
	require.NoError(t, err)
	assert.Equal(t, date(2024, 6, 3), span.StartDate)
	assert.Equal(t, date(2024, 6, 5), span.EndDate)
	assert.Equal(t, clock(8, 0), span.Start)
	assert.Equal(t, clock(17, 0), span.End)
}

func TestParseSpan_CollectsFieldErrors(t *testing.T) {
	_, err := ParseSpan("junk", "2024-06-05", "8am", "17:00")
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)

	fields := errs.ToMap()
	assert.Contains(t, fields, "start_date")
	assert.Contains(t, fields, "start_time")
	assert.NotContains(t, fields, "end_date")
	assert.NotContains(t, fields, "end_time")
}

func TestTimeOfDayString(t *testing.T) {
	assert.Equal(t, "08:00", clock(8, 0).String())
	assert.Equal(t, "17:05", clock(17, 5).String())
}
