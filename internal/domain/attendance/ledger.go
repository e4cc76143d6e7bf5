package attendance

import (
	"fmt"
	"time"
)

// DaysInMonth returns the number of calendar days in a "YYYY-MM" month.
// ok is false when the month string does not parse.
func DaysInMonth(month string) (int, bool) {
	first, err := time.Parse("2006-01", month)
	if err != nil {
		return 0, false
	}
	return time.Date(first.Year(), first.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day(), true
}

// DayKey renders a day-of-month as the two-digit ledger key.
func DayKey(day int) string {
	return fmt.Sprintf("%02d", day)
}

// FillMonth reconciles a sparse ledger against the calendar: every day of
// the month gets a cell. Days up to and including today keep their
// recorded code, or default to a full work day on weekdays and to blank
// on Saturday/Sunday. Days after today are forced blank, overwriting any
// stale value a client may have written ahead of time.
//
// today is injected by the caller so the past/future boundary is
// deterministic under test.
func FillMonth(ledger map[string]string, month string, today time.Time) map[string]string {
	days, ok := DaysInMonth(month)
	if !ok {
		return map[string]string{}
	}
	first, _ := time.Parse("2006-01", month)
	todayDay := dateOnly(today)

	filled := make(map[string]string, days)
	for day := 1; day <= days; day++ {
		key := DayKey(day)
		date := time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)

		if date.After(todayDay) {
			filled[key] = ""
			continue
		}

		if code, exists := ledger[key]; exists && code != "" {
			filled[key] = code
			continue
		}

		if isWeekend(date) {
			filled[key] = ""
		} else {
			filled[key] = string(CodeWork)
		}
	}
	return filled
}

// Summarize totals a ledger row into category buckets. Unrecognized
// codes are skipped rather than rejected; a malformed row can never make
// the summary fail.
func Summarize(row map[string]string) Summary {
	var s Summary
	for _, raw := range row {
		switch dc := ParseDayCode(raw); dc.Kind {
		case DaySingle:
			s.add(dc.First, 1)
		case DaySplit:
			s.add(dc.First, 0.5)
			s.add(dc.Second, 0.5)
		}
	}
	s.Total = s.Work + s.Leave + s.Meeting + s.SocialInsurance + s.Unpaid + s.Probation
	return s
}

func (s *Summary) add(code Code, weight float64) {
	switch code {
	case CodeWork:
		s.Work += weight
	case CodeLeave:
		s.Leave += weight
	case CodeMeeting:
		s.Meeting += weight
	case CodeSick, CodeMaternity, CodePaternity:
		s.SocialInsurance += weight
	case CodeBereavement, CodeRetreat, CodeStudyTrip, CodeTraining, CodeHoliday:
		s.Unpaid += weight
	case CodeProbation:
		s.Probation += weight
	}
}

func isWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
