package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDayCode(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want DayCode
	}{
		{"empty", "", DayCode{Kind: DayEmpty}},
		{"blank", "   ", DayCode{Kind: DayEmpty}},
		{"single work", "K", DayCode{Kind: DaySingle, First: CodeWork, Raw: "K"}},
		{"single maternity", "TS", DayCode{Kind: DaySingle, First: CodeMaternity, Raw: "TS"}},
		{"split work leave", "K/P", DayCode{Kind: DaySplit, First: CodeWork, Second: CodeLeave, Raw: "K/P"}},
		{"split reversed", "P/K", DayCode{Kind: DaySplit, First: CodeLeave, Second: CodeWork, Raw: "P/K"}},
		{"split with spaces", " K / O ", DayCode{Kind: DaySplit, First: CodeWork, Second: CodeSick, Raw: "K / O"}},
		{"unknown", "???", DayCode{Kind: DayUnknown, Raw: "???"}},
		{"unknown half", "K/??", DayCode{Kind: DayUnknown, Raw: "K/??"}},
		{"lowercase is unknown", "k", DayCode{Kind: DayUnknown, Raw: "k"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDayCode(tt.raw))
		})
	}
}

func TestFillMonth_PastFutureBoundary(t *testing.T) {
	// 2024-06-15 is a Saturday; 14 is a Friday, 16 a Sunday.
	today := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	ledger := map[string]string{
		"03": "P",
		"20": "K", // stale future entry, must be wiped
	}

	filled := FillMonth(ledger, "2024-06", today)
	require.Len(t, filled, 30)

	assert.Equal(t, "P", filled["03"], "recorded entries survive")
	assert.Equal(t, "K", filled["14"], "past weekday defaults to work")
	assert.Equal(t, "", filled["15"], "Saturday defaults to blank")
	assert.Equal(t, "", filled["09"], "Sunday defaults to blank")
	assert.Equal(t, "", filled["16"], "future days stay blank")
	assert.Equal(t, "", filled["20"], "stale future entries are overridden")
	assert.Equal(t, "", filled["30"])
}

func TestFillMonth_KeepsManualWeekendEntries(t *testing.T) {
	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	filled := FillMonth(map[string]string{"08": "K"}, "2024-06", today)

	// 8 June 2024 is a Saturday that was explicitly marked as worked.
	assert.Equal(t, "K", filled["08"])
}

func TestFillMonth_TodayOutsideMonth(t *testing.T) {
	today := time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC)

	filled := FillMonth(map[string]string{}, "2024-06", today)
	require.Len(t, filled, 30)

	// Whole month is in the past: all weekdays defaulted.
	assert.Equal(t, "K", filled["28"])
	assert.Equal(t, "", filled["29"])
	assert.Equal(t, "", filled["30"])
}

func TestFillMonth_InvalidMonth(t *testing.T) {
	assert.Empty(t, FillMonth(map[string]string{"01": "K"}, "junk", time.Now()))
}

func TestSummarize_CompositeCode(t *testing.T) {
	s := Summarize(map[string]string{"01": "K/P"})

	assert.Equal(t, 0.5, s.Work)
	assert.Equal(t, 0.5, s.Leave)
	assert.Equal(t, 1.0, s.Total)
}

func TestSummarize_Buckets(t *testing.T) {
	row := map[string]string{
		"01": "K",
		"02": "K",
		"03": "P",
		"04": "H",
		"05": "O",
		"06": "TS",
		"07": "VS",
		"08": "VR",
		"09": "NM",
		"10": "TQ",
		"11": "BD",
		"12": "L",
		"13": "TV",
		"14": "K/O",
		"15": "",
	}

	s := Summarize(row)

	assert.Equal(t, 2.5, s.Work)
	assert.Equal(t, 1.0, s.Leave)
	assert.Equal(t, 1.0, s.Meeting)
	assert.Equal(t, 3.5, s.SocialInsurance)
	assert.Equal(t, 5.0, s.Unpaid)
	assert.Equal(t, 1.0, s.Probation)
	assert.Equal(t, 14.0, s.Total)
}

func TestSummarize_UnrecognizedCodesAreSkipped(t *testing.T) {
	assert.NotPanics(t, func() {
		s := Summarize(map[string]string{"01": "???", "02": "K/junk", "03": "work"})
		assert.Equal(t, Summary{}, s)
	})
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		month string
		days  int
		ok    bool
	}{
		{"2024-02", 29, true},
		{"2023-02", 28, true},
		{"2024-06", 30, true},
		{"2024-12", 31, true},
		{"2024-13", 0, false},
		{"nope", 0, false},
	}

	for _, tt := range tests {
		days, ok := DaysInMonth(tt.month)
		assert.Equal(t, tt.ok, ok, tt.month)
		assert.Equal(t, tt.days, days, tt.month)
	}
}
