package attendance

import (
	"strings"
	"time"
)

// Code is a day's attendance status symbol.
type Code string

const (
	CodeWork        Code = "K"  // full work day
	CodeLeave       Code = "P"  // paid leave
	CodeMeeting     Code = "H"  // meeting
	CodeStudyTrip   Code = "TQ" // study trip
	CodeTraining    Code = "BD" // training
	CodeHoliday     Code = "L"  // public holiday
	CodeSick        Code = "O"  // sick / family sick leave
	CodeBereavement Code = "VR" // bereavement or celebration leave
	CodeRetreat     Code = "NM" // company retreat
	CodeMaternity   Code = "TS" // maternity leave
	CodePaternity   Code = "VS" // spouse-birth leave
	CodeProbation   Code = "TV" // probation
)

var knownCodes = map[Code]struct{}{
	CodeWork: {}, CodeLeave: {}, CodeMeeting: {}, CodeStudyTrip: {},
	CodeTraining: {}, CodeHoliday: {}, CodeSick: {}, CodeBereavement: {},
	CodeRetreat: {}, CodeMaternity: {}, CodePaternity: {}, CodeProbation: {},
}

// IsKnown reports whether c belongs to the closed code set.
func (c Code) IsKnown() bool {
	_, ok := knownCodes[c]
	return ok
}

// DayCodeKind discriminates the parsed forms of a ledger cell.
type DayCodeKind int

const (
	DayEmpty DayCodeKind = iota
	DaySingle
	DaySplit
	DayUnknown
)

// DayCode is a ledger cell decoded into its tagged form: empty, one
// full-day code, a half/half split, or an unrecognized string carried
// verbatim.
type DayCode struct {
	Kind   DayCodeKind
	First  Code
	Second Code
	Raw    string
}

// ParseDayCode decodes a raw ledger cell. Composite cells use a slash
// ("K/P" = half work, half leave); order is not significant. Anything
// outside the closed code set parses as DayUnknown rather than failing,
// legacy rows carry junk we must tolerate.
func ParseDayCode(raw string) DayCode {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return DayCode{Kind: DayEmpty}
	}

	if a, b, found := strings.Cut(trimmed, "/"); found {
		first, second := Code(strings.TrimSpace(a)), Code(strings.TrimSpace(b))
		if first.IsKnown() && second.IsKnown() {
			return DayCode{Kind: DaySplit, First: first, Second: second, Raw: trimmed}
		}
		return DayCode{Kind: DayUnknown, Raw: trimmed}
	}

	code := Code(trimmed)
	if code.IsKnown() {
		return DayCode{Kind: DaySingle, First: code, Raw: trimmed}
	}
	return DayCode{Kind: DayUnknown, Raw: trimmed}
}

// Summary aggregates a month of day codes into category totals, counted
// in days (composite codes contribute half a day per side).
type Summary struct {
	Work            float64 `json:"work_days"`
	Leave           float64 `json:"leave_days"`
	Meeting         float64 `json:"meeting_days"`
	SocialInsurance float64 `json:"social_insurance_days"`
	Unpaid          float64 `json:"unpaid_days"`
	Probation       float64 `json:"probation_days"`
	Total           float64 `json:"total_days"`
}

// MonthlyLedger is one user's attendance row for one month. DayCodes maps
// zero-padded day-of-month keys ("01".."31") to raw attendance codes.
type MonthlyLedger struct {
	ID        string
	UserID    string
	Month     string // YYYY-MM
	DayCodes  map[string]string
	TotalDays float64
	CreatedAt time.Time
	UpdatedAt time.Time
}
