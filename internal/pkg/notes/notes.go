// Package notes handles the time and date tokens embedded in task note
// fields, e.g. "⏰ 08:00 - 17:00 (2024-06-03 - 2024-06-05) site survey".
package notes

import (
	"regexp"
	"strings"
	"time"
)

// Annotation is the machine-readable part of a task note. DateToken is
// kept verbatim so re-insertion reproduces the original delimiter.
type Annotation struct {
	StartTime string
	EndTime   string
	DateToken string
}

var (
	timeTokenRe = regexp.MustCompile(`⏰\s*(\d{1,2}:\d{2})(?::\d{2})?\s*[-–]\s*(\d{1,2}:\d{2})(?::\d{2})?`)
	dateTokenRe = regexp.MustCompile(`\((\d{4}-\d{2}-\d{2})\s*[-–→]\s*(\d{4}-\d{2}-\d{2})\)`)
)

// HasTimes reports whether the annotation carries a usable time range.
func (a Annotation) HasTimes() bool {
	return a.StartTime != "" && a.EndTime != ""
}

// Extract pulls the time range and date range tokens out of a note.
// Times are normalized to HH:MM (seconds dropped); the remainder is the
// free-text body with whitespace collapsed. A note without a time token
// comes back unchanged apart from trimming.
func Extract(note string) (Annotation, string) {
	var ann Annotation

	m := timeTokenRe.FindStringSubmatch(note)
	if m == nil {
		return ann, normalize(note)
	}
	ann.StartTime = normalizeClock(m[1])
	ann.EndTime = normalizeClock(m[2])

	rest := timeTokenRe.ReplaceAllString(note, "")

	if d := dateTokenRe.FindString(rest); d != "" {
		ann.DateToken = d
		rest = strings.Replace(rest, d, "", 1)
	}

	return ann, normalize(rest)
}

// Reinsert rebuilds a note from an annotation and a body. Any tokens
// already present in the body are stripped first, so the result carries
// at most one time token no matter how often it round-trips.
func Reinsert(ann Annotation, body string) string {
	_, body = Extract(body)

	if !ann.HasTimes() {
		return body
	}

	parts := []string{"⏰ " + ann.StartTime + " - " + ann.EndTime}
	if ann.DateToken != "" {
		parts = append(parts, ann.DateToken)
	}
	if body != "" {
		parts = append(parts, body)
	}
	return strings.Join(parts, " ")
}

// ParseDateToken recovers the start and end dates from a date token. The
// ok result is false when the annotation has no parseable date range.
func ParseDateToken(token string) (start, end time.Time, ok bool) {
	m := dateTokenRe.FindStringSubmatch(token)
	if m == nil {
		return time.Time{}, time.Time{}, false
	}
	start, err := time.Parse("2006-01-02", m[1])
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err = time.Parse("2006-01-02", m[2])
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// FormatDateToken renders a date range in the canonical token form.
func FormatDateToken(start, end time.Time) string {
	return "(" + start.Format("2006-01-02") + " - " + end.Format("2006-01-02") + ")"
}

func normalizeClock(s string) string {
	if len(s) == 4 { // "8:00" -> "08:00"
		return "0" + s
	}
	return s
}

func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
