package notes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		note     string
		want     Annotation
		wantBody string
	}{
		{
			name:     "time and date tokens",
			note:     "⏰ 08:00 - 17:00 (2024-06-03 - 2024-06-05) site survey",
			want:     Annotation{StartTime: "08:00", EndTime: "17:00", DateToken: "(2024-06-03 - 2024-06-05)"},
			wantBody: "site survey",
		},
		{
			name:     "time token only",
			note:     "⏰ 09:30 - 11:45 cable check",
			want:     Annotation{StartTime: "09:30", EndTime: "11:45"},
			wantBody: "cable check",
		},
		{
			name:     "seconds are dropped",
			note:     "⏰ 08:00:00 - 17:00:00 report",
			want:     Annotation{StartTime: "08:00", EndTime: "17:00"},
			wantBody: "report",
		},
		{
			name:     "arrow date separator",
			note:     "⏰ 08:00 - 17:00 (2024-06-03→2024-06-04)",
			want:     Annotation{StartTime: "08:00", EndTime: "17:00", DateToken: "(2024-06-03→2024-06-04)"},
			wantBody: "",
		},
		{
			name:     "en dash time separator",
			note:     "⏰ 8:00 – 17:00 meeting notes",
			want:     Annotation{StartTime: "08:00", EndTime: "17:00"},
			wantBody: "meeting notes",
		},
		{
			name:     "no tokens",
			note:     "  plain note  ",
			want:     Annotation{},
			wantBody: "plain note",
		},
		{
			name:     "newline between tokens and body",
			note:     "⏰ 08:00 - 12:00\nhalf day",
			want:     Annotation{StartTime: "08:00", EndTime: "12:00"},
			wantBody: "half day",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ann, body := Extract(tt.note)
			assert.Equal(t, tt.want, ann)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestReinsert(t *testing.T) {
	ann := Annotation{StartTime: "08:00", EndTime: "17:00", DateToken: "(2024-06-03 - 2024-06-05)"}

	got := Reinsert(ann, "site survey")
	assert.Equal(t, "⏰ 08:00 - 17:00 (2024-06-03 - 2024-06-05) site survey", got)

	got = Reinsert(ann, "")
	assert.Equal(t, "⏰ 08:00 - 17:00 (2024-06-03 - 2024-06-05)", got)

	// Without a time range the body passes through untouched.
	got = Reinsert(Annotation{DateToken: "(2024-06-03 - 2024-06-05)"}, "note only")
	assert.Equal(t, "note only", got)
}

func TestReinsert_NeverDuplicatesTokens(t *testing.T) {
	ann := Annotation{StartTime: "08:00", EndTime: "17:00", DateToken: "(2024-06-03 - 2024-06-05)"}

	// A body that still carries an old token must not produce two.
	stale := "⏰ 07:00 - 15:00 (2024-01-01 - 2024-01-02) old body"
	got := Reinsert(ann, stale)
	assert.Equal(t, "⏰ 08:00 - 17:00 (2024-06-03 - 2024-06-05) old body", got)
	assert.Equal(t, 1, len(timeTokenRe.FindAllString(got, -1)))
}

func TestExtractReinsert_Idempotent(t *testing.T) {
	original := Reinsert(Annotation{
		StartTime: "08:00",
		EndTime:   "17:00",
		DateToken: "(2024-06-03 - 2024-06-05)",
	}, "trench inspection")

	note := original
	for i := 0; i < 3; i++ {
		ann, body := Extract(note)
		note = Reinsert(ann, body)
		require.Equal(t, original, note, "cycle %d", i+1)
	}

	// Also holds with an empty body.
	empty := Reinsert(Annotation{StartTime: "08:00", EndTime: "12:00"}, "")
	ann, body := Extract(empty)
	assert.Equal(t, empty, Reinsert(ann, body))
}

func TestParseDateToken(t *testing.T) {
	start, end, ok := ParseDateToken("(2024-06-03 - 2024-06-05)")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC), end)

	_, _, ok = ParseDateToken("")
	assert.False(t, ok)

	_, _, ok = ParseDateToken("(not - dates)")
	assert.False(t, ok)
}

func TestFormatDateToken(t *testing.T) {
	start := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "(2024-06-03 - 2024-06-05)", FormatDateToken(start, end))
}
