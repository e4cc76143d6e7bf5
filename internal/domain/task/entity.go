package task

import "time"

type Task struct {
	ID        string
	ProjectID string
	Task      string // job catalog name at assignment time, kept in sync on rename
	Assignee  string // username
	KhoiLuong float64
	Deadline  *time.Time
	Note      string
	Progress  int // 0-100
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsDone reports whether the task has been completed.
func (t *Task) IsDone() bool {
	return t.Progress >= 100
}

// ProgressStats aggregates task progress per project or per assignee.
type ProgressStats struct {
	Total        int     `json:"total"`
	Done         int     `json:"done"`
	InProgress   int     `json:"in_progress"`
	NotStarted   int     `json:"not_started"`
	MeanProgress float64 `json:"mean_progress"`
}
