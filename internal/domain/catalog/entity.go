package catalog

import "time"

// UnitDailyWage marks jobs whose quantity is billed in whole working
// days; task rows for these jobs get their hours computed from a time
// range instead of being entered directly.
const UnitDailyWage = "Công"

type Job struct {
	ID          string
	Name        string
	Unit        string
	ParentID    *string
	ProjectType string // "public" or "group"; legacy NULL rows read back as "group"
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsDailyWage reports whether quantities for this job are day counts.
func (j *Job) IsDailyWage() bool {
	return j.Unit == UnitDailyWage
}

// IsParent reports whether the job is a top-level category.
func (j *Job) IsParent() bool {
	return j.ParentID == nil
}
