package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/haneco/timesheet-backend-go/internal/domain/attendance"
	"github.com/haneco/timesheet-backend-go/internal/domain/user"
	"github.com/haneco/timesheet-backend-go/internal/handler/http/middleware"
)

type AttendanceJobs struct {
	attendanceSvc attendance.AttendanceService
	userRepo      user.UserRepository
	lastSeen      *middleware.LastSeenTracker
}

func NewAttendanceJobs(
	attendanceSvc attendance.AttendanceService,
	userRepo user.UserRepository,
	lastSeen *middleware.LastSeenTracker,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceSvc: attendanceSvc,
		userRepo:      userRepo,
		lastSeen:      lastSeen,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_fill_attendance", 1*time.Hour, j.AutoFillAttendance)
	scheduler.AddJob("flush_last_seen", 1*time.Minute, j.FlushLastSeen)
}

// AutoFillAttendance persists the reconciled default ledger for the
// current month so the grid never shows stale rows after midnight.
func (j *AttendanceJobs) AutoFillAttendance(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting attendance auto-fill job")

	if err := j.attendanceSvc.AutoFillCurrentMonth(ctx); err != nil {
		return err
	}

	slog.Info("Cron: Attendance auto-fill completed")
	return nil
}

// FlushLastSeen writes buffered activity timestamps to the users table.
func (j *AttendanceJobs) FlushLastSeen(ctx context.Context) error {
	j.lastSeen.Flush(ctx, j.userRepo)
	return nil
}
