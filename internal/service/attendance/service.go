package attendance

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/haneco/timesheet-backend-go/internal/domain/attendance"
	"github.com/haneco/timesheet-backend-go/internal/domain/user"
	"github.com/haneco/timesheet-backend-go/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.LedgerRepository
	user.UserRepository
	now func() time.Time
}

func NewAttendanceService(db *database.DB, ledgerRepository attendance.LedgerRepository, userRepository user.UserRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:               db,
		LedgerRepository: ledgerRepository,
		UserRepository:   userRepository,
		now:              time.Now,
	}
}

// GetMonthGrid implements attendance.AttendanceService. Every user gets
// a row; users without a saved ledger get the reconciled default month.
func (s *AttendanceServiceImpl) GetMonthGrid(ctx context.Context, month string) (attendance.MonthGridResponse, error) {
	if !attendance.IsValidMonth(month) {
		return attendance.MonthGridResponse{}, attendance.ErrInvalidMonth
	}

	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return attendance.MonthGridResponse{}, err
	}

	ledgers, err := s.GetByMonth(ctx, month)
	if err != nil {
		return attendance.MonthGridResponse{}, err
	}
	byUser := make(map[string]attendance.MonthlyLedger, len(ledgers))
	for _, l := range ledgers {
		byUser[l.UserID] = l
	}

	days, _ := attendance.DaysInMonth(month)
	grid := attendance.MonthGridResponse{
		Month: month,
		Days:  days,
		Rows:  make([]attendance.LedgerResponse, 0, len(users)),
	}

	today := s.now()
	for _, u := range users {
		codes := attendance.FillMonth(byUser[u.ID].DayCodes, month, today)
		grid.Rows = append(grid.Rows, attendance.LedgerResponse{
			UserID:      u.ID,
			DisplayName: u.DisplayName,
			Month:       month,
			DayCodes:    codes,
			Summary:     attendance.Summarize(codes),
		})
	}

	return grid, nil
}

// GetUserMonth implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetUserMonth(ctx context.Context, userID, month string) (attendance.LedgerResponse, error) {
	if !attendance.IsValidMonth(month) {
		return attendance.LedgerResponse{}, attendance.ErrInvalidMonth
	}

	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return attendance.LedgerResponse{}, err
	}

	ledger, err := s.GetByUserAndMonth(ctx, userID, month)
	if err != nil && !errors.Is(err, attendance.ErrLedgerNotFound) {
		return attendance.LedgerResponse{}, err
	}

	codes := attendance.FillMonth(ledger.DayCodes, month, s.now())
	return attendance.LedgerResponse{
		UserID:      u.ID,
		DisplayName: u.DisplayName,
		Month:       month,
		DayCodes:    codes,
		Summary:     attendance.Summarize(codes),
	}, nil
}

// SaveLedger implements attendance.AttendanceService. The whole month
// row is overwritten; when two editors race, the later save wins.
func (s *AttendanceServiceImpl) SaveLedger(ctx context.Context, req attendance.SaveLedgerRequest) (attendance.LedgerResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.LedgerResponse{}, err
	}

	u, err := s.UserRepository.GetByID(ctx, req.UserID)
	if err != nil {
		return attendance.LedgerResponse{}, err
	}

	codes := attendance.FillMonth(req.DayCodes, req.Month, s.now())
	summary := attendance.Summarize(codes)

	saved, err := s.Upsert(ctx, attendance.MonthlyLedger{
		UserID:    req.UserID,
		Month:     req.Month,
		DayCodes:  codes,
		TotalDays: summary.Total,
	})
	if err != nil {
		return attendance.LedgerResponse{}, err
	}

	return attendance.LedgerResponse{
		UserID:      saved.UserID,
		DisplayName: u.DisplayName,
		Month:       saved.Month,
		DayCodes:    saved.DayCodes,
		Summary:     summary,
	}, nil
}

// AutoFillCurrentMonth implements attendance.AttendanceService. Run
// daily by the scheduler so past weekdays carry the default work code
// before anyone opens the grid.
func (s *AttendanceServiceImpl) AutoFillCurrentMonth(ctx context.Context) error {
	today := s.now()
	month := today.Format("2006-01")

	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return err
	}

	ledgers, err := s.GetByMonth(ctx, month)
	if err != nil {
		return err
	}
	byUser := make(map[string]attendance.MonthlyLedger, len(ledgers))
	for _, l := range ledgers {
		byUser[l.UserID] = l
	}

	for _, u := range users {
		codes := attendance.FillMonth(byUser[u.ID].DayCodes, month, today)
		summary := attendance.Summarize(codes)
		if _, err := s.Upsert(ctx, attendance.MonthlyLedger{
			UserID:    u.ID,
			Month:     month,
			DayCodes:  codes,
			TotalDays: summary.Total,
		}); err != nil {
			slog.Error("failed to auto-fill attendance",
				slog.String("user_id", u.ID),
				slog.String("month", month),
				slog.Any("error", err))
		}
	}

	return nil
}
