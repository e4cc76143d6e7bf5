package attendance

import (
	"context"
)

// AttendanceService defines business logic for the monthly attendance
// ledger.
type AttendanceService interface {
	// GetMonthGrid returns the reconciled ledger of every user for a
	// month, with past weekdays auto-filled and future days blank.
	GetMonthGrid(ctx context.Context, month string) (MonthGridResponse, error)

	// GetUserMonth returns one user's reconciled ledger row.
	GetUserMonth(ctx context.Context, userID, month string) (LedgerResponse, error)

	// SaveLedger overwrites a user-month row wholesale and recomputes its
	// totals. Last writer wins; there is no merge.
	SaveLedger(ctx context.Context, req SaveLedgerRequest) (LedgerResponse, error)

	// AutoFillCurrentMonth persists the reconciled defaults for every user
	// for the month containing now. Used by the scheduler.
	AutoFillCurrentMonth(ctx context.Context) error
}
