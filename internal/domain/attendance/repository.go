package attendance

import (
	"context"
)

// LedgerRepository - interface for the attendance_monthly table
type LedgerRepository interface {
	GetByMonth(ctx context.Context, month string) ([]MonthlyLedger, error)
	GetByUserAndMonth(ctx context.Context, userID, month string) (MonthlyLedger, error)
	Upsert(ctx context.Context, ledger MonthlyLedger) (MonthlyLedger, error)
}
