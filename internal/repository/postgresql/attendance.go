package postgresql

import (
	"context"
	"fmt"

	"github.com/haneco/timesheet-backend-go/internal/domain/attendance"
	"github.com/haneco/timesheet-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type ledgerRepositoryImpl struct {
	db *database.DB
}

func NewLedgerRepository(db *database.DB) attendance.LedgerRepository {
	return &ledgerRepositoryImpl{db: db}
}

const ledgerColumns = `id, user_id, month, day_codes, total_days, created_at, updated_at`

func scanLedger(row pgx.Row) (attendance.MonthlyLedger, error) {
	var l attendance.MonthlyLedger
	err := row.Scan(
		&l.ID,
		&l.UserID,
		&l.Month,
		&l.DayCodes,
		&l.TotalDays,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	return l, err
}

// GetByMonth implements attendance.LedgerRepository.
func (r *ledgerRepositoryImpl) GetByMonth(ctx context.Context, month string) ([]attendance.MonthlyLedger, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + ledgerColumns + ` FROM attendance_monthly WHERE month = $1 ORDER BY user_id ASC`

	rows, err := q.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledgers: %w", err)
	}
	defer rows.Close()

	var ledgers []attendance.MonthlyLedger
	for rows.Next() {
		l, err := scanLedger(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger: %w", err)
		}
		ledgers = append(ledgers, l)
	}

	return ledgers, rows.Err()
}

// GetByUserAndMonth implements attendance.LedgerRepository.
func (r *ledgerRepositoryImpl) GetByUserAndMonth(ctx context.Context, userID, month string) (attendance.MonthlyLedger, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + ledgerColumns + ` FROM attendance_monthly WHERE user_id = $1 AND month = $2`

	l, err := scanLedger(q.QueryRow(ctx, query, userID, month))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.MonthlyLedger{}, attendance.ErrLedgerNotFound
		}
		return attendance.MonthlyLedger{}, fmt.Errorf("failed to get ledger: %w", err)
	}

	return l, nil
}

// Upsert implements attendance.LedgerRepository. The whole day_codes row
// is replaced; the most recent save wins.
func (r *ledgerRepositoryImpl) Upsert(ctx context.Context, l attendance.MonthlyLedger) (attendance.MonthlyLedger, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_monthly (id, user_id, month, day_codes, total_days, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id, month)
		DO UPDATE SET day_codes = EXCLUDED.day_codes, total_days = EXCLUDED.total_days, updated_at = NOW()
		RETURNING ` + ledgerColumns

	result, err := scanLedger(q.QueryRow(ctx, query, l.UserID, l.Month, l.DayCodes, l.TotalDays))
	if err != nil {
		return attendance.MonthlyLedger{}, fmt.Errorf("failed to upsert ledger: %w", err)
	}

	return result, nil
}
