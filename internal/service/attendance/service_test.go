package attendance

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/haneco/timesheet-backend-go/internal/domain/attendance"
	"github.com/haneco/timesheet-backend-go/internal/pkg/database"
	"github.com/haneco/timesheet-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAttendanceDB *database.DB

func attendanceTestInit(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	if testAttendanceDB != nil {
		return
	}

	var err error
	testAttendanceDB, err = database.NewPostgreSQLDB(dsn)
	require.NoError(t, err, "failed to connect to test database")
}

func truncateAttendanceTables(t *testing.T, ctx context.Context) {
	for _, table := range []string{"attendance_monthly", "users"} {
		_, err := testAttendanceDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func createAttendanceTestUser(t *testing.T, ctx context.Context, username string) string {
	var userID string
	err := testAttendanceDB.QueryRow(ctx, `
		INSERT INTO users (id, username, display_name, password_hash, role, manager_of, leader_of, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, 'x', 'user', '{}', '{}', NOW(), NOW())
		RETURNING id
	`, username, "Test "+username).Scan(&userID)
	require.NoError(t, err)
	return userID
}

func newTestAttendanceService(today time.Time) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		db:               testAttendanceDB,
		LedgerRepository: postgresql.NewLedgerRepository(testAttendanceDB),
		UserRepository:   postgresql.NewUserRepository(testAttendanceDB),
		now:              func() time.Time { return today },
	}
}

func TestSaveLedger_RecomputesTotalsAndBlanksFuture(t *testing.T) {
	attendanceTestInit(t)
	ctx := context.Background()
	truncateAttendanceTables(t, ctx)

	userID := createAttendanceTestUser(t, ctx, "nva")
	// Saturday 2024-06-15.
	svc := newTestAttendanceService(time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC))

	resp, err := svc.SaveLedger(ctx, attendance.SaveLedgerRequest{
		UserID: userID,
		Month:  "2024-06",
		DayCodes: map[string]string{
			"03": "P",
			"04": "K/P",
			"20": "K", // future, must be blanked
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "P", resp.DayCodes["03"])
	assert.Equal(t, "K/P", resp.DayCodes["04"])
	assert.Equal(t, "", resp.DayCodes["20"])
	// Weekdays 05..14 default to K: 8 weekdays.
	assert.Equal(t, "K", resp.DayCodes["05"])
	assert.Equal(t, "", resp.DayCodes["08"]) // Saturday
	assert.InDelta(t, 8.5, resp.Summary.Work, 0.001)
	assert.InDelta(t, 1.5, resp.Summary.Leave, 0.001)

	// The row survives a reload with the same totals.
	reloaded, err := svc.GetUserMonth(ctx, userID, "2024-06")
	require.NoError(t, err)
	assert.Equal(t, resp.Summary, reloaded.Summary)
}

func TestSaveLedger_LastWriteWins(t *testing.T) {
	attendanceTestInit(t)
	ctx := context.Background()
	truncateAttendanceTables(t, ctx)

	userID := createAttendanceTestUser(t, ctx, "nvb")
	svc := newTestAttendanceService(time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC))

	_, err := svc.SaveLedger(ctx, attendance.SaveLedgerRequest{
		UserID:   userID,
		Month:    "2024-06",
		DayCodes: map[string]string{"03": "P"},
	})
	require.NoError(t, err)

	resp, err := svc.SaveLedger(ctx, attendance.SaveLedgerRequest{
		UserID:   userID,
		Month:    "2024-06",
		DayCodes: map[string]string{"03": "H"},
	})
	require.NoError(t, err)

	assert.Equal(t, "H", resp.DayCodes["03"])
	assert.InDelta(t, 1.0, resp.Summary.Meeting, 0.001)
	assert.InDelta(t, 0.0, resp.Summary.Leave, 0.001)
}

func TestGetMonthGrid_IncludesUsersWithoutSavedRows(t *testing.T) {
	attendanceTestInit(t)
	ctx := context.Background()
	truncateAttendanceTables(t, ctx)

	savedID := createAttendanceTestUser(t, ctx, "saved")
	freshID := createAttendanceTestUser(t, ctx, "fresh")
	svc := newTestAttendanceService(time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC))

	_, err := svc.SaveLedger(ctx, attendance.SaveLedgerRequest{
		UserID:   savedID,
		Month:    "2024-06",
		DayCodes: map[string]string{"03": "P"},
	})
	require.NoError(t, err)

	grid, err := svc.GetMonthGrid(ctx, "2024-06")
	require.NoError(t, err)
	assert.Equal(t, 30, grid.Days)
	require.Len(t, grid.Rows, 2)

	byID := map[string]attendance.LedgerResponse{}
	for _, row := range grid.Rows {
		byID[row.UserID] = row
	}
	assert.Equal(t, "P", byID[savedID].DayCodes["03"])
	// The fresh user gets the reconciled default month.
	assert.Equal(t, "K", byID[freshID].DayCodes["03"])
	assert.Equal(t, "", byID[freshID].DayCodes["16"])
}

func TestGetMonthGrid_InvalidMonth(t *testing.T) {
	attendanceTestInit(t)
	svc := newTestAttendanceService(time.Now())

	_, err := svc.GetMonthGrid(context.Background(), "2024-13")
	assert.ErrorIs(t, err, attendance.ErrInvalidMonth)
}

func TestAutoFillCurrentMonth_PersistsDefaults(t *testing.T) {
	attendanceTestInit(t)
	ctx := context.Background()
	truncateAttendanceTables(t, ctx)

	userID := createAttendanceTestUser(t, ctx, "cronuser")
	today := time.Date(2024, 6, 15, 6, 0, 0, 0, time.UTC)
	svc := newTestAttendanceService(today)

	require.NoError(t, svc.AutoFillCurrentMonth(ctx))

	row, err := svc.GetByUserAndMonth(ctx, userID, "2024-06")
	require.NoError(t, err)
	assert.Equal(t, "K", row.DayCodes["14"])
	assert.Equal(t, "", row.DayCodes["16"])
	assert.Greater(t, row.TotalDays, 0.0)
}
