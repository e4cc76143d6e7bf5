package task

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/haneco/timesheet-backend-go/internal/domain/task"
	"github.com/haneco/timesheet-backend-go/internal/pkg/database"
	"github.com/haneco/timesheet-backend-go/internal/pkg/workhours"
	"github.com/haneco/timesheet-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTaskDB *database.DB

func taskTestInit(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	if testTaskDB != nil {
		return
	}

	var err error
	testTaskDB, err = database.NewPostgreSQLDB(dsn)
	require.NoError(t, err, "failed to connect to test database")
}

func truncateTaskTables(t *testing.T, ctx context.Context) {
	for _, table := range []string{"tasks", "job_catalog", "projects", "users"} {
		_, err := testTaskDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func createTaskTestUser(t *testing.T, ctx context.Context, username, role string, managerOf []string) string {
	if managerOf == nil {
		managerOf = []string{}
	}
	var userID string
	err := testTaskDB.QueryRow(ctx, `
		INSERT INTO users (id, username, display_name, password_hash, role, manager_of, leader_of, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, 'x', $3, $4, '{}', NOW(), NOW())
		RETURNING id
	`, username, "Test "+username, role, managerOf).Scan(&userID)
	require.NoError(t, err)
	return userID
}

func createTaskTestProject(t *testing.T, ctx context.Context, name string) string {
	var projectID string
	err := testTaskDB.QueryRow(ctx, `
		INSERT INTO projects (id, name, project_type, design_step, created_at, updated_at)
		VALUES (uuidv7(), $1, 'group', '', NOW(), NOW())
		RETURNING id
	`, name).Scan(&projectID)
	require.NoError(t, err)
	return projectID
}

func createTaskTestJob(t *testing.T, ctx context.Context, name, unit string) {
	_, err := testTaskDB.Exec(ctx, `
		INSERT INTO job_catalog (id, name, unit, project_type, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, 'group', NOW(), NOW())
	`, name, unit)
	require.NoError(t, err)
}

func newTestTaskService() task.TaskService {
	return NewTaskService(
		testTaskDB,
		postgresql.NewTaskRepository(testTaskDB),
		postgresql.NewProjectRepository(testTaskDB),
		postgresql.NewJobRepository(testTaskDB),
		postgresql.NewUserRepository(testTaskDB),
		workhours.Calculator{},
	)
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func intPtr(i int) *int { return &i }

func TestAssign_DailyWageComputesHoursAndStampsNote(t *testing.T) {
	taskTestInit(t)
	ctx := context.Background()
	truncateTaskTables(t, ctx)

	managerID := createTaskTestUser(t, ctx, "manager", "manager", []string{"Khu A"})
	createTaskTestUser(t, ctx, "staff", "user", nil)
	projectID := createTaskTestProject(t, ctx, "Khu A")
	createTaskTestJob(t, ctx, "Giám sát thi công", "Công")

	svc := newTestTaskService()
	created, err := svc.Assign(ctx, managerID, task.AssignTasksRequest{
		ProjectID: projectID,
		Rows: []task.AssignTaskRow{{
			Task:      "Giám sát thi công",
			Assignee:  "staff",
			Note:      "khảo sát hiện trường",
			StartDate: strPtr("2024-06-03"),
			EndDate:   strPtr("2024-06-03"),
			StartTime: strPtr("08:00"),
			EndTime:   strPtr("17:00"),
		}},
	})
	require.NoError(t, err)
	require.Len(t, created, 1)

	// 08:00-17:00 minus the lunch hour.
	assert.InDelta(t, 8.0, created[0].KhoiLuong, 0.001)
	assert.True(t, strings.HasPrefix(created[0].Note, "⏰ 08:00 - 17:00 (2024-06-03 - 2024-06-03)"))
	assert.Contains(t, created[0].Note, "khảo sát hiện trường")
}

func TestAssign_RegularJobKeepsEnteredQuantity(t *testing.T) {
	taskTestInit(t)
	ctx := context.Background()
	truncateTaskTables(t, ctx)

	managerID := createTaskTestUser(t, ctx, "manager", "manager", []string{"Khu A"})
	createTaskTestUser(t, ctx, "staff", "user", nil)
	projectID := createTaskTestProject(t, ctx, "Khu A")
	createTaskTestJob(t, ctx, "Bản vẽ kết cấu", "bản")

	svc := newTestTaskService()
	created, err := svc.Assign(ctx, managerID, task.AssignTasksRequest{
		ProjectID: projectID,
		Rows: []task.AssignTaskRow{{
			Task:      "Bản vẽ kết cấu",
			Assignee:  "staff",
			KhoiLuong: floatPtr(12),
		}},
	})
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.InDelta(t, 12.0, created[0].KhoiLuong, 0.001)
	assert.Empty(t, created[0].Note)
}

func TestAssign_RequiresProjectManager(t *testing.T) {
	taskTestInit(t)
	ctx := context.Background()
	truncateTaskTables(t, ctx)

	staffID := createTaskTestUser(t, ctx, "staff", "user", nil)
	projectID := createTaskTestProject(t, ctx, "Khu A")
	createTaskTestJob(t, ctx, "Bản vẽ kết cấu", "bản")

	svc := newTestTaskService()
	_, err := svc.Assign(ctx, staffID, task.AssignTasksRequest{
		ProjectID: projectID,
		Rows: []task.AssignTaskRow{{
			Task:     "Bản vẽ kết cấu",
			Assignee: "staff",
		}},
	})
	assert.ErrorIs(t, err, task.ErrNotProjectOwner)
}

func TestAssign_UnknownJob(t *testing.T) {
	taskTestInit(t)
	ctx := context.Background()
	truncateTaskTables(t, ctx)

	managerID := createTaskTestUser(t, ctx, "manager", "manager", []string{"Khu A"})
	createTaskTestUser(t, ctx, "staff", "user", nil)
	projectID := createTaskTestProject(t, ctx, "Khu A")

	svc := newTestTaskService()
	_, err := svc.Assign(ctx, managerID, task.AssignTasksRequest{
		ProjectID: projectID,
		Rows: []task.AssignTaskRow{{
			Task:     "không tồn tại",
			Assignee: "staff",
		}},
	})
	assert.ErrorIs(t, err, task.ErrUnknownJob)
}

func TestUpdate_DailyWageNoteRecomputesHours(t *testing.T) {
	taskTestInit(t)
	ctx := context.Background()
	truncateTaskTables(t, ctx)

	managerID := createTaskTestUser(t, ctx, "manager", "manager", []string{"Khu A"})
	createTaskTestUser(t, ctx, "staff", "user", nil)
	projectID := createTaskTestProject(t, ctx, "Khu A")
	createTaskTestJob(t, ctx, "Giám sát thi công", "Công")

	svc := newTestTaskService()
	created, err := svc.Assign(ctx, managerID, task.AssignTasksRequest{
		ProjectID: projectID,
		Rows: []task.AssignTaskRow{{
			Task:      "Giám sát thi công",
			Assignee:  "staff",
			StartDate: strPtr("2024-06-03"),
			EndDate:   strPtr("2024-06-03"),
			StartTime: strPtr("08:00"),
			EndTime:   strPtr("17:00"),
		}},
	})
	require.NoError(t, err)

	// Staff edits the token down to a two-hour morning.
	updated, err := svc.Update(ctx, task.UpdateTaskRequest{
		ID:   created[0].ID,
		Note: strPtr("⏰ 09:00 - 11:00 (2024-06-03 - 2024-06-03) đo đạc lại"),
	})
	require.NoError(t, err)

	assert.InDelta(t, 2.0, updated.KhoiLuong, 0.001)
	assert.True(t, strings.HasPrefix(updated.Note, "⏰ 09:00 - 11:00 (2024-06-03 - 2024-06-03)"))
	assert.Contains(t, updated.Note, "đo đạc lại")
}

func TestUpdate_ProgressAndStats(t *testing.T) {
	taskTestInit(t)
	ctx := context.Background()
	truncateTaskTables(t, ctx)

	managerID := createTaskTestUser(t, ctx, "manager", "manager", []string{"Khu A"})
	createTaskTestUser(t, ctx, "staff", "user", nil)
	projectID := createTaskTestProject(t, ctx, "Khu A")
	createTaskTestJob(t, ctx, "Bản vẽ kết cấu", "bản")

	svc := newTestTaskService()
	created, err := svc.Assign(ctx, managerID, task.AssignTasksRequest{
		ProjectID: projectID,
		Rows: []task.AssignTaskRow{
			{Task: "Bản vẽ kết cấu", Assignee: "staff", KhoiLuong: floatPtr(3)},
			{Task: "Bản vẽ kết cấu", Assignee: "staff", KhoiLuong: floatPtr(5)},
		},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)

	_, err = svc.Update(ctx, task.UpdateTaskRequest{ID: created[0].ID, Progress: intPtr(100)})
	require.NoError(t, err)
	_, err = svc.Update(ctx, task.UpdateTaskRequest{ID: created[1].ID, Progress: intPtr(50)})
	require.NoError(t, err)

	stats, err := svc.ProjectStats(ctx, projectID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Done)
	assert.Equal(t, 1, stats.InProgress)
	assert.Equal(t, 0, stats.NotStarted)
	assert.InDelta(t, 75.0, stats.MeanProgress, 0.001)

	userStats, err := svc.AssigneeStats(ctx, "staff")
	require.NoError(t, err)
	assert.Equal(t, stats, userStats)
}

func TestUpdate_ProgressOutOfRange(t *testing.T) {
	taskTestInit(t)

	svc := newTestTaskService()
	_, err := svc.Update(context.Background(), task.UpdateTaskRequest{
		ID:       "irrelevant",
		Progress: intPtr(150),
	})
	assert.Error(t, err)
}
