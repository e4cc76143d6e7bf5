package main

import (
	"fmt"
	"net/http"

	"github.com/haneco/timesheet-backend-go/internal/config"
	appHTTP "github.com/haneco/timesheet-backend-go/internal/handler/http"
	"github.com/haneco/timesheet-backend-go/internal/handler/http/middleware"
	"github.com/haneco/timesheet-backend-go/internal/pkg/cron"
	"github.com/haneco/timesheet-backend-go/internal/pkg/database"
	"github.com/haneco/timesheet-backend-go/internal/pkg/jwt"
	"github.com/haneco/timesheet-backend-go/internal/pkg/oauth"
	"github.com/haneco/timesheet-backend-go/internal/pkg/workhours"
	"github.com/haneco/timesheet-backend-go/internal/repository/postgresql"
	attendanceService "github.com/haneco/timesheet-backend-go/internal/service/attendance"
	serviceAuth "github.com/haneco/timesheet-backend-go/internal/service/auth"
	catalogService "github.com/haneco/timesheet-backend-go/internal/service/catalog"
	projectService "github.com/haneco/timesheet-backend-go/internal/service/project"
	taskService "github.com/haneco/timesheet-backend-go/internal/service/task"
	userService "github.com/haneco/timesheet-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	jobRepo := postgresql.NewJobRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	ledgerRepo := postgresql.NewLedgerRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authSvc := serviceAuth.NewAuthService(db, userRepo, JWTService, JWTRepository, GoogleService)
	userSvc := userService.NewUserService(db, userRepo)
	projectSvc := projectService.NewProjectService(db, projectRepo, userRepo, taskRepo)
	catalogSvc := catalogService.NewCatalogService(db, jobRepo, taskRepo)
	taskSvc := taskService.NewTaskService(db, taskRepo, projectRepo, jobRepo, userRepo, workhours.Calculator{})
	attendanceSvc := attendanceService.NewAttendanceService(db, ledgerRepo, userRepo)

	lastSeen := middleware.NewLastSeenTracker()

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc, GoogleService)
	userHandler := appHTTP.NewUserHandler(userSvc)
	projectHandler := appHTTP.NewProjectHandler(projectSvc)
	catalogHandler := appHTTP.NewCatalogHandler(catalogSvc)
	taskHandler := appHTTP.NewTaskHandler(taskSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)

	router := appHTTP.NewRouter(
		JWTService,
		lastSeen,
		cfg.App.CORSOrigin,
		authHandler,
		userHandler,
		projectHandler,
		catalogHandler,
		taskHandler,
		attendanceHandler,
	)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceSvc, userRepo, lastSeen).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
