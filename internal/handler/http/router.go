package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/haneco/timesheet-backend-go/internal/handler/http/middleware"
	"github.com/haneco/timesheet-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	lastSeen *middleware.LastSeenTracker,
	corsOrigin string,
	authHandler AuthHandler,
	userHandler UserHandler,
	projectHandler ProjectHandler,
	catalogHandler CatalogHandler,
	taskHandler TaskHandler,
	attendanceHandler AttendanceHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timesheet-haneco"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", authHandler.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", authHandler.LoginWithGoogle)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))
			r.Use(lastSeen.Middleware)

			r.Route("/users", func(r chi.Router) {
				r.Get("/me", userHandler.Me)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", userHandler.List)
					r.Post("/", userHandler.Create)
					r.Get("/{id}", userHandler.GetByID)
					r.Put("/{id}", userHandler.Update)
					r.Put("/{id}/roles", userHandler.UpdateRoles)
					r.Put("/{id}/password", userHandler.ChangePassword)
					r.Delete("/{id}", userHandler.Delete)
				})
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/visible", projectHandler.ListVisible)
				r.Get("/{id}", projectHandler.GetByID)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", projectHandler.List)
					r.Post("/", projectHandler.Create)
					r.Put("/{id}", projectHandler.Update)
					r.Delete("/{id}", projectHandler.Delete)
				})
			})

			r.Route("/catalog/jobs", func(r chi.Router) {
				r.Get("/", catalogHandler.List)
				r.Get("/tree", catalogHandler.Tree)
				r.Get("/{id}", catalogHandler.GetByID)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", catalogHandler.Create)
					r.Put("/{id}", catalogHandler.Update)
					r.Delete("/{id}", catalogHandler.Delete)
				})
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/my", taskHandler.ListMine)
				r.Get("/{id}", taskHandler.GetByID)
				r.Put("/{id}", taskHandler.Update)
				r.Get("/project/{projectID}", taskHandler.ListByProject)
				r.Get("/project/{projectID}/stats", taskHandler.ProjectStats)
				r.Get("/assignee/{username}", taskHandler.ListByAssignee)
				r.Get("/assignee/{username}/stats", taskHandler.AssigneeStats)

				// Managers and admins
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/assign", taskHandler.Assign)
					r.Delete("/{id}", taskHandler.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/{month}/users/{userID}", attendanceHandler.GetUserMonth)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/{month}", attendanceHandler.GetMonthGrid)
					r.Post("/", attendanceHandler.SaveLedger)
				})
			})
		})
	})
	return r
}
