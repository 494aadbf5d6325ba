package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/mainakmishra/equinox/docs"
	"github.com/mainakmishra/equinox/internal/api/handler"
	"github.com/mainakmishra/equinox/internal/api/middleware"
)

type Router struct {
	userHandler      *handler.UserHandler
	healthLogHandler *handler.HealthLogHandler
	noteHandler      *handler.NoteHandler
	todoHandler      *handler.TodoHandler
	chatHandler      *handler.ChatHandler
	authHandler      *handler.AuthHandler
}

func NewRouter(
	userHandler *handler.UserHandler,
	healthLogHandler *handler.HealthLogHandler,
	noteHandler *handler.NoteHandler,
	todoHandler *handler.TodoHandler,
	chatHandler *handler.ChatHandler,
	authHandler *handler.AuthHandler,
) *Router {
	return &Router{
		userHandler:      userHandler,
		healthLogHandler: healthLogHandler,
		noteHandler:      noteHandler,
		todoHandler:      todoHandler,
		chatHandler:      chatHandler,
		authHandler:      authHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// OAuth2 redirect target sits outside the user subtree
		r.Get("/google/callback", rt.authHandler.Callback)

		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)

			r.Route("/{userId}", func(r chi.Router) {
				r.Get("/", rt.userHandler.GetByID)
				r.Get("/profile", rt.userHandler.GetProfile)
				r.Patch("/profile", rt.userHandler.UpdateProfile)

				r.Route("/health-logs", func(r chi.Router) {
					r.Post("/", rt.healthLogHandler.Create)
					r.Get("/", rt.healthLogHandler.History)
					r.Get("/today", rt.healthLogHandler.Today)
				})

				// Wellness analytics
				r.Get("/readiness", rt.healthLogHandler.Readiness)
				r.Get("/sleep-debt", rt.healthLogHandler.SleepDebt)
				r.Get("/trends", rt.healthLogHandler.Trends)
				r.Get("/streak", rt.healthLogHandler.Streak)

				r.Route("/notes", func(r chi.Router) {
					r.Post("/", rt.noteHandler.Create)
					r.Get("/", rt.noteHandler.List)
					r.Patch("/{noteId}", rt.noteHandler.Update)
					r.Delete("/{noteId}", rt.noteHandler.Delete)
				})

				r.Route("/todos", func(r chi.Router) {
					r.Post("/", rt.todoHandler.Create)
					r.Get("/", rt.todoHandler.List)
					r.Patch("/{todoId}", rt.todoHandler.Update)
					r.Delete("/{todoId}", rt.todoHandler.Delete)
				})

				r.Post("/chat", rt.chatHandler.Chat)
				r.Post("/briefing", rt.chatHandler.Briefing)

				r.Route("/google", func(r chi.Router) {
					r.Get("/login", rt.authHandler.Login)
					r.Get("/status", rt.authHandler.Status)
					r.Delete("/", rt.authHandler.Unlink)
				})
			})
		})
	})

	return r
}
