package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/taskpost-api/internal/api"
	apiMiddleware "github.com/phrazzld/taskpost-api/internal/api/middleware"
	"github.com/phrazzld/taskpost-api/internal/api/shared"
)

const healthTimeout = 2 * time.Second

// setupRouter creates the router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.Tracing(app.tracerProvider))
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(apiMiddleware.Recoverer)
	if app.metrics != nil {
		r.Use(app.metrics.Middleware)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	taskHandler := api.NewTaskHandler(app.taskService, app.logger)
	postHandler := api.NewPostHandler(app.postService, app.logger)
	authHandler := api.NewAuthHandler(app.userService, app.jwtService, app.tokenStore, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService, app.tokenStore)

	r.Route("/api", func(r chi.Router) {
		if app.rateLimiter != nil {
			r.Use(app.rateLimiter.Middleware)
		}

		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Post("/logout", authHandler.Logout)
			r.Get("/user", authHandler.Me)
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", taskHandler.ListTasks)
			r.Post("/", taskHandler.CreateTask)
			r.Get("/{id}", taskHandler.GetTask)
			r.Put("/{id}", taskHandler.UpdateTask)
			r.Patch("/{id}", taskHandler.UpdateTask)
			r.Delete("/{id}", taskHandler.DeleteTask)
		})

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", postHandler.ListPosts)
			r.Post("/", postHandler.CreatePost)
			r.Get("/{id}", postHandler.GetPost)
			r.Put("/{id}", postHandler.UpdatePost)
			r.Patch("/{id}", postHandler.UpdatePost)
			r.Delete("/{id}", postHandler.DeletePost)
		})
	})

	r.Get("/health", app.handleHealth)
	if app.metrics != nil {
		r.Method(http.MethodGet, "/metrics", app.metrics.Handler())
	}

	return r
}

// handleHealth reports whether the database answers a ping.
func (app *application) handleHealth(w http.ResponseWriter, r *http.Request) {
	if app.health != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()
		if err := app.health.PingContext(ctx); err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable,
				"Service Unavailable", err, shared.WithElevatedLogLevel())
			return
		}
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
