// Package server assembles the routers for the three services. All three
// share the same middleware stack; the blog and weather routers
// additionally put the authorization gate in front of their APIs. The
// users router is the permission authority itself and is not gated — it
// is what the gate's resolver calls.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gatekit/gatekit/internal/access"
	"github.com/gatekit/gatekit/internal/blog"
	"github.com/gatekit/gatekit/internal/directory"
	"github.com/gatekit/gatekit/internal/handlers"
	"github.com/gatekit/gatekit/internal/httpx"
	mw2 "github.com/gatekit/gatekit/internal/mw"
	"github.com/gatekit/gatekit/internal/users"
	"github.com/gatekit/gatekit/internal/version"
	"github.com/gatekit/gatekit/internal/weather"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Options struct {
	EnableCORS     bool
	RequestTimeout time.Duration
}

type Deps struct {
	Directory directory.Store
	Users     *users.Service
	Articles  blog.Repository
	Blog      *blog.Service
	Weather   *weather.Service
	Checker   access.Checker
}

func baseRouter(opts Options) *chi.Mux {
	r := chi.NewRouter()

	// baseline
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.RequestTimeout))
	}

	if opts.EnableCORS {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Content-Type", httpx.IdentityHeader},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// tracing + logger
	r.Use(mw2.Trace())
	r.Use(mw2.Logger(mw2.LogOpts{
		SkipPaths:     []string{"/healthz", "/version"},
		RedactHeaders: []string{"Authorization"},
	}))

	r.Get("/healthz", healthCheckHandler)
	r.Get("/version", handlers.Version)

	return r
}

// BuildUsersRouter serves the permission directory's users API.
func BuildUsersRouter(d Deps, opts Options) http.Handler {
	r := baseRouter(opts)

	uh := handlers.NewUsersHandler(d.Directory, d.Users)
	r.Route("/api/users", func(api chi.Router) {
		api.Get("/", uh.List)
		api.Post("/", uh.Create)
		api.Get("/{id}", uh.GetByID)
		api.Put("/{id}", uh.Update)
		api.Delete("/{id}", uh.Delete)
	})

	return r
}

// BuildBlogRouter serves the articles API behind the authorization gate.
func BuildBlogRouter(d Deps, opts Options) http.Handler {
	r := baseRouter(opts)

	ah := handlers.NewArticlesHandler(d.Articles, d.Blog)
	r.Route("/api/articles", func(api chi.Router) {
		api.Use(mw2.RequireIdentity(d.Checker))
		api.Get("/", ah.List)
		api.Post("/", ah.Create)
		api.Get("/{id}", ah.GetByID)
		api.Put("/{id}", ah.Update)
		api.Delete("/{id}", ah.Delete)
	})

	return r
}

// BuildWeatherRouter serves the forecast API behind the authorization gate.
func BuildWeatherRouter(d Deps, opts Options) http.Handler {
	r := baseRouter(opts)

	wh := handlers.NewWeatherHandler(d.Weather)
	r.Route("/api/forecast", func(api chi.Router) {
		api.Use(mw2.RequireIdentity(d.Checker))
		api.Get("/", wh.Forecast)
	})

	return r
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"version": version.Version,
	})
}
