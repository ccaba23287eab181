package server

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/klauspost/compress/gzhttp"
	"github.com/patrickmn/go-cache"

	"github.com/katalvlaran/transitcat/catalogue"
	"github.com/katalvlaran/transitcat/config"
	"github.com/katalvlaran/transitcat/render"
	"github.com/katalvlaran/transitcat/router"
)

// Server holds the read-only state shared by all handlers.
type Server struct {
	cat    *catalogue.Catalogue
	rt     *router.Router
	routes *cache.Cache // nil when route caching is disabled
	logger *slog.Logger

	renderer *render.Renderer // nil when no map style was supplied
	mapOnce  sync.Once
	mapSVG   string
}

// Option configures New.
type Option func(*Server)

// WithRenderer enables GET /v1/map. The map is drawn on first request.
func WithRenderer(r *render.Renderer) Option {
	return func(s *Server) { s.renderer = r }
}

// New wires the HTTP routes. cfg supplies CORS origins and the route cache TTL.
func New(cat *catalogue.Catalogue, rt *router.Router, cfg *config.Config, logger *slog.Logger, opts ...Option) http.Handler {
	s := &Server{cat: cat, rt: rt, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	if cfg.Cache.RouteTTL > 0 {
		s.routes = cache.New(cfg.Cache.RouteTTL, cfg.Cache.CleanupInterval)
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.HTTP.CORSOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader, cacheHeader},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.healthz)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/buses/{name}", s.getBus)
		r.Get("/stops/{name}", s.getStop)
		r.Get("/stops/{name}/buses", s.getStopBuses)
		r.Get("/stops/{name}/reachable", s.getReachable)
		r.Get("/route", s.getRoute)
		r.Get("/stats", s.getStats)
		r.Get("/map", s.getMap)
	})

	return gzipMiddleware(r)
}

func gzipMiddleware(next http.Handler) http.Handler {
	wrapper, err := gzhttp.NewWrapper(
		gzhttp.MinSize(1024),
		gzhttp.CompressionLevel(6),
	)
	if err != nil {
		// Only reachable with invalid static options above.
		panic(err)
	}
	return wrapper(next)
}

// NewHTTPServer builds an http.Server bound to cfg.HTTP.Addr with its timeouts.
func NewHTTPServer(handler http.Handler, cfg *config.Config) *http.Server {
	return &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       2 * time.Minute,
	}
}
