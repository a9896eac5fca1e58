package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/tmanas06/uportfolio-sub000/internal/catalog"
	"github.com/tmanas06/uportfolio-sub000/internal/content"
	"github.com/tmanas06/uportfolio-sub000/internal/handlers"
	"github.com/tmanas06/uportfolio-sub000/internal/service"
)

// Catalog is the part of *catalog.Catalog the router needs.
type Catalog interface {
	handlers.Reloader
	handlers.SnapshotReader
}

var _ Catalog = (*catalog.Catalog)(nil)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	SearchService service.SearchService
	Catalog       Catalog
	Renderer      *content.Renderer
	CORSOrigin    string
	// RateLimit is the sustained requests per second allowed on content
	// endpoints; zero disables limiting. RateBurst is the bucket size.
	RateLimit float64
	RateBurst int
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(CORS(deps.CORSOrigin))

	renderer := deps.Renderer
	if renderer == nil {
		renderer = content.NewRenderer()
	}

	var limit func(http.Handler) http.Handler
	if deps.RateLimit > 0 {
		burst := deps.RateBurst
		if burst < 1 {
			burst = 1
		}
		limit = RateLimit(rate.NewLimiter(rate.Limit(deps.RateLimit), burst))
	}

	r.Route("/api", func(r chi.Router) {
		// Health probes stay outside the limiter.
		r.Method(http.MethodGet, "/health", handlers.NewHealthHandler(deps.Catalog))

		if limit != nil {
			r = r.With(limit)
		}

		r.Method(http.MethodGet, "/search", handlers.NewSearchHandler(deps.SearchService))
		r.Method(http.MethodGet, "/search/submit", handlers.NewSubmitHandler(deps.SearchService))
		r.Method(http.MethodGet, "/search/select/{id}", handlers.NewSelectHandler(deps.SearchService))

		r.Method(http.MethodGet, "/projects", handlers.NewProjectsHandler(deps.SearchService))
		r.Method(http.MethodGet, "/projects/{id}", handlers.NewProjectHandler(deps.SearchService, renderer))

		for _, name := range []string{
			handlers.CollectionSkills,
			handlers.CollectionExperience,
			handlers.CollectionAchievements,
			handlers.CollectionCertifications,
		} {
			r.Method(http.MethodGet, "/"+name, handlers.NewCollectionHandler(deps.SearchService, name))
		}

		r.Method(http.MethodGet, "/profile", handlers.NewProfileHandler(deps.SearchService, renderer))
		r.Method(http.MethodPost, "/reload", handlers.NewReloadHandler(deps.Catalog))
	})

	return r
}
