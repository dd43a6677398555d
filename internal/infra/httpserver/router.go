package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	appanalysis "github.com/bryanwahyu/clarity-analyzer/internal/application/analysis"
	"github.com/bryanwahyu/clarity-analyzer/internal/config"
	domain "github.com/bryanwahyu/clarity-analyzer/internal/domain/analysis"
	"github.com/bryanwahyu/clarity-analyzer/internal/middleware"
)

// warnEmptyInput is the one user-facing error message of the system.
const warnEmptyInput = "Please paste at least one URL."

type Router struct {
	svc   *appanalysis.Service
	title string
}

func NewRouter(svc *appanalysis.Service, cfg *config.Config) http.Handler {
	r := &Router{svc: svc, title: cfg.App.Title}
	mux := chi.NewRouter()

	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(middleware.RateLimitMiddleware(cfg.RateLimit.Capacity, cfg.RateLimit.RefillRate))

	mux.Get("/health", middleware.HealthHandler(map[string]middleware.HealthChecker{
		"analyzer": &middleware.AnalyzerHealthChecker{Analyzer: svc.Analyzer},
	}))
	mux.Get("/ready", middleware.ReadinessHandler)
	mux.Get("/live", middleware.LivenessHandler)
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Get("/", r.wrap(r.handleIndex))
	mux.Post("/", r.wrap(r.handleRun))

	mux.Route("/v1", func(rt chi.Router) {
		rt.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
		}))
		rt.Post("/analyze", r.wrap(r.handleAnalyze))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			if errors.Is(err, domain.ErrNoURLs) {
				http.Error(w, warnEmptyInput, http.StatusBadRequest)
				return
			}
			if errors.Is(err, domain.ErrBackendTimeout) {
				http.Error(w, err.Error(), http.StatusGatewayTimeout)
				return
			}
			if errors.Is(err, domain.ErrBackendUnreachable) {
				http.Error(w, err.Error(), http.StatusBadGateway)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// GET / — the empty form.
func (r *Router) handleIndex(w http.ResponseWriter, req *http.Request) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return renderPage(w, BuildViewModel(r.title, "", "", nil))
}

// POST / — form submit. Empty input renders the warning page, not an
// error response; the results section is suppressed entirely.
func (r *Router) handleRun(w http.ResponseWriter, req *http.Request) error {
	if err := req.ParseForm(); err != nil {
		return err
	}
	text := req.PostFormValue("urls")
	selected := req.PostFormValue("selected")

	res, err := r.svc.Run(req.Context(), appanalysis.RunCommand{Text: text})
	if errors.Is(err, domain.ErrNoURLs) {
		middleware.IncrementEmptyInput()
		vm := BuildViewModel(r.title, text, "", nil)
		vm.Warning = warnEmptyInput
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		return renderPage(w, vm)
	}
	if err != nil {
		return err
	}

	middleware.IncrementRuns()
	middleware.AddURLsAnalyzed(res.Requested)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return renderPage(w, BuildViewModel(r.title, text, selected, res))
}

// POST /v1/analyze
// Body: {"urls": "<one URL per line>"}
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		URLs string `json:"urls"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return err
	}

	res, err := r.svc.Run(req.Context(), appanalysis.RunCommand{Text: body.URLs})
	if err != nil {
		if errors.Is(err, domain.ErrNoURLs) {
			middleware.IncrementEmptyInput()
		}
		return err
	}

	middleware.IncrementRuns()
	middleware.AddURLsAnalyzed(res.Requested)

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(res)
}
