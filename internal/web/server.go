package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/ytget/yt-playlist-mp3/internal/flow"
	"github.com/ytget/yt-playlist-mp3/internal/locale"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server defaults
const (
	DefaultReadTimeout     = 15 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultRateLimit       = 5
	DefaultRateBurst       = 10
)

// Renderer runs one flow pass
type Renderer interface {
	Render(ctx context.Context, in flow.Input) flow.View
}

// Stats supplies the counters reported by /healthz
type Stats struct {
	Fetches   func() int64
	Completed func() int64
	Failed    func() int64
}

// Config holds server tuning
type Config struct {
	Language    string
	RateLimit   float64
	RateBurst   int
	ReadTimeout time.Duration
}

// HealthStatus is the /healthz response body
type HealthStatus struct {
	Status             string `json:"status"`
	Fetches            int64  `json:"fetches"`
	DownloadsCompleted int64  `json:"downloads_completed"`
	DownloadsFailed    int64  `json:"downloads_failed"`
	Uptime             string `json:"uptime"`
}

// Server is the HTTP front-end
type Server struct {
	renderer Renderer
	stats    Stats
	cfg      Config
	limiter  *rate.Limiter
	page     *template.Template
	started  time.Time
}

// NewServer creates a server and parses the embedded templates
func NewServer(renderer Renderer, stats Stats, cfg Config) (*Server, error) {
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = DefaultRateLimit
	}
	if cfg.RateBurst <= 0 {
		cfg.RateBurst = DefaultRateBurst
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = DefaultReadTimeout
	}

	page, err := template.ParseFS(templateFS, "templates/page.html")
	if err != nil {
		return nil, err
	}

	return &Server{
		renderer: renderer,
		stats:    stats,
		cfg:      cfg,
		limiter:  rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
		page:     page,
		started:  time.Now(),
	}, nil
}

// Handler returns the routed handler
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.rateLimitMiddleware(s.handleIndex))
	mux.HandleFunc("POST /download", s.rateLimitMiddleware(s.handleDownload))
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return mux
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down.
// Writes have no deadline since a download request blocks until it ends.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:        addr,
		Handler:     s.Handler(),
		ReadTimeout: s.cfg.ReadTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Web front-end listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down web front-end...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) rateLimitMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			text := locale.For(s.language(r)).GetText(locale.KeyRateLimited)
			http.Error(w, text, http.StatusTooManyRequests)
			return
		}
		next(w, r)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	// A URL arriving on the index page is a new entry and is extracted
	// again; only fetch=0 reuses the cached listing.
	fetch := true
	if v := q.Get("fetch"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			fetch = parsed
		}
	}

	view := s.renderer.Render(r.Context(), flow.Input{
		URL:       q.Get("url"),
		Directory: q.Get("dir"),
		Fetch:     fetch,
		Lang:      s.language(r),
	})
	s.renderPage(w, view)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	view := s.renderer.Render(r.Context(), flow.Input{
		URL:       r.PostForm.Get("url"),
		Directory: r.PostForm.Get("dir"),
		Confirm:   true,
		Lang:      s.language(r),
	})
	s.renderPage(w, view)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	health := HealthStatus{
		Status:             "healthy",
		Fetches:            counter(s.stats.Fetches),
		DownloadsCompleted: counter(s.stats.Completed),
		DownloadsFailed:    counter(s.stats.Failed),
		Uptime:             time.Since(s.started).Round(time.Second).String(),
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(health); err != nil {
		log.Printf("failed to encode health status: %v", err)
	}
}

// pageData is the template context
type pageData struct {
	View flow.View
	l    *locale.Localization
}

// Text returns the localized label for key
func (d pageData) Text(key string) string {
	return d.l.GetText(key)
}

func (s *Server) renderPage(w http.ResponseWriter, view flow.View) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := pageData{View: view, l: locale.For(view.Lang)}
	if err := s.page.Execute(w, data); err != nil {
		log.Printf("failed to render page: %v", err)
	}
}

// language picks ?lang=, then the form value, then Accept-Language, then the default
func (s *Server) language(r *http.Request) string {
	if lang := strings.TrimSpace(r.FormValue("lang")); lang != "" {
		return lang
	}
	if header := r.Header.Get("Accept-Language"); header != "" {
		return locale.Match(header)
	}
	return locale.Normalize(s.cfg.Language)
}

func counter(fn func() int64) int64 {
	if fn == nil {
		return 0
	}
	return fn()
}
