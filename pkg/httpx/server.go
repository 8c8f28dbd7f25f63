package httpx

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/unrolled/secure"
)

const (
	defaultRequestsPerMinute = 100
	defaultHandlerTimeout    = 30 * time.Second
	maxBodyBytes             = 1 << 20

	// docsPrefix serves the Swagger UI, which needs inline scripts and styles.
	docsPrefix = "/swagger/"
)

// ServerConfig holds the options for NewRouter and NewServer.
type ServerConfig struct {
	ServiceName   string
	IsDevelopment bool
	// CORSAllowedOrigins is a comma-separated list of allowed origins.
	// "*" (dev only) allows all origins without credentials.
	CORSAllowedOrigins string
	// RequestsPerMinute caps requests per client IP. Zero means 100.
	RequestsPerMinute int
	// HandlerTimeout bounds each request. It must cover the slowest
	// upstream call a handler makes, such as a recommendation prompt.
	// Zero means 30s.
	HandlerTimeout time.Duration
}

func (c ServerConfig) handlerTimeout() time.Duration {
	if c.HandlerTimeout <= 0 {
		return defaultHandlerTimeout
	}
	return c.HandlerTimeout
}

// Middlewares are the app-provided layers NewRouter installs around the
// chi built-ins. Nil entries are skipped.
type Middlewares struct {
	Recovery func(http.Handler) http.Handler // outermost; catches re-panics from Sentry
	Sentry   func(http.Handler) http.Handler
	Tracing  func(http.Handler) http.Handler
	Logger   func(http.Handler) http.Handler
}

// NewRouter returns a chi.Mux with the standard stack, outermost first:
// recovery, Sentry, request id, tracing, access log, real IP, per-IP rate
// limit, CORS, 1 MB body cap, handler timeout and security headers.
func NewRouter(cfg ServerConfig, mw Middlewares) *chi.Mux {
	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = defaultRequestsPerMinute
	}

	stack := make([]func(http.Handler) http.Handler, 0, 11)
	add := func(m func(http.Handler) http.Handler) {
		if m != nil {
			stack = append(stack, m)
		}
	}
	add(mw.Recovery)
	add(mw.Sentry)
	add(middleware.RequestID)
	add(mw.Tracing)
	add(mw.Logger)
	add(middleware.RealIP)
	add(httprate.LimitByIP(rpm, time.Minute))
	add(CORSMiddleware(cfg.CORSAllowedOrigins))
	add(RequestBodyLimit(maxBodyBytes))
	add(middleware.Timeout(cfg.handlerTimeout()))
	add(SecurityHeaders(cfg.IsDevelopment))

	r := chi.NewRouter()
	r.Use(stack...)
	return r
}

// SecurityHeaders sets HSTS, CSP, frame and referrer headers. The API gets
// a locked-down CSP; the docs UI gets one that permits its own inline assets.
func SecurityHeaders(isDevelopment bool) func(http.Handler) http.Handler {
	base := secure.Options{
		STSSeconds:           63072000,
		STSIncludeSubdomains: true,
		FrameDeny:            true,
		ContentTypeNosniff:   true,
		BrowserXssFilter:     true,
		ReferrerPolicy:       "strict-origin-when-cross-origin",
		PermissionsPolicy:    "geolocation=(), microphone=(), camera=(), usb=(), magnetometer=(), gyroscope=()",
		IsDevelopment:        isDevelopment,
	}

	api := base
	api.ContentSecurityPolicy = "default-src 'none'; frame-ancestors 'none'"
	docs := base
	docs.ContentSecurityPolicy = "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data:"

	apiSec, docsSec := secure.New(api), secure.New(docs)
	return func(next http.Handler) http.Handler {
		apiH, docsH := apiSec.Handler(next), docsSec.Handler(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, docsPrefix) {
				docsH.ServeHTTP(w, r)
				return
			}
			apiH.ServeHTTP(w, r)
		})
	}
}

// CORSMiddleware restricts cross-origin access to allowedOrigins, a
// comma-separated list. Explicit origins may send the session cookie; the
// "*" wildcard may not.
func CORSMiddleware(allowedOrigins string) func(http.Handler) http.Handler {
	origins := parseOrigins(allowedOrigins)
	wildcard := len(origins) == 1 && origins[0] == "*"
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Location", "X-Request-Id"},
		AllowCredentials: !wildcard,
		MaxAge:           300,
	})
}

func parseOrigins(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p := strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// RequestBodyLimit caps the request body at maxBytes. Reads past the cap
// fail with *http.MaxBytesError.
func RequestBodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// NewServer returns an *http.Server whose write deadline leaves room for
// the router's handler timeout to fire first and answer with a 503.
func NewServer(addr string, handler http.Handler, cfg ServerConfig) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.handlerTimeout() + 5*time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}
}
