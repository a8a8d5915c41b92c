package server

import (
	"bufio"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/tnl-dmg-calc/internal/platform/otel"
	"github.com/louisbranch/tnl-dmg-calc/internal/platform/requestctx"
	"github.com/louisbranch/tnl-dmg-calc/internal/storage"
)

const tracerName = "github.com/louisbranch/tnl-dmg-calc/internal/services/calc/app"

// RequestIDHeader correlates a request with its logs and span.
const RequestIDHeader = "X-Request-ID"

const maxRequestIDLen = 128

const apiPrefix = "/api/v1"

// Options configures the calculator routes.
type Options struct {
	// BaseURL prefixes share links; an empty value yields fragment-only links.
	BaseURL string
	// Sessions stores saved sessions. Session routes are not mounted when nil.
	Sessions storage.SessionStore
	// MaxBodyBytes caps request bodies; DefaultMaxBodyBytes when zero.
	MaxBodyBytes int64
	// Now is the clock used for saved session timestamps.
	Now func() time.Time
	// NewID generates saved session ids.
	NewID func() (string, error)
}

type handler struct {
	baseURL      string
	sessions     storage.SessionStore
	maxBodyBytes int64
	now          func() time.Time
	newID        func() (string, error)
	upgrader     websocket.Upgrader
	tracer       trace.Tracer
}

// NewHandler returns the calculator routes.
func NewHandler(opts Options) http.Handler {
	h := &handler{
		baseURL:      strings.TrimSpace(opts.BaseURL),
		sessions:     opts.Sessions,
		maxBodyBytes: opts.MaxBodyBytes,
		now:          opts.Now,
		newID:        opts.NewID,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
		tracer: otel.Tracer(tracerName),
	}
	if h.maxBodyBytes <= 0 {
		h.maxBodyBytes = DefaultMaxBodyBytes
	}

	r := mux.NewRouter()
	r.HandleFunc("/up", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	// Subrouters answer 404 on a method mismatch; the root router answers 405.
	api := func(method, path string, fn http.HandlerFunc) {
		r.Handle(apiPrefix+path, h.traced(fn)).Methods(method)
	}
	api(http.MethodPost, "/damage", h.handleDamage)
	api(http.MethodPost, "/dps", h.handleDPS)
	api(http.MethodPost, "/chart", h.handleChart)
	api(http.MethodPost, "/share", h.handleCreateShare)
	api(http.MethodGet, "/share/{token}", h.handleResolveShare)
	api(http.MethodPost, "/import", h.handleImport)
	api(http.MethodGet, "/live", h.handleLive)
	if h.sessions != nil {
		api(http.MethodPost, "/sessions", h.handleCreateSession)
		api(http.MethodGet, "/sessions", h.handleListSessions)
		api(http.MethodGet, "/sessions/{id}", h.handleGetSession)
		api(http.MethodDelete, "/sessions/{id}", h.handleDeleteSession)
	}
	return r
}

// traced opens one server span per API request, named after the route, and
// tags the request with a correlation id.
func (h *handler) traced(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := strings.TrimSpace(r.Header.Get(RequestIDHeader))
		if requestID == "" || len(requestID) > maxRequestIDLen {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		name := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if tmpl, err := route.GetPathTemplate(); err == nil {
				name = tmpl
			}
		}
		ctx, span := h.tracer.Start(requestctx.WithRequestID(r.Context(), requestID), r.Method+" "+name,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.request.method", r.Method),
				attribute.String("http.route", name),
				attribute.String("http.request.id", requestID),
			),
		)
		defer span.End()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(ctx))

		span.SetAttributes(attribute.Int("http.response.status_code", rec.status))
		if rec.status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(rec.status))
		}
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// Hijack hands the connection to the websocket upgrader.
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	r.status = http.StatusSwitchingProtocols
	return hj.Hijack()
}
