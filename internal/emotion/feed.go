package emotion

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
)

const (
	maxSampleBytes  = 1 << 10
	shutdownTimeout = 5 * time.Second
)

// Cell is a latest-value store a feed can both write and report.
type Cell interface {
	Source
	Sink
}

// Feed accepts detector samples over HTTP and WebSocket and publishes the
// estimated flags into a Cell. Any number of detectors may connect; the last
// accepted sample wins.
type Feed struct {
	cell     Cell
	logger   *log.Logger
	upgrader websocket.Upgrader

	stop     chan struct{}
	stopOnce sync.Once
}

// NewFeed creates a feed publishing into cell.
func NewFeed(cell Cell, logger *log.Logger) *Feed {
	return &Feed{
		cell:   cell,
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		stop: make(chan struct{}),
	}
}

// Routes returns the feed's HTTP handler.
//
//	GET  /v1/emotion     latest flags as JSON
//	POST /v1/emotion     one JSON sample
//	GET  /v1/emotion/ws  stream of samples (text=JSON, binary=msgpack)
func (f *Feed) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(f.loggingMiddleware)

	r.Route("/v1/emotion", func(r chi.Router) {
		r.Get("/", f.getFlags)
		r.Post("/", f.postSample)
		r.Get("/ws", f.stream)
	})
	return r
}

// ListenAndServe serves the feed on addr until ctx is cancelled.
func (f *Feed) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return f.Serve(ctx, ln)
}

// Serve serves the feed on ln until ctx is cancelled.
func (f *Feed) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           f.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		f.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			f.logger.Warn("feed shutdown", "error", err)
		}
	}()

	f.logger.Info("emotion feed listening", "address", ln.Addr().String())
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close drops all open streams. Plain HTTP requests are unaffected.
func (f *Feed) Close() {
	f.stopOnce.Do(func() { close(f.stop) })
}

func (f *Feed) getFlags(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(f.cell.Load()); err != nil {
		f.logger.Warn("encode flags", "error", err)
	}
}

func (f *Feed) postSample(w http.ResponseWriter, r *http.Request) {
	var p Probabilities
	body := http.MaxBytesReader(w, r.Body, maxSampleBytes)
	if err := json.NewDecoder(body).Decode(&p); err != nil {
		f.logger.Warn("rejected sample", "error", err, "remote", r.RemoteAddr)
		http.Error(w, "malformed sample", http.StatusBadRequest)
		return
	}
	if err := p.Validate(); err != nil {
		f.logger.Warn("rejected sample", "error", err, "remote", r.RemoteAddr)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.cell.Publish(Estimate(p))
	w.WriteHeader(http.StatusNoContent)
}

func (f *Feed) stream(w http.ResponseWriter, r *http.Request) {
	conn, err := f.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error
		f.logger.Warn("websocket upgrade failed", "error", err, "remote", r.RemoteAddr)
		return
	}
	conn.SetReadLimit(maxSampleBytes)

	finished := make(chan struct{})
	defer close(finished)
	go func() {
		select {
		case <-f.stop:
			conn.Close()
		case <-finished:
		}
	}()

	f.logger.Info("detector connected", "remote", r.RemoteAddr)
	defer conn.Close()

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				f.logger.Warn("detector stream error", "error", err, "remote", r.RemoteAddr)
			}
			f.logger.Info("detector disconnected", "remote", r.RemoteAddr)
			return
		}

		p, err := DecodeSample(messageType, data)
		if err != nil {
			f.logger.Warn("dropped frame", "error", err, "remote", r.RemoteAddr)
			continue
		}
		f.cell.Publish(Estimate(p))
	}
}

// loggingMiddleware logs plain requests. Streams log their own lifecycle.
func (f *Feed) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		f.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
