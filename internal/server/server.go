// Package server serves the live site: the rendered page, its assets, the
// contact form fallback and one WebSocket session per page view.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/iphase-tech/iphase-site/internal/config"
	"github.com/iphase-tech/iphase-site/internal/contact"
	"github.com/iphase-tech/iphase-site/internal/content"
	"github.com/iphase-tech/iphase-site/internal/site"
)

// missingFieldsMessage is shown after the form fallback rejected a post.
const missingFieldsMessage = "Please fill in your name, email and message."

// Server is the iphase HTTP server.
type Server struct {
	cfg        *config.Config
	store      *content.Store
	logger     *zap.Logger
	router     chi.Router
	httpServer *http.Server
	now        func() time.Time

	stopLimiter context.CancelFunc
	limiterDone <-chan struct{}

	mu       sync.Mutex
	sessions map[*session]struct{}
	closed   bool
	wg       sync.WaitGroup
}

// New creates a server rendering content from store. Once the contact
// route has served a request the rate limiter holds a goroutine, so a
// Server must be released with Shutdown or Close.
func New(cfg *config.Config, store *content.Store, logger *zap.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		store:    store,
		logger:   logger,
		now:      time.Now,
		sessions: make(map[*session]struct{}),
	}

	s.router = s.buildRouter()
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  zap.NewStdLog(s.logger),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.Server.AllowAllOrigins {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	ctx, cancel := context.WithCancel(context.Background())
	limit, done := RateLimitMiddleware(ctx, s.cfg.Contact.RateLimit, s.cfg.Contact.Burst, 0, s.logger)
	s.stopLimiter = cancel
	s.limiterDone = done

	// Sessions are long-lived; everything else gets a deadline.
	r.Get("/ws", s.handleWebSocket)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Get("/", s.handleIndex)
		r.Get("/"+site.StyleFile, asset("text/css; charset=utf-8", site.StyleSheet()))
		r.Get("/"+site.ScriptFile, asset("text/javascript; charset=utf-8", site.AppScript()))
		r.Get("/"+site.SearchIndexFile, s.handleSearchIndex)
		r.Get("/api/content", s.handleContent)

		// Health check
		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":"ok"}`))
		})

		r.With(limit).Post("/contact", contact.Handler(s.logger))
	})

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	c := s.store.Get()
	st := site.InitialState(c, true)
	opts := site.Options{
		Title:      s.cfg.Site.Title,
		Live:       true,
		Year:       s.now().Year(),
		SpyMargin:  s.cfg.Spy.Margin,
		ResetDelay: s.cfg.Contact.ResetDelay,
	}

	q := r.URL.Query()
	if q.Get("sent") == "1" {
		st.Submitted = true
	}
	if q.Get("error") == "missing" {
		opts.Error = missingFieldsMessage
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := site.Render(w, c, st, opts); err != nil {
		s.logger.Error("rendering page", zap.Error(err))
	}
}

func (s *Server) handleSearchIndex(w http.ResponseWriter, r *http.Request) {
	data, err := site.SearchIndexJSON(s.store.Get())
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "building search index failed")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.store.Get()); err != nil {
		s.logger.Error("encoding content", zap.Error(err))
	}
}

func asset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write([]byte(body))
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// Start begins listening on the configured port. It returns
// http.ErrServerClosed after Shutdown.
func (s *Server) Start() error {
	s.logger.Info("iphase server listening", zap.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server, then closes every live
// session and waits for their pages to unmount.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	s.Close()
	return err
}

// Close disconnects every live session, waits for them to finish and stops
// the rate limiter. It is idempotent.
func (s *Server) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	for sess := range s.sessions {
		sess.conn.Close()
	}
	s.mu.Unlock()

	s.wg.Wait()
	s.stopLimiter()
	<-s.limiterDone
}

// track registers a session, or reports false once the server is closing.
func (s *Server) track(sess *session) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.sessions[sess] = struct{}{}
	s.wg.Add(1)
	return true
}

func (s *Server) untrack(sess *session) {
	s.mu.Lock()
	delete(s.sessions, sess)
	s.mu.Unlock()
	s.wg.Done()
}

// Sessions returns the number of live sessions.
func (s *Server) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
