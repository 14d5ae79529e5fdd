// Package server serves a route table over HTTP.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/todolabs/rocketd/internal/activity"
	"github.com/todolabs/rocketd/internal/dispatch"
	"github.com/todolabs/rocketd/internal/logger"
	"github.com/todolabs/rocketd/internal/metrics"
	"github.com/todolabs/rocketd/internal/routetable"
)

// RequestIDHeader carries the per-request ID on responses. Clients may
// supply their own, otherwise one is generated.
const RequestIDHeader = "X-Request-ID"

// requestIDKey is the gin context key holding the request ID.
const requestIDKey = "request_id"

// unmatchedPath labels metrics for requests that hit no registered route.
const unmatchedPath = "unmatched"

// Config holds the server configuration.
type Config struct {
	Addr         string
	Mode         string
	MetricsPath  string            // empty disables the metrics endpoint
	Recorder     activity.Recorder // nil disables activity publishing; closed by Stop
	QueueWorkers int
	QueueSize    int
	Logger       *logger.Logger // nil uses a fresh default logger
}

// DefaultConfig returns the default server configuration.
func DefaultConfig() Config {
	return Config{
		Addr:         ":8000",
		Mode:         gin.ReleaseMode,
		MetricsPath:  "/metrics",
		QueueWorkers: 2,
		QueueSize:    256,
	}
}

// Server answers each registered route with its fixed JSON string body.
type Server struct {
	config Config
	table  *routetable.Table
	log    *logger.Logger
	engine *gin.Engine
	server *http.Server
	queue  *dispatch.Queue[activity.Event]
}

// New creates a new Server instance for the given route table.
func New(cfg Config, table *routetable.Table) (*Server, error) {
	if table == nil {
		return nil, fmt.Errorf("route table is required")
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("invalid route table: %w", err)
	}
	if cfg.MetricsPath != "" {
		if _, clash := table.Lookup(http.MethodGet, cfg.MetricsPath); clash {
			return nil, fmt.Errorf("metrics path %s collides with a registered route", cfg.MetricsPath)
		}
	}

	log := cfg.Logger
	if log == nil {
		log = logger.New()
	}

	s := &Server{
		config: cfg,
		table:  table,
		log:    log,
	}

	if cfg.Recorder != nil {
		s.queue = dispatch.New(s.record, cfg.QueueWorkers, cfg.QueueSize)
		s.queue.Start()
	}

	s.engine = s.buildEngine()
	return s, nil
}

// Start runs the HTTP listener until it fails or Stop is called.
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	return s.server.ListenAndServe()
}

// Stop gracefully stops the server, flushes the activity queue and
// closes the recorder.
func (s *Server) Stop(ctx context.Context) error {
	var err error
	if s.server != nil {
		err = s.server.Shutdown(ctx)
	}

	if s.queue != nil {
		s.queue.Stop()
	}
	if s.config.Recorder != nil {
		if cerr := s.config.Recorder.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}

	return err
}

// Handler returns the HTTP handler, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// buildEngine assembles the gin engine: middleware stack, table routes
// and the optional metrics endpoint.
func (s *Server) buildEngine() *gin.Engine {
	switch s.config.Mode {
	case gin.DebugMode:
		gin.SetMode(gin.DebugMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Exact-match routing: /todo/ is not /todo, unknown paths are 404
	// and non-GET methods on known paths are 404 as well.
	engine.RedirectTrailingSlash = false
	engine.RedirectFixedPath = false
	engine.HandleMethodNotAllowed = false

	engine.Use(requestID())
	engine.Use(s.observe())
	engine.Use(gin.Recovery())
	engine.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))

	for _, r := range s.table.Routes() {
		engine.Handle(r.Method, r.Path, staticJSON(r.Body))
	}

	if s.config.MetricsPath != "" {
		engine.GET(s.config.MetricsPath, gin.WrapH(promhttp.Handler()))
	}

	return engine
}

// record delivers one queued event to the recorder.
func (s *Server) record(ev activity.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.config.Recorder.Record(ctx, ev); err != nil {
		s.log.Error("failed to record activity event: %v", err)
	}
}

// staticJSON returns a handler answering with the fixed body as a JSON
// string. Handlers stay pure: no params, no request body, no state.
func staticJSON(body string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, body)
	}
}

// requestID assigns every request an ID, honoring one supplied by the
// client, and echoes it on the response.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

// observe records metrics, the debug access log and the activity event
// for every request, after the rest of the chain has run.
func (s *Server) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		// Scrapes of the metrics endpoint observe the server; they are
		// not part of its traffic and record nothing themselves.
		if s.config.MetricsPath != "" && c.Request.URL.Path == s.config.MetricsPath {
			return
		}

		routePath := c.FullPath()
		if routePath == "" {
			routePath = unmatchedPath
		}
		metrics.RecordRequest(c.Request.Method, routePath, status, duration)

		s.log.WithFields(map[string]interface{}{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      status,
			"duration_ms": duration.Milliseconds(),
		}).Debug("request served")

		if s.queue == nil {
			return
		}

		ev := activity.Event{
			Time:      start,
			RequestID: c.GetString(requestIDKey),
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Status:    status,
			Duration:  duration,
			Remote:    c.ClientIP(),
		}
		if !s.queue.Enqueue(ev) {
			s.log.Warn("activity queue full, dropped event for %s %s", c.Request.Method, c.Request.URL.Path)
		}
	}
}
