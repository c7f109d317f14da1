// Package httpserver serves the brewery page and its JSON data over HTTP.
package httpserver

import (
	"context"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/tinytelemetry/brewdeck/internal/anim"
	"github.com/tinytelemetry/brewdeck/internal/logger"
	"github.com/tinytelemetry/brewdeck/internal/model"
)

const cacheKey = "breweries"

// Options configures a Server.
type Options struct {
	Addr     string
	Fetcher  model.BreweryFetcher
	Entrance anim.Entrance
	Place    string
	CacheTTL time.Duration // 0 disables caching
	Logger   *logger.Logger
}

// Server renders the brewery page. Each request performs at most one fetch.
type Server struct {
	addr      string
	fetcher   model.BreweryFetcher
	entrance  anim.Entrance
	place     string
	log       *logger.Logger
	cache     *expirable.LRU[string, []model.Brewery]
	keyframes template.CSS
	duration  int64
	server    *http.Server
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time
}

// NewServer creates a new HTTP server.
func NewServer(opts Options) *Server {
	if opts.Addr == "" {
		opts.Addr = model.DefaultServeAddr
	}
	if opts.Place == "" {
		opts.Place = model.DefaultPlace
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		addr:      opts.Addr,
		fetcher:   opts.Fetcher,
		entrance:  opts.Entrance,
		place:     opts.Place,
		log:       opts.Logger,
		ctx:       ctx,
		cancel:    cancel,
		startTime: time.Now(),
	}
	if opts.CacheTTL > 0 {
		s.cache = expirable.NewLRU[string, []model.Brewery](1, nil, opts.CacheTTL)
	}

	if !opts.Entrance.Enabled() {
		s.log.Warnw("spring animation unavailable, showing cards without entrance motion")
	}

	// The spring curve is identical for every card, so sample it once.
	frames, dur := opts.Entrance.Keyframes()
	s.keyframes = keyframesCSS(frames)
	s.duration = dur.Milliseconds()
	return s
}

// Handler builds the gin engine with all routes.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())
	r.SetHTMLTemplate(pageTemplate)

	r.GET("/", s.handleIndex)
	r.GET("/api/breweries", s.handleBreweries)
	r.GET("/api/health", s.handleHealth)
	return r
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)

	s.server = &http.Server{
		Handler:           s.Handler(),
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	s.startTime = time.Now()
	s.log.Infow("http server listening", "addr", listener.Addr().String())

	go func() {
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.log.Errorw("http server stopped", "error", err)
		}
	}()
	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() error {
	s.cancel()
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) fetch(ctx context.Context) ([]model.Brewery, error) {
	if s.cache != nil {
		if records, ok := s.cache.Get(cacheKey); ok {
			return records, nil
		}
	}
	records, err := s.fetcher.FetchBreweries(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Add(cacheKey, records)
	}
	return records, nil
}

func (s *Server) handleIndex(c *gin.Context) {
	records, err := s.fetch(c.Request.Context())
	if err != nil {
		s.log.Errorw("failed to load breweries", "error", err)
		c.HTML(http.StatusBadGateway, "index", buildPage(s.place, model.FailedStatus(), nil, s.entrance, "", 0))
		return
	}

	status := model.ResultStatus(s.place, len(records))
	c.HTML(http.StatusOK, "index", buildPage(s.place, status, records, s.entrance, s.keyframes, s.duration))
}

func (s *Server) handleBreweries(c *gin.Context) {
	records, err := s.fetch(c.Request.Context())
	if err != nil {
		s.log.Errorw("failed to load breweries", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": model.FailureMessage})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    model.ResultStatus(s.place, len(records)).Text,
		"count":     len(records),
		"breweries": records,
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(s.startTime).String(),
	})
}
