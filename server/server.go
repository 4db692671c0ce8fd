package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/umputun/feedstash/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/feed_service.go -pkg mocks -skip-ensure -fmt goimports . FeedService
//go:generate moq -out mocks/pinger.go -pkg mocks -skip-ensure -fmt goimports . Pinger

// Server represents HTTP server instance
type Server struct {
	config   ConfigProvider
	svc      FeedService
	db       Pinger
	gatherer prometheus.Gatherer
	version  string
	debug    bool
	started  time.Time

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// FeedService is the set of operations exposed over the API
type FeedService interface {
	AddFeed(ctx context.Context, feedURL, title string, folderID *int64) (*domain.Feed, error)
	RefreshFeed(ctx context.Context, feedID int64) (*domain.Feed, domain.RefreshResult, error)
	PreviewFeedTitle(ctx context.Context, feedURL string) (domain.FeedPreview, error)
	CleanupArticles(ctx context.Context, days int) (int64, error)
	GetSettings(ctx context.Context) (domain.Settings, error)
	UpdateSettings(ctx context.Context, upd domain.SettingsUpdate) (domain.Settings, error)
	ListFeeds(ctx context.Context) ([]domain.Feed, error)
	DeleteFeed(ctx context.Context, feedID int64) error
	MoveFeed(ctx context.Context, feedID int64, folderID *int64) (*domain.Feed, error)
	ListArticles(ctx context.Context, feedID int64, limit int) ([]domain.Article, error)
	MarkRead(ctx context.Context, articleID int64, read bool) error
	CreateFolder(ctx context.Context, name string) (*domain.Folder, error)
	ListFolders(ctx context.Context) ([]domain.Folder, error)
	RenameFolder(ctx context.Context, id int64, name string) (*domain.Folder, error)
	DeleteFolder(ctx context.Context, id int64) error
	ExportOPML(ctx context.Context) ([]byte, error)
}

// Pinger checks the store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance. Metrics are served from gatherer, prometheus.DefaultGatherer if nil.
func New(cfg ConfigProvider, svc FeedService, db Pinger, gatherer prometheus.Gatherer, version string, debug bool) *Server {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	s := &Server{
		config:   cfg,
		svc:      svc,
		db:       db,
		gatherer: gatherer,
		version:  version,
		debug:    debug,
		started:  time.Now(),
		router:   routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("feedstash", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("GET /feeds", s.listFeedsHandler)
		r.HandleFunc("POST /feeds", s.addFeedHandler)
		r.HandleFunc("POST /feeds/preview", s.previewFeedHandler)
		r.HandleFunc("DELETE /feeds/{id}", s.deleteFeedHandler)
		r.HandleFunc("POST /feeds/{id}/refresh", s.refreshFeedHandler)
		r.HandleFunc("PATCH /feeds/{id}/move", s.moveFeedHandler)
		r.HandleFunc("GET /feeds/{id}/articles", s.listArticlesHandler)
		r.HandleFunc("POST /feeds/cleanup", s.cleanupHandler)

		r.HandleFunc("PUT /articles/{id}/read", s.markReadHandler)

		r.HandleFunc("GET /folders", s.listFoldersHandler)
		r.HandleFunc("POST /folders", s.createFolderHandler)
		r.HandleFunc("PUT /folders/{id}", s.renameFolderHandler)
		r.HandleFunc("DELETE /folders/{id}", s.deleteFolderHandler)

		r.HandleFunc("GET /settings", s.getSettingsHandler)
		r.HandleFunc("PATCH /settings", s.updateSettingsHandler)

		r.HandleFunc("GET /opml", s.exportOPMLHandler)
	})

	s.router.Handle("GET /metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
}
