package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lanternworks/savestore/internal/config"
	"github.com/lanternworks/savestore/internal/logging"
	"github.com/lanternworks/savestore/internal/monitoring"
	"github.com/lanternworks/savestore/internal/store"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	router  *gin.Engine
	store   *store.Store
	logger  *logging.Logger
	config  *config.Config
	metrics *monitoring.Metrics
}

// NewServer creates a new server instance.
func NewServer(cfg *config.Config) (*Server, error) {
	var logger *logging.Logger
	if cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else {
		logger = logging.NewDefault()
	}

	metrics := monitoring.NewMetrics()

	var st *store.Store
	if cfg.Store.Root != "" {
		st = store.NewAt(cfg.Store.Project, cfg.Store.Root, store.WithLogger(logger.Logger))
	} else {
		var err error
		st, err = store.New(cfg.Store.Project, store.WithLogger(logger.Logger))
		if err != nil {
			return nil, err
		}
	}

	logger.Info("Initializing savestore server",
		zap.String("port", cfg.Server.Port),
		zap.String("project", st.Project()),
		zap.String("root", st.Root()),
	)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(monitoring.Middleware(metrics))
	router.Use(CORS(DefaultCORSConfig()))

	handlers := NewHandlers(st, metrics, logger)

	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	router.GET("/v1/keys", handlers.ListKeys)
	router.GET("/v1/find", handlers.FindEntries)
	router.GET("/v1/data/*path", handlers.ReadEntry)
	router.PUT("/v1/data/*path", handlers.WriteEntry)
	router.HEAD("/v1/data/*path", handlers.ExistsEntry)
	router.GET("/v1/stat/*path", handlers.StatEntry)

	return &Server{
		router:  router,
		store:   st,
		logger:  logger,
		config:  cfg,
		metrics: metrics,
	}, nil
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.logger.Info("Starting HTTP server", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Close flushes buffered log entries.
func (s *Server) Close() error {
	s.logger.Info("Shutting down server...")
	return s.logger.Sync()
}
