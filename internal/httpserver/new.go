package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	assistantHTTP "formation-management/internal/assistant/delivery/http"
	"formation-management/internal/middleware"
	notificationHTTP "formation-management/internal/notification/delivery/http"
	"formation-management/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw *middleware.Middleware

	assistantHandler    assistantHTTP.Handler
	notificationHandler notificationHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware *middleware.Middleware

	AssistantHandler    assistantHTTP.Handler
	NotificationHandler notificationHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                   logger,
		gin:                 gin.Default(),
		port:                cfg.Port,
		mode:                cfg.Mode,
		environment:         cfg.Environment,
		mw:                  cfg.Middleware,
		assistantHandler:    cfg.AssistantHandler,
		notificationHandler: cfg.NotificationHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.mw == nil {
		return errors.New("middleware is required")
	}
	return nil
}
