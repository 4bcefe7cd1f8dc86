package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	assistantHTTP "formation-management/internal/assistant/delivery/http"
	notificationHTTP "formation-management/internal/notification/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	if srv.assistantHandler != nil {
		assistantHTTP.RegisterRoutes(api, srv.assistantHandler, srv.mw)
		srv.l.Infof(ctx, "Assistant routes registered at POST /api/v1/assistant/chat")
	} else {
		srv.l.Infof(ctx, "Assistant handler not configured, skipping chat route")
	}

	if srv.notificationHandler != nil {
		notificationHTTP.RegisterRoutes(api, srv.notificationHandler, srv.mw)
		srv.l.Infof(ctx, "Notification routes registered under /api/v1/notifications")
	} else {
		srv.l.Infof(ctx, "Notification handler not configured, skipping mail routes")
	}
}
