package http

import (
	"github.com/gin-gonic/gin"

	"formation-management/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw *middleware.Middleware) {
	notifications := rg.Group("/notifications")
	{
		notifications.POST("/password", mw.RateLimit(), h.SendPassword)
		notifications.POST("/send", mw.RateLimit(), h.SendDocuments)
	}
}
