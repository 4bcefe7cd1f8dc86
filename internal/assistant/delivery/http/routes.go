package http

import (
	"github.com/gin-gonic/gin"

	"formation-management/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw *middleware.Middleware) {
	assistant := rg.Group("/assistant")
	{
		assistant.POST("/chat", mw.RateLimit(), h.Chat)
	}
}
