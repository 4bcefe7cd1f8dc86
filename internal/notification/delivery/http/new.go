package http

import (
	"github.com/gin-gonic/gin"

	"formation-management/internal/notification"
	"formation-management/pkg/log"
)

// Handler is the public interface for the notification HTTP delivery layer.
type Handler interface {
	SendPassword(c *gin.Context)
	SendDocuments(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc notification.UseCase
}

// New creates a new HTTP handler for the notification domain.
func New(l log.Logger, uc notification.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
