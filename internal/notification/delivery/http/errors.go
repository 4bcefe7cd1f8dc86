package http

import (
	"errors"
	"net/http"

	"formation-management/internal/notification"
	"formation-management/pkg/gmailer"
)

// statusOf maps domain and mailer errors to HTTP status codes. Refresh
// credential expiry maps to 502 like other authentication failures; the
// operator-actionable signal lives in the logs.
func statusOf(err error) int {
	switch {
	case errors.Is(err, notification.ErrEmptyRecipient), errors.Is(err, notification.ErrEmptySubject):
		return http.StatusBadRequest
	case errors.Is(err, gmailer.ErrAuthentication):
		return http.StatusBadGateway
	case errors.Is(err, gmailer.ErrDelivery):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
