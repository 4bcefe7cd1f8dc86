package http

import (
	"errors"
	"net/http"

	"formation-management/internal/assistant"
	"formation-management/pkg/deepseek"
)

// statusOf maps domain and upstream errors to HTTP status codes.
func statusOf(err error) int {
	if errors.Is(err, assistant.ErrEmptyUserID) || errors.Is(err, assistant.ErrEmptyMessage) {
		return http.StatusBadRequest
	}

	switch deepseek.KindOf(err) {
	case deepseek.KindConfiguration:
		return http.StatusInternalServerError
	case deepseek.KindRateLimit:
		return http.StatusTooManyRequests
	case deepseek.KindUnreachable:
		return http.StatusGatewayTimeout
	case deepseek.KindAuthentication, deepseek.KindUpstreamHTTP, deepseek.KindProtocol:
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
