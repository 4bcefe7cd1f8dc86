package assistant

import "errors"

var (
	ErrEmptyUserID  = errors.New("user id is required")
	ErrEmptyMessage = errors.New("message is required when no file context is provided")
)
