package notification

import "errors"

var (
	ErrEmptyRecipient = errors.New("recipient is required")
	ErrEmptySubject   = errors.New("subject is required")
)
