package notification

import "context"

// UseCase is the public surface of the notification domain.
type UseCase interface {
	SendPassword(ctx context.Context, input PasswordInput) (Output, error)
	SendDocuments(ctx context.Context, input DocumentsInput) (Output, error)
}
