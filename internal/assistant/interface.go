package assistant

import "context"

// UseCase is the public surface of the assistant domain.
type UseCase interface {
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)
}
