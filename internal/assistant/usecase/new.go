package usecase

import (
	"time"

	"formation-management/internal/assistant/store"
	"formation-management/pkg/deepseek"
	pkgLog "formation-management/pkg/log"
	"formation-management/pkg/retry"
)

// Config tunes the retry behavior. Zero values take the defaults.
type Config struct {
	MaxAttempts int
	Backoff     func(attempt int) time.Duration
}

type implUseCase struct {
	l      pkgLog.Logger
	llm    deepseek.IDeepSeek
	store  *store.Store
	policy retry.Policy
}

// New creates the assistant UseCase.
func New(l pkgLog.Logger, llm deepseek.IDeepSeek, convStore *store.Store, cfg Config) *implUseCase {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.Backoff == nil {
		cfg.Backoff = retry.ExponentialBackoff
	}

	return &implUseCase{
		l:     l,
		llm:   llm,
		store: convStore,
		policy: retry.Policy{
			MaxAttempts: cfg.MaxAttempts,
			Backoff:     cfg.Backoff,
			Retryable:   deepseek.IsRetryable,
		},
	}
}
