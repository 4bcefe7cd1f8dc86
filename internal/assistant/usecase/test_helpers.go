package usecase

import (
	"context"
	"time"

	"formation-management/internal/assistant/store"
	"formation-management/pkg/deepseek"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock DeepSeek client for testing; records every request it receives.
type mockLLM struct {
	generate func(call int, req *deepseek.Request) (*deepseek.Response, error)
	requests []*deepseek.Request
}

func (m *mockLLM) GenerateContent(ctx context.Context, req *deepseek.Request) (*deepseek.Response, error) {
	m.requests = append(m.requests, req)
	return m.generate(len(m.requests), req)
}

func assistantReply(text string) *deepseek.Response {
	return &deepseek.Response{
		Choices: []deepseek.Choice{
			{Message: deepseek.Message{Role: deepseek.RoleAssistant, Content: text}},
		},
	}
}

// newTestUseCase wires a usecase with millisecond backoff so retry tests
// stay fast.
func newTestUseCase(llm *mockLLM) (*implUseCase, *store.Store) {
	convStore, _ := store.New(0)
	uc := New(&mockLogger{}, llm, convStore, Config{
		MaxAttempts: DefaultMaxAttempts,
		Backoff:     func(attempt int) time.Duration { return time.Duration(attempt) * 10 * time.Millisecond },
	})
	return uc, convStore
}
