package usecase

import (
	"context"
	"fmt"
	"strings"

	"formation-management/internal/assistant"
	"formation-management/pkg/deepseek"
	"formation-management/pkg/retry"
)

// Chat runs one exchange for a user: assemble the prompt from the stored
// history plus optional file context, call the chat API with bounded
// retry, and persist the exchange only when the call ultimately succeeds.
func (uc *implUseCase) Chat(ctx context.Context, input assistant.ChatInput) (assistant.ChatOutput, error) {
	if strings.TrimSpace(input.UserID) == "" {
		return assistant.ChatOutput{}, assistant.ErrEmptyUserID
	}

	files := validFiles(input.Files)
	if strings.TrimSpace(input.Message) == "" && len(files) == 0 {
		return assistant.ChatOutput{}, assistant.ErrEmptyMessage
	}

	userContent := buildUserContent(input.Message, files)
	messages := uc.buildMessages(input.UserID, userContent, len(files) > 0)

	uc.l.Infof(ctx, "assistant.Chat: user=%s files=%d history=%d",
		input.UserID, len(files), uc.store.Len(input.UserID))

	resp, err := retry.Do(ctx, uc.policy, func(ctx context.Context) (*deepseek.Response, error) {
		return uc.llm.GenerateContent(ctx, &deepseek.Request{
			Messages:    messages,
			Temperature: deepseek.DefaultTemperature,
			TopP:        deepseek.DefaultTopP,
			MaxTokens:   deepseek.DefaultMaxTokens,
		})
	})
	if err != nil {
		// History stays untouched on every failure path.
		uc.l.Errorf(ctx, "assistant.Chat: user=%s kind=%s: %v", input.UserID, deepseek.KindOf(err), err)
		return assistant.ChatOutput{}, err
	}

	answer := resp.Choices[0].Message.Content

	// Persist the constructed user turn, not the raw message: the file
	// blocks are part of what the assistant answered to.
	uc.store.Append(input.UserID,
		assistant.Turn{Role: assistant.RoleUser, Content: userContent},
		assistant.Turn{Role: assistant.RoleAssistant, Content: answer},
	)

	return assistant.ChatOutput{Answer: answer}, nil
}

// validFiles drops entries with an empty name or blank data. Invalid
// entries never fail the call.
func validFiles(files []assistant.FileContext) []assistant.FileContext {
	out := make([]assistant.FileContext, 0, len(files))
	for _, f := range files {
		if strings.TrimSpace(f.Name) == "" || strings.TrimSpace(f.Data) == "" {
			continue
		}
		out = append(out, f)
	}
	return out
}

// buildUserContent renders the outgoing user turn: the message verbatim,
// or delimited file blocks followed by the question.
func buildUserContent(message string, files []assistant.FileContext) string {
	if len(files) == 0 {
		return message
	}

	var builder strings.Builder
	for i, f := range files {
		builder.WriteString(fmt.Sprintf(PromptFileBlock, i+1, f.Name, f.Data, i+1, f.Name))
	}
	builder.WriteString(PromptQuestionPrefix + message)
	return builder.String()
}

// buildMessages prepends the synthesized system turn to the stored history
// and the new user turn. The system turn is never persisted.
func (uc *implUseCase) buildMessages(userID, userContent string, withFiles bool) []deepseek.Message {
	system := PromptSystem
	if withFiles {
		system += PromptFileAnalysisNote
	}

	history := uc.store.History(userID)
	messages := make([]deepseek.Message, 0, len(history)+2)
	messages = append(messages, deepseek.Message{Role: deepseek.RoleSystem, Content: system})
	for _, turn := range history {
		messages = append(messages, deepseek.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, deepseek.Message{Role: deepseek.RoleUser, Content: userContent})
	return messages
}
