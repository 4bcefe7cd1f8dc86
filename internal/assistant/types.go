package assistant

// Turn roles. Only user and assistant turns are ever persisted; the system
// turn is synthesized fresh on every call.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one conversation entry for a user.
type Turn struct {
	Role    string
	Content string
}

// FileContext is an uploaded file offered as context for one chat call.
// It is never persisted; entries with an empty name or blank data are
// dropped during prompt assembly.
type FileContext struct {
	Name string
	Data string
}

// ChatInput is the request for one assistant exchange.
type ChatInput struct {
	UserID  string
	Message string
	Files   []FileContext
}

// ChatOutput carries the assistant's reply.
type ChatOutput struct {
	Answer string
}
