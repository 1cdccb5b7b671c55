package generator

import "context"

// Message roles threaded through conversation history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Prompt is one request to the model: a system instruction, optional
// prior turns, and the new user message.
type Prompt struct {
	System  string
	History []Message
	User    string
}

type Message struct {
	Role    string
	Content string
}

// LLMClient abstracts the chat backend so it can be mocked.
type LLMClient interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}
