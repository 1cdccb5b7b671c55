package generator

import (
	"context"
	"fmt"
	"log/slog"
)

// defaultMaxTurns bounds the writer's outputs: one draft, one revision.
const defaultMaxTurns = 2

// Conversation drives the fixed-length writer/critic exchange. The writer
// drafts, the critic reviews, the writer revises; the writer's last
// message is the canonical result. No state is kept between runs.
type Conversation struct {
	llm      LLMClient
	writer   string
	critic   string
	maxTurns int
	logger   *slog.Logger
}

func NewConversation(llm LLMClient, logger *slog.Logger) *Conversation {
	return &Conversation{
		llm:      llm,
		writer:   writerSystemPrompt,
		critic:   criticSystemPrompt,
		maxTurns: defaultMaxTurns,
		logger:   logger,
	}
}

// Run executes the exchange starting from the generation prompt and
// returns the writer's final message. Backend failures propagate without
// retry.
func (c *Conversation) Run(ctx context.Context, initial string) (string, error) {
	var history []Message
	userMsg := initial
	var last string

	for turn := 1; turn <= c.maxTurns; turn++ {
		draft, err := c.llm.Complete(ctx, Prompt{
			System:  c.writer,
			History: history,
			User:    userMsg,
		})
		if err != nil {
			return "", fmt.Errorf("writer turn %d: %w", turn, err)
		}
		last = draft
		c.logger.Debug("writer turn complete", "turn", turn, "chars", len(draft))

		if turn == c.maxTurns {
			break
		}

		critique, err := c.llm.Complete(ctx, Prompt{
			System: c.critic,
			User:   "Review the following LinkedIn post draft and give specific, actionable feedback:\n\n" + draft,
		})
		if err != nil {
			return "", fmt.Errorf("critic turn %d: %w", turn, err)
		}
		c.logger.Debug("critic turn complete", "turn", turn, "chars", len(critique))

		history = append(history,
			Message{Role: RoleUser, Content: userMsg},
			Message{Role: RoleAssistant, Content: draft},
		)
		userMsg = "Feedback on your draft:\n\n" + critique +
			"\n\nProduce the improved final post. Return only the post content in the required JSON format."
	}

	return last, nil
}
