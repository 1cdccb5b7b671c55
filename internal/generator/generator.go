// Package generator builds LinkedIn post content through a bounded
// two-role LLM conversation and post-processes the result into a draft.
package generator

import (
	"context"
	"errors"
	"log/slog"

	"linkedin-auto-poster/config"
	"linkedin-auto-poster/internal/post"
)

type Generator struct {
	llm    LLMClient
	logger *slog.Logger
}

func New(llm LLMClient, logger *slog.Logger) (*Generator, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{llm: llm, logger: logger}, nil
}

// NewFromConfig builds a Generator backed by the configured Gemini model.
func NewFromConfig(ctx context.Context, cfg *config.LLM, logger *slog.Logger) (*Generator, error) {
	llm, err := NewGeminiLLM(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return New(llm, logger)
}

// GenerateDraft runs the full pipeline up to the structured draft:
// prompt, conversation, fence strip, JSON parse, optional disclosure.
func (g *Generator) GenerateDraft(ctx context.Context, topic string, addDisclosure bool) (*post.Draft, error) {
	prompt, err := BuildPostPrompt(topic)
	if err != nil {
		return nil, err
	}

	g.logger.Info("generating post", "topic", topic)
	final, err := NewConversation(g.llm, g.logger).Run(ctx, prompt)
	if err != nil {
		return nil, err
	}

	draft, err := post.Parse(final)
	if err != nil {
		return nil, err
	}

	if addDisclosure {
		draft.AddDisclosure()
	}
	return draft, nil
}

// GeneratePost renders the draft into the final plain-text post.
func (g *Generator) GeneratePost(ctx context.Context, topic string, addDisclosure bool) (string, error) {
	draft, err := g.GenerateDraft(ctx, topic, addDisclosure)
	if err != nil {
		return "", err
	}
	return draft.Render()
}
