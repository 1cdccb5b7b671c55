package generator

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"linkedin-auto-poster/config"
)

// GeminiLLM implements LLMClient using the official Gemini SDK.
type GeminiLLM struct {
	client *genai.Client
	model  string
}

func NewGeminiLLM(ctx context.Context, cfg *config.LLM) (*GeminiLLM, error) {
	if cfg == nil {
		return nil, errors.New("llm config is nil")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiLLM{client: client, model: cfg.Model}, nil
}

func (g *GeminiLLM) Complete(ctx context.Context, prompt Prompt) (string, error) {
	contents := make([]*genai.Content, 0, len(prompt.History)+1)
	for _, m := range prompt.History {
		var role genai.Role = genai.RoleUser
		if m.Role == RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Content, role))
	}
	contents = append(contents, genai.NewContentFromText(prompt.User, genai.RoleUser))

	genCfg := &genai.GenerateContentConfig{}
	if prompt.System != "" {
		genCfg.SystemInstruction = genai.NewContentFromText(prompt.System, genai.RoleUser)
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, genCfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", errors.New("gemini returned an empty response")
	}
	return text, nil
}
