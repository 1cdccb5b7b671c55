// Package post holds the structured draft produced by the LLM conversation
// and its conversion into the final LinkedIn post text.
package post

import (
	"encoding/json"
	"regexp"
	"strings"

	apperrors "linkedin-auto-poster/pkg/errors"
)

// Draft is the JSON shape the writer agent is instructed to produce.
// Code is optional; everything else is required before rendering.
type Draft struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Code     string   `json:"code,omitempty"`
	Hashtags []string `json:"hashtags"`
	Question string   `json:"question"`
}

const (
	disclosure = "\n\n---\n🤖 This post was generated with the help of AI."
	codeFence  = "```c#"
)

var disclosureHashtags = []string{"#AIGenerated", "#GeminiAI"}

var fenceRe = regexp.MustCompile("```json\\s*|\\s*```")

// StripFence removes a markdown JSON code-fence wrapper from the model's
// final message. Bare JSON passes through unchanged.
func StripFence(raw string) string {
	return fenceRe.ReplaceAllString(raw, "")
}

// Parse strips any fence wrapper and decodes the remainder into a Draft.
func Parse(raw string) (*Draft, error) {
	cleaned := StripFence(raw)

	var d Draft
	if err := json.Unmarshal([]byte(cleaned), &d); err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindGenerationFormat, "invalid JSON in model output")
	}
	return &d, nil
}

// AddDisclosure appends the AI disclosure paragraph to the content and the
// AI hashtags to the hashtag list. Not idempotent: callers apply it at
// most once per draft.
func (d *Draft) AddDisclosure() {
	d.Content += disclosure
	d.Hashtags = append(d.Hashtags, disclosureHashtags...)
}

func (d *Draft) missingFields() []string {
	var missing []string
	if d.Title == "" {
		missing = append(missing, "title")
	}
	if d.Content == "" {
		missing = append(missing, "content")
	}
	if len(d.Hashtags) == 0 {
		missing = append(missing, "hashtags")
	}
	if d.Question == "" {
		missing = append(missing, "question")
	}
	return missing
}

// Render produces the final plain-text post: title, content, optional
// fenced code block, closing question, then space-joined hashtags. It
// fails if any required field is empty, naming every missing field.
func (d *Draft) Render() (string, error) {
	if missing := d.missingFields(); len(missing) > 0 {
		return "", apperrors.Newf(apperrors.KindGenerationFormat,
			"missing required fields: %s", strings.Join(missing, ", "))
	}

	var b strings.Builder
	b.WriteString(d.Title)
	b.WriteString("\n\n")
	b.WriteString(d.Content)

	if d.Code != "" {
		b.WriteString("\n\n")
		b.WriteString(codeFence)
		b.WriteString("\n")
		b.WriteString(d.Code)
		b.WriteString("\n```")
	}

	b.WriteString("\n\n")
	b.WriteString(d.Question)
	b.WriteString("\n\n")
	b.WriteString(strings.Join(d.Hashtags, " "))

	return b.String(), nil
}
