package generator

import (
	"fmt"
	"strings"

	apperrors "linkedin-auto-poster/pkg/errors"
)

// System prompt for the writer role: drafts the post and revises it when
// it receives feedback.
const writerSystemPrompt = `You are an expert technical content creator who specializes in crafting engaging
LinkedIn posts about programming concepts. Your writing process:
1. Create an initial technical post that includes:
   - A compelling technical headline/title
   - Clear, technically accurate main content
   - Relevant technical hashtags (3-5)
   - An engaging technical question to drive discussion
2. When receiving feedback from the reviewer, carefully analyze it
3. Create an improved version incorporating the feedback
4. Only return the final post content without any additional comments or explanations`

// System prompt for the critic role: reviews a draft and returns free-text
// feedback, never a rewritten post.
const criticSystemPrompt = `You are an expert LinkedIn content strategist and editor. Your role is to:
1. Review the writer's LinkedIn posts for:
   - Professional tone and clarity
   - Engagement potential
   - Appropriate length for LinkedIn
   - Effective headline and hook
   - Strategic use of hashtags
2. Provide specific, actionable feedback on:
   - What works well and should be kept
   - What needs improvement and why
   - Suggested changes or enhancements
3. Keep feedback constructive and focused on improving viral potential and professional impact`

// BuildPostPrompt produces the generation instruction for a topic.
func BuildPostPrompt(topic string) (string, error) {
	if topic == "" {
		return "", apperrors.New(apperrors.KindInputValidation, "topic is required")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Create an engaging LinkedIn post about %s. The post should:\n", topic)
	sb.WriteString("- Be optimized for LinkedIn's professional audience\n")
	sb.WriteString("- Be between 150-200 words\n")
	sb.WriteString("- Include line breaks for readability\n")
	sb.WriteString("- Focus on providing value and insights\n")
	sb.WriteString("- Include a short, relevant code snippet (3-5 lines max) that demonstrates a key concept\n")
	sb.WriteString("- Format the code properly with ```c# ``` markdown syntax\n")
	sb.WriteString("- End with an engaging question that encourages discussion\n")
	sb.WriteString("- Add 3-4 relevant hashtags\n")
	sb.WriteString("- Use a professional and approachable tone\n")
	sb.WriteString("- Avoid using emojis\n")
	sb.WriteString(`- provide output in json format {"title": "", "content": "", "code": "", "hashtags": [], "question": ""}`)
	sb.WriteString("\n")

	return sb.String(), nil
}
