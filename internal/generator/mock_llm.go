package generator

import "context"

// canned draft returned by MockLLM when no scripted responses are set,
// so cmd/preview -mock works without a backend.
const mockDraft = `{"title": "Understanding Go Interfaces", ` +
	`"content": "Interfaces in Go are satisfied implicitly, which keeps packages decoupled without ceremony.", ` +
	`"code": "type Reader interface {\n    Read(p []byte) (n int, err error)\n}", ` +
	`"hashtags": ["#golang", "#programming", "#softwareengineering"], ` +
	`"question": "What is your favorite use of small interfaces?"}`

// MockLLM replays scripted responses in order and records every prompt
// it receives. With no responses configured it returns a canned draft.
type MockLLM struct {
	Responses []string
	Calls     []Prompt
}

func (m *MockLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	m.Calls = append(m.Calls, prompt)
	if len(m.Responses) == 0 {
		return mockDraft, nil
	}
	i := len(m.Calls) - 1
	if i >= len(m.Responses) {
		i = len(m.Responses) - 1
	}
	return m.Responses[i], nil
}
