package generator

import (
	"strings"
	"testing"

	apperrors "linkedin-auto-poster/pkg/errors"
)

func TestBuildPostPromptMarkers(t *testing.T) {
	prompt, err := BuildPostPrompt("C# generics")
	if err != nil {
		t.Fatalf("BuildPostPrompt failed: %v", err)
	}

	for _, marker := range []string{
		"C# generics",
		"150-200 words",
		"```c# ```",
		`{"title": "", "content": "", "code": "", "hashtags": [], "question": ""}`,
	} {
		if !strings.Contains(prompt, marker) {
			t.Errorf("prompt missing marker %q:\n%s", marker, prompt)
		}
	}
}

func TestBuildPostPromptEmptyTopic(t *testing.T) {
	_, err := BuildPostPrompt("")
	if err == nil {
		t.Fatal("expected an error for empty topic")
	}
	if apperrors.KindOf(err) != apperrors.KindInputValidation {
		t.Errorf("kind = %s, want %s", apperrors.KindOf(err), apperrors.KindInputValidation)
	}
}
