package post

import (
	"strings"
	"testing"

	apperrors "linkedin-auto-poster/pkg/errors"
)

func validDraft() *Draft {
	return &Draft{
		Title:    "Generics in C#",
		Content:  "Generics let you write reusable, type-safe code.",
		Code:     "public class Box<T> { public T Value; }",
		Hashtags: []string{"#csharp", "#dotnet", "#programming"},
		Question: "How do you use generics in your projects?",
	}
}

func TestRenderFieldOrder(t *testing.T) {
	d := validDraft()

	out, err := d.Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	titleIdx := strings.Index(out, d.Title)
	contentIdx := strings.Index(out, d.Content)
	questionIdx := strings.Index(out, d.Question)
	if titleIdx < 0 || contentIdx < 0 || questionIdx < 0 {
		t.Fatalf("rendered post missing a required section:\n%s", out)
	}
	if !(titleIdx < contentIdx && contentIdx < questionIdx) {
		t.Errorf("sections out of order (title=%d content=%d question=%d)", titleIdx, contentIdx, questionIdx)
	}

	if !strings.Contains(out, "```c#\n"+d.Code+"\n```") {
		t.Errorf("code block not fenced as c#:\n%s", out)
	}
	if !strings.HasSuffix(out, "#csharp #dotnet #programming") {
		t.Errorf("hashtags not space-joined at the end:\n%s", out)
	}
}

func TestRenderOmitsEmptyCode(t *testing.T) {
	d := validDraft()
	d.Code = ""

	out, err := d.Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if strings.Contains(out, "```") {
		t.Errorf("empty code must not produce a fence:\n%s", out)
	}
}

func TestRenderNamesAllMissingFields(t *testing.T) {
	tests := []struct {
		name    string
		draft   *Draft
		missing []string
	}{
		{
			name:    "title and question",
			draft:   &Draft{Content: "c", Hashtags: []string{"#x"}},
			missing: []string{"title", "question"},
		},
		{
			name:    "everything",
			draft:   &Draft{},
			missing: []string{"title", "content", "hashtags", "question"},
		},
		{
			name:    "empty hashtag slice",
			draft:   &Draft{Title: "t", Content: "c", Question: "q", Hashtags: []string{}},
			missing: []string{"hashtags"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.draft.Render()
			if err == nil {
				t.Fatal("expected an error")
			}
			if apperrors.KindOf(err) != apperrors.KindGenerationFormat {
				t.Errorf("kind = %s, want %s", apperrors.KindOf(err), apperrors.KindGenerationFormat)
			}
			for _, field := range tt.missing {
				if !strings.Contains(err.Error(), field) {
					t.Errorf("error %q does not name missing field %q", err, field)
				}
			}
		})
	}
}

func TestStripFence(t *testing.T) {
	fenced := "```json\n{\"a\":1}\n```"
	if got := StripFence(fenced); got != `{"a":1}` {
		t.Errorf("StripFence(%q) = %q, want %q", fenced, got, `{"a":1}`)
	}

	bare := `{"a":1}`
	if got := StripFence(bare); got != bare {
		t.Errorf("StripFence must be a no-op on bare JSON, got %q", got)
	}
}

func TestParse(t *testing.T) {
	raw := "```json\n{\"title\":\"T\",\"content\":\"C\",\"hashtags\":[\"#a\"],\"question\":\"Q?\"}\n```"

	d, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if d.Title != "T" || d.Question != "Q?" || len(d.Hashtags) != 1 {
		t.Errorf("unexpected draft: %+v", d)
	}
}

func TestParseInvalidJSON(t *testing.T) {
	_, err := Parse("this is not json")
	if err == nil {
		t.Fatal("expected an error")
	}
	if apperrors.KindOf(err) != apperrors.KindGenerationFormat {
		t.Errorf("kind = %s, want %s", apperrors.KindOf(err), apperrors.KindGenerationFormat)
	}
}

func TestAddDisclosure(t *testing.T) {
	d := validDraft()
	baseTags := len(d.Hashtags)

	d.AddDisclosure()

	if n := strings.Count(d.Content, "generated with the help of AI"); n != 1 {
		t.Errorf("disclosure count after one call = %d, want 1", n)
	}
	if len(d.Hashtags) != baseTags+2 {
		t.Errorf("hashtag count = %d, want %d", len(d.Hashtags), baseTags+2)
	}
	if d.Hashtags[baseTags] != "#AIGenerated" || d.Hashtags[baseTags+1] != "#GeminiAI" {
		t.Errorf("unexpected disclosure hashtags: %v", d.Hashtags)
	}

	// Not idempotent: a second call appends again.
	d.AddDisclosure()
	if n := strings.Count(d.Content, "generated with the help of AI"); n != 2 {
		t.Errorf("disclosure count after two calls = %d, want 2", n)
	}
	if len(d.Hashtags) != baseTags+4 {
		t.Errorf("hashtag count after two calls = %d, want %d", len(d.Hashtags), baseTags+4)
	}
}

func TestAddDisclosureCreatesHashtags(t *testing.T) {
	d := &Draft{Title: "t", Content: "c", Question: "q"}

	d.AddDisclosure()

	if len(d.Hashtags) != 2 {
		t.Errorf("hashtags = %v, want the two disclosure tags", d.Hashtags)
	}
}
