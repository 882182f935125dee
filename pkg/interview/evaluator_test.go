package interview

import (
	"strings"
	"testing"

	"ai-mockinterview-be/pkg/llm"
)

func TestExtractOverallScore(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *int
	}{
		{
			name: "labeled line",
			text: "Answer 1 Score: 6\n\nOverall Score: 8\nSummary: Solid.",
			want: intPtr(8),
		},
		{
			name: "case insensitive",
			text: "overall score: 7",
			want: intPtr(7),
		},
		{
			name: "extra spacing",
			text: "Overall Score:   9",
			want: intPtr(9),
		},
		{
			name: "absent yields nil",
			text: "The candidate did fine overall.",
			want: nil,
		},
		{
			name: "per-answer scores alone do not match",
			text: "Answer 1 Score: 5\nAnswer 2 Score: 6",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractOverallScore(tt.text)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("got %d, want %d", *got, *tt.want)
			}
		})
	}
}

func TestExtractQAPairs(t *testing.T) {
	messages := []llm.Message{
		{Role: "system", Content: "You are conducting a job interview."},
		{Role: "assistant", Content: "Tell me about your Go experience."},
		{Role: "user", Content: "Five years of backend services."},
		{Role: "assistant", Content: "How do you handle failures?"},
		{Role: "user", Content: "Retries with backoff."},
	}

	pairs := ExtractQAPairs(messages)

	if len(pairs) != 2 {
		t.Fatalf("got %d pairs, want 2", len(pairs))
	}
	if pairs[0].Question != "Tell me about your Go experience." || pairs[0].Answer != "Five years of backend services." {
		t.Errorf("first pair wrong: %+v", pairs[0])
	}
	if pairs[1].Question != "How do you handle failures?" || pairs[1].Answer != "Retries with backoff." {
		t.Errorf("second pair wrong: %+v", pairs[1])
	}
}

func TestExtractQAPairsSkipsEvaluationsAndGreetings(t *testing.T) {
	messages := []llm.Message{
		{Role: "assistant", Content: "Welcome to your interview!"},
		{Role: "assistant", Content: "What is a goroutine?"},
		{Role: "user", Content: "A lightweight thread."},
		{Role: "assistant", Content: "Answer 1 Score: 8\nOverall Score: 8"},
		{Role: "user", Content: "Thanks!"},
	}

	pairs := ExtractQAPairs(messages)

	if len(pairs) != 1 {
		t.Fatalf("got %d pairs, want 1", len(pairs))
	}
	if pairs[0].Question != "What is a goroutine?" {
		t.Errorf("got question %q", pairs[0].Question)
	}
}

func TestExtractQAPairsUnansweredUserMessage(t *testing.T) {
	// A user message with no pending question is dropped, not mispaired.
	messages := []llm.Message{
		{Role: "user", Content: "Hello?"},
		{Role: "assistant", Content: "What is your greatest strength?"},
		{Role: "user", Content: "Persistence."},
	}

	pairs := ExtractQAPairs(messages)
	if len(pairs) != 1 {
		t.Fatalf("got %d pairs, want 1", len(pairs))
	}
	if pairs[0].Answer != "Persistence." {
		t.Errorf("got answer %q", pairs[0].Answer)
	}
}

func TestTruncateCitation(t *testing.T) {
	long := strings.Repeat("x", 300)
	got := TruncateCitation(long, 200)

	if len(got) != 203 {
		t.Errorf("got length %d, want 203", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("missing ellipsis marker: %q", got[190:])
	}

	// The marker is appended even when nothing was cut.
	if TruncateCitation("short", 200) != "short..." {
		t.Errorf("short citation mangled")
	}
}

func TestExcerpt(t *testing.T) {
	if Excerpt("hello", 2000) != "hello" {
		t.Error("short text must pass through untouched")
	}
	if got := Excerpt(strings.Repeat("a", 3000), 2000); len(got) != 2000 {
		t.Errorf("got length %d, want 2000", len(got))
	}
	// Rune-safe slicing.
	if got := Excerpt("日本語テキスト", 3); got != "日本語" {
		t.Errorf("got %q, want %q", got, "日本語")
	}
}

func intPtr(v int) *int { return &v }
