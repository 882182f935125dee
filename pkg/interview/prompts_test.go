package interview

import (
	"strings"
	"testing"

	"ai-mockinterview-be/pkg/llm"
	"ai-mockinterview-be/pkg/retrieval"
)

func TestFirstQuestionPromptContainsRules(t *testing.T) {
	prompt := FirstQuestionPrompt("Senior Go engineer, Kubernetes experience required.")

	for _, fragment := range []string{
		"ask ONLY the first question",
		"Senior Go engineer",
		"DO NOT list multiple questions",
		"ONLY the question itself",
	} {
		if !strings.Contains(prompt, fragment) {
			t.Errorf("prompt missing %q", fragment)
		}
	}
}

func TestNextQuestionPromptRendersHistory(t *testing.T) {
	prompt := NextQuestionPrompt("JD text", []llm.Message{
		{Role: "assistant", Content: "What is your experience?"},
		{Role: "user", Content: "Ten years."},
	})

	if !strings.Contains(prompt, "assistant: What is your experience?") {
		t.Error("assistant line missing")
	}
	if !strings.Contains(prompt, "user: Ten years.") {
		t.Error("user line missing")
	}
	if !strings.Contains(prompt, "DO NOT provide feedback or scores") {
		t.Error("feedback prohibition missing")
	}
}

func TestEvaluationPromptFormat(t *testing.T) {
	prompt := EvaluationPrompt([]QAPair{
		{Question: "Q one", Answer: "A one"},
		{Question: "Q two", Answer: "A two"},
	}, "[resume]: relevant chunk")

	for _, fragment := range []string{
		"Question 1: Q one",
		"Candidate's Answer 1: A one",
		"Question 2: Q two",
		"\n\n---\n\n",
		"[resume]: relevant chunk",
		"Overall Score: [1-10]",
		"Summary:",
	} {
		if !strings.Contains(prompt, fragment) {
			t.Errorf("prompt missing %q", fragment)
		}
	}

	// The response template must survive round-tripping through the parser.
	if score := ExtractOverallScore("Overall Score: 8"); score == nil || *score != 8 {
		t.Error("template label does not match the extraction pattern")
	}
}

func TestFormatContext(t *testing.T) {
	got := FormatContext([]retrieval.Match{
		{DocumentType: "resume", Text: "chunk a"},
		{DocumentType: "job_description", Text: "chunk b"},
	})

	want := "[resume]: chunk a\n\n[job_description]: chunk b"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
