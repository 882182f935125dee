package interview

import (
	"fmt"
	"strings"

	"ai-mockinterview-be/pkg/llm"
	"ai-mockinterview-be/pkg/retrieval"
)

// Excerpt returns at most maxChars characters of text. Slicing is done on
// runes so a multi-byte character is never cut in half.
func Excerpt(text string, maxChars int) string {
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	return string(runes[:maxChars])
}

// FirstQuestionPrompt builds the opening-question prompt from the job
// description excerpt. The wording is deliberately strict: without the
// explicit rules the model tends to emit numbered question lists.
func FirstQuestionPrompt(jobDescriptionExcerpt string) string {
	return fmt.Sprintf(`You are starting an interview. Based on the job description below, ask ONLY the first question.

Job Description:
%s

IMPORTANT RULES:
- Ask ONLY ONE question (the first question)
- DO NOT include numbers like "1.", "2.", "3."
- DO NOT list multiple questions
- DO NOT say "Let's begin with" or similar phrases
- Just ask a single, direct question

Your response should be ONLY the question itself, nothing else.`, jobDescriptionExcerpt)
}

// NextQuestionPrompt builds the follow-up question prompt from the job
// description excerpt and the trailing window of conversation history.
func NextQuestionPrompt(jobDescriptionExcerpt string, recent []llm.Message) string {
	lines := make([]string, len(recent))
	for i, m := range recent {
		lines[i] = fmt.Sprintf("%s: %s", m.Role, m.Content)
	}

	return fmt.Sprintf(`Based on the following job description and the candidate's previous responses, generate ONE new relevant interview question.

Job Description:
%s

Previous conversation:
%s

Generate ONE specific, relevant interview question. DO NOT provide feedback or scores. Just ask the next question.`, jobDescriptionExcerpt, strings.Join(lines, "\n"))
}

// EvaluationPrompt builds the end-of-interview evaluation prompt from the
// extracted Q&A pairs and the retrieved context. The labeled-line format is
// load-bearing: score extraction pattern-matches on "Overall Score:".
func EvaluationPrompt(pairs []QAPair, context string) string {
	qaBlocks := make([]string, len(pairs))
	for i, qa := range pairs {
		qaBlocks[i] = fmt.Sprintf("Question %d: %s\n\nCandidate's Answer %d: %s", i+1, qa.Question, i+1, qa.Answer)
	}

	return fmt.Sprintf(`You are evaluating a complete 3-question interview. Here are all the questions and answers:

%s

Relevant context from resume and job description:
%s

Please provide a comprehensive evaluation:

1. For each answer, provide:
   - Score (1-10)
   - Specific feedback (2-3 sentences)

2. Overall interview summary with:
   - Overall performance score (1-10)
   - Key strengths
   - Areas for improvement
   - Final recommendation

Format your response EXACTLY as:
Answer 1 Score: [1-10]
Answer 1 Feedback: [Your feedback]

Answer 2 Score: [1-10]
Answer 2 Feedback: [Your feedback]

Answer 3 Score: [1-10]
Answer 3 Feedback: [Your feedback]

Overall Score: [1-10]
Summary: [Your comprehensive summary with strengths, areas for improvement, and recommendation]`, strings.Join(qaBlocks, "\n\n---\n\n"), context)
}

// FormatContext renders retrieval matches as prompt context, one block per
// match tagged with its source document type.
func FormatContext(matches []retrieval.Match) string {
	blocks := make([]string, len(matches))
	for i, m := range matches {
		blocks[i] = fmt.Sprintf("[%s]: %s", m.DocumentType, m.Text)
	}
	return strings.Join(blocks, "\n\n")
}
