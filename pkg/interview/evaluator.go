package interview

import (
	"regexp"
	"strconv"
	"strings"

	"ai-mockinterview-be/pkg/llm"
)

// QAPair is one asked question with the answer the candidate gave to it.
type QAPair struct {
	Question string
	Answer   string
}

var overallScorePattern = regexp.MustCompile(`(?i)Overall Score:\s*(\d+)`)

// ExtractQAPairs walks the message log and pairs each question with the
// user message that answered it. An assistant message counts as a question
// only if it contains neither "Score:" (an evaluation) nor "Welcome" (a
// greeting); each user message answers the most recent unpaired question.
func ExtractQAPairs(messages []llm.Message) []QAPair {
	var pairs []QAPair
	var currentQuestion string

	for _, msg := range messages {
		switch {
		case msg.Role == "assistant" &&
			!strings.Contains(msg.Content, "Score:") &&
			!strings.Contains(msg.Content, "Welcome"):
			currentQuestion = msg.Content
		case msg.Role == "user":
			if currentQuestion != "" {
				pairs = append(pairs, QAPair{
					Question: currentQuestion,
					Answer:   msg.Content,
				})
				currentQuestion = ""
			}
		}
	}
	return pairs
}

// ExtractOverallScore pulls the "Overall Score: <int>" field out of a
// free-text evaluation. A missing or malformed field yields nil, not an
// error; the full text is still stored verbatim.
func ExtractOverallScore(text string) *int {
	match := overallScorePattern.FindStringSubmatch(text)
	if match == nil {
		return nil
	}
	score, err := strconv.Atoi(match[1])
	if err != nil {
		return nil
	}
	return &score
}

// TruncateCitation shortens citation text to maxChars runes and marks the
// cut with an ellipsis. The marker is always appended, matching how the
// citation is rendered to the candidate.
func TruncateCitation(text string, maxChars int) string {
	return Excerpt(text, maxChars) + "..."
}
