package utils

import "strings"

// SplitWords splits text into chunks of at most maxWords whitespace-separated
// words, preserving word order. Runs of whitespace collapse to single spaces
// inside each chunk. Empty or whitespace-only text yields no chunks.
func SplitWords(text string, maxWords int) []string {
	words := strings.Fields(text)

	var chunks []string
	var current []string

	for _, word := range words {
		current = append(current, word)
		if len(current) >= maxWords {
			chunks = append(chunks, strings.Join(current, " "))
			current = nil
		}
	}

	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}

	return chunks
}
