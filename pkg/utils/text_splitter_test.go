package utils

import (
	"strings"
	"testing"
)

func TestSplitWords(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWords int
		want     []string
	}{
		{
			name:     "splits on word boundary",
			text:     "a b c d e",
			maxWords: 2,
			want:     []string{"a b", "c d", "e"},
		},
		{
			name:     "short text stays one chunk",
			text:     "hello world",
			maxWords: 500,
			want:     []string{"hello world"},
		},
		{
			name:     "exact multiple leaves no remainder",
			text:     "a b c d",
			maxWords: 2,
			want:     []string{"a b", "c d"},
		},
		{
			name:     "collapses whitespace runs",
			text:     "a  b\t c \n d",
			maxWords: 3,
			want:     []string{"a b c", "d"},
		},
		{
			name:     "empty text yields no chunks",
			text:     "",
			maxWords: 10,
			want:     nil,
		},
		{
			name:     "whitespace only yields no chunks",
			text:     "   \n\t  ",
			maxWords: 10,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitWords(tt.text, tt.maxWords)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d chunks, want %d: %v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("chunk %d: got %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSplitWordsLargeInput(t *testing.T) {
	words := make([]string, 1250)
	for i := range words {
		words[i] = "word"
	}
	chunks := SplitWords(strings.Join(words, " "), 500)

	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}
	if n := len(strings.Fields(chunks[2])); n != 250 {
		t.Errorf("last chunk has %d words, want 250", n)
	}
}
