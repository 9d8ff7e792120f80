package analyze

import (
	"strings"
	"testing"
)

// TestReadability tests the sentence-length readability score.
func TestReadability(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want int
	}{
		{
			name: "empty text scores zero",
			text: "",
			want: 0,
		},
		{
			name: "no sentence boundary scores zero",
			text: "words without any terminator",
			want: 0,
		},
		{
			name: "boundary with no words scores zero",
			text: "...",
			want: 0,
		},
		{
			name: "ideal fifteen words per sentence",
			text: strings.Repeat("word ", 14) + "word.",
			want: 100,
		},
		{
			name: "short sentences clamp at one hundred",
			text: "Yes. No. Maybe.",
			want: 100,
		},
		{
			name: "twenty words per sentence",
			text: strings.Repeat("word ", 19) + "word.",
			want: 90,
		},
		{
			name: "very long sentence clamps at zero",
			text: strings.Repeat("word ", 99) + "word.",
			want: 0,
		},
		{
			name: "exclamation and question marks split sentences",
			text: strings.Repeat("word ", 9) + "word! " + strings.Repeat("word ", 19) + "word?",
			want: 100,
		},
		{
			name: "fractional average rounds to nearest",
			text: strings.Repeat("word ", 14) + "word. " + strings.Repeat("word ", 15) + "word.",
			want: 99,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Readability(tt.text); got != tt.want {
				t.Errorf("Readability() = %d, want %d", got, tt.want)
			}
		})
	}
}
