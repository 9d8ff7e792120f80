package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// TestSnippet_TruncatesLongStrings tests that long strings are truncated.
func TestSnippet_TruncatesLongStrings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantTrunc bool
	}{
		{
			name:      "short string is unchanged",
			input:     "hello world",
			wantTrunc: false,
		},
		{
			name:      "string at exactly max length is unchanged",
			input:     strings.Repeat("a", MaxAttrLen),
			wantTrunc: false,
		},
		{
			name:      "string over max length is truncated",
			input:     strings.Repeat("a", MaxAttrLen+1),
			wantTrunc: true,
		},
		{
			name:      "long html document is truncated",
			input:     "<html><head><title>x</title></head><body>" + strings.Repeat("<p>content</p>", 100) + "</body></html>",
			wantTrunc: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Snippet(tt.input)
			if tt.wantTrunc {
				if !strings.HasSuffix(got, TruncationMark) {
					t.Errorf("Snippet() = %q, want suffix %q", got, TruncationMark)
				}
				if len([]rune(got)) != MaxAttrLen+len([]rune(TruncationMark)) {
					t.Errorf("Snippet() length = %d runes, want %d", len([]rune(got)), MaxAttrLen+len([]rune(TruncationMark)))
				}
			} else if got != tt.input {
				t.Errorf("Snippet() = %q, want %q", got, tt.input)
			}
		})
	}
}

// TestSnippet_FlattensWhitespace tests that newlines and tabs are collapsed.
func TestSnippet_FlattensWhitespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "newlines are collapsed",
			input: "line one\nline two\nline three",
			want:  "line one line two line three",
		},
		{
			name:  "tabs and carriage returns are collapsed",
			input: "a\tb\r\nc",
			want:  "a b c",
		},
		{
			name:  "plain spaces are preserved",
			input: "already  spaced",
			want:  "already  spaced",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Snippet(tt.input); got != tt.want {
				t.Errorf("Snippet(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestSnippetHandler_BoundsRecordAttrs tests that record attributes are bounded.
func TestSnippetHandler_BoundsRecordAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSnippetHandler(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	longHTML := strings.Repeat("<div>", 200)
	logger.Info("parsed document", "html", longHTML, "elements", 42)

	output := buf.String()
	if strings.Contains(output, longHTML) {
		t.Error("expected long attribute to be truncated in output")
	}
	if !strings.Contains(output, TruncationMark) {
		t.Errorf("expected truncation mark in output, got %q", output)
	}
	if !strings.Contains(output, "elements=42") {
		t.Errorf("expected non-string attribute to pass through, got %q", output)
	}
}

// TestSnippetHandler_WithAttrs tests that pre-bound attributes are bounded.
func TestSnippetHandler_WithAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSnippetHandler(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	longValue := strings.Repeat("x", MaxAttrLen*2)
	child := logger.With("source", longValue)
	child.Info("analyzing")

	output := buf.String()
	if strings.Contains(output, longValue) {
		t.Error("expected WithAttrs value to be truncated")
	}
	if !strings.Contains(output, TruncationMark) {
		t.Errorf("expected truncation mark in output, got %q", output)
	}
}

// TestSnippetHandler_GroupAttrs tests that grouped attributes are bounded recursively.
func TestSnippetHandler_GroupAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSnippetHandler(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	longValue := strings.Repeat("y", MaxAttrLen+50)
	logger.Info("report", slog.Group("document", slog.String("body", longValue), slog.Int("score", 85)))

	output := buf.String()
	if strings.Contains(output, longValue) {
		t.Error("expected grouped attribute to be truncated")
	}
	if !strings.Contains(output, "document.score=85") {
		t.Errorf("expected grouped int attribute to pass through, got %q", output)
	}
}

// TestNewLogger_LevelFromVerbose tests log level selection.
func TestNewLogger_LevelFromVerbose(t *testing.T) {
	t.Parallel()

	t.Run("default level suppresses debug and info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, false)
		logger.Debug("debug message")
		logger.Info("info message")
		logger.Warn("warn message")

		output := buf.String()
		if strings.Contains(output, "debug message") || strings.Contains(output, "info message") {
			t.Errorf("expected debug/info suppressed, got %q", output)
		}
		if !strings.Contains(output, "warn message") {
			t.Errorf("expected warn message in output, got %q", output)
		}
	})

	t.Run("verbose enables debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, true)
		logger.Debug("debug message")

		if !strings.Contains(buf.String(), "debug message") {
			t.Errorf("expected debug message in verbose output, got %q", buf.String())
		}
	})
}

// TestNewJSONLogger_ProducesJSON tests that the JSON logger emits JSON lines.
func TestNewJSONLogger_ProducesJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, true)
	logger.Info("structured", "key", "value")

	output := buf.String()
	if !strings.HasPrefix(output, "{") {
		t.Errorf("expected JSON output, got %q", output)
	}
	if !strings.Contains(output, `"key":"value"`) {
		t.Errorf("expected key/value pair in JSON output, got %q", output)
	}
}
