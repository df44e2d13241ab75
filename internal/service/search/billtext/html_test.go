package billtext

import (
	"strings"
	"testing"
)

func TestLooksLikeHTML(t *testing.T) {
	tests := []struct {
		name    string
		mime    string
		content string
		want    bool
	}{
		{"mime declares html", "text/html", "plain words", true},
		{"mime with charset", "text/html; charset=utf-8", "plain words", true},
		{"doctype marker", "", "<!DOCTYPE html><p>x</p>", true},
		{"html tag marker", "", "<html><body>x</body></html>", true},
		{"body tag marker", "application/octet-stream", "<body>x</body>", true},
		{"plain text", "text/plain", "Section 1. An act.", false},
		{"angle brackets without markers", "", "a < b and b > c", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := looksLikeHTML(tt.mime, tt.content); got != tt.want {
				t.Errorf("looksLikeHTML(%q, %q) = %v, want %v", tt.mime, tt.content, got, tt.want)
			}
		})
	}
}

func TestHTMLToText_StripsScriptAndStyleContents(t *testing.T) {
	in := `<html><head><style>.a { display: none; }</style></head>` +
		`<body><script>var secret = "leak";</script><p>Kept text.</p></body></html>`

	got := htmlToText(in)

	if strings.Contains(got, "leak") || strings.Contains(got, "secret") {
		t.Errorf("script body leaked: %q", got)
	}
	if strings.Contains(got, "display") {
		t.Errorf("style body leaked: %q", got)
	}
	if got != "Kept text." {
		t.Errorf("got %q, want %q", got, "Kept text.")
	}
}

func TestHTMLToText_SeparatesAdjacentBlocks(t *testing.T) {
	got := htmlToText("<p>First sentence.</p><p>Second sentence.</p>")
	if got != "First sentence. Second sentence." {
		t.Errorf("got %q", got)
	}
}

func TestHTMLToText_IdempotentOnPlainText(t *testing.T) {
	in := "Section 1. This act shall be known as the Act."
	got := htmlToText(in)
	if got != in {
		t.Errorf("plain text changed: got %q, want %q", got, in)
	}

	// Already-sanitized output passes through unchanged.
	if again := htmlToText(got); again != got {
		t.Errorf("sanitize not idempotent: %q vs %q", again, got)
	}
}

func TestHTMLToText_CollapsesWhitespace(t *testing.T) {
	got := htmlToText("<p>spaced\n\n\tout   words</p>")
	if got != "spaced out words" {
		t.Errorf("got %q", got)
	}
}

func TestHTMLToTextFallback_OrderMatters(t *testing.T) {
	// Script content removed even without a parseable document.
	in := `<script>bad()</script><b>good</b>`
	got := htmlToTextFallback(in)
	if strings.Contains(got, "bad") {
		t.Errorf("script body survived: %q", got)
	}
	if got != "good" {
		t.Errorf("got %q, want %q", got, "good")
	}
}
