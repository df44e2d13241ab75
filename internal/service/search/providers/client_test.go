package providers

import (
	"testing"

	"lawclerk/internal/models"
)

func searchReq(query string, limit int) models.SearchRequest {
	return models.SearchRequest{Query: query, Limit: limit, Page: 1}
}

func TestAbsolutize(t *testing.T) {
	tests := []struct {
		name   string
		origin string
		link   string
		want   string
	}{
		{"absolute passes through", "https://o.example", "https://x.example/a", "https://x.example/a"},
		{"relative path prefixed", "https://o.example", "/opinion/1/", "https://o.example/opinion/1/"},
		{"missing leading slash added", "https://o.example", "opinion/1", "https://o.example/opinion/1"},
		{"empty link dropped", "https://o.example", "", ""},
		{"whitespace link dropped", "https://o.example", "   ", ""},
		{"relative without origin dropped", "", "/opinion/1/", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := absolutize(tt.origin, tt.link); got != tt.want {
				t.Errorf("absolutize(%q, %q) = %q, want %q", tt.origin, tt.link, got, tt.want)
			}
		})
	}
}

func TestCleanSnippet(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text unchanged", "court held that", "court held that"},
		{"highlight markup stripped", "the <mark>court held</mark> that", "the court held that"},
		{"entities unescaped", "Smith &amp; Jones", "Smith & Jones"},
		{"whitespace collapsed", "a\n\n  b\tc", "a b c"},
		{"script stripped with contents", `before <script>alert(1)</script> after`, "before after"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanSnippet(tt.in); got != tt.want {
				t.Errorf("cleanSnippet(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDateInRange(t *testing.T) {
	tests := []struct {
		name   string
		date   string
		after  string
		before string
		want   bool
	}{
		{"no bounds", "2024-05-01", "", "", true},
		{"inside range", "2024-05-01", "2024-01-01", "2024-12-31", true},
		{"before lower bound", "2023-12-31", "2024-01-01", "", false},
		{"after upper bound", "2025-01-01", "", "2024-12-31", false},
		{"bounds inclusive", "2024-01-01", "2024-01-01", "2024-01-01", true},
		{"undated passes without bounds", "", "", "", true},
		{"undated fails with bounds", "", "2024-01-01", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dateInRange(tt.date, tt.after, tt.before); got != tt.want {
				t.Errorf("dateInRange(%q, %q, %q) = %v, want %v", tt.date, tt.after, tt.before, got, tt.want)
			}
		})
	}
}
