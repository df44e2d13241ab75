package search

import (
	"fmt"
	"strings"

	"lawclerk/internal/models"
)

// buildNarrative flattens ranked hits into the plain-text content block
// consumed by a downstream language-model summarizer, alongside the
// structured sources it was built from.
func buildNarrative(query string, hits []models.SearchHit) *models.NarrativeResponse {
	sources := make([]models.Source, 0, len(hits))

	var b strings.Builder
	fmt.Fprintf(&b, "Search results for %q:\n\n", query)

	if len(hits) == 0 {
		b.WriteString("No results found.\n")
	}

	for i, hit := range hits {
		fmt.Fprintf(&b, "%d. %s", i+1, hit.Title)
		if hit.DateFiled != "" {
			fmt.Fprintf(&b, " (%s)", hit.DateFiled)
		}
		b.WriteString("\n")
		b.WriteString(hit.URL)
		b.WriteString("\n")
		if hit.Snippet != "" {
			b.WriteString(hit.Snippet)
			b.WriteString("\n")
		}
		b.WriteString("\n")

		sources = append(sources, models.Source{
			Title:   hit.Title,
			URL:     hit.URL,
			Excerpt: hit.Snippet,
		})
	}

	return &models.NarrativeResponse{
		Content: strings.TrimRight(b.String(), "\n") + "\n",
		Sources: sources,
	}
}
