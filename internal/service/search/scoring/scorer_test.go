package scoring

import (
	"reflect"
	"testing"

	"lawclerk/internal/models"
)

func hit(title, url, snippet string) models.SearchHit {
	return models.SearchHit{Title: title, URL: url, Snippet: snippet}
}

func TestScore_CaseLawSignals(t *testing.T) {
	tests := []struct {
		name string
		hit  models.SearchHit
		opts Options
		want int
	}{
		{
			name: "versus pattern in title",
			hit:  hit("Miranda v. Arizona", "https://example.com/a", ""),
			want: weightVersusTitle,
		},
		{
			name: "citation pattern in title",
			hit:  hit("Roe v. Wade, 410 U.S. 113", "https://example.com/a", ""),
			want: weightVersusTitle + weightCitationTitle,
		},
		{
			name: "case repository host",
			hit:  hit("Some Opinion", "https://www.courtlistener.com/opinion/123/", ""),
			want: weightCaseLawHost,
		},
		{
			name: "holding phrase in snippet",
			hit:  hit("Some Opinion", "https://example.com/a", "The court held that the statute applies."),
			want: weightHoldingPhrase,
		},
		{
			name: "party language in snippet",
			hit:  hit("Some Opinion", "https://example.com/a", "The plaintiff alleged negligence."),
			want: weightPartyLanguage,
		},
		{
			name: "academic host penalty",
			hit:  hit("Some Paper", "https://papers.ssrn.com/sol3/paper.cfm?id=1", ""),
			want: weightAcademicHost,
		},
		{
			name: "journal title penalty",
			hit:  hit("Stanford Journal of Technology", "https://example.com/a", ""),
			want: weightJournalTitle,
		},
		{
			name: "law review title penalty",
			hit:  hit("Harvard Law Review: AI Liability", "https://example.com/a", ""),
			want: weightJournalTitle,
		},
		{
			name: "california mention without restriction gets only flat bonus",
			hit:  hit("California water rights", "https://example.com/a", ""),
			opts: Options{CaliforniaOnly: false},
			want: weightCaliforniaTie,
		},
		{
			name: "california mention with restriction gets boost plus flat bonus",
			hit:  hit("California water rights", "https://example.com/a", ""),
			opts: Options{CaliforniaOnly: true},
			want: weightCaliforniaText + weightCaliforniaTie,
		},
		{
			name: "california court host boost only under restriction",
			hit:  hit("Opinion", "https://courts.ca.gov/opinions/123", ""),
			opts: Options{CaliforniaOnly: true},
			want: weightCaseLawHost + weightCaliforniaHost,
		},
		{
			name: "california citation abbreviation under restriction",
			hit:  hit("People v. Anderson, 6 Cal.3d 628", "https://example.com/a", ""),
			opts: Options{CaliforniaOnly: true},
			want: weightVersusTitle + weightCitationTitle + weightCaliforniaCite,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.hit, tt.opts)
			if got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScore_CaseLawBeatsScholarship(t *testing.T) {
	snippet := "The court held that the right of privacy extends to this decision."
	caseHit := hit("Roe v. Wade", "https://www.courtlistener.com/opinion/108713/roe-v-wade/", snippet)
	journalHit := hit("Privacy and the Law Journal", "https://www.jstor.org/stable/1227562", snippet)

	caseScore := Score(caseHit, Options{})
	journalScore := Score(journalHit, Options{})
	if caseScore <= journalScore {
		t.Errorf("case-law hit scored %d, journal hit scored %d; want strictly higher", caseScore, journalScore)
	}
}

func TestRank_Deterministic(t *testing.T) {
	hits := []models.SearchHit{
		hit("A Law Journal", "https://www.jstor.org/a", ""),
		hit("Smith v. Jones", "https://www.courtlistener.com/opinion/1/", "court held"),
		hit("Neutral result", "https://example.com/x", ""),
		hit("Doe v. Roe", "https://casetext.com/case/doe", "defendant appealed"),
	}

	first := Rank(hits, Options{}, 10)
	second := Rank(hits, Options{}, 10)

	if !reflect.DeepEqual(first, second) {
		t.Error("re-running Rank on the same batch produced a different ordering")
	}

	for i := 1; i < len(first); i++ {
		if *first[i-1].RelevanceScore < *first[i].RelevanceScore {
			t.Errorf("hits not in descending score order at index %d", i)
		}
	}
}

func TestRank_StableOnTies(t *testing.T) {
	// Identical hits score identically; stability means input order holds.
	hits := []models.SearchHit{
		hit("Neutral one", "https://example.com/1", ""),
		hit("Neutral two", "https://example.com/2", ""),
		hit("Neutral three", "https://example.com/3", ""),
	}

	ranked := Rank(hits, Options{}, 10)

	for i, want := range []string{"Neutral one", "Neutral two", "Neutral three"} {
		if ranked[i].Title != want {
			t.Errorf("position %d: got %q, want %q", i, ranked[i].Title, want)
		}
	}
}

func TestRank_CutsToLimit(t *testing.T) {
	hits := []models.SearchHit{
		hit("One", "https://example.com/1", ""),
		hit("Two", "https://example.com/2", ""),
		hit("Three", "https://example.com/3", ""),
	}

	ranked := Rank(hits, Options{}, 2)
	if len(ranked) != 2 {
		t.Errorf("got %d hits, want 2", len(ranked))
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	hits := []models.SearchHit{
		hit("A Law Journal", "https://www.jstor.org/a", ""),
		hit("Smith v. Jones", "https://www.courtlistener.com/opinion/1/", ""),
	}

	Rank(hits, Options{}, 10)

	if hits[0].Title != "A Law Journal" {
		t.Error("input slice was reordered")
	}
}
