// Package scoring reorders scholar-search hits so primary case law
// surfaces ahead of secondary scholarship. The scorer is pure pattern
// matching over hit text: an ordered list of (predicate, weight) rules
// applied independently and summed, with no I/O.
package scoring

import (
	"regexp"
	"sort"
	"strings"

	"lawclerk/internal/models"
)

// Rule weights. Empirically chosen, tunable; they are relative nudges,
// not validated domain truth.
const (
	weightVersusTitle    = 5
	weightCitationTitle  = 4
	weightCaseLawHost    = 5
	weightHoldingPhrase  = 3
	weightPartyLanguage  = 2
	weightCaliforniaText = 3
	weightCaliforniaHost = 4
	weightCaliforniaCite = 3
	weightAcademicHost   = -4
	weightJournalTitle   = -3
	weightCaliforniaTie  = 1
)

// caseLawHosts are domains whose records are primary law or curated
// case repositories.
var caseLawHosts = []string{
	"courtlistener.com",
	"law.justia.com",
	"supreme.justia.com",
	"casetext.com",
	"caselaw.findlaw.com",
	"scholar.google.com/scholar_case",
	"courts.ca.gov",
	"leginfo.legislature.ca.gov",
}

// academicHosts are domains dominated by secondary scholarship.
var academicHosts = []string{
	"ssrn.com",
	"papers.ssrn.com",
	"jstor.org",
	"heinonline.org",
	"academia.edu",
	"researchgate.net",
	"core.ac.uk",
}

// californiaHosts are California official-government domains.
var californiaHosts = []string{
	"courts.ca.gov",
	"leginfo.legislature.ca.gov",
}

// citationPattern matches reporter-style citations such as
// "410 U.S. 113" or "64 Cal.2d 633".
var citationPattern = regexp.MustCompile(`\d+\s+[a-z][a-z0-9.\s]{0,12}?\d+`)

// californiaCitations are reporter abbreviations specific to California
// decisions.
var californiaCitations = []string{
	"cal. app.",
	"cal.app.",
	"cal. rptr.",
	"cal.rptr.",
	"cal.2d",
	"cal.3d",
	"cal.4th",
	"cal.5th",
	"p.2d",
	"p.3d",
}

var holdingPhrases = []string{
	"court held",
	"court found",
	"held that",
}

var partyLanguage = []string{
	"plaintiff",
	"defendant",
}

// Options control jurisdiction-sensitive rules.
type Options struct {
	// CaliforniaOnly enables the California-specific boost rules. The
	// flat mention tie-breaker applies regardless.
	CaliforniaOnly bool
}

// rule is one additive scoring signal.
type rule struct {
	weight         int
	californiaOnly bool
	applies        func(title, snippet, link string) bool
}

var rules = []rule{
	{weightVersusTitle, false, func(title, _, _ string) bool {
		return strings.Contains(title, " v. ") || strings.Contains(title, " v ")
	}},
	{weightCitationTitle, false, func(title, _, _ string) bool {
		return citationPattern.MatchString(title)
	}},
	{weightCaseLawHost, false, func(_, _, link string) bool {
		return containsAny(link, caseLawHosts)
	}},
	{weightHoldingPhrase, false, func(_, snippet, _ string) bool {
		return containsAny(snippet, holdingPhrases)
	}},
	{weightPartyLanguage, false, func(_, snippet, _ string) bool {
		return containsAny(snippet, partyLanguage)
	}},
	{weightCaliforniaText, true, func(title, snippet, _ string) bool {
		return strings.Contains(title, "california") || strings.Contains(snippet, "california")
	}},
	{weightCaliforniaHost, true, func(_, _, link string) bool {
		return containsAny(link, californiaHosts)
	}},
	{weightCaliforniaCite, true, func(title, snippet, _ string) bool {
		return containsAny(title, californiaCitations) || containsAny(snippet, californiaCitations)
	}},
	{weightAcademicHost, false, func(_, _, link string) bool {
		return containsAny(link, academicHosts)
	}},
	{weightJournalTitle, false, func(title, _, _ string) bool {
		return strings.Contains(title, "journal") || strings.Contains(title, "law review")
	}},
	// Flat tie-breaking nudge: a California mention counts a little even
	// when the caller did not restrict jurisdiction.
	{weightCaliforniaTie, false, func(title, snippet, _ string) bool {
		return strings.Contains(title, "california") || strings.Contains(snippet, "california")
	}},
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

// Score computes the case-law-likeness score for one hit.
func Score(hit models.SearchHit, opts Options) int {
	title := strings.ToLower(hit.Title)
	snippet := strings.ToLower(hit.Snippet)
	link := strings.ToLower(hit.URL)

	total := 0
	for _, r := range rules {
		if r.californiaOnly && !opts.CaliforniaOnly {
			continue
		}
		if r.applies(title, snippet, link) {
			total += r.weight
		}
	}
	return total
}

// Rank scores a batch, orders it descending by score, and cuts it to
// limit. The sort is stable: equal-score hits retain provider order.
// Each returned hit carries its score.
func Rank(hits []models.SearchHit, opts Options, limit int) []models.SearchHit {
	ranked := make([]models.SearchHit, len(hits))
	copy(ranked, hits)

	scores := make([]int, len(ranked))
	for i := range ranked {
		s := Score(ranked[i], opts)
		scores[i] = s
		ranked[i].RelevanceScore = &scores[i]
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return *ranked[i].RelevanceScore > *ranked[j].RelevanceScore
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
