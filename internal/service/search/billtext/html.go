package billtext

import (
	stdhtml "html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	htmlMarker    = regexp.MustCompile(`(?i)<\s*(!doctype|html|body|head)\b`)
	tagPattern    = regexp.MustCompile(`<[^>]*>`)
	scriptPattern = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	stylePattern  = regexp.MustCompile(`(?is)<style\b.*?</style>`)
	spaceRun      = regexp.MustCompile(`\s+`)
)

// looksLikeHTML reports whether a payload should be treated as HTML,
// either by declared MIME type or by a structural marker in the content.
func looksLikeHTML(mime, content string) bool {
	if strings.Contains(strings.ToLower(mime), "text/html") {
		return true
	}
	return htmlMarker.MatchString(content)
}

// htmlToText converts an HTML payload to plain text. Script and style
// subtrees are removed first, contents included; stripping tags first
// would leak script and style bodies into the result. Remaining tags
// become single spaces so adjacent blocks stay separated, entities are
// unescaped, then whitespace runs collapse and the result is trimmed.
func htmlToText(content string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return htmlToTextFallback(content)
	}

	doc.Find("script, style").Remove()
	stripped, err := doc.Html()
	if err != nil {
		return htmlToTextFallback(content)
	}

	text := tagPattern.ReplaceAllString(stripped, " ")
	return collapseWhitespace(stdhtml.UnescapeString(text))
}

// htmlToTextFallback strips markup with regular expressions when the
// payload is too broken for the HTML parser. Same ordering constraint:
// script and style blocks go first, contents included.
func htmlToTextFallback(content string) string {
	content = scriptPattern.ReplaceAllString(content, " ")
	content = stylePattern.ReplaceAllString(content, " ")
	content = tagPattern.ReplaceAllString(content, " ")
	return collapseWhitespace(stdhtml.UnescapeString(content))
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))
}
