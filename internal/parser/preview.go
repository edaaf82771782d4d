package parser

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// PreviewLength is the number of characters shown in list previews.
const PreviewLength = 200

var stripPolicy = bluemonday.StrictPolicy()

// PlainText strips all markup from rendered HTML.
func PlainText(rendered string) string {
	return strings.TrimSpace(html.UnescapeString(stripPolicy.Sanitize(rendered)))
}

// Preview returns at most limit characters of the plain text of rendered HTML,
// followed by "..." when it was cut.
func Preview(rendered string, limit int) string {
	text := PlainText(rendered)
	runes := []rune(text)
	if limit <= 0 || len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
