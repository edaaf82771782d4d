package parser

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmparser "github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// Renderer converts markdown to sanitised HTML.
// It is safe for concurrent use.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewRenderer creates a Renderer with GitHub-flavoured extensions.
// Raw HTML in the source is passed through goldmark and then sanitised.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(gmparser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
		),
		policy: bluemonday.UGCPolicy(),
	}
}

// Render renders markdown content to HTML.
func (r *Renderer) Render(content string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return r.policy.Sanitize(buf.String()), nil
}

// MustRender renders content, falling back to an escaped paragraph if
// goldmark fails. It never returns an empty string for non-empty input.
func (r *Renderer) MustRender(content string) string {
	out, err := r.Render(content)
	if err != nil {
		return "<p>" + html.EscapeString(content) + "</p>"
	}
	return out
}

// Document is a parsed markdown record.
type Document struct {
	// Markdown is the body that was rendered.
	Markdown string

	// HTML is the rendered body.
	HTML string

	// Frontmatter reports whether metadata was decoded from a frontmatter block.
	Frontmatter bool

	// Err is set when the record was malformed and parsed leniently.
	Err error

	// FieldErrors lists frontmatter fields that were dropped because their
	// values did not fit. The remaining metadata is kept.
	FieldErrors []FieldError
}

// ParseDocument splits content into frontmatter and body, decodes the
// frontmatter into a T and renders the body.
//
// Parsing never fails outright. When the frontmatter cannot be decoded the
// metadata is the zero T, the whole content is rendered as the body and the
// decode error is reported in Document.Err. A field whose value does not fit
// only drops that field and is listed in Document.FieldErrors.
func ParseDocument[T any](r *Renderer, content string) (T, Document) {
	var meta T

	fm := SplitFrontmatter(content)
	doc := Document{Markdown: fm.Body, Frontmatter: fm.Present}

	fieldErrs, err := fm.Decode(&meta)
	doc.FieldErrors = fieldErrs
	if err != nil {
		var zero T
		meta = zero
		doc.Markdown = strings.TrimSpace(content)
		doc.Frontmatter = false
		doc.Err = err
	}

	rendered, err := r.Render(doc.Markdown)
	if err != nil {
		rendered = "<p>" + html.EscapeString(doc.Markdown) + "</p>"
		if doc.Err == nil {
			doc.Err = err
		}
	}
	doc.HTML = rendered

	return meta, doc
}
