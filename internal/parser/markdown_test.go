package parser

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	r := NewRenderer()

	got, err := r.Render("# Title\n\nHello **world**")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "Title</h1>") {
		t.Errorf("expected h1 in %q", got)
	}
	if !strings.Contains(got, "<strong>world</strong>") {
		t.Errorf("expected strong in %q", got)
	}
}

func TestRenderSanitizesScripts(t *testing.T) {
	r := NewRenderer()

	got, err := r.Render("Hi <script>alert(1)</script> <b>there</b>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(got, "<script>") {
		t.Errorf("script tag survived: %q", got)
	}
	if !strings.Contains(got, "<b>there</b>") {
		t.Errorf("expected inline html to be kept: %q", got)
	}
}

func TestParseDocument(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name            string
		content         string
		wantTitle       string
		wantMarkdown    string
		wantFrontmatter bool
		wantErr         bool
		wantFieldErrs   int
		wantHTML        string
	}{
		{
			name:            "valid frontmatter",
			content:         "---\ntitle: Patch notes\n---\n\nThe **new** season",
			wantTitle:       "Patch notes",
			wantMarkdown:    "The **new** season",
			wantFrontmatter: true,
			wantHTML:        "<strong>new</strong>",
		},
		{
			name:         "no delimiters renders everything",
			content:      "Plain *body* only",
			wantMarkdown: "Plain *body* only",
			wantHTML:     "<em>body</em>",
		},
		{
			name:         "malformed yaml degrades to whole text",
			content:      "---\ntitle: [oops\n---\nBody",
			wantMarkdown: "---\ntitle: [oops\n---\nBody",
			wantErr:      true,
			wantHTML:     "Body",
		},
		{
			name:            "type mismatch drops only the field",
			content:         "---\ntitle: Recap\ntags: {a: b}\n---\nBody",
			wantTitle:       "Recap",
			wantMarkdown:    "Body",
			wantFrontmatter: true,
			wantFieldErrs:   1,
		},
		{
			name:         "scalar frontmatter degrades to whole text",
			content:      "---\njust words\n---\nBody",
			wantMarkdown: "---\njust words\n---\nBody",
			wantErr:      true,
		},
		{
			name:            "empty metadata block",
			content:         "---\n---\nBody",
			wantMarkdown:    "Body",
			wantFrontmatter: true,
			wantHTML:        "<p>Body</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, doc := ParseDocument[testMeta](r, tt.content)
			if meta.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", meta.Title, tt.wantTitle)
			}
			if doc.Markdown != tt.wantMarkdown {
				t.Errorf("Markdown = %q, want %q", doc.Markdown, tt.wantMarkdown)
			}
			if doc.Frontmatter != tt.wantFrontmatter {
				t.Errorf("Frontmatter = %v, want %v", doc.Frontmatter, tt.wantFrontmatter)
			}
			if (doc.Err != nil) != tt.wantErr {
				t.Errorf("Err = %v, wantErr %v", doc.Err, tt.wantErr)
			}
			if len(doc.FieldErrors) != tt.wantFieldErrs {
				t.Errorf("FieldErrors = %v, want %d", doc.FieldErrors, tt.wantFieldErrs)
			}
			if tt.wantHTML != "" && !strings.Contains(doc.HTML, tt.wantHTML) {
				t.Errorf("HTML = %q, want it to contain %q", doc.HTML, tt.wantHTML)
			}
		})
	}
}

func TestParseDocumentMalformedResetsMetadata(t *testing.T) {
	r := NewRenderer()

	// title is valid but the block as a whole is not YAML; nothing may leak.
	meta, doc := ParseDocument[testMeta](r, "---\ntitle: Kept?\ntags: [oops\n---\nBody")
	if doc.Err == nil {
		t.Fatal("expected decode error")
	}
	if meta.Title != "" {
		t.Errorf("Title = %q, want empty", meta.Title)
	}
}

func TestParseDocumentKeepsFieldsAroundBadValue(t *testing.T) {
	r := NewRenderer()

	meta, doc := ParseDocument[testMeta](r, "---\ntitle: First\ntags:\n  group: finals\ndate: \"2024-06-01\"\ntitle: Second\n---\nBody")
	if doc.Err != nil {
		t.Fatalf("unexpected error: %v", doc.Err)
	}
	if meta.Title != "Second" {
		t.Errorf("Title = %q, want the last duplicate", meta.Title)
	}
	if meta.Date != "2024-06-01" {
		t.Errorf("Date = %q", meta.Date)
	}
	if len(doc.FieldErrors) != 1 || doc.FieldErrors[0].Key != "tags" {
		t.Fatalf("FieldErrors = %v, want one for tags", doc.FieldErrors)
	}
	if doc.Markdown != "Body" || !doc.Frontmatter {
		t.Errorf("body should still be split from frontmatter: %+v", doc)
	}
}
