package parser

import (
	"strings"
	"testing"
)

func TestSplitFrontmatter(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantPresent bool
		wantRaw     string
		wantBody    string
	}{
		{
			name: "basic frontmatter",
			content: `---
nickname: Ace
country: KR
---

# Ace

Some content`,
			wantPresent: true,
			wantRaw:     "\nnickname: Ace\ncountry: KR\n",
			wantBody:    "# Ace\n\nSome content",
		},
		{
			name:     "no frontmatter",
			content:  "# Just a heading\n\nSome content\n",
			wantBody: "# Just a heading\n\nSome content",
		},
		{
			name:        "leading whitespace is still frontmatter",
			content:     "\n  \n---\ntitle: Hi\n---\nBody",
			wantPresent: true,
			wantRaw:     "\ntitle: Hi\n",
			wantBody:    "Body",
		},
		{
			name:     "text before the first delimiter",
			content:  "Intro\n---\ntitle: Hi\n---\nBody",
			wantBody: "Intro\n---\ntitle: Hi\n---\nBody",
		},
		{
			name:     "unclosed frontmatter",
			content:  "---\ntitle: Hi\n\nBody",
			wantBody: "---\ntitle: Hi\n\nBody",
		},
		{
			name:        "empty frontmatter",
			content:     "---\n---\n\nBody",
			wantPresent: true,
			wantRaw:     "\n",
			wantBody:    "Body",
		},
		{
			name:        "horizontal rule in body stays in body",
			content:     "---\ntitle: Hi\n---\nFirst\n\n---\n\nSecond",
			wantPresent: true,
			wantRaw:     "\ntitle: Hi\n",
			wantBody:    "First\n\n---\n\nSecond",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm := SplitFrontmatter(tt.content)
			if fm.Present != tt.wantPresent {
				t.Fatalf("Present = %v, want %v", fm.Present, tt.wantPresent)
			}
			if fm.Raw != tt.wantRaw {
				t.Errorf("Raw = %q, want %q", fm.Raw, tt.wantRaw)
			}
			if fm.Body != tt.wantBody {
				t.Errorf("Body = %q, want %q", fm.Body, tt.wantBody)
			}
		})
	}
}

type testMeta struct {
	Title string   `yaml:"title"`
	Date  string   `yaml:"date"`
	Tags  []string `yaml:"tags"`
}

func TestFrontmatterDecode(t *testing.T) {
	t.Run("decodes mapping", func(t *testing.T) {
		fm := SplitFrontmatter("---\ntitle: Finals\ndate: \"2024-06-01\"\ntags: [awc, finals]\n---\nbody")
		var meta testMeta
		if _, err := fm.Decode(&meta); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if meta.Title != "Finals" || meta.Date != "2024-06-01" {
			t.Errorf("meta = %+v", meta)
		}
		if len(meta.Tags) != 2 || meta.Tags[0] != "awc" || meta.Tags[1] != "finals" {
			t.Errorf("tags = %v", meta.Tags)
		}
	})

	t.Run("empty block leaves value untouched", func(t *testing.T) {
		fm := SplitFrontmatter("---\n# just a comment\n---\nbody")
		meta := testMeta{Title: "keep"}
		if _, err := fm.Decode(&meta); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if meta.Title != "keep" {
			t.Errorf("Title = %q, want keep", meta.Title)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		fm := SplitFrontmatter("---\ntitle: [unclosed\n---\nbody")
		var meta testMeta
		_, err := fm.Decode(&meta)
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "frontmatter") {
			t.Errorf("error should mention frontmatter: %v", err)
		}
	})
}
