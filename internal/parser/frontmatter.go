// Package parser handles parsing markdown records.
package parser

import (
	"fmt"
	"strings"
)

// Delimiter separates the frontmatter block from the body.
const Delimiter = "---"

// Frontmatter represents a markdown document split into its metadata block and body.
type Frontmatter struct {
	// Raw is the YAML text between the first two delimiters.
	Raw string

	// Body is the markdown after the second delimiter, trimmed.
	// When no frontmatter is present it is the whole document, trimmed.
	Body string

	// Present reports whether the document opened with a frontmatter block.
	Present bool
}

// SplitFrontmatter splits content on the literal delimiter into at most three parts.
//
// Frontmatter is only recognised when the split yields three parts and the text
// before the first delimiter is blank. Anything else is treated as a document
// without frontmatter.
func SplitFrontmatter(content string) Frontmatter {
	parts := strings.SplitN(content, Delimiter, 3)
	if len(parts) < 3 || strings.TrimSpace(parts[0]) != "" {
		return Frontmatter{Body: strings.TrimSpace(content)}
	}

	return Frontmatter{
		Raw:     parts[1],
		Body:    strings.TrimSpace(parts[2]),
		Present: true,
	}
}

// Decode unmarshals the frontmatter YAML into v.
// An empty block (or one holding only comments) leaves v untouched.
// Fields that do not fit v are skipped and returned as fieldErrs; err is
// reserved for a block that is not a YAML mapping at all.
func (fm Frontmatter) Decode(v interface{}) (fieldErrs []FieldError, err error) {
	if !fm.Present || strings.TrimSpace(fm.Raw) == "" {
		return nil, nil
	}
	fieldErrs, err = DecodeYAML([]byte(fm.Raw), v)
	if err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter as YAML: %w", err)
	}
	return fieldErrs, nil
}
