// Package slugs provides record ID hygiene helpers built on gosimple/slug.
//
// Record IDs are filename stems and end up in `?id=` query parameters, so the
// `check` command flags IDs that are not already URL slugs and suggests one.
package slugs

import (
	"strings"

	goslug "github.com/gosimple/slug"
)

// IsSlug reports whether id is already a URL slug (lowercase ASCII letters,
// digits, '-' and '_', not starting or ending with a separator).
func IsSlug(id string) bool {
	return goslug.IsSlug(id)
}

// Suggest converts a record ID to a URL-safe slug.
//
// If slugging yields nothing the lowercased input with spaces replaced by
// dashes is returned instead.
func Suggest(s string) string {
	slugged := goslug.Make(s)
	if slugged == "" {
		slugged = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", "-"))
	}
	return slugged
}
