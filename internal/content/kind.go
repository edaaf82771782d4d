// Package content loads tournament, player, level and news records from a
// content directory.
package content

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Kind selects a content directory and its record format.
type Kind string

const (
	KindTournament Kind = "tournaments"
	KindPlayer     Kind = "players"
	KindLevel      Kind = "levels"
	KindNews       Kind = "news"
)

// Kinds lists every content kind in navigation order.
var Kinds = []Kind{KindTournament, KindPlayer, KindLevel, KindNews}

// ErrUnknownKind is returned when a kind name is not recognised.
var ErrUnknownKind = errors.New("unknown content kind")

// Dir returns the kind's directory name relative to the content root.
func (k Kind) Dir() string {
	return string(k)
}

// Ext returns the file extension of records of this kind.
func (k Kind) Ext() string {
	switch k {
	case KindTournament, KindLevel:
		return ".yaml"
	default:
		return ".md"
	}
}

// Markdown reports whether records of this kind are markdown documents.
func (k Kind) Markdown() bool {
	return k.Ext() == ".md"
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

func (k Kind) String() string {
	return string(k)
}

// ParseKind parses a kind name. Singular forms are accepted.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "tournaments", "tournament":
		return KindTournament, nil
	case "players", "player":
		return KindPlayer, nil
	case "levels", "level":
		return KindLevel, nil
	case "news":
		return KindNews, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// KindForPath maps a path inside root to the kind whose directory holds it.
// Directories directly under root map to their kind as well.
func KindForPath(root, path string) (Kind, bool) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", false
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	if len(parts) == 0 || parts[0] == ".." || parts[0] == "." {
		return "", false
	}

	kind := Kind(parts[0])
	if !kind.Valid() {
		return "", false
	}
	switch len(parts) {
	case 1:
		return kind, true
	case 2:
		if filepath.Ext(parts[1]) == kind.Ext() {
			return kind, true
		}
	}
	return "", false
}
