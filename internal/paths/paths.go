// Package paths provides canonical helpers for converting between content file
// paths and record IDs, and for keeping resolved paths inside a root directory.
package paths

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrPathOutsideRoot is returned when a path resolves outside its root directory.
var ErrPathOutsideRoot = errors.New("path is outside the root directory")

// Stem returns the file name of p without its directory and extension.
//
// Examples:
// - "content/players/ace.md" -> "ace"
// - "2024.finals.yaml"       -> "2024.finals"
func Stem(p string) string {
	base := filepath.Base(p)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// NormalizeRelPath normalizes a root-relative path-like value:
// - converts OS separators to '/'
// - trims leading "./" and leading "/"
// - collapses repeated '/'
func NormalizeRelPath(p string) string {
	p = filepath.ToSlash(p)
	p = strings.TrimPrefix(p, "./")
	p = strings.TrimLeft(p, "/")
	for strings.Contains(p, "//") {
		p = strings.ReplaceAll(p, "//", "/")
	}
	return p
}

// ValidateWithinRoot checks that path, after resolving symlinks, stays inside root.
// A path that does not exist yet is checked lexically.
func ValidateWithinRoot(root, path string) error {
	absRoot, err := resolve(root)
	if err != nil {
		return fmt.Errorf("failed to resolve root %s: %w", root, err)
	}
	absPath, err := resolve(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrPathOutsideRoot, path)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: %s", ErrPathOutsideRoot, path)
	}
	return nil
}

// JoinWithinRoot joins a root-relative name onto root and validates the result.
func JoinWithinRoot(root, name string) (string, error) {
	joined := filepath.Join(root, filepath.FromSlash(NormalizeRelPath(name)))
	if err := ValidateWithinRoot(root, joined); err != nil {
		return "", err
	}
	return joined, nil
}

func resolve(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	if real, err := filepath.EvalSymlinks(abs); err == nil {
		return real, nil
	}
	return filepath.Clean(abs), nil
}
