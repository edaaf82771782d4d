// Package search narrows content collections by free-text queries.
package search

import "strings"

// Field extracts the searchable values of an item.
type Field[T any] func(item T) []string

// Text builds a Field from a single-valued accessor.
func Text[T any](get func(item T) string) Field[T] {
	return func(item T) []string {
		return []string{get(item)}
	}
}

// Values builds a Field from a multi-valued accessor.
func Values[T any](get func(item T) []string) Field[T] {
	return Field[T](get)
}

// Filter returns the items where query is a case-insensitive substring of at
// least one value of at least one field.
//
// An empty query returns items itself. The input is never modified and the
// relative order of matches is kept, so filtering is idempotent.
func Filter[T any](items []T, query string, fields ...Field[T]) []T {
	if query == "" {
		return items
	}

	needle := strings.ToLower(query)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if matches(item, needle, fields) {
			out = append(out, item)
		}
	}
	return out
}

func matches[T any](item T, needle string, fields []Field[T]) bool {
	for _, field := range fields {
		for _, value := range field(item) {
			if strings.Contains(strings.ToLower(value), needle) {
				return true
			}
		}
	}
	return false
}

// Equal returns the items whose key equals value exactly. An empty value returns items itself.
func Equal[T any](items []T, value string, key func(item T) string) []T {
	if value == "" {
		return items
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		if key(item) == value {
			out = append(out, item)
		}
	}
	return out
}
