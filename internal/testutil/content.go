// Package testutil provides reusable test utilities for content fixtures.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TestContent represents a temporary content root for testing.
type TestContent struct {
	Path  string
	t     *testing.T
	files map[string]string
}

// NewTestContent creates a new content root builder.
// Call Build() to create the actual directory.
func NewTestContent(t *testing.T) *TestContent {
	t.Helper()
	return &TestContent{
		t:     t,
		files: make(map[string]string),
	}
}

// WithFile adds a file relative to the content root.
func (c *TestContent) WithFile(path, content string) *TestContent {
	c.files[path] = content
	return c
}

// WithTournament adds tournaments/<id>.yaml.
func (c *TestContent) WithTournament(id, yaml string) *TestContent {
	return c.WithFile(filepath.Join("tournaments", id+".yaml"), yaml)
}

// WithLevel adds levels/<id>.yaml.
func (c *TestContent) WithLevel(id, yaml string) *TestContent {
	return c.WithFile(filepath.Join("levels", id+".yaml"), yaml)
}

// WithPlayer adds players/<id>.md.
func (c *TestContent) WithPlayer(id, markdown string) *TestContent {
	return c.WithFile(filepath.Join("players", id+".md"), markdown)
}

// WithNews adds news/<id>.md.
func (c *TestContent) WithNews(id, markdown string) *TestContent {
	return c.WithFile(filepath.Join("news", id+".md"), markdown)
}

// Build creates the content directory and all configured files.
func (c *TestContent) Build() *TestContent {
	c.t.Helper()

	c.Path = c.t.TempDir()
	for path, content := range c.files {
		c.WriteFile(path, content)
	}
	return c
}

// WriteFile writes a file under the built root, creating directories as needed.
func (c *TestContent) WriteFile(relPath, content string) {
	c.t.Helper()
	fullPath := filepath.Join(c.Path, relPath)

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		c.t.Fatalf("failed to create directory %s: %v", dir, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		c.t.Fatalf("failed to write file %s: %v", fullPath, err)
	}
}

// Mkdir creates an empty directory under the built root.
func (c *TestContent) Mkdir(relPath string) {
	c.t.Helper()
	if err := os.MkdirAll(filepath.Join(c.Path, relPath), 0755); err != nil {
		c.t.Fatalf("failed to create directory %s: %v", relPath, err)
	}
}

// SampleContent returns a small, well-formed content root covering every kind.
func SampleContent(t *testing.T) *TestContent {
	t.Helper()
	return NewTestContent(t).
		WithTournament("awc-2024", `title: AWC 2024
year: 2024
date: "2024-08-10"
organizer: ADOFAI.gg
prize: "1,000,000 KRW"
winner: Ace
status: 종료
description: "The **fourth** world cup."
vod_links:
  - title: Grand Final
    url: https://youtube.com/watch?v=final
`).
		WithTournament("awc-2023", `title: AWC 2023
year: 2023
status: 종료
`).
		WithPlayer("ace", `---
nickname: Ace
real_name: Kim Ace
country: KR
team: Team Rhythm
twitter: ace_adofai
---

Ace won **AWC 2024**.
`).
		WithPlayer("space", `---
nickname: Space
country: JP
---

Space body.
`).
		WithLevel("final-boss", `title: Final Boss
artist: Camellia
creator: Levelmaker
difficulty_rating: 21
bpm: 280
tiles: 4096
tournament_id: awc-2024
minititle: GF
`).
		WithLevel("opener", `title: Opener
artist: Someone
creator: Ace
tournament_id: awc-2023
`).
		WithNews("finals-recap", `---
title: Finals recap
date: 2024-08-11
author: staff
tags: [awc, finals]
---

What a **final**.
`).
		WithNews("signups", `---
title: Signups open
date: 2024-06-01
tags: [notice]
---

Sign up now.
`)
}
