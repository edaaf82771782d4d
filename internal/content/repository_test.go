package content

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/awc-hub/awchub/internal/testutil"
)

func ids[T Entity](items []T) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.EntityID()
	}
	return out
}

func TestTournamentsOrderedByYearWithDerivedBackground(t *testing.T) {
	c := testutil.NewTestContent(t).
		WithTournament("b", "title: B\nyear: 2023\n").
		WithTournament("a", "title: A\nyear: 2024\n").
		WithTournament("c", "title: C\nyear: 2022\nbg_image_class: custom\n").
		WithTournament("d", "title: D\n").
		Build()

	res, err := NewRepository(c.Path, Options{}).Tournaments()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Degraded() {
		t.Fatalf("unexpected warnings: %v", res.Warnings)
	}
	testutil.AssertIDs(t, ids(res.Items), []string{"a", "b", "c", "d"})

	want := map[string]string{
		"a": "tournament_bg_2024",
		"b": "tournament_bg_2023",
		"c": "custom",
		"d": "",
	}
	for _, tr := range res.Items {
		if got := tr.Background(); got != want[tr.ID] {
			t.Errorf("%s background = %q, want %q", tr.ID, got, want[tr.ID])
		}
	}
}

func TestTournamentsFallBackToDate(t *testing.T) {
	c := testutil.NewTestContent(t).
		WithTournament("old", "title: Old\ndate: 2021-03-01\n").
		WithTournament("new", "title: New\ndate: 2022-01-15\n").
		WithTournament("undated", "title: Undated\n").
		Build()

	res, err := NewRepository(c.Path, Options{}).Tournaments()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertIDs(t, ids(res.Items), []string{"new", "old", "undated"})
	if res.Items[0].Date != "2022-01-15" {
		t.Errorf("date kept as text: got %q", res.Items[0].Date)
	}
}

func TestCustomBackgroundPrefix(t *testing.T) {
	c := testutil.NewTestContent(t).
		WithTournament("a", "year: 2024\n").
		Build()

	res, err := NewRepository(c.Path, Options{Normalizer: &Normalizer{BackgroundPrefix: "bg-"}}).Tournaments()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.Items[0].Background(); got != "bg-2024" {
		t.Errorf("background = %q, want bg-2024", got)
	}
}

func TestFilenameIsAuthoritativeID(t *testing.T) {
	c := testutil.NewTestContent(t).
		WithTournament("from-file", "id: from-yaml\ntitle: X\n").
		WithPlayer("ace", "---\nid: someone-else\nnickname: Ace\n---\nbody").
		Build()

	repo := NewRepository(c.Path, Options{})
	tournaments, err := repo.Tournaments()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tournaments.Items[0].ID != "from-file" {
		t.Errorf("tournament id = %q", tournaments.Items[0].ID)
	}
	if _, ok := tournaments.Items[0].Extra["id"]; ok {
		t.Errorf("id key should not be kept in Extra")
	}

	players, err := repo.Players()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if players.Items[0].ID != "ace" {
		t.Errorf("player id = %q", players.Items[0].ID)
	}
}

func TestMissingDirectoryIsEmpty(t *testing.T) {
	root := t.TempDir()
	repo := NewRepository(root, Options{})

	for _, kind := range Kinds {
		res, err := repo.Load(kind)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", kind, err)
		}
		if res.Len() != 0 || res.Degraded() {
			t.Fatalf("%s: expected empty clean result, got %+v", kind, res)
		}
	}
}

func TestMissingRootIsEmpty(t *testing.T) {
	repo := NewRepository(filepath.Join(t.TempDir(), "nope"), Options{})
	res, err := repo.News()
	if err != nil || res.Len() != 0 {
		t.Fatalf("expected empty result, got %+v, %v", res, err)
	}
}

func TestUnlistableDirectoryIsError(t *testing.T) {
	c := testutil.NewTestContent(t).
		WithFile("levels", "not a directory").
		Build()

	_, err := NewRepository(c.Path, Options{}).Levels()
	if err == nil {
		t.Fatal("expected error when kind path is a file")
	}
}

func TestOnlyMatchingFilesAreLoaded(t *testing.T) {
	c := testutil.NewTestContent(t).
		WithTournament("real", "title: Real\n").
		WithFile("tournaments/notes.md", "# not a record").
		WithFile("tournaments/.hidden.yaml", "title: Hidden\n").
		WithFile("tournaments/draft.yml", "title: Draft\n").
		WithFile("tournaments/nested/inner.yaml", "title: Inner\n").
		Build()

	res, err := NewRepository(c.Path, Options{}).Tournaments()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertIDs(t, ids(res.Items), []string{"real"})
}

func TestMalformedYAMLIsIncludedDegraded(t *testing.T) {
	c := testutil.NewTestContent(t).
		WithLevel("good", "title: Good\n").
		WithLevel("broken", "title: [unclosed\n").
		WithLevel("list", "- just\n- a list\n").
		Build()

	res, err := NewRepository(c.Path, Options{}).Levels()
	if err != nil {
		t.Fatalf("a malformed record must not fail the load: %v", err)
	}
	if res.Len() != 3 {
		t.Fatalf("expected all three records, got %v", ids(res.Items))
	}
	if len(res.Warnings) != 2 {
		t.Fatalf("expected two warnings, got %v", res.Warnings)
	}
	for _, w := range res.Warnings {
		if w.Code != WarnMalformedRecord {
			t.Errorf("warning code = %s", w.Code)
		}
		if !strings.HasSuffix(w.Path, ".yaml") || w.Kind != KindLevel {
			t.Errorf("warning should name the file: %+v", w)
		}
	}

	broken, ok := Find(res.Items, "broken")
	if !ok {
		t.Fatal("broken record missing")
	}
	if !broken.Title.IsZero() {
		t.Errorf("degraded record should have empty metadata, got title %q", broken.Title)
	}
}

func TestNonScalarFieldDropsOnlyThatField(t *testing.T) {
	c := testutil.NewTestContent(t).
		WithTournament("awc-2024", "title: AWC 2024\nyear: 2024\nprize:\n  first: 100\n  second: 50\n").
		WithTournament("awc-2023", "title: AWC 2023\nyear: 2023\n").
		Build()

	res, err := NewRepository(c.Path, Options{}).Tournaments()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertIDs(t, ids(res.Items), []string{"awc-2024", "awc-2023"})

	tr := res.Items[0]
	if tr.Title != "AWC 2024" || tr.Year != "2024" {
		t.Errorf("title/year lost: %+v", tr)
	}
	if got := tr.Background(); got != "tournament_bg_2024" {
		t.Errorf("background = %q, want tournament_bg_2024", got)
	}
	if !tr.Prize.IsZero() {
		t.Errorf("prize = %q, want it dropped", tr.Prize)
	}

	if len(res.Warnings) != 1 {
		t.Fatalf("expected one warning, got %v", res.Warnings)
	}
	w := res.Warnings[0]
	if w.Code != WarnInvalidField || !strings.Contains(w.Message, "prize") {
		t.Errorf("warning = %+v", w)
	}
}

func TestDuplicateKeysKeepRecord(t *testing.T) {
	c := testutil.NewTestContent(t).
		WithLevel("opener", "title: Draft\nartist: Someone\ntitle: Opener\n").
		Build()

	res, err := NewRepository(c.Path, Options{}).Levels()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Degraded() {
		t.Fatalf("unexpected warnings: %v", res.Warnings)
	}
	l := res.Items[0]
	if l.Title != "Opener" || l.Artist != "Someone" {
		t.Errorf("level = %+v, want last title and artist kept", l)
	}
}

func TestFrontmatterBadFieldKeepsMetadata(t *testing.T) {
	c := testutil.NewTestContent(t).
		WithPlayer("ace", "---\nnickname: Ace\ncountry: KR\nteam:\n  - Alpha\n  - Beta\n---\nBio").
		Build()

	res, err := NewRepository(c.Path, Options{}).Players()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := res.Items[0]
	if p.Nickname != "Ace" || p.Country != "KR" || p.Body != "Bio" {
		t.Errorf("player = %+v", p)
	}
	if len(res.Warnings) != 1 || res.Warnings[0].Code != WarnInvalidField {
		t.Errorf("warnings = %v, want one %s", res.Warnings, WarnInvalidField)
	}
}

func TestDegradedRecordsLogBelowWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	c := testutil.NewTestContent(t).
		WithLevel("broken", "title: [unclosed\n").
		Build()

	res, err := NewRepository(c.Path, Options{Logger: logger}).Levels()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("expected the warning in the result, got %v", res.Warnings)
	}
	if buf.Len() != 0 {
		t.Errorf("warnings are reported by callers, logger got %q", buf.String())
	}
}

func TestPlayersParsedFromMarkdown(t *testing.T) {
	c := testutil.NewTestContent(t).
		WithPlayer("space", "---\nnickname: Space\ncountry: JP\n---\n\nHello **there**").
		WithPlayer("ace", "---\nnickname: Ace\nreal_name: Kim\n---\nBio").
		WithPlayer("plain", "Just a *bio* with no metadata").
		Build()

	res, err := NewRepository(c.Path, Options{}).Players()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Missing nickname sorts first (empty string).
	testutil.AssertIDs(t, ids(res.Items), []string{"plain", "ace", "space"})

	plain := res.Items[0]
	if !plain.Nickname.IsZero() || plain.Extra != nil {
		t.Errorf("expected empty metadata, got %+v", plain)
	}
	testutil.AssertContains(t, plain.ContentHTML, "<em>bio</em>")

	space := res.Items[2]
	if space.Country != "JP" {
		t.Errorf("country = %q", space.Country)
	}
	if space.Body != "Hello **there**" {
		t.Errorf("body = %q", space.Body)
	}
	testutil.AssertContains(t, space.ContentHTML, "<strong>there</strong>")
}

func TestMalformedFrontmatterRendersWholeText(t *testing.T) {
	c := testutil.NewTestContent(t).
		WithNews("bad", "---\ntitle: [oops\n---\nStill **shown**").
		Build()

	res, err := NewRepository(c.Path, Options{}).News()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Len() != 1 || len(res.Warnings) != 1 {
		t.Fatalf("expected one degraded record, got %+v", res)
	}
	item := res.Items[0]
	if item.ID != "bad" || !item.Title.IsZero() {
		t.Errorf("unexpected record %+v", item)
	}
	testutil.AssertContains(t, item.ContentHTML, "<strong>shown</strong>")
}

func TestNewsOrderedByDateWithSentinel(t *testing.T) {
	c := testutil.NewTestContent(t).
		WithNews("undated", "---\ntitle: Undated\n---\nx").
		WithNews("june", "---\ntitle: June\ndate: 2024-06-01\ntags: [notice, AWC]\n---\nx").
		WithNews("august", "---\ntitle: August\ndate: \"2024-08-11\"\n---\nx").
		Build()

	res, err := NewRepository(c.Path, Options{}).News()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertIDs(t, ids(res.Items), []string{"august", "june", "undated"})

	june := res.Items[1]
	if len(june.Tags) != 2 || june.Tags[1] != "AWC" {
		t.Errorf("tags = %v", june.Tags)
	}
}

func TestLevelsOrderedByTitle(t *testing.T) {
	c := testutil.NewTestContent(t).
		WithLevel("z", "title: Alpha\ntournament_id: awc-2024\nbpm: 180\n").
		WithLevel("a", "title: Omega\n").
		Build()

	res, err := NewRepository(c.Path, Options{}).Levels()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertIDs(t, ids(res.Items), []string{"z", "a"})
	if res.Items[0].TournamentID != "awc-2024" || res.Items[0].BPM != "180" {
		t.Errorf("unexpected level %+v", res.Items[0])
	}
}

func TestLoadFreshEachCall(t *testing.T) {
	c := testutil.NewTestContent(t).
		WithLevel("first", "title: First\n").
		Build()

	repo := NewRepository(c.Path, Options{})
	first, err := repo.Levels()
	if err != nil {
		t.Fatal(err)
	}

	c.WriteFile("levels/second.yaml", "title: Second\n")
	second, err := repo.Levels()
	if err != nil {
		t.Fatal(err)
	}

	if first.Len() != 1 || second.Len() != 2 {
		t.Fatalf("expected reload to see new file: %d then %d", first.Len(), second.Len())
	}
}

func TestLoadByKind(t *testing.T) {
	c := testutil.SampleContent(t).Build()
	repo := NewRepository(c.Path, Options{})

	res, err := repo.Load(KindPlayer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	players := Collect[Player](res.Items)
	testutil.AssertIDs(t, ids(players), []string{"ace", "space"})

	if _, err := repo.Load(Kind("bogus")); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestUnreadableFileIsSkipped(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read any file")
	}
	c := testutil.NewTestContent(t).
		WithLevel("ok", "title: OK\n").
		WithLevel("locked", "title: Locked\n").
		Build()
	if err := os.Chmod(filepath.Join(c.Path, "levels", "locked.yaml"), 0); err != nil {
		t.Fatal(err)
	}

	res, err := NewRepository(c.Path, Options{}).Levels()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertIDs(t, ids(res.Items), []string{"ok"})
	if len(res.Warnings) != 1 || res.Warnings[0].Code != WarnUnreadableFile {
		t.Fatalf("expected unreadable warning, got %v", res.Warnings)
	}
}
