package search

import (
	"testing"

	"github.com/awc-hub/awchub/internal/content"
)

func nicknames(items []content.Player) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.Nickname.String()
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterEmptyQueryReturnsInput(t *testing.T) {
	players := []content.Player{{ID: "a", Nickname: "Ace"}, {ID: "b", Nickname: "Bee"}}
	got := Players(players, "")
	if len(got) != len(players) || &got[0] != &players[0] {
		t.Fatal("empty query should return the input slice itself")
	}
}

func TestFilterCaseInsensitiveSubstring(t *testing.T) {
	players := []content.Player{
		{ID: "ace", Nickname: "Ace"},
		{ID: "bee", Nickname: "Bee"},
		{ID: "space", Nickname: "Space"},
	}

	got := Players(players, "ace")
	if want := []string{"Ace", "Space"}; !equal(nicknames(got), want) {
		t.Fatalf("got %v, want %v", nicknames(got), want)
	}

	got = Players(players, "ACE")
	if want := []string{"Ace", "Space"}; !equal(nicknames(got), want) {
		t.Fatalf("upper-case query: got %v, want %v", nicknames(got), want)
	}
}

func TestFilterMatchesAnyField(t *testing.T) {
	players := []content.Player{
		{ID: "a", Nickname: "Ace", RealName: "Kim Minjun"},
		{ID: "b", Nickname: "Bee"},
	}
	got := Players(players, "minjun")
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("expected real name match, got %+v", got)
	}
}

func TestFilterMissingFieldIsEmpty(t *testing.T) {
	levels := []content.Level{
		{ID: "a", Title: "Alpha"},
		{ID: "b", Title: "Beta", Creator: "Alpha Team"},
	}
	got := Levels(levels, "team")
	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("got %+v", got)
	}
}

func TestFilterMultiValuedField(t *testing.T) {
	news := []content.NewsItem{
		{ID: "1", Title: "Recap", Tags: content.List{"AWC", "Finals"}},
		{ID: "2", Title: "Signups", Tags: content.List{"notice"}},
		{ID: "3", Title: "Final schedule"},
	}

	got := News(news, "final")
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Fatalf("got %+v", got)
	}
}

func TestFilterIsIdempotentAndPure(t *testing.T) {
	levels := []content.Level{
		{ID: "a", Title: "Camellia Rush", Artist: "Camellia"},
		{ID: "b", Title: "Other"},
		{ID: "c", Title: "X", Creator: "camel"},
	}
	before := append([]content.Level(nil), levels...)

	once := Levels(levels, "camel")
	twice := Levels(once, "camel")
	if len(once) != len(twice) {
		t.Fatalf("not idempotent: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Fatalf("not idempotent at %d", i)
		}
	}
	for i := range levels {
		if levels[i].ID != before[i].ID || levels[i].Title != before[i].Title {
			t.Fatal("input was modified")
		}
	}
}

func TestTournamentsSearchTitleOnly(t *testing.T) {
	tournaments := []content.Tournament{
		{ID: "awc-2024", Title: "AWC 2024", Organizer: "ADOFAI.gg"},
		{ID: "cup", Title: "Spring Cup"},
	}
	if got := Tournaments(tournaments, "adofai"); len(got) != 0 {
		t.Fatalf("organizer should not be searched, got %+v", got)
	}
	if got := Tournaments(tournaments, "awc"); len(got) != 1 || got[0].ID != "awc-2024" {
		t.Fatalf("got %+v", got)
	}
}

func TestLevelsInTournament(t *testing.T) {
	levels := []content.Level{
		{ID: "a", TournamentID: "awc-2024"},
		{ID: "b", TournamentID: "awc-2023"},
		{ID: "c"},
	}

	if got := LevelsInTournament(levels, ""); len(got) != 3 {
		t.Fatalf("empty id should keep all, got %d", len(got))
	}
	got := LevelsInTournament(levels, "awc-2024")
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("got %+v", got)
	}
	if got := LevelsInTournament(levels, "awc"); len(got) != 0 {
		t.Fatalf("tournament filter is exact, got %+v", got)
	}
}
