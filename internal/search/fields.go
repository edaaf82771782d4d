package search

import "github.com/awc-hub/awchub/internal/content"

// Default search fields for each kind.
var (
	TournamentFields = []Field[content.Tournament]{
		Text(func(t content.Tournament) string { return t.Title.String() }),
	}

	PlayerFields = []Field[content.Player]{
		Text(func(p content.Player) string { return p.Nickname.String() }),
		Text(func(p content.Player) string { return p.RealName.String() }),
	}

	LevelFields = []Field[content.Level]{
		Text(func(l content.Level) string { return l.Title.String() }),
		Text(func(l content.Level) string { return l.Artist.String() }),
		Text(func(l content.Level) string { return l.Creator.String() }),
	}

	NewsFields = []Field[content.NewsItem]{
		Text(func(n content.NewsItem) string { return n.Title.String() }),
		Values(func(n content.NewsItem) []string { return n.Tags }),
	}
)

// Tournaments filters tournaments by title.
func Tournaments(items []content.Tournament, query string) []content.Tournament {
	return Filter(items, query, TournamentFields...)
}

// Players filters players by nickname or real name.
func Players(items []content.Player, query string) []content.Player {
	return Filter(items, query, PlayerFields...)
}

// Levels filters levels by title, artist or creator.
func Levels(items []content.Level, query string) []content.Level {
	return Filter(items, query, LevelFields...)
}

// News filters news items by title or tag.
func News(items []content.NewsItem, query string) []content.NewsItem {
	return Filter(items, query, NewsFields...)
}

// LevelsInTournament keeps levels played in the given tournament. An empty ID keeps all levels.
func LevelsInTournament(items []content.Level, tournamentID string) []content.Level {
	return Equal(items, tournamentID, func(l content.Level) string { return l.TournamentID.String() })
}
