package content

import "sort"

// Sentinels used in place of missing sort keys. They sort last in descending order.
const (
	MissingYear = "0000"
	MissingDate = "0000-00-00"
)

// SortKey returns the key tournaments are ordered by: Year, then Date, then MissingYear.
func (t Tournament) SortKey() string {
	if !t.Year.IsZero() {
		return t.Year.String()
	}
	if !t.Date.IsZero() {
		return t.Date.String()
	}
	return MissingYear
}

// SortKey returns the key news items are ordered by: Date, then MissingDate.
func (n NewsItem) SortKey() string {
	if !n.Date.IsZero() {
		return n.Date.String()
	}
	return MissingDate
}

// SortTournaments orders tournaments newest first.
func SortTournaments(items []Tournament) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].SortKey() > items[j].SortKey()
	})
}

// SortPlayers orders players by nickname.
func SortPlayers(items []Player) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Nickname < items[j].Nickname
	})
}

// SortLevels orders levels by title.
func SortLevels(items []Level) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Title < items[j].Title
	})
}

// SortNews orders news items newest first. Dates compare as strings.
func SortNews(items []NewsItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].SortKey() > items[j].SortKey()
	})
}
