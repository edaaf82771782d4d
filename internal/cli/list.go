package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/awc-hub/awchub/internal/content"
	"github.com/awc-hub/awchub/internal/search"
	"github.com/awc-hub/awchub/internal/ui"
)

var (
	listSearch     string
	listTournament string
)

var listCmd = &cobra.Command{
	Use:   "list <kind>",
	Short: "List records of a content kind",
	Long: `List the records of one kind in display order.

Kinds: tournaments, players, levels, news.

Examples:
  awchub list tournaments
  awchub list players -q ace
  awchub list levels --tournament awc-2024
  awchub list news --json`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeKinds,
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := content.ParseKind(args[0])
		if err != nil {
			return unknownKindError(err)
		}
		if listTournament != "" && kind != content.KindLevel {
			return handleErrorMsg(ErrInvalidInput, "--tournament only applies to levels", "")
		}

		res, err := newRepository(nil).Load(kind)
		if err != nil {
			return handleError(ErrContentLoadFailed, err, "")
		}
		items := filterEntities(kind, res.Items, strings.TrimSpace(listSearch), listTournament)

		if isJSONOutput() {
			outputSuccessWithWarnings(map[string]interface{}{
				"kind":  kind,
				"items": items,
			}, contentWarnings(res.Warnings), &Meta{Count: len(items)})
			return nil
		}

		printWarnings(res.Warnings)
		if len(items) == 0 {
			if listSearch != "" || listTournament != "" {
				fmt.Println(ui.Hint("No matching records."))
			} else {
				fmt.Println(ui.Hint(fmt.Sprintf("No %s found in %s.", kind, getConfig().ContentDir)))
			}
			return nil
		}

		fmt.Print(entityTable(items).String())
		fmt.Println(ui.Hint(ui.Count(len(items), "record", "records")))
		return nil
	},
}

// filterEntities applies the search query, and for levels the tournament filter.
func filterEntities(kind content.Kind, items []content.Entity, query, tournamentID string) []content.Entity {
	switch kind {
	case content.KindTournament:
		return content.Entities(search.Tournaments(content.Collect[content.Tournament](items), query))
	case content.KindPlayer:
		return content.Entities(search.Players(content.Collect[content.Player](items), query))
	case content.KindLevel:
		levels := search.LevelsInTournament(content.Collect[content.Level](items), tournamentID)
		return content.Entities(search.Levels(levels, query))
	case content.KindNews:
		return content.Entities(search.News(content.Collect[content.NewsItem](items), query))
	}
	return items
}

// entityTable lays out one row per record with kind-specific columns.
func entityTable(items []content.Entity) *ui.Table {
	tbl := ui.NewTable(4)
	for _, item := range items {
		id := ui.Muted.Render(item.EntityID())
		title := ui.Bold.Render(item.DisplayTitle())
		switch v := item.(type) {
		case content.Tournament:
			tbl.AddRow(id, title, v.Date.Or(v.Year.String()), v.Status.String())
		case content.Player:
			tbl.AddRow(id, title, v.Country.String(), v.Team.String())
		case content.Level:
			tbl.AddRow(id, title, v.Artist.String(), v.TournamentID.String())
		case content.NewsItem:
			tbl.AddRow(id, title, v.Date.String(), strings.Join(v.Tags, ", "))
		default:
			tbl.AddRow(id, title)
		}
	}
	return tbl
}

func init() {
	listCmd.Flags().StringVarP(&listSearch, "search", "q", "", "Case-insensitive text search")
	listCmd.Flags().StringVar(&listTournament, "tournament", "", "Only levels played in this tournament")
	rootCmd.AddCommand(listCmd)
}
