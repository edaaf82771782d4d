package cli

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/awc-hub/awchub/internal/content"
	"github.com/awc-hub/awchub/internal/route"
	"github.com/awc-hub/awchub/internal/ui"
)

var showRaw bool

var showCmd = &cobra.Command{
	Use:   "show <kind> <id>",
	Short: "Show one record",
	Long: `Show one record by kind and ID. The ID is the record's file name
without its extension.

Examples:
  awchub show tournament awc-2024
  awchub show player ace --json
  awchub show news finals-recap --raw`,
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completeKinds,
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := content.ParseKind(args[0])
		if err != nil {
			return unknownKindError(err)
		}
		id := args[1]

		res, err := newRepository(nil).Load(kind)
		if err != nil {
			return handleError(ErrContentLoadFailed, err, "")
		}

		r := route.Resolve(res.Items, url.Values{route.ParamID: {id}})
		if !r.IsDetail() {
			return handleErrorMsg(ErrRecordNotFound,
				fmt.Sprintf("no %s record with ID %q", kind, id),
				fmt.Sprintf("Run 'awchub list %s' to see available IDs", kind))
		}

		if isJSONOutput() {
			outputSuccess(r.Item, nil)
			return nil
		}

		fmt.Println(ui.AccentBold.Render(r.Item.DisplayTitle()))
		fields := recordFields(r.Item)
		tbl := ui.NewTable(2)
		for _, f := range fields {
			tbl.AddRow(ui.Muted.Render(f[0]), f[1])
		}
		fmt.Print(tbl.String())

		body := recordBody(r.Item)
		if strings.TrimSpace(body) == "" {
			return nil
		}
		if showRaw {
			fmt.Println()
			fmt.Println(body)
			return nil
		}
		display := ui.NewDisplayContext()
		rendered, err := ui.RenderMarkdown(body, display.ReadingWidth())
		if err != nil {
			getLogger().Debug("markdown render failed", "error", err)
			fmt.Println()
			fmt.Println(body)
			return nil
		}
		fmt.Print(rendered)
		return nil
	},
}

// recordFields returns the non-empty label/value pairs shown above the body.
func recordFields(e content.Entity) [][2]string {
	var fields [][2]string
	add := func(label string, value string) {
		if strings.TrimSpace(value) != "" {
			fields = append(fields, [2]string{label, value})
		}
	}

	add("id", e.EntityID())
	switch v := e.(type) {
	case content.Tournament:
		add("date", v.Date.String())
		add("year", v.Year.String())
		add("organizer", v.Organizer.String())
		add("prize", v.Prize.String())
		add("winner", v.Winner.String())
		add("status", v.Status.String())
		add("bracket", v.BracketImage.String())
		for _, vod := range v.VODLinks {
			add("vod", strings.TrimSpace(vod.Title.String()+" "+vod.URL.String()))
		}
	case content.Player:
		add("real name", v.RealName.String())
		add("country", v.Country.String())
		add("team", v.Team.String())
		for _, link := range v.SocialLinks() {
			add(strings.ToLower(link.Name), link.URL)
		}
	case content.Level:
		add("artist", v.DetailArtist.Or(v.Artist.String()))
		add("creator", v.DetailCreator.Or(v.Creator.String()))
		add("difficulty", v.DifficultyRating.String())
		add("bpm", v.BPM.String())
		add("tiles", v.Tiles.String())
		add("tournament", v.TournamentID.String())
		add("minititle", v.MiniTitle.String())
		add("download", v.DownloadURL.String())
		if !v.YouTubeVideoID.IsZero() {
			add("video", "https://www.youtube.com/watch?v="+v.YouTubeVideoID.String())
		}
	case content.NewsItem:
		add("date", v.Date.String())
		add("author", v.Author.String())
		add("tags", strings.Join(v.Tags, ", "))
	}
	return fields
}

// recordBody returns the markdown shown below the fields, if any.
func recordBody(e content.Entity) string {
	switch v := e.(type) {
	case content.Tournament:
		return v.Description.String()
	case content.Player:
		return v.Body
	case content.NewsItem:
		return v.Body
	}
	return ""
}

func init() {
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "Print the markdown body without rendering")
	rootCmd.AddCommand(showCmd)
}
