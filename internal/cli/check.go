package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/awc-hub/awchub/internal/content"
	"github.com/awc-hub/awchub/internal/dates"
	"github.com/awc-hub/awchub/internal/paths"
	"github.com/awc-hub/awchub/internal/slugs"
	"github.com/awc-hub/awchub/internal/ui"
)

var (
	checkKinds  kindsValue
	checkStrict bool
)

// checkIssue is one problem found in the content directory.
type checkIssue struct {
	Kind       content.Kind `json:"kind"`
	ID         string       `json:"id,omitempty"`
	Path       string       `json:"path,omitempty"`
	Code       string       `json:"code"`
	Message    string       `json:"message"`
	Suggestion string       `json:"suggestion,omitempty"`
}

type checkReport struct {
	Records map[content.Kind]int `json:"records"`
	Issues  []checkIssue         `json:"issues"`
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the content directory",
	Long: `Load every record and report problems:

  - files that could not be read or parsed (they still load with placeholders)
  - IDs that are not URL slugs, with a suggested file name
  - records without a title or nickname
  - dates and years that would not sort chronologically
  - levels whose tournament_id matches no tournament

Examples:
  awchub check
  awchub check --kind levels
  awchub check --strict   # exit non-zero when issues are found`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo := newRepository(nil)

		var spinner *ui.Spinner
		if !isJSONOutput() {
			spinner = ui.NewSpinner("Checking " + getConfig().ContentDir)
			spinner.Start()
		}
		report, err := checkContent(repo, checkKinds.Kinds())
		if spinner != nil {
			spinner.Stop()
		}
		if err != nil {
			return handleError(ErrContentLoadFailed, err, "")
		}

		if isJSONOutput() {
			outputSuccess(report, &Meta{Count: len(report.Issues)})
			return nil
		}

		for _, kind := range checkKinds.Kinds() {
			fmt.Printf("%s %s\n", ui.Bold.Render(kind.String()), ui.Hint(ui.Count(report.Records[kind], "record", "records")))
		}
		if len(report.Issues) == 0 {
			fmt.Println(ui.Success("No issues found"))
			return nil
		}

		fmt.Println()
		for _, issue := range report.Issues {
			fmt.Println(ui.Warning(fmt.Sprintf("%s %s", ui.FilePath(issue.Path), issue.Message)))
			if issue.Suggestion != "" {
				fmt.Println("  " + ui.Hint(issue.Suggestion))
			}
		}
		fmt.Println()
		fmt.Println(ui.Header("Summary") + " " + ui.Count(len(report.Issues), "issue", "issues"))

		if checkStrict {
			return fmt.Errorf("check found %d issue(s)", len(report.Issues))
		}
		return nil
	},
}

// checkContent loads kinds from repo and collects issues. Only a directory
// that cannot be listed is an error.
func checkContent(repo *content.Repository, kinds []content.Kind) (checkReport, error) {
	report := checkReport{Records: make(map[content.Kind]int), Issues: []checkIssue{}}
	loaded := make(map[content.Kind][]content.Entity)

	for _, kind := range kinds {
		res, err := repo.Load(kind)
		if err != nil {
			return report, err
		}
		loaded[kind] = res.Items
		report.Records[kind] = res.Len()

		for _, w := range res.Warnings {
			report.Issues = append(report.Issues, checkIssue{
				Kind:    kind,
				ID:      paths.Stem(w.Path),
				Path:    w.Path,
				Code:    w.Code,
				Message: w.Message,
			})
		}

		for _, item := range res.Items {
			path := filepath.Join(repo.Root(), kind.Dir(), item.EntityID()+kind.Ext())
			if !slugs.IsSlug(item.EntityID()) {
				suggestion := ""
				if s := slugs.Suggest(item.EntityID()); s != "" {
					suggestion = "rename to " + s + kind.Ext()
				}
				report.Issues = append(report.Issues, checkIssue{
					Kind:       kind,
					ID:         item.EntityID(),
					Path:       path,
					Code:       IssueNonSlugID,
					Message:    fmt.Sprintf("ID %q is not a URL slug", item.EntityID()),
					Suggestion: suggestion,
				})
			}
			for _, msg := range dateProblems(item) {
				report.Issues = append(report.Issues, checkIssue{
					Kind:       kind,
					ID:         item.EntityID(),
					Path:       path,
					Code:       IssueUnsortableDate,
					Message:    msg,
					Suggestion: "use YYYY-MM-DD dates and four-digit years",
				})
			}
			if missingTitle(item) {
				report.Issues = append(report.Issues, checkIssue{
					Kind:    kind,
					ID:      item.EntityID(),
					Path:    path,
					Code:    IssueMissingTitle,
					Message: "record has no title; the ID is shown instead",
				})
			}
		}
	}

	levels, ok := loaded[content.KindLevel]
	if !ok {
		return report, nil
	}
	tournaments, ok := loaded[content.KindTournament]
	if !ok {
		res, err := repo.Load(content.KindTournament)
		if err != nil {
			return report, err
		}
		tournaments = res.Items
	}
	for _, level := range content.Collect[content.Level](levels) {
		ref := level.TournamentID.String()
		if ref == "" {
			continue
		}
		if _, found := content.Find(tournaments, ref); !found {
			report.Issues = append(report.Issues, checkIssue{
				Kind:    content.KindLevel,
				ID:      level.ID,
				Path:    filepath.Join(repo.Root(), content.KindLevel.Dir(), level.ID+content.KindLevel.Ext()),
				Code:    IssueUnknownTournament,
				Message: fmt.Sprintf("tournament_id %q matches no tournament", ref),
			})
		}
	}
	return report, nil
}

// dateProblems lists date fields that would not order correctly as text.
func dateProblems(e content.Entity) []string {
	var problems []string
	switch v := e.(type) {
	case content.Tournament:
		if !dates.Sortable(v.Date.String()) {
			problems = append(problems, fmt.Sprintf("date %q is not YYYY-MM-DD", v.Date.String()))
		}
		if !v.Year.IsZero() && !dates.IsValidYear(strings.TrimSpace(v.Year.String())) {
			problems = append(problems, fmt.Sprintf("year %q is not a four-digit year", v.Year.String()))
		}
	case content.NewsItem:
		if !dates.Sortable(v.Date.String()) {
			problems = append(problems, fmt.Sprintf("date %q is not YYYY-MM-DD", v.Date.String()))
		}
	}
	return problems
}

func missingTitle(e content.Entity) bool {
	switch v := e.(type) {
	case content.Tournament:
		return v.Title.IsZero()
	case content.Player:
		return v.Nickname.IsZero()
	case content.Level:
		return v.Title.IsZero()
	case content.NewsItem:
		return v.Title.IsZero()
	}
	return false
}

func init() {
	checkCmd.Flags().Var(&checkKinds, "kind", "Only check these kinds (repeatable, comma-separated)")
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "Exit non-zero when issues are found")
	rootCmd.AddCommand(checkCmd)
}
