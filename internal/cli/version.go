package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/awc-hub/awchub/internal/buildinfo"
	"github.com/awc-hub/awchub/internal/ui"
)

type versionInfo struct {
	Version  string `json:"version"`
	Commit   string `json:"commit,omitempty"`
	Built    string `json:"built,omitempty"`
	Dirty    bool   `json:"dirty,omitempty"`
	Go       string `json:"go"`
	Platform string `json:"platform"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show awchub version and build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		bi, _ := debug.ReadBuildInfo()
		info := resolveVersion(bi)

		if isJSONOutput() {
			outputSuccess(info, nil)
			return nil
		}

		fmt.Println(ui.Header("awchub " + info.Version))
		tbl := ui.NewTable(2)
		if info.Commit != "" {
			commit := info.Commit
			if info.Dirty {
				commit += " (modified)"
			}
			tbl.AddRow(ui.Muted.Render("commit"), commit)
		}
		if info.Built != "" {
			tbl.AddRow(ui.Muted.Render("built"), info.Built)
		}
		tbl.AddRow(ui.Muted.Render("go"), info.Go+" "+info.Platform)
		fmt.Print(tbl.String())
		return nil
	},
}

// resolveVersion reads the module version and VCS stamp from bi, which may be
// nil. Values set with -ldflags win over both.
func resolveVersion(bi *debug.BuildInfo) versionInfo {
	info := versionInfo{
		Version:  "devel",
		Go:       runtime.Version(),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}

	if bi != nil {
		if v := bi.Main.Version; v != "" && v != "(devel)" {
			info.Version = v
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				info.Commit = s.Value
			case "vcs.time":
				info.Built = s.Value
			case "vcs.modified":
				info.Dirty = s.Value == "true"
			}
		}
	}

	if buildinfo.Version != "" {
		info.Version = buildinfo.Version
	}
	if buildinfo.Commit != "" {
		info.Commit = buildinfo.Commit
	}
	if buildinfo.Date != "" {
		info.Built = buildinfo.Date
	}
	return info
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
