// Package buildinfo holds release metadata set with -ldflags, for example
//
//	go build -ldflags "-X github.com/awc-hub/awchub/internal/buildinfo.Version=v1.0.0"
//
// `awchub version` prefers the module build info and falls back to these.
package buildinfo

var (
	Version = ""
	Commit  = ""
	Date    = ""
)
