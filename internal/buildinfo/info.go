// Package buildinfo holds release metadata stamped at link time, e.g.
//
//	go build -ldflags "-X github.com/umsatz-dev/umsatz/internal/buildinfo.Version=v1.2.0"
package buildinfo

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
