package main

import "fmt"

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// versionString returns the version line shown by `sidequest --version`.
func versionString() string {
	return fmt.Sprintf("%s (%s, %s)", version, commit[:min(7, len(commit))], date)
}
