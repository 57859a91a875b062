package worktree

import "github.com/sidequest/sidequest/internal/detect"

// Info is the enriched per-worktree record produced by Enumerate: a raw
// porcelain entry plus dirty/merge-status classification.
type Info struct {
	Path           string `json:"path"`
	Branch         string `json:"branch"` // stripped of refs/heads/; empty when detached/bare
	CommitHash     string `json:"commitHash"`
	IsMain         bool   `json:"isMain"`
	Detached       bool   `json:"detached"`
	Dirty          bool   `json:"dirty"`
	Merged         bool   `json:"merged"`
	MergeMethod    string `json:"mergeMethod,omitempty"`
	CommitsAhead   int    `json:"commitsAhead,omitempty"`
	CommitsBehind  int    `json:"commitsBehind,omitempty"`
	DetectionError string `json:"detectionError,omitempty"`
	Issues         []detect.Issue `json:"issues,omitempty"`
	Status         string `json:"status"`
}

// DetectionIssues implements health.Entry.
func (i Info) DetectionIssues() []detect.Issue { return i.Issues }
