package detect

import "time"

// MergeMethod tags how a branch was determined to be merged.
type MergeMethod string

const (
	// MergeMethodNone means "not merged" — the zero value, so a
	// default-constructed Result never accidentally claims a method.
	MergeMethodNone    MergeMethod = ""
	MergeMethodAncestor MergeMethod = "ancestor"
	MergeMethodSquash   MergeMethod = "squash"
)

// Result is the value record produced by Detect. The invariant
// Merged == (MergeMethod != MergeMethodNone) holds on every return path;
// see detect_test.go for the property check.
type Result struct {
	Merged         bool        `json:"merged"`
	MergeMethod    MergeMethod `json:"mergeMethod,omitempty"`
	CommitsAhead   int         `json:"commitsAhead"`
	CommitsBehind  int         `json:"commitsBehind"`
	DetectionError string      `json:"detectionError,omitempty"`
	Issues         []Issue     `json:"issues"`
}

// addIssue appends an issue and keeps DetectionError in sync with the
// first error-severity issue for back-compat consumers that only look at
// the top-line string.
func (r *Result) addIssue(i Issue) {
	r.Issues = append(r.Issues, i)
	if r.DetectionError == "" && i.Severity == SeverityError {
		r.DetectionError = i.Message
	}
}

// Options configures one Detect call.
type Options struct {
	// Timeout bounds Layer 3's cherry subprocess only. Zero uses the
	// package default (5s).
	Timeout time.Duration
	// MaxCommitsForSquashDetection gates Layer 3 by ahead-count. Zero
	// uses the package default (50).
	MaxCommitsForSquashDetection int
	// IsShallow is a tri-state: true, false, or unknown (nil).
	IsShallow *bool
	// DisableSquashDetection bypasses Layer 3 and the shallow guard,
	// bound to SIDE_QUEST_NO_SQUASH_DETECTION=1 by callers that want the
	// env override; library callers may set it directly.
	DisableSquashDetection bool
}
