// Package orphan classifies local branches that are neither checked out in
// any worktree nor in the protected set, using the merge-status detector
// (detect.Detect) to decide whether each is safe to delete.
package orphan

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/sidequest/sidequest/internal/detect"
	"github.com/sidequest/sidequest/internal/gitproc"
	"github.com/sidequest/sidequest/internal/parallel"
)

// DefaultProtected is the branch set never classified as orphaned, even
// when it has no worktree.
var DefaultProtected = []string{"main", "master", "develop"}

// Status is the disposition a Branch is mapped to.
type Status string

const (
	StatusPristine Status = "pristine"
	StatusMerged   Status = "merged"
	StatusAhead    Status = "ahead"
	StatusUnknown  Status = "unknown"
)

// Branch is one classified orphan.
type Branch struct {
	Name           string        `json:"name"`
	Status         Status        `json:"status"`
	CommitsAhead   int           `json:"commitsAhead"`
	DetectionError string        `json:"detectionError,omitempty"`
	Issues         []detect.Issue `json:"issues,omitempty"`
}

// DetectionIssues implements health.Entry.
func (b Branch) DetectionIssues() []detect.Issue { return b.Issues }

// Options configures one List call.
type Options struct {
	// Protected overrides DefaultProtected when non-nil.
	Protected      []string
	Concurrency    int
	PerItemTimeout int // milliseconds; <=0 defers to C8's own resolution
}

// List returns every local branch with no worktree and not in the
// protected set, classified via the merge-status cascade.
func List(ctx context.Context, gitRoot string, opts Options) ([]Branch, error) {
	allBranches, err := localBranches(ctx, gitRoot)
	if err != nil {
		return nil, err
	}

	checkedOut, err := checkedOutBranches(ctx, gitRoot)
	if err != nil {
		return nil, err
	}

	protected := opts.Protected
	if protected == nil {
		protected = DefaultProtected
	}
	protectedSet := make(map[string]struct{}, len(protected))
	for _, p := range protected {
		protectedSet[p] = struct{}{}
	}

	var candidates []string
	for _, b := range allBranches {
		if _, isCheckedOut := checkedOut[b]; isCheckedOut {
			continue
		}
		if _, isProtected := protectedSet[b]; isProtected {
			continue
		}
		candidates = append(candidates, b)
	}

	shallow := detect.IsShallow(ctx, gitRoot)

	popts := parallel.Options{Concurrency: opts.Concurrency}
	if opts.PerItemTimeout > 0 {
		popts.PerItemTimeout = time.Duration(opts.PerItemTimeout) * time.Millisecond
	}

	return parallel.Run(ctx, candidates, popts,
		func(itemCtx context.Context, name string) (Branch, error) {
			result := detect.Detect(itemCtx, gitRoot, name, "", detect.Options{IsShallow: shallow})
			return classify(name, result), nil
		},
		func(name string, procErr error) Branch {
			return Branch{
				Name:           name,
				Status:         StatusUnknown,
				CommitsAhead:   -1,
				DetectionError: procErr.Error(),
				Issues: []detect.Issue{{
					Code:     detect.CodeEnrichmentFailed,
					Severity: detect.SeverityError,
					Source:   detect.SourceEnrichment,
					Message:  procErr.Error(),
				}},
			}
		})
}

// classify maps a detect.Result to a Status. detectionError is
// checked first so a failed detection is never mistaken for pristine.
func classify(name string, r detect.Result) Branch {
	b := Branch{Name: name, DetectionError: r.DetectionError, Issues: r.Issues}
	switch {
	case r.DetectionError != "":
		b.Status = StatusUnknown
		b.CommitsAhead = r.CommitsAhead
	case r.Merged:
		b.Status = StatusMerged
		b.CommitsAhead = 0
	case r.CommitsAhead > 0:
		b.Status = StatusAhead
		b.CommitsAhead = r.CommitsAhead
	case r.CommitsAhead == 0:
		b.Status = StatusPristine
		b.CommitsAhead = 0
	default:
		b.Status = StatusUnknown
		b.CommitsAhead = -1
	}
	return b
}

func localBranches(ctx context.Context, gitRoot string) ([]string, error) {
	res, err := gitproc.Git(ctx, gitRoot, "branch", "--format=%(refname:short)")
	if err != nil {
		return nil, err
	}
	if res.ExitCode != 0 {
		return nil, &gitError{op: "branch --format", stderr: res.Stderr, exitCode: res.ExitCode}
	}
	var out []string
	for _, line := range strings.Split(res.Stdout, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out, nil
}

// checkedOutBranches returns the set of branches held by any worktree,
// via the same porcelain listing C9 parses.
func checkedOutBranches(ctx context.Context, gitRoot string) (map[string]struct{}, error) {
	res, err := gitproc.Git(ctx, gitRoot, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, err
	}
	if res.ExitCode != 0 {
		return nil, &gitError{op: "worktree list --porcelain", stderr: res.Stderr, exitCode: res.ExitCode}
	}
	out := make(map[string]struct{})
	for _, line := range strings.Split(res.Stdout, "\n") {
		if strings.HasPrefix(line, "branch refs/heads/") {
			out[strings.TrimPrefix(line, "branch refs/heads/")] = struct{}{}
		}
	}
	return out, nil
}

type gitError struct {
	op       string
	stderr   string
	exitCode int
}

func (e *gitError) Error() string {
	return e.op + " exited " + strconv.Itoa(e.exitCode) + ": " + strings.TrimSpace(e.stderr)
}
