package worktree

import (
	"context"
	"strings"
	"time"

	"github.com/sidequest/sidequest/internal/detect"
	"github.com/sidequest/sidequest/internal/gitproc"
	"github.com/sidequest/sidequest/internal/parallel"
	"github.com/sidequest/sidequest/internal/status"
)

// Options configures one Enumerate call. Zero values defer to C8's own
// env/default resolution.
type Options struct {
	Concurrency    int
	PerItemTimeout int // milliseconds; <=0 defers to parallel's resolution
}

// Enumerate runs `git worktree list --porcelain` at gitRoot, resolves the
// main branch and shallow status once, then enriches every entry in
// parallel via C7/C8: classifying main vs feature worktrees, checking
// dirtiness, and running merge-status detection. Output order always
// matches the porcelain listing.
func Enumerate(ctx context.Context, gitRoot string, opts Options) ([]Info, error) {
	raw, err := ListRaw(ctx, gitRoot)
	if err != nil {
		return nil, err
	}

	mainRef := detect.ResolveMainBranchRef(ctx, gitRoot)
	mainBranch := strings.TrimPrefix(mainRef, "refs/heads/")
	shallow := detect.IsShallow(ctx, gitRoot)

	popts := parallel.Options{Concurrency: opts.Concurrency}
	if opts.PerItemTimeout > 0 {
		popts.PerItemTimeout = time.Duration(opts.PerItemTimeout) * time.Millisecond
	}

	results, err := parallel.Run(ctx, raw, popts,
		func(itemCtx context.Context, entry RawEntry) (Info, error) {
			return enrichEntry(itemCtx, gitRoot, entry, mainBranch, shallow)
		},
		func(entry RawEntry, procErr error) Info {
			return Info{
				Path:           entry.Path,
				Branch:         strings.TrimPrefix(entry.Branch, "refs/heads/"),
				CommitHash:     entry.HEAD,
				IsMain:         false,
				Dirty:          false,
				Merged:         false,
				DetectionError: procErr.Error(),
				Issues: []detect.Issue{{
					Code:     detect.CodeEnrichmentFailed,
					Severity: detect.SeverityError,
					Source:   detect.SourceEnrichment,
					Message:  procErr.Error(),
				}},
				Status: "unknown",
			}
		})
	if err != nil {
		return nil, err
	}
	return results, nil
}

func isMainEntry(entry RawEntry, mainBranch string) bool {
	if entry.Bare {
		return true
	}
	branch := strings.TrimPrefix(entry.Branch, "refs/heads/")
	if mainBranch != "" && branch == mainBranch {
		return true
	}
	return branch == "main" || branch == "master"
}

func enrichEntry(ctx context.Context, gitRoot string, entry RawEntry, mainBranch string, shallow *bool) (Info, error) {
	branch := strings.TrimPrefix(entry.Branch, "refs/heads/")
	info := Info{
		Path:       entry.Path,
		Branch:     branch,
		CommitHash: entry.HEAD,
		Detached:   entry.Detached,
	}

	dirty, err := isDirty(ctx, entry.Path)
	if err != nil {
		return Info{}, err
	}
	info.Dirty = dirty

	if isMainEntry(entry, mainBranch) {
		info.IsMain = true
		info.Merged = true
		info.Status = status.Format(status.Input{Merged: true, Dirty: dirty})
		return info, nil
	}

	if entry.Detached {
		info.Merged = false
		info.Status = status.Format(status.Input{Dirty: dirty})
		return info, nil
	}

	result := detect.Detect(ctx, gitRoot, branch, "", detect.Options{IsShallow: shallow})
	info.Merged = result.Merged
	info.MergeMethod = string(result.MergeMethod)
	info.CommitsAhead = result.CommitsAhead
	info.CommitsBehind = result.CommitsBehind
	info.DetectionError = result.DetectionError
	info.Issues = result.Issues
	info.Status = status.FromDetectResult(result, dirty)
	return info, nil
}

func isDirty(ctx context.Context, path string) (bool, error) {
	res, err := gitproc.Git(ctx, path, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(res.Stdout) != "", nil
}
