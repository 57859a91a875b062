// Package detect implements the merge-status detection cascade: a
// three-layer classification of a branch against a target ref as
// ancestor-merged, squash-merged, or unmerged, using only local git state.
// It never mutates the host object store and never raises an error for an
// inconclusive result — every failure mode surfaces as a structured Issue
// on the returned Result.
package detect

import (
	"context"
	"regexp"
	"time"

	"github.com/sidequest/sidequest/internal/envcfg"
	"github.com/sidequest/sidequest/internal/gitproc"
)

var cherryLineRe = regexp.MustCompile(`^[+-] [0-9a-f]{40}$`)

// Detect runs the merge-status cascade for branch against target (or, if
// target is empty, the resolved main branch) in the repository at
// gitRoot. It never returns an error: every failure mode is reported as an
// Issue on the returned Result.
func Detect(ctx context.Context, gitRoot, branch, target string, opts Options) Result {
	if envcfg.NoDetection() {
		r := Result{Merged: false, CommitsAhead: 0, CommitsBehind: 0}
		r.addIssue(newIssue(CodeDetectionDisabled, SeverityWarning, SourceKillSwitch,
			"detection disabled via SIDE_QUEST_NO_DETECTION=1", false))
		return r
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		ms, err := envcfg.DetectionTimeoutMS()
		if err != nil {
			ms = envcfg.DefaultDetectionTimeMS
		}
		timeout = time.Duration(ms) * time.Millisecond
	}
	maxCommits := opts.MaxCommitsForSquashDetection
	if maxCommits <= 0 {
		maxCommits = envcfg.DefaultMaxSquashCommits
	}
	disableSquash := opts.DisableSquashDetection || envcfg.NoSquashDetection()

	branchRef := normalizeBranchRef(branch)
	targetRef := resolveTargetRef(ctx, gitRoot, target)

	r := Result{}

	// Shallow guard, consulted before any layer. A caller enumerating many
	// branches probes once and shares the tri-state result via
	// opts.IsShallow; a caller that leaves it nil gets it probed here. Only
	// a probe that itself comes back unknown produces SHALLOW_CHECK_FAILED.
	isShallow := opts.IsShallow
	if isShallow == nil && !disableSquash {
		isShallow = IsShallow(ctx, gitRoot)
	}
	if !disableSquash && isShallow != nil && *isShallow {
		r.addIssue(newIssue(CodeShallowClone, SeverityError, SourceShallowGuard,
			"repository is a shallow clone; squash detection skipped", false))
		return r
	}

	// Layer 1: ancestor check.
	anc, err := gitproc.Git(ctx, gitRoot, "merge-base", "--is-ancestor", branchRef, targetRef)
	if err != nil {
		r.addIssue(newIssue(CodeDetectionAborted, SeverityWarning, SourceCancellation,
			"layer1 aborted: "+err.Error(), false))
		attachShallowCheckFailed(&r, isShallow)
		return r
	}
	switch {
	case anc.ExitCode == 0:
		ahead, behind := Counts(ctx, gitRoot, branchRef, targetRef)
		r.Merged = true
		r.MergeMethod = MergeMethodAncestor
		r.CommitsAhead = ahead
		r.CommitsBehind = behind
		attachShallowCheckFailed(&r, isShallow)
		return r
	case gitproc.Fatal(anc.ExitCode):
		r.addIssue(newIssue(CodeMergeBaseFailed, SeverityError, SourceLayer1,
			firstNonEmpty(anc.Stderr, "merge-base --is-ancestor failed"), false))
		return r
	}
	// exit code 1: not an ancestor, fall through to Layer 2/3.

	// Layer 2: counts, attached regardless of downstream outcome.
	ahead, behind := Counts(ctx, gitRoot, branchRef, targetRef)
	r.CommitsAhead = ahead
	r.CommitsBehind = behind

	// Layer 3 gate: squash detection enabled, within commit threshold,
	// and the shallow guard let us get this far.
	if disableSquash || ahead > maxCommits {
		attachShallowCheckFailed(&r, isShallow)
		return r
	}

	squashed, issue := detectSquash(ctx, gitRoot, branchRef, targetRef, timeout)
	if issue != nil {
		r.addIssue(*issue)
	}
	if squashed {
		r.Merged = true
		r.MergeMethod = MergeMethodSquash
	}
	attachShallowCheckFailed(&r, isShallow)
	return r
}

// attachShallowCheckFailed adds the SHALLOW_CHECK_FAILED warning when the
// shallow probe came back unknown. Counts stay reliable: ahead/behind
// don't require full history in the local branch.
func attachShallowCheckFailed(r *Result, isShallow *bool) {
	if isShallow == nil {
		r.addIssue(newIssue(CodeShallowCheckFailed, SeverityWarning, SourceShallowGuard,
			"could not determine shallow-clone status; proceeding", true))
	}
}

// detectSquash runs the Layer-3 synthetic-squash cherry probe and reports
// whether the branch is squash-merged into target.
func detectSquash(ctx context.Context, gitRoot, branchRef, targetRef string, timeout time.Duration) (bool, *Issue) {
	mb, err := gitproc.Git(ctx, gitRoot, "merge-base", branchRef, targetRef)
	if err != nil || mb.ExitCode != 0 {
		i := newIssue(CodeMergeBaseLookupFail, SeverityError, SourceLayer3,
			firstNonEmpty(mb.Stderr, "merge-base lookup failed"), true)
		return false, &i
	}
	mergeBase := trimLine(mb.Stdout)

	store, err := newIsolatedObjectStore(ctx, gitRoot)
	if err != nil {
		i := newIssue(CodeGitPathFailed, SeverityError, SourceLayer3, err.Error(), true)
		return false, &i
	}
	defer store.release()

	ct, err := gitproc.GitEnv(ctx, gitRoot, store.vars, 0,
		"commit-tree", branchRef+"^{tree}", "-p", mergeBase, "-m", "squash detect")
	if err != nil || ct.ExitCode != 0 {
		i := newIssue(CodeCommitTreeFailed, SeverityError, SourceLayer3,
			firstNonEmpty(ct.Stderr, "commit-tree failed"), true)
		return false, &i
	}
	synthetic := trimLine(ct.Stdout)

	cherry, err := gitproc.GitEnv(ctx, gitRoot, store.vars, timeout, "cherry", targetRef, synthetic)
	if err != nil {
		i := newIssue(CodeCherryFailed, SeverityWarning, SourceLayer3Cherry, err.Error(), true)
		return false, &i
	}
	if cherry.TimedOut {
		i := newIssue(CodeCherryTimeout, SeverityWarning, SourceLayer3Cherry,
			"cherry probe exceeded timeout", true)
		return false, &i
	}
	if cherry.ExitCode != 0 {
		i := newIssue(CodeCherryFailed, SeverityWarning, SourceLayer3Cherry,
			firstNonEmpty(cherry.Stderr, "git cherry exited non-zero"), true)
		return false, &i
	}

	lines := splitNonEmptyLines(cherry.Stdout)
	if len(lines) == 0 {
		i := newIssue(CodeCherryEmpty, SeverityWarning, SourceLayer3Cherry,
			"cherry produced no output", true)
		return false, &i
	}
	for _, line := range lines {
		if !cherryLineRe.MatchString(line) {
			i := newIssue(CodeCherryInvalid, SeverityWarning, SourceLayer3Cherry,
				"cherry output failed format validation: "+line, true)
			return false, &i
		}
		if line[0] != '-' {
			// '+' is a well-formed, negative probe result: the synthetic
			// commit isn't equivalent to anything reachable from target,
			// i.e. not squash-merged. No issue, just a negative answer.
			return false, nil
		}
	}

	return true, nil
}
