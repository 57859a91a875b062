package detect

import (
	"context"
	"strings"

	"github.com/sidequest/sidequest/internal/gitproc"
)

// normalizeBranchRef expands a plain branch name to its fully qualified
// refs/heads/ form. This prevents a branch/tag name collision from
// resolving to a tag when git disambiguates short names.
func normalizeBranchRef(branch string) string {
	if strings.HasPrefix(branch, "refs/") {
		return branch
	}
	return "refs/heads/" + branch
}

// resolveTargetRef normalizes an explicit target, or asks the main-branch
// resolver when target is empty.
func resolveTargetRef(ctx context.Context, gitRoot, target string) string {
	if target == "" {
		return ResolveMainBranchRef(ctx, gitRoot)
	}
	if target == "HEAD" || strings.HasPrefix(target, "refs/") {
		return target
	}
	return "refs/heads/" + target
}

// ResolveMainBranchRef tries refs/heads/main, then refs/heads/master, then
// falls back to whatever symbolic HEAD points to — tolerating detached
// states and non-conventional trunk names.
func ResolveMainBranchRef(ctx context.Context, gitRoot string) string {
	for _, candidate := range []string{"refs/heads/main", "refs/heads/master"} {
		res, err := gitproc.Git(ctx, gitRoot, "rev-parse", "--verify", "--quiet", candidate)
		if err == nil && res.ExitCode == 0 {
			return candidate
		}
	}
	res, err := gitproc.Git(ctx, gitRoot, "symbolic-ref", "-q", "HEAD")
	if err == nil && res.ExitCode == 0 {
		if ref := trimLine(res.Stdout); ref != "" {
			return ref
		}
	}
	return "HEAD"
}

func splitNonEmptyLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, "\r")
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
