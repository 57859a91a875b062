// Package upstream probes whether a branch's tracked upstream has been
// deleted on the remote, via a single `for-each-ref` call rather than a
// network fetch.
package upstream

import (
	"context"
	"strings"

	"github.com/sidequest/sidequest/internal/gitproc"
)

// IsGone reports whether branch's upstream was pruned from the remote.
// A branch with no configured upstream, or where the probe itself fails,
// reports false — an unknown upstream is never treated as gone.
func IsGone(ctx context.Context, gitRoot, branch string) bool {
	res, err := gitproc.Git(ctx, gitRoot, "for-each-ref", "--format=%(upstream:track)", "refs/heads/"+branch)
	if err != nil || res.ExitCode != 0 {
		return false
	}
	return strings.Contains(res.Stdout, "[gone]")
}
