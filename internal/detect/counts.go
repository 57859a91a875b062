package detect

import (
	"context"
	"strconv"
	"strings"

	"github.com/sidequest/sidequest/internal/gitproc"
)

// Counts runs `git rev-list --count --left-right <branch>...<base>` and
// parses the tab-separated ahead/behind pair. Any parse or exit failure —
// including cancellation — fails safe to {0, 0} without an error: counts
// are informational, and callers record whether the zeros are truthful via
// an issue's CountsReliable flag rather than via a returned error.
func Counts(ctx context.Context, gitRoot, branchRef, baseRef string) (ahead, behind int) {
	res, err := gitproc.Git(ctx, gitRoot, "rev-list", "--count", "--left-right", branchRef+"..."+baseRef)
	if err != nil || res.ExitCode != 0 {
		return 0, 0
	}

	fields := strings.Fields(strings.TrimSpace(res.Stdout))
	if len(fields) != 2 {
		return 0, 0
	}
	a, errA := strconv.Atoi(fields[0])
	b, errB := strconv.Atoi(fields[1])
	if errA != nil || errB != nil || a < 0 || b < 0 {
		return 0, 0
	}
	return a, b
}
