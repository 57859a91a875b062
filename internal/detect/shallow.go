package detect

import (
	"context"

	"github.com/sidequest/sidequest/internal/gitproc"
)

// IsShallow checks whether gitRoot is a shallow clone. It returns a
// tri-state: a non-nil *bool for a definitive yes/no, or nil when the
// probe itself failed (e.g. git too old, not a repo) — squash detection
// cannot trust a clone it couldn't classify, but callers still proceed and
// attach a SHALLOW_CHECK_FAILED warning rather than aborting outright.
func IsShallow(ctx context.Context, gitRoot string) *bool {
	res, err := gitproc.Git(ctx, gitRoot, "rev-parse", "--is-shallow-repository")
	if err != nil || res.ExitCode != 0 {
		return nil
	}
	switch trimmed := trimLine(res.Stdout); trimmed {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		return nil
	}
}
