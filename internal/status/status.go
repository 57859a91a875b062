// Package status formats a worktree or orphan branch's merge/dirty state
// into the single human-readable string the list and orphans commands
// display. Formatting is a pure function of its inputs — no git calls.
package status

import (
	"fmt"

	"github.com/sidequest/sidequest/internal/detect"
)

// Input is everything Format needs to pick a status string.
type Input struct {
	Merged      bool
	MergeMethod detect.MergeMethod
	Ahead       int
	Behind      int
	Dirty       bool
}

// Format applies the fixed precedence table: merged states first (split by
// method and dirtiness), then ahead/behind combinations, then dirty alone,
// falling back to "unknown" only when none of the above apply.
func Format(in Input) string {
	switch {
	case in.Merged && in.Ahead == 0 && in.Behind == 0 && !in.Dirty:
		return "pristine"
	case in.Merged && in.Ahead == 0 && in.Behind == 0 && in.Dirty:
		return "dirty"
	case in.Merged && in.Dirty && in.MergeMethod == detect.MergeMethodSquash:
		return "merged (squash), dirty"
	case in.Merged && in.Dirty && in.MergeMethod == detect.MergeMethodAncestor:
		return "merged, dirty"
	case in.Merged && in.MergeMethod == detect.MergeMethodSquash:
		return "merged (squash)"
	case in.Merged && in.MergeMethod == detect.MergeMethodAncestor:
		return "merged"
	case !in.Merged && in.Ahead > 0 && in.Behind > 0 && in.Dirty:
		return fmt.Sprintf("%d ahead, %d behind, dirty", in.Ahead, in.Behind)
	case !in.Merged && in.Ahead > 0 && in.Behind > 0:
		return fmt.Sprintf("%d ahead, %d behind", in.Ahead, in.Behind)
	case !in.Merged && in.Ahead > 0 && in.Dirty:
		return fmt.Sprintf("%d ahead, dirty", in.Ahead)
	case !in.Merged && in.Ahead > 0:
		return fmt.Sprintf("%d ahead", in.Ahead)
	case !in.Merged && in.Behind > 0 && in.Dirty:
		return fmt.Sprintf("%d behind, dirty", in.Behind)
	case !in.Merged && in.Behind > 0:
		return fmt.Sprintf("%d behind", in.Behind)
	case !in.Merged && in.Dirty:
		return "dirty"
	default:
		return "unknown"
	}
}

// FromDetectResult is a convenience constructor for the common case of
// formatting straight off a detect.Result plus a dirty flag.
func FromDetectResult(r detect.Result, dirty bool) string {
	return Format(Input{
		Merged:      r.Merged,
		MergeMethod: r.MergeMethod,
		Ahead:       r.CommitsAhead,
		Behind:      r.CommitsBehind,
		Dirty:       dirty,
	})
}
