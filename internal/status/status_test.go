package status

import (
	"testing"

	"github.com/sidequest/sidequest/internal/detect"
)

func TestFormat_PrecedenceTable(t *testing.T) {
	cases := []struct {
		name string
		in   Input
		want string
	}{
		{"pristine", Input{Merged: true}, "pristine"},
		{"merged clean dirty", Input{Merged: true, Dirty: true}, "dirty"},
		{"merged squash dirty", Input{Merged: true, Dirty: true, MergeMethod: detect.MergeMethodSquash, Ahead: 1}, "merged (squash), dirty"},
		{"merged ancestor dirty", Input{Merged: true, Dirty: true, MergeMethod: detect.MergeMethodAncestor, Ahead: 1}, "merged, dirty"},
		{"merged squash", Input{Merged: true, MergeMethod: detect.MergeMethodSquash, Ahead: 1}, "merged (squash)"},
		{"merged ancestor", Input{Merged: true, MergeMethod: detect.MergeMethodAncestor, Ahead: 1}, "merged"},
		{"ahead behind dirty", Input{Ahead: 2, Behind: 3, Dirty: true}, "2 ahead, 3 behind, dirty"},
		{"ahead behind", Input{Ahead: 2, Behind: 3}, "2 ahead, 3 behind"},
		{"ahead dirty", Input{Ahead: 2, Dirty: true}, "2 ahead, dirty"},
		{"ahead", Input{Ahead: 2}, "2 ahead"},
		{"behind dirty", Input{Behind: 3, Dirty: true}, "3 behind, dirty"},
		{"behind", Input{Behind: 3}, "3 behind"},
		{"dirty only", Input{Dirty: true}, "dirty"},
		{"unknown", Input{}, "unknown"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Format(c.in); got != c.want {
				t.Errorf("Format(%+v) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestFromDetectResult(t *testing.T) {
	r := detect.Result{Merged: true, MergeMethod: detect.MergeMethodAncestor}
	if got := FromDetectResult(r, false); got != "pristine" {
		t.Errorf("FromDetectResult = %q, want pristine", got)
	}
	if got := FromDetectResult(r, true); got != "dirty" {
		t.Errorf("FromDetectResult dirty = %q, want dirty", got)
	}
}
