package health

import (
	"testing"

	"github.com/sidequest/sidequest/internal/detect"
)

type fakeEntry struct {
	issues []detect.Issue
}

func (f fakeEntry) DetectionIssues() []detect.Issue { return f.issues }

func TestAggregate_EmptyIsNotFailure(t *testing.T) {
	s := Aggregate([]fakeEntry{})
	if s.AllFailed {
		t.Error("AllFailed = true for empty list, want false")
	}
	if s.Total != 0 || s.DegradedCount != 0 || s.FatalCount != 0 {
		t.Errorf("Summary = %+v, want all zero", s)
	}
}

func TestAggregate_MixedSeverities(t *testing.T) {
	entries := []fakeEntry{
		{issues: nil},
		{issues: []detect.Issue{{Severity: detect.SeverityWarning}}},
		{issues: []detect.Issue{{Severity: detect.SeverityError}}},
	}
	s := Aggregate(entries)
	if s.Total != 3 {
		t.Errorf("Total = %d, want 3", s.Total)
	}
	if s.DegradedCount != 2 {
		t.Errorf("DegradedCount = %d, want 2", s.DegradedCount)
	}
	if s.FatalCount != 1 {
		t.Errorf("FatalCount = %d, want 1", s.FatalCount)
	}
	if s.AllFailed {
		t.Error("AllFailed = true, want false (not every entry is fatal)")
	}
}

func TestAggregate_AllFailed(t *testing.T) {
	entries := []fakeEntry{
		{issues: []detect.Issue{{Severity: detect.SeverityError}}},
		{issues: []detect.Issue{{Severity: detect.SeverityError}}},
	}
	s := Aggregate(entries)
	if !s.AllFailed {
		t.Error("AllFailed = false, want true when every entry has an error issue")
	}
}
