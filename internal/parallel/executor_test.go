package parallel

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func upper(_ context.Context, s string) (string, error) {
	return strings.ToUpper(s), nil
}

func fallback(item string, err error) string {
	return "ERR:" + item
}

func TestRun_PreservesOrder(t *testing.T) {
	t.Parallel()
	items := []string{"a", "b", "c", "d"}
	got, err := Run(context.Background(), items, Options{Concurrency: 2}, upper, fallback)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []string{"A", "B", "C", "D"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestRun_PerItemTimeoutTriggersOnError(t *testing.T) {
	t.Parallel()
	sleepy := func(_ context.Context, s string) (string, error) {
		time.Sleep(50 * time.Millisecond)
		return s, nil
	}
	items := []string{"a", "b", "c"}
	got, err := Run(context.Background(), items, Options{Concurrency: 2, PerItemTimeout: time.Millisecond}, sleepy, fallback)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i, item := range items {
		if got[i] != "ERR:"+item {
			t.Errorf("item %d = %q, want onError fallback", i, got[i])
		}
	}
}

func TestRun_ZeroConcurrencyEnvRejected(t *testing.T) {
	t.Setenv("SIDE_QUEST_CONCURRENCY", "0")
	_, err := Run(context.Background(), []string{"a"}, Options{}, upper, fallback)
	if err == nil {
		t.Fatal("Run() = nil error, want startup failure for zero concurrency")
	}
}

func TestRun_NegativeConcurrencyEnvRejected(t *testing.T) {
	t.Setenv("SIDE_QUEST_CONCURRENCY", "-3")
	_, err := Run(context.Background(), []string{"a"}, Options{}, upper, fallback)
	if err == nil {
		t.Fatal("Run() = nil error, want startup failure for negative concurrency")
	}
}

func TestRun_ExplicitConcurrencyBypassesInvalidEnv(t *testing.T) {
	t.Setenv("SIDE_QUEST_CONCURRENCY", "0")
	got, err := Run(context.Background(), []string{"a"}, Options{Concurrency: 2}, upper, fallback)
	if err != nil {
		t.Fatalf("Run: %v, want explicit option to bypass invalid env", err)
	}
	if got[0] != "A" {
		t.Fatalf("got %v", got)
	}
}

func TestRun_ProcessorPanicRecovered(t *testing.T) {
	t.Parallel()
	panicky := func(_ context.Context, s string) (string, error) {
		if s == "boom" {
			panic("kaboom")
		}
		return strings.ToUpper(s), nil
	}
	items := []string{"a", "boom", "c"}
	got, err := Run(context.Background(), items, Options{Concurrency: 3}, panicky, fallback)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got[0] != "A" || got[2] != "C" {
		t.Fatalf("got %v, want neighbours unaffected by panic", got)
	}
	if got[1] != "ERR:boom" {
		t.Fatalf("got %v, want panic routed through onError", got)
	}
}

func TestRun_ProcessorErrorRoutesToOnError(t *testing.T) {
	t.Parallel()
	failing := func(_ context.Context, s string) (string, error) {
		if s == "bad" {
			return "", errors.New("boom")
		}
		return strings.ToUpper(s), nil
	}
	got, err := Run(context.Background(), []string{"good", "bad"}, Options{}, failing, fallback)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got[0] != "GOOD" || got[1] != "ERR:bad" {
		t.Fatalf("got %v", got)
	}
}

func TestRun_OuterCancellationReachesItems(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	waitsForCancel := func(ctx context.Context, s string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	}
	got, err := Run(ctx, []string{"a"}, Options{PerItemTimeout: time.Second}, waitsForCancel, fallback)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got[0] != "ERR:a" {
		t.Fatalf("got %v, want cancellation routed through onError", got)
	}
}

func TestRun_EmptyItems(t *testing.T) {
	t.Parallel()
	got, err := Run(context.Background(), []string{}, Options{}, upper, fallback)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %v, want empty", got)
	}
}

func TestRun_DefaultsFromEnv(t *testing.T) {
	t.Setenv("SIDE_QUEST_CONCURRENCY", "2")
	t.Setenv("SIDE_QUEST_ITEM_TIMEOUT_MS", "50")
	called := 0
	counting := func(_ context.Context, s string) (string, error) {
		called++
		return s, nil
	}
	_, err := Run(context.Background(), []string{"a", "b"}, Options{}, counting, fallback)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if called != 2 {
		t.Fatalf("called = %d, want 2", called)
	}
}

func TestRun_ManyItemsConcurrencyBound(t *testing.T) {
	t.Parallel()
	items := make([]int, 20)
	for i := range items {
		items[i] = i
	}
	identity := func(_ context.Context, n int) (int, error) { return n, nil }
	fb := func(n int, err error) int { return -1 }
	got, err := Run(context.Background(), items, Options{Concurrency: 3}, identity, fb)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("got[%d] = %d, want %d: %v", i, v, i, got)
		}
	}
}
