// Package janitor keeps a process-wide registry of scratch directories
// created by the merge detector's isolated object store, so a signal
// handler can sweep anything a crashing worker failed to release.
// Deterministic release at each detect() call's exit is the normal path;
// this registry is the backstop, not the primary cleanup mechanism.
package janitor

import (
	"os"
	"sync"
)

var (
	mu    sync.Mutex
	paths = map[string]struct{}{}
)

// Register records a scratch directory as in-use.
func Register(path string) {
	mu.Lock()
	defer mu.Unlock()
	paths[path] = struct{}{}
}

// Unregister removes a scratch directory from the registry once its owner
// has released it deterministically.
func Unregister(path string) {
	mu.Lock()
	defer mu.Unlock()
	delete(paths, path)
}

// Outstanding returns the currently registered scratch directories, for
// tests that want to assert nothing leaked.
func Outstanding() []string {
	mu.Lock()
	defer mu.Unlock()
	out := make([]string, 0, len(paths))
	for p := range paths {
		out = append(out, p)
	}
	return out
}

// Sweep best-effort removes every outstanding scratch directory. Intended
// to be called from a signal-driven shutdown path; errors are ignored
// since shutdown proceeds regardless.
func Sweep() {
	mu.Lock()
	remaining := make([]string, 0, len(paths))
	for p := range paths {
		remaining = append(remaining, p)
	}
	mu.Unlock()

	for _, p := range remaining {
		_ = os.RemoveAll(p)
		Unregister(p)
	}
}
