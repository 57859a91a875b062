package detect

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sidequest/sidequest/internal/gitproc"
	"github.com/sidequest/sidequest/internal/janitor"
)

// scratchDirPrefix names the scratch dirs created here. The janitor does
// not match on it: it sweeps the exact paths registered with it.
const scratchDirPrefix = "sq-git-objects-"

// isolatedEnv carries the env overrides that make git read host objects
// but write nothing back to the host store, plus a release handle that
// must run on every exit path of the detect() call that created it.
type isolatedEnv struct {
	vars    []string
	release func()
}

// newIsolatedObjectStore resolves the host's object directory, creates a
// scratch directory under the OS temp root, and wires
// GIT_OBJECT_DIRECTORY / GIT_ALTERNATE_OBJECT_DIRECTORIES so that git
// commands run with this env can read every object reachable from
// gitRoot but can only ever write into the scratch dir. The returned
// isolatedEnv.release must be deferred immediately by the caller.
func newIsolatedObjectStore(ctx context.Context, gitRoot string) (*isolatedEnv, error) {
	res, err := gitproc.Git(ctx, gitRoot, "rev-parse", "--git-path", "objects")
	if err != nil || res.ExitCode != 0 {
		return nil, fmt.Errorf("resolve host objects dir: %s", firstNonEmpty(res.Stderr, "git-path objects failed"))
	}
	hostObjects := trimLine(res.Stdout)
	if !filepath.IsAbs(hostObjects) {
		hostObjects = filepath.Join(gitRoot, hostObjects)
	}

	scratch, err := os.MkdirTemp("", scratchDirPrefix)
	if err != nil {
		return nil, fmt.Errorf("create scratch object dir: %w", err)
	}
	janitor.Register(scratch)

	alternates := hostObjects
	if existing, existErr := os.ReadFile(filepath.Join(hostObjects, "info", "alternates")); existErr == nil {
		alternates = hostObjects + string(os.PathListSeparator) + trimLine(string(existing))
	}

	env := []string{
		"GIT_OBJECT_DIRECTORY=" + scratch,
		"GIT_ALTERNATE_OBJECT_DIRECTORIES=" + alternates,
	}

	released := false
	release := func() {
		if released {
			return
		}
		released = true
		_ = os.RemoveAll(scratch)
		janitor.Unregister(scratch)
	}

	return &isolatedEnv{vars: env, release: release}, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if trimLine(v) != "" {
			return trimLine(v)
		}
	}
	return ""
}
