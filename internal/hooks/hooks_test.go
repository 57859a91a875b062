package hooks

import (
	"strings"
	"testing"

	"github.com/sidequest/sidequest/internal/config"
)

func TestSubstitutePlaceholders(t *testing.T) {
	ctx := Context{
		Path:     "/home/user/worktrees/repo-branch",
		MainRepo: "/home/user/repo",
		Branch:   "feature-branch",
		Repo:     "repo",
		Folder:   "repo",
		Trigger:  "create",
	}

	tests := []struct {
		name     string
		command  string
		expected string
	}{
		{
			name:     "single placeholder",
			command:  "code {path}",
			expected: "code '/home/user/worktrees/repo-branch'",
		},
		{
			name:     "multiple placeholders",
			command:  "cd {path} && echo {branch}",
			expected: "cd '/home/user/worktrees/repo-branch' && echo 'feature-branch'",
		},
		{
			name:     "all static placeholders",
			command:  "{path} {branch} {repo} {folder} {main-repo} {trigger}",
			expected: "'/home/user/worktrees/repo-branch' 'feature-branch' 'repo' 'repo' '/home/user/repo' 'create'",
		},
		{
			name:     "no placeholders",
			command:  "echo hello",
			expected: "echo hello",
		},
		{
			name:     "repeated placeholder",
			command:  "{path} and {path}",
			expected: "'/home/user/worktrees/repo-branch' and '/home/user/worktrees/repo-branch'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SubstitutePlaceholders(tt.command, ctx)
			if result != tt.expected {
				t.Errorf("SubstitutePlaceholders(%q) = %q, want %q", tt.command, result, tt.expected)
			}
		})
	}
}

func TestSubstitutePlaceholders_SpecialChars(t *testing.T) {
	tests := []struct {
		name     string
		ctx      Context
		command  string
		expected string
	}{
		{
			name:     "path with spaces",
			ctx:      Context{Path: "/home/user/my documents/worktree"},
			command:  "code {path}",
			expected: "code '/home/user/my documents/worktree'",
		},
		{
			name:     "branch with slash",
			ctx:      Context{Branch: "feature/test-branch"},
			command:  "echo {branch}",
			expected: "echo 'feature/test-branch'",
		},
		{
			name:     "value with single quotes",
			ctx:      Context{Path: "/home/user/it's a path"},
			command:  "code {path}",
			expected: "code '/home/user/it'\\''s a path'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SubstitutePlaceholders(tt.command, tt.ctx)
			if result != tt.expected {
				t.Errorf("SubstitutePlaceholders(%q) = %q, want %q", tt.command, result, tt.expected)
			}
		})
	}
}

func TestSubstitutePlaceholders_EnvVariables(t *testing.T) {
	ctx := Context{
		Path: "/repo",
		Env: map[string]string{
			"EDITOR": "vim",
		},
	}

	tests := []struct {
		name     string
		command  string
		expected string
	}{
		{
			name:     "quoted env value",
			command:  "{EDITOR} {path}",
			expected: "'vim' '/repo'",
		},
		{
			name:     "raw env value",
			command:  "echo {EDITOR:raw}",
			expected: "echo vim",
		},
		{
			name:     "missing key with default",
			command:  "{MISSING:-fallback}",
			expected: "'fallback'",
		},
		{
			name:     "missing key without default",
			command:  "{MISSING}",
			expected: "''",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SubstitutePlaceholders(tt.command, ctx)
			if result != tt.expected {
				t.Errorf("SubstitutePlaceholders(%q) = %q, want %q", tt.command, result, tt.expected)
			}
		})
	}
}

func TestSelectHooks_ExplicitName(t *testing.T) {
	hooksConfig := config.HooksConfig{
		Hooks: map[string]config.Hook{
			"kitty": {Command: "kitty @ launch --cwd={path}", On: []string{"open"}},
			"code":  {Command: "code {path}"},
		},
	}

	matches, err := SelectHooks(hooksConfig, "code", false, CommandOpen)
	if err != nil {
		t.Fatalf("SelectHooks() error = %v", err)
	}
	if len(matches) != 1 || matches[0].Name != "code" {
		t.Fatalf("SelectHooks() = %+v, want single match for 'code'", matches)
	}
}

func TestSelectHooks_UnknownName(t *testing.T) {
	hooksConfig := config.HooksConfig{Hooks: map[string]config.Hook{}}

	_, err := SelectHooks(hooksConfig, "missing", false, CommandOpen)
	if err == nil {
		t.Fatal("SelectHooks() with unknown hook name, want error")
	}
}

func TestSelectHooks_NoHook(t *testing.T) {
	hooksConfig := config.HooksConfig{
		Hooks: map[string]config.Hook{
			"code": {Command: "code {path}", On: []string{"create"}},
		},
	}

	matches, err := SelectHooks(hooksConfig, "", true, CommandCreate)
	if err != nil {
		t.Fatalf("SelectHooks() error = %v", err)
	}
	if matches != nil {
		t.Fatalf("SelectHooks(noHook=true) = %+v, want nil", matches)
	}
}

func TestSelectHooks_OnCondition(t *testing.T) {
	hooksConfig := config.HooksConfig{
		Hooks: map[string]config.Hook{
			"on-create": {Command: "echo create", On: []string{"create"}},
			"on-open":   {Command: "echo open", On: []string{"open"}},
			"manual":    {Command: "echo manual"}, // no "on", only via explicit --hook
		},
	}

	matches, err := SelectHooks(hooksConfig, "", false, CommandCreate)
	if err != nil {
		t.Fatalf("SelectHooks() error = %v", err)
	}
	if len(matches) != 1 || matches[0].Name != "on-create" {
		t.Fatalf("SelectHooks(create) = %+v, want only 'on-create'", matches)
	}
}

func TestSelectHooks_OnAll(t *testing.T) {
	hooksConfig := config.HooksConfig{
		Hooks: map[string]config.Hook{
			"always": {Command: "echo hi", On: []string{"all"}},
		},
	}

	for _, cmdType := range []CommandType{CommandCreate, CommandOpen, CommandClean, CommandDelete} {
		matches, err := SelectHooks(hooksConfig, "", false, cmdType)
		if err != nil {
			t.Fatalf("SelectHooks(%s) error = %v", cmdType, err)
		}
		if len(matches) != 1 {
			t.Fatalf("SelectHooks(%s) = %+v, want 'always' to match", cmdType, matches)
		}
	}
}

func TestSelectHooks_EmptyConfig(t *testing.T) {
	matches, err := SelectHooks(config.HooksConfig{}, "", false, CommandCreate)
	if err != nil {
		t.Fatalf("SelectHooks() error = %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("SelectHooks(empty config) = %+v, want empty", matches)
	}
}

func TestRunAll_EmptyMatches(t *testing.T) {
	err := RunAll(nil, Context{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("RunAll(nil) error = %v, want nil", err)
	}
}

func TestRunAll_Success(t *testing.T) {
	hook := config.Hook{Command: "echo ok"}
	matches := []HookMatch{{Hook: &hook, Name: "greet"}}

	if err := RunAll(matches, Context{Path: t.TempDir()}); err != nil {
		t.Fatalf("RunAll() error = %v, want nil", err)
	}
}

func TestRunAll_Failure(t *testing.T) {
	hook := config.Hook{Command: "sh -c 'exit 1'"}
	matches := []HookMatch{{Hook: &hook, Name: "broken"}}

	err := RunAll(matches, Context{Path: t.TempDir()})
	if err == nil {
		t.Fatal("RunAll() with failing hook, want error")
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("error = %q, want to mention hook name", err.Error())
	}
}

func TestRunAll_DryRun(t *testing.T) {
	hook := config.Hook{Command: "echo should-not-run"}
	matches := []HookMatch{{Hook: &hook, Name: "dry"}}

	if err := RunAll(matches, Context{Path: t.TempDir(), DryRun: true}); err != nil {
		t.Fatalf("RunAll(dry-run) error = %v, want nil", err)
	}
}

func TestRunAllNonFatal_WithFailures(t *testing.T) {
	failHook := config.Hook{Command: "sh -c 'exit 1'"}
	successHook := config.Hook{Command: "echo ok"}
	matches := []HookMatch{
		{Hook: &failHook, Name: "failing"},
		{Hook: &successHook, Name: "passing"},
	}

	// Must not panic or stop at the first failure.
	RunAllNonFatal(matches, Context{Path: t.TempDir()}, t.TempDir())
}

func TestRunForEach_DoesNotStopOnFailure(t *testing.T) {
	failHook := config.Hook{Command: "sh -c 'exit 1'"}
	matches := []HookMatch{{Hook: &failHook, Name: "cleanup"}}

	RunForEach(matches, Context{Path: t.TempDir(), Branch: "feature/test"}, t.TempDir())
}

func TestRunSingle_Success(t *testing.T) {
	hook := &config.Hook{Command: "echo hello", Description: "Say hello"}
	if err := RunSingle("test-hook", hook, Context{Path: t.TempDir()}); err != nil {
		t.Fatalf("RunSingle() error = %v, want nil", err)
	}
}

func TestRunSingle_Failure(t *testing.T) {
	hook := &config.Hook{Command: "sh -c 'exit 1'"}
	if err := RunSingle("fail-hook", hook, Context{Path: t.TempDir()}); err == nil {
		t.Fatal("RunSingle(failing command) = nil, want error")
	}
}

func TestParseEnv(t *testing.T) {
	got, err := ParseEnv([]string{"KEY=value", "OTHER=1"})
	if err != nil {
		t.Fatalf("ParseEnv() error = %v", err)
	}
	if got["KEY"] != "value" || got["OTHER"] != "1" {
		t.Fatalf("ParseEnv() = %+v", got)
	}
}

func TestParseEnv_InvalidFormat(t *testing.T) {
	if _, err := ParseEnv([]string{"nokeyvalue"}); err == nil {
		t.Fatal("ParseEnv(missing '=') = nil, want error")
	}
}

func TestParseEnv_EmptyKey(t *testing.T) {
	if _, err := ParseEnv([]string{"=value"}); err == nil {
		t.Fatal("ParseEnv(empty key) = nil, want error")
	}
}

func TestParseEnvWithStdin_NoStdinRequested(t *testing.T) {
	got, err := ParseEnvWithStdin([]string{"KEY=value"})
	if err != nil {
		t.Fatalf("ParseEnvWithStdin() error = %v", err)
	}
	if got["KEY"] != "value" {
		t.Fatalf("ParseEnvWithStdin() = %+v", got)
	}
}

func TestContextFromWorktree(t *testing.T) {
	ctx := ContextFromWorktree("/repos/worktrees/repo-feature", "feature", "/repos/repo", CommandCreate, nil)
	if ctx.Path != "/repos/worktrees/repo-feature" {
		t.Errorf("Path = %q", ctx.Path)
	}
	if ctx.Branch != "feature" {
		t.Errorf("Branch = %q", ctx.Branch)
	}
	if ctx.MainRepo != "/repos/repo" {
		t.Errorf("MainRepo = %q", ctx.MainRepo)
	}
	if ctx.Folder != "repo" {
		t.Errorf("Folder = %q", ctx.Folder)
	}
	if ctx.Trigger != "create" {
		t.Errorf("Trigger = %q", ctx.Trigger)
	}
}

func TestContextFromRepo(t *testing.T) {
	ctx := ContextFromRepo("/repos/repo", CommandOpen, nil)
	if ctx.Path != "/repos/repo" || ctx.MainRepo != "/repos/repo" {
		t.Errorf("ContextFromRepo() = %+v", ctx)
	}
	if ctx.Branch != "" {
		t.Errorf("Branch = %q, want empty for repo-level context", ctx.Branch)
	}
}
