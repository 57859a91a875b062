package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/sidequest/sidequest/internal/envcfg"
)

// Context keys for dependency injection
type cfgKey struct{}
type workDirKey struct{}

// WithConfig returns a new context with the config stored in it.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, cfgKey{}, cfg)
}

// FromContext returns the config from context.
// Returns nil if no config is stored.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(cfgKey{}).(*Config); ok {
		return cfg
	}
	return nil
}

// WithWorkDir returns a new context with the working directory stored in it.
func WithWorkDir(ctx context.Context, dir string) context.Context {
	return context.WithValue(ctx, workDirKey{}, dir)
}

// WorkDirFromContext returns the working directory from context.
// Falls back to os.Getwd() if not stored or empty.
func WorkDirFromContext(ctx context.Context) string {
	if dir, ok := ctx.Value(workDirKey{}).(string); ok && dir != "" {
		return dir
	}
	wd, _ := os.Getwd()
	return wd
}

// LocalConfigFileName is the name of the per-repo local config file
const LocalConfigFileName = ".sidequest.toml"

// Hook defines a post-create/post-delete hook
type Hook struct {
	Command     string   `toml:"command"`
	Description string   `toml:"description"`
	On          []string `toml:"on"`      // commands this hook runs on (empty = only via --hook)
	Enabled     *bool    `toml:"enabled"` // nil = true (default); false disables a global hook locally
}

// IsEnabled returns whether the hook is enabled (defaults to true when Enabled is nil)
func (h *Hook) IsEnabled() bool {
	if h.Enabled == nil {
		return true
	}
	return *h.Enabled
}

// HooksConfig holds hook-related configuration
type HooksConfig struct {
	Hooks map[string]Hook `toml:"-"` // parsed from [hooks.NAME] sections
}

// CleanConfig holds settings for the clean/delete commands.
type CleanConfig struct {
	DeleteLocalBranches bool `toml:"delete_local_branches"` // also delete the local branch ref after removing a worktree
}

// ListConfig holds list-related configuration
type ListConfig struct {
	StaleDays int `toml:"stale_days"` // days after which worktrees are highlighted as stale (0 = disabled)
}

// PreserveConfig holds file preservation settings for worktree creation.
// Matching git-ignored files are copied from an existing worktree into new ones.
type PreserveConfig struct {
	Patterns []string `toml:"patterns"` // Glob patterns matched against file basenames
	Exclude  []string `toml:"exclude"`  // Path segments to exclude (e.g., "node_modules")
}

// CheckoutConfig holds worktree-creation configuration (used by `create`).
type CheckoutConfig struct {
	WorktreeFormat string `toml:"worktree_format"` // Template for worktree folder names
	BaseRef        string `toml:"base_ref"`        // "local" or "remote" (default: "remote")
	AutoFetch      bool   `toml:"auto_fetch"`      // Fetch from origin before create
	SetUpstream    *bool  `toml:"set_upstream"`    // Auto-set upstream tracking (default: false)
}

// ThemeConfig holds theme/color configuration for interactive UI
type ThemeConfig struct {
	Name     string `toml:"name"`     // preset name: "none", "default", "dracula", "nord", "gruvbox", "catppuccin"
	Mode     string `toml:"mode"`     // theme mode: "auto", "light", "dark" (default: "auto")
	Primary  string `toml:"primary"`  // main accent color (borders, titles)
	Accent   string `toml:"accent"`   // highlight color (selected items)
	Success  string `toml:"success"`  // success indicators (checkmarks)
	Error    string `toml:"error"`    // error messages
	Muted    string `toml:"muted"`    // disabled/inactive text
	Normal   string `toml:"normal"`   // standard text
	Info     string `toml:"info"`     // informational text
	Warning  string `toml:"warning"`  // warning indicators (stale items)
	Nerdfont bool   `toml:"nerdfont"` // use nerd font symbols (default: false)
}

// Config holds the sidequest configuration
type Config struct {
	DefaultSort        string         `toml:"default_sort"` // "created", "repo", "branch"
	Hooks              HooksConfig    `toml:"-"`             // custom parsing needed
	Checkout           CheckoutConfig `toml:"checkout"`
	Clean              CleanConfig    `toml:"clean"`
	List               ListConfig     `toml:"list"`
	Preserve           PreserveConfig `toml:"preserve"`
	ProtectedBranches  []string       `toml:"protected_branches"` // branches orphans/clean never touch, beyond main/master/develop
	Concurrency        int            `toml:"concurrency"`        // worker-pool size for enumerate/orphan scans
	ItemTimeoutMS      int            `toml:"item_timeout_ms"`
	DetectionTimeoutMS int            `toml:"detection_timeout_ms"`
	Theme              ThemeConfig    `toml:"theme"` // UI theme/colors for interactive mode
}

// DefaultWorktreeFormat is the default format for worktree folder names
const DefaultWorktreeFormat = "../{repo}-{branch}"

// ShouldSetUpstream returns true if upstream tracking should be set (default: false)
func (c *CheckoutConfig) ShouldSetUpstream() bool {
	if c.SetUpstream == nil {
		return false // Default to false
	}
	return *c.SetUpstream
}

// Default returns the default configuration
func Default() Config {
	conc, _ := envcfg.Concurrency()
	itemMS, _ := envcfg.ItemTimeoutMS()
	detMS, _ := envcfg.DetectionTimeoutMS()
	return Config{
		Checkout: CheckoutConfig{
			WorktreeFormat: DefaultWorktreeFormat,
		},
		List: ListConfig{
			StaleDays: 14,
		},
		Concurrency:        conc,
		ItemTimeoutMS:      itemMS,
		DetectionTimeoutMS: detMS,
	}
}

// configPath returns the path to the config file
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".sidequest", "config.toml"), nil
}

// rawConfig is used for initial TOML parsing before processing hooks
type rawConfig struct {
	DefaultSort string         `toml:"default_sort"`
	Hooks       map[string]any `toml:"hooks"`
	Checkout    CheckoutConfig `toml:"checkout"`
	Clean       CleanConfig    `toml:"clean"`
	List        struct {
		StaleDays *int `toml:"stale_days"`
	} `toml:"list"`
	Preserve           PreserveConfig `toml:"preserve"`
	ProtectedBranches  []string       `toml:"protected_branches"`
	Concurrency        int            `toml:"concurrency"`
	ItemTimeoutMS      int            `toml:"item_timeout_ms"`
	DetectionTimeoutMS int            `toml:"detection_timeout_ms"`
	Theme              ThemeConfig    `toml:"theme"`
}

// Load reads config from ~/.sidequest/config.toml
// Returns Default() if file doesn't exist (no error)
// Returns error only if file exists but is invalid
// Environment variables override config file values:
// - SIDE_QUEST_THEME overrides theme.name
// - SIDE_QUEST_THEME_MODE overrides theme.mode (auto, light, dark)
// - SIDE_QUEST_CONCURRENCY / SIDE_QUEST_ITEM_TIMEOUT_MS / SIDE_QUEST_DETECTION_TIMEOUT_MS
//   override the matching numeric fields (see internal/envcfg)
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := Config{
		DefaultSort:        raw.DefaultSort,
		Hooks:              parseHooksConfig(raw.Hooks),
		Checkout:           raw.Checkout,
		Clean:              raw.Clean,
		Preserve:           raw.Preserve,
		ProtectedBranches:  raw.ProtectedBranches,
		Concurrency:        raw.Concurrency,
		ItemTimeoutMS:      raw.ItemTimeoutMS,
		DetectionTimeoutMS: raw.DetectionTimeoutMS,
		Theme:              raw.Theme,
	}

	if err := validateEnum(cfg.Checkout.BaseRef, "checkout.base_ref", ValidBaseRefs); err != nil {
		return Default(), err
	}
	if err := validateEnum(cfg.DefaultSort, "default_sort", ValidDefaultSortModes); err != nil {
		return Default(), err
	}
	if err := validatePreservePatterns(cfg.Preserve.Patterns, ""); err != nil {
		return Default(), err
	}
	if cfg.Theme.Name != "" && !isValidThemeName(cfg.Theme.Name) {
		return Default(), fmt.Errorf("invalid theme.name %q: must be %s", cfg.Theme.Name, formatOptions(ValidThemeNames))
	}

	// Use defaults for empty/zero values
	if cfg.Checkout.WorktreeFormat == "" {
		cfg.Checkout.WorktreeFormat = DefaultWorktreeFormat
	}
	if raw.List.StaleDays != nil {
		cfg.List.StaleDays = *raw.List.StaleDays
	} else {
		cfg.List.StaleDays = 14
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency, _ = envcfg.Concurrency()
	}
	if cfg.ItemTimeoutMS <= 0 {
		cfg.ItemTimeoutMS, _ = envcfg.ItemTimeoutMS()
	}
	if cfg.DetectionTimeoutMS <= 0 {
		cfg.DetectionTimeoutMS, _ = envcfg.DetectionTimeoutMS()
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return Default(), err
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) error {
	if envTheme := os.Getenv("SIDE_QUEST_THEME"); envTheme != "" {
		cfg.Theme.Name = envTheme
	}
	if envMode := os.Getenv("SIDE_QUEST_THEME_MODE"); envMode != "" {
		cfg.Theme.Mode = envMode
	}
	if conc, err := envcfg.Concurrency(); err == nil {
		cfg.Concurrency = conc
	}
	if itemMS, err := envcfg.ItemTimeoutMS(); err == nil {
		cfg.ItemTimeoutMS = itemMS
	}
	if detMS, err := envcfg.DetectionTimeoutMS(); err == nil {
		cfg.DetectionTimeoutMS = detMS
	}
	return nil
}

// parseHooksConfig extracts HooksConfig from raw TOML map
// Handles [hooks.NAME] sections
func parseHooksConfig(raw map[string]any) HooksConfig {
	hc := HooksConfig{
		Hooks: make(map[string]Hook),
	}

	if raw == nil {
		return hc
	}

	for key, value := range raw {
		// Hook definitions are tables
		if hookMap, ok := value.(map[string]any); ok {
			hook := Hook{}
			if cmd, ok := hookMap["command"].(string); ok {
				hook.Command = cmd
			}
			if desc, ok := hookMap["description"].(string); ok {
				hook.Description = desc
			}
			if on, ok := hookMap["on"].([]any); ok {
				for _, v := range on {
					if s, ok := v.(string); ok {
						hook.On = append(hook.On, s)
					}
				}
			}
			if enabled, ok := hookMap["enabled"].(bool); ok {
				hook.Enabled = &enabled
			}
			hc.Hooks[key] = hook
		}
	}

	return hc
}

// ValidThemeNames is the list of supported theme presets (families)
var ValidThemeNames = []string{"none", "default", "dracula", "nord", "gruvbox", "catppuccin"}

// ValidThemeModes is the list of supported theme modes
var ValidThemeModes = []string{"auto", "light", "dark"}

// isValidThemeName reports whether name is a recognized theme preset.
func isValidThemeName(name string) bool {
	for _, v := range ValidThemeNames {
		if v == name {
			return true
		}
	}
	return false
}

// defaultConfig is the full default config template
const defaultConfig = `# sidequest configuration

# Checkout settings - controls worktree creation behavior
[checkout]
# Worktree folder naming format. Available placeholders: {repo}, {branch}
# "../{repo}-{branch}" (default) creates a sibling directory next to the repo.
# "{branch}" nests the worktree inside the repo. "~/work/{repo}-{branch}" and
# absolute paths are also supported.
worktree_format = "../{repo}-{branch}"

# Base ref mode for new branches (sidequest create)
#   "remote" - use origin/<branch> (default, ensures up-to-date base)
#   "local"  - use local <branch> (faster, but may be stale)
# base_ref = "remote"

# Auto-fetch from origin before create
# auto_fetch = false

# Auto-set upstream tracking when creating worktrees (default: false)
# set_upstream = false

# Default sort order for 'sidequest list'
# Available values: "created", "repo", "branch"
# default_sort = "created"

# List display settings
# [list]
# stale_days = 14  # Days before a worktree is highlighted as stale (0 = disabled, default: 14)

# Branches that orphans/clean never consider, beyond main/master/develop.
# protected_branches = ["release", "staging"]

# Concurrency and timeouts for worktree enumeration and merge-status detection.
# concurrency = 4
# item_timeout_ms = 10000
# detection_timeout_ms = 5000

# Clean settings
# [clean]
# delete_local_branches = false  # Delete local branches after worktree removal

# Hooks - run commands after worktree creation/removal
# Use --hook=name to run a specific hook, --no-hook to skip all hooks
#
# Hooks with "on" run automatically for matching commands.
# Hooks without "on" only run when explicitly called with --hook=name.
#
# Available "on" values: "create", "open", "clean", "delete", "all"
#
# Hooks run with working directory set to the worktree path.
# For "clean"/"delete" hooks, working directory is the main repo (worktree is deleted).
#
# Available placeholders:
#   {path}      - absolute worktree path
#   {main-repo} - absolute main repo path
#   {branch}    - branch name
#   {repo}      - folder name of git repo
#   {trigger}   - command that triggered the hook
#   {key}       - custom variable passed via --arg key=value
#   {key:-def}  - custom variable with default value if not provided
#
# [hooks.code]
# command = "code {path}"
# description = "Open in VS Code"
# on = ["create"]

# Preserve settings - auto-copy git-ignored files into new worktrees
# Copies matching files from an existing worktree (preferring the default branch) into newly created ones.
# Only git-ignored files are considered. Existing files are never overwritten.
# Use --no-preserve on create to skip for a single invocation.
#
# [preserve]
# patterns = [".env", ".env.*", ".envrc", "docker-compose.override.yml"]
# exclude = ["node_modules", ".cache", "vendor"]

# Theme settings - customize colors for interactive prompts
# Available presets: "none", "default", "dracula", "nord", "gruvbox", "catppuccin"
#
# [theme]
# name = "catppuccin"
# mode = "auto"
`

// DefaultConfig returns the default configuration content.
func DefaultConfig() string {
	return defaultConfig
}
