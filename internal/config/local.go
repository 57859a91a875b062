package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LocalConfig holds per-repo configuration overrides from .sidequest.toml.
// Pointer fields and zero-value strings indicate "not set" (inherit from global).
type LocalConfig struct {
	Hooks             HooksConfig   `toml:"-"` // merge by name into global
	Checkout          LocalCheckout `toml:"checkout"`
	Clean             LocalClean    `toml:"clean"`
	Preserve          PreserveConfig `toml:"preserve"` // appended to global
	ProtectedBranches []string       `toml:"protected_branches"` // appended to global
}

// LocalCheckout holds local checkout overrides
type LocalCheckout struct {
	WorktreeFormat string `toml:"worktree_format"`
	BaseRef        string `toml:"base_ref"`
	AutoFetch      *bool  `toml:"auto_fetch"`
	SetUpstream    *bool  `toml:"set_upstream"`
}

// LocalClean holds local clean overrides
type LocalClean struct {
	DeleteLocalBranches *bool `toml:"delete_local_branches"`
}

// rawLocalConfig is used for initial TOML parsing before processing hooks
type rawLocalConfig struct {
	Hooks             map[string]any `toml:"hooks"`
	Checkout          LocalCheckout  `toml:"checkout"`
	Clean             LocalClean     `toml:"clean"`
	Preserve          PreserveConfig `toml:"preserve"`
	ProtectedBranches []string       `toml:"protected_branches"`
}

// LoadLocal reads a per-repo .sidequest.toml config from the given repo path.
// Returns nil (no error) if the file doesn't exist.
// Returns an error only on parse or validation failure.
func LoadLocal(repoPath string) (*LocalConfig, error) {
	configFile := filepath.Join(repoPath, LocalConfigFileName)

	data, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read local config %s: %w", configFile, err)
	}

	var raw rawLocalConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse local config %s: %w", configFile, err)
	}

	local := &LocalConfig{
		Hooks:             parseHooksConfig(raw.Hooks),
		Checkout:          raw.Checkout,
		Clean:             raw.Clean,
		Preserve:          raw.Preserve,
		ProtectedBranches: raw.ProtectedBranches,
	}

	if err := validateEnum(local.Checkout.BaseRef, "checkout.base_ref", ValidBaseRefs); err != nil {
		return nil, fmt.Errorf("%w in %s", err, configFile)
	}
	if err := validatePreservePatterns(local.Preserve.Patterns, configFile); err != nil {
		return nil, err
	}

	return local, nil
}

// defaultLocalConfig is the template for sidequest config init --local
const defaultLocalConfig = `# sidequest local config (per-repo overrides)
# Place this file at the root of your repo.
# Settings here override the global ~/.sidequest/config.toml for this repo only.

# Checkout settings
# [checkout]
# worktree_format = "{branch}"
# base_ref = "remote"
# auto_fetch = false
# set_upstream = false

# Clean settings
# [clean]
# delete_local_branches = false

# Branches protected from orphans/clean, appended to the global list.
# protected_branches = ["release"]

# Preserve settings (patterns here are added to global patterns)
# [preserve]
# patterns = [".env.local"]
# exclude = ["dist"]

# Hooks - add repo-specific hooks or override global hooks
# Set enabled = false to disable a global hook for this repo
#
# [hooks.setup]
# command = "npm install"
# description = "Install dependencies"
# on = ["create"]
#
# [hooks.global-hook-name]
# enabled = false  # Disable this global hook for this repo
`

// DefaultLocalConfig returns the default local configuration template content.
func DefaultLocalConfig() string {
	return defaultLocalConfig
}
