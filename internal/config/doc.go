// Package config handles loading and validation of sidequest configuration.
//
// Global configuration is read from ~/.sidequest/config.toml, with an
// optional per-repo .sidequest.toml merged on top via MergeLocal.
//
// # Key Settings
//
//   - checkout.worktree_format: Template for worktree folder names (default: "../{repo}-{branch}")
//   - checkout.base_ref: "local" or "remote" for new branch base (default: "remote")
//   - checkout.auto_fetch: Fetch from origin before create (default: false)
//   - default_sort: Default sort order for "sidequest list"
//   - protected_branches: branch names orphans/clean never touch, beyond main/master/develop
//   - concurrency, item_timeout_ms, detection_timeout_ms: worker-pool sizing and
//     per-item timeouts for worktree enumeration and merge-status detection;
//     overridable via SIDE_QUEST_CONCURRENCY / SIDE_QUEST_ITEM_TIMEOUT_MS /
//     SIDE_QUEST_DETECTION_TIMEOUT_MS (see internal/envcfg)
//
// # Hooks Configuration
//
// Hooks are defined in [hooks.NAME] sections:
//
//	[hooks.vscode]
//	command = "code {path}"
//	description = "Open VS Code"
//	on = ["create"]  # auto-run for create command
//
// Hooks with "on" run automatically for matching commands (create, open, clean, delete).
// Hooks without "on" only run via explicit --hook=name flag.
//
// # Theme Configuration
//
// The [theme] section selects a preset and mode for interactive prompts:
//
//	[theme]
//	name = "catppuccin"
//	mode = "auto"
package config
