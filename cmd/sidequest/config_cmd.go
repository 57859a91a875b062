package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sidequest/sidequest/internal/config"
	"github.com/sidequest/sidequest/internal/log"
	"github.com/sidequest/sidequest/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage sidequest configuration.

Global config: ~/.sidequest/config.toml
Local config:  .sidequest.toml (in the repo root)`,
		Example: `  sidequest config init          # Create default global config
  sidequest config init --local  # Create local repo config
  sidequest config show          # Show effective config
  sidequest config hooks         # List available hooks`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigHooksCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
		local  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Long: `Create default config file.

Without flags, creates global config at ~/.sidequest/config.toml.
With --local, creates per-repo config at .sidequest.toml in the current repo root.`,
		Example: `  sidequest config init           # Create global config
  sidequest config init --local   # Create local repo config
  sidequest config init -f        # Overwrite existing config
  sidequest config init -s        # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if local {
				return initLocalConfig(cmd, force, stdout)
			}
			return initGlobalConfig(force, stdout)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")
	cmd.Flags().BoolVar(&local, "local", false, "Create per-repo .sidequest.toml instead of global config")

	return cmd
}

func initGlobalConfig(force, stdout bool) error {
	configContent := config.DefaultConfig()

	if stdout {
		fmt.Print(configContent)
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	configPath := filepath.Join(home, ".sidequest", "config.toml")

	if !force {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("config file already exists: %s (use -f to overwrite)", configPath)
		}
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		return err
	}

	fmt.Printf("Created config file: %s\n", configPath)
	return nil
}

func initLocalConfig(cmd *cobra.Command, force, stdout bool) error {
	configContent := config.DefaultLocalConfig()

	if stdout {
		fmt.Print(configContent)
		return nil
	}

	ctx := cmd.Context()
	root, err := currentGitRoot(ctx)
	if err != nil {
		return err
	}

	configPath := filepath.Join(root, config.LocalConfigFileName)

	if !force {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("local config already exists: %s (use -f to overwrite)", configPath)
		}
	}

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		return err
	}

	fmt.Printf("Created local config: %s\n", configPath)
	return nil
}

func newConfigShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show effective configuration.

When inside a repo, shows the merged config with source annotations
(global vs local). Otherwise shows global config only.`,
		Example: `  sidequest config show         # Show config (merged if in a repo)
  sidequest config show --json  # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			root, _ := currentGitRoot(ctx)

			var local *config.LocalConfig
			var localConfigPath string
			effCfg := cfg
			if root != "" {
				localConfigPath = filepath.Join(root, config.LocalConfigFileName)
				var err error
				local, err = config.LoadLocal(root)
				if err != nil {
					l.Printf("Warning: failed to load local config: %v (using global config)\n", err)
				}
				effCfg = config.MergeLocal(cfg, local)
			}

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(effCfg)
			}

			fmt.Println("Global config: ~/.sidequest/config.toml")
			if localConfigPath != "" {
				if local != nil {
					fmt.Printf("Local config:  %s\n", localConfigPath)
				} else {
					fmt.Println("Local config:  (none)")
				}
			}
			fmt.Println()

			source := func(isLocal bool) string {
				if isLocal {
					return " (local)"
				}
				return ""
			}

			fmt.Printf("default_sort: %s\n", effCfg.DefaultSort)
			fmt.Printf("checkout.worktree_format: %s%s\n", effCfg.Checkout.WorktreeFormat, source(local != nil && local.Checkout.WorktreeFormat != ""))
			fmt.Printf("checkout.base_ref: %s%s\n", effCfg.Checkout.BaseRef, source(local != nil && local.Checkout.BaseRef != ""))
			fmt.Printf("checkout.auto_fetch: %v%s\n", effCfg.Checkout.AutoFetch, source(local != nil && local.Checkout.AutoFetch != nil))
			fmt.Printf("checkout.set_upstream: %v%s\n", effCfg.Checkout.ShouldSetUpstream(), source(local != nil && local.Checkout.SetUpstream != nil))
			fmt.Printf("clean.delete_local_branches: %v%s\n", effCfg.Clean.DeleteLocalBranches, source(local != nil && local.Clean.DeleteLocalBranches != nil))
			fmt.Printf("list.stale_days: %d\n", effCfg.List.StaleDays)
			fmt.Printf("concurrency: %d\n", effCfg.Concurrency)
			fmt.Printf("item_timeout_ms: %d\n", effCfg.ItemTimeoutMS)
			fmt.Printf("detection_timeout_ms: %d\n", effCfg.DetectionTimeoutMS)
			fmt.Printf("protected_branches: %v\n", effCfg.ProtectedBranches)
			fmt.Printf("theme.name: %s\n", effCfg.Theme.Name)
			fmt.Printf("theme.nerdfont: %v\n", effCfg.Theme.Nerdfont)
			fmt.Printf("hooks: %d configured\n", len(effCfg.Hooks.Hooks))
			if len(effCfg.Preserve.Patterns) > 0 {
				fmt.Printf("preserve.patterns: %v\n", effCfg.Preserve.Patterns)
			}
			if len(effCfg.Preserve.Exclude) > 0 {
				fmt.Printf("preserve.exclude: %v\n", effCfg.Preserve.Exclude)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func newConfigHooksCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "hooks",
		Short: "List available hooks",
		Args:  cobra.NoArgs,
		Long: `List available hooks.

When inside a repo, shows merged hooks with source annotations.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			root, _ := currentGitRoot(ctx)

			var effCfg *config.Config
			var local *config.LocalConfig
			if root != "" {
				var err error
				local, err = config.LoadLocal(root)
				if err != nil {
					l.Printf("Warning: failed to load local config: %v (using global config)\n", err)
				}
				effCfg = config.MergeLocal(cfg, local)
			} else {
				effCfg = cfg
			}

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(effCfg.Hooks.Hooks)
			}

			if len(effCfg.Hooks.Hooks) == 0 {
				fmt.Println("No hooks configured")
				return nil
			}

			globalHooks := cfg.Hooks.Hooks

			for name, hook := range effCfg.Hooks.Hooks {
				src := "global"
				if local != nil {
					if _, inLocal := local.Hooks.Hooks[name]; inLocal {
						if _, inGlobal := globalHooks[name]; inGlobal {
							src = "local (override)"
						} else {
							src = "local"
						}
					}
				}

				fmt.Printf("%s: [%s]\n", name, src)
				fmt.Printf("  command: %s\n", hook.Command)
				if hook.Description != "" {
					fmt.Printf("  description: %s\n", hook.Description)
				}
				if len(hook.On) > 0 {
					fmt.Printf("  on: %v\n", hook.On)
				}
				fmt.Println()
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
