// Package flows provides command-specific wizard implementations.
//
// Each flow is a complete interactive wizard for a specific sidequest command.
// Flows use the framework and steps packages to build multi-step
// interactive experiences.
//
// Available flows:
//   - [CdInteractive]: fuzzy-searchable worktree picker used by "sidequest open"
package flows
