// Package git provides git operations via shell commands.
//
// All operations use [os/exec.Command] to call the git CLI directly rather than
// using Go git libraries. This approach is simpler, more reliable, and ensures
// compatibility with user configurations (SSH keys, credential helpers, aliases).
//
// # Worktree Operations
//
// Core worktree management:
//
//   - [CreateWorktree]: Create worktrees for new or existing branches
//   - [RemoveWorktree]: Remove worktrees with optional force flag
//   - [PruneWorktrees]: Remove stale administrative files for deleted worktrees
//   - [ListWorktreesFromRepo]: List worktrees via a single porcelain call
//
// # Repository and Branch Queries
//
//   - [GetOriginURL], [GetRepoNameFrom], [GetRepoDisplayName]: Repository identity
//   - [GetCurrentBranch], [GetDefaultBranch]: Branch queries
//   - [LocalBranchExists], [RemoteBranchExists], [RefExists]: Existence checks
//   - [ListLocalBranches], [ListRemoteBranches], [ListRemotes]: Enumeration
//   - [GetUpstreamBranch], [SetUpstreamBranch]: Tracking branch configuration
//   - [ParseRemoteRef]: Split a ref into remote and branch components
//   - [DeleteLocalBranch]: Delete a local branch
//   - [DetectRepoType], [GetGitDir]: Regular vs. bare repository layout
//   - [GetMainRepoPath], [GetCurrentRepoMainPathFrom]: Resolve the main repo from a worktree
package git
