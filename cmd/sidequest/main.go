// Command sidequest manages git worktrees: scoped creation, enriched merge
// and ahead/behind status, batch cleanup of orphaned branches, and a local
// event feed for editor/CI integrations to watch.
package main

func main() {
	Execute()
}
