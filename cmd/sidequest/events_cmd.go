package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sidequest/sidequest/internal/eventbus"
	"github.com/sidequest/sidequest/internal/output"
)

func newEventsCmd() *cobra.Command {
	var (
		replay   bool
		bufferSz int
	)

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Stream lifecycle events from the event bus",
		GroupID: GroupUtility,
		Args:    cobra.NoArgs,
		Long: `Subscribe to the in-process event bus and print each worktree.created,
worktree.removed, branch.classified, and detection.issue event as it's
published, until interrupted. With --replay, a ring-buffer recorder also
subscribes when the command starts, and on exit its captured history is
printed after a "--- replay ---" line.`,
		Example: `  sidequest events
  sidequest events --replay`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			bus := eventbus.FromContext(ctx)
			if bus == nil {
				return fmt.Errorf("event bus unavailable")
			}

			var recorder *eventbus.Recorder
			if replay {
				recorder = eventbus.NewRecorder(bus, bufferSz)
				defer recorder.Close()
			}

			ch, unsubscribe := bus.Subscribe(bufferSz)
			defer unsubscribe()

			out.Println("Listening for events (ctrl-c to stop)...")

			for {
				select {
				case <-ctx.Done():
					if recorder != nil {
						out.Println("--- replay ---")
						for _, ev := range recorder.Replay() {
							printEvent(out, ev)
						}
					}
					return nil
				case ev, ok := <-ch:
					if !ok {
						return nil
					}
					printEvent(out, ev)
				}
			}
		},
	}

	cmd.Flags().BoolVar(&replay, "replay", false, "Also print the ring-buffer recorder's history on exit")
	cmd.Flags().IntVar(&bufferSz, "buffer", 64, "Subscriber/recorder channel buffer size")

	return cmd
}

func printEvent(out *output.Printer, ev eventbus.Event) {
	out.Printf("[%s] %+v\n", ev.Kind, ev.Payload)
}
