package main

import (
	"errors"
	"fmt"

	"github.com/on-the-ground/bounded_go/bounded"
	"github.com/spf13/cobra"
)

func newFunctionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "function",
		Short: "Call a stateful bounded function, move it, and call it again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			total := 0
			var sum bounded.Function[int, int, bounded.Bytes64]
			if err := sum.Set(func(x int) int {
				total += x
				return total
			}); err != nil {
				return err
			}

			fmt.Fprintln(out, sum.MustCall(1))
			fmt.Fprintln(out, sum.MustCall(2))

			var moved bounded.Function[int, int, bounded.Bytes64]
			moved.MoveFrom(&sum)
			fmt.Fprintln(out, moved.MustCall(5))

			if _, err := sum.Call(1); errors.Is(err, bounded.ErrEmptyFunction) {
				fmt.Fprintln(out, "moved-from:", err)
			}
			moved.Destroy()
			return nil
		},
	}
}
