package main

import (
	"fmt"
	"strconv"

	"github.com/on-the-ground/bounded_go/bounded"
	"github.com/on-the-ground/bounded_go/dispatch"
	"github.com/on-the-ground/bounded_go/internal/configkeys"
	"github.com/spf13/cobra"
)

type operation = bounded.Function[int, int, bounded.Bytes32]

func newDispatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dispatch <op> <n>",
		Short: "Invoke a named operation (double, square, negate) from a callback table",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[1], err)
			}

			table := dispatch.NewTable[int, int, bounded.Bytes32](dispatch.NewConfig(
				a.cfg.GetInt(configkeys.ConfigDispatchSlots),
				a.logger,
			))
			defer table.Close()

			ops := map[string]func(int) int{
				"double": func(x int) int { return 2 * x },
				"square": func(x int) int { return x * x },
				"negate": func(x int) int { return -x },
			}
			for name, op := range ops {
				var f operation
				if err := f.Set(op); err != nil {
					return err
				}
				if _, err := table.Register(name, &f); err != nil {
					return err
				}
			}

			res, err := table.Invoke(args[0], n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
}
