package main

import (
	"fmt"
	"io"

	"github.com/on-the-ground/bounded_go/storage"
	"github.com/spf13/cobra"
)

// node is the base contract of a three-level embedding chain a <- b <- c.
// Each level announces its construction and destruction.
type node interface {
	storage.Destroyer
	Level() string
}

type levelA struct {
	out io.Writer
}

func newLevelA(out io.Writer) levelA {
	fmt.Fprintln(out, "A")
	return levelA{out: out}
}

func (x *levelA) Level() string { return "A" }
func (x *levelA) Destroy()      { fmt.Fprintln(x.out, "~A") }

type levelB struct {
	levelA
}

func newLevelB(out io.Writer) levelB {
	base := newLevelA(out)
	fmt.Fprintln(out, "B")
	return levelB{levelA: base}
}

func (x *levelB) Level() string { return "B" }

func (x *levelB) Destroy() {
	fmt.Fprintln(x.out, "~B")
	x.levelA.Destroy()
}

type levelC struct {
	levelB
}

func newLevelC(out io.Writer) levelC {
	base := newLevelB(out)
	fmt.Fprintln(out, "C")
	return levelC{levelB: base}
}

func (x *levelC) Level() string { return "C" }

func (x *levelC) Destroy() {
	fmt.Fprintln(x.out, "~C")
	x.levelB.Destroy()
}

func newPolyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "poly",
		Short: "Store the most derived level in polymorphic storage and destroy it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var cell storage.Poly[node, storage.Bytes16]
			if err := storage.Emplace(&cell, newLevelC(out)); err != nil {
				return err
			}
			fmt.Fprintln(out, "stored level", cell.Get().Level())
			cell.Destroy()
			return nil
		},
	}
}
