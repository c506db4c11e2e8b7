// Command boundeddemo walks through the storage and callable types of
// bounded_go and prints what happens at each step.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := execute(newRootCmd()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
