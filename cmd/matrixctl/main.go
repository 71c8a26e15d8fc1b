// Command matrixctl computes Matrix of Destiny readings from the terminal.
// Access is checked against the same HTTP endpoint the web client uses.
package main

import (
	"fmt"
	"os"
)

func main() {
	root := newRootCmd(openApp)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
