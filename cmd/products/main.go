// products is the product categories browser: an interactive terminal
// view, a one-shot listing and a read-only JSON server over the same
// filtered catalog.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
