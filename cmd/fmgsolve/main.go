// Command fmgsolve runs the 1-D Full Multigrid solver from the command line,
// prints the convergence summary and optionally writes the solved field and
// diagnostic plots.
//
//	fmgsolve solve --cycles 200 --field out.txt --plot hist.png
//	fmgsolve show out.txt
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fmgsolve:", err)
		os.Exit(1)
	}
}
