// Command shgat-bench drives a routing.Engine through its public API
// only, loading a fixture snapshot from disk — a runnable analogue of
// this codebase's examples/ directory (score, route, train subcommands).
//
// Usage:
//
//	shgat-bench score --fixture testdata/fixture.json --intent testdata/intent.json
//	shgat-bench route --fixture testdata/fixture.json --source fs:read --target json:parse
//	shgat-bench route --fixture testdata/fixture.json --intent testdata/intent.json
//	shgat-bench train --fixture testdata/fixture.json --epochs 20 --batch-size 4
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
