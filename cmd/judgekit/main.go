// Command judgekit runs online-judge solutions as stdin to stdout filters.
//
// Usage:
//
//	judgekit run <problem-id> [--input file] [--output file]
//	judgekit list
//
// Global flags --config, --log-file and --verbose control diagnostics,
// which never mix with judge answers on stdout.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/judgekit/logging"
)

func main() {
	err := newRootCmd().Execute()
	logging.Shutdown()
	if err != nil {
		fmt.Fprintln(os.Stderr, "judgekit:", err)
		os.Exit(1)
	}
}
