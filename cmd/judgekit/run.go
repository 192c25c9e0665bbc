package main

import (
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/judgekit/logging"
	"github.com/katalvlaran/judgekit/problems"
)

func newRunCmd() *cobra.Command {
	var input, output string
	cmd := &cobra.Command{
		Use:   "run <problem-id>",
		Short: "Solve one problem, reading stdin and writing stdout",
		Example: `  judgekit run 10986 < sending-email.in
  judgekit run 1112 --input maze.in --output maze.out`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: problems.IDs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProblem(cmd, args[0], input, output)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "read input from this file instead of stdin")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write answers to this file instead of stdout")
	return cmd
}

func runProblem(cmd *cobra.Command, id, input, output string) (err error) {
	var r io.Reader = cmd.InOrStdin()
	if input != "" {
		f, ferr := os.Open(input)
		if ferr != nil {
			return ferr
		}
		defer f.Close()
		r = f
	}

	var w io.Writer = cmd.OutOrStdout()
	if output != "" {
		f, ferr := os.Create(output)
		if ferr != nil {
			return ferr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}

	start := time.Now()
	n, err := problems.Run(id, r, w)
	if err != nil {
		logging.Errorf("problem %s failed after %s of input: %v\n", id, humanize.Bytes(uint64(n)), err)
		return err
	}
	if n == 0 {
		logging.Warningf("problem %s: input was empty, nothing solved\n", id)
	}
	logging.Infof("problem %s: solved %s of input in %s\n", id, humanize.Bytes(uint64(n)), time.Since(start))
	return nil
}
