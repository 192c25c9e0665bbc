package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/judgekit/problems"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the problems judgekit can solve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, p := range problems.All() {
				if _, err := fmt.Fprintf(out, "%-6s %s\n", p.ID, p.Title); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
