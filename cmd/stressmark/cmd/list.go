package cmd

import (
	"fmt"

	"github.com/ArubikU/stressmark/internal/bench"
	"github.com/spf13/cobra"
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available benchmark workloads",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, w := range bench.NewDefaultSuite().Workloads() {
			_, _ = fmt.Fprintf(out, "%-12s %s\n", w.Name, w.Description)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
