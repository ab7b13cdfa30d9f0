package cmd

import (
	"fmt"
	"log/slog"

	"github.com/ArubikU/stressmark/internal/bench"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runCmd represents the run command.
var runCmd = &cobra.Command{
	Use:   "run [workload...]",
	Short: "Run benchmark workloads",
	Long: `Run the named benchmark workloads, or every registered workload when
none are named. Each workload prints its computed result values and the
elapsed wall-clock time of the measurement.

Examples:
  stressmark run
  stressmark run loop fibonacci
  stressmark run map --iterations 5 --format json`,
	// A failed workload is already reported in the rendered results;
	// re-printing usage would bury it.
	SilenceUsage: true,
	RunE:         runWorkloads,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntP("iterations", "n", 1,
		"number of repetitions of each workload inside one timed measurement")
	runCmd.Flags().StringP("format", "f", "text", "output format (text, json)")

	_ = viper.BindPFlag("run.iterations", runCmd.Flags().Lookup("iterations"))
	_ = viper.BindPFlag("output.format", runCmd.Flags().Lookup("format"))
}

func runWorkloads(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	suite := bench.NewDefaultSuite()

	names := args
	if len(names) == 0 {
		names = suite.Names()
	}

	slog.Info("running workloads",
		slog.Int("count", len(names)),
		slog.Int("iterations", cfg.Run.Iterations))

	results := make([]bench.Result, 0, len(names))
	failures := 0
	for _, name := range names {
		result := suite.Run(name, cfg.Run.Iterations)
		if result.Err != nil {
			failures++
			slog.Error("workload failed",
				slog.String("workload", name),
				slog.Any("error", result.Err))
		} else {
			slog.Debug("workload finished", slog.String("summary", result.String()))
		}
		results = append(results, result)
	}

	out := cmd.OutOrStdout()

	var err error
	switch cfg.Output.Format {
	case "json":
		err = bench.WriteJSON(out, results)
	default:
		err = bench.WriteText(out, results)
	}
	if err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d workloads failed", failures, len(names))
	}
	return nil
}
