// Command senseplan plans a path across a partially sensed occupancy grid
// and prints (and optionally renders) the resulting smooth trajectory.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/senseplan/planner"
	"github.com/katalvlaran/senseplan/render"
	"github.com/katalvlaran/senseplan/scenario"
)

var (
	// Global flags
	verbose bool

	// plan flags
	scenarioFile string
	radius       float64
	samples      int
	smoothness   float64
	heuristic    string
	outFile      string

	// batch flags
	workers int

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "senseplan",
	Short: "Plan a smooth trajectory over a partially sensed occupancy grid",
	Long: `senseplan senses a raw obstacle map from the start cell, runs a weighted
best-first search to the goal and fits a smoothing spline through the path.
The trajectory stops at the first sample that enters unknown territory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan one scenario (the built-in reference layout by default)",
	Args:  cobra.NoArgs,
	RunE:  runPlan,
}

var batchCmd = &cobra.Command{
	Use:   "batch [scenario.yaml...]",
	Short: "Plan several scenario files in parallel",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBatch,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	planCmd.Flags().StringVarP(&scenarioFile, "scenario", "s", "", "YAML scenario file (default: reference layout)")
	planCmd.Flags().Float64VarP(&radius, "radius", "r", -1, "Override the sensing radius")
	planCmd.Flags().IntVarP(&samples, "samples", "n", 0, "Override the trajectory sample count")
	planCmd.Flags().Float64Var(&smoothness, "smoothness", -1, "Override the spline smoothing factor")
	planCmd.Flags().StringVar(&heuristic, "heuristic", "", "Override the heuristic (manhattan, octile, zero)")
	planCmd.Flags().StringVarP(&outFile, "out", "o", "", "Render the result to this file (.png, .svg, .pdf)")

	batchCmd.Flags().IntVarP(&workers, "workers", "w", 0, "Parallel workers (default: number of CPUs)")

	rootCmd.AddCommand(planCmd, batchCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func runPlan(cmd *cobra.Command, args []string) error {
	s := scenario.Reference()
	if scenarioFile != "" {
		var err error
		if s, err = scenario.Load(scenarioFile); err != nil {
			return err
		}
	}
	applyOverrides(cmd, &s)

	out, err := planner.New(planner.WithLogger(logger)).Plan(cmd.Context(), s)
	if err != nil {
		return err
	}
	printOutcome(cmd.OutOrStdout(), out)

	if outFile != "" {
		start, goal := s.Start.Cell(), s.Goal.Cell()
		scene := render.Scene{
			Title:      s.Name,
			Grid:       out.Grid,
			Path:       out.Path,
			Trajectory: out.Trajectory.Points,
			Start:      &start,
			Goal:       &goal,
		}
		if err := render.Save(scene, outFile, 0, 0); err != nil {
			return err
		}
		logger.Info("rendered", zap.String("file", outFile))
	}

	return nil
}

// applyOverrides copies explicitly set plan flags onto s.
func applyOverrides(cmd *cobra.Command, s *scenario.Scenario) {
	flags := cmd.Flags()
	if flags.Changed("radius") {
		s.Radius = radius
	}
	if flags.Changed("samples") {
		s.SampleCount = samples
	}
	if flags.Changed("smoothness") {
		v := smoothness
		s.Smoothness = &v
	}
	if flags.Changed("heuristic") {
		s.Heuristic = heuristic
	}
}

func runBatch(cmd *cobra.Command, args []string) error {
	batch := make([]scenario.Scenario, 0, len(args))
	for _, path := range args {
		s, err := scenario.Load(path)
		if err != nil {
			return err
		}
		batch = append(batch, s)
	}

	outs, err := planner.New(planner.WithLogger(logger)).PlanAll(cmd.Context(), batch, workers)
	if err != nil {
		return err
	}
	for _, o := range outs {
		printOutcome(cmd.OutOrStdout(), o)
	}

	return nil
}

func printOutcome(w io.Writer, o *planner.Outcome) {
	fmt.Fprintf(w, "%s: %d cells, cost %.2f, %d expanded\n", o.Scenario.Name, len(o.Path), o.Cost, o.Expanded)
	fmt.Fprintf(w, "  path: %v\n", o.Path)
	if o.Trajectory.Truncated {
		fmt.Fprintf(w, "  trajectory: %d samples, truncated at unknown cell %v\n", o.Trajectory.Len(), o.Trajectory.StopCell)
	} else {
		fmt.Fprintf(w, "  trajectory: %d samples, complete\n", o.Trajectory.Len())
	}
}
