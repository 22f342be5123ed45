package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/edgaromeroc/bioslurry-simulator/internal/analysis"
	"github.com/edgaromeroc/bioslurry-simulator/internal/config"
	"github.com/edgaromeroc/bioslurry-simulator/internal/export"
	"github.com/edgaromeroc/bioslurry-simulator/internal/metrics"
	"github.com/edgaromeroc/bioslurry-simulator/internal/reactor"
	"github.com/edgaromeroc/bioslurry-simulator/internal/sim"
	"github.com/edgaromeroc/bioslurry-simulator/internal/storage"
	"github.com/edgaromeroc/bioslurry-simulator/internal/study"
	"github.com/edgaromeroc/bioslurry-simulator/internal/viz"
	"github.com/guptarohit/asciigraph"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	logLevel   string
	configFile string
	preset     string
	column     string
	chartOut   string
	saveRuns   bool
	sweepParam string
	sweepMin   float64
	sweepMax   float64
	sweepSteps int
)

// main is the entry point for the bioslurry CLI; it registers commands and
// flags and executes the root command.
// It exits the process with status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "bioslurry",
		Short: "glyphosate bioslurry reactor simulation lab",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level: %s", logLevel)
			}
			logrus.SetLevel(level)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".bioslurry", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "log level (debug|info|warn|error)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a reactor simulation and store the result",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	addParamFlags(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run time series",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&column, "column", "", "plot a single series")

	metricsCmd := &cobra.Command{
		Use:   "metrics [run_id]",
		Short: "show treatability metrics for a run",
		Args:  cobra.ExactArgs(1),
		RunE:  showMetrics,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "fit apparent first-order kinetics",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	chartCmd := &cobra.Command{
		Use:   "chart [run_id]",
		Short: "render a PNG or SVG chart of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  chartRun,
	}
	chartCmd.Flags().StringVar(&chartOut, "out", "", "output file (.png or .svg)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "simulate and play the run back in the terminal",
		Args:  cobra.NoArgs,
		RunE:  watchRun,
	}
	addParamFlags(watchCmd)

	compareCmd := &cobra.Command{
		Use:   "compare [preset ...]",
		Short: "run presets side by side",
		Args:  cobra.ArbitraryArgs,
		RunE:  comparePresets,
	}

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file.yaml]",
		Short: "run a scripted scenario of named runs",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	scenarioCmd.Flags().BoolVar(&saveRuns, "save", false, "store each run")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep one parameter across a range",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	addParamFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepParam, "param", "k_max", "parameter to sweep")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0.02, "lowest value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 0.2, "highest value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 8, "number of values")

	paramsCmd := &cobra.Command{
		Use:   "params",
		Short: "list tunable parameters",
		RunE:  listParams,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDAYS\tINOCULUM\tK_MAX\tK_D")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name).Params()
				fmt.Fprintf(w, "%s\t%.1f\t%.1f\t%.2f\t%.0f\n",
					name, p.Duration/24, p.Biomass0, p.KMax, p.KD)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, metricsCmd, analyzeCmd, chartCmd, exportCSVCmd, exportJSONCmd, watchCmd, compareCmd, scenarioCmd, sweepCmd, paramsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addParamFlags registers one float flag per tunable parameter, plus the
// config file and preset selectors. Flag names match the keys accepted by
// reactor.Params.SetParam.
func addParamFlags(cmd *cobra.Command) {
	defaults := reactor.Default().GetParams()
	for _, spec := range config.Surface() {
		usage := strings.ToLower(spec.Label)
		if spec.Unit != "" {
			usage = fmt.Sprintf("%s (%s)", usage, spec.Unit)
		}
		cmd.Flags().Float64(spec.Key, defaults[spec.Key], usage)
	}
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveParams builds the parameter set for a run: defaults, then preset,
// then config file, then any explicitly set flags.
func resolveParams(cmd *cobra.Command) (reactor.Params, error) {
	p := reactor.Default()

	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return p, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		p = cfg.Params()
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return p, fmt.Errorf("failed to load config: %w", err)
		}
		p = cfg.Params()
	}

	for _, spec := range config.Surface() {
		if !cmd.Flags().Changed(spec.Key) {
			continue
		}
		value, err := cmd.Flags().GetFloat64(spec.Key)
		if err != nil {
			return p, err
		}
		if err := p.SetParam(spec.Key, value); err != nil {
			return p, err
		}
	}

	return p, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	p, err := resolveParams(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"dt":       p.Dt,
		"duration": p.Duration,
		"aqueous0": p.Aqueous0,
		"biomass0": p.Biomass0,
	}).Debug("starting simulation")

	fmt.Println("running bioslurry simulation...")
	start := time.Now()

	traj, err := sim.Simulate(p)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	summary, err := metrics.Extract(traj, p)
	if err != nil {
		return err
	}

	runID, err := st.Save(p, traj, summary)
	if err != nil {
		return err
	}
	logrus.WithField("run_id", runID).Info("run saved")

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", len(traj))
	fmt.Println()
	printSummary(summary)

	return nil
}

func printSummary(s *metrics.Summary) {
	fmt.Println("metrics:")
	fmt.Printf("  removal day 3:   %6.2f %%  (residual %.3f mg/L)\n", s.RemovalDay3, s.ResidualDay3)
	fmt.Printf("  removal day 7:   %6.2f %%  (residual %.3f mg/L)\n", s.RemovalDay7, s.ResidualDay7)
	fmt.Printf("  removal day 14:  %6.2f %%  (residual %.3f mg/L)\n", s.RemovalDay14, s.ResidualDay14)
	if s.T90Reached {
		fmt.Printf("  t90:             %.2f days\n", s.T90Days)
	} else {
		fmt.Println("  t90:             not reached")
	}
	fmt.Printf("  peak biomass:    %.3f mg/L (day %.2f)\n", s.PeakBiomass, s.PeakBiomassDay)
	fmt.Printf("  peak AMPA:       %.3f mg/L (day %.2f)\n", s.PeakAMPA, s.PeakAMPADay)
	fmt.Printf("  final removal:   %6.2f %%\n", s.FinalRemoval)
	fmt.Printf("  final AMPA:      %.3f mg/L\n", s.FinalAMPA)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCREATED\tDAYS\tDT\tSTEPS\tREMOVAL")

	for _, run := range runs {
		removal := "-"
		if run.Summary != nil {
			removal = fmt.Sprintf("%.1f%%", run.Summary.FinalRemoval)
		}
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%.2fh\t%d\t%s\n",
			run.ID,
			run.CreatedAt.Format("2006-01-02 15:04:05"),
			run.Params.Duration/24,
			run.Params.Dt,
			run.Steps,
			removal,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	traj, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}

	if len(traj) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d over %.1f days\n\n", len(traj), meta.Params.Duration/24)

	captions := map[string]string{
		"aqueous": "aqueous glyphosate (mg/L)",
		"sorbed":  "sorbed glyphosate (mg/kg)",
		"ampa":    "AMPA (mg/L)",
		"biomass": "biomass (mg/L)",
		"total":   "total glyphosate (mg/L)",
		"removal": "removal (%)",
	}

	names := sim.Columns()
	if column != "" {
		names = []string{column}
	}

	for _, name := range names {
		data, ok := traj.Column(name)
		if !ok {
			return fmt.Errorf("unknown column: %s (choose from %v)", name, sim.Columns())
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(captions[name]),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func showMetrics(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	summary := meta.Summary
	if summary == nil {
		traj, err := st.LoadTrajectory(runID)
		if err != nil {
			return err
		}
		summary, err = metrics.Extract(traj, meta.Params)
		if err != nil {
			return err
		}
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("initial mass: %.3f mg/L over %.1f days\n\n", summary.InitialMass, summary.DurationDays)
	printSummary(summary)

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	traj, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}

	if len(traj) == 0 {
		return fmt.Errorf("no data")
	}

	fmt.Printf("kinetic analysis: %s\n\n", runID)

	total, _ := traj.Column("total")
	graph := asciigraph.Plot(total,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("total glyphosate (mg/L)"),
	)
	fmt.Println(graph)
	fmt.Println()

	fit, err := analysis.FitFirstOrder(traj)
	if err != nil {
		return err
	}

	fmt.Printf("first-order fit over %d samples\n", fit.Samples)
	if fit.RatePerDay > 0 {
		fmt.Printf("  k_obs:     %.4f 1/day\n", fit.RatePerDay)
		fmt.Printf("  half-life: %.2f days\n", fit.HalfLifeDays)
	} else {
		fmt.Printf("  k_obs:     %.4f 1/day (no net decay)\n", fit.RatePerDay)
	}
	fmt.Printf("  r2:        %.4f\n", fit.R2)

	return nil
}

func chartRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	traj, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}

	out := chartOut
	if out == "" {
		out = runID + ".png"
	}

	if err := export.RenderChart(out, traj); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", out)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	if len(traj) == 0 {
		return fmt.Errorf("no data to export")
	}

	return export.WriteCSV(os.Stdout, traj)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	traj, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}

	return export.WriteJSON(os.Stdout, export.Document{
		ID:         meta.ID,
		Params:     meta.Params,
		Steps:      meta.Steps,
		Summary:    meta.Summary,
		Trajectory: traj,
	})
}

func watchRun(cmd *cobra.Command, args []string) error {
	p, err := resolveParams(cmd)
	if err != nil {
		return err
	}

	traj, err := sim.Simulate(p)
	if err != nil {
		return err
	}

	summary, err := metrics.Extract(traj, p)
	if err != nil {
		return err
	}

	m := viz.NewModel(p, traj, summary)
	prog := tea.NewProgram(m)
	if _, err := prog.Run(); err != nil {
		return err
	}
	return nil
}

func comparePresets(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		names = config.ListPresets()
	}

	runs := make([]sim.BatchRun, 0, len(names))
	for _, name := range names {
		cfg := config.GetPreset(name)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
		}
		runs = append(runs, sim.BatchRun{Label: name, Params: cfg.Params()})
	}

	fmt.Printf("comparing %d presets\n\n", len(runs))
	results := sim.RunBatch(runs)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tDAYS\tREMOVAL\tT90\tPEAK AMPA\tPEAK BIOMASS")

	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", res.Label, res.Err)
			continue
		}

		s, err := metrics.Extract(res.Trajectory, res.Params)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", res.Label, err)
			continue
		}

		t90 := "-"
		if s.T90Reached {
			t90 = fmt.Sprintf("%.1fd", s.T90Days)
		}
		fmt.Fprintf(w, "%s\t%.1f\t%.1f%%\t%s\t%.2f\t%.2f\n",
			res.Label, s.DurationDays, s.FinalRemoval, t90, s.PeakAMPA, s.PeakBiomass)
	}

	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println("\nremoval curves:")
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		removal, _ := res.Trajectory.Column("removal")
		final := 0.0
		if len(removal) > 0 {
			final = removal[len(removal)-1]
		}
		fmt.Printf("  %-16s %s %5.1f%%\n", res.Label, viz.SparklineChart(removal, 40), final)
	}

	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := study.LoadScenario(args[0])
	if err != nil {
		return err
	}

	batch, err := sc.BatchRuns()
	if err != nil {
		return err
	}

	if sc.Name != "" {
		fmt.Printf("scenario: %s\n", sc.Name)
	}
	if sc.Description != "" {
		fmt.Println(sc.Description)
	}
	fmt.Printf("running %d runs...\n\n", len(batch))

	results := sim.RunBatch(batch)

	var st *storage.Store
	if saveRuns {
		st = storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tREMOVAL\tT90\tPEAK AMPA\tID")

	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", res.Label, res.Err)
			continue
		}

		summary, err := metrics.Extract(res.Trajectory, res.Params)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", res.Label, err)
			continue
		}

		id := "-"
		if saveRuns {
			id, err = st.Save(res.Params, res.Trajectory, summary)
			if err != nil {
				return err
			}
		}

		t90 := "-"
		if summary.T90Reached {
			t90 = fmt.Sprintf("%.1fd", summary.T90Days)
		}
		fmt.Fprintf(w, "%s\t%.1f%%\t%s\t%.2f\t%s\n",
			res.Label, summary.FinalRemoval, t90, summary.PeakAMPA, id)
	}

	return w.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	base, err := resolveParams(cmd)
	if err != nil {
		return err
	}

	points, err := study.RunSweep(study.Sweep{
		Param: sweepParam,
		Min:   sweepMin,
		Max:   sweepMax,
		Steps: sweepSteps,
		Base:  base,
	})
	if err != nil {
		return err
	}

	fmt.Printf("sweeping %s from %g to %g in %d steps\n\n", sweepParam, sweepMin, sweepMax, sweepSteps)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VALUE\tREMOVAL\tT90\tPEAK AMPA")

	finals := make([]float64, 0, len(points))
	for _, pt := range points {
		if pt.Err != nil {
			fmt.Fprintf(w, "%g\terror: %v\n", pt.Value, pt.Err)
			continue
		}

		t90 := "-"
		if pt.Summary.T90Reached {
			t90 = fmt.Sprintf("%.1fd", pt.Summary.T90Days)
		}
		fmt.Fprintf(w, "%g\t%.1f%%\t%s\t%.2f\n", pt.Value, pt.Summary.FinalRemoval, t90, pt.Summary.PeakAMPA)
		finals = append(finals, pt.Summary.FinalRemoval)
	}

	if err := w.Flush(); err != nil {
		return err
	}

	if len(finals) >= 2 {
		fmt.Println()
		graph := asciigraph.Plot(finals,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption(fmt.Sprintf("final removal (%%) vs %s", sweepParam)),
		)
		fmt.Println(graph)
	}

	return nil
}

func listParams(cmd *cobra.Command, args []string) error {
	defaults := reactor.Default().GetParams()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PARAM\tDEFAULT\tUNIT\tRANGE\tDESCRIPTION")
	for _, spec := range config.Surface() {
		fmt.Fprintf(w, "%s\t%g\t%s\t%g-%g\t%s\n",
			spec.Key, defaults[spec.Key], spec.Unit, spec.Min, spec.Max, spec.Label)
	}
	return w.Flush()
}
