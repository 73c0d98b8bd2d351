package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/brand-d/tailorshop/internal/config"
	"github.com/brand-d/tailorshop/internal/engine"
	"github.com/brand-d/tailorshop/internal/metrics"
	"github.com/brand-d/tailorshop/internal/scenario"
	"github.com/brand-d/tailorshop/internal/storage"
	"github.com/brand-d/tailorshop/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	periods    int
)

func main() {
	setupLogging()

	rootCmd := &cobra.Command{
		Use:   "tailorshop",
		Short: "discrete-time tailorshop business simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive TUI when no command is given.
			cfg := config.DefaultConfig()
			return viz.Run(engine.New(cfg.Params), cfg.Opening)
		},
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".tailorshop", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a scripted scenario and save the result",
		RunE:  runScenario,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "scenario config file (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use a preset scenario")
	runCmd.Flags().IntVar(&periods, "periods", 0, "override number of periods")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run history",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run history to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available scenario presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func setupLogging() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func loadScenarioConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if periods > 0 {
		cfg.Periods = periods
	}
	return cfg, nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenarioConfig()
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	log.Info().Str("scenario", cfg.Name).Int("periods", cfg.Periods).Msg("running scenario")

	sc := scenario.New(cfg, metrics.Defaults())
	result, err := sc.Run()
	if err != nil {
		return err
	}

	for _, s := range result.History {
		for _, w := range s.Warnings {
			log.Warn().Int("period", s.Period).Str("code", string(w.Code)).Msg(w.Message)
		}
	}

	runID, err := st.Save(result.Name, result.History, result.Metrics, result.Warnings)
	if err != nil {
		return err
	}

	log.Info().Str("run_id", runID).Int("warnings", result.Warnings).Msg("scenario complete")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for name, val := range result.Metrics {
		fmt.Fprintf(w, "%s\t%.2f\n", name, val)
	}
	return w.Flush()
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
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tPERIODS\tWARNINGS\tPROFIT")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%.0f\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Periods,
			run.Warnings,
			run.Metrics["cumulative_profit"],
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	header, rows, err := st.LoadHistory(args[0])
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n", meta.Scenario)
	fmt.Printf("periods: %d\n\n", meta.Periods)

	// column 0 is the period index itself
	for col := 1; col < len(header); col++ {
		data := make([]float64, len(rows))
		for i := range rows {
			data[i] = rows[i][col]
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(8),
			asciigraph.Width(80),
			asciigraph.Caption(header[col]+" by period"),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	header, rows, err := st.LoadHistory(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, header, rows)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	header, rows, err := st.LoadHistory(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		record := make([]string, len(row))
		for j, v := range row {
			record[j] = strconv.FormatFloat(v, 'f', 4, 64)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}
