package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/gesturefx/internal/config"
	"github.com/san-kum/gesturefx/internal/fx"
	"github.com/san-kum/gesturefx/internal/scenario"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	themeName  string
	seed       int64

	// live and gui
	liveListen  string
	guiListen   string
	serveListen string
	palette     string
	logFile     string
	winWidth    int
	winHeight   int

	// headless runs
	saveRun     bool
	recordOut   string
	snapshotOut string
	exportOut   string
	presetCSV   string
	trials      int
	metric      string
	plotColumn  string
	fftColumn   string
	benchSecs   float64
	realtime    bool
)

// main registers the commands; with no subcommand the terminal live view
// starts.
func main() {
	rootCmd := &cobra.Command{
		Use:   "gesturefx",
		Short: "hand gesture driven particle effects",
		RunE:  runLive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".gesturefx", "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&themeName, "theme", "", "starting effect (jellyfish, snow, rain)")
	pf.Int64Var(&seed, "seed", 0, "random seed, 0 for time based")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "terminal live view, the mouse is the hand",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&liveListen, "listen", "", "also accept landmark frames on this address")
	liveCmd.Flags().StringVar(&palette, "palette", "deep", "panel palette")
	liveCmd.Flags().StringVar(&logFile, "log", "gesturefx.log", "log file while the view is open")
	rootCmd.Flags().AddFlagSet(liveCmd.Flags())

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "desktop window, the mouse is the hand",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
	guiCmd.Flags().StringVar(&guiListen, "listen", "", "also accept landmark frames on this address")
	guiCmd.Flags().IntVar(&winWidth, "width", 1280, "window width")
	guiCmd.Flags().IntVar(&winHeight, "height", 720, "window height")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "headless engine fed by the landmark ingest server",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&serveListen, "listen", ":8750", "listen address")
	serveCmd.Flags().IntVar(&winWidth, "width", 1280, "virtual surface width")
	serveCmd.Flags().IntVar(&winHeight, "height", 720, "virtual surface height")

	replayCmd := &cobra.Command{
		Use:   "replay [frames.json]",
		Short: "feed a recorded landmark stream through a headless engine",
		Args:  cobra.ExactArgs(1),
		RunE:  runReplay,
	}
	replayCmd.Flags().BoolVar(&realtime, "realtime", false, "honour frame timestamps")
	replayCmd.Flags().IntVar(&winWidth, "width", 1280, "virtual surface width")
	replayCmd.Flags().IntVar(&winHeight, "height", 720, "virtual surface height")

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run a scenario headless and store its timeline",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().BoolVar(&saveRun, "save", true, "store the run in the data directory")

	recordCmd := &cobra.Command{
		Use:   "record [scenario]",
		Short: "write the landmark frames of a scenario as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  recordScenario,
	}
	recordCmd.Flags().StringVarP(&recordOut, "out", "o", "", "output file, stdout when empty")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [scenario]",
		Short: "render the last frame of a scenario to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  snapshotScenario,
	}
	snapshotCmd.Flags().StringVarP(&snapshotOut, "out", "o", "snapshot.svg", "output file")

	sweepCmd := &cobra.Command{
		Use:   "sweep [scenario]",
		Short: "run a scenario under several presets",
		Args:  cobra.ExactArgs(1),
		RunE:  sweepScenario,
	}
	sweepCmd.Flags().StringVar(&presetCSV, "presets", strings.Join(config.ListPresets(), ","), "comma separated presets")

	trialsCmd := &cobra.Command{
		Use:   "trials [scenario]",
		Short: "run a scenario with consecutive seeds",
		Args:  cobra.ExactArgs(1),
		RunE:  trialScenario,
	}
	trialsCmd.Flags().IntVarP(&trials, "count", "n", 10, "number of trials")
	trialsCmd.Flags().StringVar(&metric, "metric", "peak_entities", "metric to summarize")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark every effect under load",
		Args:  cobra.NoArgs,
		RunE:  benchEffects,
	}
	benchCmd.Flags().Float64Var(&benchSecs, "time", 10, "simulated seconds per effect")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a run timeline",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&plotColumn, "column", "entities", "timeline column")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of a run timeline",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().StringVar(&fftColumn, "column", "y", "timeline column")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a run and its timeline as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file, stdout when empty")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	scenariosCmd := &cobra.Command{
		Use:   "scenarios",
		Short: "list built-in scenarios",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range scenario.Names() {
				sc, _ := scenario.Get(name)
				fmt.Printf("  %-10s %s\n", name, sc.Description)
			}
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the effective configuration as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return config.Save(args[0], cfg)
		},
	}

	rootCmd.AddCommand(liveCmd, guiCmd, serveCmd, replayCmd, runCmd, recordCmd, snapshotCmd,
		sweepCmd, trialsCmd, benchCmd, listCmd, plotCmd, analyzeCmd, exportCmd, presetsCmd, scenariosCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig applies, in order, the defaults, --preset, --config and the
// --theme and --seed flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p, err := config.GetPreset(preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}
	if configFile != "" {
		c, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
	}
	if themeName != "" {
		t, err := fx.ParseTheme(themeName)
		if err != nil {
			return nil, err
		}
		cfg.Theme = t
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	return cfg, nil
}

// loadScenario accepts a built-in name or a YAML file path.
func loadScenario(arg string) (*scenario.Scenario, error) {
	if sc, err := scenario.Get(arg); err == nil {
		return sc, nil
	}
	if _, err := os.Stat(arg); err != nil {
		return nil, fmt.Errorf("unknown scenario %q (built-in: %v)", arg, scenario.Names())
	}
	return scenario.Load(arg)
}
