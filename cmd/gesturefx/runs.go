package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/gesturefx/internal/analysis"
	"github.com/san-kum/gesturefx/internal/fx"
	"github.com/san-kum/gesturefx/internal/landmarks"
	"github.com/san-kum/gesturefx/internal/metrics"
	"github.com/san-kum/gesturefx/internal/scenario"
	"github.com/san-kum/gesturefx/internal/storage"
	"github.com/san-kum/gesturefx/internal/surface"
	"github.com/spf13/cobra"
)

func printMetrics(values map[string]float64) {
	fmt.Println("\nmetrics:")
	for _, name := range metrics.Names(values) {
		fmt.Printf("  %s: %.4f\n", name, values[name])
	}
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sc, err := loadScenario(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("running %s scenario...\n", sc.Name)
	start := time.Now()
	res, err := scenario.Run(cmd.Context(), sc, cfg, scenario.Options{Timeline: saveRun})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("completed in %v\n", elapsed)
	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(preset, res)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}
	fmt.Printf("ticks: %d\n", res.Ticks)
	fmt.Printf("final effect: %s\n", res.Theme)
	printMetrics(res.Metrics)
	return nil
}

func recordScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sc, err := loadScenario(args[0])
	if err != nil {
		return err
	}
	if err := sc.Normalize(); err != nil {
		return err
	}

	step := 1 / float64(cfg.Loop.DetectFPS)
	frames := make([]landmarks.Frame, 0, int(sc.Duration/step)+1)
	for i := 0; float64(i)*step <= sc.Duration; i++ {
		frames = append(frames, sc.Frame(float64(i)*step))
	}
	for _, k := range sc.Keyframes {
		if k.Select != nil {
			fmt.Fprintf(os.Stderr, "note: theme selection at %.1fs is not part of the landmark stream\n", k.At)
		}
	}

	var w io.Writer = os.Stdout
	if recordOut != "" {
		f, err := os.Create(recordOut)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return landmarks.Write(w, frames)
}

func snapshotScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sc, err := loadScenario(args[0])
	if err != nil {
		return err
	}
	if err := sc.Normalize(); err != nil {
		return err
	}

	svg := surface.NewSVG(float64(sc.Width), float64(sc.Height))
	res, err := scenario.Run(cmd.Context(), sc, cfg, scenario.Options{Final: svg})
	if err != nil {
		return err
	}
	if err := svg.WriteFile(snapshotOut); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%s after %d ticks)\n", snapshotOut, res.Theme, res.Ticks)
	return nil
}

func sweepScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sc, err := loadScenario(args[0])
	if err != nil {
		return err
	}

	presets := strings.Split(presetCSV, ",")
	results, err := scenario.Sweep(cmd.Context(), sc, cfg, presets)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return nil
	}

	names := metrics.Names(results[0].Metrics)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "PRESET\tTICKS\t%s\n", strings.ToUpper(strings.Join(names, "\t")))
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d", r.Preset, r.Ticks)
		for _, n := range names {
			fmt.Fprintf(w, "\t%.2f", r.Metrics[n])
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

func trialScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sc, err := loadScenario(args[0])
	if err != nil {
		return err
	}

	results, err := scenario.Trials(cmd.Context(), sc, cfg, trials)
	if err != nil {
		return err
	}
	if len(results) > 0 {
		if _, ok := results[0].Metrics[metric]; !ok {
			return fmt.Errorf("unknown metric %q (available: %v)", metric, metrics.Names(results[0].Metrics))
		}
	}
	lo, mean, hi := scenario.Spread(results, metric)
	fmt.Printf("%s over %d trials of %s\n", metric, len(results), sc.Name)
	fmt.Printf("  min:  %.4f\n  mean: %.4f\n  max:  %.4f\n", lo, mean, hi)
	return nil
}

func benchEffects(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("benchmarking %.0fs per effect\n\n", benchSecs)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "EFFECT\tTICKS\tPEAK\tTIME\tTICKS/SEC")

	for _, t := range fx.Themes {
		start := time.Now()
		res, err := scenario.Run(cmd.Context(), scenario.Stress(t, benchSecs), cfg, scenario.Options{})
		if err != nil {
			return err
		}
		elapsed := time.Since(start)
		fmt.Fprintf(w, "%s\t%d\t%.0f\t%v\t%.0f\n",
			t, res.Ticks, res.Metrics["peak_entities"], elapsed.Round(time.Millisecond), float64(res.Ticks)/elapsed.Seconds())
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
	fmt.Fprintln(w, "ID\tSCENARIO\tPRESET\tTIME\tDURATION\tTICKS\tFINAL")

	for _, run := range runs {
		p := run.Preset
		if p == "" {
			p = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.1fs\t%d\t%s\n",
			run.ID,
			run.Scenario,
			p,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Ticks,
			run.Theme,
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
	rows, err := st.LoadTimeline(runID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data to plot")
	}

	data, err := storage.Series(rows, plotColumn)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n", meta.Scenario)
	fmt.Printf("samples: %d\n\n", len(rows))

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(plotColumn+" vs tick"),
	)
	fmt.Println(graph)
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if exportOut != "" {
		if err := st.ExportFile(exportOut, args[0]); err != nil {
			return err
		}
		fmt.Printf("exported to %s\n", exportOut)
		return nil
	}
	return st.Export(os.Stdout, args[0])
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	rows, err := st.LoadTimeline(runID)
	if err != nil {
		return err
	}
	data, err := storage.Series(rows, fftColumn)
	if err != nil {
		return err
	}
	times := make([]float64, len(rows))
	for i, r := range rows {
		times[i] = r.Time
	}
	rate := analysis.SampleRate(times)

	peak, err := analysis.Dominant(data, rate)
	if err != nil {
		return err
	}

	fmt.Printf("frequency analysis: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n\n", meta.Scenario)

	ps := analysis.PowerSpectrum(data)
	plotData := ps[:max(len(ps)/4, 1)]
	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum ("+fftColumn+")"),
	)
	fmt.Println(graph)
	fmt.Println()

	fmt.Printf("dominant frequency: %.3f hz\n", peak.Frequency)
	if peak.Frequency > 0 {
		fmt.Printf("period: %.3f s\n", peak.Period())
	}
	return nil
}
