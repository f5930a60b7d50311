// Package storage keeps summaries of headless runs: a metadata.json and a
// timeline.csv per run directory. Simulation state itself is never saved.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/gesturefx/internal/engine"
	"github.com/san-kum/gesturefx/internal/fx"
	"github.com/san-kum/gesturefx/internal/scenario"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Scenario  string             `json:"scenario"`
	Preset    string             `json:"preset,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Duration  float64            `json:"duration"`
	Ticks     int                `json:"ticks"`
	Theme     fx.Theme           `json:"final_theme"`
	Stats     engine.Stats       `json:"stats"`
	Metrics   map[string]float64 `json:"metrics"`
}

var timelineHeader = []string{
	"time", "theme", "present", "x", "y",
	"creatures", "bubbles", "flakes", "drops", "ripples", "splashes", "intensity",
}

func (s *Store) Save(preset string, res *scenario.Result) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", res.Name, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Scenario:  res.Name,
		Preset:    preset,
		Timestamp: now,
		Seed:      res.Seed,
		Duration:  res.Duration,
		Ticks:     res.Ticks,
		Theme:     res.Theme,
		Stats:     res.Stats,
		Metrics:   res.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "timeline.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(timelineHeader); err != nil {
		return "", err
	}
	for _, r := range res.Timeline {
		if err := w.Write(formatRow(r)); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return runID, nil
}

func ff(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }

func formatRow(r scenario.Row) []string {
	c := r.Counts
	return []string{
		ff(r.Time), r.Theme.String(), strconv.FormatBool(r.Present), ff(r.X), ff(r.Y),
		strconv.Itoa(c.Creatures), strconv.Itoa(c.Bubbles), strconv.Itoa(c.Flakes),
		strconv.Itoa(c.Drops), strconv.Itoa(c.Ripples), strconv.Itoa(c.Splashes), ff(c.Intensity),
	}
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return &meta, nil
}

// LoadTimeline reads a run's timeline back. Malformed rows are skipped.
func (s *Store) LoadTimeline(runID string) ([]scenario.Row, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "timeline.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []scenario.Row{}, nil
	}

	rows := make([]scenario.Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row, ok := parseRow(rec)
		if !ok {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseRow(rec []string) (scenario.Row, bool) {
	if len(rec) != len(timelineHeader) {
		return scenario.Row{}, false
	}
	var (
		row  scenario.Row
		errs []error
	)
	num := func(s string) float64 {
		v, err := strconv.ParseFloat(s, 64)
		errs = append(errs, err)
		return v
	}
	count := func(s string) int {
		v, err := strconv.Atoi(s)
		errs = append(errs, err)
		return v
	}
	row.Time = num(rec[0])
	theme, err := fx.ParseTheme(rec[1])
	errs = append(errs, err)
	row.Theme = theme
	present, err := strconv.ParseBool(rec[2])
	errs = append(errs, err)
	row.Present = present
	row.X, row.Y = num(rec[3]), num(rec[4])
	row.Counts.Creatures = count(rec[5])
	row.Counts.Bubbles = count(rec[6])
	row.Counts.Flakes = count(rec[7])
	row.Counts.Drops = count(rec[8])
	row.Counts.Ripples = count(rec[9])
	row.Counts.Splashes = count(rec[10])
	row.Counts.Intensity = num(rec[11])
	for _, err := range errs {
		if err != nil {
			return scenario.Row{}, false
		}
	}
	return row, true
}

// Series extracts one timeline column by header name for plotting.
func Series(rows []scenario.Row, column string) ([]float64, error) {
	out := make([]float64, len(rows))
	for i, r := range rows {
		c := r.Counts
		switch column {
		case "entities":
			out[i] = float64(c.Total())
		case "creatures":
			out[i] = float64(c.Creatures)
		case "bubbles":
			out[i] = float64(c.Bubbles)
		case "flakes":
			out[i] = float64(c.Flakes)
		case "drops":
			out[i] = float64(c.Drops)
		case "ripples":
			out[i] = float64(c.Ripples)
		case "splashes":
			out[i] = float64(c.Splashes)
		case "intensity":
			out[i] = c.Intensity
		case "x":
			out[i] = r.X
		case "y":
			out[i] = r.Y
		default:
			return nil, fmt.Errorf("unknown column %q", column)
		}
	}
	return out, nil
}
