package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/gesturefx/internal/config"
	"github.com/san-kum/gesturefx/internal/effects"
	"github.com/san-kum/gesturefx/internal/fx"
	"github.com/san-kum/gesturefx/internal/scenario"
)

func testResult() *scenario.Result {
	return &scenario.Result{
		Name:     "test",
		Seed:     42,
		Theme:    fx.Rain,
		Duration: 1,
		Ticks:    2,
		Timeline: []scenario.Row{
			{Time: 0, Theme: fx.Snow, Present: true, X: 0.5, Y: 0.25, Counts: effects.Counts{Flakes: 7}},
			{Time: 0.5, Theme: fx.Rain, Counts: effects.Counts{Drops: 3, Splashes: 6, Intensity: 0.75}},
		},
		Metrics: map[string]float64{"switches": 1},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save("calm", testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Scenario != "test" || meta.Preset != "calm" || meta.Seed != 42 {
		t.Errorf("metadata = %+v", meta)
	}
	if meta.Theme != fx.Rain {
		t.Errorf("theme = %v, want rain", meta.Theme)
	}
	if meta.Metrics["switches"] != 1 {
		t.Errorf("expected switches 1, got %f", meta.Metrics["switches"])
	}

	rows, err := st.LoadTimeline(runID)
	if err != nil {
		t.Fatalf("load timeline failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Theme != fx.Snow || !rows[0].Present || rows[0].Counts.Flakes != 7 {
		t.Errorf("row 0 = %+v", rows[0])
	}
	if rows[1].Counts.Intensity != 0.75 || rows[1].Counts.Splashes != 6 {
		t.Errorf("row 1 = %+v", rows[1])
	}
}

func TestStoreList(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)

	runs, err := st.List()
	if err != nil || len(runs) != 0 {
		t.Fatalf("List() on empty store = %v, %v", runs, err)
	}

	first, _ := st.Save("", testResult())
	second, _ := st.Save("", testResult())
	if err := os.MkdirAll(filepath.Join(dir, "junk"), 0755); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 || runs[0].ID != first || runs[1].ID != second {
		t.Errorf("List() = %v", runs)
	}

	if _, err := New(filepath.Join(dir, "missing")).List(); err != nil {
		t.Errorf("List() on a missing dir: %v", err)
	}
}

func TestLoadTimeline_SkipsBadRows(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	runID, _ := st.Save("", testResult())

	path := filepath.Join(dir, runID, "timeline.csv")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatal(err)
	}
	f.WriteString("1.0,fog,true,0,0,0,0,0,0,0,0,0\n1.5,rain\n")
	f.Close()

	rows, err := st.LoadTimeline(runID)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Errorf("rows = %d, want bad rows skipped", len(rows))
	}
}

func TestSeries(t *testing.T) {
	rows := testResult().Timeline
	got, err := Series(rows, "entities")
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != 7 || got[1] != 9 {
		t.Errorf("entities = %v", got)
	}
	if _, err := Series(rows, "nope"); err == nil {
		t.Error("Series(nope) succeeded")
	}
}

func TestExport(t *testing.T) {
	st := New(t.TempDir())
	sc, _ := scenario.Get("rain")
	res, err := scenario.Run(context.Background(), sc, config.DefaultConfig(), scenario.Options{Timeline: true})
	if err != nil {
		t.Fatal(err)
	}
	runID, err := st.Save("", res)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := st.Export(&buf, runID); err != nil {
		t.Fatal(err)
	}
	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("export is not JSON: %v", err)
	}
	if data.Run.ID != runID || len(data.Timeline) != len(res.Timeline) || len(res.Timeline) == 0 {
		t.Errorf("export has run %q with %d rows, want %q with %d", data.Run.ID, len(data.Timeline), runID, res.Ticks)
	}

	path := filepath.Join(t.TempDir(), "out.json")
	if err := st.ExportFile(path, runID); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Error(err)
	}
}
