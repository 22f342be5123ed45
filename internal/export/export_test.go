package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/edgaromeroc/bioslurry-simulator/internal/metrics"
	"github.com/edgaromeroc/bioslurry-simulator/internal/reactor"
	"github.com/edgaromeroc/bioslurry-simulator/internal/sim"
)

func shortRun(t *testing.T) (reactor.Params, sim.Trajectory) {
	t.Helper()

	p := reactor.Default()
	p.Duration = 24

	traj, err := sim.Simulate(p)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}
	return p, traj
}

func TestWriteCSV(t *testing.T) {
	_, traj := shortRun(t)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, traj); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	if !reflect.DeepEqual(records[0], CSVColumns) {
		t.Errorf("unexpected header: %v", records[0])
	}
	if len(records) != len(traj)+1 {
		t.Errorf("expected %d rows, got %d", len(traj)+1, len(records))
	}

	// six decimals, fixed point
	cell := records[1][2]
	dot := strings.Index(cell, ".")
	if dot < 0 || len(cell)-dot-1 != 6 {
		t.Errorf("expected 6-decimal values, got %q", cell)
	}
	if records[1][0] != "0.000000" {
		t.Errorf("expected first row at t=0, got %q", records[1][0])
	}
}

func TestWriteJSON(t *testing.T) {
	p, traj := shortRun(t)
	summary, err := metrics.Extract(traj, p)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	var buf bytes.Buffer
	err = WriteJSON(&buf, Document{ID: "glyphosate_test", Params: p, Summary: summary, Trajectory: traj})
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if doc.ID != "glyphosate_test" {
		t.Errorf("unexpected ID: %s", doc.ID)
	}
	if doc.Steps != len(traj) {
		t.Errorf("expected steps derived as %d, got %d", len(traj), doc.Steps)
	}
	if doc.Params != p {
		t.Error("params changed through JSON round trip")
	}
	if len(doc.Trajectory) != len(traj) {
		t.Errorf("expected %d snapshots, got %d", len(traj), len(doc.Trajectory))
	}
	if doc.Summary == nil || doc.Summary.FinalRemoval != summary.FinalRemoval {
		t.Errorf("summary not preserved: %+v", doc.Summary)
	}
}

func TestRenderChart(t *testing.T) {
	_, traj := shortRun(t)

	for _, name := range []string{"run.png", "run.svg"} {
		path := filepath.Join(t.TempDir(), name)
		if err := RenderChart(path, traj); err != nil {
			t.Fatalf("render %s failed: %v", name, err)
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("chart file missing: %v", err)
		}
		if info.Size() == 0 {
			t.Errorf("chart file %s is empty", name)
		}
	}
}

func TestRenderChartTooShort(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.png")
	if err := RenderChart(path, sim.Trajectory{{TimeDays: 0}}); err == nil {
		t.Error("expected error for single-snapshot trajectory")
	}
}
