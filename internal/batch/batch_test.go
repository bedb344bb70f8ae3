package batch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/nanocalc/internal/models"
	"github.com/san-kum/nanocalc/internal/storage"
)

const scenarioYAML = `name: material comparison
description: gold vs silver in water
steps:
  - model: rayleigh
    radius: 50
    material: gold
    medium: 1.33
    spectrum: {from: 400, to: 700, step: 10}
    save_as: gold
  - model: rayleigh
    radius: 50
    material: silver
    medium: 1.33
    spectrum: {from: 400, to: 700, step: 10}
    save_as: silver
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	return path
}

func TestLoadScenario(t *testing.T) {
	scenario, err := LoadScenario(writeScenario(t, scenarioYAML))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if scenario.Name != "material comparison" {
		t.Errorf("unexpected name: %q", scenario.Name)
	}
	if len(scenario.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(scenario.Steps))
	}
	if scenario.Steps[1].Material != "silver" {
		t.Errorf("unexpected material: %q", scenario.Steps[1].Material)
	}
}

func TestRunScenario(t *testing.T) {
	scenario, err := LoadScenario(writeScenario(t, scenarioYAML))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	st := storage.New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("store init failed: %v", err)
	}

	results, err := RunScenario(context.Background(), scenario, models.NewRegistry(), st)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 step results, got %d", len(results))
	}
	if results[0].Label != "gold" || results[1].Label != "silver" {
		t.Errorf("unexpected labels: %q %q", results[0].Label, results[1].Label)
	}
	// 400..700 step 10 inclusive
	if len(results[0].Results) != 31 {
		t.Errorf("expected 31 points, got %d", len(results[0].Results))
	}
	if results[0].RunID == "" {
		t.Error("expected run to be saved")
	}
}

func TestRunScenarioDistinctRunIDs(t *testing.T) {
	scenario, err := LoadScenario(writeScenario(t, scenarioYAML))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	st := storage.New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("store init failed: %v", err)
	}

	results, err := RunScenario(context.Background(), scenario, models.NewRegistry(), st)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	// Steps save within the same second; each must still get its own run.
	if results[0].RunID == results[1].RunID {
		t.Fatalf("both steps saved under run ID %q", results[0].RunID)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 stored runs, got %d", len(runs))
	}
}

func TestRunScenarioWithoutStore(t *testing.T) {
	scenario, err := LoadScenario(writeScenario(t, scenarioYAML))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	results, err := RunScenario(context.Background(), scenario, models.NewRegistry(), nil)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if results[0].RunID != "" {
		t.Error("expected no run id without a store")
	}
}

func TestRunScenarioPreset(t *testing.T) {
	body := `name: preset run
steps:
  - preset: gold_water
    save_as: preset_gold
`
	scenario, err := LoadScenario(writeScenario(t, body))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	results, err := RunScenario(context.Background(), scenario, models.NewRegistry(), nil)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(results) != 1 || len(results[0].Results) == 0 {
		t.Fatalf("expected preset step to produce a spectrum")
	}
}

func TestRunScenarioBadStep(t *testing.T) {
	body := `name: bad
steps:
  - model: rayleigh
    material: gold
    save_as: ok
  - model: nope
    save_as: bad
`
	scenario, err := LoadScenario(writeScenario(t, body))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	results, err := RunScenario(context.Background(), scenario, models.NewRegistry(), nil)
	if err == nil {
		t.Fatal("expected error for unknown model")
	}
	if len(results) != 1 {
		t.Errorf("expected the first step's result to survive, got %d", len(results))
	}
}
