package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []RunEntry{
		{Scenario: "disk", Bodies: 1000, Steps: 500, SimTime: 50, WallMs: 1200},
		{Scenario: "disk", Bodies: 2000, Steps: 300, SimTime: 30, WallMs: 2100},
		{Scenario: "binary", Bodies: 500, Steps: 1000, SimTime: 100, WallMs: 900},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(recent))
	}

	// Newest first
	if recent[0].Scenario != "binary" {
		t.Errorf("Expected newest run first, got scenario %q", recent[0].Scenario)
	}
	if recent[0].Bodies != 500 || recent[0].Steps != 1000 || recent[0].WallMs != 900 {
		t.Errorf("Run fields not preserved: %+v", recent[0])
	}

	diskRuns, err := store.ScenarioRuns("disk", 10)
	if err != nil {
		t.Fatalf("ScenarioRuns() failed: %v", err)
	}
	if len(diskRuns) != 2 {
		t.Errorf("Expected 2 disk runs, got %d", len(diskRuns))
	}
	for _, r := range diskRuns {
		if r.Scenario != "disk" {
			t.Errorf("ScenarioRuns returned run for %q", r.Scenario)
		}
	}
}

func TestStoreRecentRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveRun(RunEntry{Scenario: "cloud", Bodies: 100, Steps: (i + 1) * 10}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}

	// Newest first: steps 50, 40, 30
	if runs[0].Steps != 50 || runs[1].Steps != 40 || runs[2].Steps != 30 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreScenarioStats(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	stats, err := store.GetScenarioStats("disk")
	if err != nil {
		t.Fatalf("GetScenarioStats() failed: %v", err)
	}
	if stats.RunCount != 0 || stats.TotalSteps != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveRun(RunEntry{Scenario: "disk", Bodies: 1000, Steps: 100, WallMs: 400})
	store.SaveRun(RunEntry{Scenario: "disk", Bodies: 1000, Steps: 200, WallMs: 600})
	store.SaveRun(RunEntry{Scenario: "binary", Bodies: 500, Steps: 50, WallMs: 100})

	stats, err = store.GetScenarioStats("disk")
	if err != nil {
		t.Fatalf("GetScenarioStats() failed: %v", err)
	}
	if stats.RunCount != 2 {
		t.Errorf("Expected 2 runs, got %d", stats.RunCount)
	}
	if stats.TotalSteps != 300 {
		t.Errorf("Expected 300 total steps, got %d", stats.TotalSteps)
	}
	// Best is 600/200 = 3 ms per step
	if stats.BestStepMs != 3 {
		t.Errorf("Expected best 3 ms/step, got %v", stats.BestStepMs)
	}
}

func TestStoreAllScenarioStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{Scenario: "disk", Bodies: 1000, Steps: 100, WallMs: 400})
	store.SaveRun(RunEntry{Scenario: "binary", Bodies: 500, Steps: 50, WallMs: 100})
	store.SaveRun(RunEntry{Scenario: "binary", Bodies: 500, Steps: 80, WallMs: 80})

	all, err := store.GetAllScenarioStats()
	if err != nil {
		t.Fatalf("GetAllScenarioStats() failed: %v", err)
	}

	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 scenarios, got %d", len(all))
	}
	if all["binary"].RunCount != 2 || all["binary"].TotalSteps != 130 {
		t.Errorf("Unexpected binary stats: %+v", all["binary"])
	}
	if all["disk"].RunCount != 1 {
		t.Errorf("Unexpected disk stats: %+v", all["disk"])
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{Scenario: "disk", Bodies: 1000, Steps: 100})
	store.SaveRun(RunEntry{Scenario: "disk", Bodies: 1000, Steps: 200})
	store.SaveRun(RunEntry{Scenario: "binary", Bodies: 500, Steps: 50})

	if err := store.ClearRuns("disk"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	diskRuns, _ := store.ScenarioRuns("disk", 10)
	if len(diskRuns) != 0 {
		t.Errorf("Expected 0 disk runs after clear, got %d", len(diskRuns))
	}

	binaryRuns, _ := store.ScenarioRuns("binary", 10)
	if len(binaryRuns) != 1 {
		t.Errorf("Binary runs should not be affected by clearing disk")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
