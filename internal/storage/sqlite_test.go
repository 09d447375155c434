package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{Score: 100, Bricks: 12, MoneyTotal: 1, Outcome: "lose", Duration: 45},
		{Score: 50, Bricks: 5, MoneyTotal: 0, Outcome: "lose", Duration: 20},
		{Score: 200, Bricks: 105, MoneyTotal: 2, Outcome: "win", Duration: 180},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	got, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(got))
	}

	// Sorted by score descending.
	if got[0].Score != 200 || got[1].Score != 100 || got[2].Score != 50 {
		t.Errorf("Runs not in expected order: %v", got)
	}
	if got[0].Outcome != "win" || got[0].Bricks != 105 {
		t.Errorf("Run details not preserved: %+v", got[0])
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveRun(RunRecord{Score: (i + 1) * 100, Outcome: "lose"}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No runs yet.
	score, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("Expected 0 with no runs, got %d", score)
	}

	store.SaveRun(RunRecord{Score: 150, Outcome: "lose"})
	store.SaveRun(RunRecord{Score: 300, Outcome: "win"})
	store.SaveRun(RunRecord{Score: 75, Outcome: "lose"})

	score, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 300 {
		t.Errorf("Expected high score 300, got %d", score)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Score: 100, Outcome: "lose"})
	store.SaveRun(RunRecord{Score: 200, Outcome: "win"})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, err := store.AllRuns()
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(runs))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	// Empty store yields zeroed stats, not an error.
	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.RunCount != 0 || stats.HighScore != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveRun(RunRecord{Score: 100, Bricks: 10, Outcome: "lose", Duration: 30})
	store.SaveRun(RunRecord{Score: 300, Bricks: 105, Outcome: "win", Duration: 200})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	if stats.RunCount != 2 {
		t.Errorf("RunCount = %d, want 2", stats.RunCount)
	}
	if stats.Wins != 1 {
		t.Errorf("Wins = %d, want 1", stats.Wins)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.TotalBricks != 115 {
		t.Errorf("TotalBricks = %d, want 115", stats.TotalBricks)
	}
}
