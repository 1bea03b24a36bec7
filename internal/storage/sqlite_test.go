package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
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
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.neonrunner/test.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".neonrunner", "test.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}

func TestStoreItems(t *testing.T) {
	store := openTestStore(t)

	data, err := store.LoadItem("missing")
	if err != nil || data != nil {
		t.Errorf("LoadItem(missing) = %q, %v; expected nil, nil", data, err)
	}

	if err := store.SaveItem("stats", []byte(`{"highScore":1}`)); err != nil {
		t.Fatalf("SaveItem() failed: %v", err)
	}
	if err := store.SaveItem("stats", []byte(`{"highScore":2}`)); err != nil {
		t.Fatalf("SaveItem() overwrite failed: %v", err)
	}

	data, err = store.LoadItem("stats")
	if err != nil {
		t.Fatalf("LoadItem() failed: %v", err)
	}
	if string(data) != `{"highScore":2}` {
		t.Errorf("LoadItem() = %s, expected the overwritten value", data)
	}

	if err := store.DeleteItem("stats"); err != nil {
		t.Fatalf("DeleteItem() failed: %v", err)
	}
	if data, _ := store.LoadItem("stats"); data != nil {
		t.Errorf("item still present after delete: %s", data)
	}
	if err := store.DeleteItem("stats"); err != nil {
		t.Errorf("deleting a missing key should not fail: %v", err)
	}
}

func TestStoreItemsPersistAcrossOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveItem("settings", []byte("x")); err != nil {
		t.Fatalf("SaveItem() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	data, err := store.LoadItem("settings")
	if err != nil || string(data) != "x" {
		t.Errorf("LoadItem() after reopen = %q, %v", data, err)
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{Score: 420, Level: 1, MaxCombo: 3, Duration: 7 * time.Second, Difficulty: "normal"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("run ID %q is not a UUID: %v", id, err)
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}

	r := runs[0]
	if r.ID != id || r.Score != 420 || r.MaxCombo != 3 || r.Duration != 7*time.Second || r.Difficulty != "normal" {
		t.Errorf("run = %+v", r)
	}
	if r.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestStoreSaveRunKeepsGivenID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{ID: "fixed-id", Score: 1, Difficulty: "easy"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id != "fixed-id" {
		t.Errorf("ID = %q, expected fixed-id", id)
	}

	if _, err := store.SaveRun(Run{ID: "fixed-id", Score: 2, Difficulty: "easy"}); err == nil {
		t.Error("duplicate run ID should fail")
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveRun(Run{Score: (i + 1) * 100, Difficulty: "normal"}); err != nil {
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

	all, err := store.TopRuns(0)
	if err != nil {
		t.Fatalf("TopRuns(0) failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("default limit returned %d runs", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	score, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("Expected 0 for empty history, got %d", score)
	}

	store.SaveRun(Run{Score: 100, Difficulty: "normal"})
	store.SaveRun(Run{Score: 300, Difficulty: "hard"})
	store.SaveRun(Run{Score: 200, Difficulty: "easy"})

	score, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 300 {
		t.Errorf("Expected high score 300, got %d", score)
	}
}

func TestStoreRunSummary(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.RunSummary()
	if err != nil {
		t.Fatalf("RunSummary() failed: %v", err)
	}
	if empty.Runs != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty summary = %+v", empty)
	}

	store.SaveRun(Run{Score: 100, MaxCombo: 2, Duration: 10 * time.Second, Difficulty: "normal"})
	store.SaveRun(Run{Score: 300, MaxCombo: 7, Duration: 20 * time.Second, Difficulty: "normal"})

	summary, err := store.RunSummary()
	if err != nil {
		t.Fatalf("RunSummary() failed: %v", err)
	}
	if summary.Runs != 2 || summary.HighScore != 300 || summary.BestCombo != 7 {
		t.Errorf("summary = %+v", summary)
	}
	if summary.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", summary.AvgScore)
	}
	if summary.TotalTime != 30*time.Second {
		t.Errorf("TotalTime = %v, expected 30s", summary.TotalTime)
	}
	if summary.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Score: 100, Difficulty: "normal"})
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(runs))
	}
}

func TestParseTime(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want time.Time
	}{
		{"time value", now, now},
		{"sqlite string", "2024-05-01 12:30:00", now},
		{"garbage", "yesterday", time.Time{}},
		{"null", nil, time.Time{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseTime(tc.in); !got.Equal(tc.want) {
				t.Errorf("parseTime(%v) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}
}
