package storage

import (
	"testing"

	"github.com/vovakirdan/neon-runner/internal/games/runner"
)

func openTestGData(t *testing.T) *GDataStore {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)

	store, err := OpenGData("neonrunner-test")
	if err != nil {
		t.Skipf("gdata unavailable: %v", err)
	}
	return store
}

func TestGDataItems(t *testing.T) {
	store := openTestGData(t)
	defer store.Close()

	data, err := store.LoadItem("missing")
	if err != nil || data != nil {
		t.Errorf("LoadItem(missing) = %q, %v; expected nil, nil", data, err)
	}

	if err := store.SaveItem("settings", []byte(`{"difficulty":"hard"}`)); err != nil {
		t.Fatalf("SaveItem() failed: %v", err)
	}
	data, err = store.LoadItem("settings")
	if err != nil || string(data) != `{"difficulty":"hard"}` {
		t.Errorf("LoadItem() = %q, %v", data, err)
	}

	if err := store.DeleteItem("settings"); err != nil {
		t.Fatalf("DeleteItem() failed: %v", err)
	}
	if data, _ := store.LoadItem("settings"); data != nil {
		t.Errorf("item still present after delete: %s", data)
	}
}

func TestProfileOverGData(t *testing.T) {
	store := openTestGData(t)
	p := NewProfile(store, nil)

	stats := runner.Stats{GamesPlayed: 2, PerfectDodges: 5, HighScore: 777}
	if err := p.SaveProgress(stats, []bool{false, true}); err != nil {
		t.Fatalf("SaveProgress() failed: %v", err)
	}

	if got := p.LoadStats(); got != stats {
		t.Errorf("LoadStats() = %+v, expected %+v", got, stats)
	}
	unlocked := p.LoadAchievements()
	if unlocked[0] || !unlocked[1] {
		t.Errorf("flags = %v", unlocked)
	}
}
