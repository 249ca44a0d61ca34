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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

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

	for _, e := range []ScoreEntry{
		{GameID: "tetris", Score: 300, Lines: 2, Level: 1},
		{GameID: "tetris", Score: 100, Lines: 1, Level: 1},
		{GameID: "tetris", Score: 1500, Lines: 4, Level: 3},
		{GameID: "other", Score: 9000},
	} {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []int{1500, 300, 100}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}
	if scores[0].Lines != 4 || scores[0].Level != 3 {
		t.Errorf("top run lines/level = %d/%d, want 4/3", scores[0].Lines, scores[0].Level)
	}
	if scores[0].RunID == "" {
		t.Error("run id should be generated")
	}
	if scores[0].RunID == scores[1].RunID {
		t.Error("run ids should be unique")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveScore(ScoreEntry{GameID: "tetris", Score: i * 100}); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	top, err := store.TopScores("tetris", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(top))
	}

	def, err := store.TopScores("tetris", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(def) != 10 {
		t.Errorf("Expected default limit 10, got %d", len(def))
	}

	all, err := store.AllScores("tetris")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != 15 {
		t.Errorf("Expected 15 scores, got %d", len(all))
	}
}

func TestStoreDuplicateRunID(t *testing.T) {
	store := openTestStore(t)

	e := ScoreEntry{GameID: "tetris", RunID: "run-1", Score: 100}
	if _, err := store.SaveScore(e); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore(e); err == nil {
		t.Error("expected error saving the same run twice")
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty store, got %d", high)
	}

	if _, err := store.SaveScore(ScoreEntry{GameID: "tetris", Score: 700}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if high, _ = store.HighScore("tetris"); high != 700 {
		t.Errorf("Expected 700 from runs, got %d", high)
	}

	if err := store.SetHighScore("tetris", 2000); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}
	if high, _ = store.HighScore("tetris"); high != 2000 {
		t.Errorf("Expected 2000, got %d", high)
	}

	// Lower values never replace the stored one.
	if err := store.SetHighScore("tetris", 50); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}
	if high, _ = store.HighScore("tetris"); high != 2000 {
		t.Errorf("Expected 2000 after lower write, got %d", high)
	}
}

func TestStoreKeeper(t *testing.T) {
	store := openTestStore(t)
	k := store.Keeper("tetris")

	if err := k.SaveHighScore(1200); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	got, err := k.LoadHighScore()
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if got != 1200 {
		t.Errorf("LoadHighScore() = %d, want 1200", got)
	}

	other, _ := store.Keeper("other").LoadHighScore()
	if other != 0 {
		t.Errorf("other game high score = %d, want 0", other)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(ScoreEntry{GameID: "tetris", Score: 100})
	store.SetHighScore("tetris", 500)
	store.SaveScore(ScoreEntry{GameID: "other", Score: 200})

	if err := store.ClearScores("tetris"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("tetris", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if high, _ := store.HighScore("tetris"); high != 0 {
		t.Errorf("Expected high score cleared, got %d", high)
	}

	other, _ := store.TopScores("other", 10)
	if len(other) != 1 {
		t.Errorf("Expected other game untouched, got %d scores", len(other))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("tetris")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty game: %+v", empty)
	}

	store.SaveScore(ScoreEntry{GameID: "tetris", Score: 100, Lines: 1, Level: 1})
	store.SaveScore(ScoreEntry{GameID: "tetris", Score: 1500, Lines: 4, Level: 3})

	stats, err := store.Stats("tetris")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 1500 {
		t.Errorf("HighScore = %d, want 1500", stats.HighScore)
	}
	if stats.TotalScore != 1600 {
		t.Errorf("TotalScore = %d, want 1600", stats.TotalScore)
	}
	if stats.TotalLines != 5 {
		t.Errorf("TotalLines = %d, want 5", stats.TotalLines)
	}
	if stats.BestLevel != 3 {
		t.Errorf("BestLevel = %d, want 3", stats.BestLevel)
	}
	if stats.AvgScore != 800 {
		t.Errorf("AvgScore = %v, want 800", stats.AvgScore)
	}
}
