package tui

import (
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brick-game/internal/games/tetris"
	"github.com/vovakirdan/brick-game/internal/storage"
)

type brokenStore struct{}

func (brokenStore) LoadHighScore() (int, error) { return 0, errors.New("disk on fire") }
func (brokenStore) SaveHighScore(int) error     { return errors.New("disk on fire") }

func TestRecorderRecordsFinishedRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	rec := NewRecorder(tetris.GameID, store.Keeper(tetris.GameID), store, log.New(io.Discard))

	rec.Observe(tetris.StateChanged{From: tetris.StateStart, To: tetris.StateSpawn})
	first := rec.runID
	if first == "" {
		t.Fatal("a run id should be assigned when a game starts")
	}
	rec.Observe(tetris.GameEnded{Score: 1500, HighScore: 1500, Lines: 4, Level: 3})

	rec.Observe(tetris.StateChanged{From: tetris.StateStart, To: tetris.StateSpawn})
	if rec.runID == first {
		t.Error("each game should get a new run id")
	}
	rec.Observe(tetris.GameEnded{Score: 0, HighScore: 1500})

	scores, err := store.TopScores(tetris.GameID, 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("recorded %d runs, want 1 (zero scores are skipped)", len(scores))
	}
	if scores[0].RunID != first || scores[0].Lines != 4 || scores[0].Level != 3 {
		t.Errorf("unexpected run %+v", scores[0])
	}

	if got := rec.HighScore(); got != 1500 {
		t.Errorf("HighScore = %d, want 1500", got)
	}
}

func TestRecorderToleratesBrokenStorage(t *testing.T) {
	rec := NewRecorder(tetris.GameID, brokenStore{}, nil, log.New(io.Discard))

	if got := rec.HighScore(); got != 0 {
		t.Errorf("HighScore = %d, want 0", got)
	}

	game := NewTetris(rec, 1)
	game.SetHighScore(50)
	rec.PersistFrom(game)
	rec.Observe(tetris.GameEnded{Score: 50, HighScore: 50})
}

func TestRecorderWithoutStorage(t *testing.T) {
	rec := NewRecorder(tetris.GameID, nil, nil, log.New(io.Discard))
	if got := rec.HighScore(); got != 0 {
		t.Errorf("HighScore = %d, want 0", got)
	}
	rec.Observe(tetris.GameEnded{Score: 10, HighScore: 10})
	rec.PersistFrom(NewTetris(rec, 1))
}

func TestRecorderSavesHighScoreOnLineClear(t *testing.T) {
	keeper, err := storage.NewFileStore(filepath.Join(t.TempDir(), "hs.dat"))
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	rec := NewRecorder(tetris.GameID, keeper, nil, log.New(io.Discard))
	rec.HighScore()
	rec.Observe(tetris.StateChanged{From: tetris.StateStart, To: tetris.StateSpawn})
	rec.Observe(tetris.LinesCleared{Count: 4, Points: 1500, Score: 1500})

	// No GameEnded: the session dropped mid-game.
	got, err := keeper.LoadHighScore()
	if err != nil {
		t.Fatalf("LoadHighScore: %v", err)
	}
	if got != 1500 {
		t.Errorf("stored high score = %d, want 1500", got)
	}

	fresh := NewRecorder(tetris.GameID, keeper, nil, log.New(io.Discard))
	if got := fresh.HighScore(); got != 1500 {
		t.Errorf("next session HighScore = %d, want 1500", got)
	}
	fresh.Observe(tetris.LinesCleared{Count: 1, Points: 100, Score: 100})
	if got, _ := keeper.LoadHighScore(); got != 1500 {
		t.Errorf("lower score overwrote high score: got %d", got)
	}
}
