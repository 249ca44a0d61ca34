package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brick-game/internal/storage"
)

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, "tetris", "Tetris", 80, 24)
	view := m.View()
	if !strings.Contains(view, "HIGH SCORES - Tetris") {
		t.Error("title missing")
	}
	if !strings.Contains(view, "No scores recorded yet") {
		t.Error("empty message missing")
	}
}

func TestScoreboardShowsRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	store.SaveScore(storage.ScoreEntry{GameID: "tetris", Score: 12500, Lines: 40, Level: 10})
	store.SaveScore(storage.ScoreEntry{GameID: "tetris", Score: 300, Lines: 2, Level: 1})

	m := NewScoreboardModel(store, "tetris", "Tetris", 100, 30)
	if len(m.scores) != 2 {
		t.Fatalf("loaded %d scores, want 2", len(m.scores))
	}

	view := m.View()
	if !strings.Contains(view, "12,500") {
		t.Error("scores should be shown with thousands separators")
	}
	if !strings.Contains(view, "2 games") {
		t.Error("summary line missing")
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "tetris", "Tetris", 80, 24)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if !next.(ScoreboardModel).quitting {
		t.Error("scoreboard should be quitting")
	}
}

func TestScoreboardReload(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	m := NewScoreboardModel(store, "tetris", "Tetris", 80, 24)
	if len(m.scores) != 0 {
		t.Fatalf("fresh store has %d scores", len(m.scores))
	}

	if _, err := store.SaveScore(storage.ScoreEntry{GameID: "tetris", Score: 700, Lines: 3, Level: 2}); err != nil {
		t.Fatalf("SaveScore: %v", err)
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if got := len(next.(ScoreboardModel).scores); got != 1 {
		t.Errorf("after reload %d scores, want 1", got)
	}
}
