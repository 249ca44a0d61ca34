package tui

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/brick-game/internal/games/tetris"
	"github.com/vovakirdan/brick-game/internal/registry"
	"github.com/vovakirdan/brick-game/internal/storage"
)

// Recorder observes one play session: it logs engine events, appends each
// finished game to the run history and keeps the stored high score current.
// Storage faults are logged and never interrupt play.
type Recorder struct {
	gameID  string
	keeper  storage.HighScoreStore
	history *storage.Store
	logger  *log.Logger
	runID   string
	saved   int // highest score written to keeper
}

// NewRecorder creates a recorder. keeper and history may be nil.
func NewRecorder(gameID string, keeper storage.HighScoreStore, history *storage.Store, logger *log.Logger) *Recorder {
	return &Recorder{
		gameID:  gameID,
		keeper:  keeper,
		history: history,
		logger:  logger,
	}
}

// NewTetris creates a game wired to rec and seeded with the stored high score.
func NewTetris(rec *Recorder, seed int64) *tetris.Game {
	return tetris.New(
		tetris.WithSeed(seed),
		tetris.WithHighScore(rec.HighScore()),
		tetris.WithObserver(rec.Observe),
	)
}

// HighScore loads the stored high score; failures yield 0.
func (r *Recorder) HighScore() int {
	if r.keeper == nil {
		return 0
	}
	score := tetris.LoadInitialHighScore(loggedStore{store: r.keeper, logger: r.logger})
	r.saved = score
	r.logger.Debug("high score loaded", "score", score)
	return score
}

// Observe handles one engine event.
func (r *Recorder) Observe(e tetris.Event) {
	switch ev := e.(type) {
	case tetris.StateChanged:
		r.logger.Debug("state changed", "from", ev.From, "to", ev.To)
		if ev.From == tetris.StateStart && ev.To == tetris.StateSpawn {
			r.runID = uuid.NewString()
			r.logger.Info("game started", "run", r.runID)
		}
	case tetris.PieceSpawned:
		r.logger.Debug("piece spawned", "kind", ev.Kind, "next", ev.Next)
	case tetris.PieceLocked:
		r.logger.Debug("piece locked", "kind", ev.Kind, "x", ev.X, "y", ev.Y)
	case tetris.LinesCleared:
		r.logger.Info("lines cleared", "count", ev.Count, "points", ev.Points, "score", ev.Score)
		// A session may end without GameEnded, e.g. an SSH disconnect.
		r.persist(ev.Score)
	case tetris.LevelChanged:
		r.logger.Info("level up", "level", ev.Level, "speed", ev.Speed)
	case tetris.GameEnded:
		r.logger.Info("game ended", "run", r.runID, "score", ev.Score, "lines", ev.Lines, "level", ev.Level)
		r.recordRun(ev)
		r.persist(ev.HighScore)
	}
}

// PersistFrom saves the high score held by game, if it keeps one.
func (r *Recorder) PersistFrom(game registry.Game) {
	if k, ok := game.(registry.HighScoreKeeper); ok {
		r.persist(k.HighScore())
	}
}

func (r *Recorder) recordRun(ev tetris.GameEnded) {
	if r.history == nil || ev.Score <= 0 {
		return
	}
	_, err := r.history.SaveScore(storage.ScoreEntry{
		GameID: r.gameID,
		RunID:  r.runID,
		Score:  ev.Score,
		Lines:  ev.Lines,
		Level:  ev.Level,
	})
	if err != nil {
		r.logger.Error("cannot record run", "err", err)
	}
}

func (r *Recorder) persist(score int) {
	if r.keeper == nil || score <= 0 || score <= r.saved {
		return
	}
	if err := tetris.PersistHighScore(r.keeper, score); err != nil {
		r.logger.Error("cannot save high score", "score", score, "err", err)
		return
	}
	r.saved = score
}

// loggedStore reports load failures before the engine maps them to 0.
type loggedStore struct {
	store  storage.HighScoreStore
	logger *log.Logger
}

func (s loggedStore) LoadHighScore() (int, error) {
	score, err := s.store.LoadHighScore()
	if err != nil {
		s.logger.Warn("cannot load high score", "err", err)
	}
	return score, err
}

func (s loggedStore) SaveHighScore(score int) error {
	return s.store.SaveHighScore(score)
}
