package tetris

// HighScoreStore persists the best score between sessions.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// LoadInitialHighScore reads the stored high score. A missing store, a read
// failure or a negative value all yield 0.
func LoadInitialHighScore(store HighScoreStore) int {
	if store == nil {
		return 0
	}
	score, err := store.LoadHighScore()
	if err != nil || score < 0 {
		return 0
	}
	return score
}

// PersistHighScore writes score to store. A nil store is a no-op.
func PersistHighScore(store HighScoreStore, score int) error {
	if store == nil {
		return nil
	}
	if score < 0 {
		score = 0
	}
	return store.SaveHighScore(score)
}
