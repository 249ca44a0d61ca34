package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoints(t *testing.T) {
	tests := []struct {
		rows int
		want int
	}{
		{0, 0},
		{1, 100},
		{2, 300},
		{3, 700},
		{4, 1500},
		{5, 0},
		{-1, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Points(tt.rows), "rows=%d", tt.rows)
	}
}

func TestLevelForScore(t *testing.T) {
	assert.Equal(t, 1, LevelForScore(0))
	assert.Equal(t, 1, LevelForScore(599))
	assert.Equal(t, 2, LevelForScore(600))
	assert.Equal(t, 3, LevelForScore(1500))
	assert.Equal(t, 10, LevelForScore(5400))
	assert.Equal(t, 10, LevelForScore(1_000_000))
}

func TestSpeedForLevel(t *testing.T) {
	assert.Equal(t, 48, SpeedForLevel(1))
	assert.Equal(t, 44, SpeedForLevel(2))
	assert.Equal(t, 12, SpeedForLevel(10))
	assert.Equal(t, 1, SpeedForLevel(100))
}

func TestProgressionIsMonotonic(t *testing.T) {
	prevLevel, prevSpeed := LevelForScore(0), SpeedForLevel(1)
	for score := 0; score <= 10_000; score += 100 {
		level := LevelForScore(score)
		speed := SpeedForLevel(level)

		assert.GreaterOrEqual(t, level, prevLevel)
		assert.LessOrEqual(t, level, MaxLevel)
		assert.LessOrEqual(t, speed, prevSpeed)
		assert.GreaterOrEqual(t, speed, MinSpeed)

		prevLevel, prevSpeed = level, speed
	}
}
