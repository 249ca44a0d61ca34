package tetris

// Progression constants.
const (
	MaxLevel       = 10
	PointsPerLevel = 600
	BaseSpeed      = 48 // gravity frames per row at level 1
	SpeedStep      = 4
	MinSpeed       = 1
)

var pointsForRows = [...]int{0, 100, 300, 700, 1500}

// Points returns the score awarded for clearing rows in a single lock.
func Points(rows int) int {
	if rows < 0 || rows >= len(pointsForRows) {
		return 0
	}
	return pointsForRows[rows]
}

// LevelForScore maps a cumulative score to a level in 1..MaxLevel.
func LevelForScore(score int) int {
	level := score/PointsPerLevel + 1
	if level > MaxLevel {
		level = MaxLevel
	}
	if level < 1 {
		level = 1
	}
	return level
}

// SpeedForLevel returns the number of frames between gravity steps.
func SpeedForLevel(level int) int {
	speed := BaseSpeed - (level-1)*SpeedStep
	if speed < MinSpeed {
		speed = MinSpeed
	}
	return speed
}
