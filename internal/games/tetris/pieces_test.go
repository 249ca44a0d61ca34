package tetris

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesHaveFourCells(t *testing.T) {
	for k := Kind(0); k < KindCount; k++ {
		for r := 0; r < RotationCount; r++ {
			assert.Equal(t, 4, Template(k, r).cells(), "kind %s rotation %d", k, r)
		}
	}
}

func TestRotationClosure(t *testing.T) {
	for k := Kind(0); k < KindCount; k++ {
		p := Spawn(k)
		q := p
		for i := 0; i < RotationCount; i++ {
			q = q.Rotated()
		}
		assert.Equal(t, p, q, "kind %s", k)
		assert.Equal(t, p.Mask(), q.Mask())
	}
}

func TestTemplateWrapsRotation(t *testing.T) {
	assert.Equal(t, Template(KindT, 3), Template(KindT, -1))
	assert.Equal(t, Template(KindT, 1), Template(KindT, 5))
}

func TestSpawnIsValidOnEmptyBoard(t *testing.T) {
	var b Board
	for k := Kind(0); k < KindCount; k++ {
		p := Spawn(k)
		assert.Equal(t, BoardWidth/2-2, p.X)
		assert.Equal(t, 0, p.Y)
		assert.Equal(t, 0, p.Rotation)
		assert.True(t, b.IsValid(p), "kind %s", k)
	}
}

func TestMovedAndRotatedReturnCopies(t *testing.T) {
	p := Spawn(KindL)
	_ = p.Moved(2, 3)
	_ = p.Rotated()
	assert.Equal(t, Spawn(KindL), p)

	m := p.Moved(-1, 2)
	assert.Equal(t, p.X-1, m.X)
	assert.Equal(t, p.Y+2, m.Y)
}

func TestRandomKindInRange(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	seen := make(map[Kind]bool)
	for i := 0; i < 500; i++ {
		k := RandomKind(r)
		require.True(t, k >= 0 && k < KindCount)
		seen[k] = true
	}
	assert.Len(t, seen, KindCount)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "I", KindI.String())
	assert.Equal(t, "L", KindL.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
