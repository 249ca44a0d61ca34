package tetris

import "fmt"

// PieceSize is the edge of the square bounding box every piece mask uses.
const PieceSize = 4

// RotationCount is the number of precomputed orientations per kind.
const RotationCount = 4

// Kind identifies one of the seven tetromino shapes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL

	KindCount = 7
)

// String returns the conventional letter for the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Mask is a 4x4 occupancy grid indexed [row][col]; cells are 0 or 1.
type Mask [PieceSize][PieceSize]uint8

// cells returns the number of occupied cells.
func (m Mask) cells() int {
	n := 0
	for _, row := range m {
		for _, c := range row {
			n += int(c)
		}
	}
	return n
}

// templates holds every orientation of every kind, so rotating is a lookup.
var templates = [KindCount][RotationCount]Mask{
	KindI: {
		{{0, 0, 0, 0}, {1, 1, 1, 1}, {0, 0, 0, 0}, {0, 0, 0, 0}},
		{{0, 0, 1, 0}, {0, 0, 1, 0}, {0, 0, 1, 0}, {0, 0, 1, 0}},
		{{0, 0, 0, 0}, {0, 0, 0, 0}, {1, 1, 1, 1}, {0, 0, 0, 0}},
		{{0, 1, 0, 0}, {0, 1, 0, 0}, {0, 1, 0, 0}, {0, 1, 0, 0}},
	},
	KindO: {
		{{0, 0, 0, 0}, {0, 1, 1, 0}, {0, 1, 1, 0}, {0, 0, 0, 0}},
		{{0, 0, 0, 0}, {0, 1, 1, 0}, {0, 1, 1, 0}, {0, 0, 0, 0}},
		{{0, 0, 0, 0}, {0, 1, 1, 0}, {0, 1, 1, 0}, {0, 0, 0, 0}},
		{{0, 0, 0, 0}, {0, 1, 1, 0}, {0, 1, 1, 0}, {0, 0, 0, 0}},
	},
	KindT: {
		{{0, 0, 0, 0}, {0, 1, 0, 0}, {1, 1, 1, 0}, {0, 0, 0, 0}},
		{{0, 0, 0, 0}, {0, 1, 0, 0}, {0, 1, 1, 0}, {0, 1, 0, 0}},
		{{0, 0, 0, 0}, {0, 0, 0, 0}, {1, 1, 1, 0}, {0, 1, 0, 0}},
		{{0, 0, 0, 0}, {0, 1, 0, 0}, {1, 1, 0, 0}, {0, 1, 0, 0}},
	},
	KindS: {
		{{0, 0, 0, 0}, {0, 1, 1, 0}, {1, 1, 0, 0}, {0, 0, 0, 0}},
		{{0, 0, 0, 0}, {0, 1, 0, 0}, {0, 1, 1, 0}, {0, 0, 1, 0}},
		{{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 1, 1, 0}, {1, 1, 0, 0}},
		{{0, 0, 0, 0}, {1, 0, 0, 0}, {1, 1, 0, 0}, {0, 1, 0, 0}},
	},
	KindZ: {
		{{0, 0, 0, 0}, {1, 1, 0, 0}, {0, 1, 1, 0}, {0, 0, 0, 0}},
		{{0, 0, 0, 0}, {0, 0, 1, 0}, {0, 1, 1, 0}, {0, 1, 0, 0}},
		{{0, 0, 0, 0}, {0, 0, 0, 0}, {1, 1, 0, 0}, {0, 1, 1, 0}},
		{{0, 0, 0, 0}, {0, 1, 0, 0}, {1, 1, 0, 0}, {1, 0, 0, 0}},
	},
	KindJ: {
		{{0, 0, 0, 0}, {1, 0, 0, 0}, {1, 1, 1, 0}, {0, 0, 0, 0}},
		{{0, 0, 0, 0}, {0, 1, 1, 0}, {0, 1, 0, 0}, {0, 1, 0, 0}},
		{{0, 0, 0, 0}, {0, 0, 0, 0}, {1, 1, 1, 0}, {0, 0, 1, 0}},
		{{0, 0, 0, 0}, {0, 1, 0, 0}, {0, 1, 0, 0}, {1, 1, 0, 0}},
	},
	KindL: {
		{{0, 0, 0, 0}, {0, 0, 1, 0}, {1, 1, 1, 0}, {0, 0, 0, 0}},
		{{0, 0, 0, 0}, {0, 1, 0, 0}, {0, 1, 0, 0}, {0, 1, 1, 0}},
		{{0, 0, 0, 0}, {0, 0, 0, 0}, {1, 1, 1, 0}, {1, 0, 0, 0}},
		{{0, 0, 0, 0}, {1, 1, 0, 0}, {0, 1, 0, 0}, {0, 1, 0, 0}},
	},
}

// Template returns the mask of kind k at the given rotation.
// The rotation wraps, so any integer is accepted.
func Template(k Kind, rotation int) Mask {
	return templates[k][wrapRotation(rotation)]
}

func wrapRotation(r int) int {
	r %= RotationCount
	if r < 0 {
		r += RotationCount
	}
	return r
}

// Piece is a placed, oriented tetromino. X and Y locate the top-left corner
// of its 4x4 bounding box in full-board coordinates (spawn margin included).
// Pieces are values; every transformation returns a new one.
type Piece struct {
	Kind     Kind
	Rotation int
	X, Y     int
}

// Spawn places a fresh piece of kind k at rotation 0, horizontally centred
// and at the very top of the board.
func Spawn(k Kind) Piece {
	return Piece{
		Kind:     k,
		Rotation: 0,
		X:        BoardWidth/2 - PieceSize/2,
		Y:        0,
	}
}

// Mask returns the occupancy mask for the piece's current rotation.
func (p Piece) Mask() Mask {
	return Template(p.Kind, p.Rotation)
}

// Rotated returns the piece turned one step clockwise. The origin does not
// move and no wall kick is attempted; callers discard invalid results.
func (p Piece) Rotated() Piece {
	p.Rotation = (p.Rotation + 1) % RotationCount
	return p
}

// Moved returns the piece shifted by (dx, dy). Validity is not checked.
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// eachCell calls fn with the board coordinates of every occupied cell.
// Iteration stops early when fn returns false.
func (p Piece) eachCell(fn func(x, y int) bool) {
	m := p.Mask()
	for row := 0; row < PieceSize; row++ {
		for col := 0; col < PieceSize; col++ {
			if m[row][col] == 0 {
				continue
			}
			if !fn(p.X+col, p.Y+row) {
				return
			}
		}
	}
}

// Randomizer is the source of piece kinds; *rand.Rand satisfies it.
type Randomizer interface {
	Intn(n int) int
}

// RandomKind draws one kind uniformly from the seven.
func RandomKind(r Randomizer) Kind {
	return Kind(r.Intn(KindCount))
}
