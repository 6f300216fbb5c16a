package board

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"

	"github.com/domino14/tilegame/tilemapping"
)

// Dim is the dimension of the (square) board.
const Dim = 15

type BoardDirection uint8

func (bd BoardDirection) String() string {
	if bd == HorizontalDirection {
		return "(horizontal)"
	} else if bd == VerticalDirection {
		return "(vertical)"
	}
	return "none"
}

const (
	HorizontalDirection BoardDirection = iota
	VerticalDirection
)

// A Position is a square on the board. Col and Row are 0-based; the
// canonical (external) coordinates are 1-based, see Canonical.
type Position struct {
	Col int
	Row int
}

// Canonical converts 1-based (x, y) coordinates into a Position.
func Canonical(x, y int) Position {
	return Position{Col: x - 1, Row: y - 1}
}

// Center is the opening square.
var Center = Position{Col: Dim / 2, Row: Dim / 2}

// Canonical returns the 1-based (x, y) coordinates.
func (p Position) Canonical() (int, int) {
	return p.Col + 1, p.Row + 1
}

func (p Position) Valid() bool {
	return p.Col >= 0 && p.Col < Dim && p.Row >= 0 && p.Row < Dim
}

// Offset returns the position n squares away in the given direction.
func (p Position) Offset(dir BoardDirection, n int) Position {
	if dir == HorizontalDirection {
		return Position{Col: p.Col + n, Row: p.Row}
	}
	return Position{Col: p.Col, Row: p.Row + n}
}

// Coord returns the coordinate that varies along dir.
func (p Position) Coord(dir BoardDirection) int {
	if dir == HorizontalDirection {
		return p.Col
	}
	return p.Row
}

// Neighbors returns the orthogonal neighbors, including ones off the
// board.
func (p Position) Neighbors() [4]Position {
	return [4]Position{
		{p.Col - 1, p.Row}, {p.Col + 1, p.Row},
		{p.Col, p.Row - 1}, {p.Col, p.Row + 1},
	}
}

func (p Position) String() string {
	x, y := p.Canonical()
	return fmt.Sprintf("(%d,%d)", x, y)
}

// A Board is the 15x15 grid of letters. The zero value is an empty board.
// Boards are plain values; assigning one copies it.
type Board struct {
	squares     [Dim][Dim]tilemapping.Letter
	tilesPlayed int
}

// A Snapshot is an opaque copy of a board, used to roll back a tentative
// move.
type Snapshot struct {
	b Board
}

func NewBoard() *Board {
	return &Board{}
}

// Get returns the letter at pos, and false if the square is empty or off
// the board.
func (g *Board) Get(pos Position) (tilemapping.Letter, bool) {
	if !pos.Valid() {
		return tilemapping.EmptySquareMarker, false
	}
	l := g.squares[pos.Row][pos.Col]
	return l, l != tilemapping.EmptySquareMarker
}

// HasLetter returns whether pos is on the board and occupied.
func (g *Board) HasLetter(pos Position) bool {
	_, ok := g.Get(pos)
	return ok
}

// Set writes letter at pos. Writing EmptySquareMarker clears the square.
// It panics if pos is off the board.
func (g *Board) Set(pos Position, letter tilemapping.Letter) {
	if !pos.Valid() {
		panic("position off board: " + pos.String())
	}
	old := g.squares[pos.Row][pos.Col]
	g.squares[pos.Row][pos.Col] = letter
	switch {
	case old == tilemapping.EmptySquareMarker && letter != tilemapping.EmptySquareMarker:
		g.tilesPlayed++
	case old != tilemapping.EmptySquareMarker && letter == tilemapping.EmptySquareMarker:
		g.tilesPlayed--
	}
}

// IsEmpty returns if the board is empty.
func (g *Board) IsEmpty() bool {
	return g.tilesPlayed == 0
}

func (g *Board) TilesPlayed() int {
	return g.tilesPlayed
}

// Snapshot captures the board so it can be restored exactly.
func (g *Board) Snapshot() Snapshot {
	return Snapshot{b: *g}
}

// Restore puts the board back the way it was when s was taken.
func (g *Board) Restore(s Snapshot) {
	*g = s.b
}

// Copy returns a deep copy of the board.
func (g *Board) Copy() *Board {
	c := *g
	return &c
}

// Equals checks the boards for equality, square by square.
func (g *Board) Equals(g2 *Board) bool {
	if g.tilesPlayed != g2.tilesPlayed {
		log.Debug().Msgf("Tiles played don't match: %v %v", g.tilesPlayed, g2.tilesPlayed)
		return false
	}
	if g.squares != g2.squares {
		log.Debug().Msg("Squares not equal")
		return false
	}
	return true
}

// Hash returns a fingerprint of the letters on the board.
func (g *Board) Hash() uint64 {
	var buf [Dim*Dim + 8]byte
	i := 0
	for row := 0; row < Dim; row++ {
		for col := 0; col < Dim; col++ {
			buf[i] = byte(g.squares[row][col])
			i++
		}
	}
	binary.LittleEndian.PutUint64(buf[i:], uint64(g.tilesPlayed))
	return xxhash.Sum64(buf[:])
}
