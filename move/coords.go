package move

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/domino14/tilegame/board"
	"github.com/domino14/tilegame/tilemapping"
)

var reVertical, reHorizontal *regexp.Regexp

func init() {
	reVertical = regexp.MustCompile(`^(?P<col>[A-Z])(?P<row>[0-9]+)$`)
	reHorizontal = regexp.MustCompile(`^(?P<row>[0-9]+)(?P<col>[A-Z])$`)
}

// ToBoardGameCoords converts the starting square and orientation of a play
// to a coordinate like 5F or G4.
func ToBoardGameCoords(pos board.Position, dir board.BoardDirection) string {
	colCoords := string(rune('A' + pos.Col))
	rowCoords := strconv.Itoa(pos.Row + 1)
	if dir == board.VerticalDirection {
		return colCoords + rowCoords
	}
	return rowCoords + colCoords
}

// FromBoardGameCoords does the inverse operation of ToBoardGameCoords above.
func FromBoardGameCoords(c string) (board.Position, board.BoardDirection, error) {
	var pos board.Position
	var dir board.BoardDirection
	if vMatches := reVertical.FindStringSubmatch(c); len(vMatches) == 3 {
		row, _ := strconv.Atoi(vMatches[2])
		pos = board.Position{Col: int(vMatches[1][0] - 'A'), Row: row - 1}
		dir = board.VerticalDirection
	} else if hMatches := reHorizontal.FindStringSubmatch(c); len(hMatches) == 3 {
		row, _ := strconv.Atoi(hMatches[1])
		pos = board.Position{Col: int(hMatches[2][0] - 'A'), Row: row - 1}
		dir = board.HorizontalDirection
	} else {
		return pos, dir, fmt.Errorf("invalid coordinates %q", c)
	}
	if !pos.Valid() {
		return pos, dir, fmt.Errorf("coordinates %q are off the board", c)
	}
	return pos, dir, nil
}

// NewPlacement turns a play written the usual way, such as "8H" "CA.S",
// into a Placement. A '.' plays through the tile already on the board; a
// letter that matches the tile already on its square is also played
// through.
func NewPlacement(b *board.Board, coords string, word string) (Placement, error) {
	pos, dir, err := FromBoardGameCoords(coords)
	if err != nil {
		return nil, err
	}
	p := Placement{}
	for _, r := range word {
		if !pos.Valid() {
			return nil, fmt.Errorf("%v %v runs off the board", coords, word)
		}
		existing, _ := b.Get(pos)
		if r == tilemapping.ASCIIPlayedThrough {
			if existing == tilemapping.EmptySquareMarker {
				return nil, fmt.Errorf("there is no tile to play through at %v", pos)
			}
		} else {
			letter, err := tilemapping.LetterFromRune(r)
			if err != nil {
				return nil, err
			}
			if existing == tilemapping.EmptySquareMarker {
				p[pos] = letter
			} else if existing != letter {
				return nil, fmt.Errorf("%v already has %v on it", pos, existing)
			}
		}
		pos = pos.Offset(dir, 1)
	}
	return p, nil
}
