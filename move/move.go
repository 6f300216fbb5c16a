// Package move has the types that describe a placement request and the
// verdict on it.
package move

import (
	"fmt"
	"slices"
	"strings"

	"github.com/domino14/tilegame/board"
	"github.com/domino14/tilegame/tilemapping"
)

// ReasonKind is the kind of rule a placement broke.
type ReasonKind uint8

const (
	ReasonNotInStraightLine ReasonKind = iota
	ReasonSeparateWords
	ReasonDisconnected
	ReasonNonexistentWord

	ReasonNoTiles
	ReasonOffBoard
	ReasonInvalidLetter
	ReasonSquareOccupied
)

func (k ReasonKind) String() string {
	switch k {
	case ReasonNotInStraightLine:
		return "NotInStraightLine"
	case ReasonSeparateWords:
		return "SeparateWords"
	case ReasonDisconnected:
		return "Disconnected"
	case ReasonNonexistentWord:
		return "NonexistentWord"
	case ReasonNoTiles:
		return "NoTiles"
	case ReasonOffBoard:
		return "OffBoard"
	case ReasonInvalidLetter:
		return "InvalidLetter"
	case ReasonSquareOccupied:
		return "SquareOccupied"
	}
	return "UNHANDLED"
}

// InvalidReason says why a placement was rejected. Word is only set for
// ReasonNonexistentWord; Position is set for the reasons about a single
// square.
type InvalidReason struct {
	Kind     ReasonKind
	Word     string
	Position board.Position
	Letter   tilemapping.Letter
}

// Error returns the message shown to the player.
func (r *InvalidReason) Error() string {
	switch r.Kind {
	case ReasonNotInStraightLine:
		return "All tiles must be placed on the same row or column!"
	case ReasonSeparateWords:
		return "All tiles must be connected to the same word!"
	case ReasonDisconnected:
		return "The word formed must be connected to pre-existing words!"
	case ReasonNonexistentWord:
		return fmt.Sprintf("The word '%s' doesn't exist!", r.Word)
	case ReasonNoTiles:
		return "You must place at least one tile!"
	case ReasonOffBoard:
		return fmt.Sprintf("The square %v is not on the board!", r.Position)
	case ReasonInvalidLetter:
		return fmt.Sprintf("The tile at %v is not a letter!", r.Position)
	case ReasonSquareOccupied:
		return fmt.Sprintf("The square %v is already occupied!", r.Position)
	}
	return "UNHANDLED"
}

func (r *InvalidReason) String() string {
	return r.Error()
}

// Placement is the set of squares a player wants to place tiles on.
type Placement map[board.Position]tilemapping.Letter

// Positions returns the squares in reading order: top to bottom, then left
// to right.
func (p Placement) Positions() []board.Position {
	positions := make([]board.Position, 0, len(p))
	for pos := range p {
		positions = append(positions, pos)
	}
	slices.SortFunc(positions, func(a, b board.Position) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
	return positions
}

// Letters returns the placed letters in reading order.
func (p Placement) Letters() []tilemapping.Letter {
	letters := make([]tilemapping.Letter, 0, len(p))
	for _, pos := range p.Positions() {
		letters = append(letters, p[pos])
	}
	return letters
}

func (p Placement) String() string {
	parts := make([]string, 0, len(p))
	for _, pos := range p.Positions() {
		parts = append(parts, fmt.Sprintf("%v=%v", pos, p[pos]))
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// Result is the verdict on a placement. Words is sorted and holds every
// distinct word the placement formed. Invalid results carry no words and a
// score of 0.
type Result struct {
	Valid  bool
	Reason *InvalidReason
	Words  []string
	Score  int
}

// Invalid makes a rejected Result.
func Invalid(reason *InvalidReason) Result {
	return Result{Reason: reason}
}

// String provides a string just for debugging purposes.
func (r Result) String() string {
	if !r.Valid {
		return fmt.Sprintf("<invalid: %v (%v)>", r.Reason.Kind, r.Reason)
	}
	return fmt.Sprintf("<valid words: %v score: %v>", strings.Join(r.Words, ","), r.Score)
}
