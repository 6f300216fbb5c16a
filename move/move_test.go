package move

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/tilegame/board"
	"github.com/domino14/tilegame/tilemapping"
)

type coordTestStruct struct {
	row      int
	col      int
	vertical bool
	output   string
}

var coordTests = []coordTestStruct{
	{0, 0, false, "1A"},
	{0, 0, true, "A1"},
	{14, 14, false, "15O"},
	{14, 14, true, "O15"},
	{9, 8, false, "10I"},
	{9, 8, true, "I10"},
	{1, 7, false, "2H"},
	{1, 7, true, "H2"},
}

func direction(vertical bool) board.BoardDirection {
	if vertical {
		return board.VerticalDirection
	}
	return board.HorizontalDirection
}

func TestToBoardGameCoords(t *testing.T) {
	for _, tc := range coordTests {
		calc := ToBoardGameCoords(board.Position{Col: tc.col, Row: tc.row}, direction(tc.vertical))
		if calc != tc.output {
			t.Errorf("For row=%v col=%v vertical=%v got %v, expected %v",
				tc.row, tc.col, tc.vertical, calc, tc.output)
		}
	}
}

func TestFromBoardGameCoords(t *testing.T) {
	for _, tc := range coordTests {
		pos, dir, err := FromBoardGameCoords(tc.output)
		if err != nil {
			t.Fatal(err)
		}
		if pos.Row != tc.row || pos.Col != tc.col || dir != direction(tc.vertical) {
			t.Errorf("For coord %v expected (%v, %v, %v) got (%v, %v, %v)",
				tc.output, tc.row, tc.col, tc.vertical, pos.Row, pos.Col, dir)
		}
	}
}

func TestFromBoardGameCoordsErrors(t *testing.T) {
	is := is.New(t)
	for _, c := range []string{"", "8", "H", "8h", "16A", "A0", "P8", "HH8"} {
		_, _, err := FromBoardGameCoords(c)
		is.True(err != nil)
	}
}

func TestNewPlacement(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard()
	p, err := NewPlacement(b, "8G", "cat")
	is.NoErr(err)
	is.Equal(len(p), 3)
	is.Equal(p[board.Canonical(7, 8)], tilemapping.Letter('C'))
	is.Equal(p.Letters(), []tilemapping.Letter{'C', 'A', 'T'})
	is.Equal(p.Positions(), []board.Position{
		board.Canonical(7, 8), board.Canonical(8, 8), board.Canonical(9, 8)})

	for pos, l := range p {
		b.Set(pos, l)
	}
	// play through the A going down
	p, err = NewPlacement(b, "H7", "R.T")
	is.NoErr(err)
	is.Equal(len(p), 2)
	is.Equal(p[board.Canonical(8, 7)], tilemapping.Letter('R'))
	is.Equal(p[board.Canonical(8, 9)], tilemapping.Letter('T'))

	// a matching letter is played through too.
	p, err = NewPlacement(b, "H7", "RAT")
	is.NoErr(err)
	is.Equal(len(p), 2)

	_, err = NewPlacement(b, "H7", "RET")
	is.True(err != nil)
	_, err = NewPlacement(b, "H1", ".")
	is.True(err != nil)
	_, err = NewPlacement(b, "8M", "CATS")
	is.True(err != nil)
	_, err = NewPlacement(b, "8A", "C4T")
	is.True(err != nil)
}

func TestReasonMessages(t *testing.T) {
	is := is.New(t)
	is.Equal((&InvalidReason{Kind: ReasonNotInStraightLine}).Error(),
		"All tiles must be placed on the same row or column!")
	is.Equal((&InvalidReason{Kind: ReasonSeparateWords}).Error(),
		"All tiles must be connected to the same word!")
	is.Equal((&InvalidReason{Kind: ReasonDisconnected}).Error(),
		"The word formed must be connected to pre-existing words!")
	is.Equal((&InvalidReason{Kind: ReasonNonexistentWord, Word: "CATT"}).Error(),
		"The word 'CATT' doesn't exist!")
	is.Equal((&InvalidReason{Kind: ReasonOffBoard, Position: board.Canonical(16, 1)}).Error(),
		"The square (16,1) is not on the board!")
	is.Equal(ReasonSquareOccupied.String(), "SquareOccupied")
}

func TestResultString(t *testing.T) {
	is := is.New(t)
	r := Result{Valid: true, Words: []string{"AT", "CAT"}, Score: 7}
	is.Equal(r.String(), "<valid words: AT,CAT score: 7>")
	r = Invalid(&InvalidReason{Kind: ReasonNoTiles})
	is.Equal(r.String(), "<invalid: NoTiles (You must place at least one tile!)>")
	is.Equal(r.Score, 0)
}
