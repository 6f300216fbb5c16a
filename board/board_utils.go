package board

import (
	"fmt"
	"strings"

	"github.com/domino14/tilegame/tilemapping"
)

func (g *Board) ToDisplayText() string {
	var str string
	row := "   "
	for i := 0; i < Dim; i++ {
		row = row + fmt.Sprintf("%c", 'A'+i) + " "
	}
	str = str + row + "\n"
	str = str + "   " + strings.Repeat("-", Dim*2) + "\n"
	for i := 0; i < Dim; i++ {
		row := fmt.Sprintf("%2d|", i+1)
		for j := 0; j < Dim; j++ {
			l := g.squares[i][j]
			if l == tilemapping.EmptySquareMarker {
				row = row + bonuses[i][j].displayString() + " "
			} else {
				row = row + l.String() + " "
			}
		}
		row = row + "|"
		str = str + row + "\n"
	}
	str = str + "   " + strings.Repeat("-", Dim*2) + "\n"
	return "\n" + str
}

// SetRow sets row rowNum (0-based) to the passed-in letters; a space is an
// empty square. It returns the letters that were placed.
func (g *Board) SetRow(rowNum int, letters string) ([]tilemapping.Letter, error) {
	if rowNum < 0 || rowNum >= Dim {
		return nil, fmt.Errorf("row %d out of range", rowNum)
	}
	if len(letters) > Dim {
		return nil, fmt.Errorf("row %q is longer than the board", letters)
	}
	for idx := 0; idx < Dim; idx++ {
		g.Set(Position{Col: idx, Row: rowNum}, tilemapping.EmptySquareMarker)
	}
	lettersPlayed := []tilemapping.Letter{}
	for idx, r := range letters {
		if r == ' ' {
			continue
		}
		letter, err := tilemapping.LetterFromRune(r)
		if err != nil {
			return nil, err
		}
		g.Set(Position{Col: idx, Row: rowNum}, letter)
		lettersPlayed = append(lettersPlayed, letter)
	}
	return lettersPlayed, nil
}
