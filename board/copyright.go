package board

// CrosswordGameBoard is the bonus layout, one string per row, top to
// bottom. The center square doubles the opening word.
var CrosswordGameBoard = [Dim]string{
	`=  '   =   '  =`,
	` -   "   "   - `,
	`  -   ' '   -  `,
	`'  -   '   -  '`,
	`    -     -    `,
	` "   "   "   " `,
	`  '   ' '   '  `,
	`=  '   -   '  =`,
	`  '   ' '   '  `,
	` "   "   "   " `,
	`    -     -    `,
	`'  -   '   -  '`,
	`  -   ' '   -  `,
	` -   "   "   - `,
	`=  '   =   '  =`,
}

var bonuses [Dim][Dim]BonusSquare

func init() {
	for row, s := range CrosswordGameBoard {
		for col, c := range s {
			bonuses[row][col] = BonusSquare(c)
		}
	}
}

// BonusAt returns the bonus of the square at pos. Positions off the board
// have no bonus.
func BonusAt(pos Position) BonusSquare {
	if !pos.Valid() {
		return BonusNone
	}
	return bonuses[pos.Row][pos.Col]
}
