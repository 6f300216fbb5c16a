package validator

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/tilegame/board"
	"github.com/domino14/tilegame/dawg"
	"github.com/domino14/tilegame/dawgmaker"
	"github.com/domino14/tilegame/lexicon"
	"github.com/domino14/tilegame/move"
	"github.com/domino14/tilegame/tilemapping"
)

func placement(tiles map[[2]int]byte) move.Placement {
	p := move.Placement{}
	for xy, l := range tiles {
		p[board.Canonical(xy[0], xy[1])] = tilemapping.Letter(l)
	}
	return p
}

func apply(b *board.Board, p move.Placement) {
	for pos, l := range p {
		b.Set(pos, l)
	}
}

// catBoard has CAT across the center: C(7,8) A(8,8) T(9,8).
func catBoard() *board.Board {
	b := board.NewBoard()
	apply(b, placement(map[[2]int]byte{{7, 8}: 'C', {8, 8}: 'A', {9, 8}: 'T'}))
	return b
}

func reasonKind(r move.Result) move.ReasonKind {
	if r.Reason == nil {
		return 255
	}
	return r.Reason.Kind
}

func TestOpeningSingleTile(t *testing.T) {
	is := is.New(t)
	r := ValidateAndScore(board.NewBoard(), lexicon.AcceptAll{},
		placement(map[[2]int]byte{{8, 8}: 'A'}))
	is.True(r.Valid)
	is.Equal(len(r.Words), 0)
	is.Equal(r.Score, 0)
}

func TestOpeningCat(t *testing.T) {
	is := is.New(t)
	r := ValidateAndScore(board.NewBoard(), lexicon.NewWordSet("CAT"),
		placement(map[[2]int]byte{{7, 8}: 'C', {8, 8}: 'A', {9, 8}: 'T'}))
	is.True(r.Valid)
	is.Equal(r.Words, []string{"CAT"})
	// center is a double word
	is.Equal(r.Score, 10)
}

func TestDoubleLetterAndDoubleWord(t *testing.T) {
	is := is.New(t)
	// C is on the double letter at (4,8), S on the center.
	r := ValidateAndScore(board.NewBoard(), lexicon.NewWordSet("CHATS"),
		placement(map[[2]int]byte{{4, 8}: 'C', {5, 8}: 'H', {6, 8}: 'A', {7, 8}: 'T', {8, 8}: 'S'}))
	is.True(r.Valid)
	is.Equal(r.Words, []string{"CHATS"})
	is.Equal(r.Score, (3*2+4+1+1+1)*2)
}

func TestNotInStraightLine(t *testing.T) {
	is := is.New(t)
	r := ValidateAndScore(board.NewBoard(), lexicon.AcceptAll{},
		placement(map[[2]int]byte{{3, 3}: 'A', {4, 5}: 'B'}))
	is.True(!r.Valid)
	is.Equal(reasonKind(r), move.ReasonNotInStraightLine)
	is.Equal(r.Score, 0)
}

func TestSeparateWords(t *testing.T) {
	is := is.New(t)
	r := ValidateAndScore(board.NewBoard(), lexicon.AcceptAll{},
		placement(map[[2]int]byte{{3, 8}: 'A', {5, 8}: 'B'}))
	is.Equal(reasonKind(r), move.ReasonSeparateWords)

	r = ValidateAndScore(board.NewBoard(), lexicon.AcceptAll{},
		placement(map[[2]int]byte{{8, 3}: 'A', {8, 8}: 'B'}))
	is.Equal(reasonKind(r), move.ReasonSeparateWords)
}

func TestPlayThroughIsContiguous(t *testing.T) {
	is := is.New(t)
	r := ValidateAndScore(catBoard(), lexicon.NewWordSet("SCATS"),
		placement(map[[2]int]byte{{6, 8}: 'S', {10, 8}: 'S'}))
	is.True(r.Valid)
	is.Equal(r.Words, []string{"SCATS"})
	is.Equal(r.Score, 7)
}

func TestDisconnected(t *testing.T) {
	is := is.New(t)
	r := ValidateAndScore(catBoard(), lexicon.AcceptAll{},
		placement(map[[2]int]byte{{1, 1}: 'D', {2, 1}: 'O'}))
	is.Equal(reasonKind(r), move.ReasonDisconnected)

	// touching the edge of the board doesn't count as touching a word.
	r = ValidateAndScore(catBoard(), lexicon.AcceptAll{},
		placement(map[[2]int]byte{{1, 5}: 'D', {1, 6}: 'O'}))
	is.Equal(reasonKind(r), move.ReasonDisconnected)

	// the opening move has to go through the center.
	r = ValidateAndScore(board.NewBoard(), lexicon.AcceptAll{},
		placement(map[[2]int]byte{{2, 2}: 'D', {3, 2}: 'O'}))
	is.Equal(reasonKind(r), move.ReasonDisconnected)
}

func TestExistingBonusesDoNotCount(t *testing.T) {
	is := is.New(t)
	r := ValidateAndScore(catBoard(), lexicon.NewWordSet("CATS"),
		placement(map[[2]int]byte{{10, 8}: 'S'}))
	is.True(r.Valid)
	is.Equal(r.Words, []string{"CATS"})
	is.Equal(r.Score, 6)
}

func TestCrossWords(t *testing.T) {
	is := is.New(t)
	p := placement(map[[2]int]byte{{8, 9}: 'A', {9, 9}: 'T'})
	r := ValidateAndScore(catBoard(), lexicon.NewWordSet("AA", "AT", "TT"), p)
	is.True(r.Valid)
	is.Equal(r.Words, []string{"AA", "AT", "TT"})
	// AT: 1 + 1*2 (double letter at (9,9)); AA: 1 + 1; TT: 1 + 1*2
	is.Equal(r.Score, 3+2+3)
}

func TestSingleTileCrossOnly(t *testing.T) {
	is := is.New(t)
	r := ValidateAndScore(catBoard(), lexicon.NewWordSet("AT"),
		placement(map[[2]int]byte{{9, 7}: 'A'}))
	is.True(r.Valid)
	is.Equal(r.Words, []string{"AT"})
	is.Equal(r.Score, 3)
}

func TestSameWordTwice(t *testing.T) {
	is := is.New(t)
	// Both AT and the cross word AT are scored, but the word is listed once.
	b := board.NewBoard()
	apply(b, placement(map[[2]int]byte{{8, 8}: 'A', {9, 8}: 'T'}))
	r := ValidateAndScore(b, lexicon.NewWordSet("AT", "TA"),
		placement(map[[2]int]byte{{8, 9}: 'T'}))
	is.True(r.Valid)
	is.Equal(r.Words, []string{"AT"})
	is.Equal(r.Score, 2)

	r = ValidateAndScore(b, lexicon.NewWordSet("AT", "TA"),
		placement(map[[2]int]byte{{7, 9}: 'A', {8, 9}: 'T'}))
	is.True(r.Valid)
	is.Equal(r.Words, []string{"AT"})
	// AT across row 9 and AT down column 8; (7,9) is a double letter.
	is.Equal(r.Score, (1*2+1)+(1+1))
}

func TestNonexistentWord(t *testing.T) {
	is := is.New(t)
	p := placement(map[[2]int]byte{{8, 9}: 'A', {9, 9}: 'T'})
	r := ValidateAndScore(catBoard(), lexicon.NewWordSet("AT"), p)
	is.True(!r.Valid)
	is.Equal(reasonKind(r), move.ReasonNonexistentWord)
	// the first bad word in sorted order
	is.Equal(r.Reason.Word, "AA")
	is.Equal(r.Reason.Error(), "The word 'AA' doesn't exist!")
	is.Equal(r.Score, 0)
	is.Equal(len(r.Words), 0)
}

func TestInputErrors(t *testing.T) {
	b := catBoard()
	cases := []struct {
		name string
		p    move.Placement
		kind move.ReasonKind
	}{
		{"no tiles", move.Placement{}, move.ReasonNoTiles},
		{"off board", placement(map[[2]int]byte{{16, 8}: 'S'}), move.ReasonOffBoard},
		{"not a letter", placement(map[[2]int]byte{{10, 8}: '?'}), move.ReasonInvalidLetter},
		{"occupied", placement(map[[2]int]byte{{8, 8}: 'O'}), move.ReasonSquareOccupied},
	}
	for _, tc := range cases {
		r := ValidateAndScore(b, lexicon.AcceptAll{}, tc.p)
		assert.False(t, r.Valid, tc.name)
		assert.Equal(t, tc.kind, reasonKind(r), tc.name)
	}
}

func TestTentativeWriteGivesSameResult(t *testing.T) {
	is := is.New(t)
	lex := lexicon.NewWordSet("AA", "AT", "TT")
	p := placement(map[[2]int]byte{{8, 9}: 'A', {9, 9}: 'T'})

	b := catBoard()
	hash := b.Hash()
	pure := ValidateAndScore(b, lex, p)
	is.Equal(b.Hash(), hash)

	apply(b, p)
	written := ValidateAndScore(b, lex, p)
	is.Equal(pure, written)

	bad := placement(map[[2]int]byte{{1, 1}: 'D', {2, 1}: 'O'})
	b = catBoard()
	pure = ValidateAndScore(b, lex, bad)
	apply(b, bad)
	written = ValidateAndScore(b, lex, bad)
	is.Equal(pure, written)
}

func TestSameLetterOnSquare(t *testing.T) {
	is := is.New(t)
	lex := lexicon.NewWordSet("CAT", "CATS")

	// The caller wrote S before validating.
	b := catBoard()
	s := placement(map[[2]int]byte{{10, 8}: 'S'})
	apply(b, s)
	r := ValidateAndScore(b, lex, s)
	is.True(r.Valid)
	is.Equal(r.Words, []string{"CATS"})
	is.Equal(r.Score, 6)

	// A placement naming a tile that was on the board all along looks
	// exactly the same, so it is scored as if it were placed. game.Play
	// turns these away before writing anything.
	b = catBoard()
	hash := b.Hash()
	r = ValidateAndScore(b, lex, placement(map[[2]int]byte{{8, 8}: 'A'}))
	is.True(r.Valid)
	is.Equal(r.Words, []string{"CAT"})
	is.Equal(r.Score, 10)
	is.Equal(b.Hash(), hash)

	r = ValidateAndScore(b, lex, placement(map[[2]int]byte{{8, 8}: 'O'}))
	is.Equal(reasonKind(r), move.ReasonSquareOccupied)
	is.Equal(r.Reason.Position, board.Canonical(8, 8))
}

func TestWithDawgLexicon(t *testing.T) {
	is := is.New(t)
	d, err := dawgmaker.Build([]string{"cat", "cats", "at", "aa"})
	is.NoErr(err)
	lex := dawg.Lexicon{Dawg: d}

	r := ValidateAndScore(catBoard(), lex, placement(map[[2]int]byte{{10, 8}: 'S'}))
	is.True(r.Valid)
	is.Equal(r.Words, []string{"CATS"})

	r = ValidateAndScore(catBoard(), lex, placement(map[[2]int]byte{{8, 9}: 'A', {9, 9}: 'T'}))
	is.Equal(reasonKind(r), move.ReasonNonexistentWord)
	is.Equal(r.Reason.Word, "TT")
}
