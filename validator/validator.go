// Package validator decides whether a placement is a legal move, which
// words it forms, and what it scores.
package validator

import (
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/tilegame/board"
	"github.com/domino14/tilegame/lexicon"
	"github.com/domino14/tilegame/move"
	"github.com/domino14/tilegame/tilemapping"
)

// overlay is the board as it would look with the placement on it. It never
// writes to the board, so callers may or may not have written the tiles
// already.
type overlay struct {
	b *board.Board
	p move.Placement
}

func (o overlay) letter(pos board.Position) tilemapping.Letter {
	if l, ok := o.p[pos]; ok {
		return l
	}
	l, _ := o.b.Get(pos)
	return l
}

func (o overlay) hasLetter(pos board.Position) bool {
	return o.letter(pos) != tilemapping.EmptySquareMarker
}

// preExisting is a letter that was on the board before this turn.
func (o overlay) preExisting(pos board.Position) bool {
	if _, placed := o.p[pos]; placed {
		return false
	}
	return o.b.HasLetter(pos)
}

type span struct {
	dir        board.BoardDirection
	start, end board.Position
}

// ValidateAndScore checks p against b and lex. b is not modified.
// The caller may have written p to b already. A square of b holding the
// same letter as p is then taken to be one of p's tiles, because it can't
// be told apart from a tile that was there before the turn; callers that
// write first must reject occupied squares themselves (see game.Play).
func ValidateAndScore(b *board.Board, lex lexicon.Lexicon, p move.Placement) move.Result {
	if reason := checkTiles(b, p); reason != nil {
		return move.Invalid(reason)
	}
	o := overlay{b: b, p: p}
	positions := p.Positions()
	if reason := checkGeometry(o, positions); reason != nil {
		log.Debug().Str("placement", p.String()).Str("reason", reason.Kind.String()).Msg("illegal-geometry")
		return move.Invalid(reason)
	}

	words, score := scoreWords(o, positions)
	for _, w := range words {
		if !lex.HasWord(w) {
			log.Debug().Str("word", w).Str("lexicon", lex.Name()).Msg("phony")
			return move.Invalid(&move.InvalidReason{Kind: move.ReasonNonexistentWord, Word: w})
		}
	}
	return move.Result{Valid: true, Words: words, Score: score}
}

// checkTiles makes sure every tile is a letter on an empty square of the
// board. A square that already holds the same letter is fine; the caller
// wrote the tile before validating.
func checkTiles(b *board.Board, p move.Placement) *move.InvalidReason {
	if len(p) == 0 {
		return &move.InvalidReason{Kind: move.ReasonNoTiles}
	}
	for _, pos := range p.Positions() {
		l := p[pos]
		if !pos.Valid() {
			return &move.InvalidReason{Kind: move.ReasonOffBoard, Position: pos, Letter: l}
		}
		if !l.IsValid() {
			return &move.InvalidReason{Kind: move.ReasonInvalidLetter, Position: pos, Letter: l}
		}
		if existing, _ := b.Get(pos); existing != tilemapping.EmptySquareMarker && existing != l {
			return &move.InvalidReason{Kind: move.ReasonSquareOccupied, Position: pos, Letter: l}
		}
	}
	return nil
}

func checkGeometry(o overlay, positions []board.Position) *move.InvalidReason {
	rows := lo.Uniq(lo.Map(positions, func(p board.Position, _ int) int { return p.Row }))
	cols := lo.Uniq(lo.Map(positions, func(p board.Position, _ int) int { return p.Col }))

	if len(positions) > 1 {
		var dir board.BoardDirection
		switch {
		case len(rows) == 1:
			dir = board.HorizontalDirection
		case len(cols) == 1:
			dir = board.VerticalDirection
		default:
			return &move.InvalidReason{Kind: move.ReasonNotInStraightLine}
		}
		// positions are sorted, so the first and last are the ends of the line.
		first, last := positions[0], positions[len(positions)-1]
		for i := 1; i < last.Coord(dir)-first.Coord(dir); i++ {
			if !o.hasLetter(first.Offset(dir, i)) {
				return &move.InvalidReason{Kind: move.ReasonSeparateWords}
			}
		}
	}

	if lo.Contains(positions, board.Center) {
		return nil
	}
	touches := lo.ContainsBy(positions, func(p board.Position) bool {
		neighbors := p.Neighbors()
		return lo.ContainsBy(neighbors[:], o.preExisting)
	})
	if !touches {
		return &move.InvalidReason{Kind: move.ReasonDisconnected}
	}
	return nil
}

// wordAt finds the run of letters through pos along dir.
func wordAt(o overlay, pos board.Position, dir board.BoardDirection) span {
	start := pos
	for o.hasLetter(start.Offset(dir, -1)) {
		start = start.Offset(dir, -1)
	}
	end := pos
	for o.hasLetter(end.Offset(dir, 1)) {
		end = end.Offset(dir, 1)
	}
	return span{dir: dir, start: start, end: end}
}

// scoreWords returns the sorted distinct words the placement forms, and
// its score. Only newly placed tiles get their square's bonus.
func scoreWords(o overlay, positions []board.Position) ([]string, int) {
	seen := map[span]bool{}
	words := []string{}
	total := 0
	for _, dir := range []board.BoardDirection{board.HorizontalDirection, board.VerticalDirection} {
		for _, pos := range positions {
			s := wordAt(o, pos, dir)
			if s.start == s.end || seen[s] {
				continue
			}
			seen[s] = true

			word := make(tilemapping.Word, 0, s.end.Coord(dir)-s.start.Coord(dir)+1)
			wordScore, wordMultiplier := 0, 1
			for cur := s.start; ; cur = cur.Offset(dir, 1) {
				l := o.letter(cur)
				word = append(word, l)
				if o.preExisting(cur) {
					wordScore += l.Score()
				} else {
					bonus := board.BonusAt(cur)
					wordScore += l.Score() * bonus.LetterMultiplier()
					wordMultiplier *= bonus.WordMultiplier()
				}
				if cur == s.end {
					break
				}
			}
			log.Debug().Str("word", word.String()).Str("dir", dir.String()).
				Int("score", wordScore*wordMultiplier).Msg("formed-word")
			words = append(words, word.String())
			total += wordScore * wordMultiplier
		}
	}
	words = lo.Uniq(words)
	slices.Sort(words)
	return words, total
}
