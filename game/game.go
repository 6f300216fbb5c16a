// Package game runs the turns of a two-player game: it applies a
// placement, has it validated, keeps or rolls it back, scores it, and
// replenishes the player's tiles.
package game

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/domino14/tilegame/board"
	"github.com/domino14/tilegame/lexicon"
	"github.com/domino14/tilegame/message"
	"github.com/domino14/tilegame/move"
	"github.com/domino14/tilegame/tilemapping"
	"github.com/domino14/tilegame/validator"
)

const (
	NumPlayers    = 2
	RackTileLimit = 7
)

var (
	ErrNotStarted     = errors.New("the game has not started")
	ErrNotYourTurn    = errors.New("it is not your turn")
	ErrTilesNotOnRack = errors.New("tile is not on your rack")
)

// Outgoing is a message addressed to one player.
type Outgoing struct {
	Player  int
	Message message.Message
}

// Game holds the board, the bag, and both players' racks and scores.
// It is not safe for concurrent use; turns are handled one at a time.
type Game struct {
	lex     lexicon.Lexicon
	board   *board.Board
	bag     *tilemapping.Bag
	players [NumPlayers]*playerState

	started bool
	onturn  int
	turnnum int
}

// New creates a game with an empty board.
func New(lex lexicon.Lexicon, bag *tilemapping.Bag) *Game {
	g := &Game{
		lex:   lex,
		board: board.NewBoard(),
		bag:   bag,
	}
	for i := range g.players {
		g.players[i] = &playerState{}
	}
	return g
}

// Start fills each player's rack and gives the first turn to first. It
// returns the messages to send.
func (g *Game) Start(first int) ([]Outgoing, error) {
	if first < 0 || first >= NumPlayers {
		return nil, fmt.Errorf("no player %d", first)
	}
	out := []Outgoing{}
	for i, p := range g.players {
		drawn := g.bag.DrawAtMost(RackTileLimit - len(p.rack))
		p.addTiles(drawn)
		out = append(out, Outgoing{Player: i, Message: message.Replenish{Letters: drawn}})
	}
	g.started = true
	g.onturn = first
	log.Debug().Int("first", first).Msg("game-started")
	return append(out, Outgoing{Player: first, Message: message.Turn{}}), nil
}

// Play makes the move for the player on turn. The tiles are written to
// the board and validated; an invalid move leaves the board exactly as it
// was. A valid move is scored, the tiles are replaced from the bag and the
// turn passes to the other player.
// The error is only for moves that cannot be attempted at all; an illegal
// move, including one on an occupied square, is a Result with Valid false.
func (g *Game) Play(p move.Placement) (move.Result, error) {
	if !g.started {
		return move.Result{}, ErrNotStarted
	}
	// Once the tiles are written the validator can't tell them from the
	// ones that were already there, so occupied squares are caught here.
	for _, pos := range p.Positions() {
		if g.board.HasLetter(pos) {
			reason := &move.InvalidReason{Kind: move.ReasonSquareOccupied, Position: pos, Letter: p[pos]}
			log.Debug().Int("player", g.onturn).Str("reason", reason.Error()).Msg("move-rejected")
			return move.Invalid(reason), nil
		}
	}
	player := g.players[g.onturn]
	leave, err := player.leave(p.Letters())
	if err != nil {
		return move.Result{}, err
	}

	snapshot := g.board.Snapshot()
	hash := g.board.Hash()
	for pos, l := range p {
		// Anything that can't be written is rejected by the validator.
		if pos.Valid() {
			g.board.Set(pos, l)
		}
	}
	res := validator.ValidateAndScore(g.board, g.lex, p)
	if !res.Valid {
		g.board.Restore(snapshot)
		if g.board.Hash() != hash {
			log.Error().Uint64("want", hash).Uint64("got", g.board.Hash()).Msg("board-not-restored")
		}
		log.Debug().Int("player", g.onturn).Str("reason", res.Reason.Error()).Msg("move-rejected")
		return res, nil
	}

	player.points += res.Score
	player.turns++
	player.rack = leave
	player.addTiles(g.bag.DrawAtMost(len(p)))
	log.Debug().Int("player", g.onturn).Strs("words", res.Words).Int("score", res.Score).
		Int("bag", g.bag.TilesRemaining()).Msg("move-played")
	g.onturn = otherPlayer(g.onturn)
	g.turnnum++
	return res, nil
}

// Handle dispatches a message received from player. An illegal move comes
// back as a *move.InvalidReason error.
func (g *Game) Handle(player int, m message.Message) ([]Outgoing, error) {
	switch msg := m.(type) {
	case message.Place:
		return g.handlePlace(player, msg)
	case message.Replenish, message.Turn:
		return nil, fmt.Errorf("players cannot send %v messages", m.Kind())
	default:
		return nil, fmt.Errorf("unhandled message %T", m)
	}
}

func (g *Game) handlePlace(player int, msg message.Place) ([]Outgoing, error) {
	if !g.started {
		return nil, ErrNotStarted
	}
	if player != g.onturn {
		return nil, ErrNotYourTurn
	}
	p, err := msg.Placement()
	if err != nil {
		return nil, err
	}
	before := len(g.players[player].rack)
	res, err := g.Play(p)
	if err != nil {
		return nil, err
	}
	if !res.Valid {
		return nil, res.Reason
	}
	// The new tiles are the end of the rack.
	rack := g.players[player].rack
	drawn := slices.Clone(rack[before-len(p):])
	return []Outgoing{
		{Player: otherPlayer(player), Message: msg},
		{Player: player, Message: message.Replenish{Letters: drawn}},
		{Player: g.onturn, Message: message.Turn{}},
	}, nil
}

func otherPlayer(idx int) int {
	return (idx + 1) % NumPlayers
}

func (g *Game) Board() *board.Board {
	return g.board
}

func (g *Game) Bag() *tilemapping.Bag {
	return g.bag
}

func (g *Game) Lexicon() lexicon.Lexicon {
	return g.lex
}

func (g *Game) PlayerOnTurn() int {
	return g.onturn
}

func (g *Game) Turn() int {
	return g.turnnum
}

func (g *Game) PointsFor(playerIdx int) int {
	return g.players[playerIdx].points
}

// RackFor returns the player's tiles in alphabetical order.
func (g *Game) RackFor(playerIdx int) string {
	return g.players[playerIdx].rackLetters()
}

// SetRackFor replaces the player's rack, putting the old tiles back in
// the bag. The new tiles are taken out of the bag.
func (g *Game) SetRackFor(playerIdx int, letters string) error {
	word, err := tilemapping.ToWord(letters)
	if err != nil {
		return err
	}
	p := g.players[playerIdx]
	g.bag.PutBack(p.rack)
	p.rack = nil
	for _, l := range word {
		if !g.bag.Remove(l) {
			g.bag.PutBack(p.rack)
			return fmt.Errorf("%v is not in the bag", l)
		}
		p.rack = append(p.rack, l)
	}
	return nil
}
