// Package message has the messages a game session exchanges with its
// players. A Message is one of Place, Replenish or Turn; callers switch on
// the concrete type.
package message

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/domino14/tilegame/board"
	"github.com/domino14/tilegame/move"
	"github.com/domino14/tilegame/tilemapping"
)

type Kind uint8

const (
	KindPlace Kind = iota
	KindReplenish
	KindTurn
)

func (k Kind) String() string {
	switch k {
	case KindPlace:
		return "PLACE"
	case KindReplenish:
		return "REPLENISH"
	case KindTurn:
		return "TURN"
	}
	return "UNKNOWN"
}

// KindFromString parses the wire name of a kind.
func KindFromString(s string) (Kind, error) {
	switch s {
	case "PLACE":
		return KindPlace, nil
	case "REPLENISH":
		return KindReplenish, nil
	case "TURN":
		return KindTurn, nil
	}
	return 0, fmt.Errorf("unknown message type %q", s)
}

// Message is implemented only by the types in this package.
type Message interface {
	Kind() Kind
	isMessage()
}

// Tile is one tile of a placement, at canonical (1-based) coordinates.
type Tile struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Letter string `json:"letter"`
}

// Place is a player's move.
type Place struct {
	Tiles []Tile
}

// Replenish gives a player new tiles.
type Replenish struct {
	Letters []tilemapping.Letter
}

// Turn tells a player it is their turn.
type Turn struct{}

func (Place) Kind() Kind     { return KindPlace }
func (Replenish) Kind() Kind { return KindReplenish }
func (Turn) Kind() Kind      { return KindTurn }

func (Place) isMessage()     {}
func (Replenish) isMessage() {}
func (Turn) isMessage()      {}

// NewPlace makes a Place message out of a placement, with tiles in reading
// order.
func NewPlace(p move.Placement) Place {
	tiles := make([]Tile, 0, len(p))
	for _, pos := range p.Positions() {
		x, y := pos.Canonical()
		tiles = append(tiles, Tile{X: x, Y: y, Letter: p[pos].String()})
	}
	return Place{Tiles: tiles}
}

// Placement converts the message back into a placement. Letters must be
// A-Z in either case; squares are left for the validator to check.
func (m Place) Placement() (move.Placement, error) {
	p := move.Placement{}
	for _, t := range m.Tiles {
		runes := []rune(t.Letter)
		if len(runes) != 1 {
			return nil, fmt.Errorf("tile at (%d,%d) has letter %q", t.X, t.Y, t.Letter)
		}
		l, err := tilemapping.LetterFromRune(runes[0])
		if err != nil {
			return nil, fmt.Errorf("tile at (%d,%d): %w", t.X, t.Y, err)
		}
		pos := board.Canonical(t.X, t.Y)
		if _, dup := p[pos]; dup {
			return nil, fmt.Errorf("two tiles at (%d,%d)", t.X, t.Y)
		}
		p[pos] = l
	}
	return p, nil
}

func (m Replenish) String() string {
	return tilemapping.Word(m.Letters).String()
}

type envelope struct {
	Type    string          `json:"type"`
	Message json.RawMessage `json:"message"`
}

// Encode writes m as {"type": ..., "message": ...}. A Replenish carries a
// list of one-letter strings; a Turn carries null.
func Encode(m Message) ([]byte, error) {
	var body any
	switch msg := m.(type) {
	case Place:
		body = msg.Tiles
		if msg.Tiles == nil {
			body = []Tile{}
		}
	case Replenish:
		letters := make([]string, len(msg.Letters))
		for i, l := range msg.Letters {
			letters[i] = l.String()
		}
		body = letters
	case Turn:
		body = nil
	default:
		return nil, fmt.Errorf("cannot encode message %T", m)
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{Type: m.Kind().String(), Message: raw})
}

// Decode reads a message written by Encode.
func Decode(data []byte) (Message, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decoding message: %w", err)
	}
	kind, err := KindFromString(strings.ToUpper(env.Type))
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindPlace:
		var tiles []Tile
		if err := json.Unmarshal(env.Message, &tiles); err != nil {
			return nil, fmt.Errorf("decoding %v: %w", kind, err)
		}
		return Place{Tiles: tiles}, nil
	case KindReplenish:
		var strs []string
		if err := json.Unmarshal(env.Message, &strs); err != nil {
			return nil, fmt.Errorf("decoding %v: %w", kind, err)
		}
		letters := make([]tilemapping.Letter, 0, len(strs))
		for _, s := range strs {
			if len(s) != 1 {
				return nil, fmt.Errorf("decoding %v: bad letter %q", kind, s)
			}
			l, err := tilemapping.LetterFromRune(rune(s[0]))
			if err != nil {
				return nil, fmt.Errorf("decoding %v: %w", kind, err)
			}
			letters = append(letters, l)
		}
		return Replenish{Letters: letters}, nil
	case KindTurn:
		return Turn{}, nil
	}
	return nil, errors.New("unhandled message kind")
}
