package game

import (
	"fmt"
	"strings"

	"github.com/domino14/tilegame/tilemapping"
)

func splitSubN(s string, n int) []string {
	sub := ""
	subs := []string{}

	runes := []rune(s)
	l := len(runes)
	for i, r := range runes {
		sub = sub + string(r)
		if (i+1)%n == 0 {
			subs = append(subs, sub)
			sub = ""
		} else if (i + 1) == l {
			subs = append(subs, sub)
		}
	}

	return subs
}

func addText(lines []string, row int, hpad int, text string) {
	maxTextSize := 42
	sp := splitSubN(text, maxTextSize)

	for _, chunk := range sp {
		if row >= len(lines) {
			return
		}
		lines[row] = lines[row] + strings.Repeat(" ", hpad) + chunk
		row++
	}
}

// ToDisplayText turns the current state of the game into a displayable
// string.
func (g *Game) ToDisplayText() string {
	bt := g.board.ToDisplayText()
	bts := strings.Split(bt, "\n")
	hpadding := 3
	vpadding := 1
	for pi := range g.players {
		addText(bts, vpadding+pi, hpadding,
			g.players[pi].stateString(fmt.Sprintf("player%d", pi+1), g.started && g.onturn == pi))
	}
	addText(bts, vpadding+3, hpadding, fmt.Sprintf("Bag: (%d)", g.bag.TilesRemaining()))
	addText(bts, vpadding+4, hpadding, tilemapping.Word(g.bag.Peek()).String())
	return strings.Join(bts, "\n")
}
