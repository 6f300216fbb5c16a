package game

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/domino14/tilegame/tilemapping"
)

type playerState struct {
	rack   []tilemapping.Letter
	points int
	turns  int
}

func (p *playerState) addTiles(tiles []tilemapping.Letter) {
	p.rack = append(p.rack, tiles...)
}

// leave returns the rack with letters removed from it, or an error if the
// rack doesn't have them all.
func (p *playerState) leave(letters []tilemapping.Letter) ([]tilemapping.Letter, error) {
	rack := slices.Clone(p.rack)
	for _, l := range letters {
		idx := slices.Index(rack, l)
		if idx == -1 {
			log.Debug().Str("rack", p.rackLetters()).Str("letter", l.String()).Msg("tile-not-on-rack")
			return nil, fmt.Errorf("%w: %v", ErrTilesNotOnRack, l)
		}
		rack = slices.Delete(rack, idx, idx+1)
	}
	return rack, nil
}

func (p *playerState) rackLetters() string {
	rack := slices.Clone(p.rack)
	slices.Sort(rack)
	return tilemapping.Word(rack).String()
}

func (p *playerState) stateString(name string, myturn bool) string {
	onturn := ""
	if myturn {
		onturn = "-> "
	}
	return fmt.Sprintf("%4v%20v%9v %4v", onturn, name, p.rackLetters(), p.points)
}
