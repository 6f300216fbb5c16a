package tilemapping

import (
	"slices"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"
)

// A Bag is the bag o'tiles! Tiles are drawn without replacement.
type Bag struct {
	tiles              []Letter
	letterDistribution *LetterDistribution
	randSource         *frand.RNG
}

// NewBag returns a full bag for the distribution. If randSource is nil a
// fresh frand RNG is used.
func NewBag(ld *LetterDistribution, randSource *frand.RNG) *Bag {
	if randSource == nil {
		randSource = frand.New()
	}
	tiles := make([]Letter, 0, ld.NumTotalTiles())
	for i, ct := range ld.distribution {
		for j := uint8(0); j < ct; j++ {
			tiles = append(tiles, Letter('A'+i))
		}
	}
	return &Bag{
		tiles:              tiles,
		letterDistribution: ld,
		randSource:         randSource,
	}
}

// Draw removes one tile, chosen uniformly at random, and returns it. It
// returns false once the bag is empty.
func (b *Bag) Draw() (Letter, bool) {
	n := len(b.tiles)
	if n == 0 {
		return EmptySquareMarker, false
	}
	idx := b.randSource.Intn(n)
	drawn := b.tiles[idx]
	b.tiles[idx] = b.tiles[n-1]
	b.tiles = b.tiles[:n-1]
	return drawn, true
}

// DrawAtMost draws at most n tiles from the bag. It can draw fewer if there
// are fewer tiles than n, and even draw no tiles at all :o
func (b *Bag) DrawAtMost(n int) []Letter {
	drawn := make([]Letter, 0, n)
	for i := 0; i < n; i++ {
		l, ok := b.Draw()
		if !ok {
			log.Debug().Int("wanted", n).Int("got", len(drawn)).Msg("bag-exhausted")
			break
		}
		drawn = append(drawn, l)
	}
	return drawn
}

// PutBack puts the tiles back in the bag.
func (b *Bag) PutBack(letters []Letter) {
	b.tiles = append(b.tiles, letters...)
}

// Peek returns the remaining tiles in alphabetical order.
func (b *Bag) Peek() []Letter {
	ret := slices.Clone(b.tiles)
	slices.Sort(ret)
	return ret
}

func (b *Bag) TilesRemaining() int {
	return len(b.tiles)
}

func (b *Bag) LetterDistribution() *LetterDistribution {
	return b.letterDistribution
}

// Remove takes a specific tile out of the bag. It returns false if there is
// no such tile left.
func (b *Bag) Remove(l Letter) bool {
	idx := slices.Index(b.tiles, l)
	if idx == -1 {
		return false
	}
	b.tiles[idx] = b.tiles[len(b.tiles)-1]
	b.tiles = b.tiles[:len(b.tiles)-1]
	return true
}
