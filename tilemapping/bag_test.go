package tilemapping

import (
	"testing"

	"github.com/matryer/is"
	"github.com/samber/lo"
)

func TestBag(t *testing.T) {
	is := is.New(t)

	ld := EnglishLetterDistribution()
	bag := ld.MakeBag()
	is.Equal(bag.TilesRemaining(), 100)

	drawn := []Letter{}
	for i := 0; i < 100; i++ {
		l, ok := bag.Draw()
		is.True(ok)
		drawn = append(drawn, l)
	}
	counts := lo.CountValues(drawn)
	for l := Letter('A'); l <= 'Z'; l++ {
		is.Equal(counts[l], ld.Count(l))
	}

	_, ok := bag.Draw()
	is.True(!ok) // empty bag signals exhaustion
}

func TestDrawAtMost(t *testing.T) {
	is := is.New(t)

	bag := EnglishLetterDistribution().MakeBag()
	for i := 0; i < 14; i++ {
		is.Equal(len(bag.DrawAtMost(7)), 7)
	}
	is.Equal(bag.TilesRemaining(), 2)
	is.Equal(len(bag.DrawAtMost(7)), 2)
	is.Equal(bag.TilesRemaining(), 0)
	is.Equal(len(bag.DrawAtMost(7)), 0)
}

func TestPutBackAndPeek(t *testing.T) {
	is := is.New(t)

	bag := EnglishLetterDistribution().MakeBag()
	tiles := bag.DrawAtMost(100)
	is.Equal(bag.TilesRemaining(), 0)
	bag.PutBack([]Letter{'Z', 'A', 'Q'})
	is.Equal(bag.Peek(), []Letter{'A', 'Q', 'Z'})
	is.Equal(len(tiles), 100)
}

func TestRemove(t *testing.T) {
	is := is.New(t)

	bag := EnglishLetterDistribution().MakeBag()
	is.True(bag.Remove('Q'))
	is.True(!bag.Remove('Q'))
	is.Equal(bag.TilesRemaining(), 99)
	is.True(!lo.Contains(bag.Peek(), Letter('Q')))
}
