package tilemapping

import (
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestLetterDistributionScores(t *testing.T) {
	is := is.New(t)

	is.Equal(Letter('A').Score(), 1)
	is.Equal(Letter('K').Score(), 5)
	is.Equal(Letter('Y').Score(), 4)
	is.Equal(Letter('Z').Score(), 10)
	is.Equal(Letter('Q').Score(), 10)
	is.Equal(EmptySquareMarker.Score(), 0)
}

func TestEnglishDistribution(t *testing.T) {
	is := is.New(t)
	ld := EnglishLetterDistribution()
	is.Equal(ld.NumTotalTiles(), 100)
	is.Equal(ld.Count('E'), 12)
	is.Equal(ld.Count('A'), 9)
	is.Equal(ld.Count('I'), 9)
	is.Equal(ld.Count('O'), 8)
	is.Equal(ld.Count('G'), 3)
	is.Equal(ld.Count('Z'), 1)
	is.Equal(ld.Count('?'), 0)
}

func TestScanLetterDistributionBadValue(t *testing.T) {
	is := is.New(t)
	_, err := ScanLetterDistribution("bad", strings.NewReader("A,9,2\n"))
	is.True(err != nil)
	_, err = ScanLetterDistribution("bad", strings.NewReader("AB,9,1\n"))
	is.True(err != nil)
}

func TestWordScore(t *testing.T) {
	is := is.New(t)
	w, err := ToWord("CoOKIE")
	is.NoErr(err)
	is.Equal(w.String(), "COOKIE")
	is.Equal(w.Score(), 12)
}
