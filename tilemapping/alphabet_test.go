package tilemapping

import (
	"testing"

	"github.com/matryer/is"
)

func TestLetterFromRune(t *testing.T) {
	is := is.New(t)
	l, err := LetterFromRune('q')
	is.NoErr(err)
	is.Equal(l, Letter('Q'))
	is.Equal(l.Lower(), 'q')

	_, err = LetterFromRune('?')
	is.True(err != nil)
	_, err = LetterFromRune('É')
	is.True(err != nil)
}

func TestLetterString(t *testing.T) {
	is := is.New(t)
	is.Equal(Letter('X').String(), "X")
	is.Equal(EmptySquareMarker.String(), " ")
	is.True(!EmptySquareMarker.IsValid())
}
